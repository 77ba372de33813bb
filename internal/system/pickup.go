// internal/system/pickup.go
package system

import (
	"math"
	"slices"

	"node-zero/internal/component"
	"node-zero/internal/config"
	"node-zero/internal/utils"
)

const ageEpsilon = 1e-9

// PickupSystem scatters point pickups around destroyed nodes and collects them.
type PickupSystem struct {
	rng          *utils.PRNG
	pickups      []component.PointPickup
	nextID       int
	points       int
	screenHeight float64
}

func NewPickupSystem(rng *utils.PRNG) *PickupSystem {
	return &PickupSystem{rng: rng}
}

func (s *PickupSystem) Initialize(screenHeight int) {
	s.screenHeight = float64(screenHeight)
}

// Update ages every pickup and drops the expired ones.
func (s *PickupSystem) Update(deltaTime float64) {
	for i := range s.pickups {
		s.pickups[i].RemainingTime -= deltaTime
		s.pickups[i].Elapsed += deltaTime
	}
	s.pickups = slices.DeleteFunc(s.pickups, func(p component.PointPickup) bool {
		return p.RemainingTime <= 0
	})
}

func (s *PickupSystem) Reset() {
	s.pickups = nil
	s.nextID = 0
	s.points = 0
}

// SpawnPointPickups drops a random cluster of one-point pickups.
func (s *PickupSystem) SpawnPointPickups(origin component.Position) {
	count := config.PickupMinCount + s.rng.Intn(config.PickupCountVariance)
	s.SpawnPointPickupsN(origin, count, 1)
}

func (s *PickupSystem) SpawnPointPickupsN(origin component.Position, count, points int) {
	for range count {
		angle := s.rng.Range(0, 2*math.Pi)
		radius := s.rng.Range(s.screenHeight*config.PickupMinSpawnRadiusRatio, s.screenHeight*config.PickupMaxSpawnRadiusRatio)

		s.pickups = append(s.pickups, component.PointPickup{
			ID: s.nextID,
			Position: component.Position{
				X: origin.X + math.Cos(angle)*radius,
				Y: origin.Y + math.Sin(angle)*radius,
			},
			SpawnOrigin:   origin,
			Size:          s.screenHeight * config.PickupSizeRatio,
			Lifetime:      config.PickupLifetime,
			RemainingTime: config.PickupLifetime,
			Points:        points,
		})
		s.nextID++
	}
}

// CollectPickup banks the pickup with id. Fresh pickups cannot be collected yet.
func (s *PickupSystem) CollectPickup(id int) bool {
	i := slices.IndexFunc(s.pickups, func(p component.PointPickup) bool { return p.ID == id })
	if i < 0 || !collectable(s.pickups[i]) {
		return false
	}
	s.points += s.pickups[i].Points
	s.pickups = slices.Delete(s.pickups, i, i+1)
	return true
}

// ProcessCollection collects every pickup overlapping the square zone and returns them.
func (s *PickupSystem) ProcessCollection(centerX, centerY, zoneSize float64) []component.PointPickup {
	left := centerX - zoneSize/2
	top := centerY - zoneSize/2

	var collected []component.PointPickup
	for _, p := range s.pickups {
		if !collectable(p) {
			continue
		}
		if overlapsZone(p, left, top, zoneSize) {
			collected = append(collected, p)
		}
	}
	for _, p := range collected {
		s.CollectPickup(p.ID)
	}
	return collected
}

// collectable reports whether p has been alive for the collect delay. Frame times summed
// in float64 land a hair under the delay, hence the tolerance.
func collectable(p component.PointPickup) bool {
	return p.Age()+ageEpsilon >= config.PickupCollectDelay
}

func overlapsZone(p component.PointPickup, left, top, size float64) bool {
	return p.Position.X+p.Size >= left &&
		p.Position.X-p.Size <= left+size &&
		p.Position.Y+p.Size >= top &&
		p.Position.Y-p.Size <= top+size
}

// Pickups returns the live pickups. The slice must not be modified by callers.
func (s *PickupSystem) Pickups() []component.PointPickup { return s.pickups }

// Points is the total banked since the last Reset.
func (s *PickupSystem) Points() int { return s.points }
