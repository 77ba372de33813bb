// internal/system/damage_zone.go
package system

import (
	"node-zero/internal/component"
	"node-zero/internal/config"
	"node-zero/internal/entity"
	"node-zero/internal/utils"
)

// DamageZoneSystem hits every node under the cursor zone once per damage interval.
type DamageZoneSystem struct {
	damageTimer    float64
	damageInterval float64
}

func NewDamageZoneSystem() *DamageZoneSystem {
	return &DamageZoneSystem{damageInterval: config.DamageInterval}
}

func (s *DamageZoneSystem) UpdateTimer(deltaTime float64) { s.damageTimer += deltaTime }
func (s *DamageZoneSystem) ResetTimer()                   { s.damageTimer = 0 }
func (s *DamageZoneSystem) ShouldDealDamage() bool        { return s.damageTimer >= s.damageInterval }

// Process damages the active nodes touching the square zone centred on (centerX, centerY).
// onDamaged receives each hit node and the health the player pays for the hit.
func (s *DamageZoneSystem) Process(centerX, centerY, zoneSize, damage float64, level int, nodes []*entity.Node, onDamaged func(n *entity.Node, healthCost float64)) {
	left := centerX - zoneSize/2
	top := centerY - zoneSize/2
	right := left + zoneSize
	bottom := top + zoneSize

	for _, n := range nodes {
		if n.State() != component.Active {
			continue
		}
		if !nodeInZone(n, left, top, right, bottom) {
			continue
		}
		n.TakeDamage(damage)
		if onDamaged != nil {
			onDamaged(n, HealthCost(n.Shape(), level))
		}
	}
}

// HealthCost is what the player pays for hitting a node of shape at level.
func HealthCost(shape component.NodeShape, level int) float64 {
	cost := config.DamageBaseHealthCost
	if shape == component.Boss {
		cost *= config.DamageBossCostMultiplier
	}
	return cost * (1 + float64(level-1)*config.DamageCostPerLevel)
}

// nodeInZone tests the node's bounding circle against the rectangle.
func nodeInZone(n *entity.Node, left, top, right, bottom float64) bool {
	radius := n.Size()
	if n.Shape() == component.Square || n.Shape() == component.Boss {
		radius *= config.DamageSquareDiagonal
	}

	pos := n.Position()
	dx := pos.X - utils.Clamp(pos.X, left, right)
	dy := pos.Y - utils.Clamp(pos.Y, top, bottom)
	return dx*dx+dy*dy <= radius*radius
}
