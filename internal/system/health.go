// internal/system/health.go
package system

import (
	"math"

	"node-zero/internal/config"
)

// HealthSystem regenerates and slowly drains the player's health.
type HealthSystem struct {
	current        float64
	max            float64
	regenRate      float64
	level          int
	depletionTimer float64
}

func NewHealthSystem() *HealthSystem {
	return &HealthSystem{
		current: config.HealthDefault,
		max:     config.HealthDefault,
		level:   config.MinLevel,
	}
}

func (s *HealthSystem) Initialize(maxHealth, regenRate float64) {
	s.max = maxHealth
	s.current = maxHealth
	s.regenRate = regenRate
	s.depletionTimer = 0
}

// Update applies regeneration every frame and the level-scaled drain every depletion interval.
func (s *HealthSystem) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	if s.regenRate > 0 {
		s.current = math.Min(s.current+s.regenRate*deltaTime, s.max)
	}

	s.depletionTimer += deltaTime
	if s.depletionTimer >= config.HealthDepletionInterval {
		s.depletionTimer = 0
		s.Reduce(s.depletionAmount())
	}
}

func (s *HealthSystem) depletionAmount() float64 {
	return config.HealthDepletionBase * (1 + float64(s.level-1)*config.HealthDepletionPerLevel)
}

func (s *HealthSystem) Reduce(amount float64) {
	if amount <= 0 {
		return
	}
	s.current = math.Max(0, s.current-amount)
}

func (s *HealthSystem) RestoreToMax() {
	s.current = s.max
}

// Reset refills health to a new maximum and restarts the depletion timer.
func (s *HealthSystem) Reset(maxHealth float64) {
	s.max = maxHealth
	s.current = maxHealth
	s.depletionTimer = 0
}

// SetMaxHealth changes the maximum; current health is clamped to it.
func (s *HealthSystem) SetMaxHealth(maxHealth float64) {
	s.max = maxHealth
	s.current = math.Min(s.current, maxHealth)
}

func (s *HealthSystem) SetRegenRate(rate float64) { s.regenRate = rate }

func (s *HealthSystem) SetCurrentLevel(level int) {
	s.level = max(level, config.MinLevel)
}

func (s *HealthSystem) Current() float64 { return s.current }
func (s *HealthSystem) Max() float64     { return s.max }
func (s *HealthSystem) IsZero() bool     { return s.current <= 0 }
