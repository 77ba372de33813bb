// internal/system/upgrade.go
package system

import (
	"log/slog"

	"node-zero/internal/component"
	"node-zero/internal/config"
	"node-zero/internal/defs"
	"node-zero/internal/interfaces"
)

// UpgradeStrategy is one purchasable stat change.
type UpgradeStrategy interface {
	Cost() int
	CanApply() bool
	Apply(data *component.SaveData)
}

type healthUpgrade struct{ def defs.UpgradeDefinition }

func (u healthUpgrade) Cost() int      { return u.def.Cost }
func (u healthUpgrade) CanApply() bool { return true }
func (u healthUpgrade) Apply(data *component.SaveData) {
	data.MaxHealth += u.def.Amount
}

type regenUpgrade struct{ def defs.UpgradeDefinition }

func (u regenUpgrade) Cost() int      { return u.def.Cost }
func (u regenUpgrade) CanApply() bool { return true }
func (u regenUpgrade) Apply(data *component.SaveData) {
	data.RegenRate += u.def.Amount
}

// damageZoneUpgrade grows the zone up to the catalog cap.
type damageZoneUpgrade struct {
	def         defs.UpgradeDefinition
	currentSize float64
}

func (u damageZoneUpgrade) Cost() int      { return u.def.Cost }
func (u damageZoneUpgrade) CanApply() bool { return !u.def.Capped(u.currentSize) }
func (u damageZoneUpgrade) Apply(data *component.SaveData) {
	size := u.currentSize + u.def.Amount
	if u.def.Cap > 0 {
		size = min(size, u.def.Cap)
	}
	data.DamageZoneSize = size
}

type damageUpgrade struct{ def defs.UpgradeDefinition }

func (u damageUpgrade) Cost() int      { return u.def.Cost }
func (u damageUpgrade) CanApply() bool { return true }
func (u damageUpgrade) Apply(data *component.SaveData) {
	data.DamagePerTick += u.def.Amount
}

// UpgradeSystem sells upgrades and mirrors the resulting stats.
type UpgradeSystem struct {
	save           interfaces.SaveService
	logger         *slog.Logger
	maxHealth      float64
	regenRate      float64
	damageZoneSize float64
	damagePerTick  float64
}

func NewUpgradeSystem(logger *slog.Logger) *UpgradeSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &UpgradeSystem{
		logger:         logger,
		maxHealth:      config.HealthDefault,
		damageZoneSize: config.DamageZoneDefaultSize,
		damagePerTick:  config.DamagePerTickDefault,
	}
}

func (s *UpgradeSystem) Initialize(maxHealth, regenRate, zoneSize, damage float64) {
	s.maxHealth = maxHealth
	s.regenRate = regenRate
	s.damageZoneSize = zoneSize
	s.damagePerTick = damage
}

func (s *UpgradeSystem) SetSaveService(save interfaces.SaveService) {
	s.save = save
}

// Strategy builds the strategy for kind from the upgrade catalog.
func (s *UpgradeSystem) Strategy(kind component.UpgradeKind) UpgradeStrategy {
	def := defs.Upgrade(kind)
	switch kind {
	case component.UpgradeHealth:
		return healthUpgrade{def: def}
	case component.UpgradeRegen:
		return regenUpgrade{def: def}
	case component.UpgradeDamageZone:
		return damageZoneUpgrade{def: def, currentSize: s.damageZoneSize}
	case component.UpgradeDamage:
		return damageUpgrade{def: def}
	default:
		return nil
	}
}

// Purchase pays for and applies one upgrade. It fails without a save service,
// with too few points, or when the upgrade is maxed out.
func (s *UpgradeSystem) Purchase(kind component.UpgradeKind) bool {
	strategy := s.Strategy(kind)
	if strategy == nil {
		return false
	}
	return s.attemptPurchase(kind, strategy)
}

func (s *UpgradeSystem) attemptPurchase(kind component.UpgradeKind, strategy UpgradeStrategy) bool {
	if s.save == nil {
		return false
	}
	data := s.save.CurrentData()
	if data.Points < strategy.Cost() || !strategy.CanApply() {
		return false
	}

	data.Points -= strategy.Cost()
	strategy.Apply(&data)

	s.maxHealth = data.MaxHealth
	s.regenRate = data.RegenRate
	s.damageZoneSize = data.DamageZoneSize
	s.damagePerTick = data.DamagePerTick

	if err := s.save.SaveProgress(data); err != nil {
		s.logger.Warn("failed to persist upgrade", "upgrade", kind.String(), "error", err)
	}
	s.logger.Info("upgrade purchased", "upgrade", kind.String(), "points_left", data.Points)
	return true
}

// CanPurchase reports whether Purchase(kind) would succeed right now.
func (s *UpgradeSystem) CanPurchase(kind component.UpgradeKind) bool {
	strategy := s.Strategy(kind)
	if s.save == nil || strategy == nil {
		return false
	}
	return s.save.Points() >= strategy.Cost() && strategy.CanApply()
}

func (s *UpgradeSystem) BuyHealthUpgrade() bool     { return s.Purchase(component.UpgradeHealth) }
func (s *UpgradeSystem) BuyRegenUpgrade() bool      { return s.Purchase(component.UpgradeRegen) }
func (s *UpgradeSystem) BuyDamageZoneUpgrade() bool { return s.Purchase(component.UpgradeDamageZone) }
func (s *UpgradeSystem) BuyDamageUpgrade() bool     { return s.Purchase(component.UpgradeDamage) }

func (s *UpgradeSystem) Cost(kind component.UpgradeKind) int { return defs.Upgrade(kind).Cost }

func (s *UpgradeSystem) Definition(kind component.UpgradeKind) defs.UpgradeDefinition {
	return defs.Upgrade(kind)
}

func (s *UpgradeSystem) MaxHealth() float64      { return s.maxHealth }
func (s *UpgradeSystem) RegenRate() float64      { return s.regenRate }
func (s *UpgradeSystem) DamageZoneSize() float64 { return s.damageZoneSize }
func (s *UpgradeSystem) DamagePerTick() float64  { return s.damagePerTick }
