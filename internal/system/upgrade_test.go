package system

import (
	"testing"

	"node-zero/internal/component"
	"node-zero/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUpgrades(points int) (*UpgradeSystem, *SaveSystem, *memStore) {
	d := component.DefaultSaveData()
	d.Points = points
	store := &memStore{data: &d}
	save := NewSaveSystem(store, nil)

	u := NewUpgradeSystem(nil)
	u.Initialize(d.MaxHealth, d.RegenRate, d.DamageZoneSize, d.DamagePerTick)
	u.SetSaveService(save)
	return u, save, store
}

func TestUpgradeFailsWithoutSaveService(t *testing.T) {
	u := NewUpgradeSystem(nil)
	assert.False(t, u.BuyHealthUpgrade())
	assert.False(t, u.CanPurchase(component.UpgradeHealth))
}

func TestUpgradeFailsWithoutPoints(t *testing.T) {
	u, save, store := newUpgrades(config.HealthUpgradeCost - 1)
	assert.False(t, u.BuyHealthUpgrade())
	assert.Equal(t, config.HealthDefault, u.MaxHealth())
	assert.Equal(t, config.HealthUpgradeCost-1, save.Points())
	assert.Zero(t, store.saves)
}

func TestUpgradePurchases(t *testing.T) {
	u, save, store := newUpgrades(1000)

	require.True(t, u.BuyHealthUpgrade())
	assert.Equal(t, config.HealthDefault+config.HealthUpgradeAmount, u.MaxHealth())

	require.True(t, u.BuyRegenUpgrade())
	assert.InDelta(t, config.RegenUpgradeAmount, u.RegenRate(), 1e-9)

	require.True(t, u.BuyDamageZoneUpgrade())
	assert.Equal(t, config.DamageZoneDefaultSize+config.DamageZoneUpgradeAmount, u.DamageZoneSize())

	require.True(t, u.BuyDamageUpgrade())
	assert.Equal(t, config.DamagePerTickDefault+config.DamageUpgradeAmount, u.DamagePerTick())

	spent := config.HealthUpgradeCost + config.RegenUpgradeCost + config.DamageZoneUpgradeCost + config.DamageUpgradeCost
	assert.Equal(t, 1000-spent, save.Points())
	assert.Equal(t, 4, store.saves)
	assert.Equal(t, u.MaxHealth(), store.data.MaxHealth)
	assert.Equal(t, u.DamageZoneSize(), store.data.DamageZoneSize)
}

func TestDamageZoneUpgradeCap(t *testing.T) {
	u, save, _ := newUpgrades(100000)
	u.Initialize(config.HealthDefault, 0, config.DamageZoneMaxSize-5, config.DamagePerTickDefault)

	require.True(t, u.Purchase(component.UpgradeDamageZone))
	assert.Equal(t, config.DamageZoneMaxSize, u.DamageZoneSize())

	points := save.Points()
	assert.False(t, u.CanPurchase(component.UpgradeDamageZone))
	assert.False(t, u.Purchase(component.UpgradeDamageZone))
	assert.Equal(t, points, save.Points())
}

func TestUpgradeCosts(t *testing.T) {
	u := NewUpgradeSystem(nil)
	assert.Equal(t, config.HealthUpgradeCost, u.Cost(component.UpgradeHealth))
	assert.Equal(t, config.RegenUpgradeCost, u.Cost(component.UpgradeRegen))
	assert.Equal(t, config.DamageZoneUpgradeCost, u.Cost(component.UpgradeDamageZone))
	assert.Equal(t, config.DamageUpgradeCost, u.Cost(component.UpgradeDamage))
	assert.Equal(t, "Max Health", u.Definition(component.UpgradeHealth).Title)
}

func TestUpgradeUnknownKind(t *testing.T) {
	u, _, _ := newUpgrades(1000)
	assert.False(t, u.Purchase(component.UpgradeKind(99)))
}
