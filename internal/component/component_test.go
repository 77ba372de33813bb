package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointPickupLifeRatio(t *testing.T) {
	p := PointPickup{Lifetime: 10, RemainingTime: 2.5, Elapsed: 7.5}
	assert.InDelta(t, 0.25, p.LifeRatio(), 1e-9)
	assert.InDelta(t, 7.5, p.Age(), 1e-9)

	assert.Zero(t, PointPickup{Lifetime: 0, RemainingTime: 3}.LifeRatio())
}

func TestNormalize(t *testing.T) {
	x, y := Normalize(3, 4)
	assert.InDelta(t, 0.6, x, 1e-9)
	assert.InDelta(t, 0.8, y, 1e-9)

	x, y = Normalize(0, 0)
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestDefaultSaveData(t *testing.T) {
	d := DefaultSaveData()
	assert.Equal(t, 1, d.CurrentLevel)
	assert.Equal(t, 10.0, d.MaxHealth)
	assert.Equal(t, 70.0, d.DamageZoneSize)
	assert.Equal(t, 50.0, d.DamagePerTick)
	assert.Zero(t, d.Points)
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "Hexagon", Hexagon.String())
	assert.Equal(t, "LevelCompleted", LevelCompleted.String())
	assert.Equal(t, "Unknown", GameScreen(99).String())
}
