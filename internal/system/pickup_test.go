package system

import (
	"testing"

	"node-zero/internal/component"
	"node-zero/internal/config"
	"node-zero/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScreenHeight = 800

func newPickups() *PickupSystem {
	p := NewPickupSystem(utils.NewPRNG(7))
	p.Initialize(testScreenHeight)
	return p
}

func TestSpawnPointPickupsCount(t *testing.T) {
	p := newPickups()
	origin := component.Position{X: 400, Y: 300}
	for range 20 {
		p.Reset()
		p.SpawnPointPickups(origin)
		n := len(p.Pickups())
		assert.GreaterOrEqual(t, n, config.PickupMinCount)
		assert.Less(t, n, config.PickupMinCount+config.PickupCountVariance)
	}
}

func TestSpawnPointPickupsScatter(t *testing.T) {
	p := newPickups()
	origin := component.Position{X: 400, Y: 300}
	p.SpawnPointPickupsN(origin, 30, 2)

	pickups := p.Pickups()
	require.Len(t, pickups, 30)
	minR := testScreenHeight * config.PickupMinSpawnRadiusRatio
	maxR := testScreenHeight * config.PickupMaxSpawnRadiusRatio
	for i, pk := range pickups {
		assert.Equal(t, i, pk.ID)
		assert.Equal(t, 2, pk.Points)
		assert.Equal(t, origin, pk.SpawnOrigin)
		assert.InDelta(t, testScreenHeight*config.PickupSizeRatio, pk.Size, 1e-9)
		assert.Equal(t, config.PickupLifetime, pk.RemainingTime)

		d := pk.Position.Dist(origin)
		assert.GreaterOrEqual(t, d, minR-1e-9)
		assert.LessOrEqual(t, d, maxR+1e-9)
	}
}

func TestCollectPickupRespectsDelay(t *testing.T) {
	p := newPickups()
	p.SpawnPointPickupsN(component.Position{}, 1, 3)

	assert.False(t, p.CollectPickup(0), "too fresh")
	assert.False(t, p.CollectPickup(42), "unknown id")

	p.Update(config.PickupCollectDelay)
	assert.True(t, p.CollectPickup(0))
	assert.Equal(t, 3, p.Points())
	assert.Empty(t, p.Pickups())
}

func TestPickupCollectableAfterDelayInSmallSteps(t *testing.T) {
	p := newPickups()
	p.SpawnPointPickupsN(component.Position{X: 100, Y: 100}, 1, 1)

	for range 10 {
		p.Update(config.PickupCollectDelay / 10)
	}
	assert.InDelta(t, config.PickupCollectDelay, p.Pickups()[0].Age(), 1e-9)

	collected := p.ProcessCollection(100, 100, 200)
	assert.Len(t, collected, 1)
	assert.Equal(t, 1, p.Points())
}

func TestPickupsExpire(t *testing.T) {
	p := newPickups()
	p.SpawnPointPickupsN(component.Position{}, 4, 1)
	p.Update(config.PickupLifetime - 1)
	assert.Len(t, p.Pickups(), 4)
	p.Update(1)
	assert.Empty(t, p.Pickups())
}

func TestProcessCollection(t *testing.T) {
	p := newPickups()
	p.SpawnPointPickupsN(component.Position{X: 100, Y: 100}, 6, 1)
	p.SpawnPointPickupsN(component.Position{X: 700, Y: 700}, 4, 1)

	assert.Empty(t, p.ProcessCollection(100, 100, 200), "pickups are too fresh")

	p.Update(0.5)
	collected := p.ProcessCollection(100, 100, 200)
	assert.Len(t, collected, 6)
	assert.Equal(t, 6, p.Points())
	assert.Len(t, p.Pickups(), 4)
	for _, c := range collected {
		assert.Equal(t, component.Position{X: 100, Y: 100}, c.SpawnOrigin)
	}
}

func TestPickupReset(t *testing.T) {
	p := newPickups()
	p.SpawnPointPickupsN(component.Position{}, 3, 1)
	p.Update(1)
	p.ProcessCollection(0, 0, 500)
	p.Reset()

	assert.Zero(t, p.Points())
	assert.Empty(t, p.Pickups())
	p.SpawnPointPickupsN(component.Position{}, 1, 1)
	assert.Zero(t, p.Pickups()[0].ID)
}
