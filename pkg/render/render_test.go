package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"node-zero/internal/component"
	"node-zero/internal/config"
	"node-zero/internal/entity"
)

func TestColorHelpers(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}
	assert.Equal(t, color.RGBA{100, 50, 25, 255}, DarkenColor(c))
	assert.Equal(t, color.RGBA{240, 140, 90, 255}, LightenColor(c, 40))
	assert.Equal(t, uint8(255), LightenColor(c, 100).R)
	assert.Equal(t, uint8(127), WithAlpha(c, 0.5).A)
	assert.Equal(t, uint8(0), WithAlpha(c, -1).A)
}

func TestPickupPositionSlidesFromOrigin(t *testing.T) {
	p := component.PointPickup{
		Position:      component.Position{X: 100, Y: 50},
		SpawnOrigin:   component.Position{X: 0, Y: 0},
		Lifetime:      10,
		RemainingTime: 10,
	}
	assert.Equal(t, p.SpawnOrigin, PickupPosition(p))

	p.Elapsed = config.PickupSpawnAnimTime
	p.RemainingTime = 10 - p.Elapsed
	assert.InDelta(t, 100, PickupPosition(p).X, 1e-9)
	assert.InDelta(t, 50, PickupPosition(p).Y, 1e-9)

	p.Elapsed, p.RemainingTime = 9, 1
	assert.Equal(t, p.Position, PickupPosition(p))
}

func TestLoadFace(t *testing.T) {
	face, err := LoadFace(14)
	require.NoError(t, err)
	require.NotNil(t, face)
	assert.Positive(t, face.Metrics().Height.Ceil())
}

func TestBarBossOnlyWhileActive(t *testing.T) {
	assert.Nil(t, barBoss(nil))

	boss := entity.NewNode(component.Boss, 100, 0)
	assert.Nil(t, barBoss(boss), "not spawned yet")

	boss.Spawn(10, 10)
	assert.Same(t, boss, barBoss(boss))

	boss.Kill()
	assert.Nil(t, barBoss(boss))
}
