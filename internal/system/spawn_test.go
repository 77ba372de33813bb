package system

import (
	"math"
	"testing"

	"node-zero/internal/component"
	"node-zero/internal/config"
	"node-zero/internal/utils"

	"github.com/stretchr/testify/assert"
)

func newSpawn() *SpawnSystem {
	s := NewSpawnSystem(utils.NewPRNG(42))
	s.Initialize(800, 600)
	return s
}

func TestSpawnHigherLevelsSpawnFaster(t *testing.T) {
	s := newSpawn()

	s.SetCurrentLevel(1)
	s.UpdateAutoSpawn(1.5)
	assert.False(t, s.ShouldAutoSpawn())

	s.ResetSpawnTimer()
	s.SetCurrentLevel(5)
	s.UpdateAutoSpawn(1.5)
	assert.True(t, s.ShouldAutoSpawn())
}

func TestSpawnIntervalFloor(t *testing.T) {
	s := newSpawn()
	s.SetCurrentLevel(100)
	assert.Equal(t, config.SpawnMinInterval, s.SpawnInterval())
}

func TestSpawnHPScalesWithLevel(t *testing.T) {
	s := newSpawn()
	s.SetCurrentLevel(1)
	assert.InDelta(t, 100, s.CalculateNodeHP(100), 1e-9)

	s.SetCurrentLevel(5)
	assert.InDelta(t, 180, s.CalculateNodeHP(100), 1e-9)
}

func TestNextSpawnIsOutsideTheScreenAndAimedInside(t *testing.T) {
	s := newSpawn()
	const w, h, off = 800.0, 600.0, config.SpawnEdgeOffset

	for range 200 {
		info := s.NextSpawn()
		p := info.Position

		outside := p.Y == -off || p.Y == h+off || p.X == -off || p.X == w+off
		assert.True(t, outside, "spawn %v must sit on an edge line", p)
		assert.InDelta(t, 1, math.Hypot(info.DirectionX, info.DirectionY), 1e-9)

		// walking along the direction must bring the node closer to the center
		before := p.Dist(component.Position{X: w / 2, Y: h / 2})
		after := component.Position{X: p.X + info.DirectionX*10, Y: p.Y + info.DirectionY*10}.
			Dist(component.Position{X: w / 2, Y: h / 2})
		assert.Less(t, after, before)

		assert.NotEqual(t, component.Boss, info.Shape)
	}
}

func TestNextSpawnShapeMix(t *testing.T) {
	s := newSpawn()
	counts := map[component.NodeShape]int{}
	for range 2000 {
		counts[s.NextSpawn().Shape]++
	}
	assert.Greater(t, counts[component.Square], counts[component.Circle])
	assert.Greater(t, counts[component.Circle], counts[component.Hexagon])
	assert.Positive(t, counts[component.Hexagon])
}
