// internal/system/spawn.go
package system

import (
	"node-zero/internal/component"
	"node-zero/internal/config"
	"node-zero/internal/utils"
)

// SpawnSystem times regular spawns and picks their entry point and shape.
type SpawnSystem struct {
	rng          *utils.PRNG
	screenWidth  float64
	screenHeight float64
	spawnTimer   float64
	level        int
}

func NewSpawnSystem(rng *utils.PRNG) *SpawnSystem {
	return &SpawnSystem{rng: rng, level: config.MinLevel}
}

func (s *SpawnSystem) Initialize(screenWidth, screenHeight int) {
	s.screenWidth = float64(screenWidth)
	s.screenHeight = float64(screenHeight)
}

func (s *SpawnSystem) SetCurrentLevel(level int) {
	s.level = max(level, config.MinLevel)
}

func (s *SpawnSystem) UpdateAutoSpawn(deltaTime float64) {
	s.spawnTimer += deltaTime
}

func (s *SpawnSystem) ResetSpawnTimer() {
	s.spawnTimer = 0
}

// SpawnInterval shrinks with the level down to SpawnMinInterval.
func (s *SpawnSystem) SpawnInterval() float64 {
	interval := config.SpawnBaseInterval - float64(s.level-1)*config.SpawnIntervalPerLevel
	return max(config.SpawnMinInterval, interval)
}

func (s *SpawnSystem) ShouldAutoSpawn() bool {
	return s.spawnTimer >= s.SpawnInterval()
}

// NextSpawn places a node just outside a random screen edge, heading roughly to the center.
func (s *SpawnSystem) NextSpawn() component.SpawnInfo {
	const offset = config.SpawnEdgeOffset
	var pos component.Position
	switch s.rng.Intn(4) {
	case 0: // top
		pos = component.Position{X: s.rng.Range(offset, s.screenWidth-offset), Y: -offset}
	case 1: // right
		pos = component.Position{X: s.screenWidth + offset, Y: s.rng.Range(offset, s.screenHeight-offset)}
	case 2: // bottom
		pos = component.Position{X: s.rng.Range(offset, s.screenWidth-offset), Y: s.screenHeight + offset}
	default: // left
		pos = component.Position{X: -offset, Y: s.rng.Range(offset, s.screenHeight-offset)}
	}

	targetX := s.screenWidth/2 + s.rng.Range(-config.SpawnTargetVariance, config.SpawnTargetVariance)
	targetY := s.screenHeight/2 + s.rng.Range(-config.SpawnTargetVariance, config.SpawnTargetVariance)
	dirX, dirY := component.Normalize(targetX-pos.X, targetY-pos.Y)

	return component.SpawnInfo{
		Position:   pos,
		Shape:      s.randomShape(),
		DirectionX: dirX,
		DirectionY: dirY,
	}
}

func (s *SpawnSystem) randomShape() component.NodeShape {
	chance := s.rng.Intn(100) // thresholds are cumulative
	switch {
	case chance < config.SpawnChanceSquare:
		return component.Square
	case chance < config.SpawnChanceCircle:
		return component.Circle
	default:
		return component.Hexagon
	}
}

// CalculateNodeHP scales a base health pool by the current level.
func (s *SpawnSystem) CalculateNodeHP(baseHP float64) float64 {
	return baseHP * (1 + float64(s.level-1)*config.SpawnHPPerLevel)
}
