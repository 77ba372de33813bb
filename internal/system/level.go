// internal/system/level.go
package system

import "node-zero/internal/config"

// LevelSystem runs the level clock. The clock stops while the boss is alive.
type LevelSystem struct {
	level          int
	levelTimer     float64
	nodesDestroyed int
	bossActive     bool
	completed      bool
}

func NewLevelSystem() *LevelSystem {
	return &LevelSystem{level: config.MinLevel}
}

func (s *LevelSystem) Initialize(startLevel int) {
	s.Reset(startLevel)
}

func (s *LevelSystem) Update(deltaTime float64) {
	if s.bossActive || deltaTime <= 0 {
		return
	}
	s.levelTimer += deltaTime
}

// Reset puts the system at the start of level.
func (s *LevelSystem) Reset(level int) {
	s.level = max(level, config.MinLevel)
	s.levelTimer = 0
	s.nodesDestroyed = 0
	s.bossActive = false
	s.completed = false
}

func (s *LevelSystem) StartNextLevel() {
	s.Reset(s.level + 1)
}

func (s *LevelSystem) IncrementNodesDestroyed()         { s.nodesDestroyed++ }
func (s *LevelSystem) SetBossActive(active bool)        { s.bossActive = active }
func (s *LevelSystem) SetLevelCompleted(completed bool) { s.completed = completed }
func (s *LevelSystem) CurrentLevel() int                { return s.level }
func (s *LevelSystem) NodesDestroyedThisLevel() int     { return s.nodesDestroyed }
func (s *LevelSystem) IsBossActive() bool               { return s.bossActive }
func (s *LevelSystem) IsLevelCompleted() bool           { return s.completed }
func (s *LevelSystem) LevelTime() float64               { return s.levelTimer }

// ShouldSpawnBoss reports whether the level clock ran out and no boss is on the field yet.
func (s *LevelSystem) ShouldSpawnBoss() bool {
	return !s.bossActive && !s.completed && s.levelTimer >= config.LevelDuration
}

// ProgressPercent is the share of the level duration elapsed, in [0, 100].
func (s *LevelSystem) ProgressPercent() float64 {
	if config.LevelDuration <= 0 {
		return config.MaxProgressPercent
	}
	p := s.levelTimer / config.LevelDuration * 100
	return min(p, config.MaxProgressPercent)
}
