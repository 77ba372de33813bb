// internal/app/progress.go
package app

import (
	"node-zero/internal/event"
)

// Reset starts a new run at the saved level.
func (g *Game) Reset() {
	g.clearField()

	g.elapsedTime = 0
	g.pickupService.Reset()
	g.healthService.Reset(g.upgradeService.MaxHealth())
	g.healthService.SetRegenRate(g.upgradeService.RegenRate())
	g.nodesDestroyed = 0
	g.collectedThisFrame = nil
	g.spawnService.ResetSpawnTimer()
	g.damageZoneService.ResetTimer()

	g.levelService.Reset(g.saveService.CurrentData().CurrentLevel)
	g.spawnService.SetCurrentLevel(g.levelService.CurrentLevel())

	g.committedNodes = 0
	g.committedPoints = 0
	g.gameOverSent = false
	g.runFinished = false
}

// StartNextLevel advances the level, saves and clears the field.
func (g *Game) StartNextLevel() {
	oldLevel := g.levelService.CurrentLevel()
	g.levelService.StartNextLevel()

	g.SaveProgress()

	g.clearField()
	g.pickupService.Reset()
	g.committedPoints = 0
	g.spawnService.ResetSpawnTimer()
	g.spawnService.SetCurrentLevel(g.levelService.CurrentLevel())
	g.healthService.RestoreToMax()

	e := event.New(event.LevelCompleted, g.elapsedTime)
	e.Level = oldLevel
	e.NextLevel = g.levelService.CurrentLevel()
	g.Notify(e)
}

// SaveProgress commits the run's progress. Repeated calls only add what was gained
// since the previous call.
func (g *Game) SaveProgress() {
	data := g.saveService.CurrentData()

	points := g.pickupService.Points()
	data.TotalNodesDestroyed += g.nodesDestroyed - g.committedNodes
	data.Points += points - g.committedPoints
	g.committedNodes = g.nodesDestroyed
	g.committedPoints = points

	if points > data.HighPoints {
		data.HighPoints = points
		g.highPoints = points
	}

	data.CurrentLevel = g.levelService.CurrentLevel()
	data.MaxHealth = g.upgradeService.MaxHealth()
	data.RegenRate = g.upgradeService.RegenRate()
	data.DamageZoneSize = g.upgradeService.DamageZoneSize()
	data.DamagePerTick = g.upgradeService.DamagePerTick()

	if err := g.saveService.SaveProgress(data); err != nil {
		g.logger.Error("failed to save progress", "error", err)
		return
	}
	g.logger.Debug("progress saved", "level", data.CurrentLevel, "points", data.Points)
}

// FinishRun saves the run and counts it as played. Only the first call per run counts.
func (g *Game) FinishRun() {
	g.SaveProgress()
	if g.runFinished {
		return
	}
	g.runFinished = true

	data := g.saveService.CurrentData()
	data.GamesPlayed++
	if err := g.saveService.SaveProgress(data); err != nil {
		g.logger.Error("failed to save games played", "error", err)
	}
}
