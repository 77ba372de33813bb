// internal/app/nodes.go
package app

import (
	"node-zero/internal/component"
	"node-zero/internal/config"
	"node-zero/internal/entity"
	"node-zero/internal/event"
)

func (g *Game) handleSpawning(deltaTime float64) {
	g.spawnService.UpdateAutoSpawn(deltaTime)
	g.spawnService.SetCurrentLevel(g.levelService.CurrentLevel())

	if g.spawnService.ShouldAutoSpawn() {
		g.SpawnNode(g.spawnService.NextSpawn())
		g.spawnService.ResetSpawnTimer()
	}
	if g.levelService.ShouldSpawnBoss() {
		g.spawnBoss()
	}
}

// SpawnNode adds a regular node with level-scaled health.
func (g *Game) SpawnNode(info component.SpawnInfo) *entity.Node {
	size := float64(g.screenHeight) * config.NodeSizeRatio
	n := entity.NewNode(info.Shape, size, config.NodeDefaultSpeed)
	n.SetHP(g.spawnService.CalculateNodeHP(n.HP()))
	n.Spawn(info.Position.X, info.Position.Y)
	n.SetDirection(info.DirectionX, info.DirectionY)
	g.World.Add(n)

	e := event.New(event.NodeSpawned, g.elapsedTime)
	e.Shape = n.Shape()
	e.Position = info.Position
	e.Size = n.Size()
	e.HP = int(n.HP())
	g.Notify(e)
	return n
}

// spawnBoss brings the boss in from a random edge, heading for the center.
func (g *Game) spawnBoss() {
	if g.levelService.IsBossActive() {
		return
	}

	w, h := float64(g.screenWidth), float64(g.screenHeight)
	size := h * config.BossSizeRatio
	hp := config.BossHPBase + float64(g.levelService.CurrentLevel()-1)*config.BossHPPerLevel
	offset := size * config.BossSpawnOffset

	var x, y float64
	switch g.Rng.Intn(4) {
	case 0:
		x, y = g.Rng.Float64()*w, -offset
	case 1:
		x, y = w+offset, g.Rng.Float64()*h
	case 2:
		x, y = g.Rng.Float64()*w, h+offset
	default:
		x, y = -offset, g.Rng.Float64()*h
	}

	boss := entity.NewNode(component.Boss, size, config.BossSpeed)
	boss.SetHP(hp)
	boss.Spawn(x, y)
	boss.SetDirection(component.Normalize(w/2-x, h/2-y))
	g.World.Add(boss)
	g.levelService.SetBossActive(true)

	e := event.New(event.BossSpawned, g.elapsedTime)
	e.Level = g.levelService.CurrentLevel()
	e.BossHP = hp
	e.Position = boss.Position()
	g.Notify(e)
}

func (g *Game) handleDamageZone(deltaTime float64) {
	g.damageZoneService.UpdateTimer(deltaTime)
	if !g.damageZoneService.ShouldDealDamage() {
		return
	}
	g.damageZoneService.ResetTimer()

	damage := g.upgradeService.DamagePerTick()
	g.damageZoneService.Process(
		g.cursor.X,
		g.cursor.Y,
		g.upgradeService.DamageZoneSize(),
		damage,
		g.levelService.CurrentLevel(),
		g.World.Nodes(),
		func(n *entity.Node, healthCost float64) {
			e := event.New(event.NodeDamaged, g.elapsedTime)
			e.Shape = n.Shape()
			e.Position = n.Position()
			e.Size = n.Size()
			e.Damage = int(damage)
			e.HP = int(n.HP())
			g.Notify(e)

			g.healthService.Reduce(healthCost)
		})
}

func (g *Game) handlePickups(deltaTime float64) {
	before := g.pickupService.Points()
	g.collectedThisFrame = g.pickupService.ProcessCollection(g.cursor.X, g.cursor.Y, g.upgradeService.DamageZoneSize())
	if gained := g.pickupService.Points() - before; gained > 0 {
		e := event.New(event.PointsChanged, g.elapsedTime)
		e.Points = g.pickupService.Points()
		e.Delta = gained
		e.Position = g.cursor
		g.Notify(e)
	}
	g.pickupService.Update(deltaTime)
}

func (g *Game) updateNodes(deltaTime float64) {
	g.World.Update(deltaTime)
	g.World.RemoveIf(func(n *entity.Node) bool {
		if n.State() == component.Dead {
			g.onNodeDeath(n)
			return true
		}
		return !n.IsBoss() && g.offscreen(n.Position())
	})
}

func (g *Game) onNodeDeath(n *entity.Node) {
	level := g.levelService.CurrentLevel()
	if n.IsBoss() {
		e := event.New(event.BossDefeated, g.elapsedTime)
		e.Level = level
		e.Points = config.PointsPerBossLevel * level
		e.Position = n.Position()
		e.Size = n.Size()
		g.Notify(e)

		g.levelService.SetBossActive(false)
		g.levelService.SetLevelCompleted(true)
		return
	}

	e := event.New(event.NodeDestroyed, g.elapsedTime)
	e.Shape = n.Shape()
	e.Position = n.Position()
	e.Size = n.Size()
	e.Points = config.PointsPerNode
	g.Notify(e)

	g.pickupService.SpawnPointPickups(n.Position())
	g.nodesDestroyed++
	g.levelService.IncrementNodesDestroyed()
}

// offscreen reports whether p left the field by more than the removal margin.
func (g *Game) offscreen(p component.Position) bool {
	const m = config.OffscreenMargin
	return p.X < -m || p.Y < -m || p.X > float64(g.screenWidth)+m || p.Y > float64(g.screenHeight)+m
}

// clearField drops every node.
func (g *Game) clearField() {
	g.World.Clear()
	g.levelService.SetBossActive(false)
}
