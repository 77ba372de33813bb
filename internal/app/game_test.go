package app

import (
	"context"
	"testing"

	"node-zero/internal/component"
	"node-zero/internal/config"
	"node-zero/internal/event"
	"node-zero/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testWidth  = 1280
	testHeight = 720
)

type memStore struct {
	data  *component.SaveData
	saves int
}

func (m *memStore) Load(context.Context) (component.SaveData, error) {
	if m.data == nil {
		return component.SaveData{}, storage.ErrNoSave
	}
	return *m.data, nil
}

func (m *memStore) Save(_ context.Context, d component.SaveData) error {
	m.saves++
	m.data = &d
	return nil
}

func (m *memStore) Close() error { return nil }

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) ofType(t event.Type) []event.Event {
	var out []event.Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func newTestGame(t *testing.T, saved *component.SaveData) (*Game, *memStore, *recorder) {
	t.Helper()
	store := &memStore{data: saved}
	g := NewGame(Options{Store: store, Seed: 1})
	g.Initialize(testWidth, testHeight)
	rec := &recorder{}
	g.Attach(rec)
	return g, store, rec
}

// stillNode spawns a node that does not move.
func stillNode(g *Game, shape component.NodeShape, x, y float64) {
	g.SpawnNode(component.SpawnInfo{Position: component.Position{X: x, Y: y}, Shape: shape})
}

func TestNewGameLoadsProgress(t *testing.T) {
	saved := component.DefaultSaveData()
	saved.CurrentLevel = 3
	saved.MaxHealth = 12
	saved.HighPoints = 77
	saved.DamageZoneSize = 90

	g, _, _ := newTestGame(t, &saved)
	assert.Equal(t, 3, g.Level().CurrentLevel())
	assert.Equal(t, 12.0, g.Health().Max())
	assert.Equal(t, 12.0, g.Health().Current())
	assert.Equal(t, 77, g.HighPoints())
	assert.Equal(t, 90.0, g.Upgrades().DamageZoneSize())
	assert.Equal(t, testWidth, g.ScreenWidth())
}

func TestSpawnNodeScalesHPAndNotifies(t *testing.T) {
	saved := component.DefaultSaveData()
	saved.CurrentLevel = 5
	g, _, rec := newTestGame(t, &saved)

	stillNode(g, component.Hexagon, 100, 100)

	require.Len(t, g.Nodes(), 1)
	n := g.Nodes()[0]
	assert.InDelta(t, 180, n.HP(), 1e-9)
	assert.InDelta(t, testHeight*config.NodeSizeRatio, n.Size(), 1e-9)

	spawned := rec.ofType(event.NodeSpawned)
	require.Len(t, spawned, 1)
	assert.Equal(t, component.Hexagon, spawned[0].Shape)
	assert.Equal(t, 180, spawned[0].HP)
}

func TestDamageZoneHitsNodeUnderCursor(t *testing.T) {
	g, _, rec := newTestGame(t, nil)
	stillNode(g, component.Circle, 400, 300)
	stillNode(g, component.Circle, 1000, 600)
	g.SetCursor(400, 300)

	g.Update(config.DamageInterval)

	damaged := rec.ofType(event.NodeDamaged)
	require.Len(t, damaged, 1)
	assert.Equal(t, int(config.DamagePerTickDefault), damaged[0].Damage)
	assert.InDelta(t, config.NodeBaseHP-config.DamagePerTickDefault, g.Nodes()[0].HP(), 1e-9)
	assert.Equal(t, config.NodeBaseHP, g.Nodes()[1].HP())

	// one hit plus one depletion tick
	assert.InDelta(t, config.HealthDefault-config.DamageBaseHealthCost-config.HealthDepletionBase, g.Health().Current(), 1e-9)
}

func killNodeAndCollect(t *testing.T, g *Game) {
	t.Helper()
	stillNode(g, component.Square, 400, 300)
	g.Nodes()[0].SetHP(10)
	g.SetCursor(400, 300)

	g.Update(config.DamageInterval) // kill, drop pickups
	require.Empty(t, g.Nodes())
	g.Update(0.2)  // pickups age past the collect delay
	g.Update(0.01) // collected
}

func TestNodeDeathDropsPickupsAndCollects(t *testing.T) {
	g, _, rec := newTestGame(t, nil)
	killNodeAndCollect(t, g)

	destroyed := rec.ofType(event.NodeDestroyed)
	require.Len(t, destroyed, 1)
	assert.Equal(t, config.PointsPerNode, destroyed[0].Points)
	assert.Equal(t, component.Square, destroyed[0].Shape)
	assert.Equal(t, 1, g.NodesDestroyed())
	assert.Equal(t, 1, g.Level().NodesDestroyedThisLevel())

	points := g.Pickups().Points()
	assert.GreaterOrEqual(t, points, config.PickupMinCount)
	assert.Empty(t, g.Pickups().Pickups())
	assert.Len(t, g.CollectedThisFrame(), points)

	changed := rec.ofType(event.PointsChanged)
	require.Len(t, changed, 1)
	assert.Equal(t, points, changed[0].Points)
	assert.Equal(t, points, changed[0].Delta)
}

func TestOffscreenNodesAreRemovedSilently(t *testing.T) {
	g, _, rec := newTestGame(t, nil)
	stillNode(g, component.Circle, -config.OffscreenMargin-1, 100)
	stillNode(g, component.Circle, 100, testHeight+config.OffscreenMargin+1)
	stillNode(g, component.Circle, -config.OffscreenMargin+1, 100)

	g.Update(0.01)
	assert.Len(t, g.Nodes(), 1)
	assert.Empty(t, rec.ofType(event.NodeDestroyed))
}

func TestBossLifecycle(t *testing.T) {
	saved := component.DefaultSaveData()
	saved.CurrentLevel = 2
	g, _, rec := newTestGame(t, &saved)
	g.SetCursor(-10000, -10000)

	g.Update(config.LevelDuration)

	spawned := rec.ofType(event.BossSpawned)
	require.Len(t, spawned, 1)
	assert.Equal(t, config.BossHPBase+config.BossHPPerLevel, spawned[0].BossHP)
	assert.True(t, g.Level().IsBossActive())

	boss := g.Boss()
	require.NotNil(t, boss)
	assert.Same(t, boss, g.World.Boss())
	assert.InDelta(t, testHeight*config.BossSizeRatio, boss.Size(), 1e-9)

	// the boss is never dropped for leaving the screen
	g.Update(100)
	require.NotNil(t, g.Boss())
	assert.Len(t, rec.ofType(event.BossSpawned), 1)

	boss.Kill()
	g.Update(0.01)

	defeated := rec.ofType(event.BossDefeated)
	require.Len(t, defeated, 1)
	assert.Equal(t, config.PointsPerBossLevel*2, defeated[0].Points)
	assert.True(t, g.Level().IsLevelCompleted())
	assert.False(t, g.Level().IsBossActive())
	assert.Nil(t, g.Boss())
}

func TestGameOverIsSentOnce(t *testing.T) {
	g, _, rec := newTestGame(t, nil)
	g.Health().Reduce(1000)

	g.Update(0.01)
	g.Update(0.01)
	assert.True(t, g.IsGameOver())
	assert.Len(t, rec.ofType(event.GameOver), 1)

	g.Reset()
	assert.False(t, g.IsGameOver())
	g.Health().Reduce(1000)
	g.Update(0.01)
	assert.Len(t, rec.ofType(event.GameOver), 2)
}

func TestSaveProgressCommitsOnlyNewProgress(t *testing.T) {
	g, store, _ := newTestGame(t, nil)
	killNodeAndCollect(t, g)
	points := g.Pickups().Points()

	g.SaveProgress()
	g.SaveProgress()

	require.NotNil(t, store.data)
	assert.Equal(t, points, store.data.Points)
	assert.Equal(t, points, store.data.HighPoints)
	assert.Equal(t, points, g.HighPoints())
	assert.Equal(t, 1, store.data.TotalNodesDestroyed)
	assert.Equal(t, config.DamageZoneDefaultSize, store.data.DamageZoneSize)
}

func TestFinishRunCountsOncePerRun(t *testing.T) {
	g, store, _ := newTestGame(t, nil)

	g.FinishRun()
	g.FinishRun()
	assert.Equal(t, 1, store.data.GamesPlayed)

	g.Reset()
	g.FinishRun()
	assert.Equal(t, 2, store.data.GamesPlayed)
}

func TestStartNextLevel(t *testing.T) {
	g, store, rec := newTestGame(t, nil)
	stillNode(g, component.Circle, 10, 10)
	g.Health().Reduce(3)

	g.StartNextLevel()

	assert.Equal(t, 2, g.Level().CurrentLevel())
	assert.Empty(t, g.Nodes())
	assert.Equal(t, g.Health().Max(), g.Health().Current())
	assert.Equal(t, 2, store.data.CurrentLevel)

	completed := rec.ofType(event.LevelCompleted)
	require.Len(t, completed, 1)
	assert.Equal(t, 1, completed[0].Level)
	assert.Equal(t, 2, completed[0].NextLevel)
}

func TestResetReturnsToSavedLevel(t *testing.T) {
	saved := component.DefaultSaveData()
	saved.CurrentLevel = 4
	g, _, _ := newTestGame(t, &saved)
	g.Level().StartNextLevel()
	stillNode(g, component.Circle, 10, 10)
	g.Update(1)

	g.Reset()
	assert.Equal(t, 4, g.Level().CurrentLevel())
	assert.Empty(t, g.Nodes())
	assert.Zero(t, g.ElapsedTime())
	assert.Zero(t, g.NodesDestroyed())
}

func TestUpgradePurchaseFeedsTheGame(t *testing.T) {
	saved := component.DefaultSaveData()
	saved.Points = config.DamageZoneUpgradeCost
	g, store, _ := newTestGame(t, &saved)

	require.True(t, g.Upgrades().Purchase(component.UpgradeDamageZone))
	assert.Zero(t, store.data.Points)

	g.SaveProgress()
	assert.Equal(t, config.DamageZoneDefaultSize+config.DamageZoneUpgradeAmount, store.data.DamageZoneSize)
	assert.Zero(t, store.data.Points)
}
