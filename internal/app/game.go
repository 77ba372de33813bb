// internal/app/game.go
package app

import (
	"log/slog"

	"node-zero/internal/component"
	"node-zero/internal/entity"
	"node-zero/internal/event"
	"node-zero/internal/interfaces"
	"node-zero/internal/storage"
	"node-zero/internal/system"
	"node-zero/internal/utils"
)

// Options configure a new Game.
type Options struct {
	Store      storage.Store
	Logger     *slog.Logger
	Seed       int64             // 0 picks a time based seed
	Dispatcher *event.Dispatcher // nil creates a private one
}

// Game holds the gameplay state and runs one simulation step per frame.
type Game struct {
	EventDispatcher *event.Dispatcher
	World           *entity.World
	Rng             *utils.PRNG

	healthService     interfaces.HealthService
	spawnService      interfaces.SpawnService
	levelService      interfaces.LevelService
	damageZoneService interfaces.DamageZoneService
	pickupService     interfaces.PickupService
	upgradeService    interfaces.UpgradeService
	saveService       interfaces.SaveService
	logger            *slog.Logger

	screenWidth  int
	screenHeight int
	elapsedTime  float64
	cursor       component.Position

	nodesDestroyed     int
	highPoints         int
	collectedThisFrame []component.PointPickup

	// progress already written to the save during this run
	committedNodes  int
	committedPoints int
	gameOverSent    bool
	runFinished     bool
}

// NewGame loads the saved progression and wires the gameplay services.
func NewGame(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	dispatcher := opts.Dispatcher
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	rng := utils.NewPRNG(opts.Seed)

	g := &Game{
		EventDispatcher:   dispatcher,
		World:             entity.NewWorld(),
		Rng:               rng,
		healthService:     system.NewHealthSystem(),
		spawnService:      system.NewSpawnSystem(rng),
		levelService:      system.NewLevelSystem(),
		damageZoneService: system.NewDamageZoneSystem(),
		pickupService:     system.NewPickupSystem(rng),
		upgradeService:    system.NewUpgradeSystem(logger),
		saveService:       system.NewSaveSystem(opts.Store, logger),
		logger:            logger,
	}

	saveData := g.saveService.CurrentData()
	g.highPoints = saveData.HighPoints

	g.upgradeService.SetSaveService(g.saveService)
	g.upgradeService.Initialize(saveData.MaxHealth, saveData.RegenRate, saveData.DamageZoneSize, saveData.DamagePerTick)
	g.healthService.Initialize(saveData.MaxHealth, saveData.RegenRate)
	g.levelService.Initialize(saveData.CurrentLevel)

	logger.Info("progress loaded",
		"level", saveData.CurrentLevel,
		"points", saveData.Points,
		"high_points", saveData.HighPoints,
		"games_played", saveData.GamesPlayed)
	return g
}

// Initialize sizes the field. It must be called before the first Update.
func (g *Game) Initialize(screenWidth, screenHeight int) {
	g.screenWidth = screenWidth
	g.screenHeight = screenHeight

	g.pickupService.Initialize(screenHeight)
	g.spawnService.Initialize(screenWidth, screenHeight)
	g.spawnService.SetCurrentLevel(g.levelService.CurrentLevel())
}

// Update advances the simulation by deltaTime seconds.
func (g *Game) Update(deltaTime float64) {
	g.collectedThisFrame = nil

	g.healthService.Update(deltaTime)
	g.healthService.SetCurrentLevel(g.levelService.CurrentLevel())
	g.levelService.Update(deltaTime)

	g.handleSpawning(deltaTime)
	g.handleDamageZone(deltaTime)
	g.handlePickups(deltaTime)
	g.updateNodes(deltaTime)

	g.elapsedTime += deltaTime

	if g.healthService.IsZero() && !g.gameOverSent {
		g.gameOverSent = true
		e := event.New(event.GameOver, g.elapsedTime)
		e.Level = g.levelService.CurrentLevel()
		e.Points = g.pickupService.Points()
		g.Notify(e)
	}
}

// IsGameOver reports whether the player's health ran out.
func (g *Game) IsGameOver() bool { return g.healthService.IsZero() }

// SetCursor moves the damage zone.
func (g *Game) SetCursor(x, y float64) { g.cursor = component.Position{X: x, Y: y} }

func (g *Game) Cursor() component.Position { return g.cursor }

func (g *Game) ScreenWidth() int                            { return g.screenWidth }
func (g *Game) ScreenHeight() int                           { return g.screenHeight }
func (g *Game) Nodes() []*entity.Node                       { return g.World.Nodes() }
func (g *Game) Boss() *entity.Node                          { return g.World.Boss() }
func (g *Game) CollectedThisFrame() []component.PointPickup { return g.collectedThisFrame }
func (g *Game) NodesDestroyed() int                         { return g.nodesDestroyed }
func (g *Game) HighPoints() int                             { return g.highPoints }
func (g *Game) ElapsedTime() float64                        { return g.elapsedTime }
func (g *Game) Health() interfaces.HealthService            { return g.healthService }
func (g *Game) Spawn() interfaces.SpawnService              { return g.spawnService }
func (g *Game) Level() interfaces.LevelService              { return g.levelService }
func (g *Game) DamageZone() interfaces.DamageZoneService    { return g.damageZoneService }
func (g *Game) Pickups() interfaces.PickupService           { return g.pickupService }
func (g *Game) Upgrades() interfaces.UpgradeService         { return g.upgradeService }
func (g *Game) Save() interfaces.SaveService                { return g.saveService }
func (g *Game) Subscribe(t event.Type, l event.Listener)    { g.EventDispatcher.Subscribe(t, l) }
func (g *Game) Attach(l event.Listener)                     { g.EventDispatcher.SubscribeAll(l) }
func (g *Game) Detach(l event.Listener)                     { g.EventDispatcher.UnsubscribeAll(l) }
func (g *Game) Notify(e event.Event)                        { g.EventDispatcher.Dispatch(e) }

var _ interfaces.Game = (*Game)(nil)
