package interfaces

import (
	"node-zero/internal/component"
	"node-zero/internal/entity"
	"node-zero/internal/event"
)

// Game is what the screens need from the gameplay core.
type Game interface {
	Update(deltaTime float64)
	Reset()
	StartNextLevel()
	SaveProgress()
	FinishRun()
	IsGameOver() bool
	SetCursor(x, y float64)
	Cursor() component.Position

	ScreenWidth() int
	ScreenHeight() int
	Nodes() []*entity.Node
	Boss() *entity.Node // nil when no boss is on the field
	CollectedThisFrame() []component.PointPickup
	NodesDestroyed() int
	HighPoints() int
	ElapsedTime() float64

	Health() HealthService
	Level() LevelService
	Pickups() PickupService
	Upgrades() UpgradeService
	Save() SaveService

	Subscribe(t event.Type, l event.Listener)
	Notify(e event.Event)
}
