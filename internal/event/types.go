// internal/event/types.go
package event

const (
	NodeSpawned       Type = "NodeSpawned"
	NodeDamaged       Type = "NodeDamaged"
	NodeDestroyed     Type = "NodeDestroyed"
	PointsChanged     Type = "PointsChanged"
	MultiplierChanged Type = "MultiplierChanged"
	GameStateChanged  Type = "GameStateChanged" // screen switched
	GameOver          Type = "GameOver"         // player health reached zero
	BossSpawned       Type = "BossSpawned"
	BossDefeated      Type = "BossDefeated"
	LevelCompleted    Type = "LevelCompleted"
)

// Types lists every event type in declaration order.
var Types = []Type{
	NodeSpawned,
	NodeDamaged,
	NodeDestroyed,
	PointsChanged,
	MultiplierChanged,
	GameStateChanged,
	GameOver,
	BossSpawned,
	BossDefeated,
	LevelCompleted,
}
