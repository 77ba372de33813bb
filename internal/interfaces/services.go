// internal/interfaces/services.go
package interfaces

import (
	"node-zero/internal/component"
	"node-zero/internal/defs"
	"node-zero/internal/entity"
)

// HealthService tracks the player's health pool.
type HealthService interface {
	Initialize(maxHealth, regenRate float64)
	Update(deltaTime float64)
	Reduce(amount float64)
	RestoreToMax()
	Reset(maxHealth float64)
	SetMaxHealth(maxHealth float64)
	SetRegenRate(rate float64)
	SetCurrentLevel(level int)
	Current() float64
	Max() float64
	IsZero() bool
}

// SpawnService decides when and where regular nodes enter the field.
type SpawnService interface {
	Initialize(screenWidth, screenHeight int)
	SetCurrentLevel(level int)
	UpdateAutoSpawn(deltaTime float64)
	ShouldAutoSpawn() bool
	ResetSpawnTimer()
	NextSpawn() component.SpawnInfo
	CalculateNodeHP(baseHP float64) float64
}

// LevelService tracks the level timer, boss and completion flags.
type LevelService interface {
	Initialize(startLevel int)
	Update(deltaTime float64)
	Reset(level int)
	StartNextLevel()
	IncrementNodesDestroyed()
	SetBossActive(active bool)
	SetLevelCompleted(completed bool)
	CurrentLevel() int
	NodesDestroyedThisLevel() int
	IsBossActive() bool
	IsLevelCompleted() bool
	ShouldSpawnBoss() bool
	ProgressPercent() float64
}

// DamageZoneService applies the periodic damage of the cursor zone.
type DamageZoneService interface {
	UpdateTimer(deltaTime float64)
	ResetTimer()
	ShouldDealDamage() bool
	Process(centerX, centerY, zoneSize, damage float64, level int, nodes []*entity.Node, onDamaged func(n *entity.Node, healthCost float64))
}

// PickupService owns the point pickups dropped by destroyed nodes.
type PickupService interface {
	Initialize(screenHeight int)
	Update(deltaTime float64)
	Reset()
	SpawnPointPickups(origin component.Position)
	SpawnPointPickupsN(origin component.Position, count, points int)
	CollectPickup(id int) bool
	ProcessCollection(centerX, centerY, zoneSize float64) []component.PointPickup
	Pickups() []component.PointPickup
	Points() int
}

// UpgradeService sells upgrades against the persisted wallet.
type UpgradeService interface {
	Initialize(maxHealth, regenRate, zoneSize, damage float64)
	SetSaveService(save SaveService)
	Purchase(kind component.UpgradeKind) bool
	CanPurchase(kind component.UpgradeKind) bool
	Cost(kind component.UpgradeKind) int
	Definition(kind component.UpgradeKind) defs.UpgradeDefinition
	MaxHealth() float64
	RegenRate() float64
	DamageZoneSize() float64
	DamagePerTick() float64
}

// SaveService keeps the persisted progression.
type SaveService interface {
	LoadProgress() component.SaveData
	SaveProgress(data component.SaveData) error
	Points() int
	HighPoints() int
	CurrentData() component.SaveData
}
