// internal/component/save.go
package component

import "node-zero/internal/config"

// SaveData is the progression persisted between sessions.
type SaveData struct {
	HighPoints          int `json:"highPoints"`
	Points              int `json:"points"` // wallet spent in the upgrade shop
	GamesPlayed         int `json:"gamesPlayed"`
	TotalNodesDestroyed int `json:"totalNodesDestroyed"`
	CurrentLevel        int `json:"currentLevel"`

	MaxHealth      float64 `json:"maxHealth"`
	RegenRate      float64 `json:"regenRate"`
	DamageZoneSize float64 `json:"damageZoneSize"`
	DamagePerTick  float64 `json:"damagePerTick"`
}

// DefaultSaveData is the progression of a new player.
func DefaultSaveData() SaveData {
	return SaveData{
		CurrentLevel:   config.MinLevel,
		MaxHealth:      config.HealthDefault,
		DamageZoneSize: config.DamageZoneDefaultSize,
		DamagePerTick:  config.DamagePerTickDefault,
	}
}
