// internal/system/services.go
package system

import "node-zero/internal/interfaces"

var (
	_ interfaces.HealthService     = (*HealthSystem)(nil)
	_ interfaces.SpawnService      = (*SpawnSystem)(nil)
	_ interfaces.LevelService      = (*LevelSystem)(nil)
	_ interfaces.DamageZoneService = (*DamageZoneSystem)(nil)
	_ interfaces.PickupService     = (*PickupSystem)(nil)
	_ interfaces.UpgradeService    = (*UpgradeSystem)(nil)
	_ interfaces.SaveService       = (*SaveSystem)(nil)
)
