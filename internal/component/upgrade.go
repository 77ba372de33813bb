// internal/component/upgrade.go
package component

// UpgradeKind identifies one of the purchasable upgrades.
type UpgradeKind int

const (
	UpgradeHealth UpgradeKind = iota
	UpgradeRegen
	UpgradeDamageZone
	UpgradeDamage
)

// UpgradeKinds lists every upgrade in shop order.
var UpgradeKinds = []UpgradeKind{UpgradeHealth, UpgradeRegen, UpgradeDamageZone, UpgradeDamage}

// String returns the catalog id of the upgrade.
func (k UpgradeKind) String() string {
	switch k {
	case UpgradeHealth:
		return "health"
	case UpgradeRegen:
		return "regen"
	case UpgradeDamageZone:
		return "damage_zone"
	case UpgradeDamage:
		return "damage"
	default:
		return "unknown"
	}
}
