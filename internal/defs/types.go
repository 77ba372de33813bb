// internal/defs/types.go
package defs

// UpgradeDefinition describes one entry of the upgrade shop.
type UpgradeDefinition struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Cost        int     `json:"cost"`
	Amount      float64 `json:"amount"`
	Cap         float64 `json:"cap,omitempty"` // zero means uncapped
}

// Capped reports whether value already reached the cap of the upgrade.
func (d UpgradeDefinition) Capped(value float64) bool {
	return d.Cap > 0 && value >= d.Cap
}
