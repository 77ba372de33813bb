// internal/component/pickup.go
package component

// PointPickup is a collectible dropped by a destroyed node.
type PointPickup struct {
	ID            int
	Position      Position
	SpawnOrigin   Position // where the cluster was dropped
	Size          float64
	Lifetime      float64
	RemainingTime float64
	Elapsed       float64 // time alive, accumulated frame by frame
	Points        int
}

// LifeRatio is 1 for a fresh pickup and 0 for an expired one.
func (p PointPickup) LifeRatio() float64 {
	if p.Lifetime <= 0 {
		return 0
	}
	return p.RemainingTime / p.Lifetime
}

// Age is the time since the pickup was dropped.
func (p PointPickup) Age() float64 {
	return p.Elapsed
}
