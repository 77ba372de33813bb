// internal/component/visual.go
package component

import "image/color"

// Particle is a short-lived spark thrown off a damaged node.
type Particle struct {
	Position    Position
	VX, VY      float64
	Lifetime    float64 // time left
	MaxLifetime float64
	Size        float64
	Color       color.RGBA
}

// LifeRatio is 1 for a fresh particle and 0 for a spent one.
func (p Particle) LifeRatio() float64 {
	if p.MaxLifetime <= 0 {
		return 0
	}
	return p.Lifetime / p.MaxLifetime
}

// CollectTrail animates a collected pickup flying to the cursor.
type CollectTrail struct {
	Start    Position
	Elapsed  float64
	Duration float64
	Size     float64
}

// Progress is the share of the animation already played, in [0, 1].
func (t CollectTrail) Progress() float64 {
	if t.Duration <= 0 {
		return 1
	}
	return min(t.Elapsed/t.Duration, 1)
}
