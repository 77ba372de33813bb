// internal/component/movement.go
package component

import "math"

// Position is a point in world space. The origin is the top-left corner of the screen.
type Position struct {
	X, Y float64
}

// Dist returns the euclidean distance to o.
func (p Position) Dist(o Position) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// Normalize returns the unit vector of (dx, dy), or (0, 0) for a zero vector.
func Normalize(dx, dy float64) (float64, float64) {
	length := math.Sqrt(dx*dx + dy*dy)
	if length > 0 {
		return dx / length, dy / length
	}
	return 0, 0
}
