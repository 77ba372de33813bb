// internal/effect/trails.go
package effect

import (
	"node-zero/internal/component"
	"node-zero/internal/config"
	"node-zero/internal/utils"
)

// CollectTrails animates collected pickups flying into the cursor.
type CollectTrails struct {
	items []component.CollectTrail
}

func NewCollectTrails() *CollectTrails {
	return &CollectTrails{}
}

// Add starts a trail for every collected pickup, dropping the oldest past the cap.
func (c *CollectTrails) Add(collected []component.PointPickup) {
	for _, p := range collected {
		c.items = append(c.items, component.CollectTrail{
			Start:    p.Position,
			Duration: config.CollectTrailDuration,
			Size:     p.Size,
		})
	}
	if over := len(c.items) - config.MaxCollectTrails; over > 0 {
		c.items = append(c.items[:0], c.items[over:]...)
	}
}

func (c *CollectTrails) Update(deltaTime float64) {
	kept := c.items[:0]
	for _, t := range c.items {
		t.Elapsed += deltaTime
		if t.Elapsed < t.Duration {
			kept = append(kept, t)
		}
	}
	c.items = kept
}

// Position is where trail is drawn when flying toward target. It eases out.
func Position(t component.CollectTrail, target component.Position) component.Position {
	k := t.Progress()
	k = 1 - (1-k)*(1-k)
	return component.Position{
		X: utils.Lerp(t.Start.X, target.X, k),
		Y: utils.Lerp(t.Start.Y, target.Y, k),
	}
}

func (c *CollectTrails) Items() []component.CollectTrail { return c.items }
func (c *CollectTrails) Len() int                        { return len(c.items) }
func (c *CollectTrails) Clear()                          { c.items = nil }
