// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"node-zero/internal/config"
	"node-zero/internal/utils"
)

const borderWidth = 1

// Bar is a framed horizontal fill bar with a caption above it.
type Bar struct {
	X, Y, Width, Height float32
	Fill                color.Color
}

// Draw fills ratio (clamped to [0, 1]) of the bar.
func (b *Bar) Draw(screen *ebiten.Image, ratio float64, caption string) {
	ratio = utils.Clamp(ratio, 0, 1)
	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, borderWidth, config.ButtonStroke, true)
	fillWidth := float32(float64(b.Width-borderWidth*2) * ratio)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, b.X+borderWidth, b.Y+borderWidth, fillWidth, b.Height-borderWidth*2, b.Fill, true)
	}
	if caption != "" {
		text.Draw(screen, caption, DefaultFace, int(b.X), int(b.Y)-4, config.TextLightColor)
	}
}

// HUD shows health, level progress and points during play.
type HUD struct {
	Health   *Bar
	Progress *Bar
	points   *Label
}

func NewHUD(screenWidth int) *HUD {
	margin := float32(config.HUDMargin)
	top := margin + 14
	health := &Bar{X: margin, Y: top, Width: config.HUDBarWidth, Height: config.HUDBarHeight, Fill: config.HealthColor}
	progress := &Bar{X: float32(screenWidth) - margin - config.HUDBarWidth, Y: top, Width: config.HUDBarWidth, Height: config.HUDBarHeight, Fill: config.ProgressColor}
	return &HUD{
		Health:   health,
		Progress: progress,
		points:   NewLabel(float64(screenWidth)/2, float64(top), "", true),
	}
}

// HealthCaption formats current and max health.
func HealthCaption(current, maxHealth float64) string {
	return fmt.Sprintf("HP %.1f / %.0f", current, maxHealth)
}

func (h *HUD) Draw(screen *ebiten.Image, health, maxHealth float64, level int, progress float64, points int) {
	ratio := 0.0
	if maxHealth > 0 {
		ratio = health / maxHealth
	}
	h.Health.Draw(screen, ratio, HealthCaption(health, maxHealth))
	h.Progress.Draw(screen, progress/config.MaxProgressPercent, fmt.Sprintf("Level %d  %.0f%%", level, progress))
	h.points.SetText(fmt.Sprintf("Points: %d", points))
	h.points.Draw(screen)
}
