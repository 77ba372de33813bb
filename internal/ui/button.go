// internal/ui/button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"node-zero/internal/config"
)

// Button fires OnClick when the left button is released over it after being
// pressed over it.
type Button struct {
	X, Y, Width, Height float64
	Text                string
	Face                font.Face
	TextColor           color.Color
	NormalColor         color.Color
	HoverColor          color.Color
	PressColor          color.Color
	BorderColor         color.Color
	OnClick             func()

	hovered bool
	pressed bool
	active  bool
}

// NewButton creates an active button with the default palette.
func NewButton(x, y, width, height float64, label string, onClick func()) *Button {
	return &Button{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		Text:        label,
		Face:        DefaultFace,
		TextColor:   config.TextLightColor,
		NormalColor: config.ButtonNormalColor,
		HoverColor:  config.ButtonHoverColor,
		PressColor:  config.ButtonPressColor,
		BorderColor: config.ButtonStroke,
		OnClick:     onClick,
		active:      true,
	}
}

// Contains reports whether (x, y) is inside the button.
func (b *Button) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.Width && y >= b.Y && y <= b.Y+b.Height
}

func (b *Button) Update(in Input) {
	if !b.active {
		b.hovered = false
		b.pressed = false
		return
	}

	b.hovered = b.Contains(in.CursorPosition())
	if in.JustClicked() && b.hovered {
		b.pressed = true
	}
	if in.JustReleased() {
		fire := b.pressed && b.hovered
		b.pressed = false
		if fire && b.OnClick != nil {
			b.OnClick()
		}
		return
	}
	if !in.Pressed() {
		b.pressed = false
	}
}

func (b *Button) Draw(screen *ebiten.Image) {
	if !b.active {
		return
	}
	bg := b.NormalColor
	switch {
	case b.pressed && b.hovered:
		bg = b.PressColor
	case b.hovered:
		bg = b.HoverColor
	}

	x, y, w, h := float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height)
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 2, b.BorderColor, false)
	DrawCenteredText(screen, b.Text, b.Face, b.X+b.Width/2, b.Y+b.Height/2, b.TextColor)
}

func (b *Button) IsHovered() bool       { return b.hovered }
func (b *Button) IsPressed() bool       { return b.pressed }
func (b *Button) IsActive() bool        { return b.active }
func (b *Button) SetActive(active bool) { b.active = active }
