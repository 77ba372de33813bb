package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"node-zero/internal/config"
)

// Label is static text. When Centered, (X, Y) is the centre of the text.
type Label struct {
	X, Y     float64
	Face     font.Face
	Color    color.Color
	Centered bool

	text   string
	active bool
}

func NewLabel(x, y float64, s string, centered bool) *Label {
	return &Label{
		X:        x,
		Y:        y,
		Face:     DefaultFace,
		Color:    config.TextLightColor,
		Centered: centered,
		text:     s,
		active:   true,
	}
}

func (l *Label) SetText(s string) { l.text = s }
func (l *Label) Text() string     { return l.text }

func (l *Label) Update(Input) {}

func (l *Label) Draw(screen *ebiten.Image) {
	if !l.active || l.text == "" {
		return
	}
	if l.Centered {
		DrawCenteredText(screen, l.text, l.Face, l.X, l.Y, l.Color)
		return
	}
	text.Draw(screen, l.text, l.Face, int(l.X), int(l.Y), l.Color)
}

func (l *Label) IsHovered() bool       { return false }
func (l *Label) IsActive() bool        { return l.active }
func (l *Label) SetActive(active bool) { l.active = active }
