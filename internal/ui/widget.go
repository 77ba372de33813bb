// internal/ui/widget.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Widget is an element of a screen's widget tree.
type Widget interface {
	Update(in Input)
	Draw(screen *ebiten.Image)
	IsHovered() bool
	IsActive() bool
	SetActive(active bool)
}

// DefaultFace is the bitmap font used across the UI.
var DefaultFace font.Face = basicfont.Face7x13

// DrawCenteredText draws s centred on (cx, cy).
func DrawCenteredText(screen *ebiten.Image, s string, face font.Face, cx, cy float64, clr color.Color) {
	b := text.BoundString(face, s)
	x := int(cx) - b.Dx()/2 - b.Min.X
	y := int(cy) - b.Dy()/2 - b.Min.Y
	text.Draw(screen, s, face, x, y, clr)
}
