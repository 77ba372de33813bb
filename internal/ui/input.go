// internal/ui/input.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is the per-frame pointer and keyboard state the widgets read.
type Input interface {
	CursorPosition() (float64, float64)
	JustClicked() bool  // left button went down this frame
	JustReleased() bool // left button went up this frame
	Pressed() bool
	KeyJustPressed(key ebiten.Key) bool
}

// EbitenInput reads the live ebiten input state.
type EbitenInput struct{}

func (EbitenInput) CursorPosition() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

func (EbitenInput) JustClicked() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (EbitenInput) JustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

func (EbitenInput) Pressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (EbitenInput) KeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}
