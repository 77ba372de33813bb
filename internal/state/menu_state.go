// internal/state/menu_state.go
package state

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"node-zero/internal/component"
	"node-zero/internal/config"
	"node-zero/internal/ui"
)

// overlayState is a screen made of a title and a column of buttons.
type overlayState struct {
	sm      *StateMachine
	menu    *ui.Menu
	title   *ui.Label
	footer  *ui.Label
	overlay bool // draw the playing field under a dim overlay
}

func newOverlayState(sm *StateMachine, title string, titleColor color.Color, overlay bool, labels []string, actions []func()) *overlayState {
	w, h := sm.Game.ScreenWidth(), sm.Game.ScreenHeight()

	t := ui.NewLabel(float64(w)/2, float64(h)*config.TitleYRatio, title, true)
	t.Face = sm.TitleFace
	t.Color = titleColor

	footer := ui.NewLabel(float64(w)/2, float64(h)*config.FooterYRatio, "", true)
	footer.Face = sm.Face
	footer.Color = config.TextDimColor

	menu := ui.NewMenu(t, footer)
	for _, b := range ui.ButtonColumn(w, h, float64(h)/2, labels, actions) {
		b.Face = sm.Face
		menu.Add(b)
	}
	return &overlayState{sm: sm, menu: menu, title: t, footer: footer, overlay: overlay}
}

func (s *overlayState) Enter() {}
func (s *overlayState) Exit()  {}

func (s *overlayState) Update(float64) {
	s.menu.Update(s.sm.Input)
}

func (s *overlayState) Draw(screen *ebiten.Image) {
	if s.overlay {
		s.sm.drawWorld(screen)
		bounds := screen.Bounds()
		vector.DrawFilledRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), config.OverlayColor, false)
	} else {
		screen.Fill(config.BackgroundColor)
	}
	s.menu.Draw(screen)
}

// MenuState is the main menu.
type MenuState struct {
	*overlayState
}

func NewMenuState(sm *StateMachine) *MenuState {
	s := &MenuState{}
	s.overlayState = newOverlayState(sm, "NodeZero", config.TitleColor, false,
		[]string{"Play", "Upgrades", "Quit"},
		[]func(){
			func() { sm.Change(component.Playing) },
			func() { sm.Change(component.Upgrades) },
			func() { sm.Change(component.Quit) },
		})
	return s
}

func (s *MenuState) Enter() {
	s.footer.SetText(highScoreText(s.sm.Game.Save().HighPoints()))
}

func highScoreText(points int) string {
	return fmt.Sprintf("High score: %d", points)
}
