package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"node-zero/internal/component"
	"node-zero/internal/config"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the run over the playing field.
type PauseState struct {
	*overlayState
}

func NewPauseState(sm *StateMachine) *PauseState {
	s := &PauseState{}
	s.overlayState = newOverlayState(sm, "GAME PAUSED", config.TitleColor, true,
		[]string{"Resume", "Terminate"},
		[]func(){
			func() { sm.Change(component.Playing) },
			func() {
				sm.Game.SaveProgress()
				sm.Game.FinishRun()
				sm.Change(component.GameOver)
			},
		})
	s.footer.SetText("Press ESC to resume")
	return s
}

func (s *PauseState) Update(deltaTime float64) {
	if s.sm.Input.KeyJustPressed(ebiten.KeyEscape) {
		s.sm.Change(component.Playing)
		return
	}
	s.overlayState.Update(deltaTime)
}
