// internal/state/gameover_state.go
package state

import (
	"fmt"

	"node-zero/internal/component"
	"node-zero/internal/config"
	"node-zero/internal/ui"
)

// GameOverState ends a run. Both choices start a fresh run at the saved level.
type GameOverState struct {
	*overlayState
	points *ui.Label
}

func NewGameOverState(sm *StateMachine) *GameOverState {
	s := &GameOverState{}
	s.overlayState = newOverlayState(sm, "GAME OVER", config.GameOverColor, true,
		[]string{"Restart Level", "Main Menu"},
		[]func(){
			func() {
				sm.Game.Reset()
				sm.Change(component.Playing)
			},
			func() {
				sm.Game.Reset()
				sm.Change(component.MainMenu)
			},
		})
	s.points = subtitle(sm)
	s.menu.Add(s.points)
	return s
}

func (s *GameOverState) Enter() {
	g := s.sm.Game
	s.points.SetText(fmt.Sprintf("Points: %d", g.Pickups().Points()))
	s.footer.SetText(fmt.Sprintf("Nodes destroyed: %d   %s", g.NodesDestroyed(), highScoreText(g.HighPoints())))
}
