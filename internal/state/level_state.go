// internal/state/level_state.go
package state

import (
	"fmt"

	"node-zero/internal/component"
	"node-zero/internal/config"
	"node-zero/internal/ui"
)

// LevelCompletedState is shown after the boss of a level is defeated.
type LevelCompletedState struct {
	*overlayState
	points *ui.Label
}

func NewLevelCompletedState(sm *StateMachine) *LevelCompletedState {
	s := &LevelCompletedState{}
	s.overlayState = newOverlayState(sm, "LEVEL COMPLETED!", config.LevelDoneColor, true,
		[]string{"Continue"},
		[]func(){
			func() {
				sm.Game.StartNextLevel()
				sm.Change(component.Playing)
			},
		})
	s.points = subtitle(sm)
	s.menu.Add(s.points)
	return s
}

func (s *LevelCompletedState) Enter() {
	s.points.SetText(fmt.Sprintf("Points collected: %d", s.sm.Game.Pickups().Points()))
}

func subtitle(sm *StateMachine) *ui.Label {
	l := ui.NewLabel(float64(sm.Game.ScreenWidth())/2, float64(sm.Game.ScreenHeight())*config.SubtitleYRatio, "", true)
	l.Face = sm.Face
	return l
}
