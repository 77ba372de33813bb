// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"node-zero/internal/component"
	"node-zero/internal/ui"
)

// GameState runs the simulation and draws the playing field with the HUD.
type GameState struct {
	sm  *StateMachine
	hud *ui.HUD
}

func NewGameState(sm *StateMachine) *GameState {
	return &GameState{
		sm:  sm,
		hud: ui.NewHUD(sm.Game.ScreenWidth()),
	}
}

func (s *GameState) Enter() {}
func (s *GameState) Exit()  {}

func (s *GameState) Update(deltaTime float64) {
	g := s.sm.Game
	if s.sm.Input.KeyJustPressed(ebiten.KeyEscape) {
		s.sm.Change(component.Paused)
		return
	}

	g.SetCursor(s.sm.Input.CursorPosition())
	g.Update(deltaTime)
	if s.sm.Effects != nil {
		s.sm.Effects.Update(deltaTime, g.CollectedThisFrame())
	}

	switch {
	case g.IsGameOver():
		g.FinishRun()
		s.sm.Change(component.GameOver)
	case g.Level().IsLevelCompleted():
		s.sm.Change(component.LevelCompleted)
	}
}

func (s *GameState) Draw(screen *ebiten.Image) {
	s.sm.drawWorld(screen)
	s.drawHUD(screen)
}

func (s *GameState) drawHUD(screen *ebiten.Image) {
	g := s.sm.Game
	health := g.Health()
	s.hud.Draw(screen, health.Current(), health.Max(), g.Level().CurrentLevel(), g.Level().ProgressPercent(), g.Pickups().Points())
}
