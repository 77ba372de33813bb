// internal/state/state.go
package state

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"node-zero/internal/component"
	"node-zero/internal/effect"
	"node-zero/internal/event"
	"node-zero/internal/interfaces"
	"node-zero/internal/ui"
	"node-zero/pkg/render"
)

// State is one screen of the application.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Deps are shared by every screen. World and ShowCursor may be nil.
type Deps struct {
	Game       interfaces.Game
	Input      ui.Input
	Effects    *effect.Effects
	World      *render.WorldRenderer
	Face       font.Face
	TitleFace  font.Face
	Logger     *slog.Logger
	ShowCursor func(visible bool)
}

// StateMachine switches between the screens and owns the transition rules.
type StateMachine struct {
	Deps

	states  map[component.GameScreen]State
	screen  component.GameScreen
	started bool
	quit    bool
}

// NewStateMachine builds every screen. Call Change to show the first one.
func NewStateMachine(deps Deps) *StateMachine {
	if deps.Face == nil {
		deps.Face = ui.DefaultFace
	}
	if deps.TitleFace == nil {
		deps.TitleFace = deps.Face
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	sm := &StateMachine{Deps: deps}
	if deps.Effects != nil {
		for _, t := range []event.Type{event.NodeDamaged, event.NodeDestroyed, event.BossDefeated} {
			deps.Game.Subscribe(t, deps.Effects)
		}
	}
	sm.states = map[component.GameScreen]State{
		component.MainMenu:       NewMenuState(sm),
		component.Playing:        NewGameState(sm),
		component.Paused:         NewPauseState(sm),
		component.LevelCompleted: NewLevelCompletedState(sm),
		component.GameOver:       NewGameOverState(sm),
		component.Upgrades:       NewUpgradesState(sm),
	}
	return sm
}

// Change leaves the current screen and enters next. Entering Playing from another
// screen refreshes the health pool from the purchased upgrades.
func (sm *StateMachine) Change(next component.GameScreen) {
	old := sm.screen
	if sm.started && old == next {
		return
	}
	if next == component.Quit {
		sm.quit = true
		sm.notify(next, old)
		return
	}
	st, ok := sm.states[next]
	if !ok {
		sm.Logger.Warn("unknown screen", "screen", next)
		return
	}

	if sm.started {
		sm.states[old].Exit()
	}
	if next == component.Playing {
		sm.enterPlaying(old)
	} else if sm.started && old == component.Playing && sm.ShowCursor != nil {
		sm.ShowCursor(true)
	}

	sm.screen = next
	sm.started = true
	st.Enter()
	sm.notify(next, old)
}

func (sm *StateMachine) enterPlaying(from component.GameScreen) {
	if sm.Effects != nil && (!sm.started || from == component.MainMenu || from == component.GameOver) {
		sm.Effects.Clear()
	}
	health, upgrades := sm.Game.Health(), sm.Game.Upgrades()
	health.SetMaxHealth(upgrades.MaxHealth())
	health.SetRegenRate(upgrades.RegenRate())
	health.RestoreToMax()
	if sm.ShowCursor != nil {
		sm.ShowCursor(false)
	}
}

func (sm *StateMachine) notify(next, old component.GameScreen) {
	e := event.New(event.GameStateChanged, sm.Game.ElapsedTime())
	e.Screen = next
	e.OldScreen = old
	sm.Game.Notify(e)
}

// Screen is the screen currently shown.
func (sm *StateMachine) Screen() component.GameScreen { return sm.screen }

// ShouldQuit reports whether the Quit screen was requested.
func (sm *StateMachine) ShouldQuit() bool { return sm.quit }

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.started && !sm.quit {
		sm.states[sm.screen].Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.started {
		sm.states[sm.screen].Draw(screen)
	}
}

// drawWorld draws the frozen or running playing field under an overlay screen.
func (sm *StateMachine) drawWorld(screen *ebiten.Image) {
	if sm.World != nil {
		sm.World.Draw(screen, sm.Game, sm.Effects)
	}
}
