// internal/component/game_state.go
package component

// GameScreen is the screen the application is currently showing.
type GameScreen int

const (
	MainMenu GameScreen = iota
	Playing
	Paused
	LevelCompleted
	GameOver
	Upgrades
	Quit
)

func (s GameScreen) String() string {
	switch s {
	case MainMenu:
		return "MainMenu"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case LevelCompleted:
		return "LevelCompleted"
	case GameOver:
		return "GameOver"
	case Upgrades:
		return "Upgrades"
	case Quit:
		return "Quit"
	default:
		return "Unknown"
	}
}
