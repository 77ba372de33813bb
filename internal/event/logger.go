// internal/event/logger.go
package event

import "log/slog"

// Logger writes the interesting game events to a structured log.
type Logger struct {
	log *slog.Logger
}

// NewLogger creates a Logger; a nil log uses slog.Default().
func NewLogger(log *slog.Logger) *Logger {
	if log == nil {
		log = slog.Default()
	}
	return &Logger{log: log.With("component", "events")}
}

func (l *Logger) OnEvent(e Event) {
	switch e.Type {
	case NodeSpawned:
		l.log.Debug("node spawned", "t", e.Timestamp, "shape", e.Shape.String(), "x", e.Position.X, "y", e.Position.Y, "hp", e.HP)
	case NodeDestroyed:
		l.log.Info("node destroyed", "t", e.Timestamp, "shape", e.Shape.String(), "points", e.Points)
	case NodeDamaged:
		l.log.Debug("node damaged", "t", e.Timestamp, "damage", e.Damage, "hp", e.HP)
	case BossSpawned:
		l.log.Info("boss spawned", "level", e.Level, "hp", e.BossHP)
	case BossDefeated:
		l.log.Info("boss defeated", "level", e.Level, "points", e.Points)
	case LevelCompleted:
		l.log.Info("level completed", "level", e.Level, "next", e.NextLevel)
	case GameOver:
		l.log.Info("game over", "t", e.Timestamp, "level", e.Level, "points", e.Points)
	case GameStateChanged:
		l.log.Debug("screen changed", "from", e.OldScreen.String(), "to", e.Screen.String())
	}
}
