// internal/system/save.go
package system

import (
	"context"
	"errors"
	"log/slog"

	"node-zero/internal/component"
	"node-zero/internal/storage"
)

// SaveSystem caches the progression and writes it through to a store.
type SaveSystem struct {
	store   storage.Store
	logger  *slog.Logger
	current component.SaveData
}

// NewSaveSystem loads the current progression from store.
func NewSaveSystem(store storage.Store, logger *slog.Logger) *SaveSystem {
	if logger == nil {
		logger = slog.Default()
	}
	s := &SaveSystem{store: store, logger: logger, current: component.DefaultSaveData()}
	s.LoadProgress()
	return s
}

// LoadProgress re-reads the store. Errors leave the defaults in place.
func (s *SaveSystem) LoadProgress() component.SaveData {
	data, err := s.store.Load(context.Background())
	switch {
	case errors.Is(err, storage.ErrNoSave):
		data = component.DefaultSaveData()
	case err != nil:
		s.logger.Warn("failed to load progress, using defaults", "error", err)
		data = component.DefaultSaveData()
	}
	s.current = data
	return s.current
}

// SaveProgress replaces the cached data and persists it. The cache is updated even when
// the write fails, so the running game keeps its progress.
func (s *SaveSystem) SaveProgress(data component.SaveData) error {
	s.current = data
	return s.store.Save(context.Background(), data)
}

func (s *SaveSystem) Points() int                     { return s.current.Points }
func (s *SaveSystem) HighPoints() int                 { return s.current.HighPoints }
func (s *SaveSystem) CurrentData() component.SaveData { return s.current }
