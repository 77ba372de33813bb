package system

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"node-zero/internal/component"
	"node-zero/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory storage.Store.
type memStore struct {
	data    *component.SaveData
	loadErr error
	saveErr error
	saves   int
}

func (m *memStore) Load(context.Context) (component.SaveData, error) {
	if m.loadErr != nil {
		return component.SaveData{}, m.loadErr
	}
	if m.data == nil {
		return component.SaveData{}, storage.ErrNoSave
	}
	return *m.data, nil
}

func (m *memStore) Save(_ context.Context, d component.SaveData) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.data = &d
	return nil
}

func (m *memStore) Close() error { return nil }

func TestSaveSystemDefaultsWithoutSave(t *testing.T) {
	s := NewSaveSystem(&memStore{}, nil)
	assert.Equal(t, component.DefaultSaveData(), s.CurrentData())
}

func TestSaveSystemLoadsExisting(t *testing.T) {
	d := component.DefaultSaveData()
	d.Points = 300
	d.HighPoints = 900
	s := NewSaveSystem(&memStore{data: &d}, nil)

	assert.Equal(t, 300, s.Points())
	assert.Equal(t, 900, s.HighPoints())
}

func TestSaveSystemLoadErrorFallsBackAndLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	s := NewSaveSystem(&memStore{loadErr: errors.New("disk on fire")}, logger)

	assert.Equal(t, component.DefaultSaveData(), s.CurrentData())
	assert.Contains(t, buf.String(), "disk on fire")
}

func TestSaveSystemSaveProgress(t *testing.T) {
	store := &memStore{}
	s := NewSaveSystem(store, nil)

	d := s.CurrentData()
	d.Points = 42
	require.NoError(t, s.SaveProgress(d))
	assert.Equal(t, 42, store.data.Points)

	store.saveErr = errors.New("read-only")
	d.Points = 43
	assert.Error(t, s.SaveProgress(d))
	assert.Equal(t, 43, s.Points(), "cache keeps the latest data")

	store.saveErr = nil
	assert.Equal(t, 42, s.LoadProgress().Points)
}
