// internal/storage/store.go
package storage

import (
	"context"
	"errors"

	"node-zero/internal/component"
)

// ErrNoSave is returned by Load when nothing was saved yet.
var ErrNoSave = errors.New("no save data")

// Store persists the player's progression.
type Store interface {
	Load(ctx context.Context) (component.SaveData, error)
	Save(ctx context.Context, data component.SaveData) error
	Close() error
}
