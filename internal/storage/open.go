// internal/storage/open.go
package storage

import (
	"fmt"

	"node-zero/internal/config"
)

// Open builds the store for backend in dir. An empty dir means DefaultDir.
func Open(backend, dir string) (Store, error) {
	if dir == "" {
		dir = DefaultDir()
	}
	switch backend {
	case config.BackendJSON:
		s, err := OpenJSON(dir)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.BackendSQLite:
		s, err := OpenSQLite(dir)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown save backend %q", backend)
	}
}
