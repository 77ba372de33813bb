// internal/storage/sqlite.go
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"node-zero/internal/component"
)

// DBFileName is the SQLite save database inside the save directory.
const DBFileName = "save.db"

const createSaveTable = `
CREATE TABLE IF NOT EXISTS save_data (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	high_points INTEGER NOT NULL,
	points INTEGER NOT NULL,
	games_played INTEGER NOT NULL,
	total_nodes_destroyed INTEGER NOT NULL,
	current_level INTEGER NOT NULL,
	max_health REAL NOT NULL,
	regen_rate REAL NOT NULL,
	damage_zone_size REAL NOT NULL,
	damage_per_tick REAL NOT NULL
)`

const selectSave = `
SELECT high_points, points, games_played, total_nodes_destroyed, current_level,
	max_health, regen_rate, damage_zone_size, damage_per_tick
FROM save_data WHERE id = 1`

const upsertSave = `
INSERT INTO save_data (id, high_points, points, games_played, total_nodes_destroyed, current_level,
	max_health, regen_rate, damage_zone_size, damage_per_tick)
VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	high_points = excluded.high_points,
	points = excluded.points,
	games_played = excluded.games_played,
	total_nodes_destroyed = excluded.total_nodes_destroyed,
	current_level = excluded.current_level,
	max_health = excluded.max_health,
	regen_rate = excluded.regen_rate,
	damage_zone_size = excluded.damage_zone_size,
	damage_per_tick = excluded.damage_per_tick`

// SQLiteStore keeps the save as the single row of the save_data table.
type SQLiteStore struct {
	sqlDB *sql.DB
}

// OpenSQLite opens (or creates) dir/save.db.
func OpenSQLite(dir string) (*SQLiteStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("save directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create save dir: %w", err)
	}
	return openSQLiteDSN(filepath.Join(filepath.Clean(dir), DBFileName) + "?_pragma=busy_timeout(5000)")
}

func openSQLiteDSN(dsn string) (*SQLiteStore, error) {
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// One connection keeps ":memory:" databases alive across calls.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(createSaveTable); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create save table: %w", err)
	}
	return &SQLiteStore{sqlDB: sqlDB}, nil
}

func (s *SQLiteStore) Load(ctx context.Context) (component.SaveData, error) {
	var d component.SaveData
	err := s.sqlDB.QueryRowContext(ctx, selectSave).Scan(
		&d.HighPoints, &d.Points, &d.GamesPlayed, &d.TotalNodesDestroyed, &d.CurrentLevel,
		&d.MaxHealth, &d.RegenRate, &d.DamageZoneSize, &d.DamagePerTick,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return component.SaveData{}, ErrNoSave
	}
	if err != nil {
		return component.SaveData{}, fmt.Errorf("load save: %w", err)
	}
	return d, nil
}

func (s *SQLiteStore) Save(ctx context.Context, d component.SaveData) error {
	_, err := s.sqlDB.ExecContext(ctx, upsertSave,
		d.HighPoints, d.Points, d.GamesPlayed, d.TotalNodesDestroyed, d.CurrentLevel,
		d.MaxHealth, d.RegenRate, d.DamageZoneSize, d.DamagePerTick,
	)
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// Close closes the underlying SQLite database.
func (s *SQLiteStore) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

var _ Store = (*SQLiteStore)(nil)
