// internal/storage/json.go
package storage

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"node-zero/internal/component"
)

// SaveFileName is the JSON save file inside the save directory.
const SaveFileName = "save.dat"

// BadSuffix is appended to a save that failed to load so the next write does not clobber it.
const BadSuffix = ".bad"

const schemaURL = "mem://schemas/save.schema.json"

//go:embed save.schema.json
var saveSchema []byte

// JSONStore keeps the save as a pretty-printed JSON document.
type JSONStore struct {
	path   string
	schema *jsonschema.Schema
}

// OpenJSON prepares a store writing dir/save.dat, creating dir if needed.
func OpenJSON(dir string) (*JSONStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("save directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create save dir: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, bytes.NewReader(saveSchema)); err != nil {
		return nil, fmt.Errorf("add save schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile save schema: %w", err)
	}

	return &JSONStore{path: filepath.Join(dir, SaveFileName), schema: schema}, nil
}

// Path is the save file location.
func (s *JSONStore) Path() string { return s.path }

// Load reads and validates the save. Keys missing from the file keep their defaults.
// A file that fails to decode or validate is renamed to save.dat.bad.
func (s *JSONStore) Load(ctx context.Context) (component.SaveData, error) {
	if err := ctx.Err(); err != nil {
		return component.SaveData{}, err
	}
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return component.SaveData{}, ErrNoSave
	}
	if err != nil {
		return component.SaveData{}, fmt.Errorf("read save: %w", err)
	}

	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return component.SaveData{}, s.quarantine(fmt.Errorf("decode save: %w", err))
	}
	if err := s.schema.Validate(doc); err != nil {
		return component.SaveData{}, s.quarantine(fmt.Errorf("validate save: %w", err))
	}

	data := component.DefaultSaveData()
	if err := json.Unmarshal(raw, &data); err != nil {
		return component.SaveData{}, s.quarantine(fmt.Errorf("decode save: %w", err))
	}
	return data, nil
}

// quarantine moves the unreadable save aside and returns cause.
func (s *JSONStore) quarantine(cause error) error {
	if err := os.Rename(s.path, s.path+BadSuffix); err != nil {
		return errors.Join(cause, fmt.Errorf("keep bad save: %w", err))
	}
	return cause
}

// Save writes the document to a temp file and renames it over the save.
func (s *JSONStore) Save(ctx context.Context, data component.SaveData) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}
	raw = append(raw, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(s.path), SaveFileName+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp save: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp save: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace save: %w", err)
	}
	return nil
}

func (s *JSONStore) Close() error { return nil }

var _ Store = (*JSONStore)(nil)
