package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ed1thub/Banking-CLI-app/src/internal/adapter/repository/repo_interfaces"
	"github.com/ed1thub/Banking-CLI-app/src/internal/logger"
)

// Store keeps each collection as a pretty-printed JSON array in its own
// file under the data directory, compatible with existing data files.
type Store struct {
	dir string
}

var _ repo_interfaces.CollectionStore = (*Store)(nil)

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	return &Store{dir: dir}, nil
}

func (s *Store) Load(_ context.Context, collection string) ([]json.RawMessage, error) {
	raw, err := os.ReadFile(s.path(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", collection, err)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		logger.Warn("json store unreadable collection treated as empty", logger.Fields{
			"collection": collection,
			"error":      err.Error(),
		})
		return nil, nil
	}

	logger.Debug("json store load", logger.Fields{
		"collection": collection,
		"records":    len(records),
	})

	return records, nil
}

// Save writes to a temporary file and renames it over the target so a
// crash mid-write never leaves a truncated collection behind.
func (s *Store) Save(_ context.Context, collection string, records []json.RawMessage) error {
	if records == nil {
		records = []json.RawMessage{}
	}

	target := s.path(collection)
	tmp := target + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create %s: %w", collection, err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("encode %s: %w", collection, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close %s: %w", collection, err)
	}

	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", collection, err)
	}

	logger.Debug("json store save", logger.Fields{
		"collection": collection,
		"records":    len(records),
	})

	return nil
}

func (s *Store) Close() error {
	return nil
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}
