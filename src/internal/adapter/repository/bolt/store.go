package bolt

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	bolt "go.etcd.io/bbolt"

	"github.com/ed1thub/Banking-CLI-app/src/internal/adapter/repository/repo_interfaces"
	"github.com/ed1thub/Banking-CLI-app/src/internal/logger"
)

// Store keeps every collection in one bbolt file, one bucket per
// collection. Keys are big-endian sequence numbers so bucket iteration
// preserves record order.
type Store struct {
	db *bolt.DB
}

var _ repo_interfaces.CollectionStore = (*Store)(nil)

func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := bolt.Open(dbPath, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Load(_ context.Context, collection string) ([]json.RawMessage, error) {
	var records []json.RawMessage

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(collection))
		if b == nil {
			return nil
		}

		return b.ForEach(func(_, v []byte) error {
			record := make([]byte, len(v))
			copy(record, v)
			records = append(records, json.RawMessage(record))
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", collection, err)
	}

	logger.Debug("bolt store load", logger.Fields{
		"collection": collection,
		"records":    len(records),
	})

	return records, nil
}

// Save rewrites the collection's bucket in a single update transaction.
func (s *Store) Save(_ context.Context, collection string, records []json.RawMessage) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		name := []byte(collection)
		if tx.Bucket(name) != nil {
			if err := tx.DeleteBucket(name); err != nil {
				return err
			}
		}

		b, err := tx.CreateBucket(name)
		if err != nil {
			return err
		}

		for i, record := range records {
			if err := b.Put(itob(uint64(i+1)), record); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}

	logger.Debug("bolt store save", logger.Fields{
		"collection": collection,
		"records":    len(records),
	})

	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// itob returns v as a big-endian 8-byte slice.
func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
