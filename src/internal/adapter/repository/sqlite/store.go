package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/ed1thub/Banking-CLI-app/src/internal/adapter/repository/repo_interfaces"
	"github.com/ed1thub/Banking-CLI-app/src/internal/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
	collection TEXT NOT NULL,
	seq INTEGER NOT NULL,
	record TEXT NOT NULL,
	PRIMARY KEY (collection, seq)
);`

// Store keeps every collection in one SQLite file, one row per record,
// ordered by an explicit sequence column.
type Store struct {
	db *sql.DB
}

var _ repo_interfaces.CollectionStore = (*Store)(nil)

func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	connStr := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL", dbPath)
	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Load(ctx context.Context, collection string) ([]json.RawMessage, error) {
	const query = `
SELECT record FROM records
WHERE collection = ?
ORDER BY seq`

	rows, err := s.db.QueryContext(ctx, query, collection)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", collection, err)
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		var record string
		if err := rows.Scan(&record); err != nil {
			return nil, fmt.Errorf("scan %s record: %w", collection, err)
		}
		records = append(records, json.RawMessage(record))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", collection, err)
	}

	logger.Debug("sqlite store load", logger.Fields{
		"collection": collection,
		"records":    len(records),
	})

	return records, nil
}

// Save replaces the collection's rows inside a single transaction so a
// reader never observes a partially rewritten collection.
func (s *Store) Save(ctx context.Context, collection string, records []json.RawMessage) error {
	const clearQuery = `DELETE FROM records WHERE collection = ?`
	const insertQuery = `INSERT INTO records (collection, seq, record) VALUES (?, ?, ?)`

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save %s: %w", collection, err)
	}

	if _, err := tx.ExecContext(ctx, clearQuery, collection); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear %s: %w", collection, err)
	}

	for i, record := range records {
		if _, err := tx.ExecContext(ctx, insertQuery, collection, i+1, string(record)); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert %s record: %w", collection, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s: %w", collection, err)
	}

	logger.Debug("sqlite store save", logger.Fields{
		"collection": collection,
		"records":    len(records),
	})

	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
