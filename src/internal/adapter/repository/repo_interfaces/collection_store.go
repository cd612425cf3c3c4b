package repo_interfaces

import (
	"context"
	"encoding/json"
)

const (
	CollectionCustomers    = "customers"
	CollectionAccounts     = "accounts"
	CollectionTransactions = "transactions"
	CollectionSequences    = "sequences"
)

// CollectionStore persists named collections of JSON records in order.
// Load returns an empty collection when the resource is absent or its
// contents cannot be read as records; real I/O faults are errors.
// Save replaces the whole collection.
type CollectionStore interface {
	Load(ctx context.Context, collection string) ([]json.RawMessage, error)
	Save(ctx context.Context, collection string, records []json.RawMessage) error
	Close() error
}
