package bolt_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/ed1thub/Banking-CLI-app/src/internal/adapter/repository/bolt"
)

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	store, err := bolt.New(filepath.Join(t.TempDir(), "ledger.bolt"))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	defer store.Close()
	ctx := context.Background()

	records := []json.RawMessage{
		json.RawMessage(`{"transaction_id":"T00000001"}`),
		json.RawMessage(`{"transaction_id":"T00000002"}`),
	}
	if err := store.Save(ctx, "transactions", records); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	loaded, err := store.Load(ctx, "transactions")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 records, got %d", len(loaded))
	}

	var first map[string]string
	if err := json.Unmarshal(loaded[0], &first); err != nil {
		t.Fatalf("expected valid record, got %v", err)
	}
	if first["transaction_id"] != "T00000001" {
		t.Fatalf("expected insertion order preserved, got %s first", first["transaction_id"])
	}
}

func TestStoreLoadUnknownCollectionReturnsEmpty(t *testing.T) {
	store, err := bolt.New(filepath.Join(t.TempDir(), "ledger.bolt"))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	defer store.Close()

	records, err := store.Load(context.Background(), "customers")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty collection, got %d records", len(records))
	}
}

func TestStoreSaveReplacesCollection(t *testing.T) {
	store, err := bolt.New(filepath.Join(t.TempDir(), "ledger.bolt"))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	defer store.Close()
	ctx := context.Background()

	if err := store.Save(ctx, "accounts", []json.RawMessage{
		json.RawMessage(`{"account_number":"A000001"}`),
		json.RawMessage(`{"account_number":"A000002"}`),
	}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := store.Save(ctx, "accounts", []json.RawMessage{
		json.RawMessage(`{"account_number":"A000003"}`),
	}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	records, err := store.Load(ctx, "accounts")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected replacement to keep 1 record, got %d", len(records))
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "ledger.bolt")
	ctx := context.Background()

	store, err := bolt.New(dbPath)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := store.Save(ctx, "customers", []json.RawMessage{
		json.RawMessage(`{"customer_id":"C0001"}`),
	}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("expected nil error on close, got %v", err)
	}

	reopened, err := bolt.New(dbPath)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	defer reopened.Close()

	records, err := reopened.Load(ctx, "customers")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record after reopen, got %d", len(records))
	}
}
