package jsonfile_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ed1thub/Banking-CLI-app/src/internal/adapter/repository/jsonfile"
)

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	store, err := jsonfile.New(t.TempDir())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	ctx := context.Background()

	records := []json.RawMessage{
		json.RawMessage(`{"customer_id":"C0001"}`),
		json.RawMessage(`{"customer_id":"C0002"}`),
	}
	if err := store.Save(ctx, "customers", records); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	loaded, err := store.Load(ctx, "customers")
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
	if first["customer_id"] != "C0001" {
		t.Fatalf("expected C0001 first, got %s", first["customer_id"])
	}
}

func TestStoreLoadMissingCollectionReturnsEmpty(t *testing.T) {
	store, err := jsonfile.New(t.TempDir())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	records, err := store.Load(context.Background(), "customers")
	if err != nil {
		t.Fatalf("expected nil error for missing file, got %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty collection, got %d records", len(records))
	}
}

func TestStoreLoadCorruptCollectionReturnsEmpty(t *testing.T) {
	dir := t.TempDir()
	store, err := jsonfile.New(dir)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "customers.json"), []byte("{truncated"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	records, err := store.Load(context.Background(), "customers")
	if err != nil {
		t.Fatalf("expected nil error for corrupt file, got %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty collection, got %d records", len(records))
	}
}

func TestStoreSaveReplacesCollection(t *testing.T) {
	store, err := jsonfile.New(t.TempDir())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
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

func TestStoreSaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	store, err := jsonfile.New(dir)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if err := store.Save(context.Background(), "transactions", nil); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "transactions.json")); err != nil {
		t.Fatalf("expected collection file to exist, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "transactions.json.tmp")); !os.IsNotExist(err) {
		t.Fatalf("expected temp file to be gone, got %v", err)
	}
}
