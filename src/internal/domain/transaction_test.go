package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ed1thub/Banking-CLI-app/src/internal/domain"
)

func TestParseTransactionTypeAcceptsAliases(t *testing.T) {
	got, err := domain.ParseTransactionType("Deposit")
	if err != nil || got != domain.TransactionTypeDeposit {
		t.Fatalf("expected deposit, got %s err=%v", got, err)
	}

	got, err = domain.ParseTransactionType("withdraw")
	if err != nil || got != domain.TransactionTypeWithdrawal {
		t.Fatalf("expected withdrawal, got %s err=%v", got, err)
	}

	if _, err := domain.ParseTransactionType("transfer"); !errors.Is(err, domain.ErrInvalidTransactionType) {
		t.Fatalf("expected invalid transaction type error, got %v", err)
	}
}

func TestTransactionRecordRoundTrip(t *testing.T) {
	original := domain.Transaction{
		TransactionID:   "T00000001",
		Timestamp:       time.Date(2025, 1, 15, 10, 30, 0, 123456000, time.UTC),
		AccountNumber:   "A000001",
		TransactionType: domain.TransactionTypeDeposit,
		Amount:          decimal.NewFromInt(50),
	}

	restored, err := domain.TransactionFromRecord(original.Record())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if restored.TransactionID != original.TransactionID {
		t.Fatalf("expected transaction ID preserved, got %s", restored.TransactionID)
	}
	if !restored.Timestamp.Equal(original.Timestamp) {
		t.Fatalf("expected timestamp %s, got %s", original.Timestamp, restored.Timestamp)
	}
	if !restored.Amount.Equal(original.Amount) {
		t.Fatalf("expected amount 50, got %s", restored.Amount.String())
	}
}

func TestTransactionFromRecordParsesZonelessTimestamps(t *testing.T) {
	for _, stamp := range []string{
		"2025-01-15T10:30:00.123456",
		"2025-01-15T10:30:00",
		"2025-01-15T10:30:00Z",
	} {
		restored, err := domain.TransactionFromRecord(domain.TransactionRecord{
			TransactionID:   "T00000001",
			Timestamp:       stamp,
			AccountNumber:   "A000001",
			TransactionType: domain.TransactionTypeWithdrawal,
			Amount:          decimal.NewFromInt(5),
		})
		if err != nil {
			t.Fatalf("expected nil error for %q, got %v", stamp, err)
		}
		if restored.Timestamp.Year() != 2025 || restored.Timestamp.Minute() != 30 {
			t.Fatalf("expected parsed timestamp for %q, got %s", stamp, restored.Timestamp)
		}
	}
}

func TestTransactionFromRecordRejectsGarbageTimestamp(t *testing.T) {
	_, err := domain.TransactionFromRecord(domain.TransactionRecord{
		TransactionID: "T00000001",
		Timestamp:     "yesterday",
	})
	if err == nil {
		t.Fatal("expected error for unparsable timestamp")
	}
}
