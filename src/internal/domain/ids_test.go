package domain_test

import (
	"testing"

	"github.com/ed1thub/Banking-CLI-app/src/internal/domain"
)

func TestFormatIdentifierWidths(t *testing.T) {
	if got := domain.FormatCustomerID(1); got != "C0001" {
		t.Fatalf("expected C0001, got %s", got)
	}
	if got := domain.FormatAccountNumber(1); got != "A000001" {
		t.Fatalf("expected A000001, got %s", got)
	}
	if got := domain.FormatTransactionID(1); got != "T00000001" {
		t.Fatalf("expected T00000001, got %s", got)
	}
}

func TestFormatIdentifierBeyondPadWidth(t *testing.T) {
	if got := domain.FormatCustomerID(12345); got != "C12345" {
		t.Fatalf("expected C12345, got %s", got)
	}
}

func TestParseIDSequence(t *testing.T) {
	seq, ok := domain.ParseIDSequence("A000042")
	if !ok || seq != 42 {
		t.Fatalf("expected sequence 42, got %d ok=%v", seq, ok)
	}

	if _, ok := domain.ParseIDSequence("C"); ok {
		t.Fatal("expected failure for identifier without digits")
	}
	if _, ok := domain.ParseIDSequence("Axyz"); ok {
		t.Fatal("expected failure for non-numeric suffix")
	}
}
