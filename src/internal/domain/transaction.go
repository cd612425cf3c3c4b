package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
)

func ParseTransactionType(input string) (TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "deposit":
		return TransactionTypeDeposit, nil
	case "withdrawal", "withdraw":
		return TransactionTypeWithdrawal, nil
	}
	return "", ErrInvalidTransactionType
}

type Transaction struct {
	TransactionID   string
	Timestamp       time.Time
	AccountNumber   string
	TransactionType TransactionType
	Amount          decimal.Decimal
}

type TransactionRecord struct {
	TransactionID   string          `json:"transaction_id"`
	Timestamp       string          `json:"timestamp"`
	AccountNumber   string          `json:"account_number"`
	TransactionType TransactionType `json:"transaction_type"`
	Amount          decimal.Decimal `json:"amount"`
}

func (t Transaction) Record() TransactionRecord {
	return TransactionRecord{
		TransactionID:   t.TransactionID,
		Timestamp:       t.Timestamp.Format(time.RFC3339Nano),
		AccountNumber:   t.AccountNumber,
		TransactionType: t.TransactionType,
		Amount:          t.Amount,
	}
}

func TransactionFromRecord(rec TransactionRecord) (Transaction, error) {
	ts, err := parseTimestamp(rec.Timestamp)
	if err != nil {
		return Transaction{}, fmt.Errorf("transaction %s: %w", rec.TransactionID, err)
	}

	return Transaction{
		TransactionID:   rec.TransactionID,
		Timestamp:       ts,
		AccountNumber:   rec.AccountNumber,
		TransactionType: rec.TransactionType,
		Amount:          rec.Amount,
	}, nil
}

// Older data files carry zone-less ISO-8601 timestamps, so parsing falls
// back through progressively looser layouts.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

func parseTimestamp(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, trimmed); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}
