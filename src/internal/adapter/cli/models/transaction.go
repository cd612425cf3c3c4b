package models

import (
	"errors"
	"strings"
)

type MakeTransactionRequest struct {
	AccountNumber   string `json:"accountNumber"`
	TransactionType string `json:"transactionType"`
	Amount          string `json:"amount"`
}

func (r MakeTransactionRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.AccountNumber) == "" {
		errs = append(errs, "accountNumber is required")
	}
	if strings.TrimSpace(r.TransactionType) == "" {
		errs = append(errs, "transactionType is required")
	}
	if strings.TrimSpace(r.Amount) == "" {
		errs = append(errs, "amount is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type MakeTransactionResponse struct {
	TransactionID   string `json:"transactionId"`
	AccountNumber   string `json:"accountNumber"`
	TransactionType string `json:"transactionType"`
	Amount          string `json:"amount"`
	Timestamp       string `json:"timestamp"`
	Balance         string `json:"balance"`
}

type TransactionResponse struct {
	TransactionID   string `json:"transactionId"`
	Timestamp       string `json:"timestamp"`
	TransactionType string `json:"transactionType"`
	Amount          string `json:"amount"`
}

type TransactionHistoryResponse struct {
	AccountNumber string                `json:"accountNumber"`
	Transactions  []TransactionResponse `json:"transactions"`
}
