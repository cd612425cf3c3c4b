package models

import (
	"errors"
	"strings"
)

type CreateAccountRequest struct {
	CustomerID     string `json:"customerId"`
	AccountType    string `json:"accountType"`
	InitialDeposit string `json:"initialDeposit,omitempty"`
	OverdrawLimit  string `json:"overdrawLimit,omitempty"`
}

// Validate checks field presence only. Account type membership and
// amount signs carry typed errors, so the service resolves them.
func (r CreateAccountRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.CustomerID) == "" {
		errs = append(errs, "customerId is required")
	}
	if strings.TrimSpace(r.AccountType) == "" {
		errs = append(errs, "accountType is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type CreateAccountResponse struct {
	AccountNumber string `json:"accountNumber"`
	CustomerID    string `json:"customerId"`
	AccountType   string `json:"accountType"`
	Balance       string `json:"balance"`
	InterestRate  string `json:"interestRate,omitempty"`
	OverdrawLimit string `json:"overdrawLimit,omitempty"`
}

type GetAccountResponse struct {
	AccountNumber string `json:"accountNumber"`
	CustomerID    string `json:"customerId"`
	AccountType   string `json:"accountType"`
	Balance       string `json:"balance"`
	InterestRate  string `json:"interestRate,omitempty"`
	OverdrawLimit string `json:"overdrawLimit,omitempty"`
}

type BalanceResponse struct {
	AccountNumber string `json:"accountNumber"`
	Balance       string `json:"balance"`
}

type AccrueInterestResponse struct {
	AccountsAccrued int    `json:"accountsAccrued"`
	TotalInterest   string `json:"totalInterest"`
}
