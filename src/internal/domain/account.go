package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountTypeBasic   AccountType = "Basic"
	AccountTypeSaving  AccountType = "SavingAccount"
	AccountTypeCurrent AccountType = "CurrentAccount"
)

var DefaultSavingsInterestRate = decimal.RequireFromString("0.02")

func ParseAccountType(input string) (AccountType, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "basic":
		return AccountTypeBasic, nil
	case "savings", "saving":
		return AccountTypeSaving, nil
	case "current":
		return AccountTypeCurrent, nil
	}
	return "", ErrInvalidAccountType
}

// Account is the capability set shared by every account variant. Deposit
// and Withdraw mutate the balance only; they never persist or log
// transactions. An operation that would break the variant's balance floor
// returns an error and leaves the balance unchanged.
type Account interface {
	Number() string
	Owner() string
	Balance() decimal.Decimal
	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error
	Record() AccountRecord
}

// AccountRecord is the persisted form of an account, tagged with its
// variant name. Absent optional fields take the documented defaults on
// load.
type AccountRecord struct {
	AccountNumber string           `json:"account_number"`
	CustomerID    string           `json:"customer_id"`
	Balance       decimal.Decimal  `json:"balance"`
	Type          AccountType      `json:"type"`
	InterestRate  *decimal.Decimal `json:"interest_rate,omitempty"`
	OverdrawLimit *decimal.Decimal `json:"overdraw_limit,omitempty"`
}

// AccountFromRecord reconstructs the exact variant the record is tagged
// with. Unrecognized tags, including the legacy "Account" tag, load as
// basic accounts.
func AccountFromRecord(rec AccountRecord) Account {
	switch rec.Type {
	case AccountTypeSaving:
		rate := DefaultSavingsInterestRate
		if rec.InterestRate != nil {
			rate = *rec.InterestRate
		}
		return NewSavingAccount(rec.AccountNumber, rec.CustomerID, rec.Balance, rate)
	case AccountTypeCurrent:
		limit := decimal.Zero
		if rec.OverdrawLimit != nil {
			limit = *rec.OverdrawLimit
		}
		return NewCurrentAccount(rec.AccountNumber, rec.CustomerID, rec.Balance, limit)
	default:
		return NewBasicAccount(rec.AccountNumber, rec.CustomerID, rec.Balance)
	}
}

type BasicAccount struct {
	accountNumber string
	customerID    string
	balance       decimal.Decimal
}

var _ Account = (*BasicAccount)(nil)

func NewBasicAccount(accountNumber, customerID string, balance decimal.Decimal) *BasicAccount {
	return &BasicAccount{
		accountNumber: accountNumber,
		customerID:    customerID,
		balance:       balance,
	}
}

func (a *BasicAccount) Number() string {
	return a.accountNumber
}

func (a *BasicAccount) Owner() string {
	return a.customerID
}

func (a *BasicAccount) Balance() decimal.Decimal {
	return a.balance
}

func (a *BasicAccount) Deposit(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}

	a.balance = a.balance.Add(amount)
	return nil
}

func (a *BasicAccount) Withdraw(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}

	a.balance = a.balance.Sub(amount)
	return nil
}

func (a *BasicAccount) Record() AccountRecord {
	return AccountRecord{
		AccountNumber: a.accountNumber,
		CustomerID:    a.customerID,
		Balance:       a.balance,
		Type:          AccountTypeBasic,
	}
}

type SavingAccount struct {
	accountNumber string
	customerID    string
	balance       decimal.Decimal
	interestRate  decimal.Decimal
}

var _ Account = (*SavingAccount)(nil)

func NewSavingAccount(accountNumber, customerID string, balance, interestRate decimal.Decimal) *SavingAccount {
	return &SavingAccount{
		accountNumber: accountNumber,
		customerID:    customerID,
		balance:       balance,
		interestRate:  interestRate,
	}
}

func (a *SavingAccount) Number() string {
	return a.accountNumber
}

func (a *SavingAccount) Owner() string {
	return a.customerID
}

func (a *SavingAccount) Balance() decimal.Decimal {
	return a.balance
}

func (a *SavingAccount) InterestRate() decimal.Decimal {
	return a.interestRate
}

func (a *SavingAccount) Deposit(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}

	a.balance = a.balance.Add(amount)
	return nil
}

func (a *SavingAccount) Withdraw(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}

	a.balance = a.balance.Sub(amount)
	return nil
}

// AccrueInterest adds balance * interestRate to the balance and returns
// the interest amount. Repeated calls compound.
func (a *SavingAccount) AccrueInterest() decimal.Decimal {
	interest := a.balance.Mul(a.interestRate)
	a.balance = a.balance.Add(interest)
	return interest
}

func (a *SavingAccount) Record() AccountRecord {
	rate := a.interestRate
	return AccountRecord{
		AccountNumber: a.accountNumber,
		CustomerID:    a.customerID,
		Balance:       a.balance,
		Type:          AccountTypeSaving,
		InterestRate:  &rate,
	}
}

type CurrentAccount struct {
	accountNumber string
	customerID    string
	balance       decimal.Decimal
	overdrawLimit decimal.Decimal
}

var _ Account = (*CurrentAccount)(nil)

func NewCurrentAccount(accountNumber, customerID string, balance, overdrawLimit decimal.Decimal) *CurrentAccount {
	return &CurrentAccount{
		accountNumber: accountNumber,
		customerID:    customerID,
		balance:       balance,
		overdrawLimit: overdrawLimit,
	}
}

func (a *CurrentAccount) Number() string {
	return a.accountNumber
}

func (a *CurrentAccount) Owner() string {
	return a.customerID
}

func (a *CurrentAccount) Balance() decimal.Decimal {
	return a.balance
}

func (a *CurrentAccount) OverdrawLimit() decimal.Decimal {
	return a.overdrawLimit
}

func (a *CurrentAccount) Deposit(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}

	a.balance = a.balance.Add(amount)
	return nil
}

func (a *CurrentAccount) Withdraw(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.balance.Add(a.overdrawLimit)) {
		return ErrOverdrawLimitExceeded
	}

	a.balance = a.balance.Sub(amount)
	return nil
}

func (a *CurrentAccount) Record() AccountRecord {
	limit := a.overdrawLimit
	return AccountRecord{
		AccountNumber: a.accountNumber,
		CustomerID:    a.customerID,
		Balance:       a.balance,
		Type:          AccountTypeCurrent,
		OverdrawLimit: &limit,
	}
}
