package domain

import "errors"

var ErrInvalidAmount = errors.New("Invalid amount")
var ErrInsufficientFunds = errors.New("Insufficient funds")
var ErrOverdrawLimitExceeded = errors.New("Overdraw limit exceeded")
var ErrCustomerNotFound = errors.New("Customer not found")
var ErrAccountNotFound = errors.New("Account not found")
var ErrInvalidAccountType = errors.New("Invalid account type")
var ErrInvalidTransactionType = errors.New("Invalid transaction type")
var ErrPersistenceFailure = errors.New("Persistence failure")
