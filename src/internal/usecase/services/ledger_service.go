package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ed1thub/Banking-CLI-app/src/internal/adapter/cli/models"
	"github.com/ed1thub/Banking-CLI-app/src/internal/adapter/repository/repo_interfaces"
	"github.com/ed1thub/Banking-CLI-app/src/internal/commons"
	"github.com/ed1thub/Banking-CLI-app/src/internal/domain"
	"github.com/ed1thub/Banking-CLI-app/src/internal/logger"
	"github.com/ed1thub/Banking-CLI-app/src/internal/usecase/service_interfaces"
)

type interestBearing interface {
	AccrueInterest() decimal.Decimal
}

// LedgerService owns the customer, account, and transaction collections
// for the lifetime of the process. Every operation runs its whole
// validate-mutate-persist sequence under one mutex, so at most one
// mutation is ever in flight.
type LedgerService struct {
	store repo_interfaces.CollectionStore

	mu           sync.Mutex
	customers    map[string]*domain.Customer
	customerIDs  []string
	accounts     map[string]domain.Account
	accountIDs   []string
	transactions []domain.Transaction

	customerSeq    uint64
	accountSeq     uint64
	transactionSeq uint64

	savingsRate decimal.Decimal
	nowFn       func() time.Time
}

var _ service_interfaces.LedgerService = (*LedgerService)(nil)

func NewLedgerService(store repo_interfaces.CollectionStore) *LedgerService {
	return &LedgerService{
		store:       store,
		customers:   make(map[string]*domain.Customer),
		accounts:    make(map[string]domain.Account),
		savingsRate: domain.DefaultSavingsInterestRate,
		nowFn:       time.Now,
	}
}

// WithClock overrides the time provider (used primarily in tests).
func (s *LedgerService) WithClock(nowFn func() time.Time) {
	if nowFn != nil {
		s.nowFn = nowFn
	}
}

// WithSavingsRate overrides the interest rate applied to newly opened
// savings accounts. Existing accounts keep their stored rate.
func (s *LedgerService) WithSavingsRate(rate decimal.Decimal) {
	if rate.Sign() > 0 {
		s.savingsRate = rate
	}
}

func (s *LedgerService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadCustomers(ctx); err != nil {
		return err
	}
	if err := s.loadAccounts(ctx); err != nil {
		return err
	}
	if err := s.loadTransactions(ctx); err != nil {
		return err
	}
	if err := s.loadSequences(ctx); err != nil {
		return err
	}

	s.checkReferences()

	logger.Info("ledger service loaded", logger.Fields{
		"customers":    len(s.customerIDs),
		"accounts":     len(s.accountIDs),
		"transactions": len(s.transactions),
	})

	return nil
}

// Flush rewrites every collection. Called on normal shutdown.
func (s *LedgerService) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.persist(ctx,
		repo_interfaces.CollectionCustomers,
		repo_interfaces.CollectionAccounts,
		repo_interfaces.CollectionTransactions,
		repo_interfaces.CollectionSequences,
	)
}

func (s *LedgerService) CreateCustomer(ctx context.Context, req models.CreateCustomerRequest) (commons.Response[models.CreateCustomerResponse], error) {
	logger.Info("ledger service create customer request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("ledger service create customer validation failed", err, nil)
		return commons.ErrorResponse[models.CreateCustomerResponse]("validation failed", err.Error()), err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.customerSeq++
	customer := domain.NewCustomer(
		domain.FormatCustomerID(s.customerSeq),
		strings.TrimSpace(req.Name),
		strings.TrimSpace(req.Address),
		strings.TrimSpace(req.Contact),
	)
	s.customers[customer.CustomerID] = &customer
	s.customerIDs = append(s.customerIDs, customer.CustomerID)

	if err := s.persist(ctx, repo_interfaces.CollectionCustomers, repo_interfaces.CollectionSequences); err != nil {
		logger.Error("ledger service create customer persist failed", err, logger.Fields{
			"customerId": customer.CustomerID,
		})
		return commons.ErrorResponse[models.CreateCustomerResponse]("failed to save customer", "changes may not be durable"), err
	}

	response := models.CreateCustomerResponse{
		CustomerID: customer.CustomerID,
		Name:       customer.Name,
		Address:    customer.Address,
		Contact:    customer.Contact,
	}

	logger.Info("ledger service create customer success", logger.Fields{
		"customerId": customer.CustomerID,
	})

	return commons.SuccessResponse("customer created successfully", response), nil
}

func (s *LedgerService) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (commons.Response[models.CreateAccountResponse], error) {
	logger.Info("ledger service create account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("ledger service create account validation failed", err, nil)
		return commons.ErrorResponse[models.CreateAccountResponse]("validation failed", err.Error()), err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	customerID := strings.TrimSpace(req.CustomerID)
	customer, ok := s.customers[customerID]
	if !ok {
		err := fmt.Errorf("%w: %s", domain.ErrCustomerNotFound, customerID)
		logger.Error("ledger service create account unknown customer", err, logger.Fields{
			"customerId": customerID,
		})
		return commons.ErrorResponse[models.CreateAccountResponse]("Customer not found"), err
	}

	accountType, err := domain.ParseAccountType(req.AccountType)
	if err != nil {
		logger.Error("ledger service create account invalid type", err, logger.Fields{
			"accountType": req.AccountType,
		})
		return commons.ErrorResponse[models.CreateAccountResponse]("validation failed", "accountType must be one of basic, savings, current"), err
	}

	initialDeposit, err := parseOptionalAmount(req.InitialDeposit, "initialDeposit")
	if err != nil {
		logger.Error("ledger service create account parse initial deposit failed", err, nil)
		return commons.ErrorResponse[models.CreateAccountResponse]("validation failed", err.Error()), err
	}

	overdrawLimit, err := parseOptionalAmount(req.OverdrawLimit, "overdrawLimit")
	if err != nil {
		logger.Error("ledger service create account parse overdraw limit failed", err, nil)
		return commons.ErrorResponse[models.CreateAccountResponse]("validation failed", err.Error()), err
	}

	s.accountSeq++
	accountNumber := domain.FormatAccountNumber(s.accountSeq)

	var account domain.Account
	switch accountType {
	case domain.AccountTypeSaving:
		account = domain.NewSavingAccount(accountNumber, customerID, initialDeposit, s.savingsRate)
	case domain.AccountTypeCurrent:
		account = domain.NewCurrentAccount(accountNumber, customerID, initialDeposit, overdrawLimit)
	default:
		account = domain.NewBasicAccount(accountNumber, customerID, initialDeposit)
	}

	s.accounts[accountNumber] = account
	s.accountIDs = append(s.accountIDs, accountNumber)
	customer.Accounts = append(customer.Accounts, accountNumber)

	if err := s.persist(ctx,
		repo_interfaces.CollectionAccounts,
		repo_interfaces.CollectionCustomers,
		repo_interfaces.CollectionSequences,
	); err != nil {
		logger.Error("ledger service create account persist failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorResponse[models.CreateAccountResponse]("failed to save account", "changes may not be durable"), err
	}

	rec := account.Record()
	response := models.CreateAccountResponse{
		AccountNumber: rec.AccountNumber,
		CustomerID:    rec.CustomerID,
		AccountType:   string(rec.Type),
		Balance:       rec.Balance.String(),
	}
	if rec.InterestRate != nil {
		response.InterestRate = rec.InterestRate.String()
	}
	if rec.OverdrawLimit != nil {
		response.OverdrawLimit = rec.OverdrawLimit.String()
	}

	logger.Info("ledger service create account success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"customerId":    response.CustomerID,
		"accountType":   response.AccountType,
	})

	return commons.SuccessResponse("account created successfully", response), nil
}

func (s *LedgerService) GetAccount(ctx context.Context, accountNumber string) (commons.Response[models.GetAccountResponse], error) {
	logger.Info("ledger service get account request", logger.Fields{
		"accountNumber": accountNumber,
	})

	accountNumber = strings.TrimSpace(accountNumber)

	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[accountNumber]
	if !ok {
		err := fmt.Errorf("%w: %s", domain.ErrAccountNotFound, accountNumber)
		logger.Error("ledger service get account failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorResponse[models.GetAccountResponse]("Account not found"), err
	}

	rec := account.Record()
	response := models.GetAccountResponse{
		AccountNumber: rec.AccountNumber,
		CustomerID:    rec.CustomerID,
		AccountType:   string(rec.Type),
		Balance:       rec.Balance.String(),
	}
	if rec.InterestRate != nil {
		response.InterestRate = rec.InterestRate.String()
	}
	if rec.OverdrawLimit != nil {
		response.OverdrawLimit = rec.OverdrawLimit.String()
	}

	return commons.SuccessResponse("account fetched successfully", response), nil
}

func (s *LedgerService) MakeTransaction(ctx context.Context, req models.MakeTransactionRequest) (commons.Response[models.MakeTransactionResponse], error) {
	logger.Info("ledger service make transaction request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("ledger service make transaction validation failed", err, nil)
		return commons.ErrorResponse[models.MakeTransactionResponse]("validation failed", err.Error()), err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	accountNumber := strings.TrimSpace(req.AccountNumber)
	account, ok := s.accounts[accountNumber]
	if !ok {
		err := fmt.Errorf("%w: %s", domain.ErrAccountNotFound, accountNumber)
		logger.Error("ledger service make transaction unknown account", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorResponse[models.MakeTransactionResponse]("Account not found"), err
	}

	transactionType, err := domain.ParseTransactionType(req.TransactionType)
	if err != nil {
		logger.Error("ledger service make transaction invalid type", err, logger.Fields{
			"transactionType": req.TransactionType,
		})
		return commons.ErrorResponse[models.MakeTransactionResponse]("validation failed", "transactionType must be deposit or withdrawal"), err
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		logger.Error("ledger service make transaction parse amount failed", err, nil)
		return commons.ErrorResponse[models.MakeTransactionResponse]("validation failed", "amount must be numeric"), err
	}

	switch transactionType {
	case domain.TransactionTypeDeposit:
		err = account.Deposit(amount)
	case domain.TransactionTypeWithdrawal:
		err = account.Withdraw(amount)
	}
	if err != nil {
		logger.Error("ledger service make transaction rejected", err, logger.Fields{
			"accountNumber":   accountNumber,
			"transactionType": string(transactionType),
			"amount":          amount.String(),
		})
		return commons.ErrorResponse[models.MakeTransactionResponse](err.Error()), err
	}

	s.transactionSeq++
	transaction := domain.Transaction{
		TransactionID:   domain.FormatTransactionID(s.transactionSeq),
		Timestamp:       s.nowFn(),
		AccountNumber:   accountNumber,
		TransactionType: transactionType,
		Amount:          amount,
	}
	s.transactions = append(s.transactions, transaction)

	// Accounts are written before the transaction log; a crash between
	// the two writes loses the log entry but keeps the balance.
	if err := s.persist(ctx,
		repo_interfaces.CollectionAccounts,
		repo_interfaces.CollectionTransactions,
		repo_interfaces.CollectionSequences,
	); err != nil {
		logger.Error("ledger service make transaction persist failed", err, logger.Fields{
			"transactionId": transaction.TransactionID,
		})
		return commons.ErrorResponse[models.MakeTransactionResponse]("failed to save transaction", "changes may not be durable"), err
	}

	response := models.MakeTransactionResponse{
		TransactionID:   transaction.TransactionID,
		AccountNumber:   transaction.AccountNumber,
		TransactionType: string(transaction.TransactionType),
		Amount:          transaction.Amount.String(),
		Timestamp:       transaction.Timestamp.Format(time.RFC3339Nano),
		Balance:         account.Balance().String(),
	}

	logger.Info("ledger service make transaction success", logger.Fields{
		"transactionId":   response.TransactionID,
		"accountNumber":   response.AccountNumber,
		"transactionType": response.TransactionType,
		"amount":          response.Amount,
	})

	return commons.SuccessResponse("transaction recorded successfully", response), nil
}

func (s *LedgerService) CheckBalance(ctx context.Context, accountNumber string) (commons.Response[models.BalanceResponse], error) {
	logger.Info("ledger service check balance request", logger.Fields{
		"accountNumber": accountNumber,
	})

	accountNumber = strings.TrimSpace(accountNumber)

	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[accountNumber]
	if !ok {
		err := fmt.Errorf("%w: %s", domain.ErrAccountNotFound, accountNumber)
		logger.Error("ledger service check balance failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorResponse[models.BalanceResponse]("Account not found"), err
	}

	response := models.BalanceResponse{
		AccountNumber: account.Number(),
		Balance:       account.Balance().String(),
	}

	return commons.SuccessResponse("balance fetched successfully", response), nil
}

func (s *LedgerService) TransactionHistory(ctx context.Context, accountNumber string) (commons.Response[models.TransactionHistoryResponse], error) {
	logger.Info("ledger service transaction history request", logger.Fields{
		"accountNumber": accountNumber,
	})

	accountNumber = strings.TrimSpace(accountNumber)

	s.mu.Lock()
	defer s.mu.Unlock()

	transactions := make([]models.TransactionResponse, 0)
	for _, transaction := range s.transactions {
		if transaction.AccountNumber != accountNumber {
			continue
		}
		transactions = append(transactions, models.TransactionResponse{
			TransactionID:   transaction.TransactionID,
			Timestamp:       transaction.Timestamp.Format(time.RFC3339Nano),
			TransactionType: string(transaction.TransactionType),
			Amount:          transaction.Amount.String(),
		})
	}

	response := models.TransactionHistoryResponse{
		AccountNumber: accountNumber,
		Transactions:  transactions,
	}

	return commons.SuccessResponse("transaction history fetched successfully", response), nil
}

func (s *LedgerService) AccrueMonthlyInterest(ctx context.Context) (commons.Response[models.AccrueInterestResponse], error) {
	logger.Info("ledger service accrue monthly interest request", nil)

	s.mu.Lock()
	defer s.mu.Unlock()

	accrued := 0
	total := decimal.Zero
	for _, accountNumber := range s.accountIDs {
		saving, ok := s.accounts[accountNumber].(interestBearing)
		if !ok {
			continue
		}
		total = total.Add(saving.AccrueInterest())
		accrued++
	}

	// One batched write after all updates, not one per account.
	if err := s.persist(ctx, repo_interfaces.CollectionAccounts); err != nil {
		logger.Error("ledger service accrue monthly interest persist failed", err, logger.Fields{
			"accountsAccrued": accrued,
		})
		return commons.ErrorResponse[models.AccrueInterestResponse]("failed to save accounts", "changes may not be durable"), err
	}

	response := models.AccrueInterestResponse{
		AccountsAccrued: accrued,
		TotalInterest:   total.String(),
	}

	logger.Info("ledger service accrue monthly interest success", logger.Fields{
		"accountsAccrued": response.AccountsAccrued,
		"totalInterest":   response.TotalInterest,
	})

	return commons.SuccessResponse("interest accrued successfully", response), nil
}

func (s *LedgerService) loadCustomers(ctx context.Context) error {
	records, err := s.store.Load(ctx, repo_interfaces.CollectionCustomers)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistenceFailure, err)
	}

	s.customers = make(map[string]*domain.Customer, len(records))
	s.customerIDs = nil
	for _, raw := range records {
		var customer domain.Customer
		if err := json.Unmarshal(raw, &customer); err != nil {
			logger.Warn("ledger service unreadable customers collection treated as empty", logger.Fields{
				"error": err.Error(),
			})
			s.customers = make(map[string]*domain.Customer)
			s.customerIDs = nil
			return nil
		}
		if customer.Accounts == nil {
			customer.Accounts = []string{}
		}
		s.customers[customer.CustomerID] = &customer
		s.customerIDs = append(s.customerIDs, customer.CustomerID)
	}

	return nil
}

func (s *LedgerService) loadAccounts(ctx context.Context) error {
	records, err := s.store.Load(ctx, repo_interfaces.CollectionAccounts)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistenceFailure, err)
	}

	s.accounts = make(map[string]domain.Account, len(records))
	s.accountIDs = nil
	for _, raw := range records {
		var rec domain.AccountRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			logger.Warn("ledger service unreadable accounts collection treated as empty", logger.Fields{
				"error": err.Error(),
			})
			s.accounts = make(map[string]domain.Account)
			s.accountIDs = nil
			return nil
		}
		account := domain.AccountFromRecord(rec)
		s.accounts[account.Number()] = account
		s.accountIDs = append(s.accountIDs, account.Number())
	}

	return nil
}

func (s *LedgerService) loadTransactions(ctx context.Context) error {
	records, err := s.store.Load(ctx, repo_interfaces.CollectionTransactions)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistenceFailure, err)
	}

	s.transactions = nil
	for _, raw := range records {
		var rec domain.TransactionRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			logger.Warn("ledger service unreadable transactions collection treated as empty", logger.Fields{
				"error": err.Error(),
			})
			s.transactions = nil
			return nil
		}
		transaction, err := domain.TransactionFromRecord(rec)
		if err != nil {
			logger.Warn("ledger service unreadable transactions collection treated as empty", logger.Fields{
				"error": err.Error(),
			})
			s.transactions = nil
			return nil
		}
		s.transactions = append(s.transactions, transaction)
	}

	return nil
}

// loadSequences seeds the identifier counters. Persisted counter records
// win; data written before counters existed seeds from the highest
// identifier suffix per collection, which matches the count-derived
// numbering such data was created with because nothing is ever deleted.
func (s *LedgerService) loadSequences(ctx context.Context) error {
	records, err := s.store.Load(ctx, repo_interfaces.CollectionSequences)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistenceFailure, err)
	}

	s.customerSeq = maxIDSequence(s.customerIDs)
	s.accountSeq = maxIDSequence(s.accountIDs)
	s.transactionSeq = 0
	for _, transaction := range s.transactions {
		if seq, ok := domain.ParseIDSequence(transaction.TransactionID); ok && seq > s.transactionSeq {
			s.transactionSeq = seq
		}
	}

	for _, raw := range records {
		var rec domain.SequenceRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			logger.Warn("ledger service unreadable sequence record ignored", logger.Fields{
				"error": err.Error(),
			})
			continue
		}
		switch rec.Entity {
		case domain.SequenceCustomer:
			if rec.Value > s.customerSeq {
				s.customerSeq = rec.Value
			}
		case domain.SequenceAccount:
			if rec.Value > s.accountSeq {
				s.accountSeq = rec.Value
			}
		case domain.SequenceTransaction:
			if rec.Value > s.transactionSeq {
				s.transactionSeq = rec.Value
			}
		}
	}

	return nil
}

func (s *LedgerService) checkReferences() {
	for _, customerID := range s.customerIDs {
		for _, accountNumber := range s.customers[customerID].Accounts {
			if _, ok := s.accounts[accountNumber]; !ok {
				logger.Warn("ledger service customer references missing account", logger.Fields{
					"customerId":    customerID,
					"accountNumber": accountNumber,
				})
			}
		}
	}
}

func (s *LedgerService) persist(ctx context.Context, collections ...string) error {
	for _, collection := range collections {
		records, err := s.collectionRecords(collection)
		if err != nil {
			return fmt.Errorf("%w: %w", domain.ErrPersistenceFailure, err)
		}
		if err := s.store.Save(ctx, collection, records); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrPersistenceFailure, err)
		}
	}

	return nil
}

func (s *LedgerService) collectionRecords(collection string) ([]json.RawMessage, error) {
	switch collection {
	case repo_interfaces.CollectionCustomers:
		records := make([]json.RawMessage, 0, len(s.customerIDs))
		for _, customerID := range s.customerIDs {
			raw, err := json.Marshal(s.customers[customerID])
			if err != nil {
				return nil, fmt.Errorf("encode customer %s: %w", customerID, err)
			}
			records = append(records, raw)
		}
		return records, nil
	case repo_interfaces.CollectionAccounts:
		records := make([]json.RawMessage, 0, len(s.accountIDs))
		for _, accountNumber := range s.accountIDs {
			raw, err := json.Marshal(s.accounts[accountNumber].Record())
			if err != nil {
				return nil, fmt.Errorf("encode account %s: %w", accountNumber, err)
			}
			records = append(records, raw)
		}
		return records, nil
	case repo_interfaces.CollectionTransactions:
		records := make([]json.RawMessage, 0, len(s.transactions))
		for _, transaction := range s.transactions {
			raw, err := json.Marshal(transaction.Record())
			if err != nil {
				return nil, fmt.Errorf("encode transaction %s: %w", transaction.TransactionID, err)
			}
			records = append(records, raw)
		}
		return records, nil
	case repo_interfaces.CollectionSequences:
		sequences := []domain.SequenceRecord{
			{Entity: domain.SequenceCustomer, Value: s.customerSeq},
			{Entity: domain.SequenceAccount, Value: s.accountSeq},
			{Entity: domain.SequenceTransaction, Value: s.transactionSeq},
		}
		records := make([]json.RawMessage, 0, len(sequences))
		for _, sequence := range sequences {
			raw, err := json.Marshal(sequence)
			if err != nil {
				return nil, fmt.Errorf("encode sequence %s: %w", sequence.Entity, err)
			}
			records = append(records, raw)
		}
		return records, nil
	}

	return nil, fmt.Errorf("unknown collection %s", collection)
}

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: amount must be numeric", domain.ErrInvalidAmount)
	}

	return amount, nil
}

func parseOptionalAmount(raw string, field string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero, nil
	}

	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s must be numeric", domain.ErrInvalidAmount, field)
	}
	if amount.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: %s cannot be negative", domain.ErrInvalidAmount, field)
	}

	return amount, nil
}

func maxIDSequence(ids []string) uint64 {
	var max uint64
	for _, id := range ids {
		if seq, ok := domain.ParseIDSequence(id); ok && seq > max {
			max = seq
		}
	}

	return max
}
