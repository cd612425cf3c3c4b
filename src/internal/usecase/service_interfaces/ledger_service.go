package service_interfaces

import (
	"context"

	"github.com/ed1thub/Banking-CLI-app/src/internal/adapter/cli/models"
	"github.com/ed1thub/Banking-CLI-app/src/internal/commons"
)

type LedgerService interface {
	Load(ctx context.Context) error
	Flush(ctx context.Context) error
	CreateCustomer(ctx context.Context, req models.CreateCustomerRequest) (commons.Response[models.CreateCustomerResponse], error)
	CreateAccount(ctx context.Context, req models.CreateAccountRequest) (commons.Response[models.CreateAccountResponse], error)
	GetAccount(ctx context.Context, accountNumber string) (commons.Response[models.GetAccountResponse], error)
	MakeTransaction(ctx context.Context, req models.MakeTransactionRequest) (commons.Response[models.MakeTransactionResponse], error)
	CheckBalance(ctx context.Context, accountNumber string) (commons.Response[models.BalanceResponse], error)
	TransactionHistory(ctx context.Context, accountNumber string) (commons.Response[models.TransactionHistoryResponse], error)
	AccrueMonthlyInterest(ctx context.Context) (commons.Response[models.AccrueInterestResponse], error)
}
