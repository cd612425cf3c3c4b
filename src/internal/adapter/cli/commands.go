package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ed1thub/Banking-CLI-app/src/internal/adapter/cli/models"
	"github.com/ed1thub/Banking-CLI-app/src/internal/domain"
	"github.com/ed1thub/Banking-CLI-app/src/internal/usecase/service_interfaces"
)

var (
	customerName    string
	customerAddress string
	customerContact string

	accountCustomerID  string
	accountType        string
	accountDeposit     string
	accountOverdrawLim string
)

var createCustomerCmd = &cobra.Command{
	Use:   "create-customer",
	Short: "Register a new customer",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(ctx context.Context, svc service_interfaces.LedgerService) error {
			resp, err := svc.CreateCustomer(ctx, models.CreateCustomerRequest{
				Name:    customerName,
				Address: customerAddress,
				Contact: customerContact,
			})
			if err != nil {
				return responseError(resp.Message, resp.ErrorText())
			}
			return renderSuccess(cmd, resp.Message, resp.Data)
		})
	},
}

var openAccountCmd = &cobra.Command{
	Use:   "open-account",
	Short: "Open an account for an existing customer",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(ctx context.Context, svc service_interfaces.LedgerService) error {
			resp, err := svc.CreateAccount(ctx, models.CreateAccountRequest{
				CustomerID:     accountCustomerID,
				AccountType:    accountType,
				InitialDeposit: accountDeposit,
				OverdrawLimit:  accountOverdrawLim,
			})
			if err != nil {
				return responseError(resp.Message, resp.ErrorText())
			}
			return renderSuccess(cmd, resp.Message, resp.Data)
		})
	},
}

var getAccountCmd = &cobra.Command{
	Use:   "account ACCOUNT",
	Short: "Show account details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(ctx context.Context, svc service_interfaces.LedgerService) error {
			resp, err := svc.GetAccount(ctx, args[0])
			if err != nil {
				return responseError(resp.Message, resp.ErrorText())
			}
			return renderSuccess(cmd, resp.Message, resp.Data)
		})
	},
}

var depositCmd = &cobra.Command{
	Use:   "deposit ACCOUNT AMOUNT",
	Short: "Deposit funds into an account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransaction(cmd, args, domain.TransactionTypeDeposit)
	},
}

var withdrawCmd = &cobra.Command{
	Use:   "withdraw ACCOUNT AMOUNT",
	Short: "Withdraw funds from an account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransaction(cmd, args, domain.TransactionTypeWithdrawal)
	},
}

var balanceCmd = &cobra.Command{
	Use:   "balance ACCOUNT",
	Short: "Show the current balance of an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(ctx context.Context, svc service_interfaces.LedgerService) error {
			resp, err := svc.CheckBalance(ctx, args[0])
			if err != nil {
				return responseError(resp.Message, resp.ErrorText())
			}
			return renderSuccess(cmd, resp.Message, resp.Data)
		})
	},
}

var historyCmd = &cobra.Command{
	Use:   "history ACCOUNT",
	Short: "List the transaction history of an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(ctx context.Context, svc service_interfaces.LedgerService) error {
			resp, err := svc.TransactionHistory(ctx, args[0])
			if err != nil {
				return responseError(resp.Message, resp.ErrorText())
			}
			return renderSuccess(cmd, resp.Message, resp.Data)
		})
	},
}

var accrueInterestCmd = &cobra.Command{
	Use:   "accrue-interest",
	Short: "Apply monthly interest to every savings account",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(ctx context.Context, svc service_interfaces.LedgerService) error {
			resp, err := svc.AccrueMonthlyInterest(ctx)
			if err != nil {
				return responseError(resp.Message, resp.ErrorText())
			}
			return renderSuccess(cmd, resp.Message, resp.Data)
		})
	},
}

func init() {
	createCustomerCmd.Flags().StringVar(&customerName, "name", "", "customer name")
	createCustomerCmd.Flags().StringVar(&customerAddress, "address", "", "customer address")
	createCustomerCmd.Flags().StringVar(&customerContact, "contact", "", "customer contact")

	openAccountCmd.Flags().StringVar(&accountCustomerID, "customer", "", "customer ID, e.g. C0001")
	openAccountCmd.Flags().StringVar(&accountType, "type", "", "account type: basic, savings, or current")
	openAccountCmd.Flags().StringVar(&accountDeposit, "deposit", "", "initial deposit amount")
	openAccountCmd.Flags().StringVar(&accountOverdrawLim, "overdraw-limit", "", "overdraw limit for current accounts")
}

func runTransaction(cmd *cobra.Command, args []string, transactionType domain.TransactionType) error {
	return withLedger(func(ctx context.Context, svc service_interfaces.LedgerService) error {
		resp, err := svc.MakeTransaction(ctx, models.MakeTransactionRequest{
			AccountNumber:   args[0],
			TransactionType: string(transactionType),
			Amount:          args[1],
		})
		if err != nil {
			return responseError(resp.Message, resp.ErrorText())
		}
		return renderSuccess(cmd, resp.Message, resp.Data)
	})
}
