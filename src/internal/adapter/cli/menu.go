package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ed1thub/Banking-CLI-app/src/internal/adapter/cli/models"
	"github.com/ed1thub/Banking-CLI-app/src/internal/usecase/service_interfaces"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Run the interactive menu",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(ctx context.Context, svc service_interfaces.LedgerService) error {
			return runMenu(ctx, svc, cmd.InOrStdin(), cmd.OutOrStdout())
		})
	},
}

// runMenu drives the interactive session. Errors from individual actions
// are printed and the loop continues; the session ends on an explicit exit,
// exhausted input, or a failed read.
func runMenu(ctx context.Context, svc service_interfaces.LedgerService, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, "=== Welcome to the Bank CLI Application ===")
	for {
		if ctx.Err() != nil {
			return nil
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, "1. Create Customer")
		fmt.Fprintln(out, "2. Open Account")
		fmt.Fprintln(out, "3. Make Transaction")
		fmt.Fprintln(out, "4. Check Balance")
		fmt.Fprintln(out, "5. View Transaction History")
		fmt.Fprintln(out, "6. Add Monthly Interest to Savings Accounts")
		fmt.Fprintln(out, "7. Exit")

		choice, ok := prompt(scanner, out, "Select an option: ")
		if !ok {
			return scanner.Err()
		}

		switch choice {
		case "1":
			ok = menuCreateCustomer(ctx, svc, scanner, out)
		case "2":
			ok = menuOpenAccount(ctx, svc, scanner, out)
		case "3":
			ok = menuMakeTransaction(ctx, svc, scanner, out)
		case "4":
			ok = menuCheckBalance(ctx, svc, scanner, out)
		case "5":
			ok = menuTransactionHistory(ctx, svc, scanner, out)
		case "6":
			menuAccrueInterest(ctx, svc, out)
		case "7":
			fmt.Fprintln(out, "Thank you for using the bank CLI. Goodbye!")
			return nil
		default:
			fmt.Fprintln(out, "Invalid option. Please try again.")
		}
		if !ok {
			return scanner.Err()
		}
	}
}

func menuCreateCustomer(ctx context.Context, svc service_interfaces.LedgerService, scanner *bufio.Scanner, out io.Writer) bool {
	name, ok := prompt(scanner, out, "Customer Name: ")
	if !ok {
		return false
	}
	address, ok := prompt(scanner, out, "Customer Address: ")
	if !ok {
		return false
	}
	contact, ok := prompt(scanner, out, "Customer Contact: ")
	if !ok {
		return false
	}

	resp, err := svc.CreateCustomer(ctx, models.CreateCustomerRequest{
		Name:    name,
		Address: address,
		Contact: contact,
	})
	if err != nil {
		printFailure(out, resp.Message, resp.ErrorText())
		return true
	}
	fmt.Fprintf(out, "Customer created with ID: %s\n", resp.Data.CustomerID)

	for {
		answer, ok := prompt(scanner, out, "Create an account for this customer? (y/n): ")
		if !ok {
			return false
		}
		if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
			return true
		}
		if !menuOpenAccountFor(ctx, svc, scanner, out, resp.Data.CustomerID) {
			return false
		}
	}
}

func menuOpenAccount(ctx context.Context, svc service_interfaces.LedgerService, scanner *bufio.Scanner, out io.Writer) bool {
	customerID, ok := prompt(scanner, out, "Customer ID: ")
	if !ok {
		return false
	}
	return menuOpenAccountFor(ctx, svc, scanner, out, customerID)
}

func menuOpenAccountFor(ctx context.Context, svc service_interfaces.LedgerService, scanner *bufio.Scanner, out io.Writer, customerID string) bool {
	accountType, ok := prompt(scanner, out, "Account Type (basic/savings/current): ")
	if !ok {
		return false
	}
	deposit, ok := prompt(scanner, out, "Initial Deposit Amount: ")
	if !ok {
		return false
	}

	req := models.CreateAccountRequest{
		CustomerID:     customerID,
		AccountType:    accountType,
		InitialDeposit: deposit,
	}
	if strings.EqualFold(accountType, "current") {
		limit, ok := prompt(scanner, out, "Overdraw Limit: ")
		if !ok {
			return false
		}
		req.OverdrawLimit = limit
	}

	resp, err := svc.CreateAccount(ctx, req)
	if err != nil {
		printFailure(out, resp.Message, resp.ErrorText())
		return true
	}
	fmt.Fprintf(out, "Account created with Account Number: %s\n", resp.Data.AccountNumber)
	return true
}

func menuMakeTransaction(ctx context.Context, svc service_interfaces.LedgerService, scanner *bufio.Scanner, out io.Writer) bool {
	transactionType, ok := prompt(scanner, out, "Transaction Type (deposit/withdrawal): ")
	if !ok {
		return false
	}
	accountNumber, ok := prompt(scanner, out, "Account Number: ")
	if !ok {
		return false
	}
	amount, ok := prompt(scanner, out, "Amount: ")
	if !ok {
		return false
	}

	resp, err := svc.MakeTransaction(ctx, models.MakeTransactionRequest{
		AccountNumber:   accountNumber,
		TransactionType: transactionType,
		Amount:          amount,
	})
	if err != nil {
		printFailure(out, resp.Message, resp.ErrorText())
		return true
	}
	fmt.Fprintf(out, "Transaction successful. ID: %s | New Balance: $%s\n", resp.Data.TransactionID, resp.Data.Balance)
	return true
}

func menuCheckBalance(ctx context.Context, svc service_interfaces.LedgerService, scanner *bufio.Scanner, out io.Writer) bool {
	accountNumber, ok := prompt(scanner, out, "Account Number: ")
	if !ok {
		return false
	}

	resp, err := svc.CheckBalance(ctx, accountNumber)
	if err != nil {
		printFailure(out, resp.Message, resp.ErrorText())
		return true
	}
	fmt.Fprintf(out, "Current balance: $%s\n", resp.Data.Balance)
	return true
}

func menuTransactionHistory(ctx context.Context, svc service_interfaces.LedgerService, scanner *bufio.Scanner, out io.Writer) bool {
	accountNumber, ok := prompt(scanner, out, "Account Number: ")
	if !ok {
		return false
	}

	resp, err := svc.TransactionHistory(ctx, accountNumber)
	if err != nil {
		printFailure(out, resp.Message, resp.ErrorText())
		return true
	}
	if len(resp.Data.Transactions) == 0 {
		fmt.Fprintln(out, "No transactions found.")
		return true
	}
	fmt.Fprintln(out, "Transaction History:")
	for _, tx := range resp.Data.Transactions {
		fmt.Fprintf(out, "%s | %s | Amount: $%s | ID: %s\n", tx.Timestamp, tx.TransactionType, tx.Amount, tx.TransactionID)
	}
	return true
}

func menuAccrueInterest(ctx context.Context, svc service_interfaces.LedgerService, out io.Writer) {
	resp, err := svc.AccrueMonthlyInterest(ctx)
	if err != nil {
		printFailure(out, resp.Message, resp.ErrorText())
		return
	}
	fmt.Fprintln(out, "Monthly interest added to all saving accounts.")
	fmt.Fprintf(out, "Accounts accrued: %d | Total interest: $%s\n", resp.Data.AccountsAccrued, resp.Data.TotalInterest)
}

// prompt writes the label and reads one trimmed line. The second return is
// false once no more input can be read; the cause is left on the scanner.
func prompt(scanner *bufio.Scanner, out io.Writer, label string) (string, bool) {
	fmt.Fprint(out, label)
	if !scanner.Scan() {
		fmt.Fprintln(out)
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

func printFailure(out io.Writer, message, details string) {
	if details != "" {
		fmt.Fprintf(out, "Error: %s (%s)\n", message, details)
		return
	}
	fmt.Fprintf(out, "Error: %s\n", message)
}
