package grana

import "fmt"

// TransactionType discriminates the three monetary movements of the
// ledger. The values match the wire format of the persisted document.
type TransactionType string

const (
	Income   TransactionType = "INCOME"
	Expense  TransactionType = "EXPENSE"
	Transfer TransactionType = "TRANSFER"
)

// ParseTransactionType parses a wire string into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case Income, Expense, Transfer:
		return TransactionType(s), nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}

// TransactionStatus tells whether a transaction has moved money yet.
// Pending transactions never touch account balances.
type TransactionStatus string

const (
	Pending   TransactionStatus = "PENDING"
	Completed TransactionStatus = "COMPLETED"
)

// Toggle returns the opposite status.
func (s TransactionStatus) Toggle() TransactionStatus {
	if s == Completed {
		return Pending
	}
	return Completed
}

// ParseTransactionStatus parses a wire string into a TransactionStatus.
func ParseTransactionStatus(s string) (TransactionStatus, error) {
	switch TransactionStatus(s) {
	case Pending, Completed:
		return TransactionStatus(s), nil
	default:
		return "", fmt.Errorf("unknown transaction status %q", s)
	}
}

// AccountKind discriminates the kinds of accounts a user can hold.
type AccountKind string

const (
	Wallet     AccountKind = "WALLET"
	Checking   AccountKind = "CHECKING"
	Savings    AccountKind = "SAVINGS"
	Investment AccountKind = "INVESTMENT"
	CreditCard AccountKind = "CREDIT_CARD"
)

// ParseAccountKind parses a wire string into an AccountKind.
func ParseAccountKind(s string) (AccountKind, error) {
	switch AccountKind(s) {
	case Wallet, Checking, Savings, Investment, CreditCard:
		return AccountKind(s), nil
	default:
		return "", fmt.Errorf("unknown account kind %q", s)
	}
}

// ScheduleMode selects how a user intent expands into ledger records.
type ScheduleMode string

const (
	// Single produces exactly one transaction.
	Single ScheduleMode = "single"
	// InstallmentSplit divides the amount into n monthly shares.
	InstallmentSplit ScheduleMode = "installment"
	// Recurring repeats the full amount monthly n times.
	Recurring ScheduleMode = "recurring"
)

// ParseScheduleMode parses a string into a ScheduleMode.
func ParseScheduleMode(s string) (ScheduleMode, error) {
	switch ScheduleMode(s) {
	case Single, InstallmentSplit, Recurring:
		return ScheduleMode(s), nil
	default:
		return "", fmt.Errorf("unknown schedule mode %q", s)
	}
}
