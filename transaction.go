package grana

import (
	"slices"

	"github.com/grana-fin/grana/date"
)

// Installment locates one share inside an installment series.
type Installment struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// Transaction is one ledger record. Amounts are always stored
// non-negative; the sign of the balance effect is implied by Type.
//
// Exactly one of two shapes holds: income/expense records have no
// ToAccountID, transfer records have one. Records produced together by
// an installment or recurring expansion share a GroupID.
type Transaction struct {
	ID          string            `json:"id"`
	Description string            `json:"description"`
	Amount      Money             `json:"amount"`
	Type        TransactionType   `json:"type"`
	Status      TransactionStatus `json:"status"`
	Date        date.Date         `json:"date"`
	CategoryID  string            `json:"categoryId,omitempty"`
	SubCategory string            `json:"subCategory,omitempty"`
	AccountID   string            `json:"accountId"`
	ToAccountID string            `json:"toAccountId,omitempty"`
	Tags        []string          `json:"tags,omitempty"`
	Icon        string            `json:"icon,omitempty"`

	GroupID     string       `json:"groupId,omitempty"`
	Installment *Installment `json:"installment,omitempty"`
	IsRecurring bool         `json:"isRecurring,omitempty"`

	// Credit card accrual accounting.
	CreditCardID  string `json:"creditCardId,omitempty"`
	InvoiceMonth  string `json:"invoiceMonth,omitempty"` // YYYY-MM
	InstallmentID string `json:"installmentId,omitempty"`
}

// Touches reports whether the transaction references the account as
// source or destination.
func (t Transaction) Touches(accountID string) bool {
	return t.AccountID == accountID || t.ToAccountID == accountID
}

// Clone returns a deep copy of the transaction. Slices and the
// installment descriptor are copied so the caller can mutate freely.
func (t Transaction) Clone() Transaction {
	c := t
	c.Tags = slices.Clone(t.Tags)
	if t.Installment != nil {
		inst := *t.Installment
		c.Installment = &inst
	}
	return c
}

// Account is a place money lives: a wallet, a bank account or a credit
// card. Balance is maintained exclusively by the balance effect engine,
// except for the explicit override operation used at initial setup.
type Account struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Kind    AccountKind `json:"type"`
	Balance Money       `json:"balance"`

	// Credit card only.
	CreditLimit Money `json:"creditLimit,omitempty"`
	ClosingDay  int   `json:"closingDay,omitempty"` // statement closes this day of month
	DueDay      int   `json:"dueDay,omitempty"`
}

// IsCreditCard reports whether the account is a credit card with a
// configured statement closing day, i.e. whether purchases on it get an
// invoice month.
func (a Account) IsCreditCard() bool { return a.Kind == CreditCard && a.ClosingDay >= 1 }

// Category groups transactions for budgeting and reporting. Deleting a
// category never cascades: transactions keep their stored CategoryID and
// render as uncategorized.
type Category struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Type          TransactionType `json:"type"` // income or expense, never transfer
	Color         string          `json:"color"`
	Icon          string          `json:"icon"`
	Subcategories []string        `json:"subcategories"`
	BudgetLimit   Money           `json:"budgetLimit,omitempty"` // monthly, zero means no budget
}

// Goal is a savings target. Goals are independent of the transaction
// ledger; the saved amount moves only through explicit contributions.
type Goal struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	TargetAmount  Money     `json:"targetAmount"`
	CurrentAmount Money     `json:"currentAmount"`
	Deadline      date.Date `json:"deadline"`
	Color         string    `json:"color"`
	Icon          string    `json:"icon"`
}

// InvestmentType classifies a fixed income or fund position.
type InvestmentType string

const (
	InvestCDB    InvestmentType = "CDB"
	InvestCDI    InvestmentType = "CDI"
	InvestFundRF InvestmentType = "FUNDO_RF"
	InvestFundMM InvestmentType = "FUNDO_MULT"
	InvestGov    InvestmentType = "TESOURO"
	InvestOther  InvestmentType = "OUTRO"
)

// InvestmentAsset is a standalone position used for yield projection.
// It has no linkage to the transaction ledger.
type InvestmentAsset struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Type             InvestmentType `json:"type"`
	Institution      string         `json:"institution"`
	Principal        Money          `json:"principal"`
	AnnualRate       float64        `json:"annualRate"` // % per year
	Benchmark        string         `json:"benchmark,omitempty"`
	BenchmarkPercent float64        `json:"benchmarkPercent,omitempty"`
	LiquidityDays    int            `json:"liquidityDays"`
	StartDate        date.Date      `json:"startDate"`
	WithdrawalDate   *date.Date     `json:"expectedWithdrawalDate,omitempty"`
	IOFRetroactive   bool           `json:"iofRetroactive"`
	IOFRate          float64        `json:"iofRate"` // % applied to gross yield
	IRRate           float64        `json:"irRate"`  // % applied after IOF
	IRBase           string         `json:"irRetroactiveBase,omitempty"`
	Notes            string         `json:"notes,omitempty"`
}

// AppData is the aggregate root and the unit of persistence: the whole
// document is loaded, saved and exported as one value.
type AppData struct {
	Transactions []Transaction     `json:"transactions"`
	Categories   []Category        `json:"categories"`
	Accounts     []Account         `json:"accounts"`
	Goals        []Goal            `json:"goals"`
	Investments  []InvestmentAsset `json:"investments"`
}

// Clone returns a copy of the aggregate with fresh top-level slices, so
// the previous value stays untouched when the copy is edited. Entity
// values are shared; operations that modify an entity must replace it,
// never mutate it.
func (d AppData) Clone() AppData {
	return AppData{
		Transactions: slices.Clone(d.Transactions),
		Categories:   slices.Clone(d.Categories),
		Accounts:     slices.Clone(d.Accounts),
		Goals:        slices.Clone(d.Goals),
		Investments:  slices.Clone(d.Investments),
	}
}

// Category returns the category with this id, or nil if unknown (a
// tolerated dangling reference renders as uncategorized).
func (d AppData) Category(id string) *Category {
	for i := range d.Categories {
		if d.Categories[i].ID == id {
			return &d.Categories[i]
		}
	}
	return nil
}

// Account returns the account with this id, or nil if unknown.
func (d AppData) Account(id string) *Account {
	for i := range d.Accounts {
		if d.Accounts[i].ID == id {
			return &d.Accounts[i]
		}
	}
	return nil
}

// Transaction returns the transaction with this id, or nil if unknown.
func (d AppData) Transaction(id string) *Transaction {
	for i := range d.Transactions {
		if d.Transactions[i].ID == id {
			return &d.Transactions[i]
		}
	}
	return nil
}
