package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/grana-fin/grana"
	"github.com/grana-fin/grana/date"
)

type addCmd struct {
	description  string
	amount       string
	txType       string
	day          string
	account      string
	toAccount    string
	category     string
	subCategory  string
	pending      bool
	installments int
	recurring    bool
	repeat       int
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a transaction (single, installments or recurring)" }
func (*addCmd) Usage() string {
	return `grana add -desc <text> -amount <value> [-type income|expense|transfer] [-d <date>]
          [-account <id>] [-to <id>] [-category <id>] [-sub <name>] [-pending]
          [-installments <n> | -recurring [-repeat <n>]]

  Records a transaction. With -installments the amount is split into n
  monthly shares; with -recurring the full amount repeats monthly. On a
  credit card account each record is assigned its invoice month.
`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.description, "desc", "", "Transaction description.")
	f.StringVar(&p.amount, "amount", "", "Amount, always positive; direction comes from -type.")
	f.StringVar(&p.txType, "type", "expense", "Transaction type: income, expense or transfer.")
	f.StringVar(&p.day, "d", "", "Transaction date (YYYY-MM-DD, defaults to today).")
	f.StringVar(&p.account, "account", "", "Source account id.")
	f.StringVar(&p.toAccount, "to", "", "Destination account id (transfers only).")
	f.StringVar(&p.category, "category", "", "Category id. Empty means infer from the description.")
	f.StringVar(&p.subCategory, "sub", "", "Subcategory name.")
	f.BoolVar(&p.pending, "pending", false, "Record as pending (does not move balances until paid).")
	f.IntVar(&p.installments, "installments", 0, "Split into this many monthly installments (>= 2).")
	f.BoolVar(&p.recurring, "recurring", false, "Repeat the full amount monthly.")
	f.IntVar(&p.repeat, "repeat", grana.DefaultRepeatCount, "Number of occurrences with -recurring.")
}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.description == "" || p.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -desc and -amount are required.")
		return subcommands.ExitUsageError
	}

	amount, err := grana.ParseMoney(p.amount)
	if err != nil || !amount.IsPositive() {
		fmt.Fprintf(os.Stderr, "Error: invalid amount %q\n", p.amount)
		return subcommands.ExitUsageError
	}

	txType, err := parseTypeFlag(p.txType)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if (txType == grana.Transfer) != (p.toAccount != "") {
		fmt.Fprintln(os.Stderr, "Error: -to is required for transfers and invalid otherwise.")
		return subcommands.ExitUsageError
	}

	day := date.Today()
	if p.day != "" {
		if day, err = date.Parse(p.day); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
	}

	store, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	data := store.Data()
	account := p.account
	if account == "" && len(data.Accounts) > 0 {
		account = data.Accounts[0].ID
	}

	status := grana.Completed
	if p.pending {
		status = grana.Pending
	}

	base := grana.Transaction{
		Description: p.description,
		Amount:      amount,
		Type:        txType,
		Status:      status,
		Date:        day,
		CategoryID:  p.category,
		SubCategory: p.subCategory,
		AccountID:   account,
		ToAccountID: p.toAccount,
	}

	if base.CategoryID == "" {
		if match := grana.InferCategory(base.Description, data.Categories, txType); match.Confidence > 0 {
			base.CategoryID = match.CategoryID
			if base.SubCategory == "" {
				base.SubCategory = match.SubCategory
			}
		}
	}

	// Flag entries well above the category's history before recording.
	if base.CategoryID != "" {
		if stats := store.CategoryStats(base.CategoryID); stats.Anomalous(amount) {
			fmt.Fprintf(os.Stderr, "note: %s is well above this category's average of %s\n",
				amount.Display(), stats.Average.Display())
		}
	}

	mode, count := grana.Single, 0
	switch {
	case p.installments >= 2:
		mode, count = grana.InstallmentSplit, p.installments
	case p.recurring:
		mode, count = grana.Recurring, p.repeat
	}

	produced := store.AddTransaction(base, mode, count)
	fmt.Printf("Recorded %d transaction(s).\n", len(produced))
	return subcommands.ExitSuccess
}

// parseTypeFlag accepts the lowercase flag spellings of a transaction
// type.
func parseTypeFlag(s string) (grana.TransactionType, error) {
	switch s {
	case "income":
		return grana.Income, nil
	case "expense":
		return grana.Expense, nil
	case "transfer":
		return grana.Transfer, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q (want income, expense or transfer)", s)
	}
}
