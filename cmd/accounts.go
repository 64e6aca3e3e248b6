package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/grana-fin/grana"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list accounts and balances" }
func (*accountsCmd) Usage() string {
	return `grana accounts
`
}
func (*accountsCmd) SetFlags(*flag.FlagSet) {}

func (p *accountsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tKIND\tBALANCE")
	for _, a := range store.Data().Accounts {
		extra := ""
		if a.IsCreditCard() {
			extra = fmt.Sprintf(" (closes day %d, limit %s)", a.ClosingDay, a.CreditLimit.Display())
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s%s\n", a.ID, a.Name, a.Kind, a.Balance.Display(), extra)
	}
	w.Flush()
	return subcommands.ExitSuccess
}

type newAccountCmd struct {
	name       string
	kind       string
	limit      string
	closingDay int
	dueDay     int
}

func (*newAccountCmd) Name() string     { return "new-account" }
func (*newAccountCmd) Synopsis() string { return "create an account" }
func (*newAccountCmd) Usage() string {
	return `grana new-account -name <text> [-kind wallet|checking|savings|investment|card]
          [-limit <value> -closing <day> -due <day>]

  Creates an account. The credit card fields only make sense with
  -kind card.
`
}

func (p *newAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Account display name.")
	f.StringVar(&p.kind, "kind", "checking", "Account kind: wallet, checking, savings, investment or card.")
	f.StringVar(&p.limit, "limit", "", "Credit limit (cards only).")
	f.IntVar(&p.closingDay, "closing", 0, "Statement closing day of month (cards only).")
	f.IntVar(&p.dueDay, "due", 0, "Payment due day of month (cards only).")
}

func (p *newAccountCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}
	kind, err := parseKindFlag(p.kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	account := grana.Account{Name: p.name, Kind: kind, ClosingDay: p.closingDay, DueDay: p.dueDay}
	if p.limit != "" {
		if account.CreditLimit, err = grana.ParseMoney(p.limit); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid limit %q\n", p.limit)
			return subcommands.ExitUsageError
		}
	}

	store, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	created := store.AddAccount(account)
	fmt.Printf("Created account %s (%s)\n", created.Name, created.ID)
	return subcommands.ExitSuccess
}

type rmAccountCmd struct{}

func (*rmAccountCmd) Name() string     { return "rm-account" }
func (*rmAccountCmd) Synopsis() string { return "delete an account and every transaction touching it" }
func (*rmAccountCmd) Usage() string {
	return `grana rm-account <account-id>

  Deletes the account. Every transaction whose source or destination is
  this account is removed with it.
`
}
func (*rmAccountCmd) SetFlags(*flag.FlagSet) {}

func (p *rmAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one account id is required.")
		return subcommands.ExitUsageError
	}
	store, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	store.DeleteAccount(f.Arg(0))
	return subcommands.ExitSuccess
}

type setBalanceCmd struct {
	balance string
}

func (*setBalanceCmd) Name() string     { return "set-balance" }
func (*setBalanceCmd) Synopsis() string { return "override an account balance (initial setup)" }
func (*setBalanceCmd) Usage() string {
	return `grana set-balance -balance <value> <account-id>

  Overrides the account balance directly. This bypasses the ledger and
  is meant for initial setup only.
`
}

func (p *setBalanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.balance, "balance", "", "New balance.")
}

func (p *setBalanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 || p.balance == "" {
		fmt.Fprintln(os.Stderr, "Error: -balance and exactly one account id are required.")
		return subcommands.ExitUsageError
	}
	balance, err := grana.ParseMoney(p.balance)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid balance %q\n", p.balance)
		return subcommands.ExitUsageError
	}
	store, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	store.SetAccountBalance(f.Arg(0), balance)
	return subcommands.ExitSuccess
}

func parseKindFlag(s string) (grana.AccountKind, error) {
	switch s {
	case "wallet":
		return grana.Wallet, nil
	case "checking":
		return grana.Checking, nil
	case "savings":
		return grana.Savings, nil
	case "investment":
		return grana.Investment, nil
	case "card":
		return grana.CreditCard, nil
	default:
		return "", fmt.Errorf("unknown account kind %q", s)
	}
}
