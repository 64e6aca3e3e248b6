package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/grana-fin/grana"
	"github.com/grana-fin/grana/date"
)

type txCmd struct {
	search  string
	from    string
	to      string
	month   string
	account string
	status  string
	txType  string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions of the current month, filtered" }
func (*txCmd) Usage() string {
	return `grana tx [-q <text>] [-from <date> -to <date>] [-m <YYYY-MM>]
         [-account <id>] [-status pending|completed] [-type income|expense|transfer]

  Lists the visible transactions. Without filters the current calendar
  month is shown, newest first. A search (-q) matches the whole history,
  case and accent insensitive.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.search, "q", "", "Free text search over description, amounts, categories, tags and dates.")
	f.StringVar(&p.from, "from", "", "Explicit range start (YYYY-MM-DD).")
	f.StringVar(&p.to, "to", "", "Explicit range end (YYYY-MM-DD).")
	f.StringVar(&p.month, "m", "", "Month to show (YYYY-MM, defaults to the current month).")
	f.StringVar(&p.account, "account", "", "Only transactions touching this account.")
	f.StringVar(&p.status, "status", "", "Only pending or completed transactions.")
	f.StringVar(&p.txType, "type", "", "Only income, expense or transfer transactions.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	view := grana.ViewState{Search: p.search}
	view.Filter.AccountID = p.account

	if p.from != "" {
		if view.Filter.Range.From, err = date.Parse(p.from); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
	}
	if p.to != "" {
		if view.Filter.Range.To, err = date.Parse(p.to); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
	}
	if p.month != "" {
		if view.Month, err = date.ParseMonthKey(p.month); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid month %q, want YYYY-MM\n", p.month)
			return subcommands.ExitUsageError
		}
	}
	if p.status != "" {
		switch p.status {
		case "pending":
			view.Filter.Status = grana.Pending
		case "completed":
			view.Filter.Status = grana.Completed
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown status %q\n", p.status)
			return subcommands.ExitUsageError
		}
	}
	if p.txType != "" {
		if view.Filter.Type, err = parseTypeFlag(p.txType); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
	}

	data := store.Data()
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tTYPE\tSTATUS\tAMOUNT\tDESCRIPTION\tCATEGORY\tID")
	for _, t := range store.Query(view) {
		category := ""
		if cat := data.Category(t.CategoryID); cat != nil {
			category = cat.Name
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.Date, t.Type, t.Status, t.Amount.Display(), t.Description, category, t.ID)
	}
	w.Flush()
	return subcommands.ExitSuccess
}
