package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/grana-fin/grana"
	"github.com/grana-fin/grana/date"
)

type summaryCmd struct {
	month string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "month overview: totals, budgets and upcoming bills" }
func (*summaryCmd) Usage() string {
	return `grana summary [-m <YYYY-MM>]
`
}

func (p *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.month, "m", "", "Month to summarize (YYYY-MM, defaults to the current month).")
}

func (p *summaryCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	month := store.CurrentMonth()
	if p.month != "" {
		if month, err = date.ParseMonthKey(p.month); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid month %q, want YYYY-MM\n", p.month)
			return subcommands.ExitUsageError
		}
	}

	data := store.Data()
	sum := grana.SummarizeMonth(data, month)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s %d\n\n", month.Month(), month.Year())
	fmt.Fprintf(&b, "| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Income | %s |\n", sum.Income.Display())
	fmt.Fprintf(&b, "| Expenses | %s |\n", sum.Expense.Display())
	fmt.Fprintf(&b, "| Balance | %s |\n", sum.Balance.Display())

	if lines := grana.BudgetProgress(data, month); len(lines) > 0 {
		b.WriteString("\n## Budgets\n\n| Category | Spent | Limit | Used |\n|---|---|---|---|\n")
		for _, l := range lines {
			fmt.Fprintf(&b, "| %s | %s | %s | %.0f%% |\n",
				l.Category.Name, l.Spent.Display(), l.Limit.Display(), l.Ratio*100)
		}
	}

	if bills := store.UpcomingBills(); len(bills) > 0 {
		b.WriteString("\n## Upcoming bills (7 days)\n\n| Date | Description | Amount |\n|---|---|---|\n")
		for _, t := range bills {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", t.Date, t.Description, t.Amount.Display())
		}
	}

	renderMarkdown(b.String())
	return subcommands.ExitSuccess
}

type adviceCmd struct {
	month string
}

func (*adviceCmd) Name() string     { return "advice" }
func (*adviceCmd) Synopsis() string { return "local rule based analysis of a month" }
func (*adviceCmd) Usage() string {
	return `grana advice [-m <YYYY-MM>]

  Analyses the month entirely on device: totals, savings rate, heaviest
  category and a closing tip. Nothing leaves the machine; for a model
  backed conversation see 'grana assist'.
`
}

func (p *adviceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.month, "m", "", "Month to analyse (YYYY-MM, defaults to the current month).")
}

func (p *adviceCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	month := store.CurrentMonth()
	if p.month != "" {
		if month, err = date.ParseMonthKey(p.month); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid month %q, want YYYY-MM\n", p.month)
			return subcommands.ExitUsageError
		}
	}

	renderMarkdown(grana.Advise(store.Data(), month))
	return subcommands.ExitSuccess
}

type investCmd struct{}

func (*investCmd) Name() string     { return "invest" }
func (*investCmd) Synopsis() string { return "projected yield of the investment assets" }
func (*investCmd) Usage() string {
	return `grana invest
`
}
func (*investCmd) SetFlags(*flag.FlagSet) {}

func (p *investCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	assets := store.Data().Investments
	if len(assets) == 0 {
		fmt.Println("No investment assets recorded.")
		return subcommands.ExitSuccess
	}

	today := date.Today()
	var b strings.Builder
	b.WriteString("# Investments\n\n| Asset | Principal | Days | Net | Yield |\n|---|---|---|---|---|\n")
	for _, a := range assets {
		sim := grana.Simulate(a, today)
		fmt.Fprintf(&b, "| %s (%s) | %s | %d | %s | %s |\n",
			a.Name, a.Type, a.Principal.Display(), sim.Days, sim.Net.Display(), sim.NetYield.Display())
	}
	proj := grana.Project(assets, today)
	fmt.Fprintf(&b, "\n**Total applied:** %s — **net if withdrawn:** %s (%s yield after IOF/IR)\n",
		proj.Applied.Display(), proj.Net.Display(), proj.NetYield.Display())

	renderMarkdown(b.String())
	return subcommands.ExitSuccess
}
