package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/grana-fin/grana"
	"github.com/grana-fin/grana/advisor"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "ask a Gemini model about your ledger" }
func (*assistCmd) Usage() string {
	return `grana assist <question...>

  Sends a summary of the ledger and your question to a Gemini model.
  Requires GEMINI_API_KEY in the environment. For an offline analysis
  use 'grana advice' instead.
`
}
func (*assistCmd) SetFlags(*flag.FlagSet) {}

func (p *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	question := strings.TrimSpace(strings.Join(f.Args(), " "))
	if question == "" {
		fmt.Fprintln(os.Stderr, "Error: missing question")
		return subcommands.ExitUsageError
	}

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	store, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	adv, err := advisor.New(ctx, client, cfg.Model)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	answer, err := adv.Ask(ctx, ledgerSummary(store), question)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	renderMarkdown(answer)
	return subcommands.ExitSuccess
}

// ledgerSummary condenses the ledger into the plain text context sent
// along with the question. Account balances, the current month totals
// and budget consumption are enough for the model to be useful without
// shipping the full transaction history.
func ledgerSummary(store *grana.Store) string {
	data := store.Data()
	month := store.CurrentMonth()
	sum := grana.SummarizeMonth(data, month)

	var b strings.Builder
	b.WriteString("Accounts:\n")
	for _, a := range data.Accounts {
		fmt.Fprintf(&b, "- %s (%s): %s\n", a.Name, a.Kind, a.Balance.Display())
	}
	fmt.Fprintf(&b, "\nMonth %s %d: income %s, expenses %s, balance %s.\n",
		month.Month(), month.Year(), sum.Income.Display(), sum.Expense.Display(), sum.Balance.Display())
	if sum.TopCategoryName != "" {
		fmt.Fprintf(&b, "Heaviest expense category: %s at %s.\n", sum.TopCategoryName, sum.TopCategoryAmt.Display())
	}
	for _, l := range grana.BudgetProgress(data, month) {
		fmt.Fprintf(&b, "Budget %s: spent %s of %s.\n", l.Category.Name, l.Spent.Display(), l.Limit.Display())
	}
	return b.String()
}
