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

type goalsCmd struct{}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "list savings goals and their progress" }
func (*goalsCmd) Usage() string {
	return `grana goals
`
}
func (*goalsCmd) SetFlags(*flag.FlagSet) {}

func (p *goalsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSAVED\tTARGET\tDEADLINE")
	for _, g := range store.Data().Goals {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			g.ID, g.Name, g.CurrentAmount.Display(), g.TargetAmount.Display(), g.Deadline)
	}
	w.Flush()
	return subcommands.ExitSuccess
}

type newGoalCmd struct {
	name     string
	target   string
	deadline string
}

func (*newGoalCmd) Name() string     { return "new-goal" }
func (*newGoalCmd) Synopsis() string { return "create a savings goal" }
func (*newGoalCmd) Usage() string {
	return `grana new-goal -name <text> -target <value> [-deadline <date>]
`
}

func (p *newGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Goal name.")
	f.StringVar(&p.target, "target", "", "Target amount.")
	f.StringVar(&p.deadline, "deadline", "", "Deadline (YYYY-MM-DD).")
}

func (p *newGoalCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.name == "" || p.target == "" {
		fmt.Fprintln(os.Stderr, "Error: -name and -target are required.")
		return subcommands.ExitUsageError
	}
	target, err := grana.ParseMoney(p.target)
	if err != nil || !target.IsPositive() {
		fmt.Fprintf(os.Stderr, "Error: invalid target %q\n", p.target)
		return subcommands.ExitUsageError
	}
	goal := grana.Goal{Name: p.name, TargetAmount: target}
	if p.deadline != "" {
		if goal.Deadline, err = date.Parse(p.deadline); err != nil {
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

	created := store.AddGoal(goal)
	fmt.Printf("Created goal %s (%s)\n", created.Name, created.ID)
	return subcommands.ExitSuccess
}

type saveCmd struct {
	amount string
}

func (*saveCmd) Name() string     { return "save" }
func (*saveCmd) Synopsis() string { return "add an amount to a savings goal" }
func (*saveCmd) Usage() string {
	return `grana save -amount <value> <goal-id>

  Goals live outside the transaction ledger; saving toward one does not
  move any account balance.
`
}

func (p *saveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.amount, "amount", "", "Amount to add.")
}

func (p *saveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 || p.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -amount and exactly one goal id are required.")
		return subcommands.ExitUsageError
	}
	amount, err := grana.ParseMoney(p.amount)
	if err != nil || !amount.IsPositive() {
		fmt.Fprintf(os.Stderr, "Error: invalid amount %q\n", p.amount)
		return subcommands.ExitUsageError
	}

	store, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	store.AddToGoal(f.Arg(0), amount)
	return subcommands.ExitSuccess
}
