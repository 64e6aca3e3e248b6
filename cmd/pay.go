package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type payCmd struct{}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "toggle a transaction between pending and completed" }
func (*payCmd) Usage() string {
	return `grana pay <transaction-id>...

  Flips each transaction's status. Marking a pending bill completed is
  what actually moves the money on its account.
`
}

func (*payCmd) SetFlags(*flag.FlagSet) {}

func (p *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one transaction id is required.")
		return subcommands.ExitUsageError
	}
	store, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	for _, id := range f.Args() {
		store.ToggleStatus(id)
	}
	return subcommands.ExitSuccess
}

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete transactions, reversing their balance effect" }
func (*rmCmd) Usage() string {
	return `grana rm <transaction-id>...
`
}

func (*rmCmd) SetFlags(*flag.FlagSet) {}

func (p *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one transaction id is required.")
		return subcommands.ExitUsageError
	}
	store, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	for _, id := range f.Args() {
		store.DeleteTransaction(id)
	}
	return subcommands.ExitSuccess
}
