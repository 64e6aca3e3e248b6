package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type exportCmd struct {
	file string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the whole ledger to a backup file" }
func (*exportCmd) Usage() string {
	return `grana export [-o <file>]

  Writes the ledger as a JSON document, to stdout by default.
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.file, "o", "", "Destination file (default stdout).")
}

func (p *exportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	out := os.Stdout
	if p.file != "" {
		out, err = os.Create(p.file)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}
	if err := store.Export(out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if p.file != "" {
		fmt.Printf("Ledger exported to %s\n", p.file)
	}
	return subcommands.ExitSuccess
}

type restoreCmd struct{}

func (*restoreCmd) Name() string     { return "restore" }
func (*restoreCmd) Synopsis() string { return "replace the ledger with a backup file" }
func (*restoreCmd) Usage() string {
	return `grana restore <file>

  Replaces the whole ledger with the backup document. A malformed file
  leaves the current ledger untouched.
`
}
func (*restoreCmd) SetFlags(*flag.FlagSet) {}

func (p *restoreCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: missing backup file")
		return subcommands.ExitUsageError
	}
	doc, err := os.ReadFile(f.Arg(0))
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

	if err := store.Import(doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid backup: %v\n", err)
		return subcommands.ExitFailure
	}
	data := store.Data()
	fmt.Printf("Restored %d transactions, %d accounts, %d categories.\n",
		len(data.Transactions), len(data.Accounts), len(data.Categories))
	return subcommands.ExitSuccess
}
