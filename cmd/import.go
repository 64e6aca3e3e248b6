package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/grana-fin/grana"
	"github.com/grana-fin/grana/csvimp"
	"github.com/grana-fin/grana/ofx"
)

type importCmd struct {
	file      string
	format    string
	account   string
	separator string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a bank statement (OFX or CSV), deduplicated" }
func (*importCmd) Usage() string {
	return `grana import -file <path> -account <id> [-format ofx|csv] [-sep <char>]

  Parses the statement and inserts the rows that are not already in the
  ledger. A row is a duplicate when an existing transaction (or an
  earlier row of the same file) has the same account, date, type,
  amount and normalized description. Importing the same file twice
  therefore inserts nothing the second time.
`
}

func (p *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.file, "file", "", "Statement file to import.")
	f.StringVar(&p.format, "format", "", "Statement format: ofx or csv (default: by file extension).")
	f.StringVar(&p.account, "account", "", "Account receiving the transactions.")
	f.StringVar(&p.separator, "sep", "", "CSV separator (default from config, usually ';').")
}

func (p *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.file == "" || p.account == "" {
		fmt.Fprintln(os.Stderr, "Error: -file and -account are required.")
		return subcommands.ExitUsageError
	}

	format := p.format
	if format == "" {
		if strings.HasSuffix(strings.ToLower(p.file), ".ofx") {
			format = "ofx"
		} else {
			format = "csv"
		}
	}

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	sep := []rune(cfg.CSVSeparator)
	if p.separator != "" {
		sep = []rune(p.separator)
	}

	in, err := os.Open(p.file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	var candidates []grana.Candidate
	switch format {
	case "ofx":
		candidates, err = ofx.Parse(in)
	case "csv":
		var separator rune
		if len(sep) > 0 {
			separator = sep[0]
		}
		candidates, err = csvimp.Parse(in, separator)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", format)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if len(candidates) == 0 {
		fmt.Println("No usable rows in the statement.")
		return subcommands.ExitSuccess
	}

	store, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	inserted := store.ImportCandidates(p.account, candidates)
	fmt.Printf("Imported %d of %d rows (%d duplicates skipped).\n",
		inserted, len(candidates), len(candidates)-inserted)
	return subcommands.ExitSuccess
}
