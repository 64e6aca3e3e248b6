package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/grana-fin/grana"
)

type categoriesCmd struct{}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list categories and subcategories" }
func (*categoriesCmd) Usage() string {
	return `grana categories
`
}
func (*categoriesCmd) SetFlags(*flag.FlagSet) {}

func (p *categoriesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tBUDGET\tSUBCATEGORIES")
	for _, c := range store.Data().Categories {
		budget := ""
		if !c.BudgetLimit.IsZero() {
			budget = c.BudgetLimit.Display()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Name, c.Type, budget, strings.Join(c.Subcategories, ", "))
	}
	w.Flush()
	return subcommands.ExitSuccess
}

type newCategoryCmd struct {
	name   string
	typ    string
	budget string
	sub    string
}

func (*newCategoryCmd) Name() string     { return "new-category" }
func (*newCategoryCmd) Synopsis() string { return "create a category, or add a subcategory" }
func (*newCategoryCmd) Usage() string {
	return `grana new-category -name <text> [-type income|expense] [-budget <value>]
grana new-category -sub <name> <category-id>

  With -sub, appends a subcategory to an existing category instead of
  creating a new one.
`
}

func (p *newCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Category display name.")
	f.StringVar(&p.typ, "type", "expense", "Category type: income or expense.")
	f.StringVar(&p.budget, "budget", "", "Monthly budget limit (expense categories).")
	f.StringVar(&p.sub, "sub", "", "Subcategory name to append to the given category id.")
}

func (p *newCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	if p.sub != "" {
		if f.NArg() != 1 {
			fmt.Fprintln(os.Stderr, "Error: -sub needs exactly one category id.")
			return subcommands.ExitUsageError
		}
		store.AddSubcategory(f.Arg(0), p.sub)
		return subcommands.ExitSuccess
	}

	if p.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}
	typ, err := parseTypeFlag(p.typ)
	if err != nil || typ == grana.Transfer {
		fmt.Fprintf(os.Stderr, "Error: category type must be income or expense\n")
		return subcommands.ExitUsageError
	}

	cat := grana.Category{Name: p.name, Type: typ}
	if p.budget != "" {
		if cat.BudgetLimit, err = grana.ParseMoney(p.budget); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid budget %q\n", p.budget)
			return subcommands.ExitUsageError
		}
	}

	created := store.AddCategory(cat)
	fmt.Printf("Created category %s (%s)\n", created.Name, created.ID)
	return subcommands.ExitSuccess
}

type rmCategoryCmd struct{}

func (*rmCategoryCmd) Name() string     { return "rm-category" }
func (*rmCategoryCmd) Synopsis() string { return "delete a category (transactions keep their id)" }
func (*rmCategoryCmd) Usage() string {
	return `grana rm-category <category-id>

  Deletes the category only. Transactions that referenced it keep the
  stored id and show as uncategorized.
`
}
func (*rmCategoryCmd) SetFlags(*flag.FlagSet) {}

func (p *rmCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one category id is required.")
		return subcommands.ExitUsageError
	}
	store, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	store.DeleteCategory(f.Arg(0))
	return subcommands.ExitSuccess
}
