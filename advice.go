package grana

import (
	"fmt"
	"strings"

	"github.com/grana-fin/grana/date"
)

// MonthSummary aggregates one calendar month of the ledger for
// reporting and advice.
type MonthSummary struct {
	Month           date.Date
	Income          Money
	Expense         Money
	Balance         Money // Income - Expense
	TopCategoryID   string
	TopCategoryName string
	TopCategoryAmt  Money
}

// SummarizeMonth totals income and expenses of the month containing d
// and finds the heaviest expense category.
func SummarizeMonth(data AppData, d date.Date) MonthSummary {
	window := date.MonthOf(d)
	sum := MonthSummary{Month: d}

	perCategory := map[string]Money{}
	for _, t := range data.Transactions {
		if !window.Contains(t.Date) {
			continue
		}
		switch t.Type {
		case Income:
			sum.Income = sum.Income.Add(t.Amount)
		case Expense:
			sum.Expense = sum.Expense.Add(t.Amount)
			if t.CategoryID != "" {
				perCategory[t.CategoryID] = perCategory[t.CategoryID].Add(t.Amount)
			}
		}
	}
	sum.Balance = sum.Income.Sub(sum.Expense)

	for id, amt := range perCategory {
		if amt.GreaterThan(sum.TopCategoryAmt) {
			sum.TopCategoryID = id
			sum.TopCategoryAmt = amt
		}
	}
	if cat := data.Category(sum.TopCategoryID); cat != nil {
		sum.TopCategoryName = cat.Name
	}
	return sum
}

// Advise produces the rule based financial analysis of a month as
// markdown: income/expense recap, savings rate, heaviest category and a
// closing tip. The analysis is fully local, no model behind it.
func Advise(data AppData, d date.Date) string {
	s := SummarizeMonth(data, d)

	var b strings.Builder
	fmt.Fprintf(&b, "# Analysis for %s %d\n\n", s.Month.Month(), s.Month.Year())
	fmt.Fprintf(&b, "- **Recap:** you earned %s and spent %s.\n", s.Income.Display(), s.Expense.Display())

	switch {
	case s.Balance.IsPositive():
		fmt.Fprintf(&b, "- **Positive balance:** you are saving %s this month.\n", s.Balance.Display())
		if s.Income.IsPositive() {
			rate := s.Balance.Float64() / s.Income.Float64() * 100
			fmt.Fprintf(&b, "- **Savings rate:** about %.1f%% of your income.\n", rate)
		}
	case s.Balance.IsNegative():
		fmt.Fprintf(&b, "- **Warning:** spending exceeded income by %s.\n", s.Balance.Neg().Display())
	default:
		b.WriteString("- **Break even:** you spent exactly what you earned.\n")
	}

	if s.TopCategoryAmt.IsPositive() {
		name := s.TopCategoryName
		if name == "" {
			name = "uncategorized"
		}
		fmt.Fprintf(&b, "\n**Heaviest expense:** %s at %s.\n", name, s.TopCategoryAmt.Display())
	}

	b.WriteString("\n**Tip:** ")
	switch {
	case s.Expense.GreaterThan(s.Income):
		b.WriteString("review your fixed expenses and trim the heaviest category.\n")
	case s.Balance.IsPositive() && s.Balance.LessThan(M(500)):
		b.WriteString("move this month's surplus into your emergency fund.\n")
	case s.Balance.IsZero():
		b.WriteString("cut about 10% of leisure spending to start a surplus.\n")
	default:
		b.WriteString("solid month. Consider investing the surplus toward a long term goal.\n")
	}
	return b.String()
}
