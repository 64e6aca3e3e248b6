package grana

import (
	"sort"

	"github.com/grana-fin/grana/date"
)

// AnomalyFactor is the multiple of the historical category mean above
// which a new amount is flagged as anomalous by the entry form.
const AnomalyFactor = 1.3

// CategoryStats summarizes the historical amounts of one category.
type CategoryStats struct {
	Count   int
	Average Money
	Max     Money
}

// Anomalous reports whether an amount is suspiciously high for the
// category: above AnomalyFactor times the historical mean. A category
// with no history never flags.
func (cs CategoryStats) Anomalous(amount Money) bool {
	if cs.Count == 0 {
		return false
	}
	return amount.GreaterThan(cs.Average.Mul(AnomalyFactor))
}

// CategoryStatsOf computes count, arithmetic mean and max amount over
// every historical transaction of the category.
func CategoryStatsOf(data AppData, categoryID string) CategoryStats {
	var stats CategoryStats
	var total Money
	for _, t := range data.Transactions {
		if t.CategoryID != categoryID {
			continue
		}
		stats.Count++
		total = total.Add(t.Amount)
		if t.Amount.GreaterThan(stats.Max) {
			stats.Max = t.Amount
		}
	}
	if stats.Count > 0 {
		stats.Average = total.DivRound(stats.Count)
	}
	return stats
}

// CategoryStats computes the stats of a category over the store's
// ledger.
func (s *Store) CategoryStats(categoryID string) CategoryStats {
	return CategoryStatsOf(s.data, categoryID)
}

// UpcomingBills returns the pending expenses due within the next seven
// days from today, soonest first.
func UpcomingBills(data AppData, today date.Date) []Transaction {
	horizon := date.NewRange(today, today.Add(7))
	var bills []Transaction
	for _, t := range data.Transactions {
		if t.Type != Expense || t.Status != Pending {
			continue
		}
		if horizon.Contains(t.Date) {
			bills = append(bills, t)
		}
	}
	sort.SliceStable(bills, func(i, j int) bool { return bills[i].Date.Before(bills[j].Date) })
	return bills
}

// UpcomingBills returns the store's pending expenses due within seven
// days.
func (s *Store) UpcomingBills() []Transaction {
	return UpcomingBills(s.data, s.today())
}

// BudgetLine is the month-to-date consumption of one budgeted category.
type BudgetLine struct {
	Category Category
	Limit    Money
	Spent    Money
	Ratio    float64 // Spent / Limit, 0 when no limit
}

// BudgetProgress reports, for every expense category with a budget
// limit, how much of the limit the month's transactions consumed.
// Pending expenses count: a committed bill eats budget before it is
// paid.
func BudgetProgress(data AppData, month date.Date) []BudgetLine {
	window := date.MonthOf(month)
	var lines []BudgetLine
	for _, cat := range data.Categories {
		if cat.Type != Expense || cat.BudgetLimit.IsZero() {
			continue
		}
		var spent Money
		for _, t := range data.Transactions {
			if t.CategoryID == cat.ID && t.Type == Expense && window.Contains(t.Date) {
				spent = spent.Add(t.Amount)
			}
		}
		line := BudgetLine{Category: cat, Limit: cat.BudgetLimit, Spent: spent}
		if !cat.BudgetLimit.IsZero() {
			line.Ratio = spent.Float64() / cat.BudgetLimit.Float64()
		}
		lines = append(lines, line)
	}
	return lines
}

// InvoiceTotal sums the completed and pending purchases billed to one
// credit card statement month ("YYYY-MM") and returns them with the
// total.
func InvoiceTotal(data AppData, cardID, monthKey string) ([]Transaction, Money) {
	var purchases []Transaction
	var total Money
	for _, t := range data.Transactions {
		if t.CreditCardID != cardID || t.InvoiceMonth != monthKey {
			continue
		}
		purchases = append(purchases, t)
		total = total.Add(t.Amount)
	}
	return purchases, total
}
