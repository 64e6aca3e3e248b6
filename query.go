package grana

import (
	"sort"
	"strings"

	"github.com/grana-fin/grana/date"
)

// Filter is the set of structured predicates of a ledger view. Zero
// fields do not filter. All set fields must hold (AND).
type Filter struct {
	Range     date.Range        // explicit date range; overrides the month window
	AccountID string            // matches source or destination
	Status    TransactionStatus // "" means any
	Type      TransactionType   // "" means any
}

// ViewState describes one rendering of the ledger: a free text search,
// structured filters, and the month the cursor points at.
//
// A non-empty search matches the whole history. Otherwise, unless the
// filter carries an explicit date range, the view is restricted to the
// cursor's calendar month.
type ViewState struct {
	Search string
	Filter Filter
	Month  date.Date
}

// Query returns the visible transaction subset of a view, sorted by
// date descending; same-day records put income first, then transfers,
// then expenses, and otherwise keep insertion order.
func Query(data AppData, view ViewState) []Transaction {
	var result []Transaction

	if q := Normalize(view.Search); q != "" {
		for _, t := range data.Transactions {
			if strings.Contains(searchBlob(data, t), q) {
				result = append(result, t)
			}
		}
	} else {
		window := view.Filter.Range
		if window.IsZero() {
			window = date.MonthOf(view.Month)
		}
		for _, t := range data.Transactions {
			if window.Contains(t.Date) {
				result = append(result, t)
			}
		}
	}

	result = applyFilter(result, view.Filter)

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.Date != b.Date {
			return b.Date.Before(a.Date)
		}
		return typeRank(a.Type) < typeRank(b.Type)
	})
	return result
}

// typeRank keys the same-date ordering: income above transfers above
// expenses.
func typeRank(t TransactionType) int {
	switch t {
	case Income:
		return 0
	case Transfer:
		return 1
	default:
		return 2
	}
}

func applyFilter(ts []Transaction, f Filter) []Transaction {
	out := ts[:0]
	for _, t := range ts {
		if !f.Range.IsZero() && !f.Range.Contains(t.Date) {
			continue
		}
		if f.AccountID != "" && !t.Touches(f.AccountID) {
			continue
		}
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		if f.Type != "" && t.Type != f.Type {
			continue
		}
		out = append(out, t)
	}
	return out
}

// searchBlob builds the normalized haystack a transaction is searched
// in: description, amount, category and subcategory names, tags, and
// the date as users type it (DD/MM/YYYY).
func searchBlob(data AppData, t Transaction) string {
	parts := []string{
		t.Description,
		t.Amount.String(),
	}
	if cat := data.Category(t.CategoryID); cat != nil {
		parts = append(parts, cat.Name)
	}
	if t.SubCategory != "" {
		parts = append(parts, t.SubCategory)
	}
	parts = append(parts, t.Tags...)
	parts = append(parts, t.Date.Format("02/01/2006"))
	return Normalize(strings.Join(parts, " "))
}

// Query runs a view against the store's current aggregate, defaulting
// the month window to the store's cursor.
func (s *Store) Query(view ViewState) []Transaction {
	if view.Month.IsZero() {
		view.Month = s.cursor
	}
	return Query(s.data, view)
}
