package grana

import (
	"testing"

	"github.com/grana-fin/grana/date"
)

func queryData() AppData {
	return AppData{
		Transactions: []Transaction{
			tx("a1", "Aluguel", 1500, Expense, "2024-03-05"),
			tx("a1", "Salário", 5000, Income, "2024-03-05"),
			tx("a2", "Mercado São José", 200, Expense, "2024-03-10"),
			tx("a1", "Farmácia", 50, Expense, "2024-02-20"),
			tx("a1", "Freela", 800, Income, "2024-04-02"),
			{Description: "Reserva", Amount: M(300), Type: Transfer, Status: Completed,
				AccountID: "a1", ToAccountID: "a2", Date: date.MustParse("2024-03-05")},
		},
		Categories: []Category{
			{ID: "c1", Name: "Alimentação", Type: Expense},
		},
	}
}

func descs(ts []Transaction) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Description
	}
	return out
}

func TestQuery(t *testing.T) {
	data := queryData()
	march := date.MustParse("2024-03-15")

	testCases := []struct {
		name string
		view ViewState
		want []string
	}{
		{
			name: "Month window, date desc, income before transfer before expense",
			view: ViewState{Month: march},
			want: []string{"Mercado São José", "Salário", "Reserva", "Aluguel"},
		},
		{
			name: "Search matches whole history ignoring the month",
			view: ViewState{Search: "farmacia", Month: march},
			want: []string{"Farmácia"},
		},
		{
			name: "Search is diacritic insensitive",
			view: ViewState{Search: "SÃO jose", Month: march},
			want: []string{"Mercado São José"},
		},
		{
			name: "Explicit range overrides the month window",
			view: ViewState{Month: march, Filter: Filter{
				Range: date.NewRange(date.MustParse("2024-02-01"), date.MustParse("2024-04-30")),
			}},
			want: []string{"Freela", "Mercado São José", "Salário", "Reserva", "Aluguel", "Farmácia"},
		},
		{
			name: "Type filter",
			view: ViewState{Month: march, Filter: Filter{Type: Income}},
			want: []string{"Salário"},
		},
		{
			name: "Account filter matches source or destination",
			view: ViewState{Month: march, Filter: Filter{AccountID: "a2"}},
			want: []string{"Mercado São José", "Reserva"},
		},
		{
			name: "Filters combine with search",
			view: ViewState{Search: "a", Filter: Filter{Type: Expense}, Month: march},
			want: []string{"Mercado São José", "Aluguel", "Farmácia"},
		},
		{
			name: "Empty month",
			view: ViewState{Month: date.MustParse("2024-07-01")},
			want: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := descs(Query(data, tc.view))
			if len(got) != len(tc.want) {
				t.Fatalf("Query() = %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("Query()[%d] = %q, want %q (full: %v)", i, got[i], tc.want[i], got)
				}
			}
		})
	}
}

func TestQuerySearchesCategoryAndDate(t *testing.T) {
	data := queryData()
	data.Transactions[2].CategoryID = "c1"

	got := Query(data, ViewState{Search: "alimentação"})
	if len(got) != 1 || got[0].Description != "Mercado São José" {
		t.Errorf("search by category name = %v", descs(got))
	}

	got = Query(data, ViewState{Search: "10/03/2024"})
	if len(got) != 1 || got[0].Description != "Mercado São José" {
		t.Errorf("search by date = %v", descs(got))
	}
}

func TestStoreQueryDefaultsToCursor(t *testing.T) {
	s := NewStore(queryData(), WithClock(fixedClock("2024-03-15")))

	got := s.Query(ViewState{})
	if len(got) != 4 {
		t.Fatalf("Query at cursor = %v, want the 4 March records", descs(got))
	}

	s.ChangeMonth(-1)
	got = s.Query(ViewState{})
	if len(got) != 1 || got[0].Description != "Farmácia" {
		t.Errorf("Query after ChangeMonth(-1) = %v, want only Farmácia", descs(got))
	}
}
