package grana

import (
	"testing"

	"github.com/grana-fin/grana/date"
)

func tx(account, desc string, amount float64, typ TransactionType, day string) Transaction {
	return Transaction{
		AccountID:   account,
		Description: desc,
		Amount:      M(amount),
		Type:        typ,
		Status:      Completed,
		Date:        date.MustParse(day),
	}
}

func TestDedupe(t *testing.T) {
	existing := []Transaction{
		tx("a1", "Aluguel", 1500, Expense, "2024-02-01"),
		tx("a1", "Salário", 5000, Income, "2024-02-05"),
	}

	testCases := []struct {
		name       string
		candidates []Transaction
		wantDescs  []string
	}{
		{
			name: "All fresh",
			candidates: []Transaction{
				tx("a1", "Padaria", 12.5, Expense, "2024-02-10"),
				tx("a1", "Farmácia", 30, Expense, "2024-02-11"),
			},
			wantDescs: []string{"Padaria", "Farmácia"},
		},
		{
			name: "Known transaction dropped",
			candidates: []Transaction{
				tx("a1", "Aluguel", 1500, Expense, "2024-02-01"),
				tx("a1", "Padaria", 12.5, Expense, "2024-02-10"),
			},
			wantDescs: []string{"Padaria"},
		},
		{
			name: "Normalization matches accents",
			candidates: []Transaction{
				tx("a1", "  salario ", 5000, Income, "2024-02-05"),
			},
			wantDescs: nil,
		},
		{
			name: "Duplicate inside the batch dropped once",
			candidates: []Transaction{
				tx("a1", "Padaria", 12.5, Expense, "2024-02-10"),
				tx("a1", "Padaria", 12.5, Expense, "2024-02-10"),
			},
			wantDescs: []string{"Padaria"},
		},
		{
			name: "Same row on another account is fresh",
			candidates: []Transaction{
				tx("a2", "Aluguel", 1500, Expense, "2024-02-01"),
			},
			wantDescs: []string{"Aluguel"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Dedupe(tc.candidates, existing)
			if len(got) != len(tc.wantDescs) {
				t.Fatalf("Dedupe() kept %d candidates, want %d", len(got), len(tc.wantDescs))
			}
			for i, want := range tc.wantDescs {
				if got[i].Description != want {
					t.Errorf("Dedupe()[%d].Description = %q, want %q", i, got[i].Description, want)
				}
			}
		})
	}
}

// Importing the same batch twice must be a no-op the second time.
func TestDedupeIdempotent(t *testing.T) {
	batch := []Transaction{
		tx("a1", "Padaria", 12.5, Expense, "2024-02-10"),
		tx("a1", "Mercado", 200, Expense, "2024-02-11"),
	}

	first := Dedupe(batch, nil)
	if len(first) != 2 {
		t.Fatalf("first import kept %d, want 2", len(first))
	}
	second := Dedupe(batch, first)
	if len(second) != 0 {
		t.Errorf("second import kept %d, want 0", len(second))
	}
}
