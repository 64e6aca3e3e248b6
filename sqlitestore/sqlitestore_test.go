package sqlitestore

import (
	"path/filepath"
	"testing"

	"github.com/grana-fin/grana"
	"github.com/grana-fin/grana/date"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "grana.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadEmpty(t *testing.T) {
	s := openTest(t)
	_, ok, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if ok {
		t.Errorf("Load() on a fresh database = ok, want ok=false")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTest(t)

	data := grana.DefaultData()
	data.Transactions = []grana.Transaction{
		{ID: "t1", Description: "Salário", Amount: grana.M(5000),
			Type: grana.Income, Status: grana.Completed,
			Date: date.MustParse("2024-03-05"), AccountID: "a1"},
		{ID: "t2", Description: "Mercado", Amount: grana.M(350.75),
			Type: grana.Expense, Status: grana.Pending,
			Date: date.MustParse("2024-03-10"), AccountID: "a1", CategoryID: "c1"},
	}

	if err := s.Save(data); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, ok, err := s.Load()
	if err != nil || !ok {
		t.Fatalf("Load() = ok %v, err %v", ok, err)
	}
	if len(got.Transactions) != 2 {
		t.Fatalf("loaded %d transactions, want 2", len(got.Transactions))
	}
	// Ledger order survives.
	if got.Transactions[0].ID != "t1" || got.Transactions[1].ID != "t2" {
		t.Errorf("order = %s, %s, want t1, t2", got.Transactions[0].ID, got.Transactions[1].ID)
	}
	tr := got.Transactions[1]
	if tr.Description != "Mercado" || !tr.Amount.Equal(grana.M(350.75)) ||
		tr.Status != grana.Pending || tr.CategoryID != "c1" {
		t.Errorf("round tripped transaction = %+v", tr)
	}
	if len(got.Categories) != len(data.Categories) || len(got.Accounts) != len(data.Accounts) {
		t.Errorf("entities lost: %d categories, %d accounts", len(got.Categories), len(got.Accounts))
	}
}

func TestSaveReplacesDocument(t *testing.T) {
	s := openTest(t)

	first := grana.AppData{Transactions: []grana.Transaction{
		{ID: "t1", Description: "x", Amount: grana.M(1), Type: grana.Expense,
			Status: grana.Completed, Date: date.MustParse("2024-01-01"), AccountID: "a1"},
	}}
	if err := s.Save(first); err != nil {
		t.Fatalf("first Save() error = %v", err)
	}

	second := grana.AppData{Transactions: []grana.Transaction{
		{ID: "t2", Description: "y", Amount: grana.M(2), Type: grana.Expense,
			Status: grana.Completed, Date: date.MustParse("2024-01-02"), AccountID: "a1"},
	}}
	if err := s.Save(second); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	got, _, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got.Transactions) != 1 || got.Transactions[0].ID != "t2" {
		t.Errorf("document = %+v, want only t2", got.Transactions)
	}
}
