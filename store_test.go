package grana

import (
	"testing"

	"github.com/grana-fin/grana/date"
)

// memStore records every saved document, for asserting persistence
// notifications.
type memStore struct {
	saves []AppData
}

func (m *memStore) Load() (AppData, bool, error) { return AppData{}, false, nil }
func (m *memStore) Save(d AppData) error         { m.saves = append(m.saves, d); return nil }

func fixedClock(day string) func() date.Date {
	return func() date.Date { return date.MustParse(day) }
}

func testStore(t *testing.T) *Store {
	t.Helper()
	data := AppData{
		Accounts: testAccounts(),
		Categories: []Category{
			{ID: "c1", Name: "Alimentação", Type: Expense},
		},
	}
	return NewStore(data, WithClock(fixedClock("2024-03-15")))
}

// balanceInvariant checks that every account balance equals its seed
// plus the effects of the completed transactions in the ledger.
func balanceInvariant(t *testing.T, s *Store, seed []Account) {
	t.Helper()
	data := s.Data()
	want := applyAll(seed, data.Transactions)
	for i, acc := range want {
		got := data.Account(acc.ID)
		if got == nil {
			continue
		}
		if !got.Balance.Equal(acc.Balance) {
			t.Errorf("account %s balance = %s, want %s (sum of effects)", acc.ID, got.Balance, want[i].Balance)
		}
	}
}

func TestStoreAddTransaction(t *testing.T) {
	s := testStore(t)
	seed := testAccounts()

	produced := s.AddTransaction(tx("a1", "Salário", 5000, Income, "2024-03-05"), Single, 0)
	if len(produced) != 1 {
		t.Fatalf("AddTransaction produced %d records, want 1", len(produced))
	}

	data := s.Data()
	if len(data.Transactions) != 1 {
		t.Fatalf("ledger has %d transactions, want 1", len(data.Transactions))
	}
	if got := data.Account("a1").Balance; !got.Equal(M(5100)) {
		t.Errorf("a1 balance = %s, want 5100", got)
	}
	balanceInvariant(t, s, seed)
}

func TestStoreAddInstallmentsOnlyFirstAffectsBalance(t *testing.T) {
	s := testStore(t)
	seed := testAccounts()

	s.AddTransaction(tx("a1", "Notebook", 900, Expense, "2024-03-10"), InstallmentSplit, 3)

	data := s.Data()
	if len(data.Transactions) != 3 {
		t.Fatalf("ledger has %d transactions, want 3", len(data.Transactions))
	}
	// Only the first share is completed: 100 - 300 = -200.
	if got := data.Account("a1").Balance; !got.Equal(M(-200)) {
		t.Errorf("a1 balance = %s, want -200", got)
	}
	balanceInvariant(t, s, seed)
}

func TestStoreEditTransaction(t *testing.T) {
	s := testStore(t)
	seed := testAccounts()
	produced := s.AddTransaction(tx("a1", "Mercado", 100, Expense, "2024-03-10"), Single, 0)

	updated := produced[0]
	updated.Amount = M(250)
	updated.Description = "Mercado do mês"
	s.EditTransaction(produced[0].ID, updated)

	data := s.Data()
	if got := data.Transaction(produced[0].ID); got.Description != "Mercado do mês" || !got.Amount.Equal(M(250)) {
		t.Errorf("edited transaction = %+v", got)
	}
	if got := data.Account("a1").Balance; !got.Equal(M(100 - 250)) {
		t.Errorf("a1 balance = %s, want -150", got)
	}
	balanceInvariant(t, s, seed)
}

func TestStoreEditUnknownIsNoop(t *testing.T) {
	s := testStore(t)
	before := s.Data()
	s.EditTransaction("nope", tx("a1", "x", 1, Expense, "2024-03-10"))
	after := s.Data()
	if len(after.Transactions) != len(before.Transactions) {
		t.Errorf("edit of unknown id changed the ledger")
	}
}

func TestStoreDeleteTransaction(t *testing.T) {
	s := testStore(t)
	seed := testAccounts()
	produced := s.AddTransaction(tx("a1", "Mercado", 100, Expense, "2024-03-10"), Single, 0)

	s.DeleteTransaction(produced[0].ID)

	data := s.Data()
	if len(data.Transactions) != 0 {
		t.Fatalf("ledger has %d transactions, want 0", len(data.Transactions))
	}
	if got := data.Account("a1").Balance; !got.Equal(M(100)) {
		t.Errorf("a1 balance = %s, want back to 100", got)
	}
	balanceInvariant(t, s, seed)
}

func TestStoreToggleStatus(t *testing.T) {
	s := testStore(t)
	seed := testAccounts()
	bill := tx("a1", "Conta de luz", 80, Expense, "2024-03-20")
	bill.Status = Pending
	produced := s.AddTransaction(bill, Single, 0)
	id := produced[0].ID

	if got := s.Data().Account("a1").Balance; !got.Equal(M(100)) {
		t.Fatalf("pending bill moved money: balance %s", got)
	}

	s.ToggleStatus(id) // pay it
	if got := s.Data().Account("a1").Balance; !got.Equal(M(20)) {
		t.Errorf("after paying, a1 balance = %s, want 20", got)
	}
	if got := s.Data().Transaction(id).Status; got != Completed {
		t.Errorf("status = %s, want COMPLETED", got)
	}

	s.ToggleStatus(id) // unpay it
	if got := s.Data().Account("a1").Balance; !got.Equal(M(100)) {
		t.Errorf("after unpaying, a1 balance = %s, want 100", got)
	}
	balanceInvariant(t, s, seed)
}

func TestStoreDeleteAccountCascades(t *testing.T) {
	s := testStore(t)
	s.AddTransaction(tx("a1", "Salário", 5000, Income, "2024-03-05"), Single, 0)
	s.AddTransaction(tx("a2", "Aluguel", 1500, Expense, "2024-03-06"), Single, 0)
	transfer := Transaction{Type: Transfer, Status: Completed, AccountID: "a1",
		ToAccountID: "a2", Amount: M(1000), Date: date.MustParse("2024-03-07")}
	s.AddTransaction(transfer, Single, 0)

	s.DeleteAccount("a1")

	data := s.Data()
	if data.Account("a1") != nil {
		t.Fatalf("a1 still present after delete")
	}
	// Both the income and the transfer touch a1 and must go; only the
	// rent on a2 survives.
	if len(data.Transactions) != 1 || data.Transactions[0].Description != "Aluguel" {
		t.Fatalf("surviving transactions = %+v, want only Aluguel", data.Transactions)
	}
	// a2 loses the transfer credit: 1000 - 1500 = -500.
	if got := data.Account("a2").Balance; !got.Equal(M(-500)) {
		t.Errorf("a2 balance = %s, want -500", got)
	}
}

func TestStoreDeleteCategoryDoesNotCascade(t *testing.T) {
	s := testStore(t)
	bought := tx("a1", "Mercado", 50, Expense, "2024-03-10")
	bought.CategoryID = "c1"
	produced := s.AddTransaction(bought, Single, 0)

	s.DeleteCategory("c1")

	data := s.Data()
	if data.Category("c1") != nil {
		t.Fatalf("category still present after delete")
	}
	got := data.Transaction(produced[0].ID)
	if got == nil || got.CategoryID != "c1" {
		t.Errorf("transaction lost its stored category id: %+v", got)
	}
}

func TestStoreUpdateAccountKeepsBalance(t *testing.T) {
	s := testStore(t)
	s.AddTransaction(tx("a1", "Salário", 500, Income, "2024-03-05"), Single, 0)

	s.UpdateAccount(Account{ID: "a1", Name: "Carteira nova", Kind: Wallet, Balance: M(9999)})

	got := s.Data().Account("a1")
	if got.Name != "Carteira nova" {
		t.Errorf("name = %q, want renamed", got.Name)
	}
	if !got.Balance.Equal(M(600)) {
		t.Errorf("balance = %s, want 600 (update must not touch it)", got.Balance)
	}
}

func TestStoreSetAccountBalance(t *testing.T) {
	s := testStore(t)
	s.SetAccountBalance("a1", M(42))
	if got := s.Data().Account("a1").Balance; !got.Equal(M(42)) {
		t.Errorf("balance = %s, want 42", got)
	}
}

func TestStoreImportCandidates(t *testing.T) {
	s := testStore(t)
	seed := testAccounts()
	candidates := []Candidate{
		{Description: "PIX RECEBIDO", Amount: M(200), Type: Income, Date: date.MustParse("2024-03-01")},
		{Description: "PADARIA", Amount: M(15.5), Type: Expense, Date: date.MustParse("2024-03-02")},
		{Description: "PADARIA", Amount: M(15.5), Type: Expense, Date: date.MustParse("2024-03-02")},
	}

	if got := s.ImportCandidates("a1", candidates); got != 2 {
		t.Fatalf("ImportCandidates = %d, want 2 (batch duplicate dropped)", got)
	}
	if got := s.ImportCandidates("a1", candidates); got != 0 {
		t.Errorf("second ImportCandidates = %d, want 0", got)
	}

	data := s.Data()
	if len(data.Transactions) != 2 {
		t.Fatalf("ledger has %d transactions, want 2", len(data.Transactions))
	}
	for _, tr := range data.Transactions {
		if tr.Status != Completed || tr.AccountID != "a1" {
			t.Errorf("imported transaction = %+v, want completed on a1", tr)
		}
	}
	if got := data.Account("a1").Balance; !got.Equal(M(100 + 200 - 15.5)) {
		t.Errorf("a1 balance = %s, want 284.5", got)
	}
	balanceInvariant(t, s, seed)
}

func TestStoreChangeMonth(t *testing.T) {
	s := testStore(t)
	if got := s.CurrentMonth(); got != date.MustParse("2024-03-15") {
		t.Fatalf("cursor = %s, want today", got)
	}
	s.ChangeMonth(1)
	if got := s.CurrentMonth(); got != date.MustParse("2024-04-15") {
		t.Errorf("cursor = %s, want 2024-04-15", got)
	}
	s.ChangeMonth(-2)
	if got := s.CurrentMonth(); got != date.MustParse("2024-02-15") {
		t.Errorf("cursor = %s, want 2024-02-15", got)
	}
}

func TestStorePersistsEveryTransition(t *testing.T) {
	mem := &memStore{}
	s := NewStore(AppData{Accounts: testAccounts()},
		WithPersister(mem), WithClock(fixedClock("2024-03-15")))

	produced := s.AddTransaction(tx("a1", "x", 10, Expense, "2024-03-10"), Single, 0)
	s.ToggleStatus(produced[0].ID)
	s.DeleteTransaction(produced[0].ID)

	if len(mem.saves) != 3 {
		t.Fatalf("persister saw %d saves, want 3", len(mem.saves))
	}
	if last := mem.saves[2]; len(last.Transactions) != 0 {
		t.Errorf("last saved document has %d transactions, want 0", len(last.Transactions))
	}
}

func TestOpenSeedsDefaults(t *testing.T) {
	s, err := Open(&memStore{})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	data := s.Data()
	if len(data.Categories) == 0 || len(data.Accounts) == 0 {
		t.Errorf("fresh store not seeded: %d categories, %d accounts",
			len(data.Categories), len(data.Accounts))
	}
}
