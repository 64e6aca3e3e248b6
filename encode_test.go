package grana

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportImportRoundTrip(t *testing.T) {
	data := DefaultData()
	data.Transactions = []Transaction{
		withCategory(tx("a1", "Mercado São José", 123.45, Expense, "2024-03-10"), "c1"),
	}

	var buf bytes.Buffer
	if err := ExportDocument(&buf, data); err != nil {
		t.Fatalf("ExportDocument() error = %v", err)
	}

	got, err := ImportDocument(&buf, AppData{})
	if err != nil {
		t.Fatalf("ImportDocument() error = %v", err)
	}
	if len(got.Transactions) != 1 {
		t.Fatalf("round trip kept %d transactions, want 1", len(got.Transactions))
	}
	tr := got.Transactions[0]
	if tr.Description != "Mercado São José" || !tr.Amount.Equal(M(123.45)) || tr.Type != Expense {
		t.Errorf("round tripped transaction = %+v", tr)
	}
	if len(got.Categories) != len(data.Categories) || len(got.Accounts) != len(data.Accounts) {
		t.Errorf("round trip lost entities: %d categories, %d accounts",
			len(got.Categories), len(got.Accounts))
	}
}

func TestExportWireFormat(t *testing.T) {
	data := AppData{Transactions: []Transaction{
		withCategory(tx("a1", "Mercado", 99.9, Expense, "2024-03-10"), "c1"),
	}}

	var buf bytes.Buffer
	if err := ExportDocument(&buf, data); err != nil {
		t.Fatalf("ExportDocument() error = %v", err)
	}
	doc := buf.String()

	// The document format is shared with other readers: field names are
	// camelCase, enums are uppercase, amounts are bare numbers.
	for _, want := range []string{
		`"accountId": "a1"`,
		`"categoryId": "c1"`,
		`"type": "EXPENSE"`,
		`"status": "COMPLETED"`,
		`"amount": 99.9`,
		`"date": "2024-03-10"`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %s:\n%s", want, doc)
		}
	}
}

func TestImportDocumentRejectsMalformed(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{"Not JSON", "garbage"},
		{"No transactions array", `{"categories":[]}`},
		{"Wrong shape", `{"transactions": "nope"}`},
	}

	current := DefaultData()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ImportDocument(strings.NewReader(tc.doc), current)
			if err == nil {
				t.Errorf("ImportDocument(%q) accepted a malformed document", tc.doc)
			}
		})
	}
}

func TestImportDocumentFillsMissingArrays(t *testing.T) {
	current := DefaultData()
	got, err := ImportDocument(strings.NewReader(`{"transactions":[]}`), current)
	if err != nil {
		t.Fatalf("ImportDocument() error = %v", err)
	}
	if len(got.Transactions) != 0 {
		t.Errorf("transactions = %d, want 0 from the document", len(got.Transactions))
	}
	if len(got.Categories) != len(current.Categories) || len(got.Accounts) != len(current.Accounts) {
		t.Errorf("missing arrays not filled from current: %d categories, %d accounts",
			len(got.Categories), len(got.Accounts))
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	fs := NewFileStore(path)

	if _, ok, err := fs.Load(); err != nil || ok {
		t.Fatalf("Load() on missing file = ok %v, err %v, want ok=false, nil", ok, err)
	}

	data := DefaultData()
	data.Transactions = []Transaction{tx("a1", "Padaria", 12.5, Expense, "2024-03-10")}
	if err := fs.Save(data); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, ok, err := fs.Load()
	if err != nil || !ok {
		t.Fatalf("Load() = ok %v, err %v", ok, err)
	}
	if len(got.Transactions) != 1 || got.Transactions[0].Description != "Padaria" {
		t.Errorf("loaded document = %+v", got.Transactions)
	}
	if !got.Transactions[0].Amount.Equal(M(12.5)) {
		t.Errorf("loaded amount = %s, want 12.5", got.Transactions[0].Amount)
	}
}
