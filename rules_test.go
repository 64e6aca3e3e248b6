package grana

import "testing"

func TestInferCategory(t *testing.T) {
	categories := []Category{
		{ID: "food", Name: "Alimentação", Type: Expense, Subcategories: []string{"Supermercado", "Restaurante"}},
		{ID: "transport", Name: "Transporte", Type: Expense, Subcategories: []string{"Uber"}},
		{ID: "salary", Name: "Salário", Type: Income},
	}

	testCases := []struct {
		name    string
		desc    string
		typ     TransactionType
		wantID  string
		wantSub string
	}{
		{"Category name in the description", "gasto com alimentação", Expense, "food", ""},
		{"Subcategory name wins and is suggested", "compras no supermercado", Expense, "food", "Supermercado"},
		{"Diacritics do not matter", "SALARIO de março", Income, "salary", ""},
		{"Subcategory match on another category", "corrida de uber", Expense, "transport", "Uber"},
		{"Type mismatch never matches", "alimentação", Income, "", ""},
		{"No overlap", "coisa qualquer", Expense, "", ""},
		{"Transfers never get a category", "alimentação", Transfer, "", ""},
		{"Empty description", "", Expense, "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := InferCategory(tc.desc, categories, tc.typ)
			if got.CategoryID != tc.wantID {
				t.Errorf("InferCategory(%q).CategoryID = %q, want %q", tc.desc, got.CategoryID, tc.wantID)
			}
			if got.SubCategory != tc.wantSub {
				t.Errorf("InferCategory(%q).SubCategory = %q, want %q", tc.desc, got.SubCategory, tc.wantSub)
			}
			if tc.wantID != "" && got.Confidence < minConfidence {
				t.Errorf("InferCategory(%q).Confidence = %v, below threshold", tc.desc, got.Confidence)
			}
		})
	}
}
