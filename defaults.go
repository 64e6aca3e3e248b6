package grana

import "github.com/grana-fin/grana/date"

// Default seeding for a fresh ledger. Ids are stable short strings, not
// uuids, so a re-seeded ledger stays mergeable with an exported backup.

// DefaultCategories returns the starter category set.
func DefaultCategories() []Category {
	return []Category{
		{ID: "c1", Name: "Alimentação", Type: Expense, Color: "#ef4444", Icon: "Utensils", Subcategories: []string{"Mercado", "Restaurante", "Ifood"}},
		{ID: "c2", Name: "Transporte", Type: Expense, Color: "#f97316", Icon: "Car", Subcategories: []string{"Combustível", "Uber/Taxi", "Manutenção", "Ônibus"}},
		{ID: "c3", Name: "Moradia", Type: Expense, Color: "#eab308", Icon: "Home", Subcategories: []string{"Aluguel", "Condomínio", "Luz", "Água", "Internet"}},
		{ID: "c4", Name: "Lazer", Type: Expense, Color: "#8b5cf6", Icon: "Film", Subcategories: []string{"Cinema", "Viagem", "Assinaturas"}},
		{ID: "c5", Name: "Saúde", Type: Expense, Color: "#ec4899", Icon: "Heart", Subcategories: []string{"Farmácia", "Médico", "Plano de Saúde"}},
		{ID: "c6", Name: "Salário", Type: Income, Color: "#10b981", Icon: "Briefcase", Subcategories: []string{"Salário Mensal", "13º Salário", "Férias"}},
		{ID: "c7", Name: "Investimentos", Type: Income, Color: "#06b6d4", Icon: "TrendingUp", Subcategories: []string{"Dividendos", "Rendimento Poupança"}},
	}
}

// DefaultAccounts returns the starter accounts, all at zero balance.
func DefaultAccounts() []Account {
	return []Account{
		{ID: "a1", Name: "Carteira (Dinheiro)", Kind: Wallet},
		{ID: "a2", Name: "Conta Corrente", Kind: Checking},
		{ID: "a3", Name: "Poupança / Reserva", Kind: Savings},
	}
}

// DefaultGoals returns the starter goal.
func DefaultGoals() []Goal {
	return []Goal{
		{ID: "g1", Name: "Reserva de Emergência", TargetAmount: M(10000), Deadline: date.MustParse("2025-12-31"), Color: "#10b981", Icon: "Shield"},
	}
}

// DefaultData returns the aggregate a fresh ledger starts from.
func DefaultData() AppData {
	return AppData{
		Transactions: []Transaction{},
		Categories:   DefaultCategories(),
		Accounts:     DefaultAccounts(),
		Goals:        DefaultGoals(),
		Investments:  []InvestmentAsset{},
	}
}
