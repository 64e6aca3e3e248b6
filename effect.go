package grana

// ApplyEffect returns a new account slice with the monetary effect of
// one transaction applied (or reversed). It never mutates its input.
//
// Pending transactions have no effect. Accounts the transaction does not
// reference are returned unchanged, and an account id that resolves to
// nothing is silently a no-op: the effect loop only matches by id.
func ApplyEffect(accounts []Account, t Transaction, reverse bool) []Account {
	next := make([]Account, len(accounts))
	copy(next, accounts)

	if t.Status != Completed {
		return next
	}

	for i, acc := range next {
		var change Money
		switch t.Type {
		case Transfer:
			if acc.ID == t.AccountID {
				change = t.Amount.Neg()
			}
			if acc.ID == t.ToAccountID {
				change = t.Amount
			}
		case Income:
			if acc.ID == t.AccountID {
				change = t.Amount
			}
		case Expense:
			if acc.ID == t.AccountID {
				change = t.Amount.Neg()
			}
		}
		if change.IsZero() {
			continue
		}
		if reverse {
			change = change.Neg()
		}
		next[i].Balance = acc.Balance.Add(change)
	}
	return next
}

// applyAll folds ApplyEffect forward over a batch of transactions.
func applyAll(accounts []Account, ts []Transaction) []Account {
	for _, t := range ts {
		accounts = ApplyEffect(accounts, t, false)
	}
	return accounts
}
