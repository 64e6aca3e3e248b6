package grana

import (
	"github.com/google/uuid"

	"github.com/grana-fin/grana/date"
)

// Candidate is one row parsed out of an external statement (OFX, CSV).
// The text parsers produce candidates; the ledger core decides what gets
// in. Amount is unsigned, the direction is carried by Type.
type Candidate struct {
	Description string
	Amount      Money
	Type        TransactionType
	Date        date.Date
}

// materialize builds the ledger transaction an accepted candidate
// becomes. Imported rows describe money that already moved, so they
// enter completed.
func (c Candidate) materialize(accountID string) Transaction {
	desc := c.Description
	if desc == "" {
		desc = "Imported"
	}
	d := c.Date
	if d.IsZero() {
		d = date.Today()
	}
	return Transaction{
		ID:          uuid.NewString(),
		Description: desc,
		Amount:      c.Amount,
		Type:        c.Type,
		Status:      Completed,
		Date:        d,
		AccountID:   accountID,
	}
}

// StagedImport is one candidate prepared for review before insertion,
// with its duplicate verdict.
type StagedImport struct {
	Transaction Transaction
	Duplicate   bool
}

// StageImports materializes candidates against an account and flags the
// ones whose fingerprint is already known, either from the ledger or
// from an earlier row of the same batch. Nothing is inserted.
func StageImports(candidates []Candidate, accountID string, existing []Transaction) []StagedImport {
	known := make(map[Fingerprint]struct{}, len(existing))
	for _, t := range existing {
		known[FingerprintOf(t)] = struct{}{}
	}

	out := make([]StagedImport, 0, len(candidates))
	for _, c := range candidates {
		tx := c.materialize(accountID)
		fp := FingerprintOf(tx)
		_, dup := known[fp]
		known[fp] = struct{}{}
		out = append(out, StagedImport{Transaction: tx, Duplicate: dup})
	}
	return out
}
