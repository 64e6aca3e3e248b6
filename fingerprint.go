package grana

import (
	"strings"
	"unicode"

	"github.com/grana-fin/grana/date"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fingerprint identifies a transaction for import deduplication. It is a
// comparable struct rather than a joined string, so separator characters
// inside a description can never collide two distinct records.
//
// The match is heuristic: two genuinely distinct transactions with the
// same account, date, amount and description are indistinguishable, and
// the second one is dropped on import. That false positive rate is
// accepted.
type Fingerprint struct {
	AccountID   string
	Date        date.Date
	Type        TransactionType
	Cents       int64
	Description string
}

// FingerprintOf computes the dedup key of a transaction.
func FingerprintOf(t Transaction) Fingerprint {
	cents := t.Amount.Cents()
	if cents < 0 {
		cents = -cents
	}
	return Fingerprint{
		AccountID:   t.AccountID,
		Date:        t.Date,
		Type:        t.Type,
		Cents:       cents,
		Description: Normalize(t.Description),
	}
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lower-cases, strips diacritics and trims whitespace. It is
// the shared normalization of the import fingerprint and the free-text
// search, so "Crédito" and "credito" compare equal.
func Normalize(s string) string {
	stripped, _, err := transform.String(stripMarks, s)
	if err != nil {
		stripped = s
	}
	return strings.TrimSpace(strings.ToLower(stripped))
}
