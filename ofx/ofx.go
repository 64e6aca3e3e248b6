// Package ofx parses OFX bank statements into transaction candidates.
//
// OFX as emitted by banks is SGML-ish and rarely well formed XML, so the
// parser scans <STMTTRN> blocks with regular expressions instead of an
// XML decoder, reading only the three fields the ledger needs: posted
// date, amount and memo.
package ofx

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/grana-fin/grana"
	"github.com/grana-fin/grana/date"
)

var (
	stmtRe   = regexp.MustCompile(`(?s)<STMTTRN>(.*?)</STMTTRN>`)
	dateRe   = regexp.MustCompile(`<DTPOSTED>([^<\r\n]*)`)
	amountRe = regexp.MustCompile(`<TRNAMT>([^<\r\n]*)`)
	memoRe   = regexp.MustCompile(`<MEMO>([^<\r\n]*)`)
)

// Parse extracts the transaction candidates of an OFX document. Blocks
// without an amount or a posted date are skipped. The amount sign picks
// the type: negative is an expense, the candidate carries the absolute
// value.
func Parse(r io.Reader) ([]grana.Candidate, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read OFX document: %w", err)
	}

	var out []grana.Candidate
	for _, m := range stmtRe.FindAllStringSubmatch(string(raw), -1) {
		block := m[1]

		amountMatch := amountRe.FindStringSubmatch(block)
		dateMatch := dateRe.FindStringSubmatch(block)
		if amountMatch == nil || dateMatch == nil {
			continue
		}

		amount, err := grana.ParseMoney(strings.TrimSpace(amountMatch[1]))
		if err != nil {
			continue
		}

		day, err := parsePosted(strings.TrimSpace(dateMatch[1]))
		if err != nil {
			continue
		}

		typ := grana.Income
		if amount.IsNegative() {
			typ = grana.Expense
		}

		desc := "OFX"
		if memoMatch := memoRe.FindStringSubmatch(block); memoMatch != nil {
			if memo := strings.TrimSpace(memoMatch[1]); memo != "" {
				desc = memo
			}
		}

		out = append(out, grana.Candidate{
			Description: desc,
			Amount:      amount.Abs(),
			Type:        typ,
			Date:        day,
		})
	}
	return out, nil
}

// parsePosted reads a DTPOSTED value, which is YYYYMMDD optionally
// followed by a time and timezone suffix. Only the day matters.
func parsePosted(s string) (date.Date, error) {
	if len(s) < 8 {
		return date.Date{}, fmt.Errorf("posted date %q too short", s)
	}
	return date.Parse(fmt.Sprintf("%s-%s-%s", s[0:4], s[4:6], s[6:8]))
}
