// Package csvimp parses delimited bank exports into transaction
// candidates.
//
// Brazilian bank CSVs come with varying separators, header names in
// Portuguese or English, thousands dots and decimal commas, and
// DD/MM/YYYY dates. Column detection is driven by a declarative alias
// table resolved once per file, never per row.
package csvimp

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/grana-fin/grana"
	"github.com/grana-fin/grana/date"
)

// DefaultSeparator is the separator assumed when the caller does not
// set one; Brazilian exports default to semicolons.
const DefaultSeparator = ';'

// field is one logical column of a statement.
type field int

const (
	fieldDate field = iota
	fieldDescription
	fieldAmount
	fieldType
)

// headerAliases lists the accepted header spellings per logical field.
// Matching is done on normalized text, so accents in headers are
// irrelevant.
var headerAliases = map[field][]string{
	fieldDate:        {"data", "date"},
	fieldDescription: {"descricao", "historico", "description"},
	fieldAmount:      {"valor", "amount"},
	fieldType:        {"tipo", "type"},
}

// incomeWords are the type-column markers of an incoming amount; any
// other value (or no type column at all) reads as an expense.
var incomeWords = []string{"receita", "credito", "income"}

// Parse reads a delimited statement into candidates. The first row must
// be a header; files without at least one data row yield an empty
// result. Rows whose amount is missing, zero or unparseable are
// skipped. The error is only for unreadable input, not for skippable
// rows.
func Parse(r io.Reader, separator rune) ([]grana.Candidate, error) {
	if separator == 0 {
		separator = DefaultSeparator
	}
	cr := csv.NewReader(r)
	cr.Comma = separator
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read CSV: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	columns := resolveColumns(rows[0])

	var out []grana.Candidate
	for _, row := range rows[1:] {
		c, ok := parseRow(row, columns)
		if !ok {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// resolveColumns maps each logical field to its column index, -1 when
// absent.
func resolveColumns(header []string) map[field]int {
	columns := map[field]int{
		fieldDate:        -1,
		fieldDescription: -1,
		fieldAmount:      -1,
		fieldType:        -1,
	}
	for i, cell := range header {
		name := grana.Normalize(cell)
		for f, aliases := range headerAliases {
			if columns[f] != -1 {
				continue
			}
			for _, alias := range aliases {
				if name == alias {
					columns[f] = i
				}
			}
		}
	}
	return columns
}

func parseRow(row []string, columns map[field]int) (grana.Candidate, bool) {
	cell := func(f field) string {
		i := columns[f]
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	amount, err := parseAmount(cell(fieldAmount))
	if err != nil || amount.IsZero() {
		return grana.Candidate{}, false
	}

	day := date.Today()
	if raw := cell(fieldDate); raw != "" {
		if parsed, err := parseDay(raw); err == nil {
			day = parsed
		}
	}

	desc := cell(fieldDescription)
	if desc == "" {
		desc = "CSV"
	}

	typ := grana.Expense
	typeCell := grana.Normalize(cell(fieldType))
	for _, w := range incomeWords {
		if strings.Contains(typeCell, w) {
			typ = grana.Income
		}
	}

	return grana.Candidate{
		Description: desc,
		Amount:      amount,
		Type:        typ,
		Date:        day,
	}, true
}

// parseAmount reads a Brazilian formatted number ("1.234,56") or a
// plain decimal, returning the absolute value.
func parseAmount(s string) (grana.Money, error) {
	if s == "" {
		return grana.Money{}, fmt.Errorf("empty amount")
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	s = strings.TrimPrefix(s, "R$")
	m, err := grana.ParseMoney(strings.TrimSpace(s))
	if err != nil {
		return grana.Money{}, err
	}
	return m.Abs(), nil
}

// parseDay reads DD/MM/YYYY or ISO dates.
func parseDay(s string) (date.Date, error) {
	if strings.Contains(s, "/") {
		parts := strings.Split(s, "/")
		if len(parts) == 3 {
			return date.Parse(fmt.Sprintf("%s-%s-%s", parts[2], parts[1], parts[0]))
		}
	}
	return date.Parse(s)
}
