package grana

import (
	"encoding/json"
	"fmt"
	"io"
)

// this file implements the export/import document format: the whole
// AppData aggregate as a single human readable JSON object. It is the
// backup format, and it round-trips.

// ExportDocument writes the aggregate as indented JSON.
func ExportDocument(w io.Writer, data AppData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ImportDocument decodes a backup document. Validation is minimal on
// purpose: the document must be JSON and must carry a transactions
// array. Missing top-level arrays are filled from current, so restoring
// an older backup does not wipe entity kinds it predates. A malformed
// document leaves current untouched and returns an error.
func ImportDocument(r io.Reader, current AppData) (AppData, error) {
	var probe struct {
		Transactions *[]Transaction     `json:"transactions"`
		Categories   *[]Category        `json:"categories"`
		Accounts     *[]Account         `json:"accounts"`
		Goals        *[]Goal            `json:"goals"`
		Investments  *[]InvestmentAsset `json:"investments"`
	}
	if err := json.NewDecoder(r).Decode(&probe); err != nil {
		return AppData{}, fmt.Errorf("could not decode backup document: %w", err)
	}
	if probe.Transactions == nil {
		return AppData{}, fmt.Errorf("backup document has no transactions array")
	}

	next := AppData{
		Transactions: *probe.Transactions,
		Categories:   current.Categories,
		Accounts:     current.Accounts,
		Goals:        current.Goals,
		Investments:  current.Investments,
	}
	if probe.Categories != nil {
		next.Categories = *probe.Categories
	}
	if probe.Accounts != nil {
		next.Accounts = *probe.Accounts
	}
	if probe.Goals != nil {
		next.Goals = *probe.Goals
	}
	if probe.Investments != nil {
		next.Investments = *probe.Investments
	}
	return next, nil
}
