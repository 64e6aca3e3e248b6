// Package sqlitestore persists the grana document in a local SQLite
// database.
//
// The store keeps document semantics: Save replaces every row inside
// one SQL transaction, Load reads everything back. Each entity is one
// row holding its JSON body, with an explicit position column so the
// ledger ordering survives the round trip.
package sqlitestore

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/grana-fin/grana"
)

const schema = `
CREATE TABLE IF NOT EXISTS transactions (
	id TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	body TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS categories (
	id TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	body TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS accounts (
	id TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	body TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS goals (
	id TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	body TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS investments (
	id TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	body TEXT NOT NULL
);
`

// Store is a grana.Persister backed by SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (and if needed creates) the database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("could not open sqlite database %q: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// Load reads the whole document. ok is false when the database holds no
// entities at all (a fresh file).
func (s *Store) Load() (grana.AppData, bool, error) {
	var data grana.AppData
	loaded := 0

	if n, err := loadTable(s.db, "transactions", &data.Transactions); err != nil {
		return grana.AppData{}, false, err
	} else {
		loaded += n
	}
	if n, err := loadTable(s.db, "categories", &data.Categories); err != nil {
		return grana.AppData{}, false, err
	} else {
		loaded += n
	}
	if n, err := loadTable(s.db, "accounts", &data.Accounts); err != nil {
		return grana.AppData{}, false, err
	} else {
		loaded += n
	}
	if n, err := loadTable(s.db, "goals", &data.Goals); err != nil {
		return grana.AppData{}, false, err
	} else {
		loaded += n
	}
	if n, err := loadTable(s.db, "investments", &data.Investments); err != nil {
		return grana.AppData{}, false, err
	} else {
		loaded += n
	}

	return data, loaded > 0, nil
}

// Save replaces the persisted document in a single SQL transaction.
func (s *Store) Save(data grana.AppData) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := saveTable(tx, "transactions", ids(data.Transactions, func(t grana.Transaction) string { return t.ID }), anys(data.Transactions)); err != nil {
		return err
	}
	if err := saveTable(tx, "categories", ids(data.Categories, func(c grana.Category) string { return c.ID }), anys(data.Categories)); err != nil {
		return err
	}
	if err := saveTable(tx, "accounts", ids(data.Accounts, func(a grana.Account) string { return a.ID }), anys(data.Accounts)); err != nil {
		return err
	}
	if err := saveTable(tx, "goals", ids(data.Goals, func(g grana.Goal) string { return g.ID }), anys(data.Goals)); err != nil {
		return err
	}
	if err := saveTable(tx, "investments", ids(data.Investments, func(i grana.InvestmentAsset) string { return i.ID }), anys(data.Investments)); err != nil {
		return err
	}

	return tx.Commit()
}

// loadTable reads every row of a table, in insertion order, decoding
// the JSON body column into out (a pointer to a slice).
func loadTable[T any](db *sql.DB, table string, out *[]T) (int, error) {
	rows, err := db.Query(fmt.Sprintf("SELECT body FROM %s ORDER BY position", table))
	if err != nil {
		return 0, fmt.Errorf("could not read %s: %w", table, err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return 0, err
		}
		var entity T
		if err := json.Unmarshal([]byte(body), &entity); err != nil {
			return 0, fmt.Errorf("corrupt row in %s: %w", table, err)
		}
		*out = append(*out, entity)
		count++
	}
	return count, rows.Err()
}

// saveTable wipes a table and writes the entities back in order.
func saveTable(tx *sql.Tx, table string, ids []string, entities []any) error {
	if _, err := tx.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
		return err
	}
	stmt, err := tx.Prepare(fmt.Sprintf("INSERT INTO %s (id, position, body) VALUES (?, ?, ?)", table))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, e := range entities {
		body, err := json.Marshal(e)
		if err != nil {
			return err
		}
		if _, err := stmt.Exec(ids[i], i, string(body)); err != nil {
			return fmt.Errorf("could not write %s: %w", table, err)
		}
	}
	return nil
}

func ids[T any](entities []T, id func(T) string) []string {
	out := make([]string, len(entities))
	for i, e := range entities {
		out[i] = id(e)
	}
	return out
}

func anys[T any](entities []T) []any {
	out := make([]any, len(entities))
	for i, e := range entities {
		out[i] = e
	}
	return out
}

var _ grana.Persister = (*Store)(nil)
