// Package grana implements a personal finance ledger: accounts,
// categorized transactions, budgets, goals and investment projections,
// kept in a single local document and mutated through a small set of
// store operations.
//
// The heart of the package is the transaction ledger engine. A user
// intent (one amount, one schedule mode) is expanded into one or more
// concrete transactions (installment or recurring series), each
// transaction's monetary effect is folded into the account balances,
// and credit card purchases are classified into billing invoice months.
// Imports from bank statements are deduplicated by fingerprint before
// they reach the ledger.
//
// The Store is the sole writer of the aggregate. It never mutates state
// in place: every operation builds the next AppData value and replaces
// the previous one, then notifies an injected persistence provider.
// There is exactly one mutator (the local UI or CLI), so no locking is
// involved.
package grana
