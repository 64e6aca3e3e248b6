package grana

import (
	"bytes"
	"io"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/grana-fin/grana/date"
)

// Store owns the AppData aggregate and is its sole writer. Every public
// operation builds the next aggregate value and replaces the previous
// one in a single step, so callers never observe an intermediate state
// (say, between "effect reversed" and "effect re-applied" during an
// edit).
//
// After each successful transition the injected Persister is notified.
// Persistence is fire and forget: a failed save is logged, never
// retried, and does not undo the transition.
//
// Operations on unknown ids are silent no-ops. That is deliberate: a
// missing id means stale UI state, not a programming error worth
// surfacing.
type Store struct {
	data    AppData
	cursor  date.Date
	persist Persister
	log     zerolog.Logger
	today   func() date.Date
}

// Option configures a Store.
type Option func(*Store)

// WithPersister injects the storage provider notified after each
// transition.
func WithPersister(p Persister) Option { return func(s *Store) { s.persist = p } }

// WithLogger sets the structured logger. The default discards.
func WithLogger(l zerolog.Logger) Option { return func(s *Store) { s.log = l } }

// WithClock overrides the notion of today, for tests.
func WithClock(today func() date.Date) Option { return func(s *Store) { s.today = today } }

// NewStore builds a store over an initial aggregate.
func NewStore(data AppData, opts ...Option) *Store {
	s := &Store{
		data:  data,
		log:   zerolog.Nop(),
		today: date.Today,
	}
	for _, o := range opts {
		o(s)
	}
	s.cursor = s.today()
	return s
}

// Open loads the persisted document from p, or seeds the default
// aggregate when none exists, and returns a store that will keep p up to
// date.
func Open(p Persister, opts ...Option) (*Store, error) {
	data, ok, err := p.Load()
	if err != nil {
		return nil, err
	}
	if !ok {
		data = DefaultData()
	}
	opts = append([]Option{WithPersister(p)}, opts...)
	return NewStore(data, opts...), nil
}

// Data returns a copy of the aggregate.
func (s *Store) Data() AppData { return s.data.Clone() }

// commit replaces the aggregate and notifies persistence.
func (s *Store) commit(next AppData) {
	s.data = next
	if s.persist == nil {
		return
	}
	if err := s.persist.Save(next); err != nil {
		s.log.Error().Err(err).Msg("persist failed")
	}
}

// --- month cursor ---

// CurrentMonth returns the date whose calendar month the default query
// window shows.
func (s *Store) CurrentMonth() date.Date { return s.cursor }

// ChangeMonth advances (or retreats, for negative offset) the query
// month cursor by whole months.
func (s *Store) ChangeMonth(offset int) { s.cursor = s.cursor.AddMonths(offset) }

// --- transactions ---

// AddTransaction expands the base intent into one or more records,
// folds their balance effects into the accounts and prepends them to the
// ledger. It returns the records that were created.
func (s *Store) AddTransaction(base Transaction, mode ScheduleMode, count int) []Transaction {
	next := s.data.Clone()
	produced := Expand(base, mode, count, next.Account(base.AccountID))
	next.Accounts = applyAll(next.Accounts, produced)
	next.Transactions = append(slices.Clone(produced), next.Transactions...)
	s.commit(next)
	s.log.Info().Str("mode", string(mode)).Int("records", len(produced)).Msg("transaction added")
	return produced
}

// EditTransaction replaces the record with this id. The old effect is
// reversed and the new one applied, so account balances stay correct.
// Unknown id is a no-op.
func (s *Store) EditTransaction(id string, updated Transaction) {
	old := s.data.Transaction(id)
	if old == nil {
		s.log.Debug().Str("id", id).Msg("edit of unknown transaction ignored")
		return
	}
	next := s.data.Clone()
	next.Accounts = ApplyEffect(next.Accounts, *old, true)
	updated.ID = id
	next.Accounts = ApplyEffect(next.Accounts, updated, false)
	for i := range next.Transactions {
		if next.Transactions[i].ID == id {
			next.Transactions[i] = updated
		}
	}
	s.commit(next)
}

// DeleteTransaction reverses the record's effect and removes it.
// Unknown id is a no-op.
func (s *Store) DeleteTransaction(id string) {
	old := s.data.Transaction(id)
	if old == nil {
		return
	}
	next := s.data.Clone()
	next.Accounts = ApplyEffect(next.Accounts, *old, true)
	next.Transactions = slices.DeleteFunc(next.Transactions, func(t Transaction) bool {
		return t.ID == id
	})
	s.commit(next)
}

// ToggleStatus flips a record between pending and completed. This is how
// marking a bill paid moves money: the effect under the old status is
// reversed, then the effect under the new status applied.
func (s *Store) ToggleStatus(id string) {
	old := s.data.Transaction(id)
	if old == nil {
		return
	}
	next := s.data.Clone()
	next.Accounts = ApplyEffect(next.Accounts, *old, true)
	updated := old.Clone()
	updated.Status = updated.Status.Toggle()
	next.Accounts = ApplyEffect(next.Accounts, updated, false)
	for i := range next.Transactions {
		if next.Transactions[i].ID == id {
			next.Transactions[i] = updated
		}
	}
	s.commit(next)
}

// ImportCandidates runs the deduplicator over parsed statement rows,
// inserts the survivors against the account and returns how many got in.
// Zero is a result, not an error: the caller decides what to tell the
// user.
func (s *Store) ImportCandidates(accountID string, candidates []Candidate) int {
	txs := make([]Transaction, 0, len(candidates))
	for _, c := range candidates {
		txs = append(txs, c.materialize(accountID))
	}
	fresh := Dedupe(txs, s.data.Transactions)
	if len(fresh) == 0 {
		return 0
	}
	next := s.data.Clone()
	next.Accounts = applyAll(next.Accounts, fresh)
	next.Transactions = append(slices.Clone(fresh), next.Transactions...)
	s.commit(next)
	s.log.Info().Int("imported", len(fresh)).Int("dropped", len(txs)-len(fresh)).Msg("statement imported")
	return len(fresh)
}

// --- accounts ---

// AddAccount inserts an account, assigning an id when it has none, and
// returns the stored value.
func (s *Store) AddAccount(a Account) Account {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	next := s.data.Clone()
	next.Accounts = append(next.Accounts, a)
	s.commit(next)
	return a
}

// UpdateAccount replaces the named account's descriptive fields (name,
// kind, credit card settings). The balance is deliberately kept: it only
// moves through transaction effects or SetAccountBalance.
func (s *Store) UpdateAccount(a Account) {
	existing := s.data.Account(a.ID)
	if existing == nil {
		return
	}
	a.Balance = existing.Balance
	next := s.data.Clone()
	for i := range next.Accounts {
		if next.Accounts[i].ID == a.ID {
			next.Accounts[i] = a
		}
	}
	s.commit(next)
}

// SetAccountBalance overrides an account balance. This is the explicit
// escape hatch for initial setup; it intentionally breaks the
// balance-equals-sum-of-effects invariant.
func (s *Store) SetAccountBalance(id string, balance Money) {
	if s.data.Account(id) == nil {
		return
	}
	next := s.data.Clone()
	for i := range next.Accounts {
		if next.Accounts[i].ID == id {
			next.Accounts[i].Balance = balance
		}
	}
	s.commit(next)
}

// DeleteAccount removes an account and cascades to every transaction
// referencing it as source or destination, so no transaction is left
// pointing at a dead account (categories behave differently on purpose:
// their deletion leaves references dangling). Effects of the removed
// transactions on the surviving accounts are reversed, keeping their
// balances equal to the sum of effects of the transactions that remain.
func (s *Store) DeleteAccount(id string) {
	if s.data.Account(id) == nil {
		return
	}
	next := s.data.Clone()
	for _, t := range next.Transactions {
		if t.Touches(id) {
			next.Accounts = ApplyEffect(next.Accounts, t, true)
		}
	}
	next.Transactions = slices.DeleteFunc(next.Transactions, func(t Transaction) bool {
		return t.Touches(id)
	})
	next.Accounts = slices.DeleteFunc(next.Accounts, func(a Account) bool {
		return a.ID == id
	})
	s.commit(next)
	s.log.Info().Str("account", id).Msg("account deleted with its transactions")
}

// --- categories (no cascade on delete) ---

// AddCategory inserts a category, assigning an id when it has none.
func (s *Store) AddCategory(c Category) Category {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Subcategories == nil {
		c.Subcategories = []string{}
	}
	next := s.data.Clone()
	next.Categories = append(next.Categories, c)
	s.commit(next)
	return c
}

// UpdateCategory replaces the category with the same id.
func (s *Store) UpdateCategory(c Category) {
	if s.data.Category(c.ID) == nil {
		return
	}
	next := s.data.Clone()
	for i := range next.Categories {
		if next.Categories[i].ID == c.ID {
			next.Categories[i] = c
		}
	}
	s.commit(next)
}

// DeleteCategory removes the category only. Transactions keep their
// stored category id and render as uncategorized from then on.
func (s *Store) DeleteCategory(id string) {
	next := s.data.Clone()
	next.Categories = slices.DeleteFunc(next.Categories, func(c Category) bool {
		return c.ID == id
	})
	s.commit(next)
}

// AddSubcategory appends a subcategory name to a category. Duplicate
// names within the category are dropped.
func (s *Store) AddSubcategory(categoryID, name string) {
	cat := s.data.Category(categoryID)
	if cat == nil || slices.Contains(cat.Subcategories, name) {
		return
	}
	next := s.data.Clone()
	for i := range next.Categories {
		if next.Categories[i].ID == categoryID {
			c := next.Categories[i]
			c.Subcategories = append(slices.Clone(c.Subcategories), name)
			next.Categories[i] = c
		}
	}
	s.commit(next)
}

// --- goals ---

// AddGoal inserts a goal, assigning an id when it has none.
func (s *Store) AddGoal(g Goal) Goal {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	next := s.data.Clone()
	next.Goals = append(next.Goals, g)
	s.commit(next)
	return g
}

// AddToGoal adds an amount to a goal's saved total.
func (s *Store) AddToGoal(id string, amount Money) {
	next := s.data.Clone()
	for i := range next.Goals {
		if next.Goals[i].ID == id {
			next.Goals[i].CurrentAmount = next.Goals[i].CurrentAmount.Add(amount)
		}
	}
	s.commit(next)
}

// DeleteGoal removes a goal.
func (s *Store) DeleteGoal(id string) {
	next := s.data.Clone()
	next.Goals = slices.DeleteFunc(next.Goals, func(g Goal) bool { return g.ID == id })
	s.commit(next)
}

// --- investments ---

// AddInvestment inserts an investment asset, assigning an id when it
// has none.
func (s *Store) AddInvestment(a InvestmentAsset) InvestmentAsset {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	next := s.data.Clone()
	next.Investments = append(next.Investments, a)
	s.commit(next)
	return a
}

// UpdateInvestment replaces the asset with the same id.
func (s *Store) UpdateInvestment(a InvestmentAsset) {
	next := s.data.Clone()
	for i := range next.Investments {
		if next.Investments[i].ID == a.ID {
			next.Investments[i] = a
		}
	}
	s.commit(next)
}

// DeleteInvestment removes an investment asset.
func (s *Store) DeleteInvestment(id string) {
	next := s.data.Clone()
	next.Investments = slices.DeleteFunc(next.Investments, func(a InvestmentAsset) bool {
		return a.ID == id
	})
	s.commit(next)
}

// --- backup ---

// Export writes the whole aggregate as a backup document.
func (s *Store) Export(w io.Writer) error { return ExportDocument(w, s.data) }

// Import replaces the aggregate with a backup document. A malformed
// document leaves the current state untouched and returns the error.
func (s *Store) Import(doc []byte) error {
	next, err := ImportDocument(bytes.NewReader(doc), s.data)
	if err != nil {
		return err
	}
	s.commit(next)
	s.log.Info().Int("transactions", len(next.Transactions)).Msg("backup imported")
	return nil
}
