// Package ledger holds the append-only transaction log of one scope.
//
// A *Ledger is an immutable snapshot. Append validates a transaction and
// returns a new snapshot containing it; the receiver is left untouched, so a
// rejected append never leaves partial state behind and readers holding an
// older snapshot never observe a change. Serializing appends to the same scope
// is the caller's job (see package scopelock).
package ledger

import (
	"fmt"
	"maps"

	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/money"
)

// Option configures a Ledger.
type Option func(*Ledger)

// AutoRegister makes the ledger add unknown member ids to its roster instead
// of rejecting the transaction with ErrUnknownMember. Registered members get
// their id as display name. Meant for importing data recorded without a roster.
func AutoRegister() Option {
	return func(l *Ledger) {
		l.autoRegister = true
	}
}

// Ledger is an ordered, append-only sequence of transactions for one scope.
type Ledger struct {
	scopeID      string
	members      []models.Member
	memberIdx    map[string]int
	txs          []models.Transaction
	txIdx        map[string]int
	autoRegister bool
}

// New creates an empty ledger for scopeID with the given roster.
func New(scopeID string, members []models.Member, opts ...Option) (*Ledger, error) {
	l := &Ledger{
		scopeID:   scopeID,
		memberIdx: make(map[string]int, len(members)),
		txIdx:     make(map[string]int),
	}
	for _, opt := range opts {
		opt(l)
	}
	for _, m := range members {
		if err := l.addMember(m); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Load creates a ledger and replays txs into it in order. It fails on the
// first invalid transaction.
func Load(scopeID string, members []models.Member, txs []models.Transaction, opts ...Option) (*Ledger, error) {
	l, err := New(scopeID, members, opts...)
	if err != nil {
		return nil, err
	}
	for _, tx := range txs {
		if err := l.appendInPlace(tx); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Append validates tx and returns a new ledger with tx at the end.
func (l *Ledger) Append(tx models.Transaction) (*Ledger, error) {
	return l.AppendAll(tx)
}

// AppendAll appends txs atomically: either all of them are accepted or the
// error for the first invalid one is returned and nothing is appended.
func (l *Ledger) AppendAll(txs ...models.Transaction) (*Ledger, error) {
	next := l.clone()
	for _, tx := range txs {
		if err := next.appendInPlace(tx); err != nil {
			return nil, err
		}
	}
	return next, nil
}

// WithMembers returns a new ledger with members added to the roster.
func (l *Ledger) WithMembers(members ...models.Member) (*Ledger, error) {
	next := l.clone()
	for _, m := range members {
		if err := next.addMember(m); err != nil {
			return nil, err
		}
	}
	return next, nil
}

// ScopeID returns the scope this ledger belongs to.
func (l *Ledger) ScopeID() string { return l.scopeID }

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.txs) }

// All returns the transactions in insertion order. The result is a copy.
func (l *Ledger) All() []models.Transaction {
	out := make([]models.Transaction, len(l.txs))
	for i, tx := range l.txs {
		out[i] = tx.Clone()
	}
	return out
}

// Transaction looks up a transaction by id.
func (l *Ledger) Transaction(id string) (models.Transaction, bool) {
	i, ok := l.txIdx[id]
	if !ok {
		return models.Transaction{}, false
	}
	return l.txs[i].Clone(), true
}

// Members returns the roster in join order.
func (l *Ledger) Members() []models.Member {
	return append([]models.Member(nil), l.members...)
}

// Member looks up a member by id.
func (l *Ledger) Member(id string) (models.Member, bool) {
	i, ok := l.memberIdx[id]
	if !ok {
		return models.Member{}, false
	}
	return l.members[i], true
}

// HasMember reports whether id is on the roster.
func (l *Ledger) HasMember(id string) bool {
	_, ok := l.memberIdx[id]
	return ok
}

// clone copies everything appendInPlace may touch. Slices are capped so an
// append on the copy never writes into the original's backing array.
func (l *Ledger) clone() *Ledger {
	return &Ledger{
		scopeID:      l.scopeID,
		members:      l.members[:len(l.members):len(l.members)],
		memberIdx:    maps.Clone(l.memberIdx),
		txs:          l.txs[:len(l.txs):len(l.txs)],
		txIdx:        maps.Clone(l.txIdx),
		autoRegister: l.autoRegister,
	}
}

func (l *Ledger) addMember(m models.Member) error {
	if m.ID == "" {
		return ErrEmptyMemberID
	}
	if _, ok := l.memberIdx[m.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateMember, m.ID)
	}
	l.memberIdx[m.ID] = len(l.members)
	l.members = append(l.members, m)
	return nil
}

// appendInPlace must only be called on a ledger nobody else can see yet.
// On error the ledger may hold auto-registered members; callers discard it.
func (l *Ledger) appendInPlace(tx models.Transaction) error {
	if err := l.validate(&tx); err != nil {
		return err
	}
	for _, id := range tx.MemberIDs() {
		if l.HasMember(id) {
			continue
		}
		if !l.autoRegister {
			return fmt.Errorf("%w: transaction %s references %s", ErrUnknownMember, tx.ID, id)
		}
		if err := l.addMember(models.Member{ID: id, DisplayName: id}); err != nil {
			return err
		}
	}
	l.txIdx[tx.ID] = len(l.txs)
	l.txs = append(l.txs, tx.Clone())
	return nil
}

func (l *Ledger) validate(tx *models.Transaction) error {
	if tx.ID == "" {
		return ErrEmptyTransactionID
	}
	if _, dup := l.txIdx[tx.ID]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateTransaction, tx.ID)
	}
	if !tx.Kind.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownKind, tx.Kind)
	}
	if tx.Amount.IsNegative() {
		return fmt.Errorf("%w: transaction %s amount %s", ErrNegativeAmount, tx.ID, tx.Amount)
	}
	if tx.PayerID == "" {
		return fmt.Errorf("%w: transaction %s has no payer", ErrMissingMember, tx.ID)
	}

	switch tx.Kind {
	case models.KindExpense:
		return validateShares(tx)
	case models.KindSettlement:
		if tx.ReceiverID == "" {
			return fmt.Errorf("%w: settlement %s has no receiver", ErrMissingMember, tx.ID)
		}
	case models.KindReminder:
		if tx.TargetID == "" {
			return fmt.Errorf("%w: reminder %s has no target", ErrMissingMember, tx.ID)
		}
	}
	if tx.PayerID == tx.Counterparty() {
		return fmt.Errorf("%w: transaction %s from %s to itself", ErrSelfTransfer, tx.ID, tx.PayerID)
	}
	return nil
}

func validateShares(tx *models.Transaction) error {
	if len(tx.Shares) == 0 {
		return fmt.Errorf("%w: expense %s", ErrNoParticipants, tx.ID)
	}
	for id, share := range tx.Shares {
		if id == "" {
			return fmt.Errorf("%w: expense %s has a share without participant", ErrMissingMember, tx.ID)
		}
		if share.IsNegative() {
			return fmt.Errorf("%w: expense %s share of %s is %s", ErrNegativeAmount, tx.ID, id, share)
		}
	}
	var sum money.Money
	for _, share := range tx.Shares {
		// sum stays within [0, amount], so it cannot wrap.
		if share > tx.Amount-sum {
			return fmt.Errorf("%w: expense %s shares exceed amount %s", ErrShareSumMismatch, tx.ID, tx.Amount)
		}
		sum += share
	}
	if sum != tx.Amount {
		return fmt.Errorf("%w: expense %s shares sum to %s, amount is %s", ErrShareSumMismatch, tx.ID, sum, tx.Amount)
	}
	return nil
}
