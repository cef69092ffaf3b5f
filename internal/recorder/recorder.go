// Package recorder turns user actions (entering an expense, confirming a full
// or partial settlement, sending a reminder) into ledger transactions.
//
// Every Record method appends to the given ledger snapshot and returns the
// new snapshot together with the transaction it appended. The input ledger is
// never modified. Balances and plans are not patched incrementally; callers
// recompute them from the returned ledger.
package recorder

import (
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/settleup/internal/ledger"
	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/money"
)

// Recorder builds transactions with generated ids and timestamps.
type Recorder struct {
	NewID func() string
	Now   func() time.Time
}

// New returns a Recorder using random UUIDs and the wall clock.
func New() *Recorder {
	return &Recorder{
		NewID: uuid.NewString,
		Now:   time.Now,
	}
}

// Option sets optional transaction fields.
type Option func(*models.Transaction)

// WithDescription sets the free text shown next to the entry.
func WithDescription(desc string) Option {
	return func(tx *models.Transaction) { tx.Description = desc }
}

// RecordedBy sets the user id that recorded the entry.
func RecordedBy(userID string) Option {
	return func(tx *models.Transaction) { tx.RecordedBy = userID }
}

// At overrides the transaction timestamp, e.g. for a receipt dated in the past.
func At(ts time.Time) Option {
	return func(tx *models.Transaction) {
		if !ts.IsZero() {
			tx.Timestamp = ts
		}
	}
}

// RemindAbout sets the informational amount on a reminder.
func RemindAbout(amount money.Money) Option {
	return func(tx *models.Transaction) {
		if tx.Kind == models.KindReminder {
			tx.Amount = amount
		}
	}
}

// RecordExpense appends an expense paid by payer and split according to shares.
func (r *Recorder) RecordExpense(l *ledger.Ledger, payer string, amount money.Money, shares map[string]money.Money, opts ...Option) (*ledger.Ledger, models.Transaction, error) {
	return r.record(l, models.Transaction{
		Kind:    models.KindExpense,
		PayerID: payer,
		Amount:  amount,
		Shares:  shares,
	}, opts)
}

// RecordFullSettlement appends a settlement of amount from one member to another.
func (r *Recorder) RecordFullSettlement(l *ledger.Ledger, from, to string, amount money.Money, opts ...Option) (*ledger.Ledger, models.Transaction, error) {
	return r.recordSettlement(l, from, to, amount, opts)
}

// RecordPartialSettlement is RecordFullSettlement under another name: a
// partial payment is the same kind of transaction with a smaller amount.
// Paying more than is owed is accepted and flips the pair's balance.
func (r *Recorder) RecordPartialSettlement(l *ledger.Ledger, from, to string, amount money.Money, opts ...Option) (*ledger.Ledger, models.Transaction, error) {
	return r.recordSettlement(l, from, to, amount, opts)
}

// RecordReminder appends a reminder sent by one member to target. It has no
// effect on balances.
func (r *Recorder) RecordReminder(l *ledger.Ledger, by, target string, opts ...Option) (*ledger.Ledger, models.Transaction, error) {
	return r.record(l, models.Transaction{
		Kind:     models.KindReminder,
		PayerID:  by,
		TargetID: target,
	}, opts)
}

func (r *Recorder) recordSettlement(l *ledger.Ledger, from, to string, amount money.Money, opts []Option) (*ledger.Ledger, models.Transaction, error) {
	return r.record(l, models.Transaction{
		Kind:       models.KindSettlement,
		PayerID:    from,
		ReceiverID: to,
		Amount:     amount,
	}, opts)
}

func (r *Recorder) record(l *ledger.Ledger, tx models.Transaction, opts []Option) (*ledger.Ledger, models.Transaction, error) {
	tx.ID = r.NewID()
	tx.Timestamp = r.Now().UTC()
	for _, opt := range opts {
		opt(&tx)
	}
	next, err := l.Append(tx)
	if err != nil {
		return nil, models.Transaction{}, err
	}
	return next, tx.Clone(), nil
}
