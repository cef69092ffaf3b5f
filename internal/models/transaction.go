package models

import (
	"sort"
	"time"

	"github.com/mmynk/settleup/internal/money"
)

// TransactionKind is the kind of a ledger entry.
type TransactionKind string

const (
	KindExpense    TransactionKind = "expense"
	KindSettlement TransactionKind = "settlement"
	KindReminder   TransactionKind = "reminder"
)

// Valid reports whether k is a known transaction kind.
func (k TransactionKind) Valid() bool {
	switch k {
	case KindExpense, KindSettlement, KindReminder:
		return true
	}
	return false
}

// Transaction is one immutable ledger entry.
type Transaction struct {
	// ID is the unique identifier for the transaction (UUID format).
	ID string

	// Kind selects which of the payload fields below are meaningful.
	Kind TransactionKind

	// PayerID is who paid (expense, settlement) or who sent the reminder.
	PayerID string

	// Amount is never negative. For reminders it is informational only.
	Amount money.Money

	// Timestamp is when the transaction happened.
	Timestamp time.Time

	// Shares maps participant id to what they owe for an expense.
	// The values always sum to Amount.
	Shares map[string]money.Money

	// ReceiverID is the member paid by a settlement.
	ReceiverID string

	// TargetID is the member being reminded.
	TargetID string

	// Description is free text shown next to the entry.
	Description string

	// RecordedBy is the user id that recorded the entry, if known.
	RecordedBy string
}

// Counterparty returns the single other member of a settlement or reminder.
func (t *Transaction) Counterparty() string {
	switch t.Kind {
	case KindSettlement:
		return t.ReceiverID
	case KindReminder:
		return t.TargetID
	}
	return ""
}

// Participants returns the expense participants sorted by id.
func (t *Transaction) Participants() []string {
	ids := make([]string, 0, len(t.Shares))
	for id := range t.Shares {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// MemberIDs returns every member id the transaction references, sorted.
func (t *Transaction) MemberIDs() []string {
	seen := map[string]bool{}
	if t.PayerID != "" {
		seen[t.PayerID] = true
	}
	for id := range t.Shares {
		seen[id] = true
	}
	if c := t.Counterparty(); c != "" {
		seen[c] = true
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clone returns a deep copy so the ledger never shares a Shares map with callers.
func (t Transaction) Clone() Transaction {
	if t.Shares != nil {
		shares := make(map[string]money.Money, len(t.Shares))
		for id, amt := range t.Shares {
			shares[id] = amt
		}
		t.Shares = shares
	}
	return t
}
