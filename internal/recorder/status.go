package recorder

import (
	"time"

	"github.com/mmynk/settleup/internal/calculator"
	"github.com/mmynk/settleup/internal/ledger"
	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/money"
)

// Status is the reconstructed state of a settlement instruction. It is never
// stored; it is derived from the ledger each time it is asked for.
type Status string

const (
	StatusPending  Status = "pending"
	StatusReminded Status = "reminded"
	StatusSettled  Status = "settled"
)

// TrackedInstruction is a planned transfer annotated with what the ledger
// says about the pair so far.
type TrackedInstruction struct {
	calculator.Instruction
	Status         Status
	PaidSoFar      money.Money // all settlements From -> To ever recorded
	Reminders      int         // reminders To -> From
	LastRemindedAt time.Time
}

// pairHistory is what one scan of the ledger records about an ordered pair.
type pairHistory struct {
	paid           money.Money
	lastSettlement int // ledger position, -1 when none
	lastReminder   int
	reminders      int
	lastRemindedAt time.Time
}

type pair struct{ from, to string }

func scan(l *ledger.Ledger) map[pair]*pairHistory {
	hist := make(map[pair]*pairHistory)
	get := func(p pair) *pairHistory {
		h, ok := hist[p]
		if !ok {
			h = &pairHistory{lastSettlement: -1, lastReminder: -1}
			hist[p] = h
		}
		return h
	}

	for i, tx := range l.All() {
		switch tx.Kind {
		case models.KindSettlement:
			h := get(pair{from: tx.PayerID, to: tx.ReceiverID})
			h.paid += tx.Amount
			h.lastSettlement = i
		case models.KindReminder:
			// A reminder from X to Y is about Y paying X.
			h := get(pair{from: tx.TargetID, to: tx.PayerID})
			h.reminders++
			h.lastReminder = i
			h.lastRemindedAt = tx.Timestamp
		}
	}
	return hist
}

func (h *pairHistory) status(outstanding money.Money) Status {
	switch {
	case !outstanding.IsPositive():
		return StatusSettled
	case h != nil && h.lastReminder > h.lastSettlement:
		return StatusReminded
	default:
		return StatusPending
	}
}

// StatusOf reports the status of from paying to, given what from currently
// owes to under the plan (zero when the pair is not in the plan).
func StatusOf(l *ledger.Ledger, from, to string, outstanding money.Money) Status {
	return scan(l)[pair{from: from, to: to}].status(outstanding)
}

// Track annotates every instruction of plan with its status, in plan order.
// The ledger is scanned once regardless of the plan size.
func Track(l *ledger.Ledger, plan []calculator.Instruction) []TrackedInstruction {
	hist := scan(l)
	out := make([]TrackedInstruction, len(plan))
	for i, in := range plan {
		h := hist[pair{from: in.From, to: in.To}]
		t := TrackedInstruction{
			Instruction: in,
			Status:      h.status(in.Amount),
		}
		if h != nil {
			t.PaidSoFar = h.paid
			t.Reminders = h.reminders
			t.LastRemindedAt = h.lastRemindedAt
		}
		out[i] = t
	}
	return out
}
