package calculator

import (
	"sort"

	"github.com/mmynk/settleup/internal/ledger"
	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/money"
)

// Balances maps member id to net balance.
// Positive = owed money (creditor), Negative = owes money (debtor).
type Balances map[string]money.Money

// Sum adds up every balance. It is zero for any balances computed from a ledger.
func (b Balances) Sum() money.Money {
	var total money.Money
	for _, v := range b {
		total += v
	}
	return total
}

// IDs returns the member ids sorted.
func (b Balances) IDs() []string {
	ids := make([]string, 0, len(b))
	for id := range b {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clone returns an independent copy.
func (b Balances) Clone() Balances {
	out := make(Balances, len(b))
	for id, v := range b {
		out[id] = v
	}
	return out
}

// Settled reports whether every balance is zero.
func (b Balances) Settled() bool {
	for _, v := range b {
		if !v.IsZero() {
			return false
		}
	}
	return true
}

// MemberBalance represents the balance information for one scope member.
type MemberBalance struct {
	MemberID  string
	Net       money.Money // TotalPaid - TotalOwed
	TotalPaid money.Money // Expenses paid plus settlements sent
	TotalOwed money.Money // Expense shares plus settlements received
}

// ComputeBalances folds the whole ledger into net balances.
//
// Every roster member appears in the result, as does every id referenced by a
// transaction:
//   - expense: payer is credited the amount, each participant is debited their share
//     (a payer who is also a participant simply nets out their own share)
//   - settlement: payer is credited the amount, receiver is debited the same
//   - reminder: no effect
//
// Every credit has a matching debit, so the result always sums to zero.
func ComputeBalances(l *ledger.Ledger) Balances {
	totals := fold(l)
	balances := make(Balances, len(totals))
	for id, t := range totals {
		balances[id] = t.Net
	}
	return balances
}

// Summarize returns per-member paid/owed totals alongside the net balance,
// sorted by member id.
func Summarize(l *ledger.Ledger) []MemberBalance {
	totals := fold(l)
	out := make([]MemberBalance, 0, len(totals))
	for _, t := range totals {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MemberID < out[j].MemberID })
	return out
}

func fold(l *ledger.Ledger) map[string]*MemberBalance {
	totals := make(map[string]*MemberBalance)
	get := func(id string) *MemberBalance {
		t, ok := totals[id]
		if !ok {
			t = &MemberBalance{MemberID: id}
			totals[id] = t
		}
		return t
	}

	for _, m := range l.Members() {
		get(m.ID)
	}

	for _, tx := range l.All() {
		switch tx.Kind {
		case models.KindExpense:
			get(tx.PayerID).TotalPaid += tx.Amount
			for participant, share := range tx.Shares {
				get(participant).TotalOwed += share
			}
		case models.KindSettlement:
			get(tx.PayerID).TotalPaid += tx.Amount
			get(tx.ReceiverID).TotalOwed += tx.Amount
		case models.KindReminder:
			// Reminders only make their members known.
			get(tx.PayerID)
			get(tx.TargetID)
		}
	}

	for _, t := range totals {
		t.Net = t.TotalPaid - t.TotalOwed
	}
	return totals
}
