package calculator

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mmynk/settleup/internal/money"
)

// ErrUnbalanced means the balances handed to Plan did not sum to zero, so some
// member is left with a nonzero balance after every possible transfer. That is
// a defect upstream of the planner.
var ErrUnbalanced = errors.New("balances do not sum to zero")

// Instruction is one suggested transfer: From pays To the Amount.
type Instruction struct {
	From   string
	To     string
	Amount money.Money
}

type position struct {
	id     string
	amount money.Money // magnitude, always positive while open
}

// Plan turns net balances into pairwise transfers that zero everyone out.
//
// Algorithm (greedy min-cash-flow):
//   - debtors (balance < 0) most negative first, creditors (balance > 0) largest first,
//     ties broken by member id so the output is deterministic
//   - walk both lists, transferring min(debt, credit) at each step and advancing
//     whichever side reached zero (both, when the transfer zeroes both)
//
// The plan has at most debtors+creditors-1 instructions. It is a heuristic and
// not guaranteed to use the fewest possible transfers.
//
// When either side is empty the plan is empty. If the walk ends with an open
// balance on either side the instructions built so far are returned together
// with ErrUnbalanced.
func Plan(b Balances) ([]Instruction, error) {
	var debtors, creditors []position
	for id, v := range b {
		switch {
		case v.IsNegative():
			debtors = append(debtors, position{id: id, amount: v.Neg()})
		case v.IsPositive():
			creditors = append(creditors, position{id: id, amount: v})
		}
	}
	if len(debtors) == 0 || len(creditors) == 0 {
		return nil, nil
	}

	// Both lists are ordered by magnitude descending.
	byMagnitude := func(p []position) func(i, j int) bool {
		return func(i, j int) bool {
			if p[i].amount != p[j].amount {
				return p[i].amount > p[j].amount
			}
			return p[i].id < p[j].id
		}
	}
	sort.Slice(debtors, byMagnitude(debtors))
	sort.Slice(creditors, byMagnitude(creditors))

	plan := make([]Instruction, 0, len(debtors)+len(creditors)-1)
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		d, c := &debtors[i], &creditors[j]
		amount := money.Min(d.amount, c.amount)

		plan = append(plan, Instruction{From: d.id, To: c.id, Amount: amount})

		d.amount -= amount
		c.amount -= amount
		if d.amount.IsZero() {
			i++
		}
		if c.amount.IsZero() {
			j++
		}
	}

	var open money.Money
	for ; i < len(debtors); i++ {
		open -= debtors[i].amount
	}
	for ; j < len(creditors); j++ {
		open += creditors[j].amount
	}
	if !open.IsZero() {
		return plan, fmt.Errorf("%w: %s left open", ErrUnbalanced, open)
	}
	return plan, nil
}

// Apply returns b with every instruction carried out: each payer's balance
// goes up and each receiver's goes down by the instruction amount.
func Apply(b Balances, plan []Instruction) Balances {
	out := b.Clone()
	for _, in := range plan {
		out[in.From] += in.Amount
		out[in.To] -= in.Amount
	}
	return out
}

// Outstanding is the total amount debtors still have to pay.
func Outstanding(plan []Instruction) money.Money {
	var total money.Money
	for _, in := range plan {
		total += in.Amount
	}
	return total
}
