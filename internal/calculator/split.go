package calculator

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"sort"

	"github.com/mmynk/settleup/internal/money"
)

var (
	ErrNoParticipants       = errors.New("must have at least one participant")
	ErrDuplicateParticipant = errors.New("participant listed more than once")
	ErrUnknownParticipant   = errors.New("item assigned to someone who is not a participant")
	ErrInvalidWeights       = errors.New("weights must be non-negative, not all zero and fit in int64 when summed")
	ErrItemsExceedTotal     = errors.New("items add up to more than the total")
	ErrNegativeAmount       = errors.New("amount must not be negative")
)

// PersonSplit represents the calculated split for one person.
type PersonSplit struct {
	Subtotal money.Money
	Tax      money.Money
	Total    money.Money
	Items    []PersonItem
}

// PersonItem is one person's share of one item.
type PersonItem struct {
	Description string
	Amount      money.Money
}

// Item represents a single item on the bill.
type Item struct {
	Description string
	Amount      money.Money
	AssignedTo  []string
}

// Weight is one participant's relative weight in a weighted split.
type Weight struct {
	ID     string
	Weight int64
}

// EqualShares splits amount evenly. Leftover cents go one each to the first
// participants in the order given, so the shares always sum to amount.
func EqualShares(amount money.Money, participants []string) (map[string]money.Money, error) {
	weights := make([]Weight, len(participants))
	for i, p := range participants {
		weights[i] = Weight{ID: p, Weight: 1}
	}
	return WeightedShares(amount, weights)
}

// WeightedShares splits amount in proportion to the weights using largest
// remainder allocation. Ties on the remainder go to the earlier entry.
func WeightedShares(amount money.Money, weights []Weight) (map[string]money.Money, error) {
	if len(weights) == 0 {
		return nil, ErrNoParticipants
	}
	if amount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	seen := make(map[string]bool, len(weights))
	w := make([]int64, len(weights))
	for i, wt := range weights {
		if seen[wt.ID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateParticipant, wt.ID)
		}
		seen[wt.ID] = true
		w[i] = wt.Weight
	}

	parts, err := allocate(amount.Cents(), w)
	if err != nil {
		return nil, err
	}
	shares := make(map[string]money.Money, len(weights))
	for i, wt := range weights {
		shares[wt.ID] = money.FromCents(parts[i])
	}
	return shares, nil
}

// allocate divides amount into len(weights) integer parts proportional to the
// weights. Products go through big.Int because cents times cents overflows int64.
func allocate(amount int64, weights []int64) ([]int64, error) {
	var total int64
	for _, w := range weights {
		if w < 0 || w > math.MaxInt64-total {
			return nil, ErrInvalidWeights
		}
		total += w
	}
	if total == 0 {
		return nil, ErrInvalidWeights
	}

	type rem struct {
		idx int
		r   *big.Int
	}
	parts := make([]int64, len(weights))
	rems := make([]rem, len(weights))
	bigTotal := big.NewInt(total)
	var given int64
	for i, w := range weights {
		q, r := new(big.Int).QuoRem(
			new(big.Int).Mul(big.NewInt(amount), big.NewInt(w)),
			bigTotal,
			new(big.Int),
		)
		parts[i] = q.Int64()
		rems[i] = rem{idx: i, r: r}
		given += parts[i]
	}

	sort.SliceStable(rems, func(i, j int) bool { return rems[i].r.Cmp(rems[j].r) > 0 })
	// The floors lose less than one cent per part.
	for k := 0; k < len(rems) && int64(k) < amount-given; k++ {
		parts[rems[k].idx]++
	}
	return parts, nil
}

// ItemizedSplit computes how much each person owes for an itemized bill.
//
// Each item is split equally among the people it is assigned to. Whatever the
// items don't cover (tax, tip, unassigned items) is spread in proportion to
// each person's item subtotal. With no assigned items the total is split
// equally among all participants. Totals always add up to total exactly.
func ItemizedSplit(items []Item, total money.Money, participants []string) (map[string]*PersonSplit, error) {
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}
	if total.IsNegative() {
		return nil, ErrNegativeAmount
	}

	splits := make(map[string]*PersonSplit, len(participants))
	for _, p := range participants {
		if _, dup := splits[p]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateParticipant, p)
		}
		splits[p] = &PersonSplit{}
	}

	// Calculate each person's subtotal based on assigned items
	var itemsTotal money.Money
	for _, item := range items {
		if len(item.AssignedTo) == 0 {
			continue
		}
		if item.Amount.IsNegative() {
			return nil, fmt.Errorf("item %q: %w", item.Description, ErrNegativeAmount)
		}
		if item.Amount > total-itemsTotal {
			return nil, fmt.Errorf("%w: %q does not fit in %s", ErrItemsExceedTotal, item.Description, total)
		}
		for _, person := range item.AssignedTo {
			if _, ok := splits[person]; !ok {
				return nil, fmt.Errorf("%w: %s on %q", ErrUnknownParticipant, person, item.Description)
			}
		}
		shares, err := EqualShares(item.Amount, item.AssignedTo)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", item.Description, err)
		}
		for _, person := range item.AssignedTo {
			split := splits[person]
			split.Subtotal += shares[person]
			split.Items = append(split.Items, PersonItem{Description: item.Description, Amount: shares[person]})
		}
		itemsTotal += item.Amount
	}

	extra := total - itemsTotal

	// If no items, split the total equally among all participants
	if itemsTotal.IsZero() {
		shares, err := EqualShares(total, participants)
		if err != nil {
			return nil, err
		}
		for p, split := range splits {
			split.Subtotal = shares[p]
			split.Total = shares[p]
		}
		return splits, nil
	}

	// Apply extra proportionally to subtotals
	weights := make([]Weight, len(participants))
	for i, p := range participants {
		weights[i] = Weight{ID: p, Weight: splits[p].Subtotal.Cents()}
	}
	taxes, err := WeightedShares(extra, weights)
	if err != nil {
		return nil, err
	}
	for p, split := range splits {
		split.Tax = taxes[p]
		split.Total = split.Subtotal + split.Tax
	}
	return splits, nil
}

// Shares flattens a split into the participant -> amount map an expense carries.
func Shares(splits map[string]*PersonSplit) map[string]money.Money {
	shares := make(map[string]money.Money, len(splits))
	for p, s := range splits {
		shares[p] = s.Total
	}
	return shares
}
