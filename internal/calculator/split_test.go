package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/mmynk/settleup/internal/money"
)

func sumShares(shares map[string]money.Money) money.Money {
	var total money.Money
	for _, v := range shares {
		total += v
	}
	return total
}

func TestItemizedSplit(t *testing.T) {
	tests := []struct {
		name         string
		items        []Item
		total        money.Money
		participants []string
		wantErr      error
		validateFunc func(t *testing.T, splits map[string]*PersonSplit)
	}{
		{
			name: "simple two-person split with tax",
			items: []Item{
				{Description: "Pizza", Amount: 2000, AssignedTo: []string{"Alice", "Bob"}},
				{Description: "Salad", Amount: 1000, AssignedTo: []string{"Alice"}},
			},
			total:        3300,
			participants: []string{"Alice", "Bob"},
			validateFunc: func(t *testing.T, splits map[string]*PersonSplit) {
				// Alice: subtotal = 10 + 10 = 20, tax = 3 * 20/30 = 2, total = 22
				// Bob: subtotal = 10, tax = 1, total = 11
				alice := splits["Alice"]
				if alice.Subtotal != 2000 || alice.Tax != 200 || alice.Total != 2200 {
					t.Errorf("Alice = %+v, want subtotal 20.00 tax 2.00 total 22.00", alice)
				}
				if len(alice.Items) != 2 {
					t.Errorf("Alice items = %d, want 2", len(alice.Items))
				}
				bob := splits["Bob"]
				if bob.Subtotal != 1000 || bob.Tax != 100 || bob.Total != 1100 {
					t.Errorf("Bob = %+v, want subtotal 10.00 tax 1.00 total 11.00", bob)
				}
			},
		},
		{
			name: "uneven tax still sums to total",
			items: []Item{
				{Description: "Pizza", Amount: 2000, AssignedTo: []string{"Alice", "Bob"}},
				{Description: "Beer", Amount: 1500, AssignedTo: []string{"Bob"}},
			},
			total:        4400,
			participants: []string{"Alice", "Bob"},
			validateFunc: func(t *testing.T, splits map[string]*PersonSplit) {
				// Tax 9.00 split 10:25 -> 2.571.. and 6.428.., largest remainder gives Alice the extra cent
				if got := splits["Alice"].Tax; got != 257 {
					t.Errorf("Alice tax = %s, want 2.57", got)
				}
				if got := splits["Bob"].Tax; got != 643 {
					t.Errorf("Bob tax = %s, want 6.43", got)
				}
				if got := sumShares(Shares(splits)); got != 4400 {
					t.Errorf("shares sum = %s, want 44.00", got)
				}
			},
		},
		{
			name:         "no participants should error",
			items:        []Item{{Description: "Item", Amount: 1000, AssignedTo: []string{"Alice"}}},
			total:        1000,
			participants: []string{},
			wantErr:      ErrNoParticipants,
		},
		{
			name:         "item assigned to stranger should error",
			items:        []Item{{Description: "Item", Amount: 1000, AssignedTo: []string{"Mallory"}}},
			total:        1000,
			participants: []string{"Alice"},
			wantErr:      ErrUnknownParticipant,
		},
		{
			name:         "items above total should error",
			items:        []Item{{Description: "Item", Amount: 1000, AssignedTo: []string{"Alice"}}},
			total:        900,
			participants: []string{"Alice"},
			wantErr:      ErrItemsExceedTotal,
		},
		{
			name: "items whose sum wraps int64 should error",
			items: []Item{
				{Description: "Yacht", Amount: math.MaxInt64, AssignedTo: []string{"Alice"}},
				{Description: "Island", Amount: math.MaxInt64, AssignedTo: []string{"Alice"}},
			},
			total:        100,
			participants: []string{"Alice"},
			wantErr:      ErrItemsExceedTotal,
		},
		{
			name:         "negative item should error",
			items:        []Item{{Description: "Refund", Amount: -500, AssignedTo: []string{"Alice"}}},
			total:        1000,
			participants: []string{"Alice"},
			wantErr:      ErrNegativeAmount,
		},
		{
			name:         "no items - split equally among participants",
			items:        []Item{},
			total:        3300,
			participants: []string{"Alice", "Bob"},
			validateFunc: func(t *testing.T, splits map[string]*PersonSplit) {
				for _, person := range []string{"Alice", "Bob"} {
					if got := splits[person].Total; got != 1650 {
						t.Errorf("%s total = %s, want 16.50", person, got)
					}
				}
			},
		},
		{
			name:         "no items - three people, remainder goes to the first",
			total:        10000,
			participants: []string{"Alice", "Bob", "Charlie"},
			validateFunc: func(t *testing.T, splits map[string]*PersonSplit) {
				want := map[string]money.Money{"Alice": 3334, "Bob": 3333, "Charlie": 3333}
				for person, w := range want {
					if got := splits[person].Total; got != w {
						t.Errorf("%s total = %s, want %s", person, got, w)
					}
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			splits, err := ItemizedSplit(tt.items, tt.total, tt.participants)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ItemizedSplit() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ItemizedSplit() unexpected error: %v", err)
			}
			if got := sumShares(Shares(splits)); got != tt.total {
				t.Errorf("shares sum = %s, want %s", got, tt.total)
			}
			if tt.validateFunc != nil {
				tt.validateFunc(t, splits)
			}
		})
	}
}

func TestEqualShares(t *testing.T) {
	shares, err := EqualShares(30000, []string{"A", "B", "C"})
	if err != nil {
		t.Fatalf("EqualShares: %v", err)
	}
	for _, p := range []string{"A", "B", "C"} {
		if shares[p] != 10000 {
			t.Errorf("%s = %s, want 100.00", p, shares[p])
		}
	}

	shares, err = EqualShares(100, []string{"C", "B", "A"})
	if err != nil {
		t.Fatalf("EqualShares: %v", err)
	}
	if shares["C"] != 34 || shares["B"] != 33 || shares["A"] != 33 {
		t.Errorf("remainder should go to the first participant given, got %v", shares)
	}

	if _, err := EqualShares(100, nil); !errors.Is(err, ErrNoParticipants) {
		t.Errorf("expected ErrNoParticipants, got %v", err)
	}
	if _, err := EqualShares(100, []string{"A", "A"}); !errors.Is(err, ErrDuplicateParticipant) {
		t.Errorf("expected ErrDuplicateParticipant, got %v", err)
	}
	if _, err := EqualShares(-1, []string{"A"}); !errors.Is(err, ErrNegativeAmount) {
		t.Errorf("expected ErrNegativeAmount, got %v", err)
	}
}

func TestWeightedShares(t *testing.T) {
	tests := []struct {
		name    string
		amount  money.Money
		weights []Weight
		want    map[string]money.Money
		wantErr error
	}{
		{
			name:    "percentages",
			amount:  10000,
			weights: []Weight{{"A", 50}, {"B", 30}, {"C", 20}},
			want:    map[string]money.Money{"A": 5000, "B": 3000, "C": 2000},
		},
		{
			name:    "thirds",
			amount:  1000,
			weights: []Weight{{"A", 1}, {"B", 1}, {"C", 1}},
			want:    map[string]money.Money{"A": 334, "B": 333, "C": 333},
		},
		{
			name:    "largest remainder wins the cent",
			amount:  100,
			weights: []Weight{{"A", 1}, {"B", 2}},
			// 33.33 and 66.67: B has the larger remainder
			want: map[string]money.Money{"A": 33, "B": 67},
		},
		{
			name:    "zero weight gets nothing",
			amount:  500,
			weights: []Weight{{"A", 0}, {"B", 1}},
			want:    map[string]money.Money{"A": 0, "B": 500},
		},
		{
			name:    "all zero weights",
			amount:  500,
			weights: []Weight{{"A", 0}},
			wantErr: ErrInvalidWeights,
		},
		{
			name:    "negative weight",
			amount:  500,
			weights: []Weight{{"A", -1}, {"B", 2}},
			wantErr: ErrInvalidWeights,
		},
		{
			name:    "large amounts do not overflow",
			amount:  1 << 50,
			weights: []Weight{{"A", 1 << 40}, {"B", 1 << 40}},
			want:    map[string]money.Money{"A": 1 << 49, "B": 1 << 49},
		},
		{
			name:    "weights whose sum overflows",
			amount:  100,
			weights: []Weight{{"A", math.MaxInt64}, {"B", 2}},
			wantErr: ErrInvalidWeights,
		},
		{
			name:    "max weight alone",
			amount:  100,
			weights: []Weight{{"A", math.MaxInt64}, {"B", 0}},
			want:    map[string]money.Money{"A": 100, "B": 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WeightedShares(tt.amount, tt.weights)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for id, w := range tt.want {
				if got[id] != w {
					t.Errorf("%s = %d, want %d", id, got[id], w)
				}
			}
			if sumShares(got) != tt.amount {
				t.Errorf("sum = %d, want %d", sumShares(got), tt.amount)
			}
		})
	}
}
