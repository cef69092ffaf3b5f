package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/settleup/internal/ledger"
	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/money"
)

func buildLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	ts := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	members := []models.Member{{ID: "A"}, {ID: "B"}, {ID: "C"}}
	txs := []models.Transaction{
		{ID: "e1", Kind: models.KindExpense, PayerID: "A", Amount: 3000, Timestamp: ts,
			Shares: map[string]money.Money{"A": 1000, "B": 1000, "C": 1000}},
		{ID: "e2", Kind: models.KindExpense, PayerID: "C", Amount: 2000, Timestamp: ts,
			Shares: map[string]money.Money{"A": 1000, "C": 1000}},
		{ID: "e3", Kind: models.KindExpense, PayerID: "B", Amount: 500, Timestamp: ts,
			Shares: map[string]money.Money{"A": 500, "B": 0}},
		{ID: "e4", Kind: models.KindExpense, PayerID: "A", Amount: 800, Timestamp: ts,
			Shares: map[string]money.Money{"A": 800, "B": 0}},
		{ID: "s1", Kind: models.KindSettlement, PayerID: "B", ReceiverID: "A", Amount: 1000, Timestamp: ts},
		{ID: "r1", Kind: models.KindReminder, PayerID: "A", TargetID: "B", Timestamp: ts},
	}
	l, err := ledger.Load("scope-1", members, txs)
	require.NoError(t, err)
	return l
}

func ids(txs []models.Transaction) []string {
	out := make([]string, len(txs))
	for i, tx := range txs {
		out[i] = tx.ID
	}
	return out
}

func TestFindBetween(t *testing.T) {
	l := buildLedger(t)

	tests := []struct {
		name string
		a, b string
		want []string
	}{
		{name: "payer and participant in both directions", a: "A", b: "B", want: []string{"e1", "e3"}},
		{name: "argument order does not matter", a: "B", b: "A", want: []string{"e1", "e3"}},
		{name: "pair with one shared expense each way", a: "A", b: "C", want: []string{"e1", "e2"}},
		{name: "neither paid for the other", a: "B", b: "C", want: []string{}},
		{name: "same member", a: "A", b: "A", want: []string{}},
		{name: "unknown member", a: "A", b: "Z", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FindBetween(l, tt.a, tt.b)))
		})
	}
}

func TestFindBetween_ReturnsCopies(t *testing.T) {
	l := buildLedger(t)
	got := FindBetween(l, "A", "B")
	require.NotEmpty(t, got)
	got[0].Shares["B"] = 0

	again := FindBetween(l, "A", "B")
	assert.Equal(t, money.Money(1000), again[0].Shares["B"])
}
