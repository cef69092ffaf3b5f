// Package history answers "why does B owe A" by listing the expenses a pair
// of members shares.
package history

import (
	"github.com/mmynk/settleup/internal/ledger"
	"github.com/mmynk/settleup/internal/models"
)

// FindBetween returns, in ledger order, the expenses where one of a and b
// paid and the other holds a nonzero share.
func FindBetween(l *ledger.Ledger, a, b string) []models.Transaction {
	if a == b {
		return nil
	}
	var out []models.Transaction
	for _, tx := range l.All() {
		if tx.Kind != models.KindExpense {
			continue
		}
		if involves(tx, a, b) || involves(tx, b, a) {
			out = append(out, tx)
		}
	}
	return out
}

func involves(tx models.Transaction, payer, participant string) bool {
	return tx.PayerID == payer && !tx.Shares[participant].IsZero()
}
