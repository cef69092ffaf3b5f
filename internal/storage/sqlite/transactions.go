package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/mmynk/settleup/internal/ledger"
	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/money"
)

// AppendTransaction stores tx and its shares at the end of the scope's ledger.
func (s *SQLiteStore) AppendTransaction(ctx context.Context, scopeID string, t models.Transaction) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := scopeExists(ctx, tx, scopeID); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO transactions (id, scope_id, kind, payer_id, counterparty_id, amount_cents, occurred_at, description, recorded_by)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, scopeID, string(t.Kind), t.PayerID, t.Counterparty(), t.Amount.Cents(),
		t.Timestamp.UnixNano(), t.Description, t.RecordedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	for _, memberID := range t.Participants() {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO transaction_shares (transaction_id, member_id, amount_cents) VALUES (?, ?, ?)",
			t.ID, memberID, t.Shares[memberID].Cents(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert share: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// LoadLedger reads the scope's roster and transactions and replays them into
// a fresh ledger, so stored data goes through the same validation as new data.
func (s *SQLiteStore) LoadLedger(ctx context.Context, scopeID string) (*ledger.Ledger, error) {
	scope, err := s.GetScope(ctx, scopeID)
	if err != nil {
		return nil, err
	}
	txs, err := s.ListTransactions(ctx, scopeID, 0, 0)
	if err != nil {
		return nil, err
	}
	l, err := ledger.Load(scope.ID, scope.Members, txs)
	if err != nil {
		return nil, fmt.Errorf("stored ledger for scope %s is invalid: %w", scopeID, err)
	}
	return l, nil
}

// ListTransactions returns the scope's transactions in ledger order.
func (s *SQLiteStore) ListTransactions(ctx context.Context, scopeID string, limit, offset int) ([]models.Transaction, error) {
	if err := scopeExists(ctx, s.db, scopeID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, kind, payer_id, counterparty_id, amount_cents, occurred_at, description, recorded_by
		 FROM transactions WHERE scope_id = ? ORDER BY seq LIMIT ? OFFSET ?`,
		scopeID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txs []models.Transaction
	byID := make(map[string]int)
	for rows.Next() {
		var (
			t            models.Transaction
			kind         string
			counterparty string
			cents        int64
			occurredAt   int64
		)
		if err := rows.Scan(&t.ID, &kind, &t.PayerID, &counterparty, &cents, &occurredAt, &t.Description, &t.RecordedBy); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		t.Kind = models.TransactionKind(kind)
		t.Amount = money.FromCents(cents)
		t.Timestamp = time.Unix(0, occurredAt).UTC()
		switch t.Kind {
		case models.KindSettlement:
			t.ReceiverID = counterparty
		case models.KindReminder:
			t.TargetID = counterparty
		}
		byID[t.ID] = len(txs)
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	if err := s.loadShares(ctx, scopeID, txs, byID); err != nil {
		return nil, err
	}
	return txs, nil
}

// loadShares fills in the shares of the expenses in txs with one query for
// the whole scope.
func (s *SQLiteStore) loadShares(ctx context.Context, scopeID string, txs []models.Transaction, byID map[string]int) error {
	if len(txs) == 0 {
		return nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT sh.transaction_id, sh.member_id, sh.amount_cents
		 FROM transaction_shares sh
		 JOIN transactions t ON t.id = sh.transaction_id
		 WHERE t.scope_id = ?`,
		scopeID,
	)
	if err != nil {
		return fmt.Errorf("failed to get shares: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			txID, memberID string
			cents          int64
		)
		if err := rows.Scan(&txID, &memberID, &cents); err != nil {
			return fmt.Errorf("failed to scan share: %w", err)
		}
		i, ok := byID[txID]
		if !ok {
			continue // outside the requested page
		}
		if txs[i].Shares == nil {
			txs[i].Shares = make(map[string]money.Money)
		}
		txs[i].Shares[memberID] = money.FromCents(cents)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate shares: %w", err)
	}
	return nil
}

