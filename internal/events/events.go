// Package events publishes recorded ledger transactions for collaborators
// outside the service, such as the notification sender that acts on reminders.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/mmynk/settleup/internal/models"
)

// TypeTransactionRecorded is the event type of TransactionRecorded messages.
const TypeTransactionRecorded = "ledger.transaction.recorded"

// TransactionRecorded is emitted after a transaction has been appended and stored.
type TransactionRecorded struct {
	ScopeID        string            `json:"scope_id"`
	TransactionID  string            `json:"transaction_id"`
	Kind           string            `json:"kind"`
	PayerID        string            `json:"payer_id"`
	CounterpartyID string            `json:"counterparty_id,omitempty"`
	Amount         string            `json:"amount"`
	AmountCents    int64             `json:"amount_cents"`
	Shares         map[string]string `json:"shares,omitempty"`
	Description    string            `json:"description,omitempty"`
	RecordedBy     string            `json:"recorded_by,omitempty"`
	OccurredAt     time.Time         `json:"occurred_at"`
	PublishedAt    time.Time         `json:"published_at"`
}

// NewTransactionRecorded builds the event for tx in scopeID.
func NewTransactionRecorded(scopeID string, tx models.Transaction) *TransactionRecorded {
	msg := &TransactionRecorded{
		ScopeID:        scopeID,
		TransactionID:  tx.ID,
		Kind:           string(tx.Kind),
		PayerID:        tx.PayerID,
		CounterpartyID: tx.Counterparty(),
		Amount:         tx.Amount.String(),
		AmountCents:    tx.Amount.Cents(),
		Description:    tx.Description,
		RecordedBy:     tx.RecordedBy,
		OccurredAt:     tx.Timestamp,
		PublishedAt:    time.Now().UTC(),
	}
	if len(tx.Shares) > 0 {
		msg.Shares = make(map[string]string, len(tx.Shares))
		for id, share := range tx.Shares {
			msg.Shares[id] = share.String()
		}
	}
	return msg
}

// ToJSON converts the message to JSON bytes
func (m *TransactionRecorded) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// TransactionRecordedFromJSON decodes a message produced by ToJSON.
func TransactionRecordedFromJSON(data []byte) (*TransactionRecorded, error) {
	var msg TransactionRecorded
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// Publisher delivers events. Publish errors are reported to the caller, who
// decides whether they matter; the ledger write has already happened.
type Publisher interface {
	Publish(ctx context.Context, msg *TransactionRecorded) error
	Close() error
}

// LogPublisher writes events to the structured log. It is the default when
// no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher returns a LogPublisher. A nil logger means slog.Default().
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

// Publish implements Publisher.
func (p *LogPublisher) Publish(ctx context.Context, msg *TransactionRecorded) error {
	p.logger.InfoContext(ctx, "Transaction recorded",
		"event", TypeTransactionRecorded,
		"scope_id", msg.ScopeID,
		"transaction_id", msg.TransactionID,
		"kind", msg.Kind,
		"payer_id", msg.PayerID,
		"counterparty_id", msg.CounterpartyID,
		"amount", msg.Amount)
	return nil
}

// Close implements Publisher.
func (p *LogPublisher) Close() error { return nil }
