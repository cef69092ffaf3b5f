package events

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/money"
)

type fakeChannel struct {
	declareErr error
	publishErr error
	exchanges  []string
	queues     []string
	bindings   [][3]string
	published  []amqp091.Publishing
	keys       []string
	closed     bool
}

func (f *fakeChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error {
	if f.declareErr != nil {
		return f.declareErr
	}
	f.exchanges = append(f.exchanges, name+":"+kind)
	return nil
}

func (f *fakeChannel) QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp091.Table) (amqp091.Queue, error) {
	f.queues = append(f.queues, name)
	return amqp091.Queue{Name: name}, nil
}

func (f *fakeChannel) QueueBind(name, key, exchange string, noWait bool, args amqp091.Table) error {
	f.bindings = append(f.bindings, [3]string{name, key, exchange})
	return nil
}

func (f *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.keys = append(f.keys, exchange+"/"+key)
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

type fakeConn struct{ closed bool }

func (c *fakeConn) Close() error {
	c.closed = true
	return nil
}

func settlementTx() models.Transaction {
	return models.Transaction{
		ID:          "tx-1",
		Kind:        models.KindSettlement,
		PayerID:     "B",
		ReceiverID:  "A",
		Amount:      money.FromCents(4000),
		Timestamp:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Description: "paid back",
		RecordedBy:  "user-b",
	}
}

func TestNewTransactionRecorded(t *testing.T) {
	msg := NewTransactionRecorded("scope-1", settlementTx())
	assert.Equal(t, "scope-1", msg.ScopeID)
	assert.Equal(t, "settlement", msg.Kind)
	assert.Equal(t, "A", msg.CounterpartyID)
	assert.Equal(t, "40.00", msg.Amount)
	assert.Equal(t, int64(4000), msg.AmountCents)
	assert.Nil(t, msg.Shares)

	expense := models.Transaction{
		ID: "tx-2", Kind: models.KindExpense, PayerID: "A", Amount: 1001,
		Shares: map[string]money.Money{"A": 501, "B": 500},
	}
	msg = NewTransactionRecorded("scope-1", expense)
	assert.Equal(t, map[string]string{"A": "5.01", "B": "5.00"}, msg.Shares)
	assert.Empty(t, msg.CounterpartyID)

	body, err := msg.ToJSON()
	require.NoError(t, err)
	decoded, err := TransactionRecordedFromJSON(body)
	require.NoError(t, err)
	assert.Equal(t, msg.Shares, decoded.Shares)
	assert.True(t, msg.PublishedAt.Equal(decoded.PublishedAt))
}

func TestAMQPPublisher_Setup(t *testing.T) {
	ch := &fakeChannel{}
	p, err := newAMQPPublisher(&fakeConn{}, ch, "settleup", "ledger_events")
	require.NoError(t, err)
	defer p.Close()

	assert.Equal(t, []string{"settleup:direct"}, ch.exchanges)
	assert.Equal(t, []string{"ledger_events"}, ch.queues)
	assert.Equal(t, [][3]string{{"ledger_events", "ledger_events", "settleup"}}, ch.bindings)
}

func TestAMQPPublisher_SetupFailureCloses(t *testing.T) {
	ch := &fakeChannel{declareErr: errors.New("access refused")}
	conn := &fakeConn{}
	_, err := newAMQPPublisher(conn, ch, "settleup", "ledger_events")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "declare exchange")
	assert.True(t, ch.closed)
	assert.True(t, conn.closed)
}

func TestAMQPPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	p, err := newAMQPPublisher(&fakeConn{}, ch, "settleup", "ledger_events")
	require.NoError(t, err)

	require.NoError(t, p.Publish(context.Background(), NewTransactionRecorded("scope-1", settlementTx())))
	require.Len(t, ch.published, 1)

	pub := ch.published[0]
	assert.Equal(t, "settleup/ledger_events", ch.keys[0])
	assert.Equal(t, "application/json", pub.ContentType)
	assert.Equal(t, amqp091.Persistent, pub.DeliveryMode)
	assert.Equal(t, TypeTransactionRecorded, pub.Type)
	assert.Equal(t, "tx-1", pub.MessageId)

	msg, err := TransactionRecordedFromJSON(pub.Body)
	require.NoError(t, err)
	assert.Equal(t, "tx-1", msg.TransactionID)
	assert.Equal(t, "B", msg.PayerID)

	ch.publishErr = errors.New("channel closed")
	err = p.Publish(context.Background(), NewTransactionRecorded("scope-1", settlementTx()))
	assert.ErrorContains(t, err, "publish message")
}

func TestLogPublisher(t *testing.T) {
	var buf bytes.Buffer
	p := NewLogPublisher(slog.New(slog.NewTextHandler(&buf, nil)))
	require.NoError(t, p.Publish(context.Background(), NewTransactionRecorded("scope-1", settlementTx())))
	assert.Contains(t, buf.String(), "transaction_id=tx-1")
	assert.Contains(t, buf.String(), "event="+TypeTransactionRecorded)
	assert.NoError(t, p.Close())
}
