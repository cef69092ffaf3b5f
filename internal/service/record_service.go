package service

import (
	"context"
	"fmt"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/mmynk/settleup/internal/calculator"
	"github.com/mmynk/settleup/internal/events"
	"github.com/mmynk/settleup/internal/ledger"
	"github.com/mmynk/settleup/internal/middleware"
	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/money"
	"github.com/mmynk/settleup/internal/recorder"
	v1 "github.com/mmynk/settleup/pkg/api/settleupv1"
)

// recordFunc appends one transaction to a ledger snapshot.
type recordFunc func(l *ledger.Ledger) (*ledger.Ledger, models.Transaction, error)

// record runs fn against the current ledger of scopeID while holding the
// scope lock, stores the new transaction and announces it.
func (s *LedgerService) record(ctx context.Context, scopeID string, fn recordFunc) (*ledger.Ledger, models.Transaction, error) {
	unlock, err := s.locker.Lock(ctx, scopeID)
	if err != nil {
		return nil, models.Transaction{}, fmt.Errorf("failed to lock scope: %w", err)
	}
	defer unlock()

	l, err := s.store.LoadLedger(ctx, scopeID)
	if err != nil {
		return nil, models.Transaction{}, err
	}

	next, tx, err := fn(l)
	if err != nil {
		s.metrics.ObserveRejection(err)
		return nil, models.Transaction{}, err
	}

	if err := s.store.AppendTransaction(ctx, scopeID, tx); err != nil {
		return nil, models.Transaction{}, fmt.Errorf("failed to store transaction: %w", err)
	}
	s.metrics.ObserveAppend(tx.Kind)

	// The write is committed; a lost event must not fail the request
	if err := s.publisher.Publish(ctx, events.NewTransactionRecorded(scopeID, tx)); err != nil {
		s.logger.Error("Failed to publish event",
			"scope_id", scopeID,
			"transaction_id", tx.ID,
			"error", err,
		)
	}

	return next, tx, nil
}

func commonOptions(ctx context.Context, description string, at *timestamppb.Timestamp) ([]recorder.Option, error) {
	when, err := occurredAt(at)
	if err != nil {
		return nil, err
	}
	return []recorder.Option{
		recorder.WithDescription(description),
		recorder.RecordedBy(middleware.GetUserID(ctx)),
		recorder.At(when),
	}, nil
}

// RecordExpense records an expense paid by one member.
func (s *LedgerService) RecordExpense(ctx context.Context, req *connect.Request[v1.RecordExpenseRequest]) (*connect.Response[v1.RecordExpenseResponse], error) {
	s.logger.Info("RecordExpense request received",
		"scope_id", req.Msg.ScopeId,
		"payer_id", req.Msg.PayerId,
		"amount", req.Msg.Amount,
	)

	if req.Msg.ScopeId == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, ErrMissingScopeID)
	}
	amount, err := money.ParseAmount(req.Msg.Amount)
	if err != nil {
		return nil, toConnectError(err)
	}
	shares, err := expenseShares(req.Msg, amount)
	if err != nil {
		s.logger.Warn("RecordExpense rejected", "scope_id", req.Msg.ScopeId, "error", err)
		return nil, toConnectError(err)
	}

	opts, err := commonOptions(ctx, req.Msg.Description, req.Msg.OccurredAt)
	if err != nil {
		return nil, toConnectError(err)
	}
	l, tx, err := s.record(ctx, req.Msg.ScopeId, func(l *ledger.Ledger) (*ledger.Ledger, models.Transaction, error) {
		return s.recorder.RecordExpense(l, req.Msg.PayerId, amount, shares, opts...)
	})
	if err != nil {
		s.logger.Error("RecordExpense failed", "scope_id", req.Msg.ScopeId, "error", err)
		return nil, toConnectError(err)
	}

	standing, err := s.standing(ctx, l)
	if err != nil {
		return nil, toConnectError(err)
	}

	s.logger.Info("Expense recorded", "scope_id", req.Msg.ScopeId, "transaction_id", tx.ID, "participants", len(tx.Shares))

	return connect.NewResponse(&v1.RecordExpenseResponse{
		Transaction: toAPITransaction(tx),
		Standing:    standing,
	}), nil
}

// expenseShares builds exact shares from whichever split the request names.
func expenseShares(msg *v1.RecordExpenseRequest, amount money.Money) (map[string]money.Money, error) {
	modes := 0
	for _, set := range []bool{len(msg.Shares) > 0, len(msg.Weights) > 0, len(msg.Items) > 0} {
		if set {
			modes++
		}
	}
	if modes > 1 {
		return nil, ErrAmbiguousSplit
	}

	switch {
	case len(msg.Shares) > 0:
		return parseShares(msg.Shares)
	case len(msg.Weights) > 0:
		return calculator.WeightedShares(amount, toWeights(msg.Weights))
	case len(msg.Items) > 0:
		items, err := parseItems(msg.Items)
		if err != nil {
			return nil, err
		}
		splits, err := calculator.ItemizedSplit(items, amount, msg.Participants)
		if err != nil {
			return nil, err
		}
		return calculator.Shares(splits), nil
	case len(msg.Participants) > 0:
		return calculator.EqualShares(amount, msg.Participants)
	}
	return nil, ErrNoSplit
}

// RecordSettlement records a full or partial payment between two members.
func (s *LedgerService) RecordSettlement(ctx context.Context, req *connect.Request[v1.RecordSettlementRequest]) (*connect.Response[v1.RecordSettlementResponse], error) {
	s.logger.Info("RecordSettlement request received",
		"scope_id", req.Msg.ScopeId,
		"from_id", req.Msg.FromId,
		"to_id", req.Msg.ToId,
		"amount", req.Msg.Amount,
		"partial", req.Msg.Partial,
	)

	if req.Msg.ScopeId == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, ErrMissingScopeID)
	}
	amount, err := money.ParseAmount(req.Msg.Amount)
	if err != nil {
		return nil, toConnectError(err)
	}

	settle := s.recorder.RecordFullSettlement
	if req.Msg.Partial {
		settle = s.recorder.RecordPartialSettlement
	}
	opts, err := commonOptions(ctx, req.Msg.Description, req.Msg.OccurredAt)
	if err != nil {
		return nil, toConnectError(err)
	}
	l, tx, err := s.record(ctx, req.Msg.ScopeId, func(l *ledger.Ledger) (*ledger.Ledger, models.Transaction, error) {
		return settle(l, req.Msg.FromId, req.Msg.ToId, amount, opts...)
	})
	if err != nil {
		s.logger.Error("RecordSettlement failed", "scope_id", req.Msg.ScopeId, "error", err)
		return nil, toConnectError(err)
	}

	standing, err := s.standing(ctx, l)
	if err != nil {
		return nil, toConnectError(err)
	}

	s.logger.Info("Settlement recorded", "scope_id", req.Msg.ScopeId, "transaction_id", tx.ID, "partial", req.Msg.Partial)

	return connect.NewResponse(&v1.RecordSettlementResponse{
		Transaction: toAPITransaction(tx),
		Standing:    standing,
	}), nil
}

// RecordReminder records that one member reminded another to pay. Without an
// explicit amount the reminder carries what the current plan has the target
// paying the sender.
func (s *LedgerService) RecordReminder(ctx context.Context, req *connect.Request[v1.RecordReminderRequest]) (*connect.Response[v1.RecordReminderResponse], error) {
	s.logger.Info("RecordReminder request received",
		"scope_id", req.Msg.ScopeId,
		"from_id", req.Msg.FromId,
		"target_id", req.Msg.TargetId,
	)

	if req.Msg.ScopeId == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, ErrMissingScopeID)
	}
	var explicit *money.Money
	if req.Msg.Amount != "" {
		amount, err := money.ParseAmount(req.Msg.Amount)
		if err != nil {
			return nil, toConnectError(err)
		}
		explicit = &amount
	}

	opts, err := commonOptions(ctx, "", nil)
	if err != nil {
		return nil, toConnectError(err)
	}
	l, tx, err := s.record(ctx, req.Msg.ScopeId, func(l *ledger.Ledger) (*ledger.Ledger, models.Transaction, error) {
		amount := money.Zero
		if explicit != nil {
			amount = *explicit
		} else if planned, err := plannedAmount(l, req.Msg.TargetId, req.Msg.FromId); err == nil {
			amount = planned
		}
		return s.recorder.RecordReminder(l, req.Msg.FromId, req.Msg.TargetId, append(opts, recorder.RemindAbout(amount))...)
	})
	if err != nil {
		s.logger.Error("RecordReminder failed", "scope_id", req.Msg.ScopeId, "error", err)
		return nil, toConnectError(err)
	}

	standing, err := s.standing(ctx, l)
	if err != nil {
		return nil, toConnectError(err)
	}

	s.logger.Info("Reminder recorded", "scope_id", req.Msg.ScopeId, "transaction_id", tx.ID, "amount", tx.Amount.String())

	return connect.NewResponse(&v1.RecordReminderResponse{
		Transaction: toAPITransaction(tx),
		Standing:    standing,
	}), nil
}

// plannedAmount returns what the current plan has from paying to.
func plannedAmount(l *ledger.Ledger, from, to string) (money.Money, error) {
	plan, err := calculator.Plan(calculator.ComputeBalances(l))
	if err != nil {
		return money.Zero, err
	}
	for _, in := range plan {
		if in.From == from && in.To == to {
			return in.Amount, nil
		}
	}
	return money.Zero, nil
}
