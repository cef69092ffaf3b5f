package service

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/mmynk/settleup/internal/calculator"
	"github.com/mmynk/settleup/internal/ledger"
	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/money"
	"github.com/mmynk/settleup/internal/recorder"
	v1 "github.com/mmynk/settleup/pkg/api/settleupv1"
)

func toAPIScope(scope *models.Scope) *v1.Scope {
	return &v1.Scope{
		Id:        scope.ID,
		Name:      scope.Name,
		Kind:      string(scope.Kind),
		Currency:  scope.Currency,
		Members:   toAPIMembers(scope.Members),
		CreatedAt: timestamppb.New(time.Unix(scope.CreatedAt, 0)),
	}
}

func toAPIMembers(members []models.Member) []*v1.Member {
	out := make([]*v1.Member, len(members))
	for i, m := range members {
		out[i] = &v1.Member{
			Id:          m.ID,
			DisplayName: m.DisplayName,
			UserId:      m.UserID,
		}
	}
	return out
}

// fromAPIMembers trims ids and falls back to the id as display name.
func fromAPIMembers(members []*v1.Member) []models.Member {
	out := make([]models.Member, 0, len(members))
	for _, m := range members {
		if m == nil {
			continue
		}
		member := models.Member{
			ID:          strings.TrimSpace(m.GetId()),
			DisplayName: strings.TrimSpace(m.GetDisplayName()),
			UserID:      m.GetUserId(),
		}
		if member.DisplayName == "" {
			member.DisplayName = member.ID
		}
		out = append(out, member)
	}
	return out
}

func toAPITransaction(tx models.Transaction) *v1.Transaction {
	out := &v1.Transaction{
		Id:          tx.ID,
		Kind:        string(tx.Kind),
		PayerId:     tx.PayerID,
		Amount:      tx.Amount.String(),
		ReceiverId:  tx.ReceiverID,
		TargetId:    tx.TargetID,
		Description: tx.Description,
		RecordedBy:  tx.RecordedBy,
		OccurredAt:  timestamppb.New(tx.Timestamp),
	}
	// Shares go out sorted by member so responses are stable
	for _, id := range slices.Sorted(maps.Keys(tx.Shares)) {
		out.Shares = append(out.Shares, &v1.Share{MemberId: id, Amount: tx.Shares[id].String()})
	}
	return out
}

func toAPITransactions(txs []models.Transaction) []*v1.Transaction {
	out := make([]*v1.Transaction, len(txs))
	for i, tx := range txs {
		out[i] = toAPITransaction(tx)
	}
	return out
}

func toAPIBalances(l *ledger.Ledger, summary []calculator.MemberBalance) []*v1.Balance {
	out := make([]*v1.Balance, len(summary))
	for i, b := range summary {
		name := b.MemberID
		if m, ok := l.Member(b.MemberID); ok && m.DisplayName != "" {
			name = m.DisplayName
		}
		out[i] = &v1.Balance{
			MemberId:    b.MemberID,
			DisplayName: name,
			Net:         b.Net.String(),
			TotalPaid:   b.TotalPaid.String(),
			TotalOwed:   b.TotalOwed.String(),
		}
	}
	return out
}

func toAPIPlan(tracked []recorder.TrackedInstruction) []*v1.Instruction {
	out := make([]*v1.Instruction, len(tracked))
	for i, t := range tracked {
		in := &v1.Instruction{
			FromId:    t.From,
			ToId:      t.To,
			Amount:    t.Amount.String(),
			Status:    string(t.Status),
			PaidSoFar: t.PaidSoFar.String(),
			Reminders: int32(t.Reminders),
		}
		if !t.LastRemindedAt.IsZero() {
			in.LastRemindedAt = timestamppb.New(t.LastRemindedAt)
		}
		out[i] = in
	}
	return out
}

// occurredAt converts an optional timestamp. Unset means "now", which the
// recorder reads as the zero time.
func occurredAt(ts *timestamppb.Timestamp) (time.Time, error) {
	if ts == nil || (ts.GetSeconds() == 0 && ts.GetNanos() == 0) {
		return time.Time{}, nil
	}
	if err := ts.CheckValid(); err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidTimestamp, err)
	}
	return ts.AsTime().UTC(), nil
}

// parseShares converts exact per-member shares. A member may appear once.
func parseShares(shares []*v1.Share) (map[string]money.Money, error) {
	out := make(map[string]money.Money, len(shares))
	for _, share := range shares {
		id := share.GetMemberId()
		if _, dup := out[id]; dup {
			return nil, fmt.Errorf("%w: %s", calculator.ErrDuplicateParticipant, id)
		}
		amt, err := money.ParseAmount(share.GetAmount())
		if err != nil {
			return nil, fmt.Errorf("share of %s: %w", id, err)
		}
		out[id] = amt
	}
	return out, nil
}

func parseItems(items []*v1.Item) ([]calculator.Item, error) {
	out := make([]calculator.Item, 0, len(items))
	for i, item := range items {
		if item == nil {
			continue
		}
		amt, err := money.ParseAmount(item.Amount)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, calculator.Item{
			Description: item.Description,
			Amount:      amt,
			AssignedTo:  item.AssignedTo,
		})
	}
	return out, nil
}

func toWeights(weights []*v1.Weight) []calculator.Weight {
	out := make([]calculator.Weight, 0, len(weights))
	for _, w := range weights {
		if w == nil {
			continue
		}
		out = append(out, calculator.Weight{ID: w.GetMemberId(), Weight: w.GetWeight()})
	}
	return out
}
