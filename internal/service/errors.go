package service

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/settleup/internal/calculator"
	"github.com/mmynk/settleup/internal/ledger"
	"github.com/mmynk/settleup/internal/money"
	"github.com/mmynk/settleup/internal/storage"
)

var (
	ErrMissingScopeID   = errors.New("scope_id is required")
	ErrMissingName      = errors.New("name is required")
	ErrInvalidKind      = errors.New("kind must be group or event")
	ErrNoSplit          = errors.New("one of shares, participants, weights or items is required")
	ErrAmbiguousSplit   = errors.New("only one of shares, weights or items may be given")
	ErrUnknownUser      = errors.New("user does not exist")
	ErrSelfNotMember    = errors.New("self_member_id is not among members")
	ErrInvalidPaging    = errors.New("limit and offset must not be negative")
	ErrInvalidTimestamp = errors.New("occurred_at is not a valid timestamp")
)

// requestErrors are caller mistakes that never reach the ledger.
var requestErrors = []error{
	ErrMissingScopeID,
	ErrMissingName,
	ErrInvalidKind,
	ErrNoSplit,
	ErrAmbiguousSplit,
	ErrUnknownUser,
	ErrSelfNotMember,
	ErrInvalidPaging,
	ErrInvalidTimestamp,
	money.ErrInvalidAmount,
	money.ErrNegativeAmount,
	calculator.ErrNoParticipants,
	calculator.ErrDuplicateParticipant,
	calculator.ErrUnknownParticipant,
	calculator.ErrInvalidWeights,
	calculator.ErrItemsExceedTotal,
	calculator.ErrNegativeAmount,
}

func isInvalidArgument(err error) bool {
	if ledger.IsValidation(err) {
		return true
	}
	for _, target := range requestErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// toConnectError picks the RPC code for an error coming out of the ledger,
// the calculator or the store.
func toConnectError(err error) *connect.Error {
	var connectErr *connect.Error
	switch {
	case errors.As(err, &connectErr):
		return connectErr
	case isInvalidArgument(err):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
