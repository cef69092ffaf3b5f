package ledger

import "errors"

// Validation errors. Every one of them is detected while appending, never
// later during balance computation. Use errors.Is to match.
var (
	ErrUnknownMember        = errors.New("unknown member")
	ErrShareSumMismatch     = errors.New("expense shares do not sum to amount")
	ErrSelfTransfer         = errors.New("payer and counterparty must be different members")
	ErrNegativeAmount       = errors.New("amount must not be negative")
	ErrEmptyTransactionID   = errors.New("transaction id is required")
	ErrDuplicateTransaction = errors.New("transaction already recorded")
	ErrUnknownKind          = errors.New("unknown transaction kind")
	ErrNoParticipants       = errors.New("expense must have at least one participant")
	ErrMissingMember        = errors.New("transaction is missing a member reference")

	ErrEmptyMemberID   = errors.New("member id is required")
	ErrDuplicateMember = errors.New("member already in scope")
)

var reasons = []struct {
	err    error
	reason string
}{
	{ErrUnknownMember, "unknown_member"},
	{ErrShareSumMismatch, "share_sum_mismatch"},
	{ErrSelfTransfer, "self_transfer"},
	{ErrNegativeAmount, "negative_amount"},
	{ErrEmptyTransactionID, "empty_id"},
	{ErrDuplicateTransaction, "duplicate"},
	{ErrUnknownKind, "unknown_kind"},
	{ErrNoParticipants, "no_participants"},
	{ErrMissingMember, "missing_member"},
	{ErrEmptyMemberID, "empty_member_id"},
	{ErrDuplicateMember, "duplicate_member"},
}

// IsValidation reports whether err is one of this package's validation errors.
func IsValidation(err error) bool {
	return Reason(err) != ""
}

// Reason returns a short stable label for a validation error, suitable for
// metrics. It returns "" for errors that did not come from validation.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}
	return ""
}
