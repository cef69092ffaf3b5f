package models

// ScopeKind distinguishes shared groups from events. The distinction is for
// presentation only; balances are computed identically for both.
type ScopeKind string

const (
	ScopeGroup ScopeKind = "group"
	ScopeEvent ScopeKind = "event"
)

// Valid reports whether k is a known scope kind.
func (k ScopeKind) Valid() bool {
	return k == ScopeGroup || k == ScopeEvent
}

// Scope is a group or event whose members' balances are netted together.
type Scope struct {
	// ID is the unique identifier for the scope (UUID format).
	ID string

	// Name is the display name (e.g., "Roommates", "Lisbon trip").
	Name string

	// Kind is either ScopeGroup or ScopeEvent.
	Kind ScopeKind

	// Currency is an ISO 4217 code used for display. No conversion is ever done.
	Currency string

	// Members is the roster, in the order members joined.
	Members []Member

	// CreatedAt is the Unix timestamp when the scope was created.
	CreatedAt int64
}

// Member is an identity within one scope.
type Member struct {
	// ID is stable and unique within the scope.
	ID string

	// DisplayName is what the UI shows.
	DisplayName string

	// UserID optionally links the member to a registered account.
	UserID string
}

// MemberIDs returns the roster ids in join order.
func (s *Scope) MemberIDs() []string {
	ids := make([]string, len(s.Members))
	for i, m := range s.Members {
		ids[i] = m.ID
	}
	return ids
}

// MemberForUser finds the member linked to userID.
func (s *Scope) MemberForUser(userID string) (Member, bool) {
	if userID == "" {
		return Member{}, false
	}
	for _, m := range s.Members {
		if m.UserID == userID {
			return m, true
		}
	}
	return Member{}, false
}
