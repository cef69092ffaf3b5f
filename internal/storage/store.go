// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/settleup/internal/ledger"
	"github.com/mmynk/settleup/internal/models"
)

var (
	// ErrNotFound is wrapped by every error about a missing scope.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken is returned by CreateUser for an email already registered.
	ErrEmailTaken = errors.New("email already registered")
)

// Store defines the interface for scope and ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateScope persists a new scope with its initial roster.
	// The scope.ID and CreatedAt fields are populated by the store when empty.
	CreateScope(ctx context.Context, scope *models.Scope) error

	// GetScope retrieves a scope and its roster by ID.
	GetScope(ctx context.Context, scopeID string) (*models.Scope, error)

	// ListScopes returns the scopes userID is a member of, or every scope
	// when userID is empty, oldest first.
	ListScopes(ctx context.Context, userID string) ([]*models.Scope, error)

	// AddMembers appends members to a scope's roster.
	AddMembers(ctx context.Context, scopeID string, members []models.Member) error

	// LoadLedger rebuilds the scope's ledger from its stored transactions.
	LoadLedger(ctx context.Context, scopeID string) (*ledger.Ledger, error)

	// AppendTransaction stores one transaction at the end of the scope's ledger.
	// The transaction must already have been accepted by the in-memory ledger.
	AppendTransaction(ctx context.Context, scopeID string, tx models.Transaction) error

	// ListTransactions returns stored transactions in ledger order.
	// A limit of zero means no limit.
	ListTransactions(ctx context.Context, scopeID string, limit, offset int) ([]models.Transaction, error)

	// CreateUser inserts a new user.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail returns nil and no error when no user has that email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID returns nil and no error when the user does not exist.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// GetUsersByIDs returns the users that exist among ids, keyed by id.
	GetUsersByIDs(ctx context.Context, ids []string) (map[string]*models.User, error)

	// Close releases any resources held by the store.
	Close() error
}
