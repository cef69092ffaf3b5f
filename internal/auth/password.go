package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/storage"
)

const (
	minPasswordLength = 8
	// bcrypt ignores everything past 72 bytes.
	maxPasswordLength = 72
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWeakPassword       = fmt.Errorf("password must be at least %d characters", minPasswordLength)
	ErrPasswordTooLong    = fmt.Errorf("password must be at most %d bytes", maxPasswordLength)
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidEmail       = errors.New("invalid email address")
)

// UserStorage is the slice of the store the auth layer needs.
type UserStorage interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// PasswordAuthenticator stores bcrypt hashes of user passwords.
type PasswordAuthenticator struct {
	users UserStorage
	cost  int
}

// PasswordOption configures a PasswordAuthenticator.
type PasswordOption func(*PasswordAuthenticator)

// WithBcryptCost overrides bcrypt.DefaultCost. Tests use bcrypt.MinCost.
func WithBcryptCost(cost int) PasswordOption {
	return func(a *PasswordAuthenticator) {
		a.cost = cost
	}
}

func NewPasswordAuthenticator(users UserStorage, opts ...PasswordOption) *PasswordAuthenticator {
	a := &PasswordAuthenticator{users: users, cost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func checkPassword(password string) error {
	switch {
	case len(password) < minPasswordLength:
		return ErrWeakPassword
	case len(password) > maxPasswordLength:
		return ErrPasswordTooLong
	}
	return nil
}

// canonicalEmail lower-cases and trims email and rejects anything that is not
// a bare address ("Name <a@b>" is refused).
func canonicalEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}
	return email, nil
}

// Register creates a new account. Emails are unique case-insensitively.
func (a *PasswordAuthenticator) Register(ctx context.Context, email, displayName, credential string) (*models.User, error) {
	if err := checkPassword(credential); err != nil {
		return nil, err
	}
	email, err := canonicalEmail(email)
	if err != nil {
		return nil, err
	}

	existing, err := a.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(credential), a.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.NewUser(email, strings.TrimSpace(displayName), string(hash))
	err = a.users.CreateUser(ctx, user)
	switch {
	case errors.Is(err, storage.ErrEmailTaken):
		// A concurrent registration won the unique index.
		return nil, ErrEmailExists
	case err != nil:
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Authenticate returns the account for email if credential matches its hash.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, email, credential string) (*models.User, error) {
	email, err := canonicalEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	user, err := a.users.GetUserByEmail(ctx, email)
	if err != nil || user == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credential)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
