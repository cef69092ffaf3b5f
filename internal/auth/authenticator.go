package auth

import (
	"context"

	"github.com/mmynk/settleup/internal/models"
)

// Authenticator registers and verifies accounts. The service layer only sees
// this interface, so the credential kind (password today) can change without
// touching RPC handlers.
type Authenticator interface {
	// Register creates an account for email. The credential is validated by
	// the implementation before anything is stored.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate returns the account when email and credential match. Every
	// mismatch, including an unknown email, yields ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)
}

var _ Authenticator = (*PasswordAuthenticator)(nil)
