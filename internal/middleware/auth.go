package middleware

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
	"github.com/mmynk/settleup/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// UserIDKey is the context key for storing the authenticated user ID.
	UserIDKey contextKey = "user_id"
	// EmailKey is the context key for storing the authenticated user's email.
	EmailKey contextKey = "email"
)

// GetUserID extracts the user ID from the context.
// Returns empty string if not found.
func GetUserID(ctx context.Context) string {
	userID, _ := ctx.Value(UserIDKey).(string)
	return userID
}

// GetEmail extracts the user email from the context.
// Returns empty string if not found.
func GetEmail(ctx context.Context) string {
	email, _ := ctx.Value(EmailKey).(string)
	return email
}

// bearerToken extracts the token of an "Authorization: Bearer <token>"
// header. The scheme is matched case-insensitively.
func bearerToken(h http.Header) (string, error) {
	value := h.Get("Authorization")
	if value == "" {
		return "", auth.ErrMissingToken
	}
	scheme, token, ok := strings.Cut(strings.TrimSpace(value), " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", auth.ErrInvalidToken
	}
	return token, nil
}

// authenticate validates the request's token and returns ctx carrying the
// caller's identity.
func authenticate(ctx context.Context, jwtManager *auth.JWTManager, h http.Header) (context.Context, error) {
	token, err := bearerToken(h)
	if err != nil {
		return ctx, err
	}
	claims, err := jwtManager.Validate(token)
	if err != nil {
		return ctx, err
	}
	ctx = context.WithValue(ctx, UserIDKey, claims.UserID)
	ctx = context.WithValue(ctx, EmailKey, claims.Email)
	return ctx, nil
}

// RequireAuth returns an interceptor that rejects requests without a valid
// bearer token with CodeUnauthenticated. Accepted requests carry the user ID
// and email in their context.
func RequireAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			ctx, err := authenticate(ctx, jwtManager, req.Header())
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}
			return next(ctx, req)
		}
	}
}

// OptionalAuth returns an interceptor that identifies the caller when a valid
// token is present and lets every request through either way.
func OptionalAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			// Invalid tokens are treated like missing ones
			if authed, err := authenticate(ctx, jwtManager, req.Header()); err == nil {
				ctx = authed
			}
			return next(ctx, req)
		}
	}
}
