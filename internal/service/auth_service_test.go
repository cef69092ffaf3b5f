package service

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/settleup/internal/auth"
	"github.com/mmynk/settleup/internal/middleware"
	"github.com/mmynk/settleup/internal/storage/sqlite"
	v1 "github.com/mmynk/settleup/pkg/api/settleupv1"
	"github.com/mmynk/settleup/pkg/api/settleupv1/settleupv1connect"
)

func setupAuthTestServer(t *testing.T) (settleupv1connect.AuthServiceClient, *auth.JWTManager) {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "auth.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	svc := NewAuthService(
		auth.NewPasswordAuthenticator(store, auth.WithBcryptCost(bcrypt.MinCost)),
		store,
		jwtManager,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	path, handler := settleupv1connect.NewAuthServiceHandler(svc,
		connect.WithInterceptors(middleware.OptionalAuth(jwtManager)),
	)
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)

	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return settleupv1connect.NewAuthServiceClient(http.DefaultClient, server.URL), jwtManager
}

func register(t *testing.T, client settleupv1connect.AuthServiceClient) *v1.RegisterResponse {
	t.Helper()
	resp, err := client.Register(context.Background(), connect.NewRequest(&v1.RegisterRequest{
		Email:       "alice@example.com",
		Password:    "correct horse",
		DisplayName: "Alice",
	}))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	return resp.Msg
}

func TestRegister(t *testing.T) {
	client, jwtManager := setupAuthTestServer(t)

	resp := register(t, client)

	if resp.User.Id == "" {
		t.Error("expected non-empty user ID")
	}
	if resp.User.DisplayName != "Alice" {
		t.Errorf("display name: expected 'Alice', got '%s'", resp.User.DisplayName)
	}
	if resp.User.GetCreatedAt().GetSeconds() == 0 {
		t.Error("expected non-zero CreatedAt")
	}

	claims, err := jwtManager.Validate(resp.Token)
	if err != nil {
		t.Fatalf("token does not validate: %v", err)
	}
	if claims.UserID != resp.User.Id {
		t.Errorf("token user: expected %s, got %s", resp.User.Id, claims.UserID)
	}
}

func TestRegister_Errors(t *testing.T) {
	client, _ := setupAuthTestServer(t)
	register(t, client)

	tests := []struct {
		name string
		req  *v1.RegisterRequest
		code connect.Code
	}{
		{"duplicate email", &v1.RegisterRequest{Email: "alice@example.com", Password: "another one", DisplayName: "A"}, connect.CodeAlreadyExists},
		{"duplicate email other case", &v1.RegisterRequest{Email: "Alice@Example.com", Password: "another one", DisplayName: "A"}, connect.CodeAlreadyExists},
		{"weak password", &v1.RegisterRequest{Email: "bob@example.com", Password: "short", DisplayName: "Bob"}, connect.CodeInvalidArgument},
		{"invalid email", &v1.RegisterRequest{Email: "bob", Password: "long enough", DisplayName: "Bob"}, connect.CodeInvalidArgument},
		{"missing email", &v1.RegisterRequest{Password: "long enough", DisplayName: "Bob"}, connect.CodeInvalidArgument},
		{"missing display name", &v1.RegisterRequest{Email: "bob@example.com", Password: "long enough"}, connect.CodeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.Register(context.Background(), connect.NewRequest(tt.req))
			assertCode(t, err, tt.code)
		})
	}
}

func TestLogin(t *testing.T) {
	client, _ := setupAuthTestServer(t)
	registered := register(t, client)

	resp, err := client.Login(context.Background(), connect.NewRequest(&v1.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct horse",
	}))
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Msg.User.Id != registered.User.Id {
		t.Errorf("expected user %s, got %s", registered.User.Id, resp.Msg.User.Id)
	}
	if resp.Msg.Token == "" {
		t.Error("expected a token")
	}

	_, err = client.Login(context.Background(), connect.NewRequest(&v1.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong password",
	}))
	assertCode(t, err, connect.CodeUnauthenticated)

	_, err = client.Login(context.Background(), connect.NewRequest(&v1.LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct horse",
	}))
	assertCode(t, err, connect.CodeUnauthenticated)
}

func TestGetCurrentUser(t *testing.T) {
	client, _ := setupAuthTestServer(t)
	registered := register(t, client)

	req := connect.NewRequest(&v1.GetCurrentUserRequest{})
	req.Header().Set("Authorization", "Bearer "+registered.Token)
	resp, err := client.GetCurrentUser(context.Background(), req)
	if err != nil {
		t.Fatalf("GetCurrentUser failed: %v", err)
	}
	if resp.Msg.User.Email != "alice@example.com" || resp.Msg.User.DisplayName != "Alice" {
		t.Errorf("unexpected user: %+v", resp.Msg.User)
	}

	_, err = client.GetCurrentUser(context.Background(), connect.NewRequest(&v1.GetCurrentUserRequest{}))
	assertCode(t, err, connect.CodeUnauthenticated)
}
