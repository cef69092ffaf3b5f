package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mmynk/settleup/internal/auth"
	"github.com/mmynk/settleup/internal/metrics"
	"github.com/mmynk/settleup/internal/models"
	v1 "github.com/mmynk/settleup/pkg/api/settleupv1"
	"github.com/mmynk/settleup/pkg/api/settleupv1/settleupv1connect"
)

type ping struct{}

// capture is a terminal handler that remembers the context it was called with.
type capture struct {
	userID string
	email  string
	calls  int
	err    error
}

func (c *capture) next(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
	c.calls++
	c.userID = GetUserID(ctx)
	c.email = GetEmail(ctx)
	if c.err != nil {
		return nil, c.err
	}
	return connect.NewResponse(&ping{}), nil
}

func withAuthHeader(value string) *connect.Request[ping] {
	req := connect.NewRequest(&ping{})
	if value != "" {
		req.Header().Set("Authorization", value)
	}
	return req
}

func testToken(t *testing.T, m *auth.JWTManager) string {
	t.Helper()
	token, err := m.Generate(&models.User{ID: "user-1", Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return token
}

func TestRequireAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("secret", time.Hour)
	token := testToken(t, jwtManager)

	tests := []struct {
		name     string
		header   string
		wantCode connect.Code
		wantUser string
	}{
		{"valid token", "Bearer " + token, 0, "user-1"},
		{"missing header", "", connect.CodeUnauthenticated, ""},
		{"wrong scheme", "Token " + token, connect.CodeUnauthenticated, ""},
		{"bad token", "Bearer nope", connect.CodeUnauthenticated, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &capture{}
			_, err := RequireAuth(jwtManager)(c.next)(context.Background(), withAuthHeader(tt.header))

			if tt.wantCode != 0 {
				if connect.CodeOf(err) != tt.wantCode {
					t.Fatalf("expected code %v, got %v", tt.wantCode, err)
				}
				if c.calls != 0 {
					t.Error("handler must not run without a valid token")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.userID != tt.wantUser || c.email != "alice@example.com" {
				t.Errorf("context: expected %s/alice@example.com, got %s/%s", tt.wantUser, c.userID, c.email)
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("secret", time.Hour)
	token := testToken(t, jwtManager)

	for header, wantUser := range map[string]string{
		"":                 "",
		"Bearer":           "",
		"Bearer nope":      "",
		"Token " + token:   "",
		"Bearer " + token:  "user-1",
		"Bearer  " + token: "user-1",
		"bearer " + token:  "user-1",
	} {
		c := &capture{}
		if _, err := OptionalAuth(jwtManager)(c.next)(context.Background(), withAuthHeader(header)); err != nil {
			t.Fatalf("header %q: unexpected error: %v", header, err)
		}
		if c.userID != wantUser {
			t.Errorf("header %q: expected user %q, got %q", header, wantUser, c.userID)
		}
	}
}

func TestLoggingInterceptor(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantMsg   string
	}{
		{"ok", nil, "level=INFO", "RPC ok"},
		{"caller mistake", connect.NewError(connect.CodeInvalidArgument, errors.New("bad amount")), "level=WARN", "code=invalid_argument"},
		{"server fault", errors.New("disk full"), "level=ERROR", "code=unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))
			c := &capture{err: tt.err}

			ctx := context.WithValue(context.Background(), UserIDKey, "user-1")
			_, err := LoggingInterceptor(logger)(c.next)(ctx, withAuthHeader(""))
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected error %v to pass through, got %v", tt.err, err)
			}

			out := buf.String()
			for _, want := range []string{tt.wantLevel, tt.wantMsg, "user_id=user-1"} {
				if !strings.Contains(out, want) {
					t.Errorf("log line %q does not contain %q", out, want)
				}
			}
		})
	}
}

func TestMetricsInterceptor(t *testing.T) {
	m := metrics.New()
	interceptor := MetricsInterceptor(m)

	ok := &capture{}
	if _, err := interceptor(ok.next)(context.Background(), withAuthHeader("")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	failing := &capture{err: connect.NewError(connect.CodeNotFound, errors.New("missing"))}
	if _, err := interceptor(failing.next)(context.Background(), withAuthHeader("")); err == nil {
		t.Fatal("expected error to pass through")
	}

	// One series per code
	n, err := testutil.GatherAndCount(m.Registry(), "settleup_rpc_requests_total")
	if err != nil {
		t.Fatalf("GatherAndCount failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 request series, got %d", n)
	}
}

type panickingAuth struct {
	settleupv1connect.UnimplementedAuthServiceHandler
}

func (panickingAuth) GetCurrentUser(context.Context, *connect.Request[v1.GetCurrentUserRequest]) (*connect.Response[v1.GetCurrentUserResponse], error) {
	panic("index out of range")
}

func TestRecoverPanics(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	mux := http.NewServeMux()
	mux.Handle(settleupv1connect.NewAuthServiceHandler(panickingAuth{}, RecoverPanics(logger)))
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := settleupv1connect.NewAuthServiceClient(server.Client(), server.URL)
	_, err := client.GetCurrentUser(context.Background(), connect.NewRequest(&v1.GetCurrentUserRequest{}))
	if got := connect.CodeOf(err); got != connect.CodeInternal {
		t.Fatalf("expected code %v, got %v (%v)", connect.CodeInternal, got, err)
	}
	if strings.Contains(err.Error(), "index out of range") {
		t.Errorf("panic value leaked to the caller: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"level=ERROR", "Handler panic", settleupv1connect.AuthServiceGetCurrentUserProcedure} {
		if !strings.Contains(out, want) {
			t.Errorf("log line %q does not contain %q", out, want)
		}
	}
}
