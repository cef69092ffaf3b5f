package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/mmynk/settleup/internal/auth"
	"github.com/mmynk/settleup/internal/middleware"
	"github.com/mmynk/settleup/internal/models"
	v1 "github.com/mmynk/settleup/pkg/api/settleupv1"
)

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	authenticator auth.Authenticator
	users         auth.UserStorage
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, users auth.UserStorage, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		users:         users,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

func toAPIUser(user *models.User) *v1.User {
	return &v1.User{
		Id:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		CreatedAt:   timestamppb.New(time.Unix(user.CreatedAt, 0)),
	}
}

var errMissingCredentials = errors.New("email, display name and password are required")

// registerCode maps authenticator failures onto RPC codes.
func registerCode(err error) connect.Code {
	switch {
	case errors.Is(err, auth.ErrEmailExists):
		return connect.CodeAlreadyExists
	case errors.Is(err, auth.ErrWeakPassword),
		errors.Is(err, auth.ErrPasswordTooLong),
		errors.Is(err, auth.ErrInvalidEmail):
		return connect.CodeInvalidArgument
	}
	return connect.CodeInternal
}

// issue signs a session token for user.
func (s *AuthService) issue(user *models.User) (*v1.User, string, error) {
	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, "", connect.NewError(connect.CodeInternal, err)
	}
	return toAPIUser(user), token, nil
}

// Register creates a new user account and signs the caller in.
func (s *AuthService) Register(ctx context.Context, req *connect.Request[v1.RegisterRequest]) (*connect.Response[v1.RegisterResponse], error) {
	msg := req.Msg
	s.logger.Info("Register request", "email", msg.Email)

	if strings.TrimSpace(msg.Email) == "" || strings.TrimSpace(msg.DisplayName) == "" || msg.Password == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errMissingCredentials)
	}

	user, err := s.authenticator.Register(ctx, msg.Email, msg.DisplayName, msg.Password)
	if err != nil {
		code := registerCode(err)
		if code == connect.CodeInternal {
			s.logger.Error("Registration failed", "email", msg.Email, "error", err)
		} else {
			s.logger.Warn("Registration rejected", "email", msg.Email, "error", err)
		}
		return nil, connect.NewError(code, err)
	}

	apiUser, token, err := s.issue(user)
	if err != nil {
		return nil, err
	}
	s.logger.Info("User registered", "user_id", user.ID)
	return connect.NewResponse(&v1.RegisterResponse{User: apiUser, Token: token}), nil
}

// Login exchanges email and password for a session token.
func (s *AuthService) Login(ctx context.Context, req *connect.Request[v1.LoginRequest]) (*connect.Response[v1.LoginResponse], error) {
	msg := req.Msg
	if msg.Email == "" || msg.Password == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errMissingCredentials)
	}

	user, err := s.authenticator.Authenticate(ctx, msg.Email, msg.Password)
	if err != nil {
		s.logger.Warn("Login failed", "email", msg.Email)
		// Never tell the caller which half was wrong
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidCredentials)
	}

	apiUser, token, err := s.issue(user)
	if err != nil {
		return nil, err
	}
	s.logger.Info("User logged in", "user_id", user.ID)
	return connect.NewResponse(&v1.LoginResponse{User: apiUser, Token: token}), nil
}

// GetCurrentUser returns the currently authenticated user's information.
func (s *AuthService) GetCurrentUser(ctx context.Context, req *connect.Request[v1.GetCurrentUserRequest]) (*connect.Response[v1.GetCurrentUserResponse], error) {
	// Get user ID from context (set by auth middleware)
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	s.logger.Info("GetCurrentUser request", "user_id", userID)

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		s.logger.Error("GetCurrentUser failed", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if user == nil {
		// The token outlived the account
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
	}

	return connect.NewResponse(&v1.GetCurrentUserResponse{User: toAPIUser(user)}), nil
}
