package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"
)

// LoggingInterceptor returns a Connect interceptor that logs every RPC call
// with its procedure, caller, duration and result code. Caller mistakes are
// logged at Warn, server faults at Error. A nil logger means slog.Default().
func LoggingInterceptor(logger *slog.Logger) connect.UnaryInterceptorFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			attrs := []any{
				"procedure", req.Spec().Procedure,
				"user_id", GetUserID(ctx), // empty if pre-auth
				"duration_ms", time.Since(start).Milliseconds(),
			}
			if err == nil {
				logger.InfoContext(ctx, "RPC ok", attrs...)
				return resp, nil
			}

			code := connect.CodeOf(err)
			attrs = append(attrs, "code", code.String(), "error", err)
			if serverFault(code) {
				logger.ErrorContext(ctx, "RPC error", attrs...)
			} else {
				logger.WarnContext(ctx, "RPC error", attrs...)
			}
			return resp, err
		}
	}
}

func serverFault(code connect.Code) bool {
	switch code {
	case connect.CodeInternal, connect.CodeUnknown, connect.CodeDataLoss, connect.CodeUnavailable:
		return true
	}
	return false
}

// RecoverPanics returns a handler option that turns a panicking handler into
// a CodeInternal error instead of a dropped connection. The panic value is
// logged but never sent to the caller.
func RecoverPanics(logger *slog.Logger) connect.HandlerOption {
	if logger == nil {
		logger = slog.Default()
	}
	return connect.WithRecover(func(ctx context.Context, spec connect.Spec, _ http.Header, r any) error {
		logger.ErrorContext(ctx, "Handler panic", "procedure", spec.Procedure, "panic", r)
		return connect.NewError(connect.CodeInternal, errors.New("internal error"))
	})
}
