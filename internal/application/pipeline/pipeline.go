package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/cardstream/payment-gateway/pkg/result"
)

// Handler executes one operation of the gateway.
type Handler[C, R any] func(ctx context.Context, cmd C) result.Result[R]

// Middleware wraps a Handler with a cross-cutting behavior.
type Middleware[C, R any] func(next Handler[C, R]) Handler[C, R]

// Chain composes stages around h. The first stage is outermost, so
// Chain(h, logging, validation) logs every command and validates before h
// runs. The order is fixed at startup; there is no open-ended registration.
func Chain[C, R any](h Handler[C, R], stages ...Middleware[C, R]) Handler[C, R] {
	for i := len(stages) - 1; i >= 0; i-- {
		h = stages[i](h)
	}
	return h
}

// Logging logs entry and duration for every command.
func Logging[C, R any](logger *slog.Logger, name string) Middleware[C, R] {
	return func(next Handler[C, R]) Handler[C, R] {
		return func(ctx context.Context, cmd C) result.Result[R] {
			logger.InfoContext(ctx, "handling command", "command", name)
			start := time.Now()
			res := next(ctx, cmd)
			logger.InfoContext(ctx, "handled command",
				"command", name,
				"duration_ms", time.Since(start).Milliseconds(),
				"success", res.IsSuccess(),
			)
			return res
		}
	}
}

// Validation runs validate on the command and short-circuits the pipeline on
// any field error: next is never invoked, so no side effect can precede a
// failed validation. The failure is shaped for whatever R the operation
// returns, with no per-operation plumbing.
func Validation[C, R any](logger *slog.Logger, validate func(C) []result.FieldError) Middleware[C, R] {
	return func(next Handler[C, R]) Handler[C, R] {
		return func(ctx context.Context, cmd C) result.Result[R] {
			fieldErrors := validate(cmd)
			if len(fieldErrors) == 0 {
				return next(ctx, cmd)
			}

			messages := make([]string, len(fieldErrors))
			for i, fe := range fieldErrors {
				messages[i] = fe.Message
			}
			logger.WarnContext(ctx, "validation failed", "errors", strings.Join(messages, "; "))

			return result.Failure[R](result.ValidationError("One or more validation errors occurred.", fieldErrors))
		}
	}
}
