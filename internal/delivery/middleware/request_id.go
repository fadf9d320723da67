package middleware

import (
	"context"
	"log/slog"

	deliverycontext "engineershub/internal/delivery/context"
)

// HandlerFunc runs one shell command.
type HandlerFunc func(ctx context.Context, command string, args []string) error

// Middleware decorates a HandlerFunc.
type Middleware func(next HandlerFunc) HandlerFunc

// Chain applies middlewares so the first one listed runs outermost.
func Chain(handler HandlerFunc, middlewares ...Middleware) HandlerFunc {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}

	return handler
}

// RequestIDMiddleware gives each command a unique Request ID and a command-scoped logger
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process tags the context so every API call made by the command shares one X-Request-Id
func (m *RequestIDMiddleware) Process(next HandlerFunc) HandlerFunc {
	return func(ctx context.Context, command string, args []string) error {
		ctx = deliverycontext.WithCommandScope(ctx, m.logger, command)

		return next(ctx, command, args)
	}
}
