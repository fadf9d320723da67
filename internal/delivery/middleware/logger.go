package middleware

import (
	"context"
	"log/slog"
	"time"

	"engineershub/config"
	deliverycontext "engineershub/internal/delivery/context"
)

// LoggerMiddleware controllable logging middleware
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle logs every command in debug mode, and failed commands always
func (m *LoggerMiddleware) Handle(next HandlerFunc) HandlerFunc {
	return func(ctx context.Context, command string, args []string) error {
		start := time.Now()
		err := next(ctx, command, args)

		if m.debug || err != nil {
			m.logCommand(ctx, command, len(args), start, err)
		}

		return err
	}
}

func (m *LoggerMiddleware) logCommand(ctx context.Context, command string, argc int, start time.Time, err error) {
	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestIDFromContext(ctx)),
		slog.String("command", command),
		slog.Int("args", argc),
		slog.Duration("latency", time.Since(start)),
	}

	logLevel := slog.LevelDebug
	if err != nil {
		fields = append(fields, slog.Any("error", err))
		logLevel = slog.LevelWarn
	}

	m.logger.LogAttrs(ctx, logLevel, "Shell command", fields...)
}
