package eventcore

import (
	"fmt"
	"log/slog"
)

// Logger is the structured logging contract the core calls through. It
// never logs event payloads, only component, identity, and outcome.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// NopLogger discards everything. It is the zero-value default so a bus,
// producer, or listener can be constructed without wiring logging.
type NopLogger struct{}

func (NopLogger) Debug(string, ...any) {}
func (NopLogger) Info(string, ...any)  {}
func (NopLogger) Warn(string, ...any)  {}
func (NopLogger) Error(string, ...any) {}

// SlogLogger adapts a *slog.Logger to the Logger contract.
type SlogLogger struct {
	l *slog.Logger
}

// NewSlogLogger wraps l. A nil l falls back to slog.Default().
func NewSlogLogger(l *slog.Logger) SlogLogger {
	if l == nil {
		l = slog.Default()
	}
	return SlogLogger{l: l}
}

func (s SlogLogger) Debug(msg string, kv ...any) { s.l.Debug(msg, kv...) }
func (s SlogLogger) Info(msg string, kv ...any)  { s.l.Info(msg, kv...) }
func (s SlogLogger) Warn(msg string, kv ...any)  { s.l.Warn(msg, kv...) }
func (s SlogLogger) Error(msg string, kv ...any) { s.l.Error(msg, kv...) }

// ParseLogLevel converts a Config.LogLevel string ("debug", "info",
// "warn", "error") into a slog.Level, so a loaded Config can drive the
// level of the slog handler behind a SlogLogger instead of just sitting in
// the struct. ZapLogger takes no level; its *zap.Logger sets its own.
func ParseLogLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("eventcore: unknown log level %q", level)
	}
}
