package eventcore

import "go.uber.org/zap"

// ZapLogger adapts a *zap.Logger to the Logger contract via its sugared
// form, matching the keysAndValues-pairs calling convention.
type ZapLogger struct {
	l *zap.SugaredLogger
}

// NewZapLogger wraps l. A nil l builds a production zap logger.
func NewZapLogger(l *zap.Logger) ZapLogger {
	if l == nil {
		l, _ = zap.NewProduction()
	}
	return ZapLogger{l: l.Sugar()}
}

func (z ZapLogger) Debug(msg string, kv ...any) { z.l.Debugw(msg, kv...) }
func (z ZapLogger) Info(msg string, kv ...any)  { z.l.Infow(msg, kv...) }
func (z ZapLogger) Warn(msg string, kv ...any)  { z.l.Warnw(msg, kv...) }
func (z ZapLogger) Error(msg string, kv ...any) { z.l.Errorw(msg, kv...) }
