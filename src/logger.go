package src

import "go.uber.org/zap"

// Logger is the sugared zap surface handed to components. Any
// *zap.SugaredLogger satisfies it directly; tests use NoLogs.
type Logger interface {
	Info(args ...any)
	Infof(template string, args ...any)
	Infow(msg string, keysAndValues ...any)
	Error(args ...any)
	Errorw(msg string, keysAndValues ...any)
	Sync() error
}

var _ Logger = (*zap.SugaredLogger)(nil)

type NopLogger struct{}

var nopLogger NopLogger = NopLogger{}

var _ Logger = &nopLogger

// NoLogs returns a logger that drops everything.
func NoLogs() *NopLogger {
	return &nopLogger
}

func (*NopLogger) Info(args ...any) {}

func (*NopLogger) Infof(template string, args ...any) {}

func (*NopLogger) Infow(msg string, keysAndValues ...any) {}

func (*NopLogger) Error(args ...any) {}

func (*NopLogger) Errorw(msg string, keysAndValues ...any) {}

func (*NopLogger) Sync() error { return nil }
