package src

// Logger is the logging surface used across the module. It is a subset of
// *zap.SugaredLogger so callers can plug zap in directly or supply a no-op
// implementation in tests.
type Logger interface {
	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)

	Debugf(template string, args ...any)
	Infof(template string, args ...any)
	Errorf(template string, args ...any)

	Info(args ...any)
	Error(args ...any)

	Sync() error
}
