package calculation

// Logger is the minimal logging surface the calculation package needs.
// The CLI backs it with the standard log package; tests use NoopLogger.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NoopLogger discards all log output.
type NoopLogger struct{}

func (NoopLogger) Debugf(format string, args ...any) {}
func (NoopLogger) Infof(format string, args ...any)  {}
func (NoopLogger) Warnf(format string, args ...any)  {}
func (NoopLogger) Errorf(format string, args ...any) {}
