package logging

// NullLogger drops every message. It backs --log-format none, where the
// exit code is the only report, and keeps test output quiet.
type NullLogger struct{}

// NewNullLogger returns a NullLogger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (*NullLogger) Verbose(string, ...interface{}) {}
func (*NullLogger) Info(string, ...interface{})    {}
func (*NullLogger) Error(string, ...interface{})   {}

// Sync matches JSONLogger so callers can flush either one.
func (*NullLogger) Sync() error { return nil }
