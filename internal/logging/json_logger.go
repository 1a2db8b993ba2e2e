package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// JSONLogger writes one JSON object per message, for CI log collectors.
// Verbose messages are emitted at debug level and only when verbose is set.
// Safe for concurrent use by multiple goroutines.
type JSONLogger struct {
	log *zap.SugaredLogger
}

// NewJSONLogger creates a JSONLogger writing to stderr.
func NewJSONLogger(verbose bool) *JSONLogger {
	return NewJSONLoggerTo(os.Stderr, verbose)
}

// NewJSONLoggerTo creates a JSONLogger writing to out.
func NewJSONLoggerTo(out io.Writer, verbose bool) *JSONLogger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.Lock(zapcore.AddSync(out)),
		level,
	)
	return &JSONLogger{log: zap.New(core).Named("svgrn").Sugar()}
}

// With returns a logger that adds key/value pairs to every message.
func (l *JSONLogger) With(keysAndValues ...interface{}) *JSONLogger {
	return &JSONLogger{log: l.log.With(keysAndValues...)}
}

// Verbose logs detailed diagnostic information at debug level.
func (l *JSONLogger) Verbose(format string, args ...interface{}) {
	l.log.Debugf(format, args...)
}

// Info logs informational messages about normal operations.
func (l *JSONLogger) Info(format string, args ...interface{}) {
	l.log.Infof(format, args...)
}

// Error logs error messages.
func (l *JSONLogger) Error(format string, args ...interface{}) {
	l.log.Errorf(format, args...)
}

// Sync flushes buffered entries.
func (l *JSONLogger) Sync() error {
	return l.log.Sync()
}
