// Package logging provides implementations of the svgrn.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: plain lines on stderr with [VERBOSE] and [ERROR] prefixes
//   - JSONLogger: JSON lines through zap, selected with --log-format json
//   - NullLogger: discards all messages, selected with --log-format none
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
