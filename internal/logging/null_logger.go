package logging

import "github.com/vvka-141/vshell/pkg/vshell"

// NullLogger discards everything. Sessions and stores fall back to it when
// no logger is configured, and tests use it to keep output quiet.
type NullLogger struct{}

var _ vshell.Logger = (*NullLogger)(nil)

// NewNullLogger creates a new NullLogger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (l *NullLogger) Verbose(string, ...interface{}) {}

func (l *NullLogger) Info(string, ...interface{}) {}

func (l *NullLogger) Error(string, ...interface{}) {}
