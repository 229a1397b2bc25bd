// Package logging implements vshell.Logger.
//
// ConsoleLogger writes through zap's console encoder to stderr; Verbose
// messages are emitted only when verbose output was requested. NullLogger
// drops everything and is the default wherever no logger is supplied.
package logging
