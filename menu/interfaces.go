package menu

// Logger is the logging interface used by Builder and Router. Args are
// alternating key-value pairs appended to the message.
//
// Implement it to plug in your own logging framework, or use one of the
// provided implementations: NoOpLogger, ConsoleLogger, ZerologLogger.
type Logger interface {
	// Debug logs a debug message.
	Debug(msg string, args ...any)
	// Info logs an informational message.
	Info(msg string, args ...any)
	// Warn logs a warning message.
	Warn(msg string, args ...any)
	// Error logs an error message.
	Error(msg string, args ...any)
}
