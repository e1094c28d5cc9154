package menu

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NoOpLogger is a logger that does nothing.
type NoOpLogger struct{}

// Debug logs a debug message (no-op).
func (n *NoOpLogger) Debug(msg string, args ...any) {}

// Info logs an info message (no-op).
func (n *NoOpLogger) Info(msg string, args ...any) {}

// Warn logs a warning message (no-op).
func (n *NoOpLogger) Warn(msg string, args ...any) {}

// Error logs an error message (no-op).
func (n *NoOpLogger) Error(msg string, args ...any) {}

// NewNoOpLogger creates a new no-op logger.
func NewNoOpLogger() Logger {
	return &NoOpLogger{}
}

// ConsoleLogger writes plain log lines to stdout.
type ConsoleLogger struct {
	prefix string
}

// Debug logs a debug message to the console.
func (cl *ConsoleLogger) Debug(msg string, args ...any) {
	cl.print("DEBUG", msg, args)
}

// Info logs an info message to the console.
func (cl *ConsoleLogger) Info(msg string, args ...any) {
	cl.print("INFO", msg, args)
}

// Warn logs a warning message to the console.
func (cl *ConsoleLogger) Warn(msg string, args ...any) {
	cl.print("WARN", msg, args)
}

// Error logs an error message to the console.
func (cl *ConsoleLogger) Error(msg string, args ...any) {
	cl.print("ERROR", msg, args)
}

func (cl *ConsoleLogger) print(level, msg string, args []any) {
	fmt.Printf("[%s] %s: %s", level, cl.prefix, msg)
	if len(args) > 0 {
		fmt.Printf(" %v", args)
	}
	fmt.Println()
}

// NewConsoleLogger creates a new console logger with the given prefix.
func NewConsoleLogger(prefix string) Logger {
	return &ConsoleLogger{prefix: prefix}
}

// ZerologLogger adapts a zerolog.Logger to the Logger interface, turning
// the alternating key-value args into structured fields.
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger creates a ZerologLogger writing human-readable console
// output to w, tagged with the app name.
func NewZerologLogger(w io.Writer, app string) Logger {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Str("app", app).
		Logger()
	return &ZerologLogger{logger: logger}
}

// WrapZerolog adapts an existing zerolog.Logger.
func WrapZerolog(logger zerolog.Logger) Logger {
	return &ZerologLogger{logger: logger}
}

// Debug logs a debug message.
func (z *ZerologLogger) Debug(msg string, args ...any) {
	z.emit(z.logger.Debug(), msg, args)
}

// Info logs an info message.
func (z *ZerologLogger) Info(msg string, args ...any) {
	z.emit(z.logger.Info(), msg, args)
}

// Warn logs a warning message.
func (z *ZerologLogger) Warn(msg string, args ...any) {
	z.emit(z.logger.Warn(), msg, args)
}

// Error logs an error message.
func (z *ZerologLogger) Error(msg string, args ...any) {
	z.emit(z.logger.Error(), msg, args)
}

func (z *ZerologLogger) emit(event *zerolog.Event, msg string, args []any) {
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		event = event.Interface(key, args[i+1])
	}
	if len(args)%2 == 1 {
		event = event.Interface("extra", args[len(args)-1])
	}
	event.Msg(msg)
}
