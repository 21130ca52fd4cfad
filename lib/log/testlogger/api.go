package testlogger

import "github.com/Cloud-Foundations/linkedlist/lib/log"

// TestLogger defines an interface for a type that can be used for logging by
// tests. The testing.T type from the standard library satisfies this interface.
type TestLogger interface {
	Fatal(v ...interface{})
	Log(v ...interface{})
}

type Logger struct {
	logger TestLogger
}

var _ log.DebugLogger = (*Logger)(nil)

// New will create a Logger from a TestLogger, serving as an adaptor between
// the testing.T type and code that expects a log.DebugLogger. Debug messages
// are always logged. Trailing newlines are removed.
func New(logger TestLogger) *Logger {
	return &Logger{logger: logger}
}

func (l *Logger) Debug(level uint8, v ...interface{}) {
	l.logger.Log(sprint(v...))
}

func (l *Logger) Debugf(level uint8, format string, v ...interface{}) {
	l.logger.Log(sprintf(format, v...))
}

func (l *Logger) Debugln(level uint8, v ...interface{}) {
	l.logger.Log(sprint(v...))
}

func (l *Logger) Fatal(v ...interface{}) {
	l.logger.Fatal(sprint(v...))
}

func (l *Logger) Fatalf(format string, v ...interface{}) {
	l.logger.Fatal(sprintf(format, v...))
}

func (l *Logger) Fatalln(v ...interface{}) {
	l.logger.Fatal(sprint(v...))
}

// Panic calls the Fatal method of the underlying TestLogger and then panics.
func (l *Logger) Panic(v ...interface{}) {
	l.panic(sprint(v...))
}

func (l *Logger) Panicf(format string, v ...interface{}) {
	l.panic(sprintf(format, v...))
}

func (l *Logger) Panicln(v ...interface{}) {
	l.panic(sprint(v...))
}

func (l *Logger) Print(v ...interface{}) {
	l.logger.Log(sprint(v...))
}

func (l *Logger) Printf(format string, v ...interface{}) {
	l.logger.Log(sprintf(format, v...))
}

func (l *Logger) Println(v ...interface{}) {
	l.logger.Log(sprint(v...))
}
