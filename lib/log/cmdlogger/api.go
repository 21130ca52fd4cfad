package cmdlogger

import (
	"flag"
	stdlog "log"

	"github.com/Cloud-Foundations/linkedlist/lib/log"
)

var (
	logDebugLevel = flag.Int("logDebugLevel", -1, "Debug log level")
	logSubseconds = flag.Bool("logSubseconds", false,
		"If true, datestamps will have subsecond resolution")
)

type Logger struct {
	level  int
	logger *stdlog.Logger
}

// New will create a log.DebugLogger suitable for command-line tools, writing
// to standard error. The -logDebugLevel and -logSubseconds flags are used, so
// New must be called after flag.Parse.
func New() *Logger {
	return newLogger()
}

var _ log.DebugLogger = (*Logger)(nil)

func (l *Logger) Debug(level uint8, v ...interface{}) {
	if int(level) <= l.level {
		l.logger.Print(v...)
	}
}

func (l *Logger) Debugf(level uint8, format string, v ...interface{}) {
	if int(level) <= l.level {
		l.logger.Printf(format, v...)
	}
}

func (l *Logger) Debugln(level uint8, v ...interface{}) {
	if int(level) <= l.level {
		l.logger.Println(v...)
	}
}

func (l *Logger) Fatal(v ...interface{}) {
	l.logger.Fatal(v...)
}

func (l *Logger) Fatalf(format string, v ...interface{}) {
	l.logger.Fatalf(format, v...)
}

func (l *Logger) Fatalln(v ...interface{}) {
	l.logger.Fatalln(v...)
}

func (l *Logger) Panic(v ...interface{}) {
	l.logger.Panic(v...)
}

func (l *Logger) Panicf(format string, v ...interface{}) {
	l.logger.Panicf(format, v...)
}

func (l *Logger) Panicln(v ...interface{}) {
	l.logger.Panicln(v...)
}

func (l *Logger) Print(v ...interface{}) {
	l.logger.Print(v...)
}

func (l *Logger) Printf(format string, v ...interface{}) {
	l.logger.Printf(format, v...)
}

func (l *Logger) Println(v ...interface{}) {
	l.logger.Println(v...)
}
