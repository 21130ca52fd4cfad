package cmdlogger

import (
	stdlog "log"
	"os"
)

func newLogger() *Logger {
	flags := stdlog.LstdFlags
	if *logSubseconds {
		flags |= stdlog.Lmicroseconds
	}
	return &Logger{
		level:  *logDebugLevel,
		logger: stdlog.New(os.Stderr, "", flags),
	}
}
