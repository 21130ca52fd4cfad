package testlogger

import (
	"fmt"
	"strings"
)

func sprint(v ...interface{}) string {
	return strings.TrimSuffix(fmt.Sprint(v...), "\n")
}

func sprintf(format string, v ...interface{}) string {
	return strings.TrimSuffix(fmt.Sprintf(format, v...), "\n")
}

func (l *Logger) panic(s string) {
	l.logger.Fatal(s)
	panic(s)
}
