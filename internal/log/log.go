// Package log is a thin levelled facade over the standard library logger,
// with the level set once at startup from the LOG_LEVEL environment variable.
package log

import (
	"fmt"
	"log"
	"strings"
)

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

var threshold = levelInfo

// SetLevel sets the minimum level written to the log stream. Unrecognised
// values leave the level at 'info'.
func SetLevel(v string) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		threshold = levelDebug

	case "warn", "warning":
		threshold = levelWarn

	case "error":
		threshold = levelError

	default:
		threshold = levelInfo
	}
}

func Debugf(format string, args ...any) {
	logf(levelDebug, "DEBUG", format, args...)
}

func Infof(format string, args ...any) {
	logf(levelInfo, "INFO", format, args...)
}

func Warnf(format string, args ...any) {
	logf(levelWarn, "WARN", format, args...)
}

func Errorf(format string, args ...any) {
	logf(levelError, "ERROR", format, args...)
}

func logf(l level, tag, format string, args ...any) {
	if l >= threshold {
		log.Printf("%-5s %s", tag, fmt.Sprintf(format, args...))
	}
}
