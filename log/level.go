package log

import (
	"os"
	"strings"
)

// Level defines trace levels. A logger configured at level L emits entries
// whose level is L or louder; AllLevel lets everything through and
// NoneLevel silences the leveled methods entirely.
type Level uint8

const (
	// AllLevel emits every entry.
	AllLevel Level = iota
	// TraceLevel defines trace log level.
	TraceLevel
	// DebugLevel defines debug log level.
	DebugLevel
	// InfoLevel defines info log level.
	InfoLevel
	// WarnLevel defines warn log level.
	WarnLevel
	// ErrorLevel defines error log level.
	ErrorLevel
	// FatalLevel defines fatal log level.
	FatalLevel
	// NoneLevel disables all leveled output.
	NoneLevel
)

// ParseLevel converts a textual level into a Level value. It accepts values
// such as "all", "trace", "debug", "info", "warn", "warning", "error",
// "fatal", "none", "disabled", and "off" (case insensitive).
func ParseLevel(value string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "all":
		return AllLevel, true
	case "trace":
		return TraceLevel, true
	case "debug":
		return DebugLevel, true
	case "info":
		return InfoLevel, true
	case "warn", "warning":
		return WarnLevel, true
	case "error":
		return ErrorLevel, true
	case "fatal":
		return FatalLevel, true
	case "none", "disabled", "disable", "off":
		return NoneLevel, true
	default:
		return AllLevel, false
	}
}

// LevelString returns the canonical string representation of a Level.
func LevelString(level Level) string {
	switch level {
	case AllLevel:
		return "all"
	case TraceLevel:
		return "trace"
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	case FatalLevel:
		return "fatal"
	case NoneLevel:
		return "none"
	default:
		return "all"
	}
}

// LevelFromEnv looks up key in the environment and parses it into a Level.
func LevelFromEnv(key string) (Level, bool) {
	if key == "" {
		return AllLevel, false
	}
	value, ok := os.LookupEnv(key)
	if !ok {
		return AllLevel, false
	}
	return ParseLevel(value)
}

// label returns the line tag for level.
func (l Level) label() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "MESSAGE"
	}
}
