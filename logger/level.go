package logger

import (
	"strings"

	"github.com/philipp01105/logvisor/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	Info    = core.Info
	Warning = core.Warning
	Error   = core.Error
	Fatal   = core.Fatal
)

// ParseLevel converts a string to a Level
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "INFO":
		return Info
	case "WARN", "WARNING":
		return Warning
	case "ERROR":
		return Error
	case "FATAL", "FATAL ERROR":
		return Fatal
	default:
		return Info
	}
}
