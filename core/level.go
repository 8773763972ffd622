package core

// Level represents the severity of a log report
type Level int8

const (
	// Info for non-error informative messages
	Info Level = iota
	// Warning for non-error warning messages
	Warning
	// Error for recoverable error messages
	Error
	// Fatal for non-recoverable error messages (terminates the process)
	Fatal
)

// String returns the header label of the level
func (l Level) String() string {
	switch l {
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	case Fatal:
		return "FATAL ERROR"
	default:
		return "UNKNOWN"
	}
}
