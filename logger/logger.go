package logger

// Logger is a severity-tagged printf-style logger bound to one sink.
// Implementations capture the caller's file and line for every record.
type Logger interface {
	Trace(format string, args ...any)
	Info(format string, args ...any)
	Warning(format string, args ...any)
	Error(format string, args ...any)
	Fatal(format string, args ...any)

	// Log records at a severity chosen at run time
	Log(sev Severity, format string, args ...any)

	// NextLine writes an empty line, regardless of the threshold
	NextLine()

	// Configuration
	SetLevel(level Severity)
	GetLevel() Severity
}
