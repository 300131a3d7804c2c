package logger

// NullLogger is a logger that does nothing
type NullLogger struct {
	level Severity
}

// NewNullLogger creates a new null logger
func NewNullLogger() *NullLogger {
	return &NullLogger{level: Fatal}
}

func (n *NullLogger) Trace(format string, args ...any)   {}
func (n *NullLogger) Info(format string, args ...any)    {}
func (n *NullLogger) Warning(format string, args ...any) {}
func (n *NullLogger) Error(format string, args ...any)   {}
func (n *NullLogger) Fatal(format string, args ...any)   {}
func (n *NullLogger) NextLine()                          {}

func (n *NullLogger) Log(sev Severity, format string, args ...any) {}

func (n *NullLogger) SetLevel(level Severity) {
	n.level = level
}

func (n *NullLogger) GetLevel() Severity {
	return n.level
}
