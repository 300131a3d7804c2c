package logger

// ANSI color codes for terminal output
const (
	ColorReset   = "\033[0m"
	ColorGray    = "\033[90m"
	ColorGreen   = "\033[32m"
	ColorYellow  = "\033[33m"
	ColorRed     = "\033[31m"
	ColorMagenta = "\033[35m"
)

// SeverityColor returns the color code used for a severity on the console
func SeverityColor(sev Severity) string {
	switch sev {
	case Fatal:
		return ColorMagenta
	case Error:
		return ColorRed
	case Warning:
		return ColorYellow
	case Info:
		return ColorGreen
	case Trace:
		return ColorGray
	default:
		return ColorReset
	}
}
