package logger

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Severity represents the importance of a log record
type Severity int

// Order matters: gating compares severities numerically.
const (
	Trace Severity = iota
	Info
	Warning
	Error
	Fatal
)

var severityNames = [...]string{
	Trace:   "TRACE",
	Info:    "INFO",
	Warning: "WARNING",
	Error:   "ERROR",
	Fatal:   "FATAL",
}

// String returns the label printed in front of every record
func (s Severity) String() string {
	if s.Valid() {
		return severityNames[s]
	}
	return "UNKNOWN"
}

// Valid reports whether s is one of the declared severities
func (s Severity) Valid() bool {
	return s >= Trace && s <= Fatal
}

// Severities returns every severity from lowest to highest
func Severities() []Severity {
	return []Severity{Trace, Info, Warning, Error, Fatal}
}

// ParseSeverity converts a severity name to a Severity. Matching is
// case-insensitive and "warn" is accepted for Warning.
func ParseSeverity(name string) (Severity, error) {
	switch normalizeName(name) {
	case "TRACE":
		return Trace, nil
	case "INFO":
		return Info, nil
	case "WARNING", "WARN":
		return Warning, nil
	case "ERROR":
		return Error, nil
	case "FATAL":
		return Fatal, nil
	default:
		return Trace, fmt.Errorf("unknown severity %q", name)
	}
}

// normalizeName upper-cases a user supplied name. Casers are stateful and
// must not be shared.
func normalizeName(name string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(name))
}
