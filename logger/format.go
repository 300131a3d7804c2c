package logger

import (
	"fmt"
	"strconv"
)

// Render builds a single display line: "[LABEL] file:line: message".
// The message is produced with fmt.Sprintf; no newline is appended.
func Render(sev Severity, file string, line int, format string, args ...any) string {
	return "[" + sev.String() + "] " + file + ":" + strconv.Itoa(line) + ": " + fmt.Sprintf(format, args...)
}
