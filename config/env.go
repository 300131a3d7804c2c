package config

import (
	"os"
	"strconv"
)

// Loader looks up REDI_LOG_* style overrides in the process environment
type Loader struct {
	Prefix string
}

// NewLoader returns a Loader for prefix, adding the trailing "_" if absent
func NewLoader(prefix string) Loader {
	if prefix != "" && prefix[len(prefix)-1] != '_' {
		prefix += "_"
	}
	return Loader{Prefix: prefix}
}

// String returns Prefix+key, or def when the variable is unset or empty
func (l Loader) String(key, def string) string {
	if val := os.Getenv(l.Prefix + key); val != "" {
		return val
	}
	return def
}

// Bool is like String but parses the value with strconv.ParseBool. Values
// that do not parse leave def in place.
func (l Loader) Bool(key string, def bool) bool {
	if val := os.Getenv(l.Prefix + key); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}
	return def
}
