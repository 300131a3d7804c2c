package logger

import "sync"

// Default core instance
var (
	defaultCore = New(Options{})
	defaultMu   sync.RWMutex
)

// SetDefault replaces the default core. A nil core is ignored.
func SetDefault(c *Core) {
	if c == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultCore = c
}

// Default returns the default core
func Default() *Core {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultCore
}

// Convenience functions using the default core
func Console() Logger {
	return Default().Console()
}

func File() Logger {
	return Default().File()
}

func In(m Mode) Scope {
	return Default().In(m)
}

func ExportFile(path string) error {
	return Default().ExportFile(path)
}
