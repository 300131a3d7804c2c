package logger

import "fmt"

// Mode is the build flavour a program runs as. Records tagged for a mode other
// than the core's own are dropped without any effect.
type Mode int

const (
	ModeDebug Mode = iota
	ModeRelease
	ModeDist
)

func (m Mode) String() string {
	switch m {
	case ModeDebug:
		return "debug"
	case ModeRelease:
		return "release"
	case ModeDist:
		return "dist"
	default:
		return "unknown"
	}
}

// ParseMode converts "debug", "release" or "dist" (any case) to a Mode
func ParseMode(name string) (Mode, error) {
	switch normalizeName(name) {
	case "DEBUG":
		return ModeDebug, nil
	case "RELEASE":
		return ModeRelease, nil
	case "DIST":
		return ModeDist, nil
	default:
		return ModeDebug, fmt.Errorf("unknown build mode %q", name)
	}
}

// Scope gives access to loggers that are only live in one build mode
type Scope struct {
	console Logger
	file    Logger
}

// Console returns the console logger of the scope
func (s Scope) Console() Logger {
	return s.console
}

// File returns the file logger of the scope
func (s Scope) File() Logger {
	return s.file
}
