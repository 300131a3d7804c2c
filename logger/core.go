package logger

import (
	"io"
	"path/filepath"
	"runtime"
)

// Options configures a Core. The zero value logs everything to stdout in
// debug mode.
type Options struct {
	ConsoleLevel Severity
	FileLevel    Severity
	Mode         Mode
	// Output receives console lines; nil means os.Stdout
	Output io.Writer
	// Color wraps console lines in ANSI color codes
	Color bool
}

// Core owns the thresholds, the console sink and the file buffer of one
// logging instance.
type Core struct {
	gate    *Gate
	console *ConsoleSink
	buffer  *FileBuffer
	mode    Mode

	consoleLogger *sinkLogger
	fileLogger    *sinkLogger
	null          *NullLogger
}

// New creates a Core from opts
func New(opts Options) *Core {
	c := &Core{
		gate:    NewGate(),
		console: NewConsoleSink(opts.Output, opts.Color),
		buffer:  NewFileBuffer(),
		mode:    opts.Mode,
		null:    NewNullLogger(),
	}
	c.gate.SetThreshold(SinkConsole, opts.ConsoleLevel)
	c.gate.SetThreshold(SinkFile, opts.FileLevel)
	c.consoleLogger = &sinkLogger{core: c, sink: SinkConsole}
	c.fileLogger = &sinkLogger{core: c, sink: SinkFile}
	return c
}

// Log renders a record and hands it to sink, unless the sink's threshold
// rejects sev. Rejected records are never formatted.
func (c *Core) Log(sink Sink, sev Severity, file string, line int, format string, args ...any) {
	if !c.gate.Accepts(sink, sev) {
		return
	}
	c.deliver(sink, sev, Render(sev, file, line, format, args...))
}

// Enabled reports whether a record of severity sev would reach sink
func (c *Core) Enabled(sink Sink, sev Severity) bool {
	return c.gate.Accepts(sink, sev)
}

// NextLine writes an empty line to sink without consulting the gate
func (c *Core) NextLine(sink Sink) {
	switch sink {
	case SinkConsole:
		c.console.NextLine()
	case SinkFile:
		c.buffer.NextLine()
	}
}

func (c *Core) deliver(sink Sink, sev Severity, line string) {
	switch sink {
	case SinkConsole:
		c.console.emit(sev, line)
	case SinkFile:
		c.buffer.Append(line)
	}
}

// Console returns the logger writing to the console sink
func (c *Core) Console() Logger {
	return c.consoleLogger
}

// File returns the logger writing to the file buffer
func (c *Core) File() Logger {
	return c.fileLogger
}

// Mode returns the build mode the core was created with
func (c *Core) Mode() Mode {
	return c.mode
}

// In returns loggers tagged for mode m. They are the core's own loggers when m
// matches the core's mode and null loggers otherwise.
func (c *Core) In(m Mode) Scope {
	if m != c.mode {
		return Scope{console: c.null, file: c.null}
	}
	return Scope{console: c.consoleLogger, file: c.fileLogger}
}

// SetConsoleLevel sets the minimum severity written to the console
func (c *Core) SetConsoleLevel(level Severity) {
	c.gate.SetThreshold(SinkConsole, level)
}

// SetFileLevel sets the minimum severity kept in the file buffer
func (c *Core) SetFileLevel(level Severity) {
	c.gate.SetThreshold(SinkFile, level)
}

func (c *Core) ConsoleLevel() Severity {
	return c.gate.Threshold(SinkConsole)
}

func (c *Core) FileLevel() Severity {
	return c.gate.Threshold(SinkFile)
}

// SetConsoleOutput redirects console lines to w
func (c *Core) SetConsoleOutput(w io.Writer) {
	c.console.SetOutput(w)
}

// Buffer exposes the file buffer, mostly for inspection
func (c *Core) Buffer() *FileBuffer {
	return c.buffer
}

// ExportFile writes the buffered file records to path and clears them.
// See FileBuffer.Export for the failure modes.
func (c *Core) ExportFile(path string) error {
	return c.buffer.Export(path)
}

// sinkLogger implements Logger for one sink of a core
type sinkLogger struct {
	core *Core
	sink Sink
}

func (l *sinkLogger) Trace(format string, args ...any) {
	l.log(Trace, format, args...)
}

func (l *sinkLogger) Info(format string, args ...any) {
	l.log(Info, format, args...)
}

func (l *sinkLogger) Warning(format string, args ...any) {
	l.log(Warning, format, args...)
}

func (l *sinkLogger) Error(format string, args ...any) {
	l.log(Error, format, args...)
}

// Fatal records a FATAL line; it does not stop the program
func (l *sinkLogger) Fatal(format string, args ...any) {
	l.log(Fatal, format, args...)
}

// Log records at sev. Values outside TRACE..FATAL are dropped.
func (l *sinkLogger) Log(sev Severity, format string, args ...any) {
	if !sev.Valid() {
		return
	}
	l.log(sev, format, args...)
}

func (l *sinkLogger) NextLine() {
	l.core.NextLine(l.sink)
}

func (l *sinkLogger) SetLevel(level Severity) {
	l.core.gate.SetThreshold(l.sink, level)
}

func (l *sinkLogger) GetLevel() Severity {
	return l.core.gate.Threshold(l.sink)
}

// log must be called directly from the exported methods so the caller
// lookup lands on user code.
func (l *sinkLogger) log(sev Severity, format string, args ...any) {
	if !l.core.gate.Accepts(l.sink, sev) {
		return
	}
	file, line := callerLocation(3)
	l.core.deliver(l.sink, sev, Render(sev, file, line, format, args...))
}

func callerLocation(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "???", 0
	}
	return filepath.Base(file), line
}
