package logger

import (
	"io"
	"os"
	"sync"
)

// ConsoleSink writes every line straight to its writer, one write per call.
// Write errors are dropped: a broken stdout is not something the sink can fix.
type ConsoleSink struct {
	mu    sync.Mutex
	out   io.Writer
	color bool
}

// NewConsoleSink creates a console sink writing to w, or os.Stdout when w is nil
func NewConsoleSink(w io.Writer, color bool) *ConsoleSink {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleSink{out: w, color: color}
}

// SetOutput sets the output writer
func (c *ConsoleSink) SetOutput(w io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.out = w
}

// Emit writes line followed by a newline
func (c *ConsoleSink) Emit(line string) {
	c.write(line + "\n")
}

// NextLine writes a bare newline
func (c *ConsoleSink) NextLine() {
	c.write("\n")
}

func (c *ConsoleSink) emit(sev Severity, line string) {
	if c.color {
		line = SeverityColor(sev) + line + ColorReset
	}
	c.Emit(line)
}

func (c *ConsoleSink) write(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = io.WriteString(c.out, s)
}
