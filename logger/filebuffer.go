package logger

import (
	"bufio"
	"os"
	"strings"
	"sync"
)

// FileBuffer accumulates file-bound lines in memory until they are exported.
// It has no size limit; memory grows with every accepted record until Export
// succeeds.
type FileBuffer struct {
	mu      sync.Mutex
	lines   []string
	exports int
}

// NewFileBuffer creates an empty buffer
func NewFileBuffer() *FileBuffer {
	return &FileBuffer{}
}

// Append adds line to the end of the buffer
func (b *FileBuffer) Append(line string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = append(b.lines, line)
}

// NextLine appends an empty entry
func (b *FileBuffer) NextLine() {
	b.Append("")
}

// Len returns the number of buffered entries
func (b *FileBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.lines)
}

// Lines returns a copy of the buffered entries in insertion order
func (b *FileBuffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// Export writes every buffered line, newline-terminated, to path and clears the
// buffer. path must end with ".txt"; otherwise an *InvalidPathError is returned
// before anything is touched. Any I/O failure yields a *WriteError and keeps the
// buffer as it was. The file is truncated if it exists; missing parent
// directories are not created.
func (b *FileBuffer) Export(path string) error {
	if !strings.HasSuffix(path, ExportExtension) {
		return &InvalidPathError{Path: path}
	}

	// Held for the whole drain so an append lands either in this file or in
	// the next export.
	b.mu.Lock()
	defer b.mu.Unlock()

	f, err := os.Create(path)
	if err != nil {
		return newWriteError(path, "open", err)
	}

	w := bufio.NewWriter(f)
	for _, line := range b.lines {
		if _, err := w.WriteString(line); err != nil {
			f.Close()
			return newWriteError(path, "write", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			f.Close()
			return newWriteError(path, "write", err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return newWriteError(path, "write", err)
	}
	if err := f.Close(); err != nil {
		return newWriteError(path, "close", err)
	}

	b.lines = nil
	b.exports++
	return nil
}

// Exports returns the number of successful exports so far
func (b *FileBuffer) Exports() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.exports
}
