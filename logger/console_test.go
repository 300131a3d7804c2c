package logger

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("closed")
}

func TestConsoleSinkEmit(t *testing.T) {
	var buf bytes.Buffer
	sink := NewConsoleSink(&buf, false)

	sink.Emit("one")
	sink.NextLine()
	sink.Emit("two")

	assert.Equal(t, "one\n\ntwo\n", buf.String())
}

func TestConsoleSinkIgnoresWriteErrors(t *testing.T) {
	sink := NewConsoleSink(failingWriter{}, false)
	assert.NotPanics(t, func() {
		sink.Emit("lost")
		sink.NextLine()
	})
}

func TestConsoleSinkSetOutput(t *testing.T) {
	var first, second bytes.Buffer
	sink := NewConsoleSink(&first, false)
	sink.Emit("a")
	sink.SetOutput(&second)
	sink.Emit("b")

	assert.Equal(t, "a\n", first.String())
	assert.Equal(t, "b\n", second.String())
}

func TestConsoleSinkConcurrentLinesDoNotInterleave(t *testing.T) {
	var buf bytes.Buffer
	sink := NewConsoleSink(&buf, false)

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				sink.Emit(fmt.Sprintf("writer-%d line-%03d", w, i))
			}
		}(w)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 400)
	for _, line := range lines {
		assert.Regexp(t, `^writer-\d line-\d{3}$`, line)
	}
}

func TestNewConsoleSinkDefaultsToStdout(t *testing.T) {
	sink := NewConsoleSink(nil, false)
	assert.NotNil(t, sink.out)
}
