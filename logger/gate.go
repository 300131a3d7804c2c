package logger

import "sync"

// Sink identifies one of the two output destinations
type Sink int

const (
	SinkConsole Sink = iota
	SinkFile
)

func (s Sink) String() string {
	switch s {
	case SinkConsole:
		return "console"
	case SinkFile:
		return "file"
	default:
		return "unknown"
	}
}

// Gate holds the minimum severity accepted by each sink
type Gate struct {
	mu         sync.RWMutex
	thresholds [2]Severity
}

// NewGate creates a gate that accepts everything on both sinks
func NewGate() *Gate {
	return &Gate{thresholds: [2]Severity{Trace, Trace}}
}

// Accepts reports whether a record of the given severity passes the sink's threshold
func (g *Gate) Accepts(sink Sink, sev Severity) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return sev >= g.thresholds[sink]
}

// SetThreshold replaces the minimum severity for a sink
func (g *Gate) SetThreshold(sink Sink, sev Severity) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.thresholds[sink] = sev
}

// Threshold returns the minimum severity for a sink
func (g *Gate) Threshold(sink Sink) Severity {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.thresholds[sink]
}
