// Package trace provides combinator.Tracer implementations that indent
// each nested parse step.
package trace

import (
	"strings"
	"sync"

	"github.com/tliron/commonlog"
)

const indentUnit = "   "

type debugSink interface {
	Debugf(format string, args ...any)
}

// Logger writes trace lines to a commonlog logger at debug level.
type Logger struct {
	sink  debugSink
	mu    sync.Mutex
	depth int
}

// New returns a Logger writing to log.
func New(log commonlog.Logger) *Logger {
	return &Logger{sink: log}
}

// Named returns a Logger writing to the commonlog logger called name.
func Named(name string) *Logger {
	return New(commonlog.GetLogger(name))
}

func (l *Logger) Log(message string) {
	l.mu.Lock()
	depth := l.depth
	l.mu.Unlock()
	l.sink.Debugf("%s%s", strings.Repeat(indentUnit, depth), message)
}

func (l *Logger) StartScope() {
	l.mu.Lock()
	l.depth++
	l.mu.Unlock()
}

func (l *Logger) EndScope() {
	l.mu.Lock()
	if l.depth > 0 {
		l.depth--
	}
	l.mu.Unlock()
}

// Recorder keeps trace lines in memory.
type Recorder struct {
	lines []string
	depth int
}

func (r *Recorder) Log(message string) {
	r.lines = append(r.lines, strings.Repeat(indentUnit, r.depth)+message)
}

func (r *Recorder) StartScope() {
	r.depth++
}

func (r *Recorder) EndScope() {
	if r.depth > 0 {
		r.depth--
	}
}

// Lines returns the recorded lines, indentation included.
func (r *Recorder) Lines() []string {
	return r.lines
}

// Depth returns the number of scopes currently open.
func (r *Recorder) Depth() int {
	return r.depth
}

func (r *Recorder) String() string {
	return strings.Join(r.lines, "\n")
}
