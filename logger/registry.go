package logger

import (
	"sync"

	"go.uber.org/zap"

	"github.com/philipp01105/logvisor/core"
	"github.com/philipp01105/logvisor/sink"
)

// state is the process-wide dispatch context: the ordered sink registry,
// the global log lock, and the fields it guards.
type state struct {
	mu       reentrantMutex
	sinks    []sink.Sink
	logCount uint64
	render   core.Renderer
}

var (
	global     *state
	globalOnce sync.Once
)

func getState() *state {
	globalOnce.Do(func() {
		global = &state{render: core.Sprintf}
	})
	return global
}

// RegisterConsoleSink appends a console sink unless one is already
// registered, in which case it is a no-op. The fatal dispatch path calls
// this under the log lock, which is why the lock must be re-entrant.
func RegisterConsoleSink() {
	s := getState()
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sk := range s.sinks {
		if sk.Kind() == sink.KindConsole {
			return
		}
	}
	s.sinks = append(s.sinks, sink.NewConsoleSink())
}

// RegisterFileSink appends a file sink for path unless one with the
// exact same path string is already registered. Paths are compared
// byte-for-byte, not canonicalized: two different spellings of one file
// yield two independent sinks.
func RegisterFileSink(path string) {
	s := getState()
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sk := range s.sinks {
		if fs, ok := sk.(*sink.FileSink); ok && fs.Path() == path {
			return
		}
	}
	s.sinks = append(s.sinks, sink.NewFileSink(path))
}

// RegisterZapSink appends a sink forwarding reports to z. Idempotent per
// kind: at most one zap sink is registered regardless of call count.
func RegisterZapSink(z *zap.Logger) {
	RegisterSink(sink.NewZapSink(z))
}

// RegisterSink appends a custom sink unless one of the same kind is
// already registered. File sinks carry their destination in their
// identity; register those through RegisterFileSink to get per-path
// deduplication.
func RegisterSink(ns sink.Sink) {
	s := getState()
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sk := range s.sinks {
		if sk.Kind() == ns.Kind() {
			return
		}
	}
	s.sinks = append(s.sinks, ns)
}

// ClearSinks drops every registered sink, restoring silent operation.
// Safe to call at any time, but callers are responsible for not racing
// it against in-flight dispatches they still care about.
func ClearSinks() {
	s := getState()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sinks = nil
}

// LogCount returns the total number of dispatches performed so far,
// whether or not any sink was registered at the time. Mostly useful for
// diagnostics and tests.
func LogCount() uint64 {
	s := getState()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logCount
}

// ErrorCount returns the number of Error and Fatal reports dispatched so
// far. Host applications typically consult it at exit time.
func ErrorCount() uint64 {
	return core.ErrorCount()
}

// SetFrameIndex publishes the host application's frame counter, shown in
// report headers while non-zero. Expected once per tick; zero suppresses
// the field again.
func SetFrameIndex(v uint64) {
	core.SetFrame(v)
}

// RegisterThreadName assigns the calling goroutine a display name shown
// in report headers. Re-calling overwrites.
func RegisterThreadName(name string) {
	core.RegisterThreadName(name)
}

// SetRenderer swaps the text-interpolation collaborator used to render
// format strings into message bytes. A nil r restores the default fmt
// renderer.
func SetRenderer(r core.Renderer) {
	s := getState()
	s.mu.Lock()
	defer s.mu.Unlock()
	if r == nil {
		r = core.Sprintf
	}
	s.render = r
}

// Shutdown downgrades the global log lock to a no-op, for the very end
// of process teardown: logging afterwards is unsynchronized but does not
// crash. There is no way back.
func Shutdown() {
	getState().mu.teardown()
}
