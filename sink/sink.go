package sink

import "github.com/philipp01105/logvisor/core"

// Sink receives reports from the dispatch core and writes them to a
// destination.
type Sink interface {
	// Deliver writes a single report. Deliver must be atomic with
	// respect to concurrent Deliver calls on the same sink. Errors are
	// best-effort signals; the dispatch core does not abort a fan-out
	// over them.
	Deliver(r *core.Report) error

	// Kind identifies the sink class for duplicate detection during
	// registration.
	Kind() string
}

// Kind labels of the built-in sinks.
const (
	KindConsole = "console"
	KindFile    = "file"
	KindZap     = "zap"
)
