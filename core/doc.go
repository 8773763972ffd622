// Package core defines the shared types and process-wide state used
// across logvisor.
//
// It provides the Level type for report severity, the Report type that
// carries a single rendered log event to the sinks, the uptime clock
// anchored at process start, the frame index and error counters, and
// the thread-name registry that maps goroutines to display names.
//
// Everything here is either immutable after construction (Report) or
// safe for concurrent use without the dispatch lock: the counters are
// atomics and the thread-name registry carries its own RWMutex.
package core
