// Package sink provides the Sink interface and its built-in
// implementations for writing dispatched reports to their destinations.
//
// Every sink owns a private mutex around its I/O handle, so header and
// message body always reach the destination as one atomic unit even if
// the dispatch core is ever changed to deliver to sinks in parallel.
// This lock is distinct from the dispatch core's global log lock.
//
// Built-in sinks:
//
//   - ConsoleSink writes single, optionally ANSI-colored lines to the
//     process error stream, clearing the current terminal line first so
//     progress-style output does not leave stale characters behind.
//   - FileSink appends plain-text lines to a file, reopening the file
//     around every write so external truncation or rotation between
//     writes is safe.
//   - ZapSink forwards reports into a zap.Logger, letting applications
//     that already run a zap pipeline receive dispatch output.
//
// Sink delivery is best-effort: a failing sink returns its error but the
// dispatch core never lets one destination block the others.
package sink
