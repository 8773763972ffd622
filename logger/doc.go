// Package logger is the public API of logvisor. Most users only need
// to import this package.
//
// A Module is a cheap per-subsystem handle; construct one per component
// and report through it:
//
//	var log = logger.NewModule("render")
//
//	log.Infof("loaded %d textures", n)
//	log.ReportSource(logger.Error, file, line, "bad shader: %s", name)
//
// Reports fan out to the registered sinks in registration order, under
// one global lock, so output from concurrent goroutines never
// interleaves. With no sinks registered logging is silent and nearly
// free; RegisterConsoleSink, RegisterFileSink, and RegisterZapSink turn
// output on and are idempotent, so libraries may call them defensively.
//
// Severity drives the dispatch epilogue: Error bumps the process-wide
// error counter (see ErrorCount) after invoking the Bp breakpoint hook;
// Fatal forces a console sink into existence so the message is never
// lost, delivers everywhere, runs Bp and OnFatal, and terminates the
// process. There is no return from a Fatal report.
//
// Logging is fully synchronous on the caller's goroutine. The global
// lock is re-entrant, so a sink or hook may itself report without
// deadlocking, and Shutdown downgrades it to a no-op so very late
// teardown code can still log without crashing.
package logger
