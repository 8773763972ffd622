package logger

import (
	"os"

	"github.com/philipp01105/logvisor/core"
)

// osExit is a variable to allow overriding os.Exit in tests
var osExit = os.Exit

// Bp is the debugger-breakpoint hook, invoked after delivery of every
// Error and Fatal report. The default is a no-op; hosts may point it at
// a hardware breakpoint or a crash-reporter probe.
var Bp = func() {}

// OnFatal runs best-effort right before a Fatal report terminates the
// process, as a hook point for process-tree cleanup and similar side
// channels.
var OnFatal = func() {}

// Module is a per-subsystem dispatch handle carrying the module name
// shown in every report header. Construct one per component; the zero
// cost of a Module makes package-level instances the usual pattern.
type Module struct {
	name string
}

// NewModule creates a dispatch handle for the named subsystem.
func NewModule(name string) *Module {
	return &Module{name: name}
}

// Name returns the module name shown in report headers.
func (m *Module) Name() string {
	return m.name
}

// Report renders format with args once per sink and delivers the result
// to every registered sink in registration order. With no sinks
// registered and a severity below Fatal it returns immediately without
// rendering. Error bumps the process error counter; Fatal additionally
// forces a console sink into existence first and terminates the process
// after delivery. Calls from concurrent goroutines are totally ordered.
func (m *Module) Report(level core.Level, format string, args ...interface{}) {
	m.dispatch(level, "", 0, format, args)
}

// ReportSource is Report with an explicit source location ("file:line")
// threaded into every sink's header.
func (m *Module) ReportSource(level core.Level, file string, line int, format string, args ...interface{}) {
	m.dispatch(level, file, line, format, args)
}

// Infof reports at Info severity.
func (m *Module) Infof(format string, args ...interface{}) {
	m.dispatch(core.Info, "", 0, format, args)
}

// Warnf reports at Warning severity.
func (m *Module) Warnf(format string, args ...interface{}) {
	m.dispatch(core.Warning, "", 0, format, args)
}

// Errorf reports at Error severity.
func (m *Module) Errorf(format string, args ...interface{}) {
	m.dispatch(core.Error, "", 0, format, args)
}

// Fatalf reports at Fatal severity and does not return.
func (m *Module) Fatalf(format string, args ...interface{}) {
	m.dispatch(core.Fatal, "", 0, format, args)
}

func (m *Module) dispatch(level core.Level, file string, line int, format string, args []interface{}) {
	s := getState()
	s.mu.Lock()

	// Nobody listening: skip the render entirely. Fatal still has to
	// surface somewhere and falls through to the console ensure below.
	if len(s.sinks) == 0 && level != core.Fatal {
		s.mu.Unlock()
		return
	}

	s.logCount++
	if level == core.Fatal {
		RegisterConsoleSink() // re-enters the log lock
	}

	r := core.Report{
		Module:    m.name,
		Level:     level,
		File:      file,
		Line:      line,
		HasSource: file != "",
		Uptime:    core.Uptime(),
		Frame:     core.Frame(),
		Thread:    core.ThreadName(),
	}
	for _, sk := range s.sinks {
		// Rendered once per sink, not once per dispatch: a sink may
		// buffer or mutate the bytes it is handed.
		r.Msg = s.render(format, args...)
		_ = sk.Deliver(&r)
	}
	s.mu.Unlock()

	switch level {
	case core.Error:
		Bp()
		core.AddError()
	case core.Fatal:
		Bp()
		core.AddError()
		OnFatal()
		osExit(1)
	}
}
