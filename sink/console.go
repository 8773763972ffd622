package sink

import (
	"bytes"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	colorable "github.com/mattn/go-colorable"
	isatty "github.com/mattn/go-isatty"

	"github.com/philipp01105/logvisor/core"
)

var (
	colorOnce  sync.Once
	xtermColor bool
)

// detectColor latches the process-wide ANSI color flag on first use.
// Color requires stderr to be a terminal and either an xterm-family TERM
// or ConEmu with ANSI enabled; anything else degrades to plain text.
func detectColor() bool {
	colorOnce.Do(func() {
		fd := os.Stderr.Fd()
		if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
			return
		}
		if strings.HasPrefix(os.Getenv("TERM"), "xterm") || os.Getenv("ConEmuANSI") == "ON" {
			xtermColor = true
		}
	})
	return xtermColor
}

// ConsoleSink writes reports to the process error stream as single
// human-readable lines. An inner mutex keeps header and body atomic when
// several goroutines dispatch concurrently.
type ConsoleSink struct {
	mu sync.Mutex
	w  io.Writer

	bracket *color.Color
	uptime  *color.Color
	src     *color.Color
	thread  *color.Color
	info    *color.Color
	warn    *color.Color
	errc    *color.Color
}

// NewConsoleSink constructs a console sink attached to stderr. The color
// decision is latched process-wide by the first console sink built.
func NewConsoleSink() *ConsoleSink {
	enable := detectColor()
	var w io.Writer = os.Stderr
	if enable {
		w = colorable.NewColorableStderr()
	}
	return newConsoleSink(w, enable)
}

func newConsoleSink(w io.Writer, enableColor bool) *ConsoleSink {
	s := &ConsoleSink{
		w:       w,
		bracket: color.New(color.Bold),
		uptime:  color.New(color.FgGreen, color.Bold),
		src:     color.New(color.FgYellow, color.Bold),
		thread:  color.New(color.FgMagenta, color.Bold),
		info:    color.New(color.FgCyan, color.Bold),
		warn:    color.New(color.FgYellow, color.Bold),
		errc:    color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{s.bracket, s.uptime, s.src, s.thread, s.info, s.warn, s.errc} {
		if enableColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// Kind implements Sink.
func (s *ConsoleSink) Kind() string {
	return KindConsole
}

// Deliver implements Sink. The current terminal line is cleared first
// (overwrite with spaces, carriage return) so repeated progress-style
// logging does not interleave stale characters with the report.
func (s *ConsoleSink) Deliver(r *core.Report) error {
	buf := getBuffer()
	defer putBuffer(buf)

	width := consoleWidth()
	buf.WriteByte('\r')
	for i := 0; i < width; i++ {
		buf.WriteByte(' ')
	}
	buf.WriteByte('\r')

	s.writeHead(buf, r)
	buf.Write(r.Msg)
	buf.WriteByte('\n')

	s.mu.Lock()
	_, err := s.w.Write(buf.Bytes())
	s.mu.Unlock()
	return err
}

// writeHead mirrors the plain header layout with per-field coloring.
// With color disabled the Sprint calls pass the text through unchanged,
// so plain console output is byte-identical to the file sink header.
func (s *ConsoleSink) writeHead(buf *bytes.Buffer, r *core.Report) {
	buf.WriteString(s.bracket.Sprint("["))
	buf.WriteString(s.uptime.Sprintf("%5.4f ", r.Seconds()))
	if r.Frame != 0 {
		buf.WriteString(s.uptime.Sprintf("(%d) ", r.Frame))
	}
	buf.WriteString(s.levelColor(r.Level).Sprint(r.Level.String()))
	buf.WriteString(s.bracket.Sprint(" " + r.Module))
	if src := r.SourceInfo(); src != "" {
		buf.WriteString(s.src.Sprint(" {" + src + "}"))
	}
	if r.Thread != "" {
		buf.WriteString(s.thread.Sprint(" (" + r.Thread + ")"))
	}
	buf.WriteString(s.bracket.Sprint("] "))
}

func (s *ConsoleSink) levelColor(l core.Level) *color.Color {
	switch l {
	case core.Info:
		return s.info
	case core.Warning:
		return s.warn
	default:
		return s.errc
	}
}
