package core

import (
	"strconv"
	"time"
)

// maxSourceInfo bounds the {file:line} header field.
const maxSourceInfo = 128

// Report is a single log event on its way to the sinks. It is built
// inside a dispatch call and consumed immediately; sinks must not retain
// it or the Msg bytes past their Deliver call.
type Report struct {
	Module    string
	Level     Level
	File      string
	Line      int
	HasSource bool
	Msg       []byte
	Uptime    time.Duration
	Frame     uint64
	Thread    string
}

// SourceInfo returns the "<file>:<line>" header field, truncated to a
// bounded length. Empty when the report carries no source location.
func (r *Report) SourceInfo() string {
	if !r.HasSource {
		return ""
	}
	s := r.File + ":" + strconv.Itoa(r.Line)
	if len(s) > maxSourceInfo {
		s = s[:maxSourceInfo]
	}
	return s
}

// Seconds returns the uptime timestamp as floating-point seconds, the
// unit used by the report header.
func (r *Report) Seconds() float64 {
	return r.Uptime.Seconds()
}
