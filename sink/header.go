package sink

import (
	"bytes"
	"fmt"
	"strconv"
	"sync"

	"github.com/philipp01105/logvisor/core"
)

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// writeHead writes the plain-text report header into buf:
//
//	[<uptime> (<frame>) <SEVERITY> <module> {<file>:<line>} (<thread>)]
//
// Optional fields are omitted when not applicable: the frame index when
// zero, the source location and thread name when unset.
func writeHead(buf *bytes.Buffer, r *core.Report) {
	buf.WriteByte('[')
	fmt.Fprintf(buf, "%5.4f ", r.Seconds())
	if r.Frame != 0 {
		buf.WriteByte('(')
		buf.WriteString(strconv.FormatUint(r.Frame, 10))
		buf.WriteString(") ")
	}
	buf.WriteString(r.Level.String())
	buf.WriteByte(' ')
	buf.WriteString(r.Module)
	if src := r.SourceInfo(); src != "" {
		buf.WriteString(" {")
		buf.WriteString(src)
		buf.WriteByte('}')
	}
	if r.Thread != "" {
		buf.WriteString(" (")
		buf.WriteString(r.Thread)
		buf.WriteByte(')')
	}
	buf.WriteString("] ")
}
