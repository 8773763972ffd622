package sink

import (
	"os"
	"sync"

	"github.com/pkg/errors"

	"github.com/philipp01105/logvisor/core"
)

// FileSink appends reports to a file. The file is opened right before
// each write and closed right after: per-call open/close overhead is
// traded for resilience against handles held across process suspensions
// and for safe external truncation or rotation between writes.
type FileSink struct {
	mu   sync.Mutex
	path string
}

// NewFileSink constructs a file sink appending to path. The file itself
// is not touched until the first report arrives.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Path returns the destination path exactly as given at construction.
// Registration compares these byte-for-byte, not canonicalized: two
// spellings of the same file count as two independent sinks.
func (s *FileSink) Path() string {
	return s.path
}

// Kind implements Sink.
func (s *FileSink) Kind() string {
	return KindFile
}

// Deliver implements Sink.
func (s *FileSink) Deliver(r *core.Report) error {
	buf := getBuffer()
	defer putBuffer(buf)

	writeHead(buf, r)
	buf.Write(r.Msg)
	buf.WriteByte('\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return errors.Wrapf(err, "open log file %s", s.path)
	}
	_, werr := f.Write(buf.Bytes())
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	return werr
}
