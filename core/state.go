package core

import "sync/atomic"

var (
	errorCount atomic.Uint64
	frameIndex atomic.Uint64
)

// AddError increments the process-wide error counter. The dispatch core
// calls it once per Error or Fatal report.
func AddError() {
	errorCount.Add(1)
}

// ErrorCount returns the number of Error and Fatal reports dispatched so
// far. Host applications typically consult it at exit time to decide on
// a non-zero status.
func ErrorCount() uint64 {
	return errorCount.Load()
}

// SetFrame publishes the host application's frame index. Zero means
// "not applicable" and suppresses the frame field in report headers.
// Expected to be called once per application tick.
func SetFrame(v uint64) {
	frameIndex.Store(v)
}

// Frame returns the current frame index.
func Frame() uint64 {
	return frameIndex.Load()
}
