package core

import "time"

// start anchors the uptime clock. It is sampled once at package init so
// every report across the process shares the same zero point.
var start = time.Now()

// Uptime returns the monotonic duration since process start. It is the
// timestamp carried by every report.
func Uptime() time.Duration {
	return time.Since(start)
}
