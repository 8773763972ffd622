package core

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
)

var (
	threadMu    sync.RWMutex
	threadNames = map[uint64]string{}
)

// RegisterThreadName assigns the calling goroutine a display name shown
// in report headers. Re-registering overwrites the previous name.
// Entries live for the rest of the process. The name is also pushed to
// the OS thread best-effort; that only sticks when the caller has locked
// its OS thread.
func RegisterThreadName(name string) {
	id := GoroutineID()
	threadMu.Lock()
	threadNames[id] = name
	threadMu.Unlock()
	setOSThreadName(name)
}

// ThreadName returns the display name registered for the calling
// goroutine, or "" when none was registered.
func ThreadName() string {
	id := GoroutineID()
	threadMu.RLock()
	name := threadNames[id]
	threadMu.RUnlock()
	return name
}

var goroutinePrefix = []byte("goroutine ")

// GoroutineID parses the id of the calling goroutine out of the
// runtime.Stack header line ("goroutine 18 [running]:"). It keys the
// thread-name registry and the ownership check of the global log lock.
func GoroutineID() uint64 {
	var buf [32]byte
	n := runtime.Stack(buf[:], false)
	b := bytes.TrimPrefix(buf[:n], goroutinePrefix)
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	id, _ := strconv.ParseUint(string(b), 10, 64)
	return id
}
