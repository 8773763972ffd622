package logger

import (
	"sync"
	"sync/atomic"

	"github.com/philipp01105/logvisor/core"
)

// reentrantMutex is a mutex the owning goroutine may re-acquire, so a
// sink or hook running under dispatch can itself dispatch (the fatal
// path registers a console sink this way). After teardown every Lock
// and Unlock degrades to a no-op: very late shutdown logging runs
// unsynchronized instead of crashing.
type reentrantMutex struct {
	mu    sync.Mutex
	owner atomic.Uint64 // goroutine id of the holder, 0 when free
	depth int           // re-acquisition depth, only touched by the holder
	down  atomic.Bool
}

func (m *reentrantMutex) Lock() {
	if m.down.Load() {
		return
	}
	id := core.GoroutineID()
	if m.owner.Load() == id {
		m.depth++
		return
	}
	m.mu.Lock()
	m.owner.Store(id)
	m.depth = 1
}

func (m *reentrantMutex) Unlock() {
	if m.down.Load() {
		return
	}
	m.depth--
	if m.depth == 0 {
		m.owner.Store(0)
		m.mu.Unlock()
	}
}

// teardown permanently downgrades the mutex to a no-op. If a holder is
// mid-critical-section the underlying mutex stays locked; that is fine,
// nothing will ever wait on it again.
func (m *reentrantMutex) teardown() {
	m.down.Store(true)
}
