package logger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReentrantLock(t *testing.T) {
	var m reentrantMutex

	m.Lock()
	m.Lock() // same goroutine, must not deadlock
	m.Unlock()
	m.Unlock()

	// Fully released: another goroutine can acquire.
	acquired := make(chan struct{})
	go func() {
		m.Lock()
		m.Unlock()
		close(acquired)
	}()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("lock not released after matching unlocks")
	}
}

func TestReentrantLockExcludesOthers(t *testing.T) {
	var m reentrantMutex
	m.Lock()

	acquired := make(chan struct{})
	go func() {
		m.Lock()
		close(acquired)
		m.Unlock()
	}()

	select {
	case <-acquired:
		t.Fatal("second goroutine acquired a held lock")
	case <-time.After(50 * time.Millisecond):
	}

	m.Unlock()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("lock never handed over")
	}
}

func TestTeardownDowngradesLock(t *testing.T) {
	var m reentrantMutex
	m.Lock() // never released: teardown must still let others through

	m.teardown()

	done := make(chan struct{})
	go func() {
		m.Lock()
		m.Unlock()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("torn-down lock still blocks")
	}
}

func TestTeardownIsSticky(t *testing.T) {
	var m reentrantMutex
	m.teardown()
	m.Lock()
	m.Lock()
	m.Unlock()
	assert.True(t, m.down.Load())
}
