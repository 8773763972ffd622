package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestErrorCounter(t *testing.T) {
	before := ErrorCount()
	AddError()
	AddError()
	assert.Equal(t, before+2, ErrorCount())
}

func TestFrameIndex(t *testing.T) {
	SetFrame(7)
	assert.Equal(t, uint64(7), Frame())
	SetFrame(0)
	assert.Equal(t, uint64(0), Frame())
}

func TestUptimeAdvances(t *testing.T) {
	a := Uptime()
	time.Sleep(time.Millisecond)
	b := Uptime()
	assert.True(t, a > 0)
	assert.True(t, b > a)
}
