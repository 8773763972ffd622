package core

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReportSourceInfo(t *testing.T) {
	r := &Report{File: "foo.c", Line: 42, HasSource: true}
	assert.Equal(t, "foo.c:42", r.SourceInfo())
}

func TestReportSourceInfoAbsent(t *testing.T) {
	r := &Report{File: "foo.c", Line: 42}
	assert.Equal(t, "", r.SourceInfo())
}

func TestReportSourceInfoTruncated(t *testing.T) {
	r := &Report{File: strings.Repeat("a", 300), Line: 7, HasSource: true}
	src := r.SourceInfo()
	assert.Len(t, src, 128)
	assert.True(t, strings.HasPrefix(src, "aaa"))
}

func TestReportSeconds(t *testing.T) {
	r := &Report{Uptime: 1500 * time.Millisecond}
	assert.InDelta(t, 1.5, r.Seconds(), 1e-9)
}
