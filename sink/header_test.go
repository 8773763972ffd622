package sink

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/philipp01105/logvisor/core"
)

func TestWriteHeadAllFields(t *testing.T) {
	r := &core.Report{
		Module:    "kernel",
		Level:     core.Error,
		File:      "foo.c",
		Line:      42,
		HasSource: true,
		Uptime:    12345600 * time.Microsecond,
		Frame:     7,
		Thread:    "main",
	}

	var buf bytes.Buffer
	writeHead(&buf, r)
	assert.Equal(t, "[12.3456 (7) ERROR kernel {foo.c:42} (main)] ", buf.String())
}

func TestWriteHeadMinimal(t *testing.T) {
	r := &core.Report{
		Module: "net",
		Level:  core.Info,
		Uptime: 500 * time.Millisecond,
	}

	var buf bytes.Buffer
	writeHead(&buf, r)
	assert.Equal(t, "[0.5000 INFO net] ", buf.String())
}

func TestWriteHeadFrameZeroSuppressed(t *testing.T) {
	r := &core.Report{Module: "net", Level: core.Warning, Frame: 0}

	var buf bytes.Buffer
	writeHead(&buf, r)
	assert.NotContains(t, buf.String(), "(")
	assert.Contains(t, buf.String(), "WARNING")
}
