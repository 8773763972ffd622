package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelString(t *testing.T) {
	assert.Equal(t, "INFO", Info.String())
	assert.Equal(t, "WARNING", Warning.String())
	assert.Equal(t, "ERROR", Error.String())
	assert.Equal(t, "FATAL ERROR", Fatal.String())
	assert.Equal(t, "UNKNOWN", Level(42).String())
}

func TestLevelOrdering(t *testing.T) {
	assert.True(t, Info < Warning)
	assert.True(t, Warning < Error)
	assert.True(t, Error < Fatal)
}
