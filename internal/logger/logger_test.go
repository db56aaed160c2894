package logger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, json := range []bool{true, false} {
		for _, debug := range []bool{true, false} {
			log, err := New(json, debug)
			require.NoError(t, err)
			require.NotNil(t, log)
		}
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abc...", Truncate("abcdef", 3))
	assert.Equal(t, "", Truncate("anything", 0))
	assert.Equal(t, "trimmed", Truncate("  trimmed  ", 10))

	long := strings.Repeat("é", 20)
	assert.Equal(t, strings.Repeat("é", 5)+"...", Truncate(long, 5), "counts runes, not bytes")
}
