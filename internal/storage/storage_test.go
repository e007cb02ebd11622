package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryReadWrite(t *testing.T) {
	mem := NewMemory()

	_, ok := mem.Read("missing")
	assert.False(t, ok)

	require.NoError(t, mem.Write("k", "v1"))
	value, ok := mem.Read("k")
	require.True(t, ok)
	assert.Equal(t, "v1", value)

	// Last write wins.
	require.NoError(t, mem.Write("k", "v2"))
	value, _ = mem.Read("k")
	assert.Equal(t, "v2", value)
}
