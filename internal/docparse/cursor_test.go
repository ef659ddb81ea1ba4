package docparse

import (
	"testing"

	"github.com/dshills/docshift/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineCursorNext(t *testing.T) {
	c := NewLineCursor([]string{"one", "two"})

	line, err := c.Next()
	require.NoError(t, err)
	assert.Equal(t, "one", line)

	line, err = c.Next()
	require.NoError(t, err)
	assert.Equal(t, "two", line)

	assert.False(t, c.HasNext())
	_, err = c.Next()
	assert.ErrorIs(t, err, types.ErrExhausted)
}

func TestLineCursorNextN(t *testing.T) {
	c := NewLineCursor([]string{"one", "two", "three"})

	lines, err := c.NextN(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, lines)

	// Requesting past the end returns what remains.
	lines, err = c.NextN(5)
	require.NoError(t, err)
	assert.Equal(t, []string{"three"}, lines)

	_, err = c.NextN(1)
	assert.ErrorIs(t, err, types.ErrExhausted)
}

func TestLineCursorPeekClampsToFinalLine(t *testing.T) {
	c := NewLineCursor([]string{"one", "two"})
	_, _ = c.Next()
	_, _ = c.Next()

	// Exhausted cursors still peek the final line.
	assert.Equal(t, "two", c.Peek())
	assert.Equal(t, "two", c.PeekAt(99))
	assert.Equal(t, "one", c.PeekAt(0))
}

func TestLineCursorPeekDoesNotAdvance(t *testing.T) {
	c := NewLineCursor([]string{"one", "two"})
	assert.Equal(t, "one", c.Peek())
	assert.Equal(t, "one", c.Peek())
	assert.Equal(t, 0, c.Pos())

	assert.Equal(t, []string{"one", "two"}, c.PeekN(2))
	assert.Equal(t, 0, c.Pos())
}

func TestLineCursorSeekClamps(t *testing.T) {
	c := NewLineCursor([]string{"one", "two"})

	c.Seek(-5)
	assert.Equal(t, 0, c.Pos())

	c.Seek(99)
	assert.Equal(t, 2, c.Pos())
	assert.False(t, c.HasNext())

	c.Seek(1)
	line, err := c.Next()
	require.NoError(t, err)
	assert.Equal(t, "two", line)
}

func TestLineCursorEmpty(t *testing.T) {
	c := NewLineCursor(nil)
	assert.False(t, c.HasNext())
	assert.Equal(t, "", c.Peek())
	_, err := c.Next()
	assert.ErrorIs(t, err, types.ErrExhausted)
}
