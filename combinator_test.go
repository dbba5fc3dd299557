package nbfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepeatWhilePeekStopsAtEOF(t *testing.T) {
	c := newCursor([]byte{1, 1, 1})
	count := 0
	err := repeatWhilePeek(c, func(b byte) bool { return b == 1 }, func() error {
		count++
		_, e := c.ReadByte()
		return e
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestRepeatWhilePeekStopsAtRejectedByte(t *testing.T) {
	c := newCursor([]byte{1, 1, 2, 1})
	count := 0
	err := repeatWhilePeek(c, func(b byte) bool { return b == 1 }, func() error {
		count++
		_, e := c.ReadByte()
		return e
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 2, c.Tell())
}

func TestRepeatWhilePeekPropagatesError(t *testing.T) {
	c := newCursor([]byte{1, 1})
	sentinel := errorf("boom")
	err := repeatWhilePeek(c, func(b byte) bool { return true }, func() error {
		return sentinel
	})
	assert.Equal(t, sentinel, err)
}
