package nbfx

import "io"

// Cursor is a positioned view over an immutable byte buffer: a seekable
// stream with bounded (one byte) lookahead. It is the lowest layer the
// decoder is built on; every record decoder reads through it.
//
// The zero value is not usable; construct with newCursor.
type Cursor struct {
	buf []byte // immutable slice of data being decoded
	pos int    // current offset in buf
}

// newCursor creates a Cursor over buf, positioned at the start.
// It is critical that buf is not modified after it is passed to a Cursor.
func newCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf, pos: 0}
}

// Tell returns the current byte offset.
func (c *Cursor) Tell() int {
	return c.pos
}

// Len returns the total length of the underlying buffer.
func (c *Cursor) Len() int {
	return len(c.buf)
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

// Seek implements the io.Seeker interface. whence follows io.SeekStart,
// io.SeekCurrent, io.SeekEnd.
func (c *Cursor) Seek(offset int64, whence int) (int64, error) {
	var abs int
	switch whence {
	case io.SeekStart:
		abs = int(offset)
	case io.SeekCurrent:
		abs = c.pos + int(offset)
	case io.SeekEnd:
		abs = len(c.buf) + int(offset)
	default:
		return int64(c.pos), newDecodeError(DecodeValue, c.pos, errorf("invalid whence %d", whence))
	}
	if abs < 0 || abs > len(c.buf) {
		return int64(c.pos), newDecodeError(EndOfStream, c.pos, errorf("seek to %d out of bounds [0,%d]", abs, len(c.buf)))
	}
	c.pos = abs
	return int64(c.pos), nil
}

// ReadExact returns the next n bytes, advancing the cursor by n. On failure
// (fewer than n bytes remain) the cursor is left unmoved and a *DecodeError
// of kind EndOfStream is returned.
func (c *Cursor) ReadExact(n int) ([]byte, error) {
	if n < 0 || c.pos+n > len(c.buf) {
		return nil, newDecodeError(EndOfStream, c.pos, errorf("need %d bytes, have %d", n, c.Remaining()))
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// PeekByte returns the next byte without advancing the cursor. At EOF it
// returns a *DecodeError of kind EndOfStream.
func (c *Cursor) PeekByte() (byte, error) {
	if c.pos >= len(c.buf) {
		return 0, newDecodeError(EndOfStream, c.pos, errEndOfStream)
	}
	return c.buf[c.pos], nil
}

// PeekByteOK returns the next byte and whether one was available, without
// advancing the cursor and without allocating an error. Combinators that
// need to decide "stop or continue" use this instead of PeekByte so that
// reaching EOF is not itself an error.
func (c *Cursor) PeekByteOK() (byte, bool) {
	if c.pos >= len(c.buf) {
		return 0, false
	}
	return c.buf[c.pos], true
}

// ReadByte advances the cursor by one byte and returns it.
func (c *Cursor) ReadByte() (byte, error) {
	b, err := c.ReadExact(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadSignedBE reads n (1, 2, 4, or 8) big-endian bytes and interprets them
// as a two's-complement signed integer. Text-record signed integers in this
// format are written big-endian; this is the only big-endian multi-byte
// read the decoder performs (everything else is little-endian).
func (c *Cursor) ReadSignedBE(n int) (int64, error) {
	switch n {
	case 1, 2, 4, 8:
	default:
		panic(errorf("nbfx: ReadSignedBE requested width %d outside 1,2,4,8", n))
	}
	b, err := c.ReadExact(n)
	if err != nil {
		return 0, err
	}
	var u uint64
	for _, by := range b {
		u = (u << 8) | uint64(by)
	}
	// Sign-extend from the n*8-bit width to int64.
	shift := uint(64 - 8*n)
	return int64(u<<shift) >> shift, nil
}

// ReadUint64LE reads 8 little-endian bytes as an unsigned integer.
func (c *Cursor) ReadUint64LE() (uint64, error) {
	b, err := c.ReadExact(8)
	if err != nil {
		return 0, err
	}
	var u uint64
	for i := 7; i >= 0; i-- {
		u = (u << 8) | uint64(b[i])
	}
	return u, nil
}

// ReadInt64LE reads 8 little-endian bytes as a signed integer.
func (c *Cursor) ReadInt64LE() (int64, error) {
	u, err := c.ReadUint64LE()
	return int64(u), err
}

// ReadUint16LE reads 2 little-endian bytes as an unsigned integer.
func (c *Cursor) ReadUint16LE() (uint16, error) {
	b, err := c.ReadExact(2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0]) | uint16(b[1])<<8, nil
}
