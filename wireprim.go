package zki

import (
	"encoding/binary"
	"fmt"
	"io"
)

// writeU64 writes a fixed-width little-endian uint64, the wire encoding
// used for variable IDs and free_variable_id.
func writeU64(w io.Writer, v uint64) error {
	var b [8]byte
	enc.PutUint64(b[:], v)
	_, err := w.Write(b[:])
	return err
}

// writeUvarint/readUvarint encode counts and lengths compactly: small
// tables (the common case) cost one byte instead of four or eight.
func writeUvarint(w io.Writer, v uint64) error {
	var b [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(b[:], v)
	_, err := w.Write(b[:n])
	return err
}

// writeBytes writes a length-prefixed byte string.
func writeBytes(w io.Writer, b []byte) error {
	if err := writeUvarint(w, uint64(len(b))); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

// writeString writes a length-prefixed UTF-8 string.
func writeString(w io.Writer, s string) error {
	return writeBytes(w, []byte(s))
}

// cursor decodes a tagged record body by slicing directly into the
// underlying buffer rather than copying: the hot ingestion path this
// serves never allocates for byte-string or integer fields (the "view"
// half of the view/owned split).
type cursor struct {
	buf []byte
	pos int
}

func newCursor(buf []byte) *cursor {
	return &cursor{buf: buf}
}

var errShortRecord = fmt.Errorf("zki: malformed record: unexpected end of data")

func (c *cursor) readByte() (byte, error) {
	if c.pos >= len(c.buf) {
		return 0, errShortRecord
	}
	b := c.buf[c.pos]
	c.pos++
	return b, nil
}

func (c *cursor) readBool() (bool, error) {
	b, err := c.readByte()
	return b != 0, err
}

func (c *cursor) readN(n int) ([]byte, error) {
	if n < 0 || c.pos+n > len(c.buf) {
		return nil, errShortRecord
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

func (c *cursor) readU64() (uint64, error) {
	b, err := c.readN(8)
	if err != nil {
		return 0, err
	}
	return enc.Uint64(b), nil
}

func (c *cursor) readUvarint() (uint64, error) {
	v, n := binary.Uvarint(c.buf[c.pos:])
	if n <= 0 {
		return 0, errShortRecord
	}
	c.pos += n
	return v, nil
}

// readBytes returns a subslice of the cursor's underlying buffer: callers
// that must outlive the buffer (owned types) are responsible for copying.
func (c *cursor) readBytes() ([]byte, error) {
	n, err := c.readUvarint()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return c.readN(int(n))
}

func (c *cursor) readString() (string, error) {
	b, err := c.readBytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
