package phu

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
)

// cursor is a forward-only reader over the PHU byte stream that tracks its offset
type cursor struct {
	r      io.Reader
	offset int64
}

func newCursor(r io.Reader) *cursor {
	return &cursor{r: r}
}

// readExact reads the next n bytes - the offset only advances when all n are read
func (c *cursor) readExact(n int) ([]byte, error) {
	var result []byte
	if n <= 4096 {
		result = make([]byte, n)
		if got, err := io.ReadFull(c.r, result); err != nil {
			return nil, c.truncated(n, got, err)
		}
	} else {
		// don't trust declared lengths with an upfront allocation...
		var buf bytes.Buffer
		got, err := io.CopyN(&buf, c.r, int64(n))
		if err != nil {
			return nil, c.truncated(n, int(got), err)
		}
		result = buf.Bytes()
	}
	c.offset += int64(n)
	return result, nil
}

func (c *cursor) skip(n int64) error {
	got, err := io.CopyN(io.Discard, c.r, n)
	if err != nil {
		return c.truncated(int(n), int(got), err)
	}
	c.offset += n
	return nil
}

func (c *cursor) truncated(want, got int, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &TruncatedInputError{Offset: c.offset, Want: want, Got: got, Bin: -1}
	}
	return err
}

func (c *cursor) readInt32() (int32, error) {
	raw, err := c.readExact(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(raw)), nil
}

func (c *cursor) readUint32() (uint32, error) {
	raw, err := c.readExact(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(raw), nil
}

func (c *cursor) readInt64() (int64, error) {
	raw, err := c.readExact(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(raw)), nil
}

func (c *cursor) readFloat64() (float64, error) {
	raw, err := c.readExact(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(raw)), nil
}
