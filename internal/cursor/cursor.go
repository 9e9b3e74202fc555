package cursor

// Cursor is a read-only view over a byte slice with a movable read position.
// The position only grows.
type Cursor struct {
	data []byte
	pos  int
}

func New(data []byte) Cursor {
	return Cursor{data: data}
}

// Remaining returns the unconsumed part of the data
func (c *Cursor) Remaining() []byte {
	return c.data[c.pos:]
}

// Advance moves the read position forward by exactly n bytes. It doesn't check
// the bounds: callers must advance only by lengths they already know are available,
// otherwise the next call to Remaining panics.
func (c *Cursor) Advance(n int) {
	c.pos += n
}

// Position returns the number of bytes consumed so far
func (c *Cursor) Position() int {
	return c.pos
}
