package snprintfs

// cursor is a bounded write position over a caller-owned buffer.
// off+left stays equal to the capacity it was created with.
type cursor struct {
	buf  []byte
	off  int
	left int
}

func newCursor(buf []byte, capacity int) cursor {
	return cursor{buf: buf, left: capacity}
}

// full reports whether no capacity remains.
func (c *cursor) full() bool { return c.left == 0 }

func (c *cursor) writeByte(v byte) {
	if c.left == 0 {
		return
	}
	c.buf[c.off] = v
	c.off++
	c.left--
}

// writeString copies as much of s as fits and drops the rest.
func (c *cursor) writeString(s string) {
	n := copy(c.buf[c.off:c.off+c.left], s)
	c.off += n
	c.left -= n
}
