package snprintfs

const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
)

// scratchSize holds the base-8 digits of a 64-bit value with room to spare.
const scratchSize = 32

// scratch collects digits least significant first.
type scratch struct {
	buf [scratchSize]byte
	n   int
}

func (s *scratch) push(d byte) {
	s.buf[s.n] = d
	s.n++
}

// emit writes the collected digits most significant first.
func (s *scratch) emit(c *cursor) {
	for i := s.n - 1; i >= 0 && !c.full(); i-- {
		c.writeByte(s.buf[i])
	}
}

// narrowSigned sign-extends the low bits of v.
func narrowSigned(v int64, bits int) int64 {
	shift := 64 - bits
	return v << shift >> shift
}

// narrowUnsigned keeps the low bits of v.
func narrowUnsigned(v uint64, bits int) uint64 {
	if bits >= 64 {
		return v
	}
	return v & (1<<bits - 1)
}

func writeUnsigned(c *cursor, v uint64, base uint64, upper bool) {
	if v == 0 {
		c.writeByte('0')
		return
	}
	digits := lowerDigits
	if upper {
		digits = upperDigits
	}
	var s scratch
	for v != 0 {
		s.push(digits[v%base])
		v /= base
	}
	s.emit(c)
}

// writeSigned renders v, already narrowed to bits, in decimal.
//
// The minimum value of the width cannot be negated. It is bumped by one
// first, and the least significant digit is bumped back after extraction.
// The last digit of a power of two is never 9, so no carry is needed.
func writeSigned(c *cursor, v int64, bits int) {
	if v == 0 {
		c.writeByte('0')
		return
	}
	negative := v < 0
	isMin := v == -1<<(bits-1)
	value := v
	if isMin {
		value++
	}
	if negative {
		value = -value
	}
	var s scratch
	for value != 0 {
		s.push(lowerDigits[value%10])
		value /= 10
	}
	if isMin {
		s.buf[0]++
	}
	if negative {
		c.writeByte('-')
	}
	s.emit(c)
}
