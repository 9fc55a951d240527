package snprintfs

import (
	"math/bits"
	"strings"
)

const pointerBits = bits.UintSize

// accepts lists the argument kinds each verb consumes.
var accepts = [...][]Kind{
	verbSigned:   {KindSigned},
	verbOctal:    {KindUnsigned},
	verbUnsigned: {KindUnsigned},
	verbHex:      {KindUnsigned},
	verbHexUpper: {KindUnsigned},
	verbString:   {KindString},
	verbChar:     {KindChar, KindSigned, KindUnsigned},
	verbPointer:  {KindAddress},
}

// argList hands out arguments in order.
type argList struct {
	args []Arg
	next int
}

func (l *argList) take(v verb, tmpl string, start, end int) (Arg, error) {
	if l.next >= len(l.args) {
		return Arg{}, &FormatError{Offset: start, Spec: tmpl[start : end+1], Arg: l.next, Err: ErrMissingArgument}
	}
	a := l.args[l.next]
	for _, k := range accepts[v] {
		if a.kind == k {
			l.next++
			return a, nil
		}
	}
	return Arg{}, &FormatError{Offset: start, Spec: tmpl[start : end+1], Arg: l.next, Kind: a.kind, Err: ErrArgumentType}
}

// cutNUL returns s up to its first NUL byte.
func cutNUL(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}
	return s
}

// interpret renders tmpl into c. It stops at the end of the template or its
// first NUL, when c is full, or at the first specifier it cannot render.
func (p Printer) interpret(c *cursor, tmpl string, args []Arg) error {
	tmpl = cutNUL(tmpl)
	list := argList{args: args}
	pos := 0
	for !c.full() && pos < len(tmpl) {
		end := strings.IndexByte(tmpl[pos:], '%')
		if end < 0 {
			end = len(tmpl)
		} else {
			end += pos
		}
		c.writeString(tmpl[pos:end])
		pos = end
		if c.full() || pos == len(tmpl) {
			return nil
		}

		start := pos
		d, at, err := scan(tmpl, pos+1, p.Lenient)
		if err != nil {
			return &FormatError{Offset: start, Spec: tmpl[start : at+1], Arg: -1, Err: err}
		}
		if d.verb == verbNone {
			return nil
		}
		if d.verb == verbPercent {
			c.writeByte('%')
			pos = at + 1
			continue
		}

		a, err := list.take(d.verb, tmpl, start, at)
		if err != nil {
			return err
		}
		render(c, d, a)
		pos = at + 1
	}
	return nil
}

func render(c *cursor, d descriptor, a Arg) {
	switch d.verb {
	case verbSigned:
		n := d.width.bits()
		writeSigned(c, narrowSigned(int64(a.bits), n), n)
	case verbOctal:
		writeUnsigned(c, narrowUnsigned(a.bits, d.width.bits()), 8, false)
	case verbUnsigned:
		writeUnsigned(c, narrowUnsigned(a.bits, d.width.bits()), 10, false)
	case verbHex:
		writeUnsigned(c, narrowUnsigned(a.bits, d.width.bits()), 16, false)
	case verbHexUpper:
		writeUnsigned(c, narrowUnsigned(a.bits, d.width.bits()), 16, true)
	case verbString:
		c.writeString(cutNUL(a.str))
	case verbChar:
		c.writeByte(byte(a.bits))
	case verbPointer:
		c.writeByte('0')
		c.writeByte('x')
		writeUnsigned(c, narrowUnsigned(a.bits, pointerBits), 16, false)
	}
}
