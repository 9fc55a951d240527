package snprintfs

// verb is the conversion selected by a specifier letter.
type verb uint8

const (
	verbNone verb = iota
	verbPercent
	verbSigned
	verbOctal
	verbUnsigned
	verbHex
	verbHexUpper
	verbString
	verbChar
	verbPointer
)

// width is the integer length modifier.
type width uint8

const (
	widthNative width = iota
	widthLong
	widthLongLong
)

const (
	nativeBits   = 32
	longBits     = 64
	longLongBits = 64
)

// bits returns the integer size the modifier selects.
func (w width) bits() int {
	switch w {
	case widthLong:
		return longBits
	case widthLongLong:
		return longLongBits
	default:
		return nativeBits
	}
}

// conversions maps each letter of the closed conversion set to its verb.
var conversions = [256]verb{
	'%': verbPercent,
	'd': verbSigned,
	'i': verbSigned,
	'o': verbOctal,
	'u': verbUnsigned,
	'x': verbHex,
	'X': verbHexUpper,
	's': verbString,
	'c': verbChar,
	'p': verbPointer,
}

// descriptor is one parsed conversion specifier.
type descriptor struct {
	verb  verb
	width width
}

// scan reads a specifier starting just after its '%' at pos. It returns the
// descriptor and the offset of the conversion letter. A zero verb with a nil
// error means the template ended first. Bytes that are neither 'l' nor a
// conversion letter are skipped when lenient and rejected otherwise; in that
// case the returned offset points at the offending byte.
func scan(tmpl string, pos int, lenient bool) (descriptor, int, error) {
	var d descriptor
	for ; pos < len(tmpl); pos++ {
		ch := tmpl[pos]
		if v := conversions[ch]; v != verbNone {
			d.verb = v
			return d, pos, nil
		}
		if ch == 'l' {
			if d.width < widthLongLong {
				d.width++
			}
			continue
		}
		if !lenient {
			return d, pos, ErrUnsupportedConversion
		}
	}
	return d, pos, nil
}
