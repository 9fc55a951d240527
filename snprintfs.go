package snprintfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidCapacity       = errors.New("invalid capacity")
	ErrUnsupportedConversion = errors.New("unsupported conversion")
	ErrMissingArgument       = errors.New("missing argument")
	ErrArgumentType          = errors.New("argument type mismatch")
	ErrUnsupportedType       = errors.New("unsupported value type")
	ErrInvalidCase           = errors.New("invalid case")
	ErrMismatch              = errors.New("output mismatch")
)

// FormatError reports a specifier that could not be rendered.
type FormatError struct {
	// Offset is the byte offset of the specifier's '%' in the template.
	Offset int
	// Spec is the specifier text up to and including the byte that failed.
	Spec string
	// Arg is the index of the argument involved, or -1.
	Arg int
	// Kind is the kind of the rejected argument for ErrArgumentType.
	Kind Kind
	// Err is the sentinel the error unwraps to.
	Err error
}

func (e *FormatError) Error() string {
	switch {
	case errors.Is(e.Err, ErrArgumentType):
		return fmt.Sprintf("%v: %q at offset %d cannot take argument %d (%s)", e.Err, e.Spec, e.Offset, e.Arg, e.Kind)
	case e.Arg >= 0:
		return fmt.Sprintf("%v: %q at offset %d wants argument %d", e.Err, e.Spec, e.Offset, e.Arg)
	default:
		return fmt.Sprintf("%v: %q at offset %d", e.Err, e.Spec, e.Offset)
	}
}

func (e *FormatError) Unwrap() error { return e.Err }

// Printer formats templates into bounded buffers. The zero value is strict:
// any byte between '%' and the conversion letter other than 'l' is an
// [ErrUnsupportedConversion].
type Printer struct {
	// Lenient skips unrecognised bytes inside a specifier until a
	// conversion letter is found.
	Lenient bool
}

var std Printer

// Format writes at most size-1 bytes of the rendered template into dst,
// followed by a NUL byte, and returns the number of bytes written before
// the NUL. The count is what was actually written, not the untruncated
// length. A size of 0 writes nothing and returns 0.
//
// On a [FormatError] the output produced so far is kept and terminated, and
// its length is returned along with the error.
func (p Printer) Format(dst []byte, size int, tmpl string, args ...Arg) (int, error) {
	if size < 0 || size > len(dst) {
		return 0, fmt.Errorf("%w: size %d for buffer of %d bytes", ErrInvalidCapacity, size, len(dst))
	}
	if size == 0 {
		return 0, nil
	}
	c := newCursor(dst[:size], size-1)
	err := p.interpret(&c, tmpl, args)
	dst[c.off] = 0
	return c.off, err
}

// Snprintf is Format with size len(dst).
func (p Printer) Snprintf(dst []byte, tmpl string, args ...Arg) (int, error) {
	return p.Format(dst, len(dst), tmpl, args...)
}

// Format formats with the strict [Printer].
func Format(dst []byte, size int, tmpl string, args ...Arg) (int, error) {
	return std.Format(dst, size, tmpl, args...)
}

// Snprintf formats into all of dst with the strict [Printer].
func Snprintf(dst []byte, tmpl string, args ...Arg) (int, error) {
	return std.Snprintf(dst, tmpl, args...)
}

// Sprintf captures vals with [Values] and returns the output that fits in
// a buffer of size bytes, without the terminator.
func Sprintf(size int, tmpl string, vals ...any) (string, error) {
	args, err := Values(vals...)
	if err != nil {
		return "", err
	}
	out, err := std.Marshal(size, tmpl, args...)
	return string(out), err
}
