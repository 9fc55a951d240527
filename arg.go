package snprintfs

import (
	"fmt"
	"reflect"
	"strconv"
	"unsafe"

	"gopkg.in/yaml.v3"
)

// Kind tags the value an [Arg] carries.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindSigned
	KindUnsigned
	KindString
	KindChar
	KindAddress
)

var kindNames = [...]string{
	KindInvalid:  "invalid",
	KindSigned:   "signed",
	KindUnsigned: "unsigned",
	KindString:   "string",
	KindChar:     "char",
	KindAddress:  "address",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Arg is one typed formatting argument. Build it with [Int], [Uint], [Str],
// [Bytes], [Char] or [Ptr], or capture plain Go values with [ValueOf].
type Arg struct {
	kind Kind
	bits uint64
	str  string
}

// Int returns a signed argument for %d and %i.
func Int(v int64) Arg { return Arg{kind: KindSigned, bits: uint64(v)} }

// Uint returns an unsigned argument for %o, %u, %x and %X.
func Uint(v uint64) Arg { return Arg{kind: KindUnsigned, bits: v} }

// Str returns a string argument for %s. Output stops at the first NUL byte.
func Str(s string) Arg { return Arg{kind: KindString, str: s} }

// Bytes returns a string argument for %s holding a copy of b.
func Bytes(b []byte) Arg { return Str(string(b)) }

// Char returns a single byte argument for %c.
func Char(c byte) Arg { return Arg{kind: KindChar, bits: uint64(c)} }

// Ptr returns an address argument for %p.
func Ptr(p uintptr) Arg { return Arg{kind: KindAddress, bits: uint64(p)} }

// Kind returns the argument's tag.
func (a Arg) Kind() Kind { return a.kind }

func (a Arg) String() string {
	switch a.kind {
	case KindSigned:
		return "int(" + strconv.FormatInt(int64(a.bits), 10) + ")"
	case KindUnsigned:
		return "uint(" + strconv.FormatUint(a.bits, 10) + ")"
	case KindString:
		return "str(" + strconv.Quote(a.str) + ")"
	case KindChar:
		return "char(" + strconv.QuoteRune(rune(a.bits)) + ")"
	case KindAddress:
		return "ptr(0x" + strconv.FormatUint(a.bits, 16) + ")"
	default:
		return "invalid"
	}
}

// ValueOf captures a Go value as an [Arg]. Signed integers become signed
// arguments and unsigned integers (byte included) unsigned ones; use [Char]
// for %c. Strings, byte slices and [fmt.Stringer] values become strings.
// uintptr, unsafe.Pointer and reference values become addresses.
func ValueOf(v any) (Arg, error) {
	switch x := v.(type) {
	case Arg:
		return x, nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return Uint(uint64(x)), nil
	case uint8:
		return Uint(uint64(x)), nil
	case uint16:
		return Uint(uint64(x)), nil
	case uint32:
		return Uint(uint64(x)), nil
	case uint64:
		return Uint(x), nil
	case uintptr:
		return Ptr(x), nil
	case unsafe.Pointer:
		return Ptr(uintptr(x)), nil
	case string:
		return Str(x), nil
	case []byte:
		return Bytes(x), nil
	case fmt.Stringer:
		return Str(x.String()), nil
	}
	if v != nil {
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice, reflect.UnsafePointer:
			return Ptr(rv.Pointer()), nil
		}
	}
	return Arg{}, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
}

// Values captures each value with [ValueOf].
func Values(vals ...any) ([]Arg, error) {
	args := make([]Arg, len(vals))
	for i, v := range vals {
		a, err := ValueOf(v)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		args[i] = a
	}
	return args, nil
}

// UnmarshalYAML decodes a single-key mapping such as {int: -1},
// {uint: 0x10}, {str: song}, {char: a} or {ptr: 0x1000}.
func (a *Arg) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return fmt.Errorf("%w: line %d: argument must be a single-key mapping", ErrInvalidCase, n.Line)
	}
	key, val := n.Content[0].Value, n.Content[1]
	switch key {
	case "int":
		var v int64
		if err := val.Decode(&v); err != nil {
			return fmt.Errorf("%w: line %d: %w", ErrInvalidCase, val.Line, err)
		}
		*a = Int(v)
	case "uint":
		var v uint64
		if err := val.Decode(&v); err != nil {
			return fmt.Errorf("%w: line %d: %w", ErrInvalidCase, val.Line, err)
		}
		*a = Uint(v)
	case "ptr":
		var v uint64
		if err := val.Decode(&v); err != nil {
			return fmt.Errorf("%w: line %d: %w", ErrInvalidCase, val.Line, err)
		}
		*a = Ptr(uintptr(v))
	case "str":
		var v string
		if err := val.Decode(&v); err != nil {
			return fmt.Errorf("%w: line %d: %w", ErrInvalidCase, val.Line, err)
		}
		*a = Str(v)
	case "char":
		var v string
		if err := val.Decode(&v); err != nil {
			return fmt.Errorf("%w: line %d: %w", ErrInvalidCase, val.Line, err)
		}
		if len(v) != 1 {
			return fmt.Errorf("%w: line %d: char must be one byte, got %q", ErrInvalidCase, val.Line, v)
		}
		*a = Char(v[0])
	default:
		return fmt.Errorf("%w: line %d: unknown argument kind %q", ErrInvalidCase, n.Line, key)
	}
	return nil
}
