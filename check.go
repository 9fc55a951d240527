package snprintfs

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed cases.yaml
var defaultCases []byte

// Case is one self-test template with its arguments.
type Case struct {
	Name     string `yaml:"name"`
	Template string `yaml:"template"`
	Args     []Arg  `yaml:"args"`
}

// Mismatch is a size at which formatted output differs from the reference.
type Mismatch struct {
	Case string
	Size int
	Got  string
	Want string
	N    int
}

func (m *Mismatch) Error() string {
	return fmt.Sprintf("%v: case %q size %d: got %q (n=%d), want %q", ErrMismatch, m.Case, m.Size, m.Got, m.N, m.Want)
}

func (m *Mismatch) Unwrap() error { return ErrMismatch }

// LoadCases decodes a YAML list of cases.
func LoadCases(r io.Reader) ([]Case, error) {
	var cases []Case
	if err := yaml.NewDecoder(r).Decode(&cases); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		if errors.Is(err, ErrInvalidCase) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidCase, err)
	}
	for i, c := range cases {
		if c.Name == "" {
			return nil, fmt.Errorf("%w: case %d has no name", ErrInvalidCase, i)
		}
	}
	return cases, nil
}

// DefaultCases returns the built-in suite.
func DefaultCases() []Case {
	cases, err := LoadCases(bytes.NewReader(defaultCases))
	if err != nil {
		panic("snprintfs: embedded cases: " + err.Error())
	}
	return cases
}

// Reference renders tmpl without any bound, using package fmt for every
// conversion. It is the expected output that [Check] truncates.
func (p Printer) Reference(tmpl string, args ...Arg) (string, error) {
	var sb strings.Builder
	tmpl = cutNUL(tmpl)
	list := argList{args: args}
	pos := 0
	for pos < len(tmpl) {
		i := strings.IndexByte(tmpl[pos:], '%')
		if i < 0 {
			sb.WriteString(tmpl[pos:])
			break
		}
		sb.WriteString(tmpl[pos : pos+i])
		start := pos + i
		d, at, err := scan(tmpl, start+1, p.Lenient)
		if err != nil {
			return sb.String(), &FormatError{Offset: start, Spec: tmpl[start : at+1], Arg: -1, Err: err}
		}
		if d.verb == verbNone {
			break
		}
		pos = at + 1
		if d.verb == verbPercent {
			sb.WriteByte('%')
			continue
		}
		a, err := list.take(d.verb, tmpl, start, at)
		if err != nil {
			return sb.String(), err
		}
		bits := d.width.bits()
		switch d.verb {
		case verbSigned:
			fmt.Fprintf(&sb, "%d", int64(a.bits)<<(64-bits)>>(64-bits))
		case verbOctal:
			fmt.Fprintf(&sb, "%o", a.bits<<(64-bits)>>(64-bits))
		case verbUnsigned:
			fmt.Fprintf(&sb, "%d", a.bits<<(64-bits)>>(64-bits))
		case verbHex:
			fmt.Fprintf(&sb, "%x", a.bits<<(64-bits)>>(64-bits))
		case verbHexUpper:
			fmt.Fprintf(&sb, "%X", a.bits<<(64-bits)>>(64-bits))
		case verbString:
			sb.WriteString(cutNUL(a.str))
		case verbChar:
			sb.WriteByte(byte(a.bits))
		case verbPointer:
			fmt.Fprintf(&sb, "0x%x", a.bits<<(64-pointerBits)>>(64-pointerBits))
		}
	}
	return sb.String(), nil
}

// Check formats c at every size from 1 to maxSize and compares each result
// and its returned length with the truncated reference.
func (p Printer) Check(c Case, maxSize int) error {
	if maxSize < 0 {
		return fmt.Errorf("%w: max size %d", ErrInvalidCapacity, maxSize)
	}
	want, err := p.Reference(c.Template, c.Args...)
	if err != nil {
		return fmt.Errorf("case %q: %w", c.Name, err)
	}
	buf := make([]byte, maxSize)
	for size := 1; size <= maxSize; size++ {
		for i := range buf {
			buf[i] = 0xff
		}
		n, err := p.Format(buf, size, c.Template, c.Args...)
		if err != nil {
			return fmt.Errorf("case %q size %d: %w", c.Name, size, err)
		}
		exp := want[:min(len(want), size-1)]
		got := buf[:n]
		if string(got) != exp || bytes.IndexByte(buf[:size], 0) != n {
			return &Mismatch{Case: c.Name, Size: size, Got: string(got), Want: exp, N: n}
		}
	}
	return nil
}

// Check runs [Printer.Check] with the strict [Printer].
func Check(c Case, maxSize int) error {
	return std.Check(c, maxSize)
}
