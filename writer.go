package snprintfs

import (
	"fmt"
	"io"
	"iter"
)

// Marshal formats into a fresh buffer of size bytes and returns the output
// without its terminator.
func (p Printer) Marshal(size int, tmpl string, args ...Arg) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidCapacity, size)
	}
	buf := make([]byte, size)
	n, err := p.Format(buf, size, tmpl, args...)
	return buf[:n], err
}

// Write formats with a bound of size bytes and writes the output, without
// its terminator, to w. Nothing is written when formatting fails.
func (p Printer) Write(w io.Writer, size int, tmpl string, args ...Arg) (int, error) {
	out, err := p.Marshal(size, tmpl, args...)
	if err != nil {
		return 0, err
	}
	return w.Write(out)
}

// WriteIter formats tmpl once per argument set from seq and writes each
// result to w on its own line. Every record is bounded by size and they
// share one buffer.
func (p Printer) WriteIter(w io.Writer, size int, tmpl string, seq iter.Seq[[]Arg]) error {
	if size < 0 {
		return fmt.Errorf("%w: size %d", ErrInvalidCapacity, size)
	}
	buf := make([]byte, size+1)
	var streamErr error
	seq(func(args []Arg) bool {
		n, err := p.Format(buf, size, tmpl, args...)
		if err != nil {
			streamErr = err
			return false
		}
		buf[n] = '\n'
		if _, err := w.Write(buf[:n+1]); err != nil {
			streamErr = err
			return false
		}
		return true
	})
	return streamErr
}

// Marshal formats with the strict [Printer].
func Marshal(size int, tmpl string, args ...Arg) ([]byte, error) {
	return std.Marshal(size, tmpl, args...)
}

// Write formats to w with the strict [Printer].
func Write(w io.Writer, size int, tmpl string, args ...Arg) (int, error) {
	return std.Write(w, size, tmpl, args...)
}

// WriteIter streams records with the strict [Printer].
func WriteIter(w io.Writer, size int, tmpl string, seq iter.Seq[[]Arg]) error {
	return std.WriteIter(w, size, tmpl, seq)
}

// WriteChan formats argument sets from a channel and writes them to w.
// It is a thin wrapper around [Printer.WriteIter].
func (p Printer) WriteChan(w io.Writer, size int, tmpl string, ch <-chan []Arg) error {
	return p.WriteIter(w, size, tmpl, chanToIter(ch))
}

// WriteChan streams records from ch with the strict [Printer].
func WriteChan(w io.Writer, size int, tmpl string, ch <-chan []Arg) error {
	return std.WriteChan(w, size, tmpl, ch)
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
