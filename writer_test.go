package snprintfs_test

import (
	"bytes"
	"errors"
	"slices"
	"testing"

	"github.com/bjaus/snprintfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errWrite = errors.New("write failed")

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestMarshal(t *testing.T) {
	t.Parallel()
	out, err := snprintfs.Marshal(10, "simple integer, %d", snprintfs.Int(99999))
	require.NoError(t, err)
	assert.Equal(t, "simple in", string(out))
}

func TestMarshalZeroSize(t *testing.T) {
	t.Parallel()
	out, err := snprintfs.Marshal(0, "anything")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestMarshalNegativeSize(t *testing.T) {
	t.Parallel()
	_, err := snprintfs.Marshal(-1, "x")
	assert.ErrorIs(t, err, snprintfs.ErrInvalidCapacity)
}

func TestMarshalKeepsPartialOutputOnError(t *testing.T) {
	t.Parallel()
	out, err := snprintfs.Marshal(32, "ok %d %s", snprintfs.Int(1))
	assert.ErrorIs(t, err, snprintfs.ErrMissingArgument)
	assert.Equal(t, "ok 1 ", string(out))
}

func TestWrite(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	n, err := snprintfs.Write(&buf, 200, "%s=%u", snprintfs.Str("count"), snprintfs.Uint(3))
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Equal(t, "count=3", buf.String())
}

func TestWriteFormatErrorWritesNothing(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	_, err := snprintfs.Write(&buf, 200, "a%q")
	assert.ErrorIs(t, err, snprintfs.ErrUnsupportedConversion)
	assert.Zero(t, buf.Len())
}

func TestWriteWriterError(t *testing.T) {
	t.Parallel()
	_, err := snprintfs.Write(errWriter{}, 200, "x")
	assert.ErrorIs(t, err, errWrite)
}

func TestWriteIter(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	records := [][]snprintfs.Arg{
		{snprintfs.Int(1)},
		{snprintfs.Int(22)},
		{snprintfs.Int(-3)},
	}
	err := snprintfs.WriteIter(&buf, 4, "n=%d", slices.Values(records))
	require.NoError(t, err)
	assert.Equal(t, "n=1\nn=2\nn=-\n", buf.String())
}

func TestWriteIterStopsOnFormatError(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	records := [][]snprintfs.Arg{
		{snprintfs.Int(1)},
		{snprintfs.Str("bad")},
		{snprintfs.Int(3)},
	}
	err := snprintfs.WriteIter(&buf, 16, "%d", slices.Values(records))
	assert.ErrorIs(t, err, snprintfs.ErrArgumentType)
	assert.Equal(t, "1\n", buf.String())
}

func TestWriteIterWriterError(t *testing.T) {
	t.Parallel()
	err := snprintfs.WriteIter(errWriter{}, 16, "%d", slices.Values([][]snprintfs.Arg{{snprintfs.Int(1)}}))
	assert.ErrorIs(t, err, errWrite)
}

func TestWriteIterNegativeSize(t *testing.T) {
	t.Parallel()
	err := snprintfs.WriteIter(&bytes.Buffer{}, -1, "%d", slices.Values([][]snprintfs.Arg{}))
	assert.ErrorIs(t, err, snprintfs.ErrInvalidCapacity)
}

func TestWriteChan(t *testing.T) {
	t.Parallel()
	ch := make(chan []snprintfs.Arg, 2)
	ch <- []snprintfs.Arg{snprintfs.Str("a"), snprintfs.Char('1')}
	ch <- []snprintfs.Arg{snprintfs.Str("b"), snprintfs.Char('2')}
	close(ch)
	var buf bytes.Buffer
	err := snprintfs.WriteChan(&buf, 16, "%s%c", ch)
	require.NoError(t, err)
	assert.Equal(t, "a1\nb2\n", buf.String())
}

func TestPrinterLenientWrite(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	p := snprintfs.Printer{Lenient: true}
	_, err := p.Write(&buf, 16, "[%-5s]", snprintfs.Str("ok"))
	require.NoError(t, err)
	assert.Equal(t, "[ok]", buf.String())
}

func TestPrinterLenientWriteChan(t *testing.T) {
	t.Parallel()
	ch := make(chan []snprintfs.Arg, 2)
	ch <- []snprintfs.Arg{snprintfs.Int(1)}
	ch <- []snprintfs.Arg{snprintfs.Int(2)}
	close(ch)
	var buf bytes.Buffer
	p := snprintfs.Printer{Lenient: true}
	require.NoError(t, p.WriteChan(&buf, 16, "<%3d>", ch))
	assert.Equal(t, "<1>\n<2>\n", buf.String())

	strict := make(chan []snprintfs.Arg, 1)
	strict <- []snprintfs.Arg{snprintfs.Int(1)}
	close(strict)
	assert.ErrorIs(t, snprintfs.WriteChan(&bytes.Buffer{}, 16, "<%3d>", strict), snprintfs.ErrUnsupportedConversion)
}
