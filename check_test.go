package snprintfs_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/bjaus/snprintfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCasesPass(t *testing.T) {
	t.Parallel()
	cases := snprintfs.DefaultCases()
	require.NotEmpty(t, cases)
	for _, c := range cases {
		assert.NoError(t, snprintfs.Check(c, 200), c.Name)
	}
}

func TestDefaultCasesAreFresh(t *testing.T) {
	t.Parallel()
	a := snprintfs.DefaultCases()
	a[0].Name = "changed"
	b := snprintfs.DefaultCases()
	assert.NotEqual(t, "changed", b[0].Name)
}

func TestLoadCases(t *testing.T) {
	t.Parallel()
	src := `
- name: all kinds
  template: "%d %u %s %c %p"
  args:
    - {int: -7}
    - {uint: 0x10}
    - {str: song}
    - {char: z}
    - {ptr: 0xdeadbeef}
- name: literal
  template: plain
`
	cases, err := snprintfs.LoadCases(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, cases, 2)
	assert.Equal(t, "all kinds", cases[0].Name)
	assert.Equal(t, []snprintfs.Arg{
		snprintfs.Int(-7), snprintfs.Uint(16), snprintfs.Str("song"), snprintfs.Char('z'), snprintfs.Ptr(0xdeadbeef),
	}, cases[0].Args)
	assert.Empty(t, cases[1].Args)

	out, err := snprintfs.Marshal(64, cases[0].Template, cases[0].Args...)
	require.NoError(t, err)
	assert.Equal(t, "-7 16 song z 0xdeadbeef", string(out))
}

func TestLoadCasesEmpty(t *testing.T) {
	t.Parallel()
	cases, err := snprintfs.LoadCases(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, cases)
}

func TestLoadCasesInvalid(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"unknown kind":  "- name: x\n  args: [{float: 1.5}]\n",
		"two keys":      "- name: x\n  args: [{int: 1, uint: 2}]\n",
		"scalar arg":    "- name: x\n  args: [5]\n",
		"long char":     "- name: x\n  args: [{char: ab}]\n",
		"bad int":       "- name: x\n  args: [{int: nope}]\n",
		"negative uint": "- name: x\n  args: [{uint: -1}]\n",
		"no name":       "- template: x\n",
		"not a list":    "name: x\n",
	}
	for name, src := range tests {
		_, err := snprintfs.LoadCases(strings.NewReader(src))
		assert.ErrorIs(t, err, snprintfs.ErrInvalidCase, name)
	}
}

func TestReference(t *testing.T) {
	t.Parallel()
	ref, err := snprintfs.Printer{}.Reference("%d|%lu|%o|%X|%s|%c|%p|%%|tail",
		snprintfs.Int(0x80000000), snprintfs.Uint(1<<40), snprintfs.Uint(8), snprintfs.Uint(255),
		snprintfs.Str("a\x00b"), snprintfs.Char('q'), snprintfs.Ptr(0xff))
	require.NoError(t, err)
	assert.Equal(t, "-2147483648|1099511627776|10|FF|a|q|0xff|%|tail", ref)
}

func TestReferenceDanglingAndErrors(t *testing.T) {
	t.Parallel()
	ref, err := snprintfs.Printer{}.Reference("abc %l")
	require.NoError(t, err)
	assert.Equal(t, "abc ", ref)

	_, err = snprintfs.Printer{}.Reference("%5d", snprintfs.Int(1))
	assert.ErrorIs(t, err, snprintfs.ErrUnsupportedConversion)

	_, err = snprintfs.Printer{}.Reference("%d")
	assert.ErrorIs(t, err, snprintfs.ErrMissingArgument)
}

func TestCheckReportsFormatErrors(t *testing.T) {
	t.Parallel()
	err := snprintfs.Check(snprintfs.Case{Name: "missing", Template: "%d"}, 10)
	assert.ErrorIs(t, err, snprintfs.ErrMissingArgument)
	assert.Contains(t, err.Error(), `case "missing"`)
}

func TestCheckLenient(t *testing.T) {
	t.Parallel()
	c := snprintfs.Case{Name: "flags", Template: "[%-5d]", Args: []snprintfs.Arg{snprintfs.Int(12)}}
	assert.ErrorIs(t, snprintfs.Check(c, 20), snprintfs.ErrUnsupportedConversion)
	assert.NoError(t, snprintfs.Printer{Lenient: true}.Check(c, 20))
}

func TestMismatchError(t *testing.T) {
	t.Parallel()
	var err error = &snprintfs.Mismatch{Case: "c", Size: 3, Got: "ab", Want: "xy", N: 2}
	assert.True(t, errors.Is(err, snprintfs.ErrMismatch))
	assert.Equal(t, `output mismatch: case "c" size 3: got "ab" (n=2), want "xy"`, err.Error())
}

func TestCheckMaxSizeZero(t *testing.T) {
	t.Parallel()
	assert.NoError(t, snprintfs.Check(snprintfs.DefaultCases()[0], 0))
}

func TestCheckNegativeMaxSize(t *testing.T) {
	t.Parallel()
	err := snprintfs.Check(snprintfs.DefaultCases()[0], -1)
	assert.ErrorIs(t, err, snprintfs.ErrInvalidCapacity)
}

func TestReferenceStopsAtTemplateNUL(t *testing.T) {
	t.Parallel()
	ref, err := snprintfs.Printer{}.Reference("ab\x00%d", snprintfs.Int(1))
	require.NoError(t, err)
	assert.Equal(t, "ab", ref)
}
