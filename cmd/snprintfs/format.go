package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"

	"github.com/bjaus/snprintfs"
)

// FormatCmd formats one template.
type FormatCmd struct {
	Size     int      `name:"size" short:"n" default:"256" env:"SNPRINTFS_SIZE" help:"Buffer size in bytes, terminator included"`
	Template string   `arg:"" help:"printf-style template"`
	Args     []string `arg:"" optional:"" help:"Arguments as kind:value where kind is int, uint, str, char or ptr"`
}

func (f *FormatCmd) Run(rc *runContext) error {
	args := make([]snprintfs.Arg, len(f.Args))
	for i, tok := range f.Args {
		a, err := parseArg(tok)
		if err != nil {
			return err
		}
		args[i] = a
	}
	out, err := rc.printer.Marshal(f.Size, f.Template, args...)
	if err != nil {
		return err
	}
	rc.log.Debug().Int("size", f.Size).Int("written", len(out)).Int("args", len(args)).Msg("formatted")
	_, err = fmt.Fprintf(rc.out, "%s\n", out)
	return err
}

// parseArg reads a kind:value token. Integer values accept 0x, 0o and 0b
// prefixes.
func parseArg(tok string) (snprintfs.Arg, error) {
	kind, val, ok := strings.Cut(tok, ":")
	if !ok {
		return snprintfs.Arg{}, fmt.Errorf("argument %q: want kind:value", tok)
	}
	switch kind {
	case "int":
		v, err := cast.ToInt64E(val)
		if err != nil {
			return snprintfs.Arg{}, fmt.Errorf("argument %q: %w", tok, err)
		}
		return snprintfs.Int(v), nil
	case "uint":
		v, err := cast.ToUint64E(val)
		if err != nil {
			return snprintfs.Arg{}, fmt.Errorf("argument %q: %w", tok, err)
		}
		return snprintfs.Uint(v), nil
	case "ptr":
		v, err := cast.ToUint64E(val)
		if err != nil {
			return snprintfs.Arg{}, fmt.Errorf("argument %q: %w", tok, err)
		}
		return snprintfs.Ptr(uintptr(v)), nil
	case "str":
		return snprintfs.Str(val), nil
	case "char":
		if len(val) != 1 {
			return snprintfs.Arg{}, fmt.Errorf("argument %q: char must be one byte", tok)
		}
		return snprintfs.Char(val[0]), nil
	default:
		return snprintfs.Arg{}, fmt.Errorf("argument %q: unknown kind %q", tok, kind)
	}
}
