package main

import (
	"fmt"
	"os"

	"github.com/bjaus/snprintfs"
)

// CheckCmd runs self-test cases through every buffer size.
type CheckCmd struct {
	MaxSize int      `name:"max-size" default:"200" env:"SNPRINTFS_MAX_SIZE" help:"Largest buffer size to try"`
	Files   []string `arg:"" optional:"" type:"existingfile" help:"YAML case files (default: built-in suite)"`
}

func (c *CheckCmd) Run(rc *runContext) error {
	if c.MaxSize < 0 {
		return fmt.Errorf("%w: max size %d", snprintfs.ErrInvalidCapacity, c.MaxSize)
	}
	cases, err := c.load()
	if err != nil {
		return err
	}
	failed := 0
	for _, tc := range cases {
		if err := rc.printer.Check(tc, c.MaxSize); err != nil {
			failed++
			rc.log.Error().Err(err).Str("case", tc.Name).Msg("case failed")
			continue
		}
		rc.log.Info().Str("case", tc.Name).Int("sizes", c.MaxSize).Msg("case passed")
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d cases failed", failed, len(cases))
	}
	return nil
}

func (c *CheckCmd) load() ([]snprintfs.Case, error) {
	if len(c.Files) == 0 {
		return snprintfs.DefaultCases(), nil
	}
	var all []snprintfs.Case
	for _, path := range c.Files {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		cases, err := snprintfs.LoadCases(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		all = append(all, cases...)
	}
	return all, nil
}
