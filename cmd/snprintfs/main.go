// Package main provides the snprintfs command: bounded formatting from the
// shell and the self-test sweep against the fmt reference.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/bjaus/snprintfs"
)

// CLI defines the command-line interface using Kong.
type CLI struct {
	LogLevel string `name:"log-level" default:"info" enum:"debug,info,warn,error" env:"SNPRINTFS_LOG_LEVEL" help:"Log level (debug, info, warn, error)"`
	JSONLogs bool   `name:"json-logs" help:"Write logs as JSON lines"`
	Lenient  bool   `name:"lenient" env:"SNPRINTFS_LENIENT" help:"Skip unknown bytes inside conversion specifiers"`

	Format FormatCmd `cmd:"" help:"Format a template into a bounded buffer"`
	Check  CheckCmd  `cmd:"" help:"Compare output with the fmt reference at every buffer size"`
}

// runContext is bound into every command's Run method.
type runContext struct {
	log     zerolog.Logger
	printer snprintfs.Printer
	out     io.Writer
}

func newLogger(w io.Writer, level string, json bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level %q: %w", level, err)
	}
	if !json {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("snprintfs"),
		kong.Description("Bounded printf-style formatting."),
		kong.UsageOnError(),
	)

	logger, err := newLogger(os.Stderr, cli.LogLevel, cli.JSONLogs)
	if err != nil {
		ctx.FatalIfErrorf(err)
	}

	rc := &runContext{
		log:     logger,
		printer: snprintfs.Printer{Lenient: cli.Lenient},
		out:     os.Stdout,
	}
	if err := ctx.Run(rc); err != nil {
		logger.Error().Err(err).Str("command", ctx.Command()).Msg("command failed")
		os.Exit(1)
	}
}
