// Command bqdesign designs biquad filters and prints their coefficients and
// frequency response.
//
// Usage:
//
//	bqdesign [flags] <command> [args]
//
// Examples:
//
//	bqdesign design peak --fc 1000 --gain 6 --q 2
//	bqdesign design lowshelf1 --fc 100 --fs 1000 --gain 5 --strategy complex
//	bqdesign design lowpass --fc 2000 --points 64 --grid
//	bqdesign butterworth lp --order 4 --fc 1000
//	bqdesign kinds
//	bqdesign --config defaults.json design notch --fc 60
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

var version = "0.1.0"

// CLI defines the command-line interface.
type CLI struct {
	Config  kong.ConfigFlag  `short:"c" help:"Load flag defaults from a JSON file."`
	Verbose bool             `help:"Log diagnostics to stderr."`
	Version kong.VersionFlag `help:"Show version information."`

	Design      designCmd      `cmd:"" help:"Design one section and print its response."`
	Butterworth butterworthCmd `cmd:"" help:"Design a Butterworth lowpass or highpass cascade."`
	Kinds       kindsCmd       `cmd:"" help:"List the supported filter kinds."`
}

// runContext is bound into every command's Run method.
type runContext struct {
	out io.Writer
	log *slog.Logger
}

func newParser(cli *CLI, opts ...kong.Option) (*kong.Kong, error) {
	base := []kong.Option{
		kong.Name("bqdesign"),
		kong.Description("Biquad filter design and frequency-response explorer"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
		kong.Configuration(kong.JSON),
		kong.Help(styledHelpPrinter()),
	}
	return kong.New(cli, append(base, opts...)...)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	rc := &runContext{out: os.Stdout, log: newLogger(os.Stderr, cli.Verbose)}
	rc.log.Debug("parsed command line", "command", ctx.Command())

	if err := ctx.Run(rc); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}
