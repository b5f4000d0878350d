// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/ik5/audtrim/config"
	"github.com/ik5/audtrim/internal/cli"
)

var version = "0.1.0"

type CLI struct {
	Config    string      `short:"c" type:"path" help:"YAML configuration file." placeholder:"FILE"`
	LogLevel  string      `help:"Log level: debug, info, warn or error." placeholder:"LEVEL"`
	LogFormat string      `help:"Log format: text or json." placeholder:"FORMAT"`
	Version   versionFlag `short:"v" help:"Show version information."`

	Trim   TrimCmd   `cmd:"" help:"Trim every recording in a directory."`
	Detect DetectCmd `cmd:"" help:"Print the speech regions of audio files."`
	View   ViewCmd   `cmd:"" help:"Step through a directory and tune the exponent interactively."`
}

type versionFlag bool

func (versionFlag) BeforeReset(app *kong.Kong) error {
	cli.PrintVersion(app.Stdout, version)
	app.Exit(0)

	return nil
}

// runEnv is bound into every command's Run method.
type runEnv struct {
	ctx    context.Context
	cfg    config.Config
	logger *slog.Logger
	set    map[string]bool
	stdout io.Writer
	stderr io.Writer
}

func main() {
	var args CLI
	kctx := kong.Parse(&args,
		kong.Name("audtrim"),
		kong.Description("Quantization-based speech endpoint detection and trimming."),
		kong.UsageOnError(),
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	cfg := config.Default()
	if args.Config != "" {
		loaded, err := config.Load(args.Config)
		if err != nil {
			cli.PrintError(os.Stderr, err.Error())
			os.Exit(1)
		}
		cfg = loaded
	}
	if args.LogLevel != "" {
		cfg.Logging.Level = args.LogLevel
	}
	if args.LogFormat != "" {
		cfg.Logging.Format = args.LogFormat
	}

	logger, err := cfg.Logging.NewLogger(os.Stderr)
	if err != nil {
		cli.PrintError(os.Stderr, err.Error())
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := &runEnv{
		ctx:    ctx,
		cfg:    cfg,
		logger: logger,
		set:    explicitFlags(kctx),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	if err := kctx.Run(env); err != nil {
		cli.PrintError(os.Stderr, err.Error())
		stop()
		os.Exit(1)
	}
}

// explicitFlags names the flags given on the command line. Only these
// override values from the configuration file.
func explicitFlags(kctx *kong.Context) map[string]bool {
	set := make(map[string]bool)
	for _, p := range kctx.Path {
		if p.Flag != nil && !p.Resolved {
			set[p.Flag.Name] = true
		}
	}

	return set
}

// override assigns value to dst when the named flag was given.
func override[T any](set map[string]bool, name string, dst *T, value T) {
	if set[name] {
		*dst = value
	}
}
