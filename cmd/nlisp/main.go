// nlisp evaluates Lisp expressions read interactively or from a file.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/hashicorp/go-multierror"
	"github.com/jcgregorio/logger"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/nathannewcomer/nLisp/internal/config"
	"github.com/nathannewcomer/nLisp/internal/repl"
)

// flag names
const (
	configFlagName    = "config"
	promptFlagName    = "prompt"
	colorFlagName     = "color"
	traceFlagName     = "trace"
	showParseFlagName = "show-parse"
)

const usage = "Usage: nlisp [filename]"

var flags = []cli.Flag{
	&cli.StringFlag{
		Name:  configFlagName,
		Usage: "YAML file with prompt, color, trace and show_parse settings",
	},
	&cli.StringFlag{
		Name:  promptFlagName,
		Value: config.DefaultPrompt,
		Usage: "prompt shown before each interactive line",
	},
	&cli.BoolFlag{
		Name:  colorFlagName,
		Usage: "print errors in color (default: when stdout is a terminal)",
	},
	&cli.BoolFlag{
		Name:  traceFlagName,
		Usage: "log every evaluation step to stderr",
	},
	&cli.BoolFlag{
		Name:  showParseFlagName,
		Usage: "print each parsed tree before evaluating it",
	},
}

type stdio struct {
	in     io.Reader
	out    io.Writer
	errOut logger.SyncWriter

	// interactive is set when input comes from a terminal; colorOut when
	// output goes to one.
	interactive bool
	colorOut    bool
}

func newApp(sio stdio) *cli.App {
	return &cli.App{
		Name:      "nlisp",
		Usage:     "a minimal Lisp interpreter",
		ArgsUsage: "[filename]",
		Flags:     flags,
		Reader:    sio.in,
		Writer:    sio.out,
		ErrWriter: sio.errOut,
		Action: func(c *cli.Context) error {
			return run(c, sio)
		},
	}
}

func run(c *cli.Context, sio stdio) error {
	if c.NArg() > 1 {
		return cli.Exit(usage, 1)
	}

	cfg, err := config.Load(c.String(configFlagName))
	if err != nil {
		return cli.Exit(err, 1)
	}
	override(c, cfg)

	opts := []repl.Option{
		repl.WithOutput(sio.out),
		repl.WithErrorOutput(sio.errOut),
		repl.WithColor(cfg.UseColor(sio.colorOut)),
		repl.WithShowParse(cfg.ShowParse),
	}
	if cfg.Trace {
		log := logger.NewFromOptions(&logger.Options{
			SyncWriter:   sio.errOut,
			IncludeDebug: true,
		})
		opts = append(opts, repl.WithLogf(log.Debugf))
	}

	ctx := c.Context
	if c.NArg() == 0 {
		opts = append(opts, repl.WithInput(sio.in))
		if sio.interactive {
			le := newLineEditor()
			defer le.Close()
			opts = append(opts, repl.WithPrompt(cfg.Prompt), repl.WithLineReader(le))
		}
		return repl.New(opts...).Run(ctx)
	}
	return load(ctx, repl.New(opts...), c.Args().First())
}

// override applies flags given on the command line on top of cfg.
func override(c *cli.Context, cfg *config.Config) {
	if c.IsSet(promptFlagName) {
		cfg.Prompt = c.String(promptFlagName)
	}
	if c.IsSet(colorFlagName) {
		color := c.Bool(colorFlagName)
		cfg.Color = &color
	}
	if c.IsSet(traceFlagName) {
		cfg.Trace = c.Bool(traceFlagName)
	}
	if c.IsSet(showParseFlagName) {
		cfg.ShowParse = c.Bool(showParseFlagName)
	}
}

func load(ctx context.Context, s *repl.Session, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return cli.Exit(errors.Wrap(err, "failed to open input"), 1)
	}
	defer f.Close()

	err = s.Load(ctx, name, f)
	var merr *multierror.Error
	if errors.As(err, &merr) {
		return cli.Exit(fmt.Sprintf("%s: %d line(s) failed", name, len(merr.Errors)), 1)
	}
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := newApp(stdio{
		in:          os.Stdin,
		out:         os.Stdout,
		errOut:      os.Stderr,
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
		colorOut:    term.IsTerminal(int(os.Stdout.Fd())),
	})
	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
