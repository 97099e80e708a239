package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/tldr"
	tldrlog "github.com/fwojciec/tldr/zerolog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		// Application errors were already reported by the command.
		var appErr *tldr.Error
		if !errors.As(err, &appErr) {
			fmt.Fprintln(os.Stderr, err)
		}
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// EnvFiles are loaded into the environment before the configuration
	// is decoded. Missing files are ignored.
	EnvFiles []string

	// Config overrides environment decoding when set.
	Config *Config

	// Pipeline overrides service wiring when set, for end-to-end testing.
	Pipeline *tldr.Pipeline

	closers []io.Closer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{EnvFiles: []string{".env"}}
}

// Close releases resources acquired during wiring.
func (m *Main) Close() error {
	var firstErr error
	for _, c := range m.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	m.closers = nil
	return firstErr
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("tldr"),
		kong.Description("Summarize a web page or YouTube video."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'tldr --help' to see available commands")
	}

	switch args[0] {
	case "help", "--help", "-h":
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg := m.Config
	if cfg == nil {
		if cfg, err = LoadConfig(m.EnvFiles...); err != nil {
			return err
		}
	}
	cli.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	deps.Config = cfg

	deps.Logger, err = tldrlog.NewLogger(cfg.Log, stderr)
	if err != nil {
		return err
	}

	deps.Pipeline = m.Pipeline
	if deps.Pipeline == nil {
		w, err := Wire(ctx, cfg, deps.Logger)
		if err != nil {
			return err
		}
		m.closers = append(m.closers, w)
		deps.Pipeline = w.Pipeline
		deps.CredentialHint = w.CredentialHint
	}
	defer m.Close()

	return kongCtx.Run(deps)
}
