package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/narrator"
	"github.com/fwojciec/narrator/goquery"
	"github.com/fwojciec/narrator/htmltomarkdown"
	"github.com/fwojciec/narrator/readability"
	narrslog "github.com/fwojciec/narrator/slog"
	"github.com/fwojciec/narrator/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Reader-mode service used by the generic and UCL adapters. When nil,
	// Run chains trafilatura and readability.
	Reader narrator.Reader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
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
		kong.Name("narrate"),
		kong.Description("Turn saved article pages into text ready for speech synthesis"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'narrate --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	reader := m.Reader
	if reader == nil {
		conv := htmltomarkdown.NewConverter()
		reader = narrator.Readers{
			narrslog.NewLoggingReader(trafilatura.NewReader(trafilatura.DefaultConfig(), conv), "trafilatura", deps.Logger),
			narrslog.NewLoggingReader(readability.NewReader(conv), "readability", deps.Logger),
		}
	}
	deps.Dispatcher = narrslog.NewLoggingDispatcher(goquery.NewDefaultRegistry(reader), deps.Logger)

	return kongCtx.Run(deps)
}
