package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/fwojciec/mdclip"
	"github.com/fwojciec/mdclip/etree"
	"github.com/fwojciec/mdclip/extract"
	"github.com/fwojciec/mdclip/fs"
	"github.com/fwojciec/mdclip/goquery"
	"github.com/fwojciec/mdclip/htmltomarkdown"
	"github.com/fwojciec/mdclip/readability"
	mdslog "github.com/fwojciec/mdclip/slog"
	"github.com/fwojciec/mdclip/trafilatura"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		// Application errors were already reported by the command.
		if mdclip.ErrorCode(err) == mdclip.EINTERNAL {
			fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		}
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin is read by clip when no file is given.
	Stdin io.Reader

	// EnvFile is loaded into the environment before flags are parsed.
	// A missing file is ignored.
	EnvFile string

	// ConfigFiles hold JSON flag defaults. Missing files are ignored.
	ConfigFiles []string

	// Now returns the clip date written to front matter.
	Now func() time.Time
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin:       os.Stdin,
		EnvFile:     ".env",
		ConfigFiles: []string{"~/.config/mdclip/config.json", ".mdclip.json"},
		Now:         time.Now,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if m.EnvFile != "" {
		if err := godotenv.Load(m.EnvFile); err != nil && !errors.Is(err, iofs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", m.EnvFile, err)
		}
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
		Now:    m.Now,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("mdclip"),
		kong.Description("Extract the main article of a web page as Markdown"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Configuration(kong.JSON, m.ConfigFiles...),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'mdclip --help' to see available commands")
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

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.HTML = mdslog.NewLoggingParser(goquery.NewParser(), logger)
	deps.XHTML = mdslog.NewLoggingParser(etree.NewParser(), logger)
	deps.Clipper = mdslog.NewLoggingClipper(extract.NewEngine(extract.WithConfig(cli.Engine.Config())), logger)

	// Wire command-specific dependencies based on command
	switch {
	case strings.HasPrefix(kongCtx.Command(), "batch") && cli.Batch.Out != "":
		out := filepath.Clean(cli.Batch.Out)
		store := fs.NewStore(filepath.Dir(out), filepath.Base(out))
		store.Now = m.Now
		deps.Store = store
	case strings.HasPrefix(kongCtx.Command(), "compare"):
		conv := htmltomarkdown.NewConverter()
		deps.Baselines = []Baseline{
			{
				Name:      "trafilatura",
				Extractor: mdslog.NewLoggingExtractor("trafilatura", trafilatura.NewExtractor(), logger),
				Converter: conv,
			},
			{
				Name:      "readability",
				Extractor: mdslog.NewLoggingExtractor("readability", readability.NewExtractor(), logger),
				Converter: conv,
			},
		}
	}

	return kongCtx.Run(deps)
}
