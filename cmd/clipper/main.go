package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/clipper"
	"github.com/fwojciec/clipper/extract"
	"github.com/fwojciec/clipper/gemini"
	"github.com/fwojciec/clipper/htmltomarkdown"
	"github.com/fwojciec/clipper/readability"
	"github.com/fwojciec/clipper/rod"
	clipslog "github.com/fwojciec/clipper/slog"
	"github.com/fwojciec/clipper/sqlite"
	"github.com/fwojciec/clipper/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database used by the extraction log.
	DB *sqlite.DB

	// Browser used by commands given --browser.
	Browser clipper.PageOpener

	// Services for end-to-end testing.
	ExtractionLogService clipper.ExtractionLogService
	ContentService       clipper.ContentService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Browser != nil {
		_ = m.Browser.Close()
	}
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("clipper"),
		kong.Description("Extract the readable content of web pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'clipper --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := kongCtx.Command()

	fileCfg, err := LoadConfig(cli.Config)
	if err != nil {
		return fmt.Errorf("%s", clipper.ErrorMessage(err))
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Markdown = htmltomarkdown.NewConverter()
	deps.EnhanceMode = fileCfg.Enhance.Mode

	// Open database
	dbPath := resolveDBPath(cli.DB, fileCfg.Log.DB)
	m.DB = sqlite.NewDB(dbPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set CLIPPER_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
	}
	defer m.Close()

	m.ExtractionLogService = sqlite.NewExtractionLogService(m.DB)
	deps.Extractions = m.ExtractionLogService

	// Wire command-specific dependencies based on command
	var flags EngineFlags
	var browser bool
	switch {
	case hasPrefix(cmd, "extract"):
		flags, browser = cli.Extract.EngineFlags, cli.Extract.Browser
	case hasPrefix(cmd, "enhance"):
		flags, browser = cli.Enhance.EngineFlags, cli.Enhance.Browser
	case hasPrefix(cmd, "serve"):
		flags = cli.Serve.EngineFlags
	case hasPrefix(cmd, "log"):
		return kongCtx.Run(deps)
	}

	cfg := fileCfg.Extraction
	flags.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s", clipper.ErrorMessage(err))
	}

	m.ContentService = NewContentService(cfg, deps.Extractions, deps.Logger)
	deps.Content = m.ContentService

	if browser {
		b, err := rod.NewBrowser()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		m.Browser = rod.NewLoggingOpener(rod.NewLimitedOpener(b, cli.Rate), deps.Logger)
		deps.Pages = m.Browser
	}

	if hasPrefix(cmd, "enhance") {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		enhancer := gemini.NewEnhancer(client, deps.Markdown)
		if fileCfg.Enhance.Model != "" {
			enhancer.Model = fileCfg.Enhance.Model
		}
		if fileCfg.Enhance.MaxContentChars > 0 {
			enhancer.MaxContentChars = fileCfg.Enhance.MaxContentChars
		}
		deps.Enhancer = clipslog.NewLoggingEnhancer(enhancer, deps.Logger)
	}

	return kongCtx.Run(deps)
}

// NewContentService builds the extraction pipeline: the fallback chain with
// the configured structured engine, recorded into the extraction log and
// logged per call.
func NewContentService(cfg clipper.Config, log clipper.ExtractionLogService, logger *slog.Logger) clipper.ContentService {
	svc := extract.NewService(cfg)

	var structured clipper.ContentExtractor = svc.Structured
	switch cfg.Engine {
	case clipper.EngineReadability:
		structured = readability.NewExtractor(cfg)
	case clipper.EngineTrafilatura:
		structured = trafilatura.NewExtractor()
	}
	svc.Structured = clipslog.NewLoggingContentExtractor(structured, clipper.MethodStructured, logger)
	svc.Heuristic = clipslog.NewLoggingContentExtractor(svc.Heuristic, clipper.MethodHeuristic, logger)
	svc.Raw = clipslog.NewLoggingContentExtractor(svc.Raw, clipper.MethodRaw, logger)

	recorded := &extract.Recorder{Next: svc, Log: log, Logger: logger}
	return clipslog.NewLoggingContentService(recorded, logger)
}

// resolveDBPath picks the database path: flag or CLIPPER_DB, then the
// config file, then ~/.clipper/clipper.db.
func resolveDBPath(flag, file string) string {
	if flag != "" {
		return flag
	}
	if file != "" {
		return file
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "clipper.db"
	}
	dir := filepath.Join(home, ".clipper")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "clipper.db")
}

// hasPrefix reports whether the kong command path starts with name.
func hasPrefix(cmd, name string) bool {
	return cmd == name || len(cmd) > len(name) && cmd[:len(name)] == name && cmd[len(name)] == ' '
}
