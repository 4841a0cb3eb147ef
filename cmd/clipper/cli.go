package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/clipper"
	"github.com/fwojciec/clipper/htmltomarkdown"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Content     clipper.ContentService
	Pages       clipper.PageOpener
	Extractions clipper.ExtractionLogService
	Enhancer    clipper.Enhancer
	Markdown    *htmltomarkdown.Converter

	// EnhanceMode is used when the enhance command has no --mode.
	EnhanceMode clipper.EnhancementMode
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `short:"c" type:"path" help:"YAML configuration file"`
	DB      string `env:"CLIPPER_DB" help:"Extraction log database path"`
	Verbose bool   `short:"v" help:"Log debug output to stderr"`

	Rate float64 `default:"1" help:"Pages opened per second per host with --browser (0 disables)"`

	Extract ExtractCmd `cmd:"" help:"Extract the main content of pages"`
	Serve   ServeCmd   `cmd:"" help:"Serve extraction over HTTP"`
	Log     LogCmd     `cmd:"" help:"Show recent extractions"`
	Enhance EnhanceCmd `cmd:"" help:"Extract a page and rewrite it with Gemini"`
}

// EngineFlags select and bound the extraction engine.
type EngineFlags struct {
	Engine  string        `short:"e" help:"Structured extraction engine (builtin, readability, trafilatura)"`
	Timeout time.Duration `short:"t" help:"Page load timeout"`
}

// apply overrides cfg with the flags that were given.
func (f EngineFlags) apply(cfg *clipper.Config) {
	if f.Engine != "" {
		cfg.Engine = clipper.Engine(f.Engine)
	}
	if f.Timeout > 0 {
		cfg.LoadTimeout = f.Timeout
	}
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	EngineFlags `embed:""`

	Inputs      []string `arg:"" optional:"" help:"HTML files ('-' for stdin) or, with --browser, URLs"`
	URL         string   `short:"u" name:"url" help:"Page URL of a single HTML file input"`
	Browser     bool     `short:"b" help:"Open inputs as URLs in headless Chrome"`
	Format      string   `short:"f" default:"text" enum:"text,json,markdown,xml" help:"Output format (text, json, markdown, xml)"`
	Out         string   `short:"o" type:"path" help:"Write results into this directory instead of stdout, one file per page grouped by host. Refuses a non-empty directory clipper did not write"`
	Concurrency int      `short:"j" default:"4" help:"Concurrent extraction limit"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	EngineFlags `embed:""`

	Addr string `default:"localhost:8080" help:"Listen address"`
}

// LogCmd is the "log" subcommand.
type LogCmd struct {
	URL   string `short:"u" name:"url" help:"Only show extractions of this URL"`
	Limit int    `short:"n" default:"20" help:"Maximum number of entries"`
}

// EnhanceCmd is the "enhance" subcommand.
type EnhanceCmd struct {
	EngineFlags `embed:""`

	Input   string `arg:"" optional:"" default:"-" help:"HTML file ('-' for stdin) or, with --browser, a URL"`
	URL     string `short:"u" name:"url" help:"Page URL of the HTML file"`
	Browser bool   `short:"b" help:"Open the input as a URL in headless Chrome"`
	Mode    string `short:"m" help:"Enhancement mode (summarize, rewrite)"`
}
