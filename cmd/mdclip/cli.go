package main

import (
	"context"
	"io"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/mdclip"
	"github.com/fwojciec/mdclip/extract"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Now    func() time.Time

	HTML      mdclip.Parser
	XHTML     mdclip.Parser
	Clipper   mdclip.Clipper
	Store     mdclip.ArticleStore
	Baselines []Baseline
}

// Baseline is a third-party extraction pipeline compared against the engine.
type Baseline struct {
	Name      string
	Extractor mdclip.Extractor
	Converter mdclip.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  kong.ConfigFlag `help:"Load flag defaults from a JSON file"`
	Verbose bool            `short:"v" env:"MDCLIP_VERBOSE" help:"Log each pipeline step to stderr"`

	Engine EngineFlags `embed:"" group:"Extraction"`

	Clip    ClipCmd    `cmd:"" help:"Extract the article of one page"`
	Batch   BatchCmd   `cmd:"" help:"Extract articles from many local files"`
	Compare CompareCmd `cmd:"" help:"Compare the engine with trafilatura and readability"`
}

// EngineFlags exposes the extraction thresholds.
type EngineFlags struct {
	Selectors        []string `name:"selector" env:"MDCLIP_SELECTORS" help:"Candidate selector tried before the built-in list (repeatable)"`
	MinContainerText int      `name:"min-container-text" default:"500" env:"MDCLIP_MIN_CONTAINER_TEXT" help:"Visible characters a generic div needs to become a candidate"`
	LinkDensityChars int      `name:"link-density-chars" default:"50" env:"MDCLIP_LINK_DENSITY_CHARS" help:"Characters of text allowed per link before a candidate is penalised"`
	Untitled         string   `name:"untitled" default:"Untitled" env:"MDCLIP_UNTITLED" help:"Title used when a page names none"`
}

// Config returns the engine configuration for the flags.
func (f EngineFlags) Config() extract.Config {
	cfg := extract.DefaultConfig()
	if len(f.Selectors) > 0 {
		cfg.CandidateSelectors = append(append([]string(nil), f.Selectors...), cfg.CandidateSelectors...)
	}
	cfg.MinContainerTextLength = f.MinContainerText
	cfg.LinkDensityChars = f.LinkDensityChars
	cfg.UntitledTitle = f.Untitled
	return cfg
}

// ClipCmd is the "clip" subcommand.
type ClipCmd struct {
	File        string `arg:"" optional:"" type:"path" help:"HTML file to read (default: stdin)"`
	URL         string `short:"u" env:"MDCLIP_URL" help:"Page URL used to resolve relative links"`
	XHTML       bool   `name:"xhtml" help:"Parse input as well-formed XHTML"`
	FrontMatter bool   `short:"f" xor:"format" help:"Prefix output with YAML front matter"`
	JSON        bool   `short:"j" name:"json" xor:"format" help:"Print the article as JSON"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	Files       []string `arg:"" type:"path" help:"HTML files to read"`
	BaseURL     string   `name:"base-url" env:"MDCLIP_BASE_URL" help:"URL the file paths are resolved against"`
	Concurrency int      `short:"c" default:"4" env:"MDCLIP_CONCURRENCY" help:"Files processed at once"`
	XHTML       bool     `name:"xhtml" help:"Parse input as well-formed XHTML"`
	Out         string   `short:"o" type:"path" help:"Write Markdown files to this directory instead of JSON lines to stdout"`
}

// CompareCmd is the "compare" subcommand.
type CompareCmd struct {
	File string `arg:"" type:"path" help:"HTML file to read"`
	URL  string `short:"u" env:"MDCLIP_URL" help:"Page URL used to resolve relative links"`
	Show bool   `help:"Print each method's Markdown after the table"`
}
