package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/vitae"
	"github.com/fwojciec/vitae/experience"
	"github.com/fwojciec/vitae/parse"
	"github.com/fwojciec/vitae/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	DB      *sqlite.DB
	Resumes vitae.ResumeService

	Parser *parse.Parser
	Engine *experience.Extractor

	// NewStore opens an export destination at dir/name.
	NewStore func(dir, name string) vitae.ResumeStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string `name:"db" env:"VITAE_DB" help:"Database path (default ~/.vitae/vitae.db)"`
	Config  string `name:"config" env:"VITAE_CONFIG" type:"path" help:"YAML file overriding the experience vocabulary"`
	Verbose bool   `short:"v" help:"Log debug output to stderr"`
	Render  bool   `help:"Render URL sources in headless Chrome for JavaScript-built pages"`

	Parse   ParseCmd   `cmd:"" help:"Parse resumes from files or URLs"`
	Explain ExplainCmd `cmd:"" help:"Show how the experience section of a resume was found"`
	List    ListCmd    `cmd:"" help:"List stored resumes"`
	Show    ShowCmd    `cmd:"" help:"Show a stored resume"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored resume"`
	Export  ExportCmd  `cmd:"" help:"Export stored resumes as JSON files"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	Sources     []string `arg:"" help:"Resume files (.txt, .md, .html, .docx, .pdf) or http(s) URLs"`
	Store       bool     `short:"s" help:"Save parsed resumes to the database"`
	JSON        bool     `name:"json" help:"Print resumes as JSON"`
	Clean       string   `default:"lines" enum:"lines,flat,none" help:"Text cleaning mode (lines, flat, none)"`
	Concurrency int      `short:"c" default:"4" help:"Number of resumes parsed at once"`
	Duplicates  bool     `help:"Keep resumes whose text repeats an earlier source"`
}

// ExplainCmd is the "explain" subcommand.
type ExplainCmd struct {
	Source string `arg:"" help:"Resume file or URL"`
	Clean  string `default:"lines" enum:"lines,flat,none" help:"Text cleaning mode (lines, flat, none)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Source string `help:"Only list resumes parsed from this source"`
	Limit  int    `short:"n" default:"50" help:"Maximum number of resumes to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Resume ID"`
	JSON bool   `name:"json" help:"Print the resume as JSON"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Resume ID"`
	Force bool   `help:"Confirm deletion"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir  string `arg:"" help:"Parent directory for the export"`
	Name string `default:"resumes" help:"Name of the export directory"`
}
