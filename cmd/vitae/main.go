package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/vitae"
	"github.com/fwojciec/vitae/etree"
	"github.com/fwojciec/vitae/experience"
	"github.com/fwojciec/vitae/fs"
	"github.com/fwojciec/vitae/goquery"
	"github.com/fwojciec/vitae/htmltomarkdown"
	vitaehttp "github.com/fwojciec/vitae/http"
	"github.com/fwojciec/vitae/parse"
	"github.com/fwojciec/vitae/pdfcpu"
	"github.com/fwojciec/vitae/readability"
	"github.com/fwojciec/vitae/rod"
	vslog "github.com/fwojciec/vitae/slog"
	"github.com/fwojciec/vitae/sqlite"
	"github.com/fwojciec/vitae/trafilatura"
	"github.com/fwojciec/vitae/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run(); --db and VITAE_DB override it.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ResumeService vitae.ResumeService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
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
		kong.Name("vitae"),
		kong.Description("Parse resumes and extract their work history."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'vitae --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.Verbose)

	cfg, err := yaml.LoadConfig(cli.Config)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Check the file named by --config or VITAE_CONFIG\n")
		return fmt.Errorf("failed to load config: %w", err)
	}

	engine, err := experience.NewExtractor(cfg)
	if err != nil {
		return fmt.Errorf("invalid experience config: %w", err)
	}
	engine.Report = vslog.NewOutcomeLogger(deps.Logger)

	deps.Engine = engine
	deps.Parser = newParser(engine, deps.Logger)
	deps.NewStore = func(dir, name string) vitae.ResumeStore {
		return fs.NewResumeStore(dir, name)
	}

	if cli.Render && fetchesPages(kongCtx.Command()) {
		renderer, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintf(stderr, "Hint: --render needs Chrome or Chromium installed\n")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer renderer.Close()
		deps.Parser.Fetcher = vslog.NewLoggingFetcher(renderer, deps.Logger)
	}

	if !needsDB(kongCtx.Command(), cli) {
		return kongCtx.Run(deps)
	}

	if cli.DB != "" {
		m.DBPath = cli.DB
	}
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set VITAE_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ResumeService = sqlite.NewResumeService(m.DB)
	deps.DB = m.DB
	deps.Resumes = m.ResumeService

	return kongCtx.Run(deps)
}

// needsDB reports whether the selected command touches stored resumes.
func needsDB(command string, cli *CLI) bool {
	switch name, _, _ := strings.Cut(command, " "); name {
	case "explain":
		return false
	case "parse":
		return cli.Parse.Store
	}
	return true
}

// fetchesPages reports whether the selected command may load URL sources.
func fetchesPages(command string) bool {
	name, _, _ := strings.Cut(command, " ")
	return name == "parse" || name == "explain"
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newParser wires the document readers, fetcher and experience engine.
func newParser(engine vitae.ExperienceExtractor, logger *slog.Logger) *parse.Parser {
	html := &parse.HTMLText{
		Extractor: parse.ExtractorChain{
			goquery.NewExtractor(),
			trafilatura.NewExtractor(),
			readability.NewExtractor(nil),
		},
		Converter: htmltomarkdown.NewConverter(),
	}

	texts := map[vitae.Format]vitae.TextExtractor{
		vitae.FormatText: fs.TextExtractor{},
		vitae.FormatHTML: html,
		vitae.FormatDocx: etree.DocxExtractor{},
		vitae.FormatPDF:  pdfcpu.Extractor{},
	}
	for format, te := range texts {
		texts[format] = vslog.NewLoggingTextExtractor(te, format, logger)
	}

	return &parse.Parser{
		Texts:       texts,
		Fetcher:     vslog.NewLoggingFetcher(vitaehttp.NewFetcher(), logger),
		RateLimiter: parse.NewDomainLimiter(1.0),
		Experience:  vslog.NewLoggingExperienceExtractor(engine, logger),
		Logger: func(format string, args ...any) {
			logger.Warn(fmt.Sprintf(format, args...))
		},
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "vitae.db"
	}
	dir := filepath.Join(home, ".vitae")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "vitae.db")
}
