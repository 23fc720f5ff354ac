package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/bleve"
	"github.com/fwojciec/docindex/fs"
	"github.com/fwojciec/docindex/goquery"
	"github.com/fwojciec/docindex/indexer"
	docslog "github.com/fwojciec/docindex/slog"
	"github.com/fwojciec/docindex/sqlite"
	"github.com/fwojciec/docindex/yaml"
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
	// SQLite database used by the export commands. Opened only when a
	// command names a database path.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
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
		kong.Name("docindex"),
		kong.Description("Build and query a full-text search index of a generated documentation site."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docindex --help' to see available commands")
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
	deps.Logger = logger

	extractor, err := goquery.NewExtractor()
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}

	var loaderOpts []fs.Option
	if cli.DirectoryURLs {
		loaderOpts = append(loaderOpts, fs.WithDirectoryURLs())
	}

	deps.LoadPlaybook = yaml.LoadPlaybook
	deps.WriteStore = func(path string, store docindex.Store) error {
		return fs.NewStoreFile(path).Write(store)
	}
	deps.NewPageLoader = func(dir string) docindex.PageLoader {
		return fs.NewPageLoader(dir, loaderOpts...)
	}
	deps.Indexer = &indexer.Indexer{
		Extractor: docslog.NewLoggingExtractor(extractor, logger),
		NewIndex: func() (docindex.SearchIndex, error) {
			index, err := bleve.NewIndex()
			if err != nil {
				return nil, err
			}
			return docslog.NewLoggingIndex(index, logger), nil
		},
		Logger:      logger,
		Concurrency: cli.Build.Concurrency,
	}
	if kongCtx.Command() == "search <dir> <query>" {
		deps.Indexer.Concurrency = cli.Search.Concurrency
	}

	if dbPath := databasePath(kongCtx.Command(), cli); dbPath != "" {
		m.DB = sqlite.NewDB(dbPath)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
		}
		defer m.Close()
		deps.Documents = sqlite.NewDocumentService(m.DB)
	}

	return kongCtx.Run(deps)
}

// databasePath returns the database the selected command works with, or ""
// when it needs none.
func databasePath(command string, cli *CLI) string {
	switch command {
	case "build <dir>":
		return cli.Build.DB
	case "docs":
		return cli.Docs.DB
	}
	return ""
}
