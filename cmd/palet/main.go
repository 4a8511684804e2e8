package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/palet"
	"github.com/fwojciec/palet/desktop"
	"github.com/fwojciec/palet/expr"
	"github.com/fwojciec/palet/fs"
	"github.com/fwojciec/palet/lipgloss"
	"github.com/fwojciec/palet/resolve"
	"github.com/fwojciec/palet/sh"
	paletslog "github.com/fwojciec/palet/slog"
	"github.com/fwojciec/palet/sonic"
	"github.com/fwojciec/palet/sqlite"
	"github.com/fwojciec/palet/toml"
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
	// Config file path. Overridden by --config.
	ConfigPath string

	// Database path. Overridden by --db, then by db_path in the config.
	DBPath string

	// Application directories. Nil selects fs.DefaultDirs.
	Dirs []string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: toml.DefaultPath(),
		DBPath:     defaultDBPath(),
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
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("palet"),
		kong.Description("Resolve command palette queries against installed applications."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'palet --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	configPath := m.ConfigPath
	if cli.Config != "" {
		configPath = cli.Config
	}
	cfg, err := toml.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Set PALET_CONFIG to use a different config file\n")
		return fmt.Errorf("failed to load config: %s", palet.ErrorMessage(err))
	}
	deps.Config = cfg

	dirs := m.Dirs
	if dirs == nil {
		home, _ := os.UserHomeDir()
		dirs = fs.DefaultDirs(home)
	}
	deps.Dirs = slices.Concat(dirs, cfg.ExtraPaths, cli.ExtraPath)

	scanner := fs.NewScanner(desktop.NewParser())
	scanner.Report = paletslog.DirectoryReporter(logger)
	scanner.Reject = paletslog.RejectionReporter(logger)
	deps.Scanner = paletslog.NewLoggingScanner(scanner, logger)

	deps.Resolver = paletslog.NewLoggingResolver(
		resolve.NewResolver(expr.NewEvaluator(), cfg.CustomCommands, cfg.SearchURLs),
		logger,
	)
	deps.Renderer = lipgloss.NewRenderer(stdout)
	deps.Actions = sh.NewBuilder(cfg.Terminal)

	dbPath := m.DBPath
	if cfg.DBPath != "" {
		dbPath = cfg.DBPath
	}
	if cli.DB != "" {
		dbPath = cli.DB
	}

	codec := sonic.NewCodec()
	db, err := m.openStore(ctx, dbPath, codec, logger)
	if err != nil {
		if cmd != "query" && cmd != "apps" {
			fmt.Fprintf(stderr, "Hint: Set PALET_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
		}
		logger.Warn("entry store unavailable, using in-memory store", "path", dbPath, "err", err)
		if db, err = m.openStore(ctx, ":memory:", codec, logger); err != nil {
			return fmt.Errorf("failed to open in-memory database: %w", err)
		}
	}
	m.DB = db
	defer m.Close()

	deps.Entries = paletslog.NewLoggingEntryService(sqlite.NewEntryService(db, codec), logger)
	deps.Indexer = paletslog.NewLoggingIndexer(sqlite.NewIndexer(db, codec), logger)

	return kongCtx.Run(deps)
}

// openStore opens the database at path and brings its schema up to date.
func (m *Main) openStore(ctx context.Context, path string, codec palet.ActionableCodec, logger *slog.Logger) (*sqlite.DB, error) {
	db := sqlite.NewDB(path)
	db.Logger = logger
	if err := db.Open(); err != nil {
		return nil, err
	}
	if err := sqlite.NewEntryService(db, codec).Initialize(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "palet.db"
	}
	dir := filepath.Join(home, ".local", "share", "palet")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "palet.db")
}
