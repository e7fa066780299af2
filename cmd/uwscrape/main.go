// Command uwscrape scrapes the card catalog into the data directory.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/uwdocs"
	"github.com/fwojciec/uwdocs/extract"
	"github.com/fwojciec/uwdocs/fs"
	"github.com/fwojciec/uwdocs/rod"
	uwslog "github.com/fwojciec/uwdocs/slog"
	"github.com/fwojciec/uwdocs/sqlite"
	"github.com/fwojciec/uwdocs/yaml"
	"golang.org/x/time/rate"
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
	// Sources for end-to-end testing. When nil, a headless browser is
	// launched and the configured URLs are scraped.
	Rules uwdocs.RulesTextSource
	Cards uwdocs.CardListSource
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface structure for Kong. Zero values
// leave the configured setting unchanged.
type CLI struct {
	Config     string        `short:"c" env:"UWDOCS_CONFIG" type:"path" help:"YAML configuration file"`
	DataDir    string        `short:"d" type:"path" help:"Directory for the JSON data files"`
	Store      string        `help:"Catalog store: json or sqlite"`
	DB         string        `type:"path" help:"SQLite database path (sqlite store)"`
	RulesURL   string        `help:"Card database page with the rules text table"`
	LibraryURL string        `help:"Paginated card library page"`
	MaxPages   int           `help:"Fail if the card list has more pages than this"`
	Timeout    time.Duration `short:"t" help:"Timeout per browser step"`
	Retries    int           `help:"Retries per page fetch"`
	Interval   time.Duration `help:"Minimum time between page turns"`
	Verbose    bool          `short:"v" help:"Enable debug logging"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("uwscrape"),
		kong.Description("Scrape the Warhammer Underworlds card catalog"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	cfg, err := cli.config()
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	rules, cards := m.Rules, m.Cards
	if rules == nil || cards == nil {
		browser, err := rod.NewBrowser(rod.WithTimeout(cfg.PageTimeout))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer browser.Close()

		list := rod.NewCardListSource(browser, cfg.LibraryURL)
		defer list.Close()

		rules = rod.NewRulesTextSource(browser, cfg.RulesURL)
		cards = list
	}

	extractor := &extract.Extractor{
		Rules:       uwslog.NewLoggingRulesTextSource(rules, logger),
		Cards:       uwslog.NewLoggingCardListSource(cards, logger),
		Store:       uwslog.NewLoggingCatalogStore(store, logger),
		MaxPages:    cfg.MaxPages,
		RetryDelays: extract.RetryDelays(cfg.Retries),
		Logger:      logger,
	}
	if cfg.RequestInterval > 0 {
		extractor.Limiter = rate.NewLimiter(rate.Every(cfg.RequestInterval), 1)
	}

	catalog, err := extractor.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Saved %d cards, %d locations, %d factions\n",
		len(catalog.Cards), len(catalog.Locations), len(catalog.Factions))
	return nil
}

// config resolves defaults, the optional YAML file and flags, in that order.
func (cli *CLI) config() (uwdocs.Config, error) {
	cfg := uwdocs.DefaultConfig()
	if cli.Config != "" {
		var err error
		if cfg, err = yaml.LoadConfig(cli.Config); err != nil {
			return cfg, err
		}
	}

	if cli.DataDir != "" {
		cfg.DataDir = cli.DataDir
	}
	if cli.Store != "" {
		cfg.Store = cli.Store
	}
	if cli.DB != "" {
		cfg.DBPath = cli.DB
	}
	if cli.RulesURL != "" {
		cfg.RulesURL = cli.RulesURL
	}
	if cli.LibraryURL != "" {
		cfg.LibraryURL = cli.LibraryURL
	}
	if cli.MaxPages != 0 {
		cfg.MaxPages = cli.MaxPages
	}
	if cli.Timeout != 0 {
		cfg.PageTimeout = cli.Timeout
	}
	if cli.Retries != 0 {
		cfg.Retries = cli.Retries
	}
	if cli.Interval != 0 {
		cfg.RequestInterval = cli.Interval
	}

	return cfg, cfg.Validate()
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// openStore returns the configured catalog store and a func releasing it.
func openStore(cfg uwdocs.Config) (uwdocs.CatalogStore, func() error, error) {
	if cfg.Store != uwdocs.StoreSQLite {
		return fs.NewCatalogStore(cfg.DataDir), func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return nil, nil, err
	}
	db := sqlite.NewDB(cfg.DBPath)
	if err := db.Open(); err != nil {
		return nil, nil, fmt.Errorf("failed to open database at %q: %w", cfg.DBPath, err)
	}
	return sqlite.NewCatalogStore(db), db.Close, nil
}
