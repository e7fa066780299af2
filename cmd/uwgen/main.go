// Command uwgen generates the markdown site from the saved catalog.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/uwdocs"
	"github.com/fwojciec/uwdocs/etree"
	"github.com/fwojciec/uwdocs/fs"
	"github.com/fwojciec/uwdocs/goldmark"
	"github.com/fwojciec/uwdocs/site"
	uwslog "github.com/fwojciec/uwdocs/slog"
	"github.com/fwojciec/uwdocs/sqlite"
	"github.com/fwojciec/uwdocs/yaml"
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
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface structure for Kong. Zero values
// leave the configured setting unchanged.
type CLI struct {
	Config      string `short:"c" env:"UWDOCS_CONFIG" type:"path" help:"YAML configuration file"`
	DataDir     string `short:"d" type:"path" help:"Directory holding the JSON data files"`
	OutDir      string `short:"o" type:"path" help:"Output directory for the markdown site"`
	Store       string `help:"Catalog store: json or sqlite"`
	DB          string `type:"path" help:"SQLite database path (sqlite store)"`
	Title       string `help:"Site title"`
	BaseURL     string `name:"base-url" help:"Prefix for links; also enables sitemap.xml"`
	NoSitemap   bool   `help:"Do not write sitemap.xml"`
	NoLinkCheck bool   `help:"Skip the internal link check"`
	Verbose     bool   `short:"v" help:"Enable debug logging"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("uwgen"),
		kong.Description("Generate the Warhammer Underworlds markdown site"),
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

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var store uwdocs.CatalogStore
	if cfg.Store == uwdocs.StoreSQLite {
		db := sqlite.NewDB(cfg.DBPath)
		if err := db.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", cfg.DBPath, err)
		}
		defer db.Close()
		store = sqlite.NewCatalogStore(db)
	} else {
		store = fs.NewCatalogStore(cfg.DataDir)
	}

	g := &site.Generator{
		Site:   cfg.Site,
		Store:  uwslog.NewLoggingCatalogStore(store, logger),
		Writer: uwslog.NewLoggingDocumentWriter(fs.NewWriter(cfg.OutputDir), logger),
		Logger: logger,
	}
	if cfg.LinkCheck {
		g.Checker = goldmark.NewLinkChecker()
	}
	if cfg.Sitemap {
		g.Sitemap = etree.NewSitemapBuilder()
	}

	result, err := g.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Wrote %d files for %d cards, %d locations, %d factions to %s\n",
		result.Written, result.Cards, result.Locations, result.Factions, cfg.OutputDir)
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
	if cli.OutDir != "" {
		cfg.OutputDir = cli.OutDir
	}
	if cli.Store != "" {
		cfg.Store = cli.Store
	}
	if cli.DB != "" {
		cfg.DBPath = cli.DB
	}
	if cli.Title != "" {
		cfg.Site.Title = cli.Title
	}
	if cli.BaseURL != "" {
		cfg.Site.BaseURL = cli.BaseURL
	}
	if cli.NoSitemap {
		cfg.Sitemap = false
	}
	if cli.NoLinkCheck {
		cfg.LinkCheck = false
	}

	return cfg, cfg.Validate()
}
