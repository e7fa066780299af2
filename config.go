package uwdocs

import "time"

// Store kinds accepted by Config.Store.
const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

// Config holds the settings shared by the extract and generate commands.
type Config struct {
	Site Site `yaml:"site"`

	// DataDir holds cards.json, locations.json and factions.json.
	DataDir string `yaml:"data_dir"`
	// OutputDir receives the generated markdown tree.
	OutputDir string `yaml:"output_dir"`
	// Store selects the catalog store: "json" (default) or "sqlite".
	Store  string `yaml:"store"`
	DBPath string `yaml:"db_path"`

	RulesURL   string `yaml:"rules_url"`
	LibraryURL string `yaml:"library_url"`

	MaxPages        int           `yaml:"max_pages"`
	PageTimeout     time.Duration `yaml:"page_timeout"`
	Retries         int           `yaml:"retries"`
	RequestInterval time.Duration `yaml:"request_interval"`

	Sitemap   bool `yaml:"sitemap"`
	LinkCheck bool `yaml:"link_check"`
}

// Default configuration values.
const (
	DefaultSiteTitle  = "Warhammer: Underworlds Companion"
	DefaultRulesURL   = "https://www.underworldsdb.com/"
	DefaultLibraryURL = "https://warhammerunderworlds.com/card-library/"
	DefaultMaxPages   = 200
)

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Site:            Site{Title: DefaultSiteTitle},
		DataDir:         "data",
		OutputDir:       "docs",
		Store:           StoreJSON,
		DBPath:          "data/catalog.db",
		RulesURL:        DefaultRulesURL,
		LibraryURL:      DefaultLibraryURL,
		MaxPages:        DefaultMaxPages,
		PageTimeout:     30 * time.Second,
		RequestInterval: 500 * time.Millisecond,
		Sitemap:         true,
		LinkCheck:       true,
	}
}

// Validate returns an error if the configuration cannot be used.
func (c *Config) Validate() error {
	if c.Site.Title == "" {
		return Errorf(EINVALID, "site title required")
	}
	if c.Store != StoreJSON && c.Store != StoreSQLite {
		return Errorf(EINVALID, "unknown store %q (want %q or %q)", c.Store, StoreJSON, StoreSQLite)
	}
	if c.MaxPages <= 0 {
		return Errorf(EINVALID, "max pages must be positive")
	}
	if c.Retries < 0 {
		return Errorf(EINVALID, "retries must not be negative")
	}
	return nil
}
