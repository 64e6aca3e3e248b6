// Package cmd implements the grana command line application.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/pelletier/go-toml/v2"

	"github.com/grana-fin/grana"
	"github.com/grana-fin/grana/logger"
	"github.com/grana-fin/grana/sqlitestore"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the one the
// user selected.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")
	c.Register(&payCmd{}, "transactions")
	c.Register(&rmCmd{}, "transactions")
	c.Register(&importCmd{}, "transactions")

	c.Register(&accountsCmd{}, "accounts")
	c.Register(&newAccountCmd{}, "accounts")
	c.Register(&rmAccountCmd{}, "accounts")
	c.Register(&setBalanceCmd{}, "accounts")

	c.Register(&categoriesCmd{}, "categories")
	c.Register(&newCategoryCmd{}, "categories")
	c.Register(&rmCategoryCmd{}, "categories")

	c.Register(&goalsCmd{}, "goals")
	c.Register(&newGoalCmd{}, "goals")
	c.Register(&saveCmd{}, "goals")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&adviceCmd{}, "reports")
	c.Register(&investCmd{}, "reports")
	c.Register(&assistCmd{}, "reports")

	c.Register(&exportCmd{}, "backup")
	c.Register(&restoreCmd{}, "backup")
}

// as a CLI application the lifecycle is very short lived, so globals
// are fine here.

var (
	configFile = flag.String("config", "", "Path to the config file (default ~/.config/grana/config.toml)")
	verbose    = flag.Bool("v", false, "Enable debug logging")
)

// Config is the application configuration, read from a TOML file.
// Every field has a working default, so no config file is required.
type Config struct {
	DataFile     string `toml:"data_file"`     // ledger document path
	Backend      string `toml:"backend"`       // "json" or "sqlite"
	CSVSeparator string `toml:"csv_separator"` // single character, default ";"
	Model        string `toml:"model"`         // gemini model for assist
}

func defaultConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		DataFile:     filepath.Join(home, ".grana", "ledger.json"),
		Backend:      "json",
		CSVSeparator: ";",
	}
}

// LoadConfig reads the config file, falling back to defaults when it
// does not exist.
func LoadConfig() (Config, error) {
	cfg := defaultConfig()

	path := *configFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".config", "grana", "config.toml")
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && *configFile == "" {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("could not read config %q: %w", path, err)
	}
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("could not parse config %q: %w", path, err)
	}
	return cfg, nil
}

// OpenStore opens the ledger store on the configured backend. The
// returned closer must be called before exit (the sqlite backend holds
// a database handle).
func OpenStore() (*grana.Store, func() error, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	log := logger.New(*verbose)
	opts := []grana.Option{grana.WithLogger(log)}

	switch cfg.Backend {
	case "sqlite":
		db, err := sqlitestore.Open(sqlitePath(cfg.DataFile))
		if err != nil {
			return nil, nil, err
		}
		store, err := grana.Open(db, opts...)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return store, db.Close, nil
	default:
		store, err := grana.Open(grana.NewFileStore(cfg.DataFile), opts...)
		if err != nil {
			return nil, nil, err
		}
		return store, func() error { return nil }, nil
	}
}

// sqlitePath derives the database path from the configured data file.
func sqlitePath(dataFile string) string {
	ext := filepath.Ext(dataFile)
	return dataFile[:len(dataFile)-len(ext)] + ".db"
}

// renderMarkdown pretty prints markdown on the terminal.
func renderMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// Fall back to the raw markdown.
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
