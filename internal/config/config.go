package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// FoldConfig holds the structural-folding settings. Both must be enabled
// for section boundaries to be computable; zoom refuses to run otherwise.
type FoldConfig struct {
	// Headings enables folding on markdown-style headings.
	Headings bool `toml:"headings"`

	// Indent enables folding on indentation blocks.
	Indent bool `toml:"indent"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	// BreadcrumbMaxWidth caps the rendered breadcrumb width in cells.
	// Zero means no limit.
	BreadcrumbMaxWidth int `toml:"breadcrumb_max_width"`

	// BreadcrumbSeparator joins the document name and section heading.
	BreadcrumbSeparator string `toml:"breadcrumb_separator"`
}

// PluginConfig holds plugin settings.
type PluginConfig struct {
	// BreadcrumbScript is a path to a Lua script defining a breadcrumb
	// formatting hook. Empty disables the hook.
	BreadcrumbScript string `toml:"breadcrumb_script"`
}

// Config is the root configuration. Access through a *Config is
// thread-safe; the watcher goroutine may swap values while the update
// goroutine reads them.
type Config struct {
	mu     sync.RWMutex
	fold   FoldConfig
	ui     UIConfig
	plugin PluginConfig
}

// fileConfig mirrors the TOML layout.
type fileConfig struct {
	Fold   FoldConfig   `toml:"fold"`
	UI     UIConfig     `toml:"ui"`
	Plugin PluginConfig `toml:"plugin"`
}

// Default returns the default configuration: both fold capabilities
// enabled, the conventional " > " breadcrumb separator.
func Default() *Config {
	return &Config{
		fold: FoldConfig{Headings: true, Indent: true},
		ui:   UIConfig{BreadcrumbSeparator: " > "},
	}
}

// Load reads a TOML configuration file, layered over the defaults.
// A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	c := Default()
	if err := c.Reload(path); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload re-reads the file into the existing Config, preserving defaults
// for absent keys. Safe to call from the watcher goroutine.
func (c *Config) Reload(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	file := fileConfig{
		Fold: FoldConfig{Headings: true, Indent: true},
		UI:   UIConfig{BreadcrumbSeparator: " > "},
	}
	if err := toml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	c.mu.Lock()
	c.fold = file.Fold
	c.ui = file.UI
	c.plugin = file.Plugin
	c.mu.Unlock()
	return nil
}

// Fold returns the folding settings snapshot.
func (c *Config) Fold() FoldConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fold
}

// UI returns the UI settings snapshot.
func (c *Config) UI() UIConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ui
}

// Plugin returns the plugin settings snapshot.
func (c *Config) Plugin() PluginConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.plugin
}

// SetFold replaces the folding settings. Used by tests and by hosts that
// manage settings themselves.
func (c *Config) SetFold(fold FoldConfig) {
	c.mu.Lock()
	c.fold = fold
	c.mu.Unlock()
}

// FoldHeadingsEnabled implements the zoom capability check.
func (c *Config) FoldHeadingsEnabled() bool {
	return c.Fold().Headings
}

// FoldIndentEnabled implements the zoom capability check.
func (c *Config) FoldIndentEnabled() bool {
	return c.Fold().Indent
}
