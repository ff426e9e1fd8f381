// Package config handles shelf discovery and configuration.
//
// A "shelf" is a directory containing a .litnotes/ subdirectory with
// the paper store, the derived query index and an optional config
// file. Commands locate the shelf by walking up from the working
// directory, or from LITNOTES_HOME when set.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// ShelfDir is the marker directory for a shelf.
	ShelfDir = ".litnotes"
	// ConfigFile is the optional per-shelf config file.
	ConfigFile = "config.yml"
	// StoreFile is the default paper store file name.
	StoreFile = "papers.jsonl"
	// CacheDir holds derived, regenerable state.
	CacheDir = "cache"
	// IndexFile is the derived SQLite query index.
	IndexFile = "papers.db"
	// DocumentFile is the default rendered document name, written
	// beside .litnotes/ at the shelf root.
	DocumentFile = "literature_review.md"

	// HomeEnv overrides shelf discovery when set.
	HomeEnv = "LITNOTES_HOME"
)

// Config is the per-shelf configuration stored in
// .litnotes/config.yml. All fields are optional.
type Config struct {
	DocumentPath string `yaml:"document_path,omitempty"` // Rendered document location
	StoreFile    string `yaml:"store_file,omitempty"`    // Store file name under .litnotes/
}

// ShelfPath returns the path to the .litnotes directory under root.
func ShelfPath(root string) string {
	return filepath.Join(root, ShelfDir)
}

// ConfigPath returns the path to config.yml under root.
func ConfigPath(root string) string {
	return filepath.Join(root, ShelfDir, ConfigFile)
}

// StorePath returns the paper store path, honoring the store_file
// override.
func (c *Config) StorePath(root string) string {
	name := c.StoreFile
	if name == "" {
		name = StoreFile
	}
	return filepath.Join(root, ShelfDir, name)
}

// CachePath returns the cache directory path under root.
func CachePath(root string) string {
	return filepath.Join(root, ShelfDir, CacheDir)
}

// IndexPath returns the SQLite index path under root.
func IndexPath(root string) string {
	return filepath.Join(root, ShelfDir, CacheDir, IndexFile)
}

// RenderPath returns the rendered document path, honoring the
// document_path override. A relative override is resolved against
// the shelf root.
func (c *Config) RenderPath(root string) string {
	if c.DocumentPath == "" {
		return filepath.Join(root, DocumentFile)
	}
	if filepath.IsAbs(c.DocumentPath) {
		return c.DocumentPath
	}
	return filepath.Join(root, c.DocumentPath)
}

// IsShelf checks whether root contains a .litnotes directory.
func IsShelf(root string) bool {
	info, err := os.Stat(ShelfPath(root))
	return err == nil && info.IsDir()
}

// FindShelf walks up from start to find a shelf. Returns the shelf
// root or an error when no .litnotes directory exists on the path to
// the filesystem root.
func FindShelf(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		if IsShelf(abs) {
			return abs, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("not in a litnotes shelf (no %s directory found; run 'lit init')", ShelfDir)
		}
		abs = parent
	}
}

// Load reads the shelf configuration. A missing config file yields
// defaults, not an error.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// Save writes the shelf configuration.
func (c *Config) Save(root string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(root), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
