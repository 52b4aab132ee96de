package config

import (
	"path/filepath"
	"time"
)

// Config holds runtime settings for the notes keeper CLI.
//
// Fields:
//   - DataDir: root directory for all durable state.
//   - DatabaseFile: SQLite file name inside DataDir.
//   - ImagesDir: durable image directory name inside DataDir.
//   - OpTimeout: per-operation storage timeout.
type Config struct {
	DataDir      string
	DatabaseFile string
	ImagesDir    string
	OpTimeout    time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = ".localnotes"
	c.DatabaseFile = "notes.db"
	c.ImagesDir = "images"
	c.OpTimeout = 5 * time.Second
}

// DatabasePath returns the full path of the SQLite database file.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, c.DatabaseFile)
}

// ImagesPath returns the full path of the durable image directory.
func (c *Config) ImagesPath() string {
	return filepath.Join(c.DataDir, c.ImagesDir)
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
