// Package config loads coldb settings from an optional TOML file.
package config

import (
	"os"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

const (
	DefaultDatabaseName  = "Main"
	DefaultBlockSize     = 10
	DefaultMaxNameLength = 40
	DefaultMaxColumnSize = 40
	DefaultLogLevel      = "warn"
)

/*
[database]
name       = "Main"
block_size = 10

[limits]
max_name_length = 40
max_column_size = 40

[log]
level = "warn"
file  = ""
*/
type Config struct {
	Database Database `toml:"database"`
	Limits   Limits   `toml:"limits"`
	Log      Log      `toml:"log"`
}

type Database struct {
	Name string `toml:"name"`
	// BlockSize is the minimum degree of every column tree.
	BlockSize int `toml:"block_size"`
}

type Limits struct {
	MaxNameLength int `toml:"max_name_length"`
	MaxColumnSize int `toml:"max_column_size"`
}

type Log struct {
	Level string `toml:"level"`
	// File receives log output instead of stderr when set.
	File string `toml:"file"`
}

func Default() *Config {
	return &Config{
		Database: Database{
			Name:      DefaultDatabaseName,
			BlockSize: DefaultBlockSize,
		},
		Limits: Limits{
			MaxNameLength: DefaultMaxNameLength,
			MaxColumnSize: DefaultMaxColumnSize,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}

// Load reads the TOML file at path. Settings missing from the file keep their
// default values. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Database.Name == "" {
		c.Database.Name = def.Database.Name
	}
	if c.Database.BlockSize == 0 {
		c.Database.BlockSize = def.Database.BlockSize
	}
	if c.Limits.MaxNameLength == 0 {
		c.Limits.MaxNameLength = def.Limits.MaxNameLength
	}
	if c.Limits.MaxColumnSize == 0 {
		c.Limits.MaxColumnSize = def.Limits.MaxColumnSize
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

func (c *Config) Validate() error {
	if c.Database.BlockSize < 2 {
		return errors.Errorf("database.block_size must be at least 2, got %d", c.Database.BlockSize)
	}
	if c.Limits.MaxNameLength < 1 {
		return errors.Errorf("limits.max_name_length must be positive, got %d", c.Limits.MaxNameLength)
	}
	if c.Limits.MaxColumnSize < 1 {
		return errors.Errorf("limits.max_column_size must be positive, got %d", c.Limits.MaxColumnSize)
	}
	return nil
}
