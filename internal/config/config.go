// Package config handles loading application configuration.
// Sources, in priority order:
//  1. A command-line flag:      --config=/path/to/config.yaml
//  2. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  3. Neither: environment variables and env-default tags alone.
//
// The program is usable with no configuration at all; every field has a
// default.
package config

import (
	"fmt"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden by the
// corresponding environment variable (env:"...").
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-default:"prod"`

	// LogPath receives the structured log. Empty means stderr, which keeps
	// log lines out of the console dialogue on stdout.
	LogPath string `yaml:"log_path" env:"LOG_PATH"`

	Roster  Roster  `yaml:"roster"`
	Storage Storage `yaml:"storage"`
}

// Roster holds limits applied to student records.
type Roster struct {
	// MaxNameLength bounds first and last names, in characters.
	MaxNameLength int `yaml:"max_name_length" env:"MAX_NAME_LENGTH" env-default:"19"`
}

// Storage holds persistence settings.
type Storage struct {
	// SQLiteExtensions lists the file extensions saved to and loaded from
	// a SQLite database instead of the plain text format.
	SQLiteExtensions []string `yaml:"sqlite_extensions" env:"SQLITE_EXTENSIONS" env-separator:"," env-default:".db,.sqlite,.sqlite3"`
}

// Load reads the config file at path, or at CONFIG_PATH when path is
// empty. With neither set, only the environment is read.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read env: %w", err)
		}
		return &cfg, nil
	}

	// Give a clear message rather than a cryptic "open: no such file"
	// from inside cleanenv.
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config.Load: config file does not exist: %s", path)
	}

	// cleanenv.ReadConfig reads the YAML file, then applies env overrides
	// and env-default values.
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: read %s: %w", path, err)
	}

	return &cfg, nil
}

// MustLoad is Load for program startup: it exits the process when the
// configuration cannot be read. If this returns, the config is usable.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		log.Fatalf("cannot load config: %s", err.Error())
	}

	return cfg
}
