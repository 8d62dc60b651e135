// Package config loads game settings from defaults, an optional YAML file,
// and environment variables, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	SaveDir          string        `yaml:"save_dir"`
	LogFile          string        `yaml:"log_file"`
	LogLevel         string        `yaml:"log_level"`
	AutoSaveInterval time.Duration `yaml:"auto_save_interval"`
	MaxAutoSaves     int           `yaml:"max_auto_saves"`
	MaxSaveDirBytes  int64         `yaml:"max_save_dir_bytes"`
	TextDelay        time.Duration `yaml:"text_delay"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		SaveDir:          "saves",
		LogFile:          "seattle_noir.log",
		LogLevel:         "info",
		AutoSaveInterval: 5 * time.Minute,
		MaxAutoSaves:     3,
		MaxSaveDirBytes:  50 << 20,
		TextDelay:        30 * time.Millisecond,
	}
}

// Load builds the configuration. A missing config file or .env file is not
// an error; a malformed config file is.
func Load(path string) (*Config, error) {
	cfg := Default()

	// .env is optional and only seeds the environment.
	_ = godotenv.Load()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("NOIR_SAVE_DIR"); v != "" {
		c.SaveDir = v
	}
	if v := os.Getenv("NOIR_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv("NOIR_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("NOIR_AUTO_SAVE_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("NOIR_AUTO_SAVE_INTERVAL: %w", err)
		}
		c.AutoSaveInterval = d
	}
	if v := os.Getenv("NOIR_MAX_AUTO_SAVES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("NOIR_MAX_AUTO_SAVES: %w", err)
		}
		c.MaxAutoSaves = n
	}
	if v := os.Getenv("NOIR_MAX_SAVE_DIR_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("NOIR_MAX_SAVE_DIR_BYTES: %w", err)
		}
		c.MaxSaveDirBytes = n
	}
	if v := os.Getenv("NOIR_TEXT_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("NOIR_TEXT_DELAY: %w", err)
		}
		c.TextDelay = d
	}
	return nil
}

func (c *Config) validate() error {
	if c.SaveDir == "" {
		return fmt.Errorf("save_dir must not be empty")
	}
	if c.AutoSaveInterval <= 0 {
		return fmt.Errorf("auto_save_interval must be positive")
	}
	if c.MaxAutoSaves < 1 {
		return fmt.Errorf("max_auto_saves must be at least 1")
	}
	if c.MaxSaveDirBytes <= 0 {
		return fmt.Errorf("max_save_dir_bytes must be positive")
	}
	return nil
}
