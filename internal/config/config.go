package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	TranscriptsDir string `toml:"transcripts_dir"`
	DailyWindow    int    `toml:"daily_window"` // days shown in the daily chart
	TopEmojis      int    `toml:"top_emojis"`   // rows in the emoji chart
	Width          int    `toml:"width"`        // 0 = terminal width
	NoColor        bool   `toml:"no_color"`
	Editor         string `toml:"editor"`

	Path string `toml:"-"` // config file that was looked up
}

func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return load(home, os.LookupEnv)
}

func load(home string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := &Config{
		TranscriptsDir: filepath.Join(home, "Downloads"),
		DailyWindow:    30,
		TopEmojis:      10,
	}

	cfg.Path = filepath.Join(home, ".config", "affinity", "config.toml")
	if p, ok := lookup("AFFINITY_CONFIG"); ok && strings.TrimSpace(p) != "" {
		cfg.Path = expandHome(strings.TrimSpace(p), home)
	}
	if _, err := os.Stat(cfg.Path); err == nil {
		if _, err := toml.DecodeFile(cfg.Path, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfg.Path, err)
		}
	}

	if err := applyEnv(cfg, lookup); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// expand ~ in paths
	cfg.TranscriptsDir = expandHome(cfg.TranscriptsDir, home)

	return cfg, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookupTrimmed(lookup, "AFFINITY_DIR"); ok {
		cfg.TranscriptsDir = v
	}
	if v, ok := lookupTrimmed(lookup, "AFFINITY_DAILY_WINDOW"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", "AFFINITY_DAILY_WINDOW", v, err)
		}
		cfg.DailyWindow = n
	}
	if v, ok := lookupTrimmed(lookup, "AFFINITY_TOP_EMOJIS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", "AFFINITY_TOP_EMOJIS", v, err)
		}
		cfg.TopEmojis = n
	}
	if v, ok := lookupTrimmed(lookup, "AFFINITY_NO_COLOR"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", "AFFINITY_NO_COLOR", v, err)
		}
		cfg.NoColor = b
	}
	return nil
}

func lookupTrimmed(lookup func(string) (string, bool), key string) (string, bool) {
	raw, ok := lookup(key)
	if !ok {
		return "", false
	}
	v := strings.TrimSpace(raw)
	return v, v != ""
}

func (c Config) Validate() error {
	if c.DailyWindow < 1 {
		return fmt.Errorf("daily_window must be at least 1, got %d", c.DailyWindow)
	}
	if c.TopEmojis < 1 {
		return fmt.Errorf("top_emojis must be at least 1, got %d", c.TopEmojis)
	}
	if c.Width < 0 {
		return fmt.Errorf("width must not be negative, got %d", c.Width)
	}
	return nil
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
