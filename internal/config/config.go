// Package config loads browsercli's ambient configuration: a TOML file on
// disk, then BROWSERCLI_* environment variables (including those a .env
// file supplies), in that precedence order (later sources win),
// mirroring the teacher's .env convention but adding a proper
// file-based layer for settings that don't belong in the environment.
// Command-line flags are not read here; cmd/browsercli applies its own.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config is the merged configuration browsercli runs with.
type Config struct {
	Headless       bool          `toml:"headless"`
	CDPLogPath     string        `toml:"cdp_log_path"`
	HistoryDBPath  string        `toml:"history_db_path"`
	HistoryEnabled bool          `toml:"history_enabled"`
	NavTimeout     time.Duration `toml:"-"`
	NavTimeoutMS   int64         `toml:"nav_timeout_ms"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Headless:       false,
		CDPLogPath:     "browsercli.cdp.log",
		HistoryDBPath:  "browsercli.history.db",
		HistoryEnabled: true,
		NavTimeout:     30 * time.Second,
		NavTimeoutMS:   30000,
	}
}

// Load reads .env (if present, via godotenv, ambient and silent on
// absence) then a TOML config file (if present) layered over Default,
// and resolves the derived NavTimeout field.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path == "" {
		path = envOr("BROWSERCLI_CONFIG", "browsercli.toml")
	}

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("config: stat %s: %w", path, err)
	}

	if v := strings.TrimSpace(os.Getenv("BROWSERCLI_HEADLESS")); v != "" {
		cfg.Headless = parseBool(v, cfg.Headless)
	}
	if v := strings.TrimSpace(os.Getenv("BROWSERCLI_CDP_LOG")); v != "" {
		cfg.CDPLogPath = v
	}
	if v := strings.TrimSpace(os.Getenv("BROWSERCLI_HISTORY_DB")); v != "" {
		cfg.HistoryDBPath = v
	}
	if v := strings.TrimSpace(os.Getenv("BROWSERCLI_HISTORY_ENABLED")); v != "" {
		cfg.HistoryEnabled = parseBool(v, cfg.HistoryEnabled)
	}

	cfg.NavTimeout = time.Duration(cfg.NavTimeoutMS) * time.Millisecond
	return cfg, nil
}

// ResolvePath joins a possibly-relative path against the working
// directory, so config values can be written relative to it. Paths are not
// resolved against the config file's own directory.
func ResolvePath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	wd, err := os.Getwd()
	if err != nil {
		return p
	}
	return filepath.Join(wd, p)
}

func envOr(name, def string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return def
}

func parseBool(v string, def bool) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return def
	}
}
