package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BertoldVdb/romfix/romsum"
	toml "github.com/pelletier/go-toml/v2"
)

/* Config holds the settings shared by all commands */
type Config struct {
	LogLevel     int
	ScanWindow   int
	StartOffsets []int
	Inject       string
	OutputSuffix string
}

func DefaultConfig() Config {
	return Config{
		LogLevel:     1,
		ScanWindow:   romsum.DefaultScanWindow,
		StartOffsets: append([]int{}, romsum.DefaultStartOffsets...),
		Inject:       "ask",
		OutputSuffix: "_fixed",
	}
}

func (c *Config) Validate() error {
	switch c.Inject {
	case "ask", "safe", "compat", "manual":
	default:
		return fmt.Errorf("inject must be one of ask, safe, compat, manual (got %q)", c.Inject)
	}

	if c.OutputSuffix == "" {
		return fmt.Errorf("output suffix must not be empty")
	}
	return nil
}

/* fileConfig is the TOML form of Config, offsets are hex strings */
type fileConfig struct {
	LogLevel     *int     `toml:"log_level"`
	ScanWindow   int      `toml:"scan_window"`
	StartOffsets []string `toml:"start_offsets"`
	Inject       string   `toml:"inject"`
	OutputSuffix string   `toml:"output_suffix"`
}

func loadFileConfig(path string) (fileConfig, error) {
	var fc fileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

/* applyFileConfig copies the values that are set in fc into cfg */
func applyFileConfig(cfg *Config, fc fileConfig) error {
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.ScanWindow > 0 {
		cfg.ScanWindow = fc.ScanWindow
	}
	if fc.Inject != "" {
		cfg.Inject = fc.Inject
	}
	if fc.OutputSuffix != "" {
		cfg.OutputSuffix = fc.OutputSuffix
	}

	if fc.StartOffsets != nil {
		offsets := make([]int, 0, len(fc.StartOffsets))
		for _, m := range fc.StartOffsets {
			v, err := parseHex(m)
			if err != nil {
				return fmt.Errorf("parse start_offsets %q: %w", m, err)
			}
			offsets = append(offsets, v)
		}
		cfg.StartOffsets = offsets
	}

	return nil
}

/* defaultConfigPath returns ~/.romfix/config.toml, or "" without a home directory */
func defaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".romfix", "config.toml")
	}
	return ""
}

func fileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

/* loadConfig applies the config file on top of the defaults. An explicitly given
 * file must exist, the default one is optional. */
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = defaultConfigPath()
		if path == "" || !fileExists(path) {
			return cfg, nil
		}
	}

	fc, err := loadFileConfig(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if err := applyFileConfig(&cfg, fc); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}
