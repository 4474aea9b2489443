// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/bethropolis/mathtag/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger   logger.Config  `toml:"logger"`
	Editor   EditorConfig   `toml:"editor"`
	Document DocumentConfig `toml:"document"`
	Export   ExportConfig   `toml:"export"`
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	HistoryLimit    int    `toml:"history_limit"` // 0 keeps every snapshot
	SystemClipboard bool   `toml:"system_clipboard"`
	Theme           string `toml:"theme"`
	StatusBarHeight int    `toml:"status_bar_height"`
}

// DocumentConfig controls how input files become sentences.
type DocumentConfig struct {
	MarkedOnly bool `toml:"marked_only"` // Keep only sentences containing <MATH>
}

// ExportConfig controls export targets.
type ExportConfig struct {
	Path         string   `toml:"path"`
	AutoExport   bool     `toml:"auto_export"`
	AutoInterval Duration `toml:"auto_export_interval"`
}

// Duration decodes TOML strings such as "30s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.Config{
			LogLevel:    "info",
			LogFilePath: "",
		},
		Editor: EditorConfig{
			HistoryLimit:    0,
			SystemClipboard: SystemClipboard,
			StatusBarHeight: StatusBarHeight,
		},
		Export: ExportConfig{
			Path:         DefaultExportFileName,
			AutoInterval: Duration{DefaultAutoExportInterval},
		},
	}
}

// loadFromFile decodes a TOML file on top of cfg. A missing file is not an error.
func loadFromFile(filePath string, cfg *Config) error {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	fileCfg := *cfg
	metadata, err := toml.DecodeFile(filePath, &fileCfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	*cfg = fileCfg
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		// The logger is not initialized yet; keep the keys for the caller to report.
		unknownKeys = make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			unknownKeys = append(unknownKeys, k.String())
		}
	}
	return nil
}

// unknownKeys are config keys from the last decode that matched no field.
var unknownKeys []string

// UnknownKeys returns the unrecognized keys found while loading.
func UnknownKeys() []string {
	return unknownKeys
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.HistoryLimit < 0 {
		c.Editor.HistoryLimit = defaults.Editor.HistoryLimit
	}
	if c.Editor.StatusBarHeight <= 0 {
		c.Editor.StatusBarHeight = defaults.Editor.StatusBarHeight
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if c.Export.Path == "" {
		c.Export.Path = defaults.Export.Path
	}
	if c.Export.AutoInterval.Duration < MinAutoExportInterval {
		c.Export.AutoInterval = defaults.Export.AutoInterval
	}
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/mathtag/config.toml, or "" if the user
// config directory is unknown.
func DefaultConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, ConfigDirName, DefaultConfigFileName)
}

// ThemesDir returns $XDG_CONFIG_HOME/mathtag/themes, or "" if the user config directory
// is unknown.
func ThemesDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, ConfigDirName, ThemesDirName)
}

// LoadConfig orchestrates loading defaults, file, applying flags, and validation.
// It should be called only once, typically from main.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		loadedConfig, loadErr = load(configFilePath, flags)
	})
	return loadedConfig, loadErr
}

func load(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	path := configFilePath
	if path == "" {
		path = DefaultConfigPath()
	}

	var err error
	if path != "" {
		// Decoding over the defaults keeps every key the file leaves out.
		err = loadFromFile(path, cfg)
	}

	if flags != nil {
		flags.ApplyOverrides(cfg, false)
	}
	cfg.validate()
	return cfg, err
}
