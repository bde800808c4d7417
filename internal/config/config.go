// Package config loads solarform settings from an optional YAML file, .env
// files and the process environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Share modes.
const (
	ShareSystem = "system"
	ShareOutbox = "outbox"
	ShareNone   = "none"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SOLARFORM_"

// Config is the full settings tree.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Chrome ChromeConfig `yaml:"chrome"`
	Print  PrintConfig  `yaml:"print"`
	Share  ShareConfig  `yaml:"share"`
	Form   FormConfig   `yaml:"form"`
	Theme  ThemeConfig  `yaml:"theme"`
	Log    LogConfig    `yaml:"log"`
	Locale string       `yaml:"locale"`
}

type OutputConfig struct {
	Dir string `yaml:"dir"`
}

type ChromeConfig struct {
	Bin             string `yaml:"bin"`
	ControlURL      string `yaml:"control_url"`
	Headless        bool   `yaml:"headless"`
	PrintBackground bool   `yaml:"print_background"`
}

type PrintConfig struct {
	PageSize string `yaml:"page_size"`
}

type ShareConfig struct {
	Mode      string `yaml:"mode"`
	OutboxDir string `yaml:"outbox_dir"`
}

type FormConfig struct {
	InitialPanelRows int `yaml:"initial_panel_rows"`
}

type ThemeConfig struct {
	Name    string `yaml:"name"`
	Variant string `yaml:"variant"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Output: OutputConfig{Dir: filepath.Join(os.TempDir(), "solarform")},
		Chrome: ChromeConfig{Headless: true, PrintBackground: true},
		Print:  PrintConfig{PageSize: "A4"},
		Share:  ShareConfig{Mode: ShareSystem},
		Form:   FormConfig{InitialPanelRows: 6},
		Theme:  ThemeConfig{Name: "print"},
		Log:    LogConfig{Level: "info", Format: "json"},
		Locale: "en",
	}
}

// LoadOption customises Load.
type LoadOption func(*loader)

type loader struct {
	envFiles []string
	lookup   func(string) (string, bool)
}

// WithEnvFiles reads additional variables from .env files. Variables already
// present in the environment win.
func WithEnvFiles(files ...string) LoadOption {
	return func(l *loader) {
		l.envFiles = append(l.envFiles, files...)
	}
}

// WithLookup replaces os.LookupEnv.
func WithLookup(fn func(string) (string, bool)) LoadOption {
	return func(l *loader) {
		if fn != nil {
			l.lookup = fn
		}
	}
}

// Load builds the configuration. An empty path skips the YAML file; a named
// file that does not exist is an error. Missing .env files are ignored.
func Load(path string, options ...LoadOption) (Config, error) {
	l := loader{lookup: os.LookupEnv}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&l)
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	dotenv := map[string]string{}
	for _, file := range l.envFiles {
		values, err := godotenv.Read(file)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("config: read %s: %w", file, err)
		}
		for k, v := range values {
			dotenv[k] = v
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := l.lookup(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	if err := cfg.applyEnv(lookup); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = strings.TrimSpace(v)
		}
	}
	boolean := func(name string, dst *bool) error {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return nil
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %s%s: %w", EnvPrefix, name, err)
		}
		*dst = b
		return nil
	}

	str("OUTPUT_DIR", &c.Output.Dir)
	str("CHROME_BIN", &c.Chrome.Bin)
	str("CHROME_URL", &c.Chrome.ControlURL)
	str("PAGE_SIZE", &c.Print.PageSize)
	str("SHARE_MODE", &c.Share.Mode)
	str("OUTBOX_DIR", &c.Share.OutboxDir)
	str("THEME", &c.Theme.Name)
	str("THEME_VARIANT", &c.Theme.Variant)
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FORMAT", &c.Log.Format)
	str("LOCALE", &c.Locale)

	if err := boolean("HEADLESS", &c.Chrome.Headless); err != nil {
		return err
	}
	if err := boolean("PRINT_BACKGROUND", &c.Chrome.PrintBackground); err != nil {
		return err
	}
	if v, ok := lookup(EnvPrefix + "PANEL_ROWS"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %sPANEL_ROWS: %w", EnvPrefix, err)
		}
		c.Form.InitialPanelRows = n
	}
	return nil
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	switch c.Share.Mode {
	case ShareSystem, ShareNone:
	case ShareOutbox:
		if c.Share.OutboxDir == "" {
			return errors.New("config: share.outbox_dir is required for outbox mode")
		}
	default:
		return fmt.Errorf("config: unknown share mode %q", c.Share.Mode)
	}
	if c.Form.InitialPanelRows < 0 {
		return fmt.Errorf("config: form.initial_panel_rows must not be negative")
	}
	return nil
}
