// Package config loads termframe settings from defaults, a config file, and the environment
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/lixenwraith/termframe/glyph"
	"github.com/lixenwraith/termframe/style"
	"github.com/lixenwraith/termframe/terminal"
)

const (
	// EnvPrefix marks environment overrides, e.g. TERMFRAME_LOG_LEVEL=debug
	EnvPrefix = "TERMFRAME_"
	appDir    = "termframe"
)

// searchNames lists the config files looked up under the xdg config dirs, in order
var searchNames = []string{"config.toml", "config.yaml", "config.yml"}

// ErrConfigNotFound is returned when an explicit config path does not exist
var ErrConfigNotFound = errors.New("config file not found")

// LogConfig selects log level and destination
type LogConfig struct {
	Level string `koanf:"level"`
	File  string `koanf:"file"`
}

// Config is the merged result of defaults, file, and environment
type Config struct {
	ColorMode      string                `koanf:"color_mode"` // auto, truecolor, 256
	EastAsianWidth bool                  `koanf:"east_asian_width"`
	Interactive    bool                  `koanf:"interactive"` // use the live terminal when stdout is a tty
	Width          int                   `koanf:"width"`       // offscreen surface size
	Height         int                   `koanf:"height"`
	Log            LogConfig             `koanf:"log"`
	Tags           map[string]style.Spec `koanf:"tags"`

	// Source is the file that was loaded, empty when none was found
	Source string `koanf:"-"`
}

func defaults() map[string]any {
	return map[string]any{
		"color_mode":       "auto",
		"east_asian_width": false,
		"interactive":      true,
		"width":            80,
		"height":           24,
		"log.level":        "warn",
		"log.file":         "",
	}
}

// Load merges defaults, then the config file, then TERMFRAME_ environment variables
// An empty path searches the xdg config directories; a missing file there is not an error
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	src, err := locate(path)
	if err != nil {
		return nil, err
	}
	if src != "" {
		if err := k.Load(file.Provider(src), parserFor(src)); err != nil {
			return nil, fmt.Errorf("load config %s: %w", src, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Source = src

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// locate resolves the file to load
func locate(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return "", fmt.Errorf("%w: %s", ErrConfigNotFound, path)
			}
			return "", fmt.Errorf("stat config: %w", err)
		}
		return path, nil
	}
	for _, name := range searchNames {
		if p, err := xdg.SearchConfigFile(filepath.Join(appDir, name)); err == nil {
			return p, nil
		}
	}
	return "", nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// envKey maps TERMFRAME_LOG_LEVEL to log.level and TERMFRAME_COLOR_MODE to color_mode
func envKey(s string) string {
	k := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if rest, ok := strings.CutPrefix(k, "log_"); ok {
		return "log." + rest
	}
	return k
}

// Validate checks enumerated values and tag overrides
func (c *Config) Validate() error {
	var errs []error
	switch strings.ToLower(c.ColorMode) {
	case "", "auto", "truecolor", "true", "24bit", "256":
	default:
		errs = append(errs, fmt.Errorf("color_mode: unknown value %q", c.ColorMode))
	}
	if c.Width < 0 || c.Height < 0 {
		errs = append(errs, fmt.Errorf("surface size %dx%d is negative", c.Width, c.Height))
	}
	if _, err := c.StyleTable(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// ColorModeValue resolves color_mode, detecting the terminal for "auto"
func (c *Config) ColorModeValue() terminal.ColorMode {
	return terminal.ParseColorMode(c.ColorMode)
}

// Measurer returns the glyph measurer selected by east_asian_width
func (c *Config) Measurer() *glyph.Measurer {
	if c.EastAsianWidth {
		return glyph.NewMeasurer(true)
	}
	return glyph.Default
}

// StyleTable builds the default tag table with the tags overrides applied
// Overrides of unknown tags start from the block default
func (c *Config) StyleTable() (*style.Table, error) {
	table := style.DefaultTable()
	names := make([]string, 0, len(c.Tags))
	for tag := range c.Tags {
		names = append(names, tag)
	}
	slices.Sort(names)

	var errs []error
	for _, tag := range names {
		sp := c.Tags[tag]
		s, err := sp.Apply(table.Lookup(tag))
		if err != nil {
			errs = append(errs, fmt.Errorf("tags.%s: %w", tag, err))
			continue
		}
		table.Set(tag, s)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return table, nil
}
