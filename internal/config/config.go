// Package config loads and validates conversion settings from defaults, an
// optional JSON config file, and DOCSHIFT_ environment variables.
package config

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/dshills/docshift/pkg/types"
)

// PEP8Max is the default maximum docstring line length.
const PEP8Max = 72

// Back-tick removal modes.
const (
	BackTicksOff            = "off"
	BackTicksKeepDirectives = "strip-except-directives"
	BackTicksAll            = "strip-all"
)

// Inline-markup conversion modes.
const (
	MarkupOff       = "off"
	MarkupOn        = "on"
	MarkupTypesOnly = "types-only"
)

// Output holds the options consumed by the docstring writers.
type Output struct {
	FirstLine           bool   `mapstructure:"first_line"`
	ReplaceQuotes       string `mapstructure:"replace_quotes"`
	StandardIndent      string `mapstructure:"standard_indent"`
	TabLength           int    `mapstructure:"tab_length"`
	Realign             bool   `mapstructure:"realign"`
	MaxLineLength       int    `mapstructure:"max_line_length"`
	UseOptional         bool   `mapstructure:"use_optional"`
	RemoveTypeBackTicks string `mapstructure:"remove_type_back_ticks"`
	UseTypes            bool   `mapstructure:"use_types"`
	SeparateKeywords    bool   `mapstructure:"separate_keywords"`
	ConvertMarkup       string `mapstructure:"convert_markup"`
}

// Config is the full conversion configuration.
type Config struct {
	InputStyle       string   `mapstructure:"input_style"`
	OutputStyle      string   `mapstructure:"output_style"`
	AcceptedShebangs []string `mapstructure:"accepted_shebangs"`
	Workers          int      `mapstructure:"workers"`
	Output           Output   `mapstructure:"output"`
}

// SetDefaults registers the default configuration values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("input_style", string(types.InputGuess))
	v.SetDefault("output_style", string(types.OutputGoogle))
	v.SetDefault("accepted_shebangs", []string{"python"})
	v.SetDefault("workers", 0)
	v.SetDefault("output.first_line", true)
	v.SetDefault("output.replace_quotes", "")
	v.SetDefault("output.standard_indent", "    ")
	v.SetDefault("output.tab_length", 4)
	v.SetDefault("output.realign", true)
	v.SetDefault("output.max_line_length", PEP8Max)
	v.SetDefault("output.use_optional", false)
	v.SetDefault("output.remove_type_back_ticks", BackTicksKeepDirectives)
	v.SetDefault("output.use_types", true)
	v.SetDefault("output.separate_keywords", false)
	v.SetDefault("output.convert_markup", MarkupOff)
}

// New unmarshals a configuration from v and validates it.
func New(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load builds a configuration from defaults, the JSON config file at path
// (optional when path is empty), and DOCSHIFT_ environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix("DOCSHIFT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return New(v)
}

// Default returns the built-in default configuration.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := New(v)
	if err != nil {
		// Defaults always validate.
		panic(err)
	}
	return cfg
}

// Validate checks style names and option modes.
func (c *Config) Validate() error {
	if _, err := types.ParseInputStyle(c.InputStyle); err != nil {
		return err
	}
	if _, err := types.ParseOutputStyle(c.OutputStyle); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	switch c.Output.RemoveTypeBackTicks {
	case BackTicksOff, BackTicksKeepDirectives, BackTicksAll:
	default:
		return fmt.Errorf("unknown remove_type_back_ticks mode %q", c.Output.RemoveTypeBackTicks)
	}
	switch c.Output.ConvertMarkup {
	case MarkupOff, MarkupOn, MarkupTypesOnly:
	default:
		return fmt.Errorf("unknown convert_markup mode %q", c.Output.ConvertMarkup)
	}
	if c.Output.TabLength < 1 {
		return fmt.Errorf("tab_length must be positive, got %d", c.Output.TabLength)
	}
	if c.Output.MaxLineLength < 1 {
		return fmt.Errorf("max_line_length must be positive, got %d", c.Output.MaxLineLength)
	}
	return nil
}

// Fingerprint returns a stable hash of every option that affects conversion
// output. The cache uses it to invalidate entries when settings change.
func (c *Config) Fingerprint() string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%v|%+v",
		c.InputStyle, c.OutputStyle, c.AcceptedShebangs, c.Output)))
	return hex.EncodeToString(sum[:])
}
