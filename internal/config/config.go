// Package config loads dotx settings. Sources are layered, later ones
// winning: built-in defaults, the user's config file, then DOTX_*
// environment variables. Command-line flags are applied on top by the
// caller.
//
// The config file is looked up under the XDG config directory as
// dotx/config.toml or dotx/config.yaml:
//
//	separator  = "."
//	strict     = false
//	keep_empty = false
//	from       = "json"
//	to         = "json"
//	format     = "doc"
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/hasbyte1/go-utils/dot"
)

// AppName is the directory name used under the XDG config home.
const AppName = "dotx"

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "DOTX_"

// Output formats.
const (
	FormatDoc  = "doc"
	FormatList = "list"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the resolved dotx settings.
type Config struct {
	Separator  string `koanf:"separator"`
	Strict     bool   `koanf:"strict"`
	KeepEmpty  bool   `koanf:"keep_empty"`
	CoerceKeys bool   `koanf:"coerce_keys"`
	From       string `koanf:"from"`
	To         string `koanf:"to"`
	Format     string `koanf:"format"`
	Verbosity  int    `koanf:"verbosity"`

	// Source is the config file that was loaded, if any.
	Source string `koanf:"-"`
}

// Defaults returns the built-in settings.
func Defaults() map[string]any {
	return map[string]any{
		"separator":   dot.DefaultSeparator,
		"strict":      false,
		"keep_empty":  false,
		"coerce_keys": false,
		"from":        "json",
		"to":          "json",
		"format":      FormatDoc,
		"verbosity":   0,
	}
}

// Load resolves the configuration. An explicit path must exist; with an
// empty path the XDG config directories are searched and a missing file is
// not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	if path == "" {
		path = searchConfigFile()
	}
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	cfg.Source = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func searchConfigFile() string {
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		if p, err := xdg.SearchConfigFile(filepath.Join(AppName, name)); err == nil {
			return p
		}
	}
	return ""
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	}
	return nil, fmt.Errorf("%w: unsupported config file type %q", ErrInvalid, path)
}

// Validate checks the settings that Load cannot coerce.
func (c *Config) Validate() error {
	if c.Separator == "" {
		return fmt.Errorf("%w: separator must not be empty", ErrInvalid)
	}
	switch c.Format {
	case FormatDoc, FormatList:
	default:
		return fmt.Errorf("%w: format %q (want %q or %q)", ErrInvalid, c.Format, FormatDoc, FormatList)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("%w: verbosity %d", ErrInvalid, c.Verbosity)
	}
	return nil
}

// Options returns the flattening options described by c.
func (c *Config) Options() dot.Options {
	return dot.Options{
		Separator:  c.Separator,
		Strict:     c.Strict,
		KeepEmpty:  c.KeepEmpty,
		CoerceKeys: c.CoerceKeys,
	}
}
