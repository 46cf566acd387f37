package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/sugary/pkg/errors"
	"github.com/arthur-debert/sugary/pkg/logging"
	"github.com/arthur-debert/sugary/pkg/style"
	"github.com/arthur-debert/sugary/pkg/text"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"
)

const (
	// EnvPrefix marks environment overrides.
	EnvPrefix = "SUGARY_"
	// UserConfigName is the user file, relative to the XDG config home.
	UserConfigName = "sugary/config.toml"
)

// Color modes for output.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the effective CLI configuration.
type Config struct {
	Wrap      text.WrapSpec `koanf:"wrap" toml:"wrap"`
	Billboard Billboard     `koanf:"billboard" toml:"billboard"`
	Output    Output        `koanf:"output" toml:"output"`
}

// Billboard holds panel defaults.
type Billboard struct {
	Width      int        `koanf:"width" toml:"width"`
	TitleStyle style.Spec `koanf:"title_style" toml:"title_style"`
}

// Output holds terminal output settings.
type Output struct {
	Color string `koanf:"color" toml:"color"`
}

// LoadOptions selects the user file. An empty ConfigFile falls back to the
// XDG location, which may be absent.
type LoadOptions struct {
	ConfigFile string
}

// Load builds the effective configuration.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Load embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Load the user file
	path, err := userConfigPath(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded user config")
	}

	// 3. Load environment overrides
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to read environment")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Int("columns", cfg.Wrap.Columns).
		Int("width", cfg.Billboard.Width).
		Str("color", cfg.Output.Color).
		Msg("Configuration loaded")
	return &cfg, nil
}

// userConfigPath resolves the file to load, or "" when there is none. An
// explicit path must exist.
func userConfigPath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config %s", explicit).
				WithDetail("path", explicit)
		}
		return explicit, nil
	}

	path, err := xdg.SearchConfigFile(UserConfigName)
	if err != nil {
		return "", nil
	}
	return path, nil
}

// envKey maps SUGARY_WRAP__MAX_EXPAND to wrap.max_expand.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// DefaultPath is where the user file is looked up.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, UserConfigName)
}

// Validate rejects settings the renderers cannot use.
func (c *Config) Validate() error {
	if err := c.Wrap.Validate(); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid wrap settings")
	}
	if c.Billboard.Width <= 0 {
		return errors.Newf(errors.ErrConfigValid, "billboard.width must be positive, got %d", c.Billboard.Width).
			WithDetail("key", "billboard.width")
	}
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Newf(errors.ErrConfigValid, "output.color must be auto, always or never, got %q", c.Output.Color).
			WithDetail("key", "output.color")
	}
	return nil
}

// TOML renders the configuration as a TOML document.
func (c *Config) TOML() (string, error) {
	out, err := gotoml.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode config")
	}
	return string(out), nil
}
