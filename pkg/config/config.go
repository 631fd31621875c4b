package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/mint/pkg/errors"
	"github.com/arthur-debert/mint/pkg/logging"
	"github.com/arthur-debert/mint/pkg/mint"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	toml2 "github.com/pelletier/go-toml/v2"
	yaml3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "MINT_"

// Config is the resolved mint configuration.
type Config struct {
	Color     string `koanf:"color" toml:"color" yaml:"color"`
	TrueColor string `koanf:"true_color" toml:"true_color" yaml:"true_color"`
	Wrap      int    `koanf:"wrap" toml:"wrap" yaml:"wrap"`
	Verbosity int    `koanf:"verbosity" toml:"verbosity" yaml:"verbosity"`

	// Source is the user config file that was loaded, if any.
	Source string `koanf:"-" toml:"-" yaml:"-"`
}

// LoadOptions selects the sources Load reads on top of the defaults.
type LoadOptions struct {
	// Path is an explicit config file. It must exist. When empty the XDG
	// config directories are searched for mint/config.toml and
	// mint/config.yaml.
	Path string

	// Overrides are applied last, usually from command-line flags that
	// were set explicitly.
	Overrides map[string]interface{}

	// SkipEnv ignores MINT_* environment variables.
	SkipEnv bool
}

// Load builds the configuration from, in increasing priority, the embedded
// defaults, the user config file, MINT_* environment variables and the
// overrides.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load default config")
	}

	path, err := findConfigFile(opts.Path)
	if err != nil {
		return nil, err
	}
	if path != "" {
		logger.Debug().Str("path", path).Msg("loading config file")
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path).
				WithDetail("path", path)
		}
	}

	if !opts.SkipEnv {
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment config")
		}
	}

	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	err = k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Metadata:         nil,
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode config")
	}
	cfg.Source = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("color", cfg.Color).
		Str("true_color", cfg.TrueColor).
		Int("wrap", cfg.Wrap).
		Int("verbosity", cfg.Verbosity).
		Msg("configuration loaded")
	return &cfg, nil
}

// envKey maps MINT_TRUE_COLOR to true_color.
func envKey(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

func findConfigFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", explicit).
				WithDetail("path", explicit)
		}
		return explicit, nil
	}

	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		if path, err := xdg.SearchConfigFile(filepath.Join("mint", name)); err == nil {
			return path, nil
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

// UserConfigPath is where a new user config file is expected.
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "mint", "config.toml")
}

// Validate checks the modes and numeric ranges.
func (c *Config) Validate() error {
	if _, err := mint.ParseWhen(c.Color); err != nil {
		return errors.Wrapf(err, errors.ErrConfigValid, "invalid color setting %q", c.Color).
			WithDetail("key", "color")
	}
	if _, err := mint.ParseWhen(c.TrueColor); err != nil {
		return errors.Wrapf(err, errors.ErrConfigValid, "invalid true_color setting %q", c.TrueColor).
			WithDetail("key", "true_color")
	}
	if c.Wrap < -1 {
		return errors.Newf(errors.ErrConfigValid, "wrap must be -1, 0 or a positive width, got %d", c.Wrap).
			WithDetail("key", "wrap")
	}
	if c.Verbosity < 0 {
		return errors.Newf(errors.ErrConfigValid, "verbosity must not be negative, got %d", c.Verbosity).
			WithDetail("key", "verbosity")
	}
	return nil
}

// Options returns the render modes. The config must be valid.
func (c *Config) Options() mint.Options {
	color, _ := mint.ParseWhen(c.Color)
	trueColor, _ := mint.ParseWhen(c.TrueColor)
	return mint.Options{Color: color, TrueColor: trueColor}
}

// Marshal encodes the configuration as "toml" or "yaml".
func (c *Config) Marshal(format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "toml", "":
		data, err := toml2.Marshal(c)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode config as toml")
		}
		return data, nil
	case "yaml", "yml":
		data, err := yaml3.Marshal(c)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode config as yaml")
		}
		return data, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format %q, use toml or yaml", format).
			WithDetail("format", format)
	}
}
