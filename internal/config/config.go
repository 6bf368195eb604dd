package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	FormatAuto = "auto"
	FormatTUI  = "tui"
	FormatText = "text"
	FormatJSON = "json"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the settings shared by all commands.
type Config struct {
	LogLevel string `mapstructure:"log-level"`
	Catalog  string `mapstructure:"catalog"`
	Format   string `mapstructure:"format"`
	Yes      bool   `mapstructure:"yes"`
	LockFile string `mapstructure:"lock-file"`
	Report   string `mapstructure:"report"`
}

// Defaults are applied before the config file, env and flags.
var Defaults = map[string]any{
	"log-level": "warn",
	"catalog":   "",
	"format":    FormatAuto,
	"yes":       false,
	"lock-file": "",
	"report":    "",
}

// Dir is where the user config file is looked up.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, "batbroom")
}

// Load merges defaults, the config file, BATBROOM_* variables and the
// flags of cmd, in increasing precedence. An explicit configFile must exist.
func Load(cmd *cobra.Command, configFile string) (Config, error) {
	var c Config
	v := viper.New()

	for key, value := range Defaults {
		v.SetDefault(key, value)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("batbroom")
		v.SetConfigType("yaml")
		v.AddConfigPath(Dir())
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return c, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix("batbroom")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

func (c Config) Validate() error {
	switch c.Format {
	case FormatAuto, FormatTUI, FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Format)
	}
	return nil
}
