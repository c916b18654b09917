package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/govalues/bigdecimal"
)

// envPrefix is prepended to the upper-cased flag names, so that
// --log-level can also be set with BIGCALC_LOG_LEVEL.
const envPrefix = "BIGCALC"

type config struct {
	file string

	Accuracy  int
	LogLevel  string
	LogFormat string

	logger *slog.Logger
}

func (c *config) registerFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.file, "config", "", "path to a yaml, toml or json config file")
	fs.IntP("accuracy", "a", bigdecimal.DefaultAccuracy, "maximum number of digits after the decimal point")
	fs.String("log-level", "warn", "log level: debug, info, warn or error")
	fs.String("log-fmt", "text", "log format: text, json or logfmt")
}

// load resolves the settings from flags, environment variables and the
// config file, in that order of precedence.
func (c *config) load(fs *pflag.FlagSet) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	if c.file != "" {
		v.SetConfigFile(c.file)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %q: %w", c.file, err)
		}
	}

	c.Accuracy = v.GetInt("accuracy")
	c.LogLevel = v.GetString("log-level")
	c.LogFormat = v.GetString("log-fmt")
	return nil
}
