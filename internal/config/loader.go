// Package config loads an infnum.Config from defaults, an optional config
// file, INFNUM_ environment variables and command line flags, in increasing
// order of priority.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/shabbyrobe/go-infnum"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "INFNUM"

// Flag names and the config keys they override.
var flagKeys = map[string]string{
	"precision":     "precision",
	"terms":         "taylor_terms",
	"max-factorial": "max_factorial",
}

// AddFlags registers the flags Load knows how to bind.
func AddFlags(fs *pflag.FlagSet) {
	def := infnum.DefaultConfig()
	fs.Uint("precision", def.Precision, "fractional bits kept by inexact operations")
	fs.Int("terms", def.TaylorTerms, "maximum number of terms summed by series")
	fs.Int64("max-factorial", def.MaxFactorial, "largest factorial that may be computed")
}

// Load builds a Config. path may be empty, in which case no file is read;
// otherwise the format is taken from its extension (toml, yaml or json).
// flags may be nil.
func Load(path string, flags *pflag.FlagSet) (infnum.Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		if err := loadFile(v, path); err != nil {
			return infnum.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return infnum.Config{}, fmt.Errorf("failed to bind flag %q: %w", name, err)
				}
			}
		}
	}

	var cfg infnum.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return infnum.Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return infnum.Config{}, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := infnum.DefaultConfig()
	v.SetDefault("precision", def.Precision)
	v.SetDefault("taylor_terms", def.TaylorTerms)
	v.SetDefault("max_factorial", def.MaxFactorial)
	v.SetDefault("small_int_min", def.SmallIntMin)
	v.SetDefault("small_int_max", def.SmallIntMax)
	v.SetDefault("float_cache_size", def.FloatCacheSize)
}

func loadFile(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return nil
}
