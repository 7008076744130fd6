package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "AMMQUOTE"

// Config holds configuration values loaded from flags, env, or config file.
type Config struct {
	In                  string
	Out                 string
	Errors              string
	Append              bool
	BatchSize           int
	DefaultSlippageBips uint32
	LogLevel            string
}

// Load merges config file, environment variables, and flags into Config.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("out", "./data/quotes.jsonl")
	v.SetDefault("errors", "./data/quote_errors.jsonl")
	v.SetDefault("append", false)
	v.SetDefault("batch-size", 500)
	v.SetDefault("slippage-bips", 50)
	v.SetDefault("log-level", "info")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := Config{
		In:                  strings.TrimSpace(v.GetString("in")),
		Out:                 strings.TrimSpace(v.GetString("out")),
		Errors:              strings.TrimSpace(v.GetString("errors")),
		Append:              v.GetBool("append"),
		BatchSize:           v.GetInt("batch-size"),
		DefaultSlippageBips: v.GetUint32("slippage-bips"),
		LogLevel:            v.GetString("log-level"),
	}

	return cfg, cfg.Validate()
}

// Validate checks required paths and numeric ranges.
func (c Config) Validate() error {
	if c.In == "" {
		return fmt.Errorf("input path is required")
	}
	if c.Out == "" {
		return fmt.Errorf("output path is required")
	}
	if c.Errors == "" {
		return fmt.Errorf("errors path is required")
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive, got %d", c.BatchSize)
	}
	if c.DefaultSlippageBips > 10_000 {
		return fmt.Errorf("slippage bips must be at most 10000, got %d", c.DefaultSlippageBips)
	}
	return nil
}
