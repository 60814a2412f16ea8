// Package config provides configuration management for the paper trading ledger.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Account AccountConfig `mapstructure:"account"`
	Fees    FeesConfig    `mapstructure:"fees"`
	Store   StoreConfig   `mapstructure:"store"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// AccountConfig holds the defaults for a fresh account.
type AccountConfig struct {
	InitialCapital float64 `mapstructure:"initial_capital"`
	Currency       string  `mapstructure:"currency"`
}

// FeesConfig holds the fee schedule rates.
type FeesConfig struct {
	CommissionRate  float64 `mapstructure:"commission_rate"`
	MinCommission   float64 `mapstructure:"min_commission"`
	TransferFeeRate float64 `mapstructure:"transfer_fee_rate"`
	StampDutyRate   float64 `mapstructure:"stamp_duty_rate"`
}

// StoreConfig holds persistence configuration.
type StoreConfig struct {
	Path          string `mapstructure:"path"`
	Key           string `mapstructure:"key"`
	StalenessDays int    `mapstructure:"staleness_days"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
	File    bool   `mapstructure:"file"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/paperdesk"
	}
	return filepath.Join(home, ".config", "paperdesk")
}

// Load loads configuration from the specified directory. If configDir is
// empty, the default config directory is used; a missing config file
// produces a template plus defaults rather than an error.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	setDefaults(v, configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config.toml: %w", err)
		}
		if err := writeTemplate(configDir); err != nil {
			return nil, fmt.Errorf("creating config template: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config.toml: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, configDir string) {
	v.SetDefault("account.initial_capital", 1000000.0)
	v.SetDefault("account.currency", "CNY")

	v.SetDefault("fees.commission_rate", 0.00025)
	v.SetDefault("fees.min_commission", 5.0)
	v.SetDefault("fees.transfer_fee_rate", 0.00002)
	v.SetDefault("fees.stamp_duty_rate", 0.001)

	v.SetDefault("store.path", filepath.Join(configDir, "paperdesk.db"))
	v.SetDefault("store.key", "default")
	v.SetDefault("store.staleness_days", 7)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console", true)
	v.SetDefault("logging.file", true)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PAPERDESK_DB_PATH"); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv("PAPERDESK_CURRENCY"); v != "" {
		cfg.Account.Currency = v
	}
	if v := os.Getenv("PAPERDESK_INITIAL_CAPITAL"); v != "" {
		if capital, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Account.InitialCapital = capital
		}
	}
	if v := os.Getenv("PAPERDESK_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Account.InitialCapital <= 0 {
		return fmt.Errorf("account.initial_capital must be positive")
	}
	if c.Fees.CommissionRate < 0 || c.Fees.TransferFeeRate < 0 || c.Fees.StampDutyRate < 0 {
		return fmt.Errorf("fee rates must be non-negative")
	}
	if c.Fees.MinCommission < 0 {
		return fmt.Errorf("fees.min_commission must be non-negative")
	}
	if c.Store.StalenessDays <= 0 {
		return fmt.Errorf("store.staleness_days must be positive")
	}
	return nil
}
