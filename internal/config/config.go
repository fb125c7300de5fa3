// Package config loads service configuration with viper. Values come from
// config.yaml when present, overridden by POSILIFE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Pushover PushoverConfig `mapstructure:"pushover"`
}

type ServerConfig struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string `mapstructure:"addr"`
}

type StorageConfig struct {
	// Backend selects the history repository: "json" or "sqlite".
	Backend string `mapstructure:"backend"`
	// Dir is where the data files live.
	Dir string `mapstructure:"dir"`
}

type PushoverConfig struct {
	Token string `mapstructure:"token"`
	User  string `mapstructure:"user"`
}

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("storage.backend", BackendJSON)
	v.SetDefault("storage.dir", "data")
	v.SetDefault("pushover.token", "")
	v.SetDefault("pushover.user", "")
}

// Load reads the config file at path (optional: a missing file just means
// defaults plus environment).
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("POSILIFE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	switch c.Storage.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("storage.backend must be %q or %q, got %q", BackendJSON, BackendSQLite, c.Storage.Backend)
	}
	if c.Storage.Dir == "" {
		return fmt.Errorf("storage.dir is required")
	}
	return nil
}
