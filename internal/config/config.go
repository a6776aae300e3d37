// Package config loads settings from defaults, an optional YAML file,
// REMINDR_* environment variables and bound command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	fsstore "github.com/alechenninger/remindr/internal/reminderstore/fs"
)

const EnvPrefix = "REMINDR"

// Keys shared with flag bindings.
const (
	KeyDataDir      = "data_dir"
	KeyPollInterval = "poll_interval"
	KeyLogJSON      = "log.json"
	KeyLogVerbose   = "log.verbose"
)

type Config struct {
	// DataDir holds reminders.json and, by default, config.yaml.
	DataDir string `mapstructure:"data_dir"`
	// PollInterval is how often pending reminders are checked.
	PollInterval time.Duration `mapstructure:"poll_interval"`
	Log          LogConfig     `mapstructure:"log"`
}

type LogConfig struct {
	JSON    bool `mapstructure:"json"`
	Verbose bool `mapstructure:"verbose"`
}

// NewViper returns a viper instance with defaults and environment lookup
// configured, reading files from fsys.
func NewViper(fsys afero.Fs) *viper.Viper {
	v := viper.New()
	v.SetFs(fsys)
	v.SetDefault(KeyDataDir, fsstore.DefaultBaseDir())
	v.SetDefault(KeyPollInterval, time.Minute)
	v.SetDefault(KeyLogJSON, false)
	v.SetDefault(KeyLogVerbose, false)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path, or config.yaml in the data directory when path is
// empty. Only an explicitly named file is required to exist.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(v.GetString(KeyDataDir))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.DataDir == "" {
		return errors.New("config: data_dir is empty")
	}
	if c.PollInterval < time.Second {
		return fmt.Errorf("config: poll_interval %s is shorter than 1s", c.PollInterval)
	}
	return nil
}
