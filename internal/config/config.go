package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/Flyrell/checkin/internal/schedule"
	"github.com/Flyrell/checkin/internal/store"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. CHECKIN_DATA_DIR.
const EnvPrefix = "CHECKIN"

type Config struct {
	DataDir    string `mapstructure:"data_dir" validate:"required"`
	Backend    string `mapstructure:"backend" validate:"oneof=json sqlite"`
	Timezone   string `mapstructure:"timezone" validate:"required,timezone"`
	WindowDays int    `mapstructure:"window_days" validate:"min=1,max=3650"`
	Cadence    string `mapstructure:"cadence" validate:"required,cadence"`
	ExportDir  string `mapstructure:"export_dir" validate:"required"`
}

// DefaultDataDir is $HOME/.checkin, or .checkin when no home is known.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".checkin"
	}
	return filepath.Join(home, ".checkin")
}

// Load reads configFile, or config.yaml from the working directory or
// $HOME/.config/checkin when configFile is empty. A missing file is not an
// error; every key has a default and can be overridden from the environment.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/checkin")
	}

	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("backend", store.BackendJSON)
	v.SetDefault("timezone", "UTC")
	v.SetDefault("window_days", 30)
	v.SetDefault("cadence", schedule.DefaultCadence)
	v.SetDefault("export_dir", ".")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}
	cfg.DataDir = expandHome(cfg.DataDir)
	cfg.ExportDir = expandHome(cfg.ExportDir)
	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func expandHome(p string) string {
	p = os.ExpandEnv(p)
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}

// Location returns the zone used to decide what "today" is.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// ParsedCadence returns the configured check-in cadence.
func (c *Config) ParsedCadence() (schedule.Cadence, error) {
	return schedule.ParseCadence(c.Cadence)
}

// StoreOptions maps the configuration onto store.Open options.
func (c *Config) StoreOptions() (store.Options, error) {
	loc, err := c.Location()
	if err != nil {
		return store.Options{}, err
	}
	return store.Options{
		Backend: c.Backend,
		DataDir: c.DataDir,
		Clock:   store.SystemClock(loc),
	}, nil
}
