package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/its-jojoo/tabshelf/internal/core"
)

const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Config is the complete tabshelf configuration.
type Config struct {
	Store   StoreConfig   `json:"store" mapstructure:"store"`
	Windows WindowsConfig `json:"windows" mapstructure:"windows"`
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

// StoreConfig selects where classifications are persisted.
type StoreConfig struct {
	Backend    string      `json:"backend" mapstructure:"backend"`
	Key        string      `json:"key" mapstructure:"key"`
	SQLitePath string      `json:"sqlitePath" mapstructure:"sqlitePath"`
	Redis      RedisConfig `json:"redis" mapstructure:"redis"`
}

type RedisConfig struct {
	Addr     string `json:"addr" mapstructure:"addr"`
	Password string `json:"password" mapstructure:"password"`
	DB       int    `json:"db" mapstructure:"db"`
	Prefix   string `json:"prefix" mapstructure:"prefix"`
}

// WindowsConfig holds the aging thresholds in days.
type WindowsConfig struct {
	ActiveDays int `json:"activeDays" mapstructure:"activeDays"`
	StaleDays  int `json:"staleDays" mapstructure:"staleDays"`
}

func (w WindowsConfig) Windows() core.Windows {
	return core.Windows{ActiveDays: w.ActiveDays, StaleDays: w.StaleDays}
}

type LoggingConfig struct {
	Level  string `json:"level" mapstructure:"level"`
	Format string `json:"format" mapstructure:"format"` // console | json
}

func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend:    BackendSQLite,
			Key:        "inactiveTabsModel",
			SQLitePath: "tabshelf.db",
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "tabshelf:",
			},
		},
		Windows: WindowsConfig{
			ActiveDays: core.DefaultWindows.ActiveDays,
			StaleDays:  core.DefaultWindows.StaleDays,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("store.backend", d.Store.Backend)
	v.SetDefault("store.key", d.Store.Key)
	v.SetDefault("store.sqlitePath", d.Store.SQLitePath)
	v.SetDefault("store.redis.addr", d.Store.Redis.Addr)
	v.SetDefault("store.redis.password", d.Store.Redis.Password)
	v.SetDefault("store.redis.db", d.Store.Redis.DB)
	v.SetDefault("store.redis.prefix", d.Store.Redis.Prefix)
	v.SetDefault("windows.activeDays", d.Windows.ActiveDays)
	v.SetDefault("windows.staleDays", d.Windows.StaleDays)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}

// LoadConfig reads path when given, otherwise looks for tabshelf.{yaml,json,toml}
// in the working directory and $HOME/.config/tabshelf. A missing file in the
// search path is not an error. TABSHELF_* environment variables override
// file values, e.g. TABSHELF_STORE_BACKEND=redis.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("tabshelf")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("tabshelf")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "tabshelf"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendMemory, BackendSQLite, BackendRedis:
	default:
		return &ConfigError{Field: "store.backend", Message: "must be one of memory, sqlite, redis"}
	}
	if c.Store.Key == "" {
		return &ConfigError{Field: "store.key", Message: "must not be empty"}
	}
	if c.Store.Backend == BackendSQLite && c.Store.SQLitePath == "" {
		return &ConfigError{Field: "store.sqlitePath", Message: "required for the sqlite backend"}
	}
	if c.Store.Backend == BackendRedis && c.Store.Redis.Addr == "" {
		return &ConfigError{Field: "store.redis.addr", Message: "required for the redis backend"}
	}
	if c.Windows.ActiveDays <= 0 {
		return &ConfigError{Field: "windows.activeDays", Message: "must be positive"}
	}
	if c.Windows.StaleDays <= c.Windows.ActiveDays {
		return &ConfigError{Field: "windows.staleDays", Message: "must be greater than windows.activeDays"}
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return &ConfigError{Field: "logging.format", Message: "must be console or json"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
