package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestLoadConfigWithoutFileUsesDefaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFromYAML(t *testing.T) {
	path := writeFile(t, "tabshelf.yaml", `
store:
  backend: redis
  key: profile-1
  redis:
    addr: redis.internal:6380
    db: 2
windows:
  activeDays: 7
  staleDays: 60
logging:
  level: debug
  format: json
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, BackendRedis, cfg.Store.Backend)
	require.Equal(t, "profile-1", cfg.Store.Key)
	require.Equal(t, "redis.internal:6380", cfg.Store.Redis.Addr)
	require.Equal(t, 2, cfg.Store.Redis.DB)
	require.Equal(t, "tabshelf:", cfg.Store.Redis.Prefix)
	require.Equal(t, 7, cfg.Windows.Windows().ActiveDays)
	require.Equal(t, 60, cfg.Windows.Windows().StaleDays)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := writeFile(t, "tabshelf.json", `{"store":{"backend":"sqlite"}}`)
	t.Setenv("TABSHELF_STORE_BACKEND", "memory")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, BackendMemory, cfg.Store.Backend)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadConfigRejectsInvalidWindows(t *testing.T) {
	path := writeFile(t, "tabshelf.yaml", "windows:\n  activeDays: 10\n  staleDays: 5\n")

	_, err := LoadConfig(path)
	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	require.Equal(t, "windows.staleDays", cfgErr.Field)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"store.backend":      func(c *Config) { c.Store.Backend = "etcd" },
		"store.key":          func(c *Config) { c.Store.Key = "" },
		"store.sqlitePath":   func(c *Config) { c.Store.SQLitePath = "" },
		"store.redis.addr":   func(c *Config) { c.Store.Backend = BackendRedis; c.Store.Redis.Addr = "" },
		"windows.activeDays": func(c *Config) { c.Windows.ActiveDays = 0 },
		"logging.format":     func(c *Config) { c.Logging.Format = "xml" },
	}
	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(cfg)
			err := cfg.Validate()
			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			require.Equal(t, field, cfgErr.Field)
		})
	}
}
