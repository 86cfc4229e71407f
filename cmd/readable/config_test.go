package main_test

import (
	"testing"

	main "github.com/erayd/readable/cmd/readable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := main.DefaultConfig()

	assert.Equal(t, main.DriverSQLite, cfg.Store.Driver)
	assert.Contains(t, cfg.Store.Path, "readable.db")
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Empty(t, cfg.Extract.Container)
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("overrides defaults", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "readable.yaml", `
store:
  driver: fs
  path: /var/cache/readable
server:
  addr: 127.0.0.1:9000
  submitRate: 0.5
`)

		cfg, err := main.LoadConfigFile(path)

		require.NoError(t, err)
		assert.Equal(t, main.DriverFS, cfg.Store.Driver)
		assert.Equal(t, "/var/cache/readable", cfg.Store.Path)
		assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
		assert.InDelta(t, 0.5, cfg.Server.SubmitRate, 1e-9)
		assert.Equal(t, 5, cfg.Server.SubmitBurst, "unset keys keep defaults")
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "readable.yaml", "store: [unterminated")

		_, err := main.LoadConfigFile(path)

		require.Error(t, err)
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := main.LoadConfigFile("/nonexistent/readable.yaml")

		require.Error(t, err)
	})
}

func TestConfig_ApplyEnv(t *testing.T) {
	t.Parallel()

	t.Run("selects cache directory", func(t *testing.T) {
		t.Parallel()

		cfg := main.DefaultConfig()
		cfg.ApplyEnv(func(key string) string {
			return map[string]string{"READABLE_CACHE_DIR": "/tmp/cache"}[key]
		})

		assert.Equal(t, main.DriverFS, cfg.Store.Driver)
		assert.Equal(t, "/tmp/cache", cfg.Store.Path)
	})

	t.Run("prefers database over cache directory", func(t *testing.T) {
		t.Parallel()

		cfg := main.DefaultConfig()
		cfg.ApplyEnv(func(key string) string {
			return map[string]string{
				"READABLE_CACHE_DIR": "/tmp/cache",
				"READABLE_DB":        "/tmp/readable.db",
			}[key]
		})

		assert.Equal(t, main.DriverSQLite, cfg.Store.Driver)
		assert.Equal(t, "/tmp/readable.db", cfg.Store.Path)
	})

	t.Run("keeps file settings without env", func(t *testing.T) {
		t.Parallel()

		cfg := main.DefaultConfig()
		cfg.Store.Driver = main.DriverFS
		cfg.Store.Path = "/srv/cache"
		cfg.ApplyEnv(func(string) string { return "" })

		assert.Equal(t, main.DriverFS, cfg.Store.Driver)
		assert.Equal(t, "/srv/cache", cfg.Store.Path)
	})
}
