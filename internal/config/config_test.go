package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku-backend/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("defaults from env when no file exists", func(t *testing.T) {
		// Given:
		t.Setenv("PORT", "9191")
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When:
		conf, err := config.Load(path)

		// Then:
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "9191", conf.Port)
		assert.Equal(t, config.AccountsBackendFile, conf.AccountsBackend)
		assert.Equal(t, "data/accounts.json", conf.AccountsFile)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("reads the yml file", func(t *testing.T) {
		// Given:
		path := filepath.Join(t.TempDir(), "config.yml")
		body := "log-level: debug\nport: \"7070\"\naccounts-backend: redis\nredis:\n  host: cache\n  port: \"6380\"\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

		// When:
		conf, err := config.Load(path)

		// Then:
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "7070", conf.Port)
		assert.Equal(t, config.AccountsBackendRedis, conf.AccountsBackend)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
	})

	t.Run("rejects an unknown accounts backend", func(t *testing.T) {
		// Given:
		t.Setenv("ACCOUNTS_BACKEND", "postgres")

		// When:
		_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then:
		assert.Error(t, err)
	})

	t.Run("must load panics on error", func(t *testing.T) {
		// Given:
		t.Setenv("ACCOUNTS_BACKEND", "postgres")

		// When / Then:
		assert.Panics(t, func() {
			config.MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
