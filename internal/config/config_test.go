package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "public", cfg.Assets.PublicDir)
	assert.Empty(t, cfg.Content.Path)
	assert.False(t, cfg.IsProduction())
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("ETSITE_SERVER_ADDR", ":9090")
	t.Setenv("ETSITE_LOG_FORMAT", "json")
	t.Setenv("ETSITE_CONTENT_PATH", "/etc/etsite/content.yaml")
	t.Setenv("ETSITE_SERVER_SHUTDOWN_TIMEOUT", "3s")

	cfg, err := load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/etc/etsite/content.yaml", cfg.Content.Path)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "etsite.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: \":7000\"\nlog:\n  level: warn\n"), 0o600))

	t.Run("file values", func(t *testing.T) {
		cfg, err := load(viper.New(), path)
		require.NoError(t, err)
		assert.Equal(t, ":7000", cfg.Server.Addr)
		assert.Equal(t, "warn", cfg.Log.Level)
	})

	t.Run("environment wins over the file", func(t *testing.T) {
		t.Setenv("ETSITE_SERVER_ADDR", ":7001")
		cfg, err := load(viper.New(), path)
		require.NoError(t, err)
		assert.Equal(t, ":7001", cfg.Server.Addr)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestLoadValidation(t *testing.T) {
	t.Run("unknown log format", func(t *testing.T) {
		t.Setenv("ETSITE_LOG_FORMAT", "xml")
		_, err := load(viper.New(), "")
		assert.ErrorContains(t, err, "invalid configuration")
	})

	t.Run("short session secret", func(t *testing.T) {
		t.Setenv("ETSITE_SESSION_SECRET", "short")
		_, err := load(viper.New(), "")
		assert.ErrorContains(t, err, "Secret")
	})

	t.Run("production needs a real secret", func(t *testing.T) {
		t.Setenv("ETSITE_APP_ENV", "production")
		_, err := load(viper.New(), "")
		assert.ErrorIs(t, err, ErrInsecureSecret)

		t.Setenv("ETSITE_SESSION_SECRET", "a-real-production-secret-value")
		cfg, err := load(viper.New(), "")
		require.NoError(t, err)
		assert.True(t, cfg.IsProduction())
	})
}

func TestPublishValidate(t *testing.T) {
	p := Publish{Bucket: "site", Region: "auto", AccessKey: "id", SecretKey: "secret"}
	assert.NoError(t, p.Validate())

	p.Bucket = ""
	assert.ErrorContains(t, p.Validate(), "Bucket")

	p.Bucket = "site"
	p.Endpoint = "not a url"
	assert.Error(t, p.Validate())
}
