package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("Valid configuration", func(t *testing.T) {
		t.Setenv("FINLOG_DB_PATH", "/tmp/finlog-test")
		t.Setenv("FINLOG_SESSION_SECRET", "test-secret")
		t.Setenv("PORT", "9090")

		cfg, err := Load()
		assert.NoError(t, err)
		assert.Equal(t, "/tmp/finlog-test", cfg.Store.Path)
		assert.Equal(t, "test-secret", cfg.Session.Secret)
		assert.Equal(t, "0.0.0.0:9090", cfg.Addr())
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("FINLOG_DB_PATH", "/tmp/finlog-test")
		t.Setenv("FINLOG_SESSION_SECRET", "test-secret")
		t.Setenv("PORT", "")
		t.Setenv("HOST", "")
		t.Setenv("LOG_LEVEL", "")

		cfg, err := Load()
		assert.NoError(t, err)
		assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
		assert.Equal(t, "INFO", cfg.Log.Level)
	})

	t.Run("Missing store path", func(t *testing.T) {
		t.Setenv("FINLOG_DB_PATH", "")
		t.Setenv("FINLOG_SESSION_SECRET", "test-secret")

		cfg, err := Load()
		assert.Nil(t, cfg)
		assert.ErrorContains(t, err, "FINLOG_DB_PATH")
	})

	t.Run("Missing session secret", func(t *testing.T) {
		t.Setenv("FINLOG_DB_PATH", "/tmp/finlog-test")
		t.Setenv("FINLOG_SESSION_SECRET", "")

		cfg, err := Load()
		assert.Nil(t, cfg)
		assert.ErrorContains(t, err, "FINLOG_SESSION_SECRET")
	})
}
