package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const validConfig = `
server:
  host: "0.0.0.0"
  port: 8080
database:
  host: "localhost"
  port: 5432
  user: "partyrent"
  password: "pw"
  database: "partyrent_test"
jwt:
  secret: "a-secret-that-is-at-least-32-characters"
log:
  level: "debug"
`

func TestLoad(t *testing.T) {
	t.Run("valid config loads with defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, validConfig))
		require.NoError(t, err)

		assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddress())
		assert.Equal(t, 60, cfg.JWT.AccessTokenExpiry)
		assert.Equal(t, "0 0 2 * * *", cfg.Scheduler.MarkOverdueBookings)
		assert.Equal(t, "0 0 9 * * *", cfg.Scheduler.SendBookingReminders)
		assert.Contains(t, cfg.GetDatabaseConnectionString(), "sslmode=disable")
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("short jwt secret is rejected", func(t *testing.T) {
		content := `
server:
  port: 8080
database:
  host: "localhost"
  user: "u"
  database: "d"
jwt:
  secret: "too-short"
`
		_, err := Load(writeConfig(t, content))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "32 characters")
	})

	t.Run("environment overrides win", func(t *testing.T) {
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("SERVER_PORT", "9090")

		cfg, err := Load(writeConfig(t, validConfig))
		require.NoError(t, err)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, 9090, cfg.Server.Port)
	})
}
