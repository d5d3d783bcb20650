package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8080, c.Server.Port)
	assert.Equal(t, "finance", c.Mongo.Database)
	assert.Equal(t, "finance-session", c.Auth.CookieName)
	assert.True(t, c.Auth.SecureCookie)
	assert.Equal(t, 24*time.Hour, c.Auth.TokenTTL)
	assert.Equal(t, 10*time.Minute, c.Export.TTL)
	assert.Equal(t, 365*24*time.Hour, c.Horizon())
	assert.Equal(t, ":8080", c.ListenAddress())
	assert.Error(t, c.Validate())
}

func TestLoadFileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9000\nauth:\n  secret: from-file\n"), 0o600))
	t.Setenv("FINANCE_MONGO_DATABASE", "finance_test")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, c.Server.Port)
	assert.Equal(t, "from-file", c.Auth.Secret)
	assert.Equal(t, "finance_test", c.Mongo.Database)
	assert.NoError(t, c.Validate())
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLocation(t *testing.T) {
	c := &Config{Recurring: RecurringConfig{Timezone: "Local"}}
	loc, err := c.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	c.Recurring.Timezone = "Mars/Olympus"
	_, err = c.Location()
	assert.Error(t, err)
}

func TestLoadEnvFileKeepsExistingVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("FINANCE_TEST_A=from-file\nFINANCE_TEST_B=from-file\n"), 0o600))
	t.Setenv("FINANCE_TEST_A", "from-env")
	t.Setenv("FINANCE_TEST_B", "")
	os.Unsetenv("FINANCE_TEST_B")

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "from-env", os.Getenv("FINANCE_TEST_A"))
	assert.Equal(t, "from-file", os.Getenv("FINANCE_TEST_B"))

	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")))
}
