package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "LOG_LEVEL", "HTTP_ADDR", "STORAGE_BACKEND", "POSTGRES_DSN", "SQLITE_PATH", "DATA_DIR", "AUTH_REQUIRED", "AUTH_TOKEN", "AUTH_SERVICE_URL", "OPEN_BROWSER"} {
		t.Setenv(k, "")
	}
	c, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "development", c.Env)
	assert.Equal(t, "memory", c.DBType)
	assert.Equal(t, ":8088", c.HTTPAddr)
	assert.Equal(t, "MOCK-TOKEN", c.AuthToken)
	assert.False(t, c.AuthRequired)
	assert.Equal(t, "data/calorietracker.db", c.SQLitePath)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")
	t.Setenv("AUTH_REQUIRED", "true")
	t.Setenv("OPEN_BROWSER", "not-a-bool")
	c, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", c.DBType)
	assert.Equal(t, "/tmp/x.db", c.SQLitePath)
	assert.True(t, c.AuthRequired)
	assert.False(t, c.OpenBrowser)
}

func TestValidate(t *testing.T) {
	base := Config{Env: "development", DBType: "memory"}

	c := base
	assert.NoError(t, c.Validate())

	c = base
	c.DBType = "postgres"
	assert.Error(t, c.Validate())
	c.DBDSN = "postgres://localhost/db"
	assert.NoError(t, c.Validate())

	c = base
	c.DBType = "redis"
	assert.Error(t, c.Validate())

	c = base
	c.Env = "qa"
	assert.Error(t, c.Validate())

	c = base
	c.Env = "production"
	c.AuthRequired = true
	assert.Error(t, c.Validate())
	c.AuthServiceURL = "http://auth/validate"
	assert.NoError(t, c.Validate())
}

func TestParse_DoesNotValidate(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "redis")
	_, err := FromEnv()
	assert.Error(t, err)

	c := Parse()
	assert.Equal(t, "redis", c.DBType)
	c.DBType = "memory"
	assert.NoError(t, c.Validate())
}
