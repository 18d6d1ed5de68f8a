package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_DefaultsWhenNothingExists(t *testing.T) {
	dir := t.TempDir()

	c, err := LoadFrom(filepath.Join(dir, "missing.json"), filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), c)
}

func TestLoadFrom_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{
		"api_base_url": "https://wall.example.com",
		"timeout": "3s",
		"page_size": 20,
		"endpoints": {"token": "/auth/token/"}
	}`), 0o600))
	t.Setenv("WALL_LOG_LEVEL", "debug")
	t.Setenv("WALL_PAGE_SIZE", "5")

	c, err := LoadFrom(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "https://wall.example.com", c.APIBaseURL)
	assert.Equal(t, Duration(3*time.Second), c.Timeout)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, 5, c.PageSize)
	assert.Equal(t, "/auth/token/", c.Endpoints.Token)
	assert.Equal(t, "/api/wall/walls/list/", c.Endpoints.Posts)
}

func TestLoadFrom_DotEnv(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("WALL_API_BASE_URL=https://from-dotenv.test\nWALL_TIMEOUT=1m\n"), 0o600))
	t.Setenv("WALL_API_BASE_URL", "")
	os.Unsetenv("WALL_API_BASE_URL")
	t.Setenv("WALL_TIMEOUT", "")
	os.Unsetenv("WALL_TIMEOUT")

	c, err := LoadFrom(filepath.Join(dir, "none.json"), envPath)
	require.NoError(t, err)
	assert.Equal(t, "https://from-dotenv.test", c.APIBaseURL)
	assert.Equal(t, Duration(time.Minute), c.Timeout)
}

func TestLoadFrom_BadJSON(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte("{"), 0o600))

	_, err := LoadFrom(cfgPath)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	c := Defaults()
	c.APIBaseURL = "ftp://nope"
	assert.Error(t, c.Validate())

	c = Defaults()
	c.Timeout = 0
	assert.Error(t, c.Validate())

	c = Defaults()
	c.PageSize = 1000
	assert.Error(t, c.Validate())

	assert.NoError(t, Defaults().Validate())
}

func TestLoadFrom_InvalidValueCanBeOverridden(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WALL_API_BASE_URL", "wall.example")

	c, err := LoadFrom(filepath.Join(dir, "none.json"))
	require.NoError(t, err)
	assert.Equal(t, "wall.example", c.APIBaseURL)
	assert.Error(t, c.Validate())

	c.APIBaseURL = "https://ok.example"
	assert.NoError(t, c.Validate())
}
