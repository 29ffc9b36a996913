package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.FatalLevel)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestInitConfigCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	config, err := InitConfig(path)

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
	assert.FileExists(t, path)

	reloaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), reloaded)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[server]
addr = ":8080"
allowed_origins = ["https://editor.example"]

[dict]
path = "/srv/words.txt"
watch = true
`)

	config, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, ":8080", config.Server.Addr)
	assert.Equal(t, []string{"https://editor.example"}, config.Server.AllowedOrigins)
	assert.Equal(t, 60, config.Server.MaxPrefix, "missing keys keep defaults")
	assert.Equal(t, "/srv/words.txt", config.Dict.Path)
	assert.True(t, config.Dict.Watch)
	assert.Equal(t, 20000, config.Dict.BatchSize)
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	path := writeConfig(t, `
[server]
addr = ":7000"
max_prefix = "forty"

[dict]
batch_size = 500
`)

	config, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, ":7000", config.Server.Addr)
	assert.Equal(t, 60, config.Server.MaxPrefix)
	assert.Equal(t, 500, config.Dict.BatchSize)
}

func TestLoadConfigGarbage(t *testing.T) {
	path := writeConfig(t, "this is [not toml")

	config, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadConfigWithPriority(t *testing.T) {
	custom := writeConfig(t, "[server]\naddr = \":1234\"\n")
	defaultPath := filepath.Join(t.TempDir(), FileName)

	config, used := LoadConfigWithPriority(custom, defaultPath)
	assert.Equal(t, custom, used)
	assert.Equal(t, ":1234", config.Server.Addr)

	config, used = LoadConfigWithPriority(filepath.Join(t.TempDir(), "nope.toml"), defaultPath)
	assert.Equal(t, defaultPath, used)
	assert.Equal(t, DefaultConfig(), config)
	assert.FileExists(t, defaultPath)

	config, used = LoadConfigWithPriority("", "")
	assert.Equal(t, "", used)
	assert.Equal(t, DefaultConfig(), config)
}
