package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bastiangx/wordfinisher/pkg/dictionary"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withFlags(t *testing.T, cfg, dict string) {
	t.Helper()
	prevCfg, prevDict := configPath, dictPath
	configPath, dictPath = cfg, dict
	t.Cleanup(func() { configPath, dictPath = prevCfg, prevDict })
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestBootstrap(t *testing.T) {
	dir := t.TempDir()
	words := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(words, []byte("Program\nproject\nprolong\n"), 0644))
	cfg := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("[server]\nmax_prefix = 5\n"), 0644))
	withFlags(t, cfg, words)

	env, err := bootstrap(context.Background(), log.FatalLevel)

	require.NoError(t, err)
	assert.Equal(t, words, env.dictPath)
	assert.Equal(t, 5, env.completer.MaxPrefix())
	word, found := env.completer.Complete("pro")
	assert.True(t, found)
	assert.Equal(t, "program", word)
}

func TestBootstrapMissingDictionary(t *testing.T) {
	withFlags(t, "", filepath.Join(t.TempDir(), "missing.txt"))

	_, err := bootstrap(context.Background(), log.FatalLevel)

	assert.ErrorIs(t, err, dictionary.ErrSourceUnavailable)
}

func TestVersionFlag(t *testing.T) {
	rootCmd.SetArgs([]string{"--version"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		showVersion = false
	})

	assert.NoError(t, rootCmd.Execute())
}
