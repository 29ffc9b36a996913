package dictionary

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bastiangx/wordfinisher/pkg/suggest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReloaderReload(t *testing.T) {
	path := writeList(t, "words.txt", "alpha\n")
	idx, _, err := Build(context.Background(), path, 0)
	require.NoError(t, err)
	c := suggest.NewCompleter(idx, 0)
	r := NewReloader(path, 0, c)

	require.NoError(t, os.WriteFile(path, []byte("beta\n"), 0644))
	require.NoError(t, r.Reload(context.Background()))

	word, found := c.Complete("b")
	assert.True(t, found)
	assert.Equal(t, "beta", word)
}

func TestReloaderKeepsIndexOnFailure(t *testing.T) {
	path := writeList(t, "words.txt", "alpha\n")
	idx, _, err := Build(context.Background(), path, 0)
	require.NoError(t, err)
	c := suggest.NewCompleter(idx, 0)
	r := NewReloader(path, 0, c)

	require.NoError(t, os.Remove(path))
	err = r.Reload(context.Background())

	assert.ErrorIs(t, err, ErrSourceUnavailable)
	word, found := c.Complete("al")
	assert.True(t, found)
	assert.Equal(t, "alpha", word)
}

func TestReloaderRunPicksUpChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha\n"), 0644))
	idx, _, err := Build(context.Background(), path, 0)
	require.NoError(t, err)
	c := suggest.NewCompleter(idx, 0)

	r := NewReloader(path, 0, c)
	r.SetDebounce(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	assert.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("alpha\nzebra\n"), 0644)
		_, found := c.Complete("zeb")
		return found
	}, 5*time.Second, 100*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("reloader did not stop")
	}
}
