package dictionary

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/bastiangx/wordfinisher/internal/logger"
	"github.com/bastiangx/wordfinisher/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of events an editor or copy produces into one rebuild.
const DefaultDebounce = 250 * time.Millisecond

// Reloader rebuilds the dictionary off to the side and swaps it into a Completer.
// Readers keep using the previous index until the new one is complete.
type Reloader struct {
	path      string
	batchSize int
	debounce  time.Duration
	completer *suggest.Completer
	logger    *log.Logger
}

// NewReloader creates a reloader for the word list at path.
func NewReloader(path string, batchSize int, completer *suggest.Completer) *Reloader {
	return &Reloader{
		path:      filepath.Clean(path),
		batchSize: batchSize,
		debounce:  DefaultDebounce,
		completer: completer,
		logger:    logger.New("reload"),
	}
}

// SetDebounce changes the quiet period between the last file event and the rebuild.
func (r *Reloader) SetDebounce(d time.Duration) {
	r.debounce = d
}

// Reload builds a fresh index and publishes it. On failure the current index stays in place.
func (r *Reloader) Reload(ctx context.Context) error {
	idx, stats, err := Build(ctx, r.path, r.batchSize)
	if err != nil {
		r.logger.Error("Reload failed, keeping current dictionary", "path", r.path, "err", err)
		return err
	}
	r.completer.Swap(idx)
	r.logger.Info("Dictionary reloaded", "words", stats.Words, "took", stats.Took)
	return nil
}

// Run watches the word list's directory and reloads after changes to the file.
// It blocks until ctx is done.
func (r *Reloader) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// watch the directory so atomic rename-into-place replacements are seen
	if err := watcher.Add(filepath.Dir(r.path)); err != nil {
		return fmt.Errorf("watching %s: %w", r.path, err)
	}
	r.logger.Debug("Watching word list", "path", r.path)

	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != r.path || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			r.logger.Debug("Word list changed", "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(r.debounce)
			} else {
				timer.Reset(r.debounce)
			}
			timerC = timer.C
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.logger.Warn("Watcher error", "err", err)
		case <-timerC:
			timerC = nil
			_ = r.Reload(ctx)
		}
	}
}
