// Package dictionary reads newline-delimited word lists into a suggest.PrefixIndex.
package dictionary

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bastiangx/wordfinisher/internal/utils"
	"github.com/bastiangx/wordfinisher/pkg/suggest"
	"github.com/charmbracelet/log"
)

// DefaultBatchSize is how many words are handed to BulkLoad at once.
const DefaultBatchSize = 20000

// maxLineSize is the longest line a word list may contain.
const maxLineSize = 1024 * 1024

// ErrSourceUnavailable is returned when the word list cannot be opened or read.
var ErrSourceUnavailable = errors.New("word list unavailable")

// Stats describes one load pass.
type Stats struct {
	Lines   int
	Skipped int
	Batches int
	Words   int
	Nodes   int
	Took    time.Duration
}

// Build loads the word list at path into a new index.
// The index is complete when Build returns and can be published as is.
func Build(ctx context.Context, path string, batchSize int) (*suggest.PrefixIndex, Stats, error) {
	idx := suggest.NewPrefixIndex()
	stats, err := Load(ctx, path, idx, batchSize)
	if err != nil {
		return nil, stats, err
	}
	return idx, stats, nil
}

// Load reads the word list at path into idx.
func Load(ctx context.Context, path string, idx *suggest.PrefixIndex, batchSize int) (Stats, error) {
	if err := ValidateSource(path); err != nil {
		return Stats{}, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	rc, err := openSource(path)
	if err != nil {
		return Stats{}, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer rc.Close()

	stats, err := LoadReader(ctx, rc, idx, batchSize)
	if err != nil {
		return stats, err
	}
	log.Debug("Loaded word list", "path", path, "words", stats.Words, "batches", stats.Batches, "took", stats.Took)
	return stats, nil
}

// LoadReader reads one word per line from r. Lines are trimmed and lower-cased,
// blank lines are skipped. Cancellation is checked between batches.
func LoadReader(ctx context.Context, r io.Reader, idx *suggest.PrefixIndex, batchSize int) (Stats, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	start := time.Now()
	stats := Stats{}

	scanner := newLineScanner(r)

	batch := make([]string, 0, batchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		idx.BulkLoad(batch)
		stats.Batches++
		log.Debugf("Inserted batch %d (%d words)", stats.Batches, len(batch))
		batch = batch[:0]
		return nil
	}

	for scanner.Scan() {
		stats.Lines++
		word := utils.NormalizeWord(scanner.Text())
		if word == "" {
			stats.Skipped++
			continue
		}
		batch = append(batch, word)
		if len(batch) == batchSize {
			if err := flush(); err != nil {
				return stats, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("%w: reading line %d: %w", ErrSourceUnavailable, stats.Lines+1, err)
	}
	if err := flush(); err != nil {
		return stats, err
	}

	stats.Words = idx.Len()
	stats.Nodes = idx.Nodes()
	stats.Took = time.Since(start)
	return stats, nil
}

// ReadWords returns the normalized, non-blank lines of the word list at path.
func ReadWords(path string) ([]string, error) {
	if err := ValidateSource(path); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	rc, err := openSource(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer rc.Close()

	var words []string
	scanner := newLineScanner(rc)
	for scanner.Scan() {
		if word := utils.NormalizeWord(scanner.Text()); word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	return words, nil
}

func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return scanner
}
