package suggest

import (
	"sync/atomic"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// DefaultMaxPrefix caps how deep a single query may walk.
const DefaultMaxPrefix = 60

// Completer turns a raw prefix into a single suggested word.
// The index it reads from can be replaced at any time with Swap.
type Completer struct {
	index     atomic.Pointer[PrefixIndex]
	maxPrefix int
}

// NewCompleter wraps idx. A nil idx is treated as an empty dictionary.
func NewCompleter(idx *PrefixIndex, maxPrefix int) *Completer {
	if idx == nil {
		idx = NewPrefixIndex()
	}
	if maxPrefix <= 0 {
		maxPrefix = DefaultMaxPrefix
	}
	c := &Completer{maxPrefix: maxPrefix}
	c.index.Store(idx)
	return c
}

// Complete returns the first stored word that starts with prefix and true,
// or false when there is nothing to suggest. A prefix that is itself a stored
// word with no longer extensions completes to itself.
func (c *Completer) Complete(prefix string) (string, bool) {
	if prefix == "" {
		return "", false
	}
	if utf8.RuneCountInString(prefix) > c.maxPrefix {
		log.Debugf("Prefix exceeds %d runes, skipping lookup", c.maxPrefix)
		return "", false
	}

	var (
		word  string
		found bool
	)
	err := c.Index().Visit(prefix, func(w string) error {
		word, found = w, true
		return ErrStopVisit
	})
	if err != nil {
		log.Errorf("Error completing prefix %q: %v", prefix, err)
		return "", false
	}
	return word, found
}

// Index returns the index currently used for lookups.
func (c *Completer) Index() *PrefixIndex {
	return c.index.Load()
}

// Swap publishes idx for all following lookups and returns the previous index.
// Callers must not modify idx afterwards.
func (c *Completer) Swap(idx *PrefixIndex) *PrefixIndex {
	if idx == nil {
		idx = NewPrefixIndex()
	}
	old := c.index.Swap(idx)
	log.Debugf("Swapped index: %d -> %d words", old.Len(), idx.Len())
	return old
}

// MaxPrefix returns the prefix length cap in runes.
func (c *Completer) MaxPrefix() int {
	return c.maxPrefix
}

func (c *Completer) Stats() map[string]int {
	idx := c.Index()
	return map[string]int{
		"totalWords": idx.Len(),
		"nodes":      idx.Nodes(),
		"maxPrefix":  c.maxPrefix,
	}
}
