// Package bench times prefix searches on the PrefixIndex against other
// prefix structures built from the same word list.
package bench

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/armon/go-radix"
	"github.com/bastiangx/wordfinisher/pkg/suggest"
	"github.com/tchap/go-patricia/v2/patricia"
)

// DefaultPrefixes are searched when none are given.
var DefaultPrefixes = []string{"pro", "test", "abc"}

// Searcher is a prefix structure under test.
type Searcher interface {
	Name() string
	Insert(word string)
	Search(prefix string) []string
}

// Result is the timing of one structure over every prefix and round.
type Result struct {
	Name    string
	Average time.Duration
	Matches int
}

// Report holds all results plus the index's reduction relative to the hashmap baseline.
type Report struct {
	Results   []Result
	Reduction float64
	Mismatch  []string
}

// Searchers returns the structures the benchmark compares, the PrefixIndex first.
func Searchers() []Searcher {
	return []Searcher{
		&indexSearcher{idx: suggest.NewPrefixIndex()},
		&hashmapSearcher{buckets: make(map[rune][]string)},
		&patriciaSearcher{trie: patricia.NewTrie()},
		&radixSearcher{tree: radix.New()},
	}
}

// Run loads words into each searcher and times rounds of searches over prefixes.
func Run(words, prefixes []string, rounds int) Report {
	if len(prefixes) == 0 {
		prefixes = DefaultPrefixes
	}
	if rounds <= 0 {
		rounds = 1
	}

	searchers := Searchers()
	report := Report{}
	var reference map[string][]string

	for _, s := range searchers {
		for _, w := range words {
			s.Insert(strings.ToLower(w))
		}

		found := make(map[string][]string, len(prefixes))
		var total time.Duration
		matches := 0
		for _, p := range prefixes {
			lower := strings.ToLower(p)
			for range rounds {
				start := time.Now()
				got := s.Search(lower)
				total += time.Since(start)
				found[p] = got
			}
			matches += len(found[p])
		}

		report.Results = append(report.Results, Result{
			Name:    s.Name(),
			Average: total / time.Duration(len(prefixes)*rounds),
			Matches: matches,
		})

		if reference == nil {
			reference = found
			continue
		}
		for _, p := range prefixes {
			if !sameSet(reference[p], found[p]) {
				report.Mismatch = append(report.Mismatch, fmt.Sprintf("%s/%s", s.Name(), p))
			}
		}
	}

	index, hashmap := report.Results[0].Average, report.Results[1].Average
	if hashmap > 0 {
		report.Reduction = float64(hashmap-index) / float64(hashmap) * 100
	}
	return report
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	x, y := slices.Clone(a), slices.Clone(b)
	slices.Sort(x)
	slices.Sort(y)
	return slices.Equal(x, y)
}

type indexSearcher struct{ idx *suggest.PrefixIndex }

func (s *indexSearcher) Name() string                  { return "prefix-index" }
func (s *indexSearcher) Insert(word string)            { s.idx.Insert(word) }
func (s *indexSearcher) Search(prefix string) []string { return s.idx.Search(prefix) }

// hashmapSearcher buckets words by first rune and scans the bucket.
type hashmapSearcher struct {
	buckets map[rune][]string
	empty   []string
	seen    map[string]struct{}
}

func (s *hashmapSearcher) Name() string { return "hashmap" }

func (s *hashmapSearcher) Insert(word string) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[word]; ok {
		return
	}
	s.seen[word] = struct{}{}
	for _, r := range word {
		s.buckets[r] = append(s.buckets[r], word)
		return
	}
	s.empty = append(s.empty, word)
}

func (s *hashmapSearcher) Search(prefix string) []string {
	results := []string{}
	if prefix == "" {
		results = append(results, s.empty...)
		for _, bucket := range s.buckets {
			results = append(results, bucket...)
		}
		return results
	}
	for _, r := range prefix {
		for _, w := range s.buckets[r] {
			if strings.HasPrefix(w, prefix) {
				results = append(results, w)
			}
		}
		break
	}
	return results
}

type patriciaSearcher struct{ trie *patricia.Trie }

func (s *patriciaSearcher) Name() string { return "go-patricia" }

func (s *patriciaSearcher) Insert(word string) {
	s.trie.Set(patricia.Prefix(word), struct{}{})
}

func (s *patriciaSearcher) Search(prefix string) []string {
	results := []string{}
	_ = s.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, _ patricia.Item) error {
		results = append(results, string(p))
		return nil
	})
	return results
}

type radixSearcher struct{ tree *radix.Tree }

func (s *radixSearcher) Name() string { return "go-radix" }

func (s *radixSearcher) Insert(word string) {
	s.tree.Insert(word, struct{}{})
}

func (s *radixSearcher) Search(prefix string) []string {
	results := []string{}
	s.tree.WalkPrefix(prefix, func(key string, _ any) bool {
		results = append(results, key)
		return false
	})
	return results
}
