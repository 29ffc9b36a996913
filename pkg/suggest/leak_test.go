package suggest

import (
	"fmt"
	"runtime"
	"sync"
	"testing"
)

var longPatterns = [][]string{
	{"a", "ab", "abc", "abcd", "abcde"},
	{"h", "he", "hel", "hell", "hello"},
	{"p", "pr", "pro", "prog", "progr", "progra", "program"},
	{"i", "in", "int", "inte", "inter", "intern", "interna", "internat", "internati", "internatio", "internation", "internationa", "international"},
	{"d", "de", "dev", "deve", "devel", "develo", "develop", "developm", "developme", "developmen", "development"},
}

func patternCompleter() *Completer {
	idx := NewPrefixIndex()
	for _, pattern := range longPatterns {
		idx.BulkLoad(pattern)
		last := pattern[len(pattern)-1]
		for i := range 50 {
			idx.Insert(fmt.Sprintf("%s%03d", last, i))
		}
	}
	return NewCompleter(idx, 0)
}

func TestCompleteNoGoroutineLeak(t *testing.T) {
	c := patternCompleter()
	baseline := runtime.NumGoroutine()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				for _, pattern := range longPatterns {
					for _, prefix := range pattern {
						if _, ok := c.Complete(prefix); !ok {
							t.Errorf("no completion for %q", prefix)
							return
						}
					}
				}
			}
		}()
	}
	wg.Wait()

	if delta := runtime.NumGoroutine() - baseline; delta > 2 {
		t.Errorf("goroutine leak detected: %d goroutines leaked", delta)
	}
}

func TestCompleteAllocations(t *testing.T) {
	c := patternCompleter()

	allocs := testing.AllocsPerRun(200, func() {
		c.Complete("inter")
	})

	if allocs > 16 {
		t.Errorf("excessive allocations per completion: %.1f", allocs)
	}
}

func BenchmarkComplete(b *testing.B) {
	c := patternCompleter()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pattern := longPatterns[i%len(longPatterns)]
		c.Complete(pattern[i%len(pattern)])
	}
}

func BenchmarkSearch(b *testing.B) {
	idx := patternCompleter().Index()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx.Search("development")
	}
}
