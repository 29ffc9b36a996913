package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var words = []string{"Program", "project", "prolong", "test", "tester", "testing", "abc", "abacus", "zebra", "pro"}

func TestSearchersAgree(t *testing.T) {
	for _, s := range Searchers() {
		t.Run(s.Name(), func(t *testing.T) {
			for _, w := range []string{"program", "project", "prolong", "pro", "pro", "zebra"} {
				s.Insert(w)
			}
			assert.ElementsMatch(t, []string{"program", "project", "prolong", "pro"}, s.Search("pro"))
			assert.Empty(t, s.Search("xyz"))
			assert.Len(t, s.Search(""), 5)
		})
	}
}

func TestRun(t *testing.T) {
	report := Run(words, nil, 3)

	require.Len(t, report.Results, 4)
	assert.Equal(t, "prefix-index", report.Results[0].Name)
	assert.Equal(t, "hashmap", report.Results[1].Name)
	assert.Empty(t, report.Mismatch)
	for _, r := range report.Results {
		// pro: 4, test: 3, abc: 1
		assert.Equal(t, 8, r.Matches, r.Name)
	}
}
