package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bastiangx/wordfinisher/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, input string, noFilter bool) string {
	t.Helper()
	prev := log.GetLevel()
	log.SetLevel(log.InfoLevel)
	defer log.SetLevel(prev)

	idx := suggest.NewPrefixIndex()
	idx.BulkLoad([]string{"program", "project", "pro", "123abc"})
	var out bytes.Buffer
	h := NewInputHandlerWithIO(suggest.NewCompleter(idx, 0), 1, 10, noFilter, strings.NewReader(input), &out)

	require.NoError(t, h.Start())
	return out.String()
}

func TestInputHandler(t *testing.T) {
	out := run(t, "prog\n\nxyz\nabcdefghijklmnop\n$$\nproj", false)

	assert.Contains(t, out, "program")
	assert.Contains(t, out, "project", "last line without newline is still handled")
	assert.Contains(t, out, "No suggestion for prefix: 'xyz'")
	assert.Contains(t, out, "Prefix too long")
	assert.Contains(t, out, "Filtered prefix: '$$'")
}

func TestInputHandlerNoFilter(t *testing.T) {
	out := run(t, "123\n", true)
	assert.Contains(t, out, "123abc")

	out = run(t, "123\n", false)
	assert.Contains(t, out, "Filtered prefix: '123'")
}
