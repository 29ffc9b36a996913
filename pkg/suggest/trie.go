package suggest

import (
	"cmp"
	"errors"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
)

var (
	// ErrStopVisit ends a Visit early. Visit itself returns nil when fn returns it.
	ErrStopVisit = errors.New("stop visit")
	// ErrCorruptIndex reports a child handle that points outside the node arena.
	ErrCorruptIndex = errors.New("corrupt prefix index")
)

// handle addresses a node inside the arena. The root is always at rootHandle.
type handle uint32

const rootHandle handle = 0

type edge struct {
	label rune
	to    handle
}

// node keeps its children sorted by label so every walk sees them in the same order.
type node struct {
	children []edge
	terminal bool
}

func (n *node) child(r rune) (handle, bool) {
	i, found := slices.BinarySearchFunc(n.children, r, func(e edge, r rune) int {
		return cmp.Compare(e.label, r)
	})
	if !found {
		return 0, false
	}
	return n.children[i].to, true
}

func (n *node) addChild(r rune, h handle) {
	i, _ := slices.BinarySearchFunc(n.children, r, func(e edge, r rune) int {
		return cmp.Compare(e.label, r)
	})
	n.children = slices.Insert(n.children, i, edge{label: r, to: h})
}

// PrefixIndex is a rune trie stored as an arena of nodes.
// It is built once and then only read; it is safe for concurrent readers
// as long as nobody calls Insert or BulkLoad at the same time.
type PrefixIndex struct {
	nodes []node
	words int
}

// NewPrefixIndex returns an empty index holding only the root node.
func NewPrefixIndex() *PrefixIndex {
	return &PrefixIndex{
		nodes: []node{{}},
	}
}

// Insert stores the lower-cased word. Inserting a stored word again is a no-op.
func (p *PrefixIndex) Insert(word string) {
	cur := rootHandle
	for _, r := range strings.ToLower(word) {
		next, ok := p.nodes[cur].child(r)
		if !ok {
			next = handle(len(p.nodes))
			p.nodes = append(p.nodes, node{})
			p.nodes[cur].addChild(r, next)
		}
		cur = next
	}
	if !p.nodes[cur].terminal {
		p.nodes[cur].terminal = true
		p.words++
	}
}

// BulkLoad inserts every word of the batch.
func (p *PrefixIndex) BulkLoad(words []string) {
	for _, w := range words {
		p.Insert(w)
	}
}

// Search returns every stored word starting with prefix, in lexicographic rune order.
// Unknown prefixes give an empty slice and the empty prefix gives every word.
func (p *PrefixIndex) Search(prefix string) []string {
	results := []string{}
	err := p.Visit(prefix, func(word string) error {
		results = append(results, word)
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting index subtree for prefix %q: %v", prefix, err)
		return []string{}
	}
	return results
}

// Contains reports whether word itself is stored.
func (p *PrefixIndex) Contains(word string) bool {
	h, ok, err := p.locate(strings.ToLower(word))
	if err != nil {
		log.Errorf("Error locating %q: %v", word, err)
		return false
	}
	return ok && p.nodes[h].terminal
}

// Len returns the number of stored words.
func (p *PrefixIndex) Len() int {
	return p.words
}

// Nodes returns the arena size, root included.
func (p *PrefixIndex) Nodes() int {
	return len(p.nodes)
}

// locate walks the already lower-cased prefix from the root.
func (p *PrefixIndex) locate(lowerPrefix string) (handle, bool, error) {
	cur := rootHandle
	for _, r := range lowerPrefix {
		next, ok := p.nodes[cur].child(r)
		if !ok {
			return 0, false, nil
		}
		if int(next) >= len(p.nodes) {
			return 0, false, ErrCorruptIndex
		}
		cur = next
	}
	return cur, true, nil
}

type frame struct {
	at    handle
	depth int
	label rune
}

// Visit calls fn for every stored word under prefix, in the same order as Search.
// The walk uses an explicit stack so very long shared prefixes cannot exhaust the goroutine stack.
// If fn returns ErrStopVisit the walk ends and Visit returns nil; any other error is returned as is.
func (p *PrefixIndex) Visit(prefix string, fn func(word string) error) error {
	lowerPrefix := strings.ToLower(prefix)
	start, ok, err := p.locate(lowerPrefix)
	if err != nil || !ok {
		return err
	}

	var sb strings.Builder
	suffix := make([]rune, 0, 16)
	stack := []frame{{at: start}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if int(f.at) >= len(p.nodes) {
			return ErrCorruptIndex
		}
		if f.depth > 0 {
			suffix = append(suffix[:f.depth-1], f.label)
		}

		n := &p.nodes[f.at]
		if n.terminal {
			sb.Reset()
			sb.WriteString(lowerPrefix)
			sb.WriteString(string(suffix))
			if err := fn(sb.String()); err != nil {
				if errors.Is(err, ErrStopVisit) {
					return nil
				}
				return err
			}
		}

		// pushed in reverse so the smallest label is popped first
		for i := len(n.children) - 1; i >= 0; i-- {
			e := n.children[i]
			stack = append(stack, frame{at: e.to, depth: f.depth + 1, label: e.label})
		}
	}
	return nil
}
