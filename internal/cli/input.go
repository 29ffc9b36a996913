// Package cli handles cmd line input and completions for DBG and testing the dictionary
package cli

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/wordfinisher/internal/utils"
	"github.com/bastiangx/wordfinisher/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var wordStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))

// InputHandler reads prefixes line by line and prints the completion for each.
// Length limits and input filtering mirror what the server accepts.
type InputHandler struct {
	completer       suggest.ICompleter
	minPrefixLength int
	maxPrefixLength int
	noFilter        bool
	in              io.Reader
	out             *log.Logger
}

// NewInputHandler handles initialization of the InputHandler on stdin/stdout
func NewInputHandler(completer suggest.ICompleter, minLength, maxLength int, noFilter bool) *InputHandler {
	return NewInputHandlerWithIO(completer, minLength, maxLength, noFilter, os.Stdin, os.Stdout)
}

// NewInputHandlerWithIO is NewInputHandler with explicit input and output
func NewInputHandlerWithIO(completer suggest.ICompleter, minLength, maxLength int, noFilter bool, in io.Reader, out io.Writer) *InputHandler {
	return &InputHandler{
		completer:       completer,
		minPrefixLength: minLength,
		maxPrefixLength: maxLength,
		noFilter:        noFilter,
		in:              in,
		out: log.NewWithOptions(out, log.Options{
			ReportTimestamp: false,
			Level:           log.GetLevel(),
		}),
	}
}

// Start begins the interface loop. It returns nil when the input is exhausted.
func (h *InputHandler) Start() error {
	h.out.Print("WordFinisher CLI")
	h.out.Print("type a prefix and press Enter to complete it (Ctrl+C to exit):")
	reader := bufio.NewReader(h.in)

	for {
		line, err := reader.ReadString('\n')
		prefix := strings.TrimSpace(line)
		if prefix != "" {
			h.handleInput(prefix)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// handleInput validates the prefix's length and content, then prints the completion.
func (h *InputHandler) handleInput(prefix string) {
	n := utf8.RuneCountInString(prefix)
	if n < h.minPrefixLength {
		h.out.Errorf("Prefix too short: %s", prefix)
		return
	}
	if n > h.maxPrefixLength {
		h.out.Errorf("Prefix too long: %s", prefix)
		return
	}

	if !h.noFilter && !utils.IsValidInput(prefix) {
		h.out.Warnf("Filtered prefix: '%s'", prefix)
		return
	}

	start := time.Now()
	word, found := h.completer.Complete(prefix)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for prefix '%s'", elapsed, prefix)

	if !found {
		h.out.Warnf("No suggestion for prefix: '%s'", prefix)
		return
	}
	h.out.Printf("%s -> %s", prefix, wordStyle.Render(word))
}
