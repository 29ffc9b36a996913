// Package suggest is the core, holding the prefix index and the policy that picks a single completion for a prefix.
package suggest

// ICompleter defines what the transports need from a completion engine
type ICompleter interface {
	// Complete returns the suggested word for prefix, or false when there is none
	Complete(prefix string) (string, bool)

	// Stats returns statistics about the loaded dictionary
	Stats() map[string]int
}

var _ ICompleter = (*Completer)(nil)
