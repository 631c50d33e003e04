// Package suggest is the core, building the lexicon indices and serving exact, root and prefix lookups over them.
package suggest

import "github.com/bastiangx/lexserve/pkg/lexicon"

// Searcher is the read side of a built index, as used by the server and CLI.
type Searcher interface {
	// Get returns the entries whose headword or inflected form equals word
	Get(word string) []lexicon.SearchResult

	// GetByRoot returns the entries sharing a root
	GetByRoot(root []string) []lexicon.WordEntry

	// Suggest returns up to limit entries matching a prefix
	Suggest(prefix string, limit int) []lexicon.SearchResult

	// MatchingForms classifies text against a single entry
	MatchingForms(id, text string) []lexicon.MatchedForm

	// Entry returns a copy of the entry with the given id
	Entry(id string) (lexicon.WordEntry, bool)

	// Stats returns statistics about the loaded index
	Stats() map[string]int
}

var _ Searcher = (*WordIndex)(nil)
