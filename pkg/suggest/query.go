package suggest

import (
	"fmt"

	"github.com/bastiangx/lexserve/internal/utils"
	"github.com/bastiangx/lexserve/pkg/lexicon"
	"github.com/tchap/go-patricia/v2/patricia"
)

// entry returns the stored entry for an id taken from a derived index.
// Every such id is in the master map by construction; a miss is a bug.
func (idx *WordIndex) entry(id string) *lexicon.WordEntry {
	e, ok := idx.data[id]
	if !ok {
		panic(fmt.Sprintf("suggest: id %q is indexed but has no entry", id))
	}
	return e
}

// results decorates each id with the slots matching the normalized query.
func (idx *WordIndex) results(ids []string, normalized string) []lexicon.SearchResult {
	out := make([]lexicon.SearchResult, 0, len(ids))
	for _, id := range ids {
		e := idx.entry(id)
		out = append(out, lexicon.SearchResult{
			Word:          e.Clone(),
			MatchingForms: lexicon.MatchForms(e, normalized),
		})
	}
	return out
}

// Get returns every entry having word as headword or inflected form.
// Homographs come back in id order.
func (idx *WordIndex) Get(word string) []lexicon.SearchResult {
	norm := utils.Normalize(word)
	if norm == "" {
		return []lexicon.SearchResult{}
	}
	item := idx.exact.Get(patricia.Prefix(norm))
	if item == nil {
		return []lexicon.SearchResult{}
	}
	return idx.results(*item.(*idSet), norm)
}

// GetByRoot returns the entries sharing the given ordered root letters.
func (idx *WordIndex) GetByRoot(root []string) []lexicon.WordEntry {
	ids, ok := idx.roots[rootKey(root)]
	if !ok {
		return []lexicon.WordEntry{}
	}
	out := make([]lexicon.WordEntry, 0, len(ids))
	for _, id := range ids {
		out = append(out, idx.entry(id).Clone())
	}
	return out
}

// Suggest completes a prefix against headwords and forms, falling back to
// translations only when no source-language key starts with it.
func (idx *WordIndex) Suggest(prefix string, limit int) []lexicon.SearchResult {
	norm := utils.StripInfinitiveMarker(utils.Normalize(prefix))

	if results := idx.suggestSource(norm, limit); len(results) > 0 {
		return results
	}
	return idx.suggestTranslation(norm, limit)
}

func (idx *WordIndex) suggestSource(norm string, limit int) []lexicon.SearchResult {
	return idx.results(idx.source.Find(norm, limit), norm)
}

func (idx *WordIndex) suggestTranslation(norm string, limit int) []lexicon.SearchResult {
	return idx.results(idx.translations.Find(norm, limit), norm)
}

// MatchingForms classifies text against the entry with the given id.
// Unknown ids yield an empty list.
func (idx *WordIndex) MatchingForms(id, text string) []lexicon.MatchedForm {
	e, ok := idx.data[id]
	if !ok {
		return []lexicon.MatchedForm{}
	}
	return lexicon.MatchForms(e, utils.Normalize(text))
}

// Entry returns a copy of the entry with the given id.
func (idx *WordIndex) Entry(id string) (lexicon.WordEntry, bool) {
	e, ok := idx.data[id]
	if !ok {
		return lexicon.WordEntry{}, false
	}
	return e.Clone(), true
}
