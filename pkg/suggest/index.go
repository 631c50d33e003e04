package suggest

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/bastiangx/lexserve/internal/utils"
	"github.com/bastiangx/lexserve/pkg/lexicon"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// rootSep joins root letters into a map key. It never occurs inside a letter.
const rootSep = "\x1f"

// idSet is a sorted, duplicate free list of entry ids.
type idSet []string

func (s *idSet) add(id string) {
	i, found := slices.BinarySearch(*s, id)
	if !found {
		*s = slices.Insert(*s, i, id)
	}
}

// DuplicateIDError is returned by Build in strict mode when two input
// entries share an identifier.
type DuplicateIDError struct {
	IDs []string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate entry ids in input: %s", strings.Join(e.IDs, ", "))
}

// Option configures Build.
type Option func(*buildOptions)

type buildOptions struct {
	strictIDs bool
}

// WithStrictIDs makes Build reject inputs that repeat an identifier instead
// of keeping the last entry.
func WithStrictIDs(strict bool) Option {
	return func(o *buildOptions) {
		o.strictIDs = strict
	}
}

// WordIndex serves exact, root, and prefix lookups over a verb lexicon.
// Every structure is filled by Build and never written again, so a
// *WordIndex is safe for concurrent use.
type WordIndex struct {
	data         map[string]*lexicon.WordEntry
	exact        *patricia.Trie
	roots        map[string]idSet
	source       *PrefixTrie
	translations *PrefixTrie

	surfaces   int
	duplicates int
}

// Build creates an index from a complete record set.
// Repeated ids keep the last entry and are logged, unless WithStrictIDs is
// set, in which case a *DuplicateIDError is returned.
func Build(entries []lexicon.WordEntry, opts ...Option) (*WordIndex, error) {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	idx := &WordIndex{
		data:         make(map[string]*lexicon.WordEntry, len(entries)),
		exact:        patricia.NewTrie(),
		roots:        make(map[string]idSet),
		source:       NewPrefixTrie(),
		translations: NewPrefixTrie(),
	}

	// order keeps first-appearance order of ids for the derived indices.
	order := make([]string, 0, len(entries))
	var dups []string
	for i := range entries {
		entry := canonical(entries[i])
		if _, exists := idx.data[entry.ID]; exists {
			dups = append(dups, entry.ID)
			log.Warnf("Duplicate entry id %q: keeping the later entry (%s)", entry.ID, entry.Word)
		} else {
			order = append(order, entry.ID)
		}
		idx.data[entry.ID] = &entry
	}
	if len(dups) > 0 && o.strictIDs {
		return nil, &DuplicateIDError{IDs: dups}
	}
	idx.duplicates = len(dups)

	for _, id := range order {
		entry := idx.data[id]
		idx.addRoot(entry)
		idx.addSurfaces(entry)
		idx.addTranslations(entry)
	}
	idx.fillSourceTrie()

	log.Debugf("Index built in %v: entries=%d surfaces=%d roots=%d translations=%d duplicates=%d",
		time.Since(start), len(idx.data), idx.surfaces, len(idx.roots), idx.translations.Len(), idx.duplicates)
	return idx, nil
}

// canonical copies e and re-applies the normalizer to its normalized
// fields, so stored keys and query keys share one space.
func canonical(e lexicon.WordEntry) lexicon.WordEntry {
	c := e.Clone()
	c.WordNormalized = utils.Normalize(c.WordNormalized)
	for i := range c.Forms {
		c.Forms[i].FormNormalized = utils.Normalize(c.Forms[i].FormNormalized)
	}
	for i := range c.Passive {
		c.Passive[i].FormNormalized = utils.Normalize(c.Passive[i].FormNormalized)
	}
	return c
}

func rootKey(root []string) string {
	return strings.Join(root, rootSep)
}

func (idx *WordIndex) addRoot(entry *lexicon.WordEntry) {
	key := rootKey(entry.Root)
	ids := idx.roots[key]
	ids.add(entry.ID)
	idx.roots[key] = ids
}

// addSurfaces registers the headword and every active and passive surface.
func (idx *WordIndex) addSurfaces(entry *lexicon.WordEntry) {
	idx.addSurface(entry.WordNormalized, entry.ID)
	for _, f := range entry.Forms {
		idx.addSurface(f.FormNormalized, entry.ID)
	}
	for _, f := range entry.Passive {
		idx.addSurface(f.FormNormalized, entry.ID)
	}
}

func (idx *WordIndex) addSurface(key, id string) {
	if key == "" {
		return
	}
	p := patricia.Prefix(key)
	if item := idx.exact.Get(p); item != nil {
		item.(*idSet).add(id)
		return
	}
	idx.exact.Insert(p, &idSet{id})
	idx.surfaces++
}

func (idx *WordIndex) addTranslations(entry *lexicon.WordEntry) {
	for _, tok := range utils.TranslationTokens(entry.Translation) {
		tok = utils.Normalize(tok)
		if tok == "" {
			continue
		}
		idx.translations.Insert(tok, entry.ID)
	}
}

// fillSourceTrie copies every (surface, id) pair of the exact index into
// the source-language prefix trie.
func (idx *WordIndex) fillSourceTrie() {
	err := idx.exact.Visit(func(p patricia.Prefix, item patricia.Item) error {
		key := string(p)
		for _, id := range *item.(*idSet) {
			idx.source.Insert(key, id)
		}
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting surface index: %v", err)
	}
}

// Len returns the number of entries.
func (idx *WordIndex) Len() int {
	return len(idx.data)
}

// Stats returns counters about the built index.
func (idx *WordIndex) Stats() map[string]int {
	return map[string]int{
		"entries":          len(idx.data),
		"surfaces":         idx.surfaces,
		"roots":            len(idx.roots),
		"sourceKeys":       idx.source.Len(),
		"sourceNodes":      idx.source.Size(),
		"translationKeys":  idx.translations.Len(),
		"translationNodes": idx.translations.Size(),
		"duplicateIds":     idx.duplicates,
	}
}
