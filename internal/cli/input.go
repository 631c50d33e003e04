// Package cli handles cmd line lookups for DBG and testing the index
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bastiangx/lexserve/internal/utils"
	"github.com/bastiangx/lexserve/pkg/lexicon"
	"github.com/bastiangx/lexserve/pkg/suggest"
	"github.com/charmbracelet/log"
)

// InputHandler reads lookups line by line and prints what the index finds.
//
// A plain line is an exact lookup. Prefixes select the other queries:
//
//	?prefix     suggestions for a prefix
//	@root       entries sharing a root, e.g. @כ-ת-ב
//	#id form    forms of entry id matching form
//	:stats      index counters
type InputHandler struct {
	searcher     suggest.Searcher
	input        io.Reader
	maxLength    int
	suggestLimit int
	requestCount int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(searcher suggest.Searcher, input io.Reader, maxLength, limit int) *InputHandler {
	return &InputHandler{
		searcher:     searcher,
		input:        input,
		maxLength:    maxLength,
		suggestLimit: limit,
	}
}

// Start begins the interface loop.
// It reads a line, trims it and passes it to handleInput.
// Loop terminates when the input ends.
func (h *InputHandler) Start() error {
	log.Print("LexServe CLI [BETA]")
	log.Print("type a verb form, ?prefix, @root or #id form and press Enter (Ctrl+C to exit):")
	reader := bufio.NewReader(h.input)

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line != "" {
			h.handleInput(line)
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// handleInput dispatches a single line and returns the number of hits.
func (h *InputHandler) handleInput(line string) int {
	h.requestCount++

	if utils.RuneLen(line) > h.maxLength {
		log.Errorf("Input too long: %s", line)
		return 0
	}

	start := time.Now()
	var count int
	switch {
	case line == ":stats":
		h.printStats()
		return 0
	case strings.HasPrefix(line, "?"):
		prefix := strings.TrimSpace(line[1:])
		if !utils.IsValidInput(prefix) {
			log.Errorf("Invalid prefix: '%s'", prefix)
			return 0
		}
		count = h.printResults(prefix, h.searcher.Suggest(prefix, h.suggestLimit))
	case strings.HasPrefix(line, "@"):
		root := lexicon.ParseRoot(strings.TrimSpace(line[1:]))
		count = h.printEntries(root, h.searcher.GetByRoot(root))
	case strings.HasPrefix(line, "#"):
		id, text, ok := strings.Cut(strings.TrimSpace(line[1:]), " ")
		if !ok {
			log.Error("Usage: #id form")
			return 0
		}
		count = h.printForms(id, strings.TrimSpace(text))
	default:
		if !utils.IsValidInput(line) {
			log.Errorf("Invalid word: '%s'", line)
			return 0
		}
		count = h.printResults(line, h.searcher.Get(line))
	}
	log.Debugf("Took [ %v ] for '%s'", time.Since(start), line)
	return count
}

func (h *InputHandler) printResults(query string, results []lexicon.SearchResult) int {
	if len(results) == 0 {
		log.Warnf("Nothing found for '%s'", query)
		return 0
	}
	log.Printf("Found %d entries for '%s':", len(results), query)
	for i, r := range results {
		log.Printf("%2d. %s", i+1, formatEntry(r.Word))
		for _, m := range r.MatchingForms {
			if f, ok := r.Word.FormAt(m); ok {
				log.Printf("      %-10s %s", m.Kind, formatForm(f))
			}
		}
	}
	return len(results)
}

func (h *InputHandler) printEntries(root []string, entries []lexicon.WordEntry) int {
	if len(entries) == 0 {
		log.Warnf("Nothing found for root '%s'", lexicon.FormatRoot(root))
		return 0
	}
	log.Printf("Found %d entries for root '%s':", len(entries), lexicon.FormatRoot(root))
	for i, e := range entries {
		log.Printf("%2d. %s", i+1, formatEntry(e))
	}
	return len(entries)
}

func (h *InputHandler) printForms(id, text string) int {
	entry, ok := h.searcher.Entry(id)
	if !ok {
		log.Warnf("No entry with id '%s'", id)
		return 0
	}
	matches := h.searcher.MatchingForms(id, text)
	if len(matches) == 0 {
		log.Warnf("No form of '%s' matches '%s'", entry.Word, text)
		return 0
	}
	for _, m := range matches {
		if f, ok := entry.FormAt(m); ok {
			log.Printf("%-10s #%-3d %s", m.Kind, m.Index, formatForm(f))
		}
	}
	return len(matches)
}

func (h *InputHandler) printStats() {
	stats := h.searcher.Stats()
	for _, key := range []string{"entries", "surfaces", "roots", "sourceKeys", "translationKeys", "duplicateIds"} {
		log.Printf("%-16s %s", key, utils.FormatWithCommas(stats[key]))
	}
}

func formatEntry(e lexicon.WordEntry) string {
	word := fmt.Sprintf("\033[38;5;75m%s\033[0m", e.Word)
	return fmt.Sprintf("%s [%s] %s (%s, %s) id=%s", word, e.Transcription, e.Translation, e.Binyan, lexicon.FormatRoot(e.Root), e.ID)
}

func formatForm(f lexicon.InflectedForm) string {
	return fmt.Sprintf("%s [%s] %s %s %s %s", f.Form, f.Transcription, f.Tense, f.Person, f.Number, f.Gender)
}
