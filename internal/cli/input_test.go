package cli

import (
	"strings"
	"testing"

	"github.com/bastiangx/lexserve/pkg/lexicon"
	"github.com/bastiangx/lexserve/pkg/suggest"
	"github.com/charmbracelet/log"
)

func init() {
	log.SetLevel(log.FatalLevel)
}

func newHandler(t *testing.T, input string) *InputHandler {
	t.Helper()
	idx, err := suggest.Build([]lexicon.WordEntry{
		{
			ID:             "1",
			Word:           "לכתוב",
			WordNormalized: "לכתוב",
			Translation:    "to write",
			Root:           []string{"כ", "ת", "ב"},
			Forms: []lexicon.InflectedForm{
				{Form: "כתב", FormNormalized: "כתב"},
				{Form: "כתבה", FormNormalized: "כתבה"},
			},
		},
		{
			ID:             "2",
			Word:           "להכתיב",
			WordNormalized: "להכתיב",
			Translation:    "to dictate",
			Root:           []string{"כ", "ת", "ב"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return NewInputHandler(idx, strings.NewReader(input), 20, 10)
}

func TestHandleInput(t *testing.T) {
	h := newHandler(t, "")

	tests := []struct {
		line string
		want int
	}{
		{"כתב", 1},
		{"אין", 0},
		{"?לה", 1},
		{"?dict", 1},
		{"?!!", 0},
		{"@כ-ת-ב", 2},
		{"@ש-מ-ר", 0},
		{"#1 כתבה", 1},
		{"#1", 0},
		{"#9 כתב", 0},
		{":stats", 0},
		{strings.Repeat("א", 21), 0},
	}

	for _, tc := range tests {
		if got := h.handleInput(tc.line); got != tc.want {
			t.Errorf("handleInput(%q) = %d, want %d", tc.line, got, tc.want)
		}
	}
	if h.requestCount != len(tests) {
		t.Errorf("requestCount = %d, want %d", h.requestCount, len(tests))
	}
}

func TestStartReadsUntilEOF(t *testing.T) {
	h := newHandler(t, "כתב\n\n?לכ\n@כתב")

	if err := h.Start(); err != nil {
		t.Fatalf("Start returned %v", err)
	}
	if h.requestCount != 3 {
		t.Errorf("requestCount = %d, want 3", h.requestCount)
	}
}
