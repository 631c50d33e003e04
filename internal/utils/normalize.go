package utils

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks drops every combining mark (category M). Hebrew niqqud and
// cantillation marks are all Mn.
var stripMarks = runes.Remove(runes.In(unicode.M))

// Normalize decomposes s to NFD and removes combining marks, so vowel-pointed
// and bare spellings share one consonantal form.
// Normalize(Normalize(s)) == Normalize(s) for every s.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	// Chains carry buffers, one per call.
	result, _, _ := transform.String(transform.Chain(norm.NFD, stripMarks), s)
	return result
}
