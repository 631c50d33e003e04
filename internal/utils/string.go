package utils

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// InfinitiveMarker is stripped from translation tokens and query prefixes
// so "to write" and "write" land on the same key.
const InfinitiveMarker = "to "

// parenthetical matches the shortest "( ... )" span, non-nested.
var parenthetical = regexp.MustCompile(`\(.*?\)`)

// RemoveParentheticals strips clarifications such as "(something)" from a
// translation.
func RemoveParentheticals(s string) string {
	return parenthetical.ReplaceAllString(s, "")
}

// StripInfinitiveMarker removes every leading "to " from s.
func StripInfinitiveMarker(s string) string {
	for strings.HasPrefix(s, InfinitiveMarker) {
		s = s[len(InfinitiveMarker):]
	}
	return s
}

// IsASCIIPunct reports whether r is one of the ASCII punctuation characters
// (the 32 symbols in !"#$%&'()*+,-./:;<=>?@[\]^_`{|}~).
func IsASCIIPunct(r rune) bool {
	return r < utf8.RuneSelf && unicode.IsPrint(r) &&
		!unicode.IsLetter(r) && !unicode.IsDigit(r) && r != ' '
}

// TranslationTokens splits a free-text translation into the keys it is
// searchable under. "to write (a letter); to record" gives
// ["write", "record"].
func TranslationTokens(translation string) []string {
	clean := RemoveParentheticals(translation)
	parts := strings.FieldsFunc(clean, IsASCIIPunct)

	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		tok := StripInfinitiveMarker(strings.TrimSpace(p))
		if tok == "" {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// IsValidInput checks if a query should be processed at all.
// Empty, whitespace-only and punctuation-only strings are rejected.
func IsValidInput(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// RuneLen returns the number of code points in s. Query length bounds are
// expressed in code points since Hebrew letters are two bytes each.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// FormatWithCommas renders n with thousands separators, e.g. 12345 -> "12,345".
func FormatWithCommas(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
