package lexicon

import (
	"strings"
)

// rootSeparators are accepted between letters in host input: "כ-ת-ב", "כ.ת.ב", "כ ת ב".
const rootSeparators = "-. "

// isGeresh reports whether r marks the letter before it, as in "ג'" or "צ׳".
func isGeresh(r rune) bool {
	return r == '\'' || r == '׳'
}

// ParseRoot splits a root written by a user into its ordered letters.
// Separated input is split on the separators; a bare run such as "כתב" is
// split per code point. A geresh stays attached to the preceding letter.
func ParseRoot(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if strings.ContainsAny(s, rootSeparators) {
		return strings.FieldsFunc(s, func(r rune) bool {
			return strings.ContainsRune(rootSeparators, r)
		})
	}
	letters := make([]string, 0, len(s)/2)
	for _, r := range s {
		if isGeresh(r) && len(letters) > 0 {
			letters[len(letters)-1] += string(r)
			continue
		}
		letters = append(letters, string(r))
	}
	return letters
}

// FormatRoot renders a root as "כ-ת-ב".
func FormatRoot(root []string) string {
	return strings.Join(root, "-")
}
