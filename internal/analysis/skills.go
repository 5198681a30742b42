package analysis

import (
	"strings"
	"unicode"
)

// ExtractSkills scans raw (untokenized) text for vocabulary phrases using
// case-insensitive substring containment and returns the matches title-cased,
// in vocabulary order.
//
// Known precision defect, kept deliberately: substring containment lets short
// phrases match inside unrelated words ("go" inside "good", "r" anywhere).
// Downstream consumers depend on the current matches, so this is reproduced
// rather than fixed.
func ExtractSkills(text string) []string {
	lowered := strings.ToLower(text)

	var found []string
	for _, skill := range skillVocabulary {
		if strings.Contains(lowered, skill) {
			found = append(found, titleCase(skill))
		}
	}
	return found
}

// titleCase uppercases every letter that follows a non-letter and lowercases
// the rest, matching Python's str.title ("ci/cd" -> "Ci/Cd", "c++" -> "C++").
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
