// Package analysis implements the resume text-analysis pipeline: tokenization
// and stopword filtering, word-frequency statistics, skill-keyword matching,
// contact-info extraction, and job-description match scoring. Every function
// is a pure computation over its inputs, so the package is safe to call from
// concurrent requests without coordination.
package analysis

import "strings"

// asciiPunctuation mirrors Python's string.punctuation, the set the original
// analyzer strips before tokenizing.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Tokenize lowercases the text, deletes punctuation characters, splits on
// whitespace, and drops English stopwords. Order is preserved and duplicates
// are retained. Empty input yields an empty slice.
func Tokenize(text string) []string {
	lowered := strings.ToLower(text)

	stripped := strings.Map(func(r rune) rune {
		if strings.ContainsRune(asciiPunctuation, r) {
			return -1
		}
		return r
	}, lowered)

	fields := strings.Fields(stripped)
	tokens := make([]string, 0, len(fields))
	for _, tok := range fields {
		if _, stop := englishStopwords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
