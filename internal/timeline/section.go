// Package timeline reconstructs a best-effort employment history from
// free-form resume text: it isolates the experience section, tries a series
// of regex extraction strategies, parses the free-text dates it finds, and
// computes total tenure and employment gaps. It is explicitly a heuristic,
// not a validated parser; entries it cannot date are dropped silently.
package timeline

import "regexp"

// experienceSection finds a labeled experience block and captures everything
// up to the next common section header or end of text. Longer labels come
// first so "employment" does not shadow "employment history".
var experienceSection = regexp.MustCompile(
	`(?is)(?:work experience|employment history|professional experience|work history|employment)` +
		`(.*?)` +
		`(?:education|skills|projects|certifications|awards|references|$)`)

// isolateSection returns the labeled experience block, or the whole document
// when no label is present.
func isolateSection(text string) string {
	if m := experienceSection.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return text
}
