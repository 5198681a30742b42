package timeline

import (
	"regexp"
	"strings"
)

// entry is a raw job tuple as found in the text, before date parsing.
type entry struct {
	Title   string
	Company string
	Start   string
	End     string
}

// dateToken matches the approximate date shapes that appear in resumes:
// a bare 4-digit year, MM/YYYY, or a month name (possibly abbreviated)
// followed by a year.
const dateToken = `(?:\d{1,2}/\d{4}` +
	`|(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|` +
	`jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?,?\s+\d{4}` +
	`|\d{4})`

var (
	// labeledEntry matches explicitly labeled lines such as
	// "Position: Software Engineer at Acme, Dates: June 2018 to May 2020".
	labeledEntry = regexp.MustCompile(
		`(?im)^\s*(?:position|title|job|role)\s*:\s*(.+?)\s+(?:at|@|-)\s+(.+?)\s*[,;|]?\s*` +
			`(?:dates?|duration|period)\s*:\s*(.+?)\s*(?:\bto\b|[-–—])\s*(.+?)\s*$`)

	// freeTextEntry matches prose like
	// "Software Engineer at Acme, June 2018 - Present" anywhere in the block.
	freeTextEntry = regexp.MustCompile(
		`(?i)([^\n(,]{2,60}?)\s+(?:at|@)\s+([^\n(]{2,60}?)[\s,(]+` +
			`(` + dateToken + `)\s*(?:\bto\b|\buntil\b|\bthrough\b|[-–—])\s*` +
			`(` + dateToken + `|present|current|now)\)?`)

	// lineEntry matches "Title at Company (dates)" on a single line; the
	// parenthesized dates are split afterwards.
	lineEntry = regexp.MustCompile(`(?i)^(.{2,80}?)\s+(?:at|@)\s+(.{2,80}?)\s*\((.+?)\)\s*$`)

	// dateRangeSplit separates a raw date range on a dash-like separator or
	// the word "to"/"until".
	dateRangeSplit = regexp.MustCompile(`\s*(?:[-–—]|\bto\b|\buntil\b)\s*`)
)

// extractEntries runs the extraction strategies in order and returns the
// first non-empty result set. Each strategy is an independent pure function.
func extractEntries(section string) []entry {
	for _, strategy := range []func(string) []entry{
		extractLabeled,
		extractFreeText,
		extractLines,
	} {
		if found := strategy(section); len(found) > 0 {
			return found
		}
	}
	return nil
}

func extractLabeled(section string) []entry {
	var out []entry
	for _, m := range labeledEntry.FindAllStringSubmatch(section, -1) {
		out = append(out, entry{
			Title:   strings.TrimSpace(m[1]),
			Company: strings.TrimSpace(m[2]),
			Start:   strings.TrimSpace(m[3]),
			End:     strings.TrimSpace(m[4]),
		})
	}
	return out
}

func extractFreeText(section string) []entry {
	var out []entry
	for _, m := range freeTextEntry.FindAllStringSubmatch(section, -1) {
		out = append(out, entry{
			Title:   strings.TrimSpace(m[1]),
			Company: strings.TrimSpace(strings.Trim(m[2], " ,")),
			Start:   strings.TrimSpace(m[3]),
			End:     strings.TrimSpace(m[4]),
		})
	}
	return out
}

func extractLines(section string) []entry {
	var out []entry
	for _, line := range strings.Split(section, "\n") {
		m := lineEntry.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		parts := dateRangeSplit.Split(m[3], 2)
		if len(parts) != 2 {
			continue
		}
		out = append(out, entry{
			Title:   strings.TrimSpace(m[1]),
			Company: strings.TrimSpace(m[2]),
			Start:   strings.TrimSpace(parts[0]),
			End:     strings.TrimSpace(parts[1]),
		})
	}
	return out
}
