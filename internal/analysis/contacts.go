package analysis

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// maxContactMatches limits each contact list to the first three hits.
const maxContactMatches = 3

var (
	// emailPattern is a pragmatic local@domain.tld matcher, not an RFC 5322
	// validator. False positives and negatives are acceptable.
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// phonePattern tolerates an optional country code, optional parentheses,
	// and -/./space separators. The four digit groups are concatenated to
	// form the reported number.
	phonePattern = regexp.MustCompile(`(?:\+?(\d{1,3}))?[-.\s]?\(?(\d{3})\)?[-.\s]?(\d{3})[-.\s]?(\d{4})`)
)

// ExtractContactInfo pulls emails and phone numbers out of raw text.
// Missing contacts are reported as empty lists, never nil.
func ExtractContactInfo(text string) types.ContactInfo {
	info := types.ContactInfo{
		Emails: []string{},
		Phones: []string{},
	}

	for _, email := range emailPattern.FindAllString(text, maxContactMatches) {
		info.Emails = append(info.Emails, email)
	}

	for _, groups := range phonePattern.FindAllStringSubmatch(text, maxContactMatches) {
		info.Phones = append(info.Phones, strings.Join(groups[1:], ""))
	}

	return info
}
