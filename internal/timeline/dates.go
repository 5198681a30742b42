package timeline

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// monthNames maps lowercase month spellings, including common abbreviations,
// to calendar months.
var monthNames = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

var (
	numericDate = regexp.MustCompile(`^(\d{1,2})/(\d{4})$`)
	monthDate   = regexp.MustCompile(`^([a-z]+)\.?,?\s+(\d{4})$`)
	yearDate    = regexp.MustCompile(`^(\d{4})$`)
)

// parseDate turns a raw date string into the first day of the month it
// denotes. "present", "current", and "now" resolve to the injected clock.
// The second return value is false when the string is unparseable; callers
// drop the whole job entry in that case.
func parseDate(raw string, now time.Time) (time.Time, bool) {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	cleaned = strings.Trim(cleaned, ".,;:()")
	cleaned = strings.Join(strings.Fields(cleaned), " ")

	switch cleaned {
	case "present", "current", "now":
		return now, true
	}

	if m := numericDate.FindStringSubmatch(cleaned); m != nil {
		month, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[2])
		if month < 1 || month > 12 {
			return time.Time{}, false
		}
		return monthStart(year, time.Month(month)), true
	}

	if m := monthDate.FindStringSubmatch(cleaned); m != nil {
		month, ok := monthNames[m[1]]
		if !ok {
			return time.Time{}, false
		}
		year, _ := strconv.Atoi(m[2])
		return monthStart(year, month), true
	}

	if m := yearDate.FindStringSubmatch(cleaned); m != nil {
		year, _ := strconv.Atoi(m[1])
		return monthStart(year, time.January), true
	}

	return time.Time{}, false
}

func monthStart(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}
