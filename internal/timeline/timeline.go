package timeline

import (
	"math"
	"sort"
	"time"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// maxBridgeableGapMonths is the longest idle stretch that still counts as
// continuous employment. Anything longer is reported as a gap.
const maxBridgeableGapMonths = 3

// daysPerMonth converts day spans to whole months by integer division.
const daysPerMonth = 30

// parsedJob pairs a raw entry with its resolved calendar dates.
type parsedJob struct {
	raw   entry
	start time.Time
	end   time.Time
}

// Reconstruct recovers an employment timeline from resume text. The clock is
// injected so that "present"/"current"/"now" end dates resolve
// deterministically. Returns nil when no job entry survives date parsing.
func Reconstruct(text string, now time.Time) *types.Timeline {
	section := isolateSection(text)

	var jobs []parsedJob
	for _, e := range extractEntries(section) {
		start, ok := parseDate(e.Start, now)
		if !ok {
			continue
		}
		end, ok := parseDate(e.End, now)
		if !ok {
			continue
		}
		jobs = append(jobs, parsedJob{raw: e, start: start, end: end})
	}
	if len(jobs) == 0 {
		return nil
	}

	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].start.Before(jobs[j].start)
	})

	var (
		entries     = make([]types.JobEntry, 0, len(jobs))
		totalMonths int
		gapsCount   int
		longestGap  int
	)
	for i, job := range jobs {
		gapMonths := 0
		if i > 0 {
			gap := wholeMonths(jobs[i-1].end, job.start)
			if gap > maxBridgeableGapMonths {
				gapMonths = gap
				gapsCount++
				if gap > longestGap {
					longestGap = gap
				}
			}
		}

		totalMonths += wholeMonths(job.start, job.end)

		entries = append(entries, types.JobEntry{
			Title:           job.raw.Title,
			Company:         job.raw.Company,
			StartDate:       job.raw.Start,
			EndDate:         job.raw.End,
			GapBeforeMonths: gapMonths,
		})
	}

	return &types.Timeline{
		Jobs:                 entries,
		TotalExperienceYears: roundToTenth(float64(totalMonths) / 12),
		EmploymentGapsCount:  gapsCount,
		LongestGapMonths:     longestGap,
	}
}

// wholeMonths returns the number of 30-day months between two dates, floored
// at zero. Misparsed entries can put the end before the start; those spans
// count as zero rather than going negative.
func wholeMonths(from, to time.Time) int {
	days := int(to.Sub(from).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return days / daysPerMonth
}

func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
