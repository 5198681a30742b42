package analysis

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// MatchSkills compares the resume's skill set against the skills extractable
// from a job description. It returns nil when the job description is blank or
// yields no skills ("no match computed" rather than a zero score).
//
// The score is integer truncation of 100 * matching / total, so
// matching + missing == total always holds.
func MatchSkills(resumeSkills []string, jobDescription string) *types.SkillsMatch {
	if strings.TrimSpace(jobDescription) == "" {
		return nil
	}

	jobSkills := ExtractSkills(jobDescription)
	if len(jobSkills) == 0 {
		return nil
	}

	resumeSet := make(map[string]struct{}, len(resumeSkills))
	for _, s := range resumeSkills {
		resumeSet[s] = struct{}{}
	}

	matching := []string{}
	missing := []string{}
	for _, s := range jobSkills {
		if _, ok := resumeSet[s]; ok {
			matching = append(matching, s)
		} else {
			missing = append(missing, s)
		}
	}
	sort.Strings(matching)
	sort.Strings(missing)

	return &types.SkillsMatch{
		MatchScore:          (len(matching) * 100) / len(jobSkills),
		MatchingSkills:      matching,
		MissingSkills:       missing,
		MatchingSkillsCount: len(matching),
		MissingSkillsCount:  len(missing),
		TotalJobSkills:      len(jobSkills),
	}
}
