package analysis

import (
	"math"
	"time"

	"github.com/jonathan/resume-analyzer/internal/timeline"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Analyze runs the full pipeline over resume text and composes the result:
// word frequencies, skills, a rough experience estimate, contact info, the
// reconstructed employment timeline, and (when a job description is given
// and yields skills) a skills-match report.
//
// It never fails. Garbage input, including an extractor's error message
// passed through as text, degrades output quality but still produces a
// result. The clock is injected so "present" end dates resolve
// deterministically in tests.
func Analyze(text, jobDescription string, now time.Time) *types.AnalysisResult {
	tokens := Tokenize(text)
	skills := ExtractSkills(text)
	if skills == nil {
		skills = []string{}
	}

	result := &types.AnalysisResult{
		WordCount:          len(tokens),
		MostCommonWords:    WordFrequencies(tokens),
		Skills:             skills,
		ExperienceEstimate: estimateExperience(len(tokens)),
		ContactInfo:        ExtractContactInfo(text),
		ExperienceTimeline: timeline.Reconstruct(text, now),
	}

	result.SkillsMatch = MatchSkills(skills, jobDescription)
	return result
}

// estimateExperience maps token count to a 0-10 scale, roughly one point per
// hundred meaningful words.
func estimateExperience(wordCount int) int {
	estimate := int(math.Round(float64(wordCount) / 100))
	return min(estimate, 10)
}
