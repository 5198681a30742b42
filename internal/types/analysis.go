// Package types contains the data structures exchanged between the analysis
// pipeline, the HTTP API, and the CLI.
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// AnalysisResult is the structured summary produced for one resume.
// It is built fresh per request and never mutated afterwards.
type AnalysisResult struct {
	WordCount          int          `json:"word_count"`
	MostCommonWords    WordCounts   `json:"most_common_words"`
	Skills             []string     `json:"skills"`
	ExperienceEstimate int          `json:"experience_estimate"`
	ContactInfo        ContactInfo  `json:"contact_info"`
	SkillsMatch        *SkillsMatch `json:"skills_match,omitempty"`
	ExperienceTimeline *Timeline    `json:"experience_timeline"`
}

// ContactInfo holds extracted contact details, capped to the first three
// matches of each kind.
type ContactInfo struct {
	Emails []string `json:"emails"`
	Phones []string `json:"phones"`
}

// SkillsMatch compares resume skills against a job description.
// It is omitted entirely when the job description yields no skills.
type SkillsMatch struct {
	MatchScore          int      `json:"match_score"`
	MatchingSkills      []string `json:"matching_skills"`
	MissingSkills       []string `json:"missing_skills"`
	MatchingSkillsCount int      `json:"matching_skills_count"`
	MissingSkillsCount  int      `json:"missing_skills_count"`
	TotalJobSkills      int      `json:"total_job_skills"`
}

// Timeline is the reconstructed employment history. Jobs are ordered
// ascending by parsed start date.
type Timeline struct {
	Jobs                 []JobEntry `json:"jobs"`
	TotalExperienceYears float64    `json:"total_experience_years"`
	EmploymentGapsCount  int        `json:"employment_gaps_count"`
	LongestGapMonths     int        `json:"longest_gap_months"`
}

// JobEntry is a single recovered job. Start and end dates are kept verbatim
// as they appeared in the text; GapBeforeMonths is zero for the first job and
// for gaps of three months or less.
type JobEntry struct {
	Title           string `json:"title"`
	Company         string `json:"company"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	GapBeforeMonths int    `json:"gap_before_months"`
}

// WordCount is one token with its occurrence count.
type WordCount struct {
	Word  string
	Count int
}

// WordCounts preserves the ranking order of the frequency analysis while
// still marshaling to a plain JSON object (word -> count), which is the wire
// shape API consumers expect.
type WordCounts []WordCount

// MarshalJSON writes the counts as a JSON object in slice order.
func (wc WordCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range wc {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Word)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", entry.Count)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object back into slice order. json.Unmarshal
// into a map would lose the ranking, so the token stream is walked directly.
func (wc *WordCounts) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("word counts: expected JSON object, got %v", tok)
	}

	out := WordCounts{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("word counts: expected string key, got %v", keyTok)
		}
		var count int
		if err := dec.Decode(&count); err != nil {
			return fmt.Errorf("word counts: invalid count for %q: %w", key, err)
		}
		out = append(out, WordCount{Word: key, Count: count})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*wc = out
	return nil
}
