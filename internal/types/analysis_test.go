package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordCounts_MarshalPreservesOrder(t *testing.T) {
	wc := WordCounts{
		{Word: "python", Count: 5},
		{Word: "engineer", Count: 3},
		{Word: "api", Count: 1},
	}

	data, err := json.Marshal(wc)

	require.NoError(t, err)
	assert.Equal(t, `{"python":5,"engineer":3,"api":1}`, string(data))
}

func TestWordCounts_MarshalEmpty(t *testing.T) {
	data, err := json.Marshal(WordCounts{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestWordCounts_MarshalEscapesKeys(t *testing.T) {
	data, err := json.Marshal(WordCounts{{Word: `he"llo`, Count: 1}})
	require.NoError(t, err)
	assert.Equal(t, `{"he\"llo":1}`, string(data))
}

func TestWordCounts_RoundTrip(t *testing.T) {
	original := WordCounts{
		{Word: "zeta", Count: 9},
		{Word: "alpha", Count: 9},
		{Word: "mid", Count: 2},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded WordCounts
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestWordCounts_UnmarshalRejectsNonObject(t *testing.T) {
	var wc WordCounts
	assert.Error(t, json.Unmarshal([]byte(`["python"]`), &wc))
	assert.Error(t, json.Unmarshal([]byte(`{"python":"five"}`), &wc))
}

func TestAnalysisResult_SkillsMatchOmittedWhenNil(t *testing.T) {
	result := AnalysisResult{
		Skills:          []string{},
		MostCommonWords: WordCounts{},
		ContactInfo:     ContactInfo{Emails: []string{}, Phones: []string{}},
	}

	data, err := json.Marshal(result)

	require.NoError(t, err)
	assert.NotContains(t, string(data), "skills_match")
	// The timeline key stays present as an explicit null.
	assert.Contains(t, string(data), `"experience_timeline":null`)
}

func TestAnalysisResult_WireShape(t *testing.T) {
	result := AnalysisResult{
		WordCount:          7,
		MostCommonWords:    WordCounts{{Word: "python", Count: 2}},
		Skills:             []string{"Python"},
		ExperienceEstimate: 1,
		ContactInfo:        ContactInfo{Emails: []string{"jane@example.com"}, Phones: []string{}},
		SkillsMatch: &SkillsMatch{
			MatchScore:          50,
			MatchingSkills:      []string{"Python"},
			MissingSkills:       []string{"Docker"},
			MatchingSkillsCount: 1,
			MissingSkillsCount:  1,
			TotalJobSkills:      2,
		},
		ExperienceTimeline: &Timeline{
			Jobs: []JobEntry{{
				Title:     "Engineer",
				Company:   "Acme",
				StartDate: "Jan 2015",
				EndDate:   "Present",
			}},
			TotalExperienceYears: 6.0,
		},
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	for _, key := range []string{
		"word_count", "most_common_words", "skills", "experience_estimate",
		"contact_info", "skills_match", "experience_timeline",
	} {
		assert.Contains(t, decoded, key)
	}

	timeline := decoded["experience_timeline"].(map[string]any)
	assert.Contains(t, timeline, "total_experience_years")
	assert.Contains(t, timeline, "employment_gaps_count")
	assert.Contains(t, timeline, "longest_gap_months")
}
