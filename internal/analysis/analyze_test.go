package analysis

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var frozenNow = time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)

func TestAnalyze_FullResult(t *testing.T) {
	text := "I have 5 years experience in Python and Java. Contact me at jane@example.com."

	result := Analyze(text, "", frozenNow)

	require.NotNil(t, result)
	assert.Equal(t, 7, result.WordCount)
	assert.Equal(t, []string{"Python", "Java"}, result.Skills)
	assert.Equal(t, []string{"jane@example.com"}, result.ContactInfo.Emails)
	assert.Empty(t, result.ContactInfo.Phones)
	assert.Equal(t, 0, result.ExperienceEstimate)
	assert.Nil(t, result.SkillsMatch)
	assert.Nil(t, result.ExperienceTimeline)
}

func TestAnalyze_WordCountMatchesTokenCount(t *testing.T) {
	text := "Engineering leadership across distributed systems and cloud platforms."
	result := Analyze(text, "", frozenNow)
	assert.Equal(t, len(Tokenize(text)), result.WordCount)
}

func TestAnalyze_EmptyText(t *testing.T) {
	result := Analyze("", "", frozenNow)

	require.NotNil(t, result)
	assert.Equal(t, 0, result.WordCount)
	assert.Empty(t, result.MostCommonWords)
	assert.NotNil(t, result.Skills)
	assert.Empty(t, result.Skills)
	assert.Equal(t, 0, result.ExperienceEstimate)
	assert.Nil(t, result.ExperienceTimeline)
}

func TestAnalyze_WithJobDescription(t *testing.T) {
	result := Analyze("Python developer", "Looking for Python and Docker", frozenNow)

	require.NotNil(t, result.SkillsMatch)
	assert.Equal(t, 50, result.SkillsMatch.MatchScore)
	assert.Equal(t, []string{"Python"}, result.SkillsMatch.MatchingSkills)
	assert.Equal(t, []string{"Docker"}, result.SkillsMatch.MissingSkills)
}

func TestAnalyze_TimelineResolvesPresentWithInjectedClock(t *testing.T) {
	text := "Work Experience\n" +
		"Software Engineer at Initech (Jun 2018 - Present)\n"

	result := Analyze(text, "", frozenNow)

	require.NotNil(t, result.ExperienceTimeline)
	require.Len(t, result.ExperienceTimeline.Jobs, 1)
	// Jun 2018 through the frozen 2021-01-01 clock is 31 whole months.
	assert.InDelta(t, 2.6, result.ExperienceTimeline.TotalExperienceYears, 0.001)
}

func TestEstimateExperience_Scale(t *testing.T) {
	cases := []struct {
		words int
		want  int
	}{
		{0, 0},
		{49, 0},
		{50, 1},
		{250, 3},
		{1000, 10},
		{5000, 10},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, estimateExperience(tc.words), "words=%d", tc.words)
	}
}

func TestAnalyze_NeverReturnsNilSlices(t *testing.T) {
	result := Analyze(strings.Repeat("the ", 50), "", frozenNow)

	assert.NotNil(t, result.Skills)
	assert.NotNil(t, result.ContactInfo.Emails)
	assert.NotNil(t, result.ContactInfo.Phones)
}
