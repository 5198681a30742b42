package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchSkills_ComputesScoreAndSets(t *testing.T) {
	match := MatchSkills([]string{"Python", "Java"}, "Looking for Python, SQL, Docker")

	require.NotNil(t, match)
	assert.Equal(t, 33, match.MatchScore)
	assert.Equal(t, []string{"Python"}, match.MatchingSkills)
	assert.Equal(t, []string{"Docker", "Sql"}, match.MissingSkills)
	assert.Equal(t, 1, match.MatchingSkillsCount)
	assert.Equal(t, 2, match.MissingSkillsCount)
	assert.Equal(t, 3, match.TotalJobSkills)
}

func TestMatchSkills_ScoreTruncatesNotRounds(t *testing.T) {
	// 2 of 3 would be 66.67; integer division gives 66.
	match := MatchSkills([]string{"Python", "Docker"}, "Need Python, SQL, Docker")

	require.NotNil(t, match)
	assert.Equal(t, 66, match.MatchScore)
}

func TestMatchSkills_FullMatch(t *testing.T) {
	match := MatchSkills([]string{"Python", "Docker", "Sql"}, "Python, SQL and Docker required")

	require.NotNil(t, match)
	assert.Equal(t, 100, match.MatchScore)
	assert.Empty(t, match.MissingSkills)
	assert.Equal(t, match.TotalJobSkills, match.MatchingSkillsCount)
}

func TestMatchSkills_CountsAlwaysSumToTotal(t *testing.T) {
	match := MatchSkills([]string{"Java"}, "Python, Kubernetes, Terraform, Leadership")

	require.NotNil(t, match)
	assert.Equal(t, match.TotalJobSkills, match.MatchingSkillsCount+match.MissingSkillsCount)
}

func TestMatchSkills_BlankJobDescription(t *testing.T) {
	assert.Nil(t, MatchSkills([]string{"Python"}, ""))
	assert.Nil(t, MatchSkills([]string{"Python"}, "   \n\t "))
}

func TestMatchSkills_JobDescriptionWithoutSkills(t *testing.T) {
	assert.Nil(t, MatchSkills([]string{"Python"}, "We want friendly people."))
}

func TestMatchSkills_EmptyResumeSkills(t *testing.T) {
	match := MatchSkills(nil, "Python and Docker wanted")

	require.NotNil(t, match)
	assert.Equal(t, 0, match.MatchScore)
	assert.Empty(t, match.MatchingSkills)
	assert.Equal(t, []string{"Docker", "Python"}, match.MissingSkills)
}
