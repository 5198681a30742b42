package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkills_FindsKnownSkills(t *testing.T) {
	skills := ExtractSkills("I have 5 years experience in Python and Java.")
	assert.Equal(t, []string{"Python", "Java"}, skills)
}

func TestExtractSkills_CaseInsensitive(t *testing.T) {
	skills := ExtractSkills("PYTHON, docker, KuBeRnEtEs")
	assert.Contains(t, skills, "Python")
	assert.Contains(t, skills, "Docker")
	assert.Contains(t, skills, "Kubernetes")
}

func TestExtractSkills_MultiWordPhrases(t *testing.T) {
	skills := ExtractSkills("Strong background in machine learning and project management.")
	assert.Contains(t, skills, "Machine Learning")
	assert.Contains(t, skills, "Project Management")
}

func TestExtractSkills_Idempotent(t *testing.T) {
	text := "Python, SQL, Docker, leadership, communication"
	assert.Equal(t, ExtractSkills(text), ExtractSkills(text))
}

func TestExtractSkills_EmptyText(t *testing.T) {
	assert.Empty(t, ExtractSkills(""))
}

func TestExtractSkills_SubstringFalsePositives(t *testing.T) {
	// Substring containment is a known precision defect: "go" matches
	// inside "good". Pinned here so nobody "fixes" it without noticing the
	// behavior change.
	skills := ExtractSkills("A good listener.")
	assert.Equal(t, []string{"Go"}, skills)
}

func TestTitleCase_MatchesPythonSemantics(t *testing.T) {
	cases := map[string]string{
		"python":           "Python",
		"machine learning": "Machine Learning",
		"c++":              "C++",
		"c#":               "C#",
		"ci/cd":            "Ci/Cd",
		"d3.js":            "D3.Js",
		"sql":              "Sql",
		"react native":     "React Native",
		"scikit-learn":     "Scikit-Learn",
	}
	for in, want := range cases {
		assert.Equal(t, want, titleCase(in), "titleCase(%q)", in)
	}
}

func TestSkillVocabulary_MinimumSize(t *testing.T) {
	assert.GreaterOrEqual(t, len(skillVocabulary), 150)
}

func TestSkillVocabulary_NoDuplicates(t *testing.T) {
	seen := make(map[string]struct{}, len(skillVocabulary))
	for _, skill := range skillVocabulary {
		_, dup := seen[skill]
		assert.False(t, dup, "duplicate vocabulary entry %q", skill)
		seen[skill] = struct{}{}
	}
}
