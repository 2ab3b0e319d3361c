package scoring

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/crew-screening/internal/dictionary"
	"github.com/jonathan/crew-screening/internal/types"
)

func candidateWithSkills(skills ...string) types.ExtractedEntities {
	return types.ExtractedEntities{
		Skills: skills,
		Experience: types.Experience{
			Positions: []string{},
			Employers: []string{},
		},
		Education: types.Education{
			Degrees:      []string{},
			Institutions: []string{},
		},
	}
}

func profileRequiring(skills ...string) types.RequirementProfile {
	return types.RequirementProfile{
		RequiredSkills:  skills,
		PreferredSkills: []string{},
	}
}

func TestScore_HalfRequiredMatched(t *testing.T) {
	fit := Score(dictionary.Default(),
		candidateWithSkills("navigation"),
		profileRequiring("navigation", "safety management"))

	// 0.5*0.5 required + 0.5*0.2 unmatched-experience credit + 1.0*0.1
	// education (empty requirement counts as satisfied).
	assert.Equal(t, 45, fit.Score)
	assert.Equal(t, 50, fit.Confidence)
	assert.Equal(t, []string{"navigation"}, fit.MatchedSkills)
	assert.Equal(t, []string{"safety management"}, fit.MissingSkills)
	assert.False(t, fit.ExperienceMatch)
	assert.True(t, fit.EducationMatch)
	assert.Empty(t, fit.SemanticMatches)
}

func TestScore_AllRequiredMatched(t *testing.T) {
	fit := Score(dictionary.Default(),
		candidateWithSkills("navigation", "safety management"),
		profileRequiring("navigation", "safety management"))

	assert.Equal(t, 70, fit.Score)
	assert.Equal(t, 100, fit.Confidence)
	assert.Empty(t, fit.MissingSkills)
}

func TestScore_MoreMatchesNeverLowerScore(t *testing.T) {
	prof := profileRequiring("navigation", "safety management", "firefighting")

	previous := -1
	for _, skills := range [][]string{
		{},
		{"navigation"},
		{"navigation", "safety management"},
		{"navigation", "safety management", "firefighting"},
	} {
		fit := Score(dictionary.Default(), candidateWithSkills(skills...), prof)
		assert.GreaterOrEqual(t, fit.Score, previous)
		previous = fit.Score
	}
}

func TestScore_EmptyRequiredSetScoresZeroRatio(t *testing.T) {
	// Empty required set means ratio 0, not a vacuous full match.
	fit := Score(dictionary.Default(),
		candidateWithSkills("navigation"),
		profileRequiring())

	assert.Equal(t, 20, fit.Score)
	assert.Equal(t, 0, fit.Confidence)
}

func TestScore_PreferredSkillsContribute(t *testing.T) {
	prof := types.RequirementProfile{
		RequiredSkills:  []string{"navigation"},
		PreferredSkills: []string{"hospitality"},
	}

	fit := Score(dictionary.Default(), candidateWithSkills("navigation", "hospitality"), prof)

	assert.Equal(t, 90, fit.Score)
	assert.Equal(t, []string{"navigation", "hospitality"}, fit.MatchedSkills)
}

func TestScore_MatchedSkillsDeduplicatedAcrossLists(t *testing.T) {
	prof := types.RequirementProfile{
		RequiredSkills:  []string{"navigation"},
		PreferredSkills: []string{"navigation"},
	}

	fit := Score(dictionary.Default(), candidateWithSkills("navigation"), prof)

	assert.Equal(t, []string{"navigation"}, fit.MatchedSkills)
}

func TestScore_SemanticMatchBumpsConfidence(t *testing.T) {
	fit := Score(dictionary.Default(),
		candidateWithSkills("excellence in guest service"),
		profileRequiring("guest service excellence", "navigation"))

	assert.Equal(t, []string{"guest service excellence"}, fit.SemanticMatches)
	assert.Equal(t, 55, fit.Confidence)
}

func TestScore_BoundsAndDeterminism(t *testing.T) {
	entities := candidateWithSkills("navigation", "hospitality")
	entities.Experience.Positions = []string{"captain"}
	prof := types.RequirementProfile{
		RequiredSkills:        []string{"navigation", "plumbing"},
		PreferredSkills:       []string{"hospitality"},
		ExperienceRequirement: "5 years of experience at sea",
		EducationRequirement:  "Bachelor of Nautical Science",
	}

	first := Score(dictionary.Default(), entities, prof)
	second := Score(dictionary.Default(), entities, prof)

	assert.GreaterOrEqual(t, first.Score, 0)
	assert.LessOrEqual(t, first.Score, 100)
	assert.GreaterOrEqual(t, first.Confidence, 0)
	assert.LessOrEqual(t, first.Confidence, 100)

	assert.Equal(t, first, second)
	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)
}

func TestMatchesExperience_YearsComparison(t *testing.T) {
	years := 6
	entities := candidateWithSkills()
	entities.Experience.Years = &years
	entities.Experience.Positions = []string{"captain"}

	assert.True(t, matchesExperience(entities, "minimum 5 years of experience on deck"))
}

func TestMatchesExperience_InsufficientYears(t *testing.T) {
	years := 3
	entities := candidateWithSkills()
	entities.Experience.Years = &years
	entities.Experience.Positions = []string{"captain"}

	assert.False(t, matchesExperience(entities, "minimum 5 years of experience on deck"))
}

func TestMatchesExperience_KeywordOverlap(t *testing.T) {
	entities := candidateWithSkills()
	entities.Experience.Positions = []string{"deck operations supervisor"}

	assert.True(t, matchesExperience(entities, "experience with deck operations"))
}

func TestMatchesExperience_NoSignals(t *testing.T) {
	assert.False(t, matchesExperience(candidateWithSkills(), "minimum 5 years of experience on deck"))
}

func TestMatchesEducation_DegreeSubstring(t *testing.T) {
	entities := candidateWithSkills()
	entities.Education.Degrees = []string{"Bachelor of Nautical Science"}

	assert.True(t, matchesEducation(dictionary.Default(), entities,
		"Bachelor of Nautical Science or equivalent required"))
}

func TestMatchesEducation_NoDegreeKeywordAutoSatisfied(t *testing.T) {
	assert.True(t, matchesEducation(dictionary.Default(), candidateWithSkills(),
		"relevant seagoing experience"))
}

func TestMatchesEducation_DegreeRequiredButAbsent(t *testing.T) {
	assert.False(t, matchesEducation(dictionary.Default(), candidateWithSkills(),
		"Bachelor of Maritime Studies required"))
}

func TestKeywordOverlap_ShortWordsIgnored(t *testing.T) {
	// "on", "of" and "sea" are at or below the length cutoff.
	overlap := keywordOverlap("worked aboard passenger vessels", "vessels on of sea passenger")

	assert.InDelta(t, 1.0, overlap, 0.0001)
}

func TestKeywordOverlap_EmptyRequirement(t *testing.T) {
	assert.Zero(t, keywordOverlap("captain", ""))
}
