package extraction

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/crew-screening/internal/dictionary"
	"github.com/jonathan/crew-screening/internal/types"
)

func TestExtract_EmptyInput(t *testing.T) {
	entities := Extract(dictionary.Default(), "")

	assert.Empty(t, entities.Skills)
	assert.Nil(t, entities.Experience.Years)
	assert.Empty(t, entities.Experience.Positions)
	assert.Empty(t, entities.Experience.Employers)
	assert.Empty(t, entities.Education.Degrees)
	assert.Empty(t, entities.Education.Institutions)
	assert.Empty(t, entities.Languages)
	assert.Empty(t, entities.Certifications)
}

func TestExtractSkills_TokenMatch(t *testing.T) {
	skills := ExtractSkills(dictionary.Default(), "Strong navigation and housekeeping background")

	assert.Contains(t, skills, "navigation")
	assert.Contains(t, skills, "housekeeping")
}

func TestExtractSkills_MultiWordSubstringMatch(t *testing.T) {
	skills := ExtractSkills(dictionary.Default(), "Responsible for crowd management during drills")

	assert.Contains(t, skills, "crowd management")
}

func TestExtractSkills_AbbreviationReportsCanonical(t *testing.T) {
	skills := ExtractSkills(dictionary.Default(), "Certified in GMDSS operations")

	assert.Contains(t, skills, "global maritime distress and safety system")
}

func TestExtractSkills_Deduplicated(t *testing.T) {
	// Both the variant "safety" and the full term appear; one canonical entry results.
	skills := ExtractSkills(dictionary.Default(), "safety first, strong safety management record")

	count := 0
	for _, s := range skills {
		if s == "safety management" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestExtractSkills_SortedAndStable(t *testing.T) {
	text := "navigation, firefighting, first aid"
	first := ExtractSkills(dictionary.Default(), text)
	second := ExtractSkills(dictionary.Default(), text)

	assert.Equal(t, first, second)
	assert.IsIncreasing(t, first)
}

func TestExtractYears_FirstMatchWins(t *testing.T) {
	years := ExtractYears("3 years of experience as steward, then 10 years of experience as purser")

	require.NotNil(t, years)
	assert.Equal(t, 3, *years)
}

func TestExtractYears_YrsAbbreviation(t *testing.T) {
	years := ExtractYears("over 7 yrs experience in hospitality")

	require.NotNil(t, years)
	assert.Equal(t, 7, *years)
}

func TestExtractYears_SpanishPhrasing(t *testing.T) {
	years := ExtractYears("cuento con 5 años de experiencia a bordo")

	require.NotNil(t, years)
	assert.Equal(t, 5, *years)
}

func TestExtractYears_NoMatch(t *testing.T) {
	assert.Nil(t, ExtractYears("worked for many years aboard various vessels"))
	assert.Nil(t, ExtractYears(""))
}

func TestExtract_Positions(t *testing.T) {
	entities := Extract(dictionary.Default(), "Worked as Chief Officer on passenger vessels, later Bartender at the pool bar.\nNavigation duties included chart plotting.")

	require.NotEmpty(t, entities.Experience.Positions)
	assert.Contains(t, entities.Experience.Positions, "Chief Officer on passenger vessels")
	assert.Contains(t, entities.Experience.Positions, "Bartender at the pool bar")
}

func TestExtract_PositionStopsAtPunctuation(t *testing.T) {
	entities := Extract(dictionary.Default(), "Senior waiter, main dining room")

	assert.Contains(t, entities.Experience.Positions, "waiter")
}

func TestExtract_Employers(t *testing.T) {
	entities := Extract(dictionary.Default(), "Employment history: Royal Caribbean Cruises 2018-2021, then Carnival Cruise Lines until 2024.")

	assert.Contains(t, entities.Experience.Employers, "Royal Caribbean Cruises")
	assert.Contains(t, entities.Experience.Employers, "Carnival Cruise Lines")
}

func TestExtract_Degrees(t *testing.T) {
	entities := Extract(dictionary.Default(), "Holds a Bachelor of Nautical Science and a Diploma in Culinary Arts.")

	assert.Contains(t, entities.Education.Degrees, "Bachelor of Nautical Science")
	assert.Contains(t, entities.Education.Degrees, "Diploma in Culinary Arts")
}

func TestExtract_Institutions(t *testing.T) {
	entities := Extract(dictionary.Default(), "Graduated from the Maritime Academy and later attended the University of Rijeka.")

	assert.Contains(t, entities.Education.Institutions, "Maritime Academy")
	assert.Contains(t, entities.Education.Institutions, "University of Rijeka")
}

func TestExtract_LanguagesAndCertifications(t *testing.T) {
	entities := Extract(dictionary.Default(), "Fluent in English and Tagalog. STCW Basic Safety Training completed 2022.")

	assert.Contains(t, entities.Languages, "english")
	assert.Contains(t, entities.Languages, "tagalog")
	assert.Contains(t, entities.Certifications, "stcw")
	assert.Contains(t, entities.Certifications, "basic safety training")
}

func TestExtract_SpanMayFeedMultipleCategories(t *testing.T) {
	// "STCW Certificate" feeds certifications and, via the generic degree
	// keyword, education. The duplication across categories is accepted.
	entities := Extract(dictionary.Default(), "STCW Certificate obtained in Manila")

	assert.Contains(t, entities.Certifications, "stcw")
	assert.NotEmpty(t, entities.Education.Degrees)
}

func assertNoControlCharacters(t *testing.T, entities types.ExtractedEntities) {
	t.Helper()

	var all []string
	all = append(all, entities.Skills...)
	all = append(all, entities.Experience.Positions...)
	all = append(all, entities.Experience.Employers...)
	all = append(all, entities.Education.Degrees...)
	all = append(all, entities.Education.Institutions...)
	all = append(all, entities.Languages...)
	all = append(all, entities.Certifications...)

	for _, s := range all {
		assert.False(t, strings.ContainsFunc(s, unicode.IsControl),
			"captured string contains control character: %q", s)
	}
}

func TestExtract_EmployerStopsAtLineBreak(t *testing.T) {
	entities := Extract(dictionary.Default(), "Worked at Royal\nCaribbean Cruises from 2018 to 2024.")

	assert.NotContains(t, entities.Experience.Employers, "Royal\nCaribbean Cruises")
	assert.Contains(t, entities.Experience.Employers, "Caribbean Cruises")
	assertNoControlCharacters(t, entities)
}

func TestExtract_DegreeStopsAtLineBreak(t *testing.T) {
	entities := Extract(dictionary.Default(), "Bachelor of\nNautical Science studies completed in 2019.")

	assert.NotContains(t, entities.Education.Degrees, "Bachelor of\nNautical Science")
	assertNoControlCharacters(t, entities)
}

func TestExtract_InstitutionStopsAtLineBreak(t *testing.T) {
	entities := Extract(dictionary.Default(), "Studied at Maritime\nAcademy of Nautical Studies in Split.")

	assert.NotContains(t, entities.Education.Institutions, "Maritime\nAcademy of Nautical Studies")
	assert.Contains(t, entities.Education.Institutions, "Academy of Nautical Studies")
	assertNoControlCharacters(t, entities)
}

func TestExtract_MultilineResumeFieldsAreClean(t *testing.T) {
	entities := Extract(dictionary.Default(), "Chief Officer\nRoyal Caribbean Cruises\n8 years of experience\nBachelor of Nautical Science\nMaritime Academy\nEnglish, Spanish\nSTCW")

	assert.Contains(t, entities.Experience.Employers, "Royal Caribbean Cruises")
	assert.Contains(t, entities.Education.Degrees, "Bachelor of Nautical Science")
	assert.Contains(t, entities.Education.Institutions, "Maritime Academy")
	assertNoControlCharacters(t, entities)
}

func TestExtract_BareInstitutionSuffixIgnored(t *testing.T) {
	entities := Extract(dictionary.Default(), "Welcome aboard! Visit the Academy today to learn more.")

	assert.Empty(t, entities.Education.Institutions)
}

func TestSanitize_RemovesControlCharacters(t *testing.T) {
	out := Sanitize("naviga\x00tion\x07 officer\tand\nsafety")

	assert.Equal(t, "navigation officer and\nsafety", out)
}

func TestTokenize_LowercasesAndSplits(t *testing.T) {
	tokens := Tokenize("Chief Officer, 2nd shift!")

	assert.Equal(t, []string{"chief", "officer", "2nd", "shift"}, tokens)
}
