// Package scoring combines skill, experience and education match signals
// into a weighted 0-100 fit score with a confidence figure.
package scoring

import (
	"math"
	"strings"

	"github.com/jonathan/crew-screening/internal/dictionary"
	"github.com/jonathan/crew-screening/internal/extraction"
	"github.com/jonathan/crew-screening/internal/matching"
	"github.com/jonathan/crew-screening/internal/types"
)

// Weights for the overall score components.
const (
	requiredSkillsWeight  = 0.5
	preferredSkillsWeight = 0.2
	experienceWeight      = 0.2
	educationWeight       = 0.1

	// unmatchedCredit is the partial credit a failed boolean match still
	// contributes to its weighted component.
	unmatchedCredit = 0.5

	// semanticConfidenceBonus is added to confidence when any required
	// skill only matched via the semantic tier.
	semanticConfidenceBonus = 5
)

// Thresholds for the boolean experience/education signals.
const (
	experienceSemanticThreshold = 0.7
	educationSemanticThreshold  = 0.7
	educationEditThreshold      = 0.6
	keywordOverlapThreshold     = 0.5
	minKeywordLength            = 3
)

// Score produces the FitScore for one candidate/job pair.
//
// Known quirk, kept on purpose: an empty required-skill set yields
// requiredRatio 0 (denominator floored at 1), not the vacuous 1, while an
// education requirement without any degree keyword counts as automatically
// satisfied. The asymmetry is part of the documented contract.
func Score(dict *dictionary.Dictionary, entities types.ExtractedEntities, prof types.RequirementProfile) types.FitScore {
	requiredOutcome := matching.Match(entities.Skills, prof.RequiredSkills)
	requiredRatio := matchRatio(requiredOutcome, prof.RequiredSkills)

	preferredOutcome := matching.Match(entities.Skills, prof.PreferredSkills)
	preferredRatio := matchRatio(preferredOutcome, prof.PreferredSkills)

	experienceMatch := matchesExperience(entities, prof.ExperienceRequirement)
	educationMatch := matchesEducation(dict, entities, prof.EducationRequirement)

	weighted := requiredRatio*requiredSkillsWeight +
		preferredRatio*preferredSkillsWeight +
		booleanCredit(experienceMatch)*experienceWeight +
		booleanCredit(educationMatch)*educationWeight

	score := clamp(int(math.Round(weighted*100)), 0, 100)

	confidence := requiredRatio * 100
	if len(requiredOutcome.SemanticMatches) > 0 {
		confidence += semanticConfidenceBonus
	}

	return types.FitScore{
		Score:           score,
		Confidence:      clamp(int(math.Round(confidence)), 0, 100),
		MatchedSkills:   union(requiredOutcome.Matched, preferredOutcome.Matched),
		MissingSkills:   requiredOutcome.Missing,
		ExperienceMatch: experienceMatch,
		EducationMatch:  educationMatch,
		SemanticMatches: union(requiredOutcome.SemanticMatches, preferredOutcome.SemanticMatches),
	}
}

// matchRatio floors the denominator at 1 so empty requirement sets divide
// safely (and, per contract, score 0 rather than 1).
func matchRatio(outcome types.MatchOutcome, required []string) float64 {
	denominator := len(required)
	if denominator < 1 {
		denominator = 1
	}
	return float64(len(outcome.Matched)) / float64(denominator)
}

// matchesExperience decides the boolean experience signal: semantic
// similarity first, then a years comparison, then a keyword-overlap
// heuristic over requirement words longer than three characters.
func matchesExperience(entities types.ExtractedEntities, requirement string) bool {
	candidateText := joinedExperienceText(entities)
	if matching.SemanticSimilarity(candidateText, requirement) > experienceSemanticThreshold {
		return true
	}

	if entities.Experience.Years != nil {
		if requiredYears := extraction.ExtractYears(requirement); requiredYears != nil {
			if *entities.Experience.Years >= *requiredYears {
				return true
			}
		}
	}

	return keywordOverlap(candidateText, requirement) >= keywordOverlapThreshold
}

// matchesEducation decides the boolean education signal. An education
// requirement without any recognized degree keyword counts as satisfied.
func matchesEducation(dict *dictionary.Dictionary, entities types.ExtractedEntities, requirement string) bool {
	candidateText := joinedEducationText(entities)
	if matching.SemanticSimilarity(candidateText, requirement) > educationSemanticThreshold {
		return true
	}

	requirementLower := strings.ToLower(requirement)
	for _, degree := range entities.Education.Degrees {
		degreeLower := strings.ToLower(degree)
		if degreeLower != "" &&
			(strings.Contains(requirementLower, degreeLower) || strings.Contains(degreeLower, requirementLower)) {
			return true
		}
	}

	if !containsDegreeKeyword(dict, requirementLower) {
		return true
	}

	return matching.EditSimilarity(candidateText, requirement) > educationEditThreshold
}

func containsDegreeKeyword(dict *dictionary.Dictionary, textLower string) bool {
	for _, keyword := range dict.DegreeKeywords() {
		if strings.Contains(textLower, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

// keywordOverlap returns the fraction of requirement words longer than
// minKeywordLength characters that appear in the candidate text.
func keywordOverlap(candidateText, requirement string) float64 {
	candidateLower := strings.ToLower(candidateText)

	total := 0
	present := 0
	for _, word := range extraction.Tokenize(requirement) {
		if len([]rune(word)) <= minKeywordLength {
			continue
		}
		total++
		if strings.Contains(candidateLower, word) {
			present++
		}
	}

	if total == 0 {
		return 0
	}
	return float64(present) / float64(total)
}

func joinedExperienceText(entities types.ExtractedEntities) string {
	parts := make([]string, 0, len(entities.Experience.Positions)+len(entities.Experience.Employers))
	parts = append(parts, entities.Experience.Positions...)
	parts = append(parts, entities.Experience.Employers...)
	return strings.Join(parts, " ")
}

func joinedEducationText(entities types.ExtractedEntities) string {
	parts := make([]string, 0, len(entities.Education.Degrees)+len(entities.Education.Institutions))
	parts = append(parts, entities.Education.Degrees...)
	parts = append(parts, entities.Education.Institutions...)
	return strings.Join(parts, " ")
}

func booleanCredit(matched bool) float64 {
	if matched {
		return 1
	}
	return unmatchedCredit
}

// union concatenates b onto a, skipping entries already present, keeping
// iteration order deterministic.
func union(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	seen := make(map[string]bool, len(a)+len(b))
	for _, lists := range [][]string{a, b} {
		for _, item := range lists {
			if !seen[item] {
				seen[item] = true
				out = append(out, item)
			}
		}
	}
	return out
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
