package matching

import (
	"strings"

	"github.com/jonathan/crew-screening/internal/types"
)

// Thresholds for the fuzzy matching tiers.
const (
	editSimilarityThreshold     = 0.7
	semanticSimilarityThreshold = 0.6
)

// Match evaluates each required skill against the candidate's skills using
// three tiers, stopping at the first success:
//
//  1. exact equality or either-direction substring (case-insensitive)
//  2. normalized Levenshtein similarity above 0.7
//  3. semantic similarity above 0.6 (recorded in SemanticMatches)
//
// Within a tier the first candidate skill clearing the threshold wins; no
// best-match search. Matched and Missing always partition the required set.
func Match(candidateSkills, requiredSkills []string) types.MatchOutcome {
	outcome := types.MatchOutcome{
		Matched:         []string{},
		Missing:         []string{},
		SemanticMatches: []string{},
	}

	for _, required := range requiredSkills {
		switch {
		case matchesDirect(candidateSkills, required):
			outcome.Matched = append(outcome.Matched, required)
		case matchesByEditDistance(candidateSkills, required):
			outcome.Matched = append(outcome.Matched, required)
		case matchesSemantically(candidateSkills, required):
			outcome.Matched = append(outcome.Matched, required)
			outcome.SemanticMatches = append(outcome.SemanticMatches, required)
		default:
			outcome.Missing = append(outcome.Missing, required)
		}
	}

	return outcome
}

// matchesDirect is the exact/substring tier.
func matchesDirect(candidateSkills []string, required string) bool {
	requiredLower := strings.ToLower(required)
	for _, candidate := range candidateSkills {
		candidateLower := strings.ToLower(candidate)
		if candidateLower == requiredLower ||
			strings.Contains(candidateLower, requiredLower) ||
			strings.Contains(requiredLower, candidateLower) {
			return true
		}
	}
	return false
}

// matchesByEditDistance is the edit-distance similarity tier.
func matchesByEditDistance(candidateSkills []string, required string) bool {
	for _, candidate := range candidateSkills {
		if EditSimilarity(candidate, required) > editSimilarityThreshold {
			return true
		}
	}
	return false
}

// matchesSemantically is the semantic fallback tier.
func matchesSemantically(candidateSkills []string, required string) bool {
	for _, candidate := range candidateSkills {
		if SemanticSimilarity(candidate, required) > semanticSimilarityThreshold {
			return true
		}
	}
	return false
}
