// Package matching decides which required skills a candidate satisfies,
// using a tiered exact/substring, edit-distance and semantic strategy.
package matching

import (
	"github.com/adrg/strutil/metrics"

	"github.com/jonathan/crew-screening/internal/extraction"
)

// Similarity weights for the blended semantic score.
const (
	jaccardWeight     = 0.6
	jaroWinklerWeight = 0.4
)

var (
	jaroWinkler = newJaroWinkler()
	levenshtein = newLevenshtein()
)

func newJaroWinkler() *metrics.JaroWinkler {
	m := metrics.NewJaroWinkler()
	m.CaseSensitive = false
	return m
}

func newLevenshtein() *metrics.Levenshtein {
	m := metrics.NewLevenshtein()
	m.CaseSensitive = false
	return m
}

// SemanticSimilarity blends token-set Jaccard similarity with the mean
// pairwise character-level Jaro-Winkler similarity across all token pairs.
// Returns a value in [0,1]; 0 if either token set is empty.
func SemanticSimilarity(a, b string) float64 {
	tokensA := extraction.Tokenize(a)
	tokensB := extraction.Tokenize(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	return jaccardWeight*jaccardSimilarity(tokensA, tokensB) +
		jaroWinklerWeight*meanPairwiseJaroWinkler(tokensA, tokensB)
}

// jaccardSimilarity computes |intersection| / |union| over token sets.
func jaccardSimilarity(tokensA, tokensB []string) float64 {
	setA := make(map[string]bool, len(tokensA))
	for _, t := range tokensA {
		setA[t] = true
	}
	setB := make(map[string]bool, len(tokensB))
	for _, t := range tokensB {
		setB[t] = true
	}

	intersection := 0
	for t := range setA {
		if setB[t] {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// meanPairwiseJaroWinkler averages Jaro-Winkler similarity over the full
// cross product of token pairs.
func meanPairwiseJaroWinkler(tokensA, tokensB []string) float64 {
	total := 0.0
	pairs := 0
	for _, a := range tokensA {
		for _, b := range tokensB {
			total += jaroWinkler.Compare(a, b)
			pairs++
		}
	}
	if pairs == 0 {
		return 0
	}
	return total / float64(pairs)
}

// EditSimilarity computes normalized Levenshtein similarity:
// (maxLen - editDistance) / maxLen. Returns 1 for two empty strings.
func EditSimilarity(a, b string) float64 {
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1
	}

	dist := levenshtein.Distance(a, b)
	return float64(maxLen-dist) / float64(maxLen)
}
