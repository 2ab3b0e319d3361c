package scoring

import (
	"math"
	"strings"

	"github.com/jonathan/crew-screening/internal/extraction"
	"github.com/jonathan/crew-screening/internal/types"
)

// Fallback scoring constants. Used when résumé text cannot be obtained:
// screening degrades instead of failing.
const (
	fallbackBaseScore       = 50
	fallbackMaxSummaryBonus = 30
	fallbackMinWordLength   = 4
)

// FallbackScore computes the degraded score used when document text
// extraction fails. It starts from a fixed base and adds up to 30 points
// proportional to the fraction of requirement words longer than four
// characters that appear verbatim in the application's personal summary.
// Confidence, skill lists and the boolean matches stay at their zero values.
func FallbackScore(personalSummary, requirementsText string) types.FitScore {
	score := fallbackBaseScore + summaryBonus(personalSummary, requirementsText)

	return types.FitScore{
		Score:           clamp(score, 0, 100),
		MatchedSkills:   []string{},
		MissingSkills:   []string{},
		SemanticMatches: []string{},
	}
}

func summaryBonus(personalSummary, requirementsText string) int {
	if personalSummary == "" {
		return 0
	}
	summaryLower := strings.ToLower(personalSummary)

	total := 0
	present := 0
	for _, word := range extraction.Tokenize(requirementsText) {
		if len([]rune(word)) <= fallbackMinWordLength {
			continue
		}
		total++
		if strings.Contains(summaryLower, word) {
			present++
		}
	}

	if total == 0 {
		return 0
	}

	bonus := fallbackMaxSummaryBonus * float64(present) / float64(total)
	return int(math.Round(math.Min(fallbackMaxSummaryBonus, bonus)))
}
