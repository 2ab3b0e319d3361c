package extraction

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/crew-screening/internal/dictionary"
)

// yearsPattern matches "<n> years of experience" style phrasing, including
// common Spanish, French and German equivalents. The first match wins; no
// aggregation across multiple mentions.
var yearsPattern = regexp.MustCompile(
	`(?i)(\d+)\s*\+?\s*(?:years?|yrs?|años|ans|jahre)\s*(?:of\s+|de\s+|d['’]\s*)?(?:experience|experiencia|expérience|erfahrung)`)

// ExtractYears returns the experience-years figure from the first matching
// phrase in the text, or nil if none is found.
func ExtractYears(text string) *int {
	return extractYears(Sanitize(text))
}

func extractYears(text string) *int {
	m := yearsPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	years, err := strconv.Atoi(m[1])
	if err != nil || years < 0 {
		return nil
	}
	return &years
}

// extractPositions captures job titles: a title keyword plus up to 50
// trailing characters, terminated by a line break or punctuation.
func extractPositions(dict *dictionary.Dictionary, text string) []string {
	found := make(map[string]bool)
	seen := make(map[string]bool)

	for _, keyword := range dict.PositionKeywords() {
		re := positionPattern(keyword)
		for _, m := range re.FindAllString(text, -1) {
			captured := strings.TrimSpace(m)
			key := strings.ToLower(captured)
			if captured != "" && !seen[key] {
				seen[key] = true
				found[captured] = true
			}
		}
	}

	return sortedKeys(found)
}

func positionPattern(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(keyword) + `[^\n.,;:!?]{0,50}`)
}

// extractEmployers captures organization names: a capitalized-word sequence
// immediately followed by one of the organization-suffix keywords. The
// sequence never crosses a line break; captured strings stay free of control
// characters.
func extractEmployers(dict *dictionary.Dictionary, text string) []string {
	suffixes := make([]string, 0, len(dict.EmployerSuffixes()))
	for _, s := range dict.EmployerSuffixes() {
		suffixes = append(suffixes, regexp.QuoteMeta(s))
	}

	re := regexp.MustCompile(
		`(?:[A-Z][A-Za-z&'’]*[ \t]+){1,4}(?:` + strings.Join(suffixes, "|") + `)\b`)

	found := make(map[string]bool)
	seen := make(map[string]bool)
	for _, m := range re.FindAllString(text, -1) {
		captured := strings.TrimSpace(m)
		key := strings.ToLower(captured)
		if !seen[key] {
			seen[key] = true
			found[captured] = true
		}
	}

	return sortedKeys(found)
}
