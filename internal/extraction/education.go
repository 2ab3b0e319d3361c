package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/crew-screening/internal/dictionary"
)

// extractDegrees captures degree mentions: a degree keyword optionally
// followed by "of"/"in" and capitalized field-of-study words, all on one
// line.
func extractDegrees(dict *dictionary.Dictionary, text string) []string {
	keywords := make([]string, 0, len(dict.DegreeKeywords()))
	for _, k := range dict.DegreeKeywords() {
		keywords = append(keywords, regexp.QuoteMeta(k))
	}

	re := regexp.MustCompile(
		`\b(?:` + strings.Join(keywords, "|") + `)(?:['’]s)?(?:[ \t]+(?:of|in))?(?:[ \t]+[A-Z][A-Za-z]+)*`)

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

// extractInstitutions captures institution names: a capitalized-word
// sequence followed by an institution suffix ("Maritime Academy"), or the
// suffix with an "of X" tail ("University of Rijeka"). A suffix word on its
// own is not an institution, and the sequence never crosses a line break.
func extractInstitutions(dict *dictionary.Dictionary, text string) []string {
	suffixes := make([]string, 0, len(dict.InstitutionSuffixes()))
	for _, s := range dict.InstitutionSuffixes() {
		suffixes = append(suffixes, regexp.QuoteMeta(s))
	}
	alternation := strings.Join(suffixes, "|")

	re := regexp.MustCompile(
		`(?:[A-Z][A-Za-z]+[ \t]+){1,4}(?:` + alternation + `)\b(?:[ \t]+of(?:[ \t]+[A-Z][A-Za-z]+)+)?` +
			`|(?:` + alternation + `)\b[ \t]+of(?:[ \t]+[A-Z][A-Za-z]+)+`)

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
