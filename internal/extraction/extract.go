// Package extraction derives structured candidate attributes from raw
// résumé text. Each rule is an independent, side-effect-free function over
// the text; Extract composes them. A span of text may contribute to more
// than one category; duplicates are removed within a category only.
package extraction

import (
	"sort"
	"strings"
	"unicode"

	"github.com/jonathan/crew-screening/internal/dictionary"
	"github.com/jonathan/crew-screening/internal/types"
)

// Extract derives all candidate entities from the given text. It never
// fails: malformed or empty input yields empty structures.
func Extract(dict *dictionary.Dictionary, text string) types.ExtractedEntities {
	clean := Sanitize(text)

	return types.ExtractedEntities{
		Skills: ExtractSkills(dict, clean),
		Experience: types.Experience{
			Years:     extractYears(clean),
			Positions: extractPositions(dict, clean),
			Employers: extractEmployers(dict, clean),
		},
		Education: types.Education{
			Degrees:      extractDegrees(dict, clean),
			Institutions: extractInstitutions(dict, clean),
		},
		Languages:      matchLookupList(clean, dict.Languages()),
		Certifications: matchLookupList(clean, dict.Certifications()),
	}
}

// Sanitize removes control characters from text. Newlines are kept because
// several capture rules terminate at line breaks; tabs become spaces.
func Sanitize(text string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n':
			return r
		case r == '\t':
			return ' '
		case unicode.IsControl(r):
			return -1
		default:
			return r
		}
	}, text)
}

// Tokenize splits text into lower-cased words. Letters and digits are word
// characters; everything else separates tokens.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// ExtractSkills matches the skill dictionary against text. An entry matches
// if any token equals it exactly, or if the entry (possibly multi-word)
// appears as a substring of the lower-cased text. Matches report the entry's
// canonical term; the result is deduplicated and sorted.
func ExtractSkills(dict *dictionary.Dictionary, text string) []string {
	lower := strings.ToLower(text)

	tokens := make(map[string]bool)
	for _, tok := range Tokenize(text) {
		tokens[tok] = true
	}

	found := make(map[string]bool)
	for entry, canonical := range dict.Skills() {
		if tokens[entry] || strings.Contains(lower, entry) {
			found[canonical] = true
		}
	}

	return sortedKeys(found)
}

// matchLookupList returns the list entries contained in the text,
// case-insensitive, deduplicated and sorted.
func matchLookupList(text string, entries []string) []string {
	lower := strings.ToLower(text)

	found := make(map[string]bool)
	for _, entry := range entries {
		if strings.Contains(lower, strings.ToLower(entry)) {
			found[entry] = true
		}
	}

	return sortedKeys(found)
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
