package extraction

// Word-frequency language guesser. The guess is logged next to extraction
// results to give recruiters a hint about extraction confidence; no
// screening behavior branches on it.

var frequentWords = map[string][]string{
	"en": {"the", "and", "of", "to", "in", "for", "with", "on", "as", "at", "from", "by", "was", "were", "have"},
	"es": {"el", "la", "de", "que", "y", "en", "los", "del", "las", "por", "con", "una", "para", "como", "años"},
	"fr": {"le", "la", "de", "et", "les", "des", "en", "du", "une", "dans", "pour", "sur", "avec", "par", "ans"},
	"de": {"der", "die", "und", "das", "von", "mit", "den", "für", "auf", "ist", "im", "dem", "ein", "als", "bei"},
	"it": {"il", "di", "che", "la", "per", "con", "del", "una", "sono", "della", "anni", "presso", "dal", "nel", "ed"},
	"tl": {"ang", "ng", "sa", "mga", "ako", "ay", "na", "at", "para", "ito", "ko", "taon", "mula", "hanggang", "bilang"},
}

// DetectLanguage guesses the language of the text from stop-word frequency.
// It returns an ISO 639-1 code and the fraction of tokens that matched the
// winning language's word list. Returns ("unknown", 0) for empty input.
func DetectLanguage(text string) (string, float64) {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return "unknown", 0
	}

	best := "unknown"
	bestScore := 0.0
	for _, code := range []string{"en", "es", "fr", "de", "it", "tl"} {
		words := make(map[string]bool, len(frequentWords[code]))
		for _, w := range frequentWords[code] {
			words[w] = true
		}

		hits := 0
		for _, tok := range tokens {
			if words[tok] {
				hits++
			}
		}

		score := float64(hits) / float64(len(tokens))
		if score > bestScore {
			bestScore = score
			best = code
		}
	}

	return best, bestScore
}
