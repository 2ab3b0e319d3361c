// Package profile builds requirement profiles from job posting text.
package profile

import (
	"github.com/jonathan/crew-screening/internal/dictionary"
	"github.com/jonathan/crew-screening/internal/extraction"
	"github.com/jonathan/crew-screening/internal/types"
)

// Build converts a job posting's free-text requirements and specifications
// into a RequirementProfile. Skills are extracted with the same dictionary
// rule used for résumés. The experience and education requirements stay raw
// text on purpose: they are matched holistically downstream, while candidate
// text is structurally parsed.
func Build(dict *dictionary.Dictionary, requirementsText, specificationsText string) types.RequirementProfile {
	return types.RequirementProfile{
		RequiredSkills:        extraction.ExtractSkills(dict, extraction.Sanitize(requirementsText)),
		PreferredSkills:       extraction.ExtractSkills(dict, extraction.Sanitize(specificationsText)),
		ExperienceRequirement: requirementsText,
		EducationRequirement:  specificationsText,
	}
}
