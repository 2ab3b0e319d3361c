// Package search emits screening results as flat documents to an external
// keyword search index.
package search

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/crew-screening/internal/types"
)

// ScreeningDocument is the flat, denormalized view of one screening result
// for external keyword search.
type ScreeningDocument struct {
	ApplicationID   uuid.UUID `json:"application_id"`
	CandidateID     uuid.UUID `json:"candidate_id"`
	JobPostingID    uuid.UUID `json:"job_posting_id"`
	Skills          []string  `json:"skills"`
	Positions       []string  `json:"positions"`
	Employers       []string  `json:"employers"`
	Languages       []string  `json:"languages"`
	Certifications  []string  `json:"certifications"`
	Score           int       `json:"score"`
	Confidence      int       `json:"confidence"`
	ExperienceMatch bool      `json:"experience_match"`
	EducationMatch  bool      `json:"education_match"`
	ScreenedAt      time.Time `json:"screened_at"`
}

// NewScreeningDocument flattens an application's extracted entities and fit
// score into one indexable document.
func NewScreeningDocument(app *types.Application, entities types.ExtractedEntities, fit types.FitScore) ScreeningDocument {
	return ScreeningDocument{
		ApplicationID:   app.ID,
		CandidateID:     app.CandidateID,
		JobPostingID:    app.JobPostingID,
		Skills:          emptyIfNil(entities.Skills),
		Positions:       emptyIfNil(entities.Experience.Positions),
		Employers:       emptyIfNil(entities.Experience.Employers),
		Languages:       emptyIfNil(entities.Languages),
		Certifications:  emptyIfNil(entities.Certifications),
		Score:           fit.Score,
		Confidence:      fit.Confidence,
		ExperienceMatch: fit.ExperienceMatch,
		EducationMatch:  fit.EducationMatch,
		ScreenedAt:      time.Now().UTC(),
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
