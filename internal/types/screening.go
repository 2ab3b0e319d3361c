// Package types provides type definitions for structured data used throughout the crew-screening system.
package types

import (
	"time"

	"github.com/google/uuid"
)

// Application statuses set by the screening orchestrator.
const (
	StatusScreeningInProgress = "screening_in_progress"
	StatusScreeningComplete   = "screening_complete"
)

// Application represents a candidate's application to a job posting.
type Application struct {
	ID              uuid.UUID `json:"id"`
	CandidateID     uuid.UUID `json:"candidate_id"`
	JobPostingID    uuid.UUID `json:"job_posting_id"`
	PersonalSummary string    `json:"personal_summary,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// JobPosting represents the job posting fields the screening engine reads.
// Requirements and Specifications are free text maintained by recruiters.
type JobPosting struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Requirements   string    `json:"requirements"`
	Specifications string    `json:"specifications"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Experience holds work-history attributes extracted from a résumé.
type Experience struct {
	Years     *int     `json:"years,omitempty"`
	Positions []string `json:"positions"`
	Employers []string `json:"employers"`
}

// Education holds education attributes extracted from a résumé.
type Education struct {
	Degrees      []string `json:"degrees"`
	Institutions []string `json:"institutions"`
}

// ExtractedEntities is the structured view of one résumé document.
// Derived deterministically from the raw text; all strings are lower-cased
// where matching requires it and free of control characters.
type ExtractedEntities struct {
	Skills         []string   `json:"skills"`
	Experience     Experience `json:"experience"`
	Education      Education  `json:"education"`
	Languages      []string   `json:"languages"`
	Certifications []string   `json:"certifications"`
}

// RequirementProfile is the structured view of a job posting's requirement
// text. Rebuilt on every screening pass; never persisted.
type RequirementProfile struct {
	RequiredSkills        []string `json:"required_skills"`
	PreferredSkills       []string `json:"preferred_skills"`
	ExperienceRequirement string   `json:"experience_requirement"`
	EducationRequirement  string   `json:"education_requirement"`
}

// MatchOutcome is the result of matching one candidate skill set against one
// required skill set. Matched and Missing partition the required set.
// SemanticMatches is the subset of Matched that only cleared the semantic
// fallback tier.
type MatchOutcome struct {
	Matched         []string `json:"matched"`
	Missing         []string `json:"missing"`
	SemanticMatches []string `json:"semantic_matches"`
}

// FitScore is the persisted result of one screening pass. Re-screening
// overwrites the previous FitScore on the application record.
type FitScore struct {
	Score           int      `json:"score"`
	Confidence      int      `json:"confidence"`
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	ExperienceMatch bool     `json:"experience_match"`
	EducationMatch  bool     `json:"education_match"`
	SemanticMatches []string `json:"semantic_matches"`
}

// BatchItem is the outcome of screening one application within a batch.
// Exactly one of Score or Error is set.
type BatchItem struct {
	ApplicationID uuid.UUID `json:"application_id"`
	Score         *FitScore `json:"score,omitempty"`
	Error         string    `json:"error,omitempty"`
}

// BatchResult aggregates per-item outcomes of a batch screening run.
// Items preserves the order of the requested application IDs.
type BatchResult struct {
	Items      []BatchItem `json:"items"`
	Successful int         `json:"successful"`
	Failed     int         `json:"failed"`
}
