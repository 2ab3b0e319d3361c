package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/crew-screening/internal/screening"
	"github.com/jonathan/crew-screening/internal/types"
)

// GetApplication retrieves an application by ID.
func (db *DB) GetApplication(ctx context.Context, id uuid.UUID) (*types.Application, error) {
	var app types.Application
	err := db.pool.QueryRow(ctx,
		`SELECT id, candidate_id, job_posting_id, COALESCE(personal_summary, ''), status, created_at, updated_at
		 FROM applications WHERE id = $1`,
		id,
	).Scan(&app.ID, &app.CandidateID, &app.JobPostingID, &app.PersonalSummary, &app.Status, &app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &screening.NotFoundError{Resource: "application", ID: id}
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return &app, nil
}

// SaveFitScore writes a screening result onto the application record,
// overwriting any previous score.
func (db *DB) SaveFitScore(ctx context.Context, applicationID uuid.UUID, score *types.FitScore) error {
	detail, err := json.Marshal(score)
	if err != nil {
		return fmt.Errorf("failed to marshal fit score: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE applications
		 SET score = $1, confidence = $2, fit_score = $3, screened_at = NOW(), updated_at = NOW()
		 WHERE id = $4`,
		score.Score, score.Confidence, detail, applicationID,
	)
	if err != nil {
		return fmt.Errorf("failed to save fit score: %w", err)
	}
	if result.RowsAffected() == 0 {
		return &screening.NotFoundError{Resource: "application", ID: applicationID}
	}
	return nil
}

// GetFitScore retrieves the persisted screening result for an application.
// Returns nil without error when the application has not been screened yet.
func (db *DB) GetFitScore(ctx context.Context, applicationID uuid.UUID) (*types.FitScore, error) {
	var detail []byte
	err := db.pool.QueryRow(ctx,
		`SELECT fit_score FROM applications WHERE id = $1`,
		applicationID,
	).Scan(&detail)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &screening.NotFoundError{Resource: "application", ID: applicationID}
		}
		return nil, fmt.Errorf("failed to get fit score: %w", err)
	}

	if len(detail) == 0 {
		return nil, nil
	}

	var score types.FitScore
	if err := json.Unmarshal(detail, &score); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fit score: %w", err)
	}
	return &score, nil
}

// SetApplicationStatus transitions an application's status field.
func (db *DB) SetApplicationStatus(ctx context.Context, applicationID uuid.UUID, status string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE applications SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, applicationID,
	)
	if err != nil {
		return fmt.Errorf("failed to set application status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return &screening.NotFoundError{Resource: "application", ID: applicationID}
	}
	return nil
}
