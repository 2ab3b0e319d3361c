package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/crew-screening/internal/screening"
	"github.com/jonathan/crew-screening/internal/types"
)

// GetJobPosting retrieves a job posting by ID.
func (db *DB) GetJobPosting(ctx context.Context, id uuid.UUID) (*types.JobPosting, error) {
	var job types.JobPosting
	err := db.pool.QueryRow(ctx,
		`SELECT id, title, COALESCE(requirements, ''), COALESCE(specifications, ''), created_at, updated_at
		 FROM job_postings WHERE id = $1`,
		id,
	).Scan(&job.ID, &job.Title, &job.Requirements, &job.Specifications, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &screening.NotFoundError{Resource: "job posting", ID: id}
		}
		return nil, fmt.Errorf("failed to get job posting: %w", err)
	}
	return &job, nil
}
