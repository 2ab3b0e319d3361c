package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/crew-screening/internal/screening"
)

// FetchResumeBytes retrieves the most recently uploaded résumé document for
// a candidate.
func (db *DB) FetchResumeBytes(ctx context.Context, candidateID uuid.UUID) ([]byte, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM resume_documents
		 WHERE candidate_id = $1
		 ORDER BY uploaded_at DESC
		 LIMIT 1`,
		candidateID,
	).Scan(&content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &screening.NotFoundError{Resource: "resume document", ID: candidateID}
		}
		return nil, fmt.Errorf("failed to fetch resume document: %w", err)
	}
	return content, nil
}
