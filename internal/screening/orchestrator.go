// Package screening orchestrates the candidate-job fit scoring pipeline:
// fetch résumé text, extract entities, match against the job's requirement
// profile, persist the resulting fit score.
package screening

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/crew-screening/internal/dictionary"
	"github.com/jonathan/crew-screening/internal/extraction"
	"github.com/jonathan/crew-screening/internal/profile"
	"github.com/jonathan/crew-screening/internal/scoring"
	"github.com/jonathan/crew-screening/internal/search"
	"github.com/jonathan/crew-screening/internal/types"
)

// defaultBatchConcurrency bounds the batch fan-out when no limit is
// configured.
const defaultBatchConcurrency = 4

// ApplicationStore provides read/write access to applications and job
// postings.
type ApplicationStore interface {
	GetApplication(ctx context.Context, id uuid.UUID) (*types.Application, error)
	GetJobPosting(ctx context.Context, id uuid.UUID) (*types.JobPosting, error)
	SaveFitScore(ctx context.Context, applicationID uuid.UUID, score *types.FitScore) error
	SetApplicationStatus(ctx context.Context, applicationID uuid.UUID, status string) error
}

// DocumentStore fetches the candidate's résumé document.
type DocumentStore interface {
	FetchResumeBytes(ctx context.Context, candidateID uuid.UUID) ([]byte, error)
}

// TextExtractor converts résumé bytes into plain text.
type TextExtractor interface {
	ExtractText(data []byte) (string, error)
}

// Indexer receives the flat screening document for external keyword search.
// Indexing is fire-and-forget: failures never affect the computed score.
type Indexer interface {
	IndexScreening(ctx context.Context, doc search.ScreeningDocument) error
}

// Config holds the collaborators and settings for a Screener.
type Config struct {
	Store     ApplicationStore
	Documents DocumentStore
	Extractor TextExtractor
	Indexer   Indexer // optional
	Dict      *dictionary.Dictionary
	Logger    *zap.Logger
	// BatchConcurrency bounds concurrent applications per batch run.
	BatchConcurrency int
}

// Screener drives the screening pipeline for single applications and
// batches. Screenings share no mutable state; a Screener is safe for
// concurrent use.
type Screener struct {
	store            ApplicationStore
	documents        DocumentStore
	extractor        TextExtractor
	indexer          Indexer
	dict             *dictionary.Dictionary
	logger           *zap.Logger
	batchConcurrency int
}

// New creates a Screener from the given configuration.
func New(cfg Config) *Screener {
	if cfg.Dict == nil {
		cfg.Dict = dictionary.Default()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.BatchConcurrency < 1 {
		cfg.BatchConcurrency = defaultBatchConcurrency
	}

	return &Screener{
		store:            cfg.Store,
		documents:        cfg.Documents,
		extractor:        cfg.Extractor,
		indexer:          cfg.Indexer,
		dict:             cfg.Dict,
		logger:           cfg.Logger,
		batchConcurrency: cfg.BatchConcurrency,
	}
}

// ScreenApplication runs the full pipeline for one application and persists
// the resulting FitScore, overwriting any previous result. Extraction
// problems degrade to fallback scoring and never fail the call; unknown
// application or job posting IDs do.
func (s *Screener) ScreenApplication(ctx context.Context, applicationID uuid.UUID) (*types.FitScore, error) {
	app, err := s.store.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	job, err := s.store.GetJobPosting(ctx, app.JobPostingID)
	if err != nil {
		return nil, err
	}

	if err := s.store.SetApplicationStatus(ctx, app.ID, types.StatusScreeningInProgress); err != nil {
		return nil, &PersistError{ApplicationID: app.ID, Cause: err}
	}

	prof := profile.Build(s.dict, job.Requirements, job.Specifications)
	fit, entities := s.scoreResume(ctx, app, job, prof)

	if err := s.store.SaveFitScore(ctx, app.ID, &fit); err != nil {
		return nil, &PersistError{ApplicationID: app.ID, Cause: err}
	}
	if err := s.store.SetApplicationStatus(ctx, app.ID, types.StatusScreeningComplete); err != nil {
		return nil, &PersistError{ApplicationID: app.ID, Cause: err}
	}

	s.indexScreening(ctx, app, entities, fit)

	return &fit, nil
}

// scoreResume computes the fit score for an application, degrading to
// fallback scoring when the résumé cannot be fetched or its text cannot be
// extracted.
func (s *Screener) scoreResume(ctx context.Context, app *types.Application, job *types.JobPosting, prof types.RequirementProfile) (types.FitScore, types.ExtractedEntities) {
	data, err := s.documents.FetchResumeBytes(ctx, app.CandidateID)
	if err != nil {
		s.logger.Warn("resume fetch failed, using fallback scoring",
			zap.String("application_id", app.ID.String()),
			zap.Error(err))
		return scoring.FallbackScore(app.PersonalSummary, job.Requirements), types.ExtractedEntities{}
	}

	text, err := s.extractor.ExtractText(data)
	if err != nil {
		s.logger.Warn("text extraction failed, using fallback scoring",
			zap.String("application_id", app.ID.String()),
			zap.Error(err))
		return scoring.FallbackScore(app.PersonalSummary, job.Requirements), types.ExtractedEntities{}
	}

	lang, langConfidence := extraction.DetectLanguage(text)
	entities := extraction.Extract(s.dict, text)

	s.logger.Info("extracted resume entities",
		zap.String("application_id", app.ID.String()),
		zap.String("language", lang),
		zap.Float64("language_confidence", langConfidence),
		zap.Int("skills", len(entities.Skills)))

	return scoring.Score(s.dict, entities, prof), entities
}

// indexScreening emits the flat screening document to the search index if
// one is configured. Failures are logged and swallowed.
func (s *Screener) indexScreening(ctx context.Context, app *types.Application, entities types.ExtractedEntities, fit types.FitScore) {
	if s.indexer == nil {
		return
	}

	doc := search.NewScreeningDocument(app, entities, fit)
	if err := s.indexer.IndexScreening(ctx, doc); err != nil {
		s.logger.Warn("search indexing failed",
			zap.String("application_id", app.ID.String()),
			zap.Error(err))
	}
}

// ScreenBatch screens every application ID, isolating per-item failures.
// The result list has the same length and order as the input regardless of
// completion order.
func (s *Screener) ScreenBatch(ctx context.Context, applicationIDs []uuid.UUID) *types.BatchResult {
	items := make([]types.BatchItem, len(applicationIDs))

	var g errgroup.Group
	g.SetLimit(s.batchConcurrency)

	for i, id := range applicationIDs {
		g.Go(func() error {
			score, err := s.ScreenApplication(ctx, id)
			if err != nil {
				items[i] = types.BatchItem{ApplicationID: id, Error: err.Error()}
			} else {
				items[i] = types.BatchItem{ApplicationID: id, Score: score}
			}
			return nil
		})
	}

	// Items never return errors; failures are data.
	_ = g.Wait()

	result := &types.BatchResult{Items: items}
	for _, item := range items {
		if item.Error == "" {
			result.Successful++
		} else {
			result.Failed++
		}
	}

	s.logger.Info("batch screening complete",
		zap.Int("total", len(items)),
		zap.Int("successful", result.Successful),
		zap.Int("failed", result.Failed))

	return result
}
