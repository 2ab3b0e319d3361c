package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jonathan/crew-screening/internal/schemas"
)

// defaultTimeout bounds one indexing request. Indexing is a side channel;
// a slow index must not hold up screening for long.
const defaultTimeout = 10 * time.Second

// HTTPIndexer posts screening documents to a keyword search service.
type HTTPIndexer struct {
	endpoint string
	client   *http.Client
}

// NewHTTPIndexer creates an indexer targeting the given endpoint URL.
func NewHTTPIndexer(endpoint string) *HTTPIndexer {
	return &HTTPIndexer{
		endpoint: endpoint,
		client:   &http.Client{Timeout: defaultTimeout},
	}
}

// IndexScreening validates the document against its schema and posts it to
// the search service. The caller decides what to do with failures; the
// orchestrator logs and swallows them.
func (x *HTTPIndexer) IndexScreening(ctx context.Context, doc ScreeningDocument) error {
	if err := schemas.ValidateScreeningDocument(doc); err != nil {
		return fmt.Errorf("invalid screening document: %w", err)
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal screening document: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, x.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build index request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := x.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post screening document: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("search index returned status %d: %s", resp.StatusCode, snippet)
	}

	return nil
}
