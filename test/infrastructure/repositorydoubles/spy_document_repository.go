//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"net/http"
	"sync"

	"github.com/rios0rios0/isopennextyet/internal/domain/entities"
	"github.com/rios0rios0/isopennextyet/internal/domain/repositories"
)

// SpyDocumentRepository implements repositories.DocumentRepository as a
// configurable spy keyed by URL. Unknown URLs answer with a 404 FetchError.
type SpyDocumentRepository struct {
	mu sync.Mutex

	// --- FetchDocument ---
	Documents map[string]map[string]any // url -> decoded body
	Errs      map[string]error          // url -> failure
	// spy: requests received and whether each carried a deadline
	Requests  []entities.DocumentRequest
	Deadlines []bool
}

var _ repositories.DocumentRepository = (*SpyDocumentRepository)(nil)

// NewSpyDocumentRepository creates an empty spy.
func NewSpyDocumentRepository() *SpyDocumentRepository {
	return &SpyDocumentRepository{
		Documents: make(map[string]map[string]any),
		Errs:      make(map[string]error),
	}
}

// WithDocument registers the body returned for url.
func (r *SpyDocumentRepository) WithDocument(url string, document map[string]any) *SpyDocumentRepository {
	r.Documents[url] = document
	return r
}

// WithError registers the failure returned for url.
func (r *SpyDocumentRepository) WithError(url string, err error) *SpyDocumentRepository {
	r.Errs[url] = err
	return r
}

func (r *SpyDocumentRepository) FetchDocument(
	ctx context.Context,
	request entities.DocumentRequest,
) (map[string]any, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, hasDeadline := ctx.Deadline()
	r.Requests = append(r.Requests, request)
	r.Deadlines = append(r.Deadlines, hasDeadline)

	if err, ok := r.Errs[request.URL]; ok {
		return nil, err
	}
	if document, ok := r.Documents[request.URL]; ok {
		return document, nil
	}
	return nil, &entities.FetchError{
		URL:        request.URL,
		StatusCode: http.StatusNotFound,
		Status:     "404 Not Found",
	}
}

// RequestCount returns how many fetches were made.
func (r *SpyDocumentRepository) RequestCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Requests)
}
