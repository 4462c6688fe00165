package github

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/isopennextyet/internal/domain/entities"
	"github.com/rios0rios0/isopennextyet/internal/domain/repositories"
)

const (
	userAgent = "isopennextyet"

	// clientTimeout is an upper bound only; each call is normally bounded
	// sooner by the deadline on its context.
	clientTimeout   = 60 * time.Second
	maxDocumentSize = 4 << 20
)

// GitHubDocumentRepository implements repositories.DocumentRepository over
// plain HTTPS. It serves both raw.githubusercontent.com and api.github.com.
type GitHubDocumentRepository struct {
	client *http.Client
}

// NewGitHubDocumentRepository creates a repository with its own HTTP client.
func NewGitHubDocumentRepository() repositories.DocumentRepository {
	return NewGitHubDocumentRepositoryWithClient(&http.Client{Timeout: clientTimeout})
}

// NewGitHubDocumentRepositoryWithClient creates a repository on top of the given client.
func NewGitHubDocumentRepositoryWithClient(client *http.Client) repositories.DocumentRepository {
	return &GitHubDocumentRepository{client: client}
}

// FetchDocument issues a GET for the document and decodes the body into a JSON object.
func (r *GitHubDocumentRepository) FetchDocument(
	ctx context.Context,
	request entities.DocumentRequest,
) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, request.URL, nil)
	if err != nil {
		return nil, &entities.FetchError{
			URL: request.URL,
			Err: fmt.Errorf("failed to create request: %w", err),
		}
	}
	req.Header.Set("Accept", request.Accept)
	req.Header.Set("User-Agent", userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, &entities.FetchError{URL: request.URL, Err: err}
	}
	defer resp.Body.Close()

	logger.Debugf("[%s] GET %s -> %s", request.Source, request.URL, resp.Status)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &entities.FetchError{
			URL:        request.URL,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, &entities.FetchError{
			URL: request.URL,
			Err: fmt.Errorf("failed to read response: %w", err),
		}
	}

	return decodeObject(body)
}

// decodeObject decodes body with json.Number semantics, which is what the
// schema validator expects, and insists on a top-level object.
func decodeObject(body []byte) (map[string]any, error) {
	document, err := jsonschema.UnmarshalJSON(bytes.NewReader(body))
	if err != nil {
		return nil, &entities.ParseError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	object, ok := document.(map[string]any)
	if !ok {
		return nil, &entities.ParseError{
			Err: fmt.Errorf("invalid response: expected JSON object, got %s", jsonKind(document)),
		}
	}
	return object, nil
}

func jsonKind(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	default:
		return "number"
	}
}
