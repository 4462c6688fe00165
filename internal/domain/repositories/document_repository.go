package repositories

import (
	"context"

	"github.com/rios0rios0/isopennextyet/internal/domain/entities"
)

// DocumentRepository abstracts a remote source of JSON documents (the raw
// package.json host and the GitHub REST API).
type DocumentRepository interface {
	// FetchDocument retrieves the document and decodes it into a JSON object.
	// It fails with *entities.FetchError when the transport fails or the status
	// is not 2xx, and with *entities.ParseError when the body is not a JSON object.
	FetchDocument(ctx context.Context, request entities.DocumentRequest) (map[string]any, error)
}
