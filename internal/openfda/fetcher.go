package openfda

import (
	"context"

	"fdalabel-api/internal/domain/labelModel"
)

// Fetcher is the document-fetch capability the pipeline depends on. The
// pipeline only ever sees this interface so tests can hand it fixed labels.
type Fetcher interface {
	Fetch(ctx context.Context, searchExpr string, skip int, limit int) (labelModel.SearchResult, error)
}
