package crawler

import (
	"context"

	"github.com/poiesic/qsearch/core"
)

// Result is one search hit extracted from an engine results page.
type Result struct {
	Title   string
	Summary string
	URL     string
}

// Engine scrapes a single search engine for a keyword.
// Implementations must be safe for concurrent use.
type Engine interface {
	// Name returns the engine name for logging.
	Name() string

	// Source returns the engine's record source tag.
	Source() core.Source

	// Search fetches result pages for the keyword until the page budget or
	// result cap is reached, and returns the extracted hits in page order.
	Search(ctx context.Context, keyword string) ([]Result, error)
}
