package crawler

import (
	"context"
	"fmt"
	"net/url"

	"github.com/poiesic/qsearch/core"
)

const defaultBingBaseURL = "https://www.bing.com"

// Bing scrapes Bing result pages, ten hits per page via the "first" offset
// parameter, until MaxResults hits are collected or a page comes back empty.
type Bing struct {
	fetch      *fetcher
	baseURL    string
	maxResults int
}

var _ Engine = (*Bing)(nil)

// NewBing creates a Bing engine with the given configuration.
func NewBing(cfg Config, opts ...EngineOption) *Bing {
	b := &Bing{
		fetch:      newFetcher(cfg, "bing"),
		baseURL:    defaultBingBaseURL,
		maxResults: cfg.MaxResults,
	}
	applyEngineOptions(&b.baseURL, opts)
	return b
}

// Name implements Engine.
func (b *Bing) Name() string { return "bing" }

// Source implements Engine.
func (b *Bing) Source() core.Source { return core.SourceBing }

// Search implements Engine.
func (b *Bing) Search(ctx context.Context, keyword string) ([]Result, error) {
	var results []Result
	for page := 1; len(results) < b.maxResults; page++ {
		first := (page-1)*10 + 1
		pageURL := fmt.Sprintf("%s/search?q=%s&first=%d",
			b.baseURL, url.QueryEscape(keyword), first)

		doc, err := b.fetch.get(ctx, pageURL)
		if err != nil {
			return nil, err
		}

		items := findAll(doc, byClass("b_algo"))
		if len(items) == 0 {
			break
		}

		for _, item := range items {
			hit, ok := extractHit(item, "h2", tagWithinClass("p", "b_caption"))
			if !ok {
				continue
			}
			results = append(results, hit)
			if len(results) >= b.maxResults {
				break
			}
		}
	}
	return results, nil
}
