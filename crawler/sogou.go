package crawler

import (
	"context"
	"fmt"
	"net/url"

	"github.com/poiesic/qsearch/core"
)

const (
	defaultSogouBaseURL = "https://www.sogou.com"

	defaultSogouMaxPages = 50
)

// Sogou scrapes Sogou result pages via the "page" parameter. Sogou paginates
// deep, so its default page budget is the largest of the three engines.
type Sogou struct {
	fetch    *fetcher
	baseURL  string
	maxPages int
}

var _ Engine = (*Sogou)(nil)

// NewSogou creates a Sogou engine with the given configuration.
func NewSogou(cfg Config, opts ...EngineOption) *Sogou {
	maxPages := cfg.MaxPages
	if maxPages == 0 {
		maxPages = defaultSogouMaxPages
	}
	s := &Sogou{
		fetch:    newFetcher(cfg, "sogou"),
		baseURL:  defaultSogouBaseURL,
		maxPages: maxPages,
	}
	applyEngineOptions(&s.baseURL, opts)
	return s
}

// Name implements Engine.
func (s *Sogou) Name() string { return "sogou" }

// Source implements Engine.
func (s *Sogou) Source() core.Source { return core.SourceSogou }

// Search implements Engine.
func (s *Sogou) Search(ctx context.Context, keyword string) ([]Result, error) {
	var results []Result
	for page := 1; page <= s.maxPages; page++ {
		pageURL := fmt.Sprintf("%s/web?query=%s&page=%d",
			s.baseURL, url.QueryEscape(keyword), page)

		doc, err := s.fetch.get(ctx, pageURL)
		if err != nil {
			return nil, err
		}

		items := findAll(doc, byClass("vrwrap", "rb"))
		if len(items) == 0 {
			break
		}

		for _, item := range items {
			if hit, ok := extractHit(item, "h3", byClass("str_info", "ft")); ok {
				results = append(results, hit)
			}
		}
	}
	return results, nil
}
