package crawler

import (
	"context"
	"fmt"
	"net/url"

	"github.com/poiesic/qsearch/core"
)

const (
	defaultBaiduBaseURL = "https://www.baidu.com"

	// Baidu starts interleaving ads and duplicate entries after the first
	// few pages, so the page budget is small.
	defaultBaiduMaxPages = 5
)

// Baidu scrapes Baidu result pages via the "pn" offset parameter.
type Baidu struct {
	fetch    *fetcher
	baseURL  string
	maxPages int
}

var _ Engine = (*Baidu)(nil)

// NewBaidu creates a Baidu engine with the given configuration.
func NewBaidu(cfg Config, opts ...EngineOption) *Baidu {
	maxPages := cfg.MaxPages
	if maxPages == 0 {
		maxPages = defaultBaiduMaxPages
	}
	b := &Baidu{
		fetch:    newFetcher(cfg, "baidu"),
		baseURL:  defaultBaiduBaseURL,
		maxPages: maxPages,
	}
	applyEngineOptions(&b.baseURL, opts)
	return b
}

// Name implements Engine.
func (b *Baidu) Name() string { return "baidu" }

// Source implements Engine.
func (b *Baidu) Source() core.Source { return core.SourceBaidu }

// Search implements Engine.
func (b *Baidu) Search(ctx context.Context, keyword string) ([]Result, error) {
	var results []Result
	for page := 0; page < b.maxPages; page++ {
		pageURL := fmt.Sprintf("%s/s?wd=%s&pn=%d",
			b.baseURL, url.QueryEscape(keyword), page*10)

		doc, err := b.fetch.get(ctx, pageURL)
		if err != nil {
			return nil, err
		}

		items := findAll(doc, byClass("result"))
		if len(items) == 0 {
			break
		}

		for _, item := range items {
			if hit, ok := extractHit(item, "h3", byClass("c-abstract")); ok {
				results = append(results, hit)
			}
		}
	}
	return results, nil
}
