// Package mock provides a configurable Engine implementation for testing
// crawl orchestration without network access.
package mock

import (
	"context"
	"sync/atomic"

	"github.com/poiesic/qsearch/core"
	"github.com/poiesic/qsearch/crawler"
)

// Engine is a mock crawler engine returning canned results.
type Engine struct {
	// NameValue is returned by Name.
	NameValue string

	// SourceValue is returned by Source.
	SourceValue core.Source

	// Results is returned by Search when Err is nil.
	Results []crawler.Result

	// Err, when set, makes Search fail.
	Err error

	calls atomic.Int64
}

var _ crawler.Engine = (*Engine)(nil)

// Name implements crawler.Engine.
func (e *Engine) Name() string {
	if e.NameValue == "" {
		return "mock"
	}
	return e.NameValue
}

// Source implements crawler.Engine.
func (e *Engine) Source() core.Source {
	if e.SourceValue == 0 {
		return core.SourceBing
	}
	return e.SourceValue
}

// Search implements crawler.Engine.
func (e *Engine) Search(ctx context.Context, keyword string) ([]crawler.Result, error) {
	e.calls.Add(1)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if e.Err != nil {
		return nil, e.Err
	}
	return e.Results, nil
}

// Calls returns how many times Search was invoked.
func (e *Engine) Calls() int {
	return int(e.calls.Load())
}
