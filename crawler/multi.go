package crawler

import (
	"context"
	"log/slog"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/qsearch/core"
)

// Monitor provides hooks to observe a multi-engine crawl.
type Monitor interface {
	Start(keyword string)
	EngineStarted(engine string)
	EngineFinished(engine string, hits int, err error)
	Finish(merged []*core.Record)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                          {}
func (n *noopMonitor) EngineStarted(_ string)                  {}
func (n *noopMonitor) EngineFinished(_ string, _ int, _ error) {}
func (n *noopMonitor) Finish(_ []*core.Record)                 {}

// MultiCrawler runs several engines concurrently and merges their results
// into deduplicated records.
type MultiCrawler struct {
	engines []Engine
	pool    *ants.Pool
	logger  *slog.Logger
}

// Option configures a MultiCrawler.
type Option func(*MultiCrawler) error

// WithPoolSize sets the worker pool size for concurrent engine fetches.
// Default is min(number of engines, NumCPU).
func WithPoolSize(size int) Option {
	return func(m *MultiCrawler) error {
		if size < 1 {
			size = 1
		}
		if m.pool != nil {
			m.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		m.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *MultiCrawler) error {
		if logger == nil {
			logger = slog.Default()
		}
		m.logger = logger
		return nil
	}
}

// NewMultiCrawler creates a crawler over the given engines.
func NewMultiCrawler(engines []Engine, opts ...Option) (*MultiCrawler, error) {
	if len(engines) == 0 {
		return nil, ErrNoEngines
	}

	poolSize := len(engines)
	if cpus := runtime.NumCPU(); poolSize > cpus {
		poolSize = cpus
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	m := &MultiCrawler{
		engines: engines,
		pool:    pool,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			m.pool.Release()
			return nil, err
		}
	}

	return m, nil
}

// Release frees the worker pool. The crawler must not be used afterwards.
func (m *MultiCrawler) Release() {
	m.pool.Release()
}

// Crawl fetches the keyword from every engine and returns merged,
// deduplicated records.
func (m *MultiCrawler) Crawl(ctx context.Context, keyword string) ([]*core.Record, error) {
	return m.CrawlWithMonitor(ctx, keyword, nil)
}

// CrawlWithMonitor is Crawl with progress callbacks. Engine failures are
// logged and skipped; the crawl fails only if every engine fails.
func (m *MultiCrawler) CrawlWithMonitor(ctx context.Context, keyword string, monitor Monitor) ([]*core.Record, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if strings.TrimSpace(keyword) == "" {
		return nil, ErrEmptyKeyword
	}

	monitor.Start(keyword)

	// Per-engine buckets keep the merge order stable regardless of which
	// engine finishes first.
	buckets := make([][]Result, len(m.engines))
	errs := make([]error, len(m.engines))

	var wg sync.WaitGroup
	for i, engine := range m.engines {
		wg.Add(1)
		submitErr := m.pool.Submit(func() {
			defer wg.Done()
			monitor.EngineStarted(engine.Name())

			hits, err := engine.Search(ctx, keyword)
			buckets[i] = hits
			errs[i] = err
			monitor.EngineFinished(engine.Name(), len(hits), err)

			if err != nil {
				m.logger.Warn("engine failed", "engine", engine.Name(), "keyword", keyword, "error", err)
			} else {
				m.logger.Debug("engine finished", "engine", engine.Name(), "hits", len(hits))
			}
		})
		if submitErr != nil {
			wg.Done()
			errs[i] = submitErr
		}
	}
	wg.Wait()

	failed := 0
	now := time.Now().UTC()
	var records []*core.Record
	for i, engine := range m.engines {
		if errs[i] != nil {
			failed++
			continue
		}
		for _, hit := range buckets[i] {
			records = append(records, &core.Record{
				Source:    engine.Source(),
				Title:     hit.Title,
				Summary:   hit.Summary,
				URL:       hit.URL,
				FetchedAt: now,
			})
		}
	}
	if failed == len(m.engines) {
		return nil, ErrAllEnginesFailed
	}

	merged := Deduplicate(records)
	monitor.Finish(merged)
	m.logger.Info("crawl complete",
		"keyword", keyword, "raw", len(records), "merged", len(merged), "failedEngines", failed)
	return merged, nil
}
