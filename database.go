// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package qsearch

import (
	"context"
	"log/slog"
	"time"

	"github.com/poiesic/qsearch/classical"
	"github.com/poiesic/qsearch/core"
	"github.com/poiesic/qsearch/crawler"
	"github.com/poiesic/qsearch/grover"
	"github.com/poiesic/qsearch/storage"
	"github.com/poiesic/qsearch/storage/badger"
)

// Database ties the record store, the crawl engines, and the simulated
// search together behind one handle.
type Database struct {
	backend *badger.Backend
	records storage.RecordRepository
	crawler *crawler.MultiCrawler
	logger  *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	inMemory    bool
	crawlConfig crawler.Config
	engines     []crawler.Engine
	logger      *slog.Logger
}

// WithInMemory keeps all records in memory instead of on disk.
func WithInMemory() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

// WithCrawlConfig replaces the default crawl configuration. Ignored when
// WithEngines is also given.
func WithCrawlConfig(cfg crawler.Config) DatabaseOption {
	return func(o *databaseOptions) {
		o.crawlConfig = cfg
	}
}

// WithEngines replaces the default Bing, Baidu and Sogou engines.
func WithEngines(engines ...crawler.Engine) DatabaseOption {
	return func(o *databaseOptions) {
		o.engines = engines
	}
}

// WithDatabaseLogger sets a custom logger.
// Default is slog.Default().
func WithDatabaseLogger(logger *slog.Logger) DatabaseOption {
	return func(o *databaseOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	// Apply options
	options := &databaseOptions{
		crawlConfig: crawler.DefaultConfig(),
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if err := options.crawlConfig.Validate(); err != nil {
		return nil, err
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	// Create record repository
	records, err := badger.NewRecordRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	engines := options.engines
	if len(engines) == 0 {
		engines = []crawler.Engine{
			crawler.NewBing(options.crawlConfig),
			crawler.NewBaidu(options.crawlConfig),
			crawler.NewSogou(options.crawlConfig),
		}
	}
	multi, err := crawler.NewMultiCrawler(engines, crawler.WithLogger(options.logger))
	if err != nil {
		records.Close()
		backend.Close()
		return nil, err
	}

	return &Database{
		backend: backend,
		records: records,
		crawler: multi,
		logger:  options.logger,
	}, nil
}

func (db *Database) Close() error {
	db.crawler.Release()

	if err := db.records.Close(); err != nil {
		db.logger.Error("error closing record repository", "err", err)
		return err
	}
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) RecordRepository() storage.RecordRepository {
	return db.records
}

// Crawl fetches the keyword from every engine and persists the merged
// results. Returns the records that were newly inserted; records whose
// (title, url) identity is already stored are skipped.
func (db *Database) Crawl(ctx context.Context, keyword string) ([]*core.Record, error) {
	return db.CrawlWithMonitor(ctx, keyword, nil)
}

// CrawlWithMonitor is Crawl with progress callbacks.
func (db *Database) CrawlWithMonitor(ctx context.Context, keyword string, monitor crawler.Monitor) ([]*core.Record, error) {
	merged, err := db.crawler.CrawlWithMonitor(ctx, keyword, monitor)
	if err != nil {
		return nil, err
	}

	inserted, err := db.records.AddRecords(ctx, merged...)
	if err != nil {
		return nil, err
	}
	db.logger.Info("crawl persisted",
		"keyword", keyword, "fetched", len(merged), "inserted", len(inserted))
	return inserted, nil
}

// Records returns every stored record in insertion order.
func (db *Database) Records(ctx context.Context) ([]*core.Record, error) {
	return db.records.ListRecords(ctx)
}

// Query returns stored records whose title or summary contains the keyword.
func (db *Database) Query(ctx context.Context, keyword string) ([]*core.Record, error) {
	return db.records.QueryRecords(ctx, keyword)
}

// SearchReport is the outcome of one search over the stored records, with a
// timed linear scan alongside for comparison.
type SearchReport struct {
	*grover.Result

	// Record is the stored record the found item belongs to; nil when the
	// search did not land on a real item.
	Record *core.Record

	// Elapsed is the wall time of the simulated search.
	Elapsed time.Duration

	// Classical is a linear scan over the same keys for the same target.
	Classical classical.Baseline
}

// Search runs the amplitude amplification search over the stored records,
// using titles as the search keys. Validation errors from the underlying
// search pass through untouched.
func (db *Database) Search(ctx context.Context, target string, opts ...grover.Option) (*SearchReport, error) {
	records, err := db.records.ListRecords(ctx)
	if err != nil {
		return nil, err
	}

	keys := make([]string, len(records))
	for i, record := range records {
		keys[i] = record.Title
	}

	start := time.Now()
	result, err := grover.Search(keys, target, opts...)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	report := &SearchReport{
		Result:    result,
		Elapsed:   elapsed,
		Classical: classical.Measure(keys, result.Item),
	}
	if result.Found {
		report.Record = records[result.Index]
	}

	db.logger.Info("search finished",
		"target", target, "found", result.Found, "item", result.Item,
		"iterations", result.Iterations, "elapsed", elapsed)
	return report, nil
}
