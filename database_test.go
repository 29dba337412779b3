package qsearch

import (
	"context"
	"testing"

	"github.com/poiesic/qsearch/core"
	"github.com/poiesic/qsearch/crawler"
	"github.com/poiesic/qsearch/crawler/mock"
	"github.com/poiesic/qsearch/grover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDatabase(t *testing.T, engines ...crawler.Engine) *Database {
	t.Helper()
	db, err := NewDatabase("", WithInMemory(), WithEngines(engines...))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})
	return db
}

func cannedEngine(results ...crawler.Result) *mock.Engine {
	return &mock.Engine{
		NameValue:   "bing",
		SourceValue: core.SourceBing,
		Results:     results,
	}
}

func TestDatabase_CrawlPersistsAndDeduplicates(t *testing.T) {
	ctx := context.Background()
	engine := cannedEngine(
		crawler.Result{Title: "The Go Programming Language", URL: "https://go.dev", Summary: "home"},
		crawler.Result{Title: "Effective Go", URL: "https://go.dev/doc/effective_go", Summary: "style"},
	)
	db := newTestDatabase(t, engine)

	inserted, err := db.Crawl(ctx, "golang")
	require.NoError(t, err)
	assert.Len(t, inserted, 2)

	// Same results again: nothing new is inserted.
	inserted, err = db.Crawl(ctx, "golang")
	require.NoError(t, err)
	assert.Empty(t, inserted)

	records, err := db.Records(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "The Go Programming Language", records[0].Title)
	assert.Equal(t, "Effective Go", records[1].Title)
}

func TestDatabase_CrawlEmptyKeyword(t *testing.T) {
	db := newTestDatabase(t, cannedEngine())

	_, err := db.Crawl(context.Background(), "  ")
	assert.ErrorIs(t, err, crawler.ErrEmptyKeyword)
}

func TestDatabase_Query(t *testing.T) {
	ctx := context.Background()
	engine := cannedEngine(
		crawler.Result{Title: "Go concurrency patterns", URL: "https://a.example", Summary: "channels"},
		crawler.Result{Title: "Rust ownership", URL: "https://b.example", Summary: "borrow checker"},
	)
	db := newTestDatabase(t, engine)

	_, err := db.Crawl(ctx, "languages")
	require.NoError(t, err)

	hits, err := db.Query(ctx, "concurrency")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Go concurrency patterns", hits[0].Title)

	hits, err = db.Query(ctx, "checker")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Rust ownership", hits[0].Title)
}

func TestDatabase_SearchFindsStoredTitle(t *testing.T) {
	ctx := context.Background()
	engine := cannedEngine(
		crawler.Result{Title: "apple", URL: "https://a.example"},
		crawler.Result{Title: "banana", URL: "https://b.example"},
		crawler.Result{Title: "cherry", URL: "https://c.example"},
		crawler.Result{Title: "damson", URL: "https://d.example"},
		crawler.Result{Title: "elder", URL: "https://e.example"},
	)
	db := newTestDatabase(t, engine)

	_, err := db.Crawl(ctx, "fruit")
	require.NoError(t, err)

	report, err := db.Search(ctx, "cherry", grover.WithSeed(42), grover.WithShots(1000))
	require.NoError(t, err)

	require.True(t, report.Found)
	assert.Equal(t, "cherry", report.Item)
	assert.Equal(t, 2, report.Index)
	assert.False(t, report.Fuzzy)
	require.NotNil(t, report.Record)
	assert.Equal(t, "https://c.example", report.Record.URL)

	// The linear scan agrees on the location.
	assert.True(t, report.Classical.Found)
	assert.Equal(t, report.Index, report.Classical.Index)
	assert.Positive(t, report.Elapsed)
}

func TestDatabase_SearchFuzzyTarget(t *testing.T) {
	ctx := context.Background()
	engine := cannedEngine(
		crawler.Result{Title: "apple", URL: "https://a.example"},
		crawler.Result{Title: "banana", URL: "https://b.example"},
		crawler.Result{Title: "cherry pie recipe", URL: "https://c.example"},
	)
	db := newTestDatabase(t, engine)

	_, err := db.Crawl(ctx, "fruit")
	require.NoError(t, err)

	report, err := db.Search(ctx, "cherry", grover.WithSeed(7))
	require.NoError(t, err)
	require.True(t, report.Found)
	assert.True(t, report.Fuzzy)
	assert.Equal(t, "cherry pie recipe", report.Item)
}

func TestDatabase_SearchValidationPassesThrough(t *testing.T) {
	ctx := context.Background()
	db := newTestDatabase(t, cannedEngine())

	_, err := db.Search(ctx, "anything")
	assert.ErrorIs(t, err, grover.ErrEmptyDatabase)

	engine := cannedEngine(crawler.Result{Title: "only", URL: "https://o.example"})
	db2 := newTestDatabase(t, engine)
	_, err = db2.Crawl(ctx, "one")
	require.NoError(t, err)

	_, err = db2.Search(ctx, "   ")
	assert.ErrorIs(t, err, grover.ErrInvalidTarget)

	_, err = db2.Search(ctx, "missing")
	assert.ErrorIs(t, err, grover.ErrTargetNotFound)
}
