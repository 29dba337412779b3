// Package crawler fetches search results from public web search engines and
// merges them into deduplicated records.
//
// Each Engine scrapes one engine's result pages (Bing, Baidu, Sogou),
// extracting title, summary, and URL per hit. MultiCrawler fans the engines
// out on a worker pool, merges their results in engine order, and drops
// duplicates by (title, url) identity. A failing engine is logged and
// skipped; the crawl only fails when every engine fails.
//
// Requests are rate limited and retried with exponential backoff, since the
// engines throttle aggressive scrapers.
package crawler
