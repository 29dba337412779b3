package crawler

import "errors"

var (
	// ErrNoEngines is returned when a MultiCrawler is built without engines.
	ErrNoEngines = errors.New("at least one engine required")

	// ErrAllEnginesFailed is returned when no engine produced results.
	ErrAllEnginesFailed = errors.New("all engines failed")

	// ErrEmptyKeyword is returned for an empty or blank crawl keyword.
	ErrEmptyKeyword = errors.New("keyword cannot be empty")

	// ErrBadStatus is returned when an engine answers with a non-200 status.
	ErrBadStatus = errors.New("unexpected http status")

	// ErrInvalidMaxAttempts is returned for a non-positive retry attempt count.
	ErrInvalidMaxAttempts = errors.New("max attempts must be positive")

	// ErrInvalidConfig indicates a crawler Config failed validation.
	ErrInvalidConfig = errors.New("invalid crawler config")
)
