package crawler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/time/rate"
)

// fetcher performs rate-limited, retried page fetches and parses the body
// into an HTML document tree. One fetcher is shared by all pages of an
// engine, so the rate limit applies per engine.
type fetcher struct {
	client     *http.Client
	limiter    *rate.Limiter
	userAgent  string
	maxRetries int
	retryDelay time.Duration
	logger     *slog.Logger
}

func newFetcher(cfg Config, engine string) *fetcher {
	return &fetcher{
		client:     &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
		userAgent:  cfg.UserAgent,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		logger:     slog.Default().With("component", "crawler", "engine", engine),
	}
}

// get fetches url and returns the parsed document root.
func (f *fetcher) get(ctx context.Context, url string) (*html.Node, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var doc *html.Node
	err := retryWithBackoff(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		req.Header.Set("User-Agent", f.userAgent)

		resp, err := f.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("%w: %d for %s", ErrBadStatus, resp.StatusCode, url)
		}

		doc, err = html.Parse(resp.Body)
		return err
	}, f.maxRetries, f.retryDelay, f.logger)
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// retryWithBackoff retries an operation with exponential backoff.
// The base delay doubles on each retry. Returns the error from the last
// attempt if all attempts fail.
func retryWithBackoff(ctx context.Context, operation func() error, maxAttempts int, baseDelay time.Duration, logger *slog.Logger) error {
	if maxAttempts <= 0 {
		return ErrInvalidMaxAttempts
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		lastErr = operation()
		if lastErr == nil {
			if attempt > 1 {
				logger.Debug("fetch succeeded after retry", "attempt", attempt)
			}
			return nil
		}

		logger.Debug("fetch failed, will retry",
			"attempt", attempt, "maxAttempts", maxAttempts, "error", lastErr)

		if attempt == maxAttempts {
			break
		}

		delay := baseDelay
		for i := 1; i < attempt; i++ {
			delay *= 2
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return lastErr
}
