package crawler

import (
	"fmt"
	"time"
)

// Config holds settings shared by all engines.
type Config struct {
	// UserAgent is sent with every request. Engines answer plain bot
	// clients with captcha pages, so a browser-like value is the default.
	UserAgent string

	// Timeout bounds a single page fetch.
	Timeout time.Duration

	// MaxResults caps the total hits collected from one engine.
	MaxResults int

	// MaxPages caps the result pages fetched per engine. Zero means the
	// engine's own default.
	MaxPages int

	// RequestsPerSecond rate-limits page fetches per engine.
	RequestsPerSecond float64

	// MaxRetries is the attempt count for a failing page fetch.
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff between retries.
	RetryDelay time.Duration
}

// DefaultConfig returns the default crawler configuration.
func DefaultConfig() Config {
	return Config{
		UserAgent:         "Mozilla/5.0",
		Timeout:           10 * time.Second,
		MaxResults:        50,
		RequestsPerSecond: 2,
		MaxRetries:        3,
		RetryDelay:        500 * time.Millisecond,
	}
}

// Validate checks the configuration for usable values.
func (c Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidConfig)
	}
	if c.MaxResults < 1 {
		return fmt.Errorf("%w: max results must be positive", ErrInvalidConfig)
	}
	if c.MaxPages < 0 {
		return fmt.Errorf("%w: max pages cannot be negative", ErrInvalidConfig)
	}
	if c.RequestsPerSecond <= 0 {
		return fmt.Errorf("%w: requests per second must be positive", ErrInvalidConfig)
	}
	if c.MaxRetries < 1 {
		return fmt.Errorf("%w: max retries must be positive", ErrInvalidConfig)
	}
	return nil
}
