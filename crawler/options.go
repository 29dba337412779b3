package crawler

// EngineOption overrides per-engine defaults.
type EngineOption func(*engineOptions)

type engineOptions struct {
	baseURL string
}

// WithBaseURL points an engine at a different host. Used by tests to target
// a local server instead of the live engine.
func WithBaseURL(baseURL string) EngineOption {
	return func(o *engineOptions) { o.baseURL = baseURL }
}

func applyEngineOptions(baseURL *string, opts []EngineOption) {
	var o engineOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.baseURL != "" {
		*baseURL = o.baseURL
	}
}
