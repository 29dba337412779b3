package grover

import (
	"fmt"
	"strings"
)

const (
	// DefaultShots is the number of simulated measurement draws per search.
	DefaultShots = 1024

	// MaxShots bounds the number of draws a single search may request.
	MaxShots = 1 << 20

	// DefaultMaxQubits caps the padded index space at 2^20 states. The
	// amplitude vector costs O(2^n) memory, so searches over larger key
	// lists fail with ErrQubitCeilingExceeded instead of allocating.
	DefaultMaxQubits = 20
)

type config struct {
	shots       int
	adaptive    bool
	seed        int64
	seeded      bool
	maxQubits   int
	damping     float64
	smallRounds int
}

func defaultConfig() config {
	return config{
		shots:       DefaultShots,
		adaptive:    true,
		maxQubits:   DefaultMaxQubits,
		damping:     DefaultDamping,
		smallRounds: DefaultSmallSpaceRounds,
	}
}

// Option configures a single search call. There is no package-level mutable
// configuration.
type Option func(*config)

// WithShots sets the number of measurement draws. Default is DefaultShots.
func WithShots(shots int) Option {
	return func(c *config) { c.shots = shots }
}

// WithAdaptive toggles the adaptive iteration schedule. Default is true.
func WithAdaptive(adaptive bool) Option {
	return func(c *config) { c.adaptive = adaptive }
}

// WithSeed fixes the sampler seed for reproducible distributions.
// Without it each search seeds from the clock.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

// WithMaxQubits overrides the qubit ceiling. Default is DefaultMaxQubits.
func WithMaxQubits(n int) Option {
	return func(c *config) { c.maxQubits = n }
}

// WithDamping overrides the large-space damping factor.
// Default is DefaultDamping.
func WithDamping(damping float64) Option {
	return func(c *config) { c.damping = damping }
}

// WithSmallSpaceRounds overrides the fixed round count for spaces of at most
// 4 states. Default is DefaultSmallSpaceRounds.
func WithSmallSpaceRounds(rounds int) Option {
	return func(c *config) { c.smallRounds = rounds }
}

// Result is the outcome of one search: the best guess plus the complete
// measurement distribution for downstream comparison and diagnostics.
type Result struct {
	// Found reports whether the majority measurement decoded to a real item.
	// It is false when the majority landed in the padding region.
	Found bool

	// Item is the found key; empty when Found is false.
	Item string

	// Index is the found key's position in the input list; -1 when Found is
	// false.
	Index int

	// Fuzzy reports that the target was resolved by substring containment
	// rather than exact equality, meaning a different item than the literal
	// target was marked.
	Fuzzy bool

	// Qubits is n, the width of the basis labels.
	Qubits int

	// SpaceSize is 2^n, the padded index space size.
	SpaceSize int

	// Iterations is the number of amplification rounds that were applied.
	Iterations int

	// Counts maps each observed n-bit basis label to its draw count.
	// The counts sum to exactly the requested shot count.
	Counts map[string]int

	// Probabilities is the final distribution the counts were drawn from,
	// indexed by basis state.
	Probabilities []float64
}

// Search locates target inside keys by simulated amplitude amplification.
//
// The keys are whatever string the caller extracted from its records; the
// search never inspects anything else. Resolution tries exact equality
// first, then the first key containing target as a substring. All validation
// happens before any amplitude state is allocated.
func Search(keys []string, target string, opts ...Option) (*Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(keys) == 0 {
		return nil, ErrEmptyDatabase
	}
	if strings.TrimSpace(target) == "" {
		return nil, ErrInvalidTarget
	}
	if cfg.shots < 1 || cfg.shots > MaxShots {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrShotsOutOfRange, cfg.shots, MaxShots)
	}

	space := newIndexSpace(keys)
	if space.n > cfg.maxQubits {
		return nil, fmt.Errorf("%w: %d keys need %d qubits, ceiling is %d",
			ErrQubitCeilingExceeded, len(keys), space.n, cfg.maxQubits)
	}

	targetIdx, fuzzy, err := space.resolveTarget(target)
	if err != nil {
		return nil, err
	}

	rounds := iterations(space.size, cfg.adaptive, cfg.damping, cfg.smallRounds)
	amps := newSimulator(space.n, uint64(targetIdx)).run(rounds)
	probs := probabilities(amps)
	counts := newSampler(cfg.seed, cfg.seeded).sample(probs, space.n, cfg.shots)

	_, bestIdx := decodeCounts(counts)
	result := &Result{
		Index:         -1,
		Fuzzy:         fuzzy,
		Qubits:        space.n,
		SpaceSize:     space.size,
		Iterations:    rounds,
		Counts:        counts,
		Probabilities: probs,
	}
	if item, ok := space.item(bestIdx); ok {
		result.Found = true
		result.Item = item
		result.Index = bestIdx
	}
	return result, nil
}
