package neartree

import (
	"math/rand"

	"github.com/katalvlaran/neartree/metric"
)

// ElementKind identifies the element type a tree stores: fixed-width
// numeric vectors (integer or floating) or fixed-length strings
// (spec.md §3).
type ElementKind uint8

const (
	// KindInteger stores points as []int64 vectors.
	KindInteger ElementKind = iota

	// KindFloating stores points as []float64 vectors.
	KindFloating

	// KindString stores points as fixed-length strings.
	KindString
)

// String renders an ElementKind for error messages and debugging output.
func (k ElementKind) String() string {
	switch k {
	case KindInteger:
		return "Integer"
	case KindFloating:
		return "Floating"
	case KindString:
		return "String"
	default:
		return "ElementKind(?)"
	}
}

// ConfigFlags is the type-and-metric configuration word fixed at tree
// creation (spec.md §6): one ElementKind, one metric.Kind, and an optional
// flip bit, packed into a single bitset the way the original C source packs
// CNEARTREE_TYPE_* | CNEARTREE_FLIP.
type ConfigFlags uint32

const (
	elementShift = 0
	elementBits  = 0x3 // 2 bits: 0..3, covers the 3 ElementKind values

	metricShift = 2
	metricBits  = 0x7 // 3 bits: 0..7, covers the 5 metric.Kind values

	// FlagFlip inverts the tie-break side during insertion (spec.md §4.2):
	// with flip set, equidistant points go to the right side instead of
	// the left.
	FlagFlip ConfigFlags = 1 << 5
)

// NewConfig packs an ElementKind and a metric.Kind into a ConfigFlags word.
// Combine with FlagFlip via bitwise OR to request flip mode:
//
//	flags := neartree.NewConfig(neartree.KindFloating, metric.L2) | neartree.FlagFlip
func NewConfig(kind ElementKind, metricKind metric.Kind) ConfigFlags {
	return ConfigFlags(uint32(kind)&elementBits) | (ConfigFlags(uint32(metricKind)&metricBits) << metricShift)
}

// ElementKind extracts the element-type tag from the configuration word.
func (c ConfigFlags) ElementKind() ElementKind {
	return ElementKind(uint32(c) & elementBits)
}

// MetricKind extracts the metric tag from the configuration word.
func (c ConfigFlags) MetricKind() metric.Kind {
	return metric.Kind((uint32(c) >> metricShift) & metricBits)
}

// Flip reports whether the flip bit is set.
func (c ConfigFlags) Flip() bool {
	return c&FlagFlip != 0
}

// CreateOption customizes tree construction beyond the required
// (dimension, ConfigFlags) pair — currently, the only knob is the source of
// randomness the deferred-insert flush shuffles with.
type CreateOption func(*createConfig)

// createConfig holds the configurable parameters for Create, in the
// functional-options style of builder.BuilderOption
// (builder/config.go: "centralizes common settings... to keep... DRY").
type createConfig struct {
	rng *rand.Rand
}

// newCreateConfig applies defaults, then each CreateOption in order.
func newCreateConfig(opts ...CreateOption) *createConfig {
	cfg := &createConfig{rng: rand.New(rand.NewSource(0))}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSeed seeds the tree's internal deferred-insert shuffle PRNG
// deterministically. The source's test harness seeds with 0 (spec.md §4.2);
// Create defaults to seed 0 when WithSeed/WithRand is not supplied, so
// behavior is reproducible out of the box.
func WithSeed(seed int64) CreateOption {
	return func(cfg *createConfig) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand injects a caller-owned *rand.Rand; a nil r is ignored. Options
// apply in order, so whichever of WithSeed/WithRand comes last sets the
// generator. Passing a distinct generator per tree is what keeps multiple trees in one process
// independent (spec.md §9's redesign of the original's global mutable PRNG).
func WithRand(r *rand.Rand) CreateOption {
	return func(cfg *createConfig) {
		if r != nil {
			cfg.rng = r
		}
	}
}
