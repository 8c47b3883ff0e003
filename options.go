package hnsw

import (
	"fmt"
	"math"
)

// Params holds the tunable construction and search parameters from
// spec.md §3. Build always starts from DefaultParams and applies
// Options on top, the same functional-options shape the teacher uses
// for its wider configuration surface.
type Params struct {
	m                                  int
	levelLambda                        float64
	efConstruction                     int
	heuristic                          bool
	keepPrunedConnections              bool
	expandBestSelection                bool
	enableDistanceCacheForConstruction bool
	cacheForm                          CacheForm
	logger                             *Logger
}

// DefaultParams returns the parameter set spec.md §3 names as default:
// M=10, levelLambda=1/ln(M), efConstruction=200, heuristic selection,
// pruned-connection fallback on, no candidate pre-expansion, distance
// cache on.
func DefaultParams() Params {
	const m = 10

	return Params{
		m:                                  m,
		levelLambda:                        1 / math.Log(float64(m)),
		efConstruction:                     200,
		heuristic:                          true,
		keepPrunedConnections:              true,
		expandBestSelection:                false,
		enableDistanceCacheForConstruction: true,
		cacheForm:                          CacheFormAuto,
		logger:                             NoopLogger(),
	}
}

func defaultParams() Params { return DefaultParams() }

// validate checks the invariants spec.md §7 names as InvalidParameters
// conditions.
func (p Params) validate() error {
	if p.m <= 0 {
		return fmt.Errorf("%w: M must be positive, got %d", ErrInvalidParameters, p.m)
	}

	if p.efConstruction <= 0 {
		return fmt.Errorf("%w: efConstruction must be positive, got %d", ErrInvalidParameters, p.efConstruction)
	}

	if p.levelLambda <= 0 {
		return fmt.Errorf("%w: levelLambda must be positive, got %g", ErrInvalidParameters, p.levelLambda)
	}

	return nil
}

// Option configures Build.
type Option func(*Params)

// WithM sets the target degree on layers above 0; Mmax0 is always 2*M
// (spec.md §3). For M > 1 it also moves levelLambda to 1/ln(M), unless
// levelLambda no longer holds the 1/ln value of the previous M (i.e.
// WithLevelLambda has already set it).
func WithM(m int) Option {
	return func(p *Params) {
		if m > 1 && p.levelLambda == 1/math.Log(float64(p.m)) {
			p.levelLambda = 1 / math.Log(float64(m))
		}
		p.m = m
	}
}

// WithLevelLambda overrides the exponential layer-distribution scale.
// The default, 1/ln(M), is what spec.md §3 names; this option exists
// for callers who want to decouple the two.
func WithLevelLambda(lambda float64) Option {
	return func(p *Params) { p.levelLambda = lambda }
}

// WithEFConstruction sets the candidate-list width used during Build.
func WithEFConstruction(ef int) Option {
	return func(p *Params) { p.efConstruction = ef }
}

// WithSimpleSelection switches neighbor selection to SelectSimple
// (Algorithm 3: the M(layer) closest candidates, no diversity pass).
func WithSimpleSelection() Option {
	return func(p *Params) { p.heuristic = false }
}

// WithHeuristicSelection switches neighbor selection to
// SelectHeuristic (Algorithm 4). This is the default.
func WithHeuristicSelection() Option {
	return func(p *Params) { p.heuristic = true }
}

// WithKeepPrunedConnections controls whether candidates the heuristic
// selector rejects are kept in reserve to top R up to M(layer) if the
// diversity scan didn't select enough (spec.md §4.4).
func WithKeepPrunedConnections(keep bool) Option {
	return func(p *Params) { p.keepPrunedConnections = keep }
}

// WithExpandBestSelection controls whether the heuristic selector
// augments its candidate pool with each candidate's existing layer
// neighbors before scanning (spec.md §4.4).
func WithExpandBestSelection(expand bool) Option {
	return func(p *Params) { p.expandBestSelection = expand }
}

// WithDistanceCache enables or disables the symmetric pairwise
// distance cache during construction (spec.md §3,
// enableDistanceCacheForConstruction).
func WithDistanceCache(enabled bool) Option {
	return func(p *Params) { p.enableDistanceCacheForConstruction = enabled }
}

// WithDistanceCacheForm forces the distance cache's storage strategy
// instead of letting it auto-select by item count (spec.md §4.1).
func WithDistanceCacheForm(form CacheForm) Option {
	return func(p *Params) { p.cacheForm = form }
}

// WithLogger attaches a Logger to the Index being built. Pass nil to
// disable logging entirely (equivalent to the default, NoopLogger).
func WithLogger(l *Logger) Option {
	return func(p *Params) {
		if l == nil {
			l = NoopLogger()
		}
		p.logger = l
	}
}

// sampleLevel draws maxLayer(v) = floor(-ln(U) * levelLambda) for a
// freshly created node, where U ~ Uniform(0,1] (spec.md §3, Invariant
// 5). rng.Float64() returns a value in [0,1); the guard below maps the
// zero case to the smallest representable positive float rather than
// letting -ln(0) produce +Inf.
func sampleLevel(rng RNG, levelLambda float64) int {
	u := rng.Float64()
	if u <= 0 {
		u = math.SmallestNonzeroFloat64
	}

	return int(math.Floor(-math.Log(u) * levelLambda))
}
