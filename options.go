package grouper

import (
	"github.com/henriasv/create-student-groups/internal/rng"
	"github.com/henriasv/create-student-groups/store"
	"github.com/henriasv/create-student-groups/types"
)

// Option configures a Planner with optional dependencies.
type Option func(*plannerOptions)

// plannerOptions holds optional Planner configuration.
type plannerOptions struct {
	logger  types.Logger
	metrics types.MetricsCollector
	store   store.Store
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with slog-style key/value pairs)
//
// Returns:
//   - Option: Functional option for NewPlanner
//
// Example:
//
//	logger := logging.NewSlogDefault()
//	planner, _ := grouper.NewPlanner(&cfg, grouper.WithLogger(logger))
func WithLogger(logger types.Logger) Option {
	return func(o *plannerOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewPlanner
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "grouper")
//	planner, _ := grouper.NewPlanner(&cfg, grouper.WithMetrics(collector))
func WithMetrics(metrics types.MetricsCollector) Option {
	return func(o *plannerOptions) {
		o.metrics = metrics
	}
}

// WithStore sets a snapshot store, enabling the Planner's snapshot helpers.
//
// Parameters:
//   - s: Store implementation (e.g., store.NewMemory or store.NewNATSKV)
//
// Returns:
//   - Option: Functional option for NewPlanner
//
// Example:
//
//	kv, _ := store.NewNATSKV(ctx, js, cfg.Snapshots.Bucket, cfg.Snapshots.TTL)
//	planner, _ := grouper.NewPlanner(&cfg, grouper.WithStore(kv))
func WithStore(s store.Store) Option {
	return func(o *plannerOptions) {
		o.store = s
	}
}

// OpOption configures a single build or repartition operation.
type OpOption func(*opOptions)

// opOptions holds per-operation configuration.
type opOptions struct {
	seed *uint32
}

// WithSeed pins the operation's shuffles to a deterministic 32-bit seed.
//
// With a seed, the resulting partition is a bit-for-bit reproducible
// function of the input order. Without one, shuffles use system randomness
// and callers must not assume determinism.
//
// Parameters:
//   - seed: 32-bit seed driving every shuffle of the operation
//
// Returns:
//   - OpOption: Per-operation option for Build and Repartition
func WithSeed(seed uint32) OpOption {
	return func(o *opOptions) {
		o.seed = &seed
	}
}

// applyOpOptions collects per-operation options.
func applyOpOptions(opts []OpOption) opOptions {
	var o opOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// source returns a fresh deterministic source for the operation, or nil for
// system randomness. Each operation owns its source exclusively; it is never
// reused across operations.
func (o opOptions) source() *rng.Source {
	if o.seed == nil {
		return nil
	}

	return rng.New(*o.seed)
}
