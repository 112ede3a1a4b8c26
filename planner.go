package grouper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/henriasv/create-student-groups/internal/logger"
	"github.com/henriasv/create-student-groups/internal/metrics"
	"github.com/henriasv/create-student-groups/roster"
	"github.com/henriasv/create-student-groups/store"
	"github.com/henriasv/create-student-groups/types"
)

// Planner wraps the pure core operations (Build, Repartition) with
// configuration defaults, duplicate-identity warnings, structured logging,
// metrics, and optional snapshot persistence.
//
// A Planner holds no partition state: every operation takes all inputs as
// parameters and returns a brand-new Partition, so a single Planner can be
// shared across datasets.
type Planner struct {
	cfg     Config
	logger  types.Logger
	metrics types.MetricsCollector
	store   store.Store
}

// NewPlanner creates a Planner from the given configuration.
//
// Missing configuration values are filled with defaults before validation.
// A nil cfg uses DefaultConfig entirely.
//
// Parameters:
//   - cfg: Planner configuration (defaults applied in place, cfg not retained)
//   - opts: Optional dependencies (WithLogger, WithMetrics, WithStore)
//
// Returns:
//   - *Planner: Ready-to-use planner
//   - error: ErrInvalidConfig when validation fails
//
// Example:
//
//	cfg := grouper.DefaultConfig()
//	planner, err := grouper.NewPlanner(&cfg, grouper.WithLogger(myLogger))
func NewPlanner(cfg *Config, opts ...Option) (*Planner, error) {
	if cfg == nil {
		defaults := DefaultConfig()
		cfg = &defaults
	}
	SetDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	o := plannerOptions{
		logger:  logger.NewNop(),
		metrics: metrics.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return &Planner{
		cfg:     *cfg,
		logger:  o.logger,
		metrics: o.metrics,
		store:   o.store,
	}, nil
}

// ParseRoster parses CSV roster text using the configured column aliases.
//
// Parameters:
//   - r: Roster CSV input
//
// Returns:
//   - []types.Item: Parsed items with blank rows dropped
//   - error: Parse or configuration error (see roster.Parse)
func (p *Planner) ParseRoster(r io.Reader) ([]types.Item, error) {
	items, err := roster.Parse(r,
		roster.WithNameAliases(p.cfg.Roster.NameAliases...),
		roster.WithCategoryAliases(p.cfg.Roster.CategoryAliases...),
	)
	if err != nil {
		p.logger.Error("roster parse failed", "error", err)

		return nil, err
	}
	p.logger.Debug("roster parsed", "items", len(items))

	return items, nil
}

// Build builds a first partition from scratch.
//
// A non-positive capacity falls back to the configured DefaultCapacity.
// Duplicate (name, category) identities are detected before building and
// surfaced as a warning; they are never deduplicated.
//
// Parameters:
//   - items: Roster items to partition
//   - capacity: Maximum items per group (<= 0 uses the configured default)
//   - opts: Per-operation options (WithSeed)
//
// Returns:
//   - *types.Partition: Freshly built partition
//   - error: Configuration error from the core builder
func (p *Planner) Build(items []types.Item, capacity int, opts ...OpOption) (*types.Partition, error) {
	if capacity <= 0 {
		capacity = p.cfg.DefaultCapacity
	}

	p.warnDuplicates(items)

	start := time.Now()
	part, err := Build(items, capacity, opts...)
	p.metrics.RecordBuild(err == nil, time.Since(start).Seconds())
	if err != nil {
		p.logger.Error("partition build failed", "items", len(items), "capacity", capacity, "error", err)

		return nil, err
	}

	p.observeResult(part)
	p.logger.Info("partition built",
		"items", len(items),
		"capacity", capacity,
		"groups", part.GroupCount(),
		"fingerprint", part.Fingerprint(),
	)

	return part, nil
}

// Repartition recomputes a partition at a new capacity while honoring pins.
//
// Parameters:
//   - prev: Current partition with pin flags set by the caller
//   - newCapacity: Desired capacity (<= 0 uses the configured default)
//   - opts: Per-operation options (WithSeed)
//
// Returns:
//   - *types.Partition: Freshly derived partition
//   - error: Configuration or capacity error from the core repartitioner
func (p *Planner) Repartition(prev *types.Partition, newCapacity int, opts ...OpOption) (*types.Partition, error) {
	if newCapacity <= 0 {
		newCapacity = p.cfg.DefaultCapacity
	}

	start := time.Now()
	part, err := Repartition(prev, newCapacity, opts...)
	p.metrics.RecordRepartition(err == nil, time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, ErrCohortIntegrity) {
			p.metrics.RecordIntegrityRejection()
		}
		p.logger.Error("repartition failed", "newCapacity", newCapacity, "error", err)

		return nil, err
	}

	p.observeResult(part)
	p.logger.Info("repartition complete",
		"newCapacity", newCapacity,
		"groups", part.GroupCount(),
		"fingerprint", part.Fingerprint(),
	)

	return part, nil
}

// SaveSnapshot persists a partition under a user-chosen label.
//
// Requires a store injected via WithStore.
//
// Parameters:
//   - ctx: Context for cancellation and deadline
//   - label: User-chosen snapshot key
//   - rawRoster: Original roster text the partition was built from (may be empty)
//   - part: Partition to persist, including pin flags
//
// Returns:
//   - error: ErrStoreRequired without a store, otherwise store failure
func (p *Planner) SaveSnapshot(ctx context.Context, label, rawRoster string, part *types.Partition) error {
	if p.store == nil {
		return ErrStoreRequired
	}

	start := time.Now()
	err := p.store.Save(ctx, label, &store.Snapshot{
		Label:     label,
		RawRoster: rawRoster,
		SavedAt:   time.Now().UTC(),
		Partition: part,
	})
	p.metrics.RecordSnapshotOperation("save", time.Since(start).Seconds())
	if err != nil {
		p.logger.Error("snapshot save failed", "label", label, "error", err)

		return err
	}
	p.logger.Info("snapshot saved", "label", label, "groups", part.GroupCount())

	return nil
}

// LoadSnapshot retrieves a snapshot previously saved under label.
//
// Returns:
//   - *store.Snapshot: The stored snapshot
//   - error: ErrStoreRequired without a store, types.ErrSnapshotNotFound for
//     unknown labels, otherwise store failure
func (p *Planner) LoadSnapshot(ctx context.Context, label string) (*store.Snapshot, error) {
	if p.store == nil {
		return nil, ErrStoreRequired
	}

	start := time.Now()
	snap, err := p.store.Load(ctx, label)
	p.metrics.RecordSnapshotOperation("load", time.Since(start).Seconds())
	if err != nil {
		p.logger.Error("snapshot load failed", "label", label, "error", err)

		return nil, err
	}

	return snap, nil
}

// ListSnapshots returns the labels of all saved snapshots.
//
// Returns:
//   - []string: Labels in lexicographic order
//   - error: ErrStoreRequired without a store, otherwise store failure
func (p *Planner) ListSnapshots(ctx context.Context) ([]string, error) {
	if p.store == nil {
		return nil, ErrStoreRequired
	}

	start := time.Now()
	keys, err := p.store.List(ctx)
	p.metrics.RecordSnapshotOperation("list", time.Since(start).Seconds())
	if err != nil {
		p.logger.Error("snapshot list failed", "error", err)

		return nil, err
	}

	return keys, nil
}

// warnDuplicates surfaces duplicate identities without deduplicating them.
func (p *Planner) warnDuplicates(items []types.Item) {
	dups := DuplicateIdentities(items)
	if len(dups) == 0 {
		return
	}
	p.metrics.RecordDuplicateIdentities(len(dups))
	p.logger.Warn("duplicate item identities detected; pin and cohort tracking may be ambiguous",
		"count", len(dups),
		"identities", dups,
	)
}

// observeResult records gauges and per-group observations for a successful result.
func (p *Planner) observeResult(part *types.Partition) {
	p.metrics.RecordGroupCount(part.GroupCount())
	degraded := 0
	for _, g := range part.Groups {
		p.metrics.RecordGroupFill(float64(g.Size()) / float64(part.Capacity))
		if len(g.MissingCategories) > 0 {
			degraded++
		}
	}
	p.metrics.RecordDegradedGroups(degraded)
	if degraded > 0 {
		p.logger.Warn("degraded coverage: some groups are missing categories", "degradedGroups", degraded)
	}
}
