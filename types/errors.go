package types

import "errors"

// Sentinel errors for the create-student-groups core.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap external errors with context using fmt.Errorf("%s: %w", msg, err).
//
// The taxonomy distinguishes configuration errors (bad inputs, never
// retried) from capacity errors (pinned cohorts that cannot be honored at
// the requested capacity). Use IsConfigurationError and IsCapacityError to
// classify without matching individual sentinels.

// Configuration errors - invalid inputs surfaced synchronously.
var (
	// ErrInvalidConfig is returned when the Planner configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidCapacity is returned when a requested group capacity is not a positive integer.
	ErrInvalidCapacity = errors.New("capacity must be a positive integer")

	// ErrNoItems is returned when there are no items to partition.
	ErrNoItems = errors.New("no items to partition")

	// ErrUnresolvedColumns is returned when roster headers cannot be mapped to
	// name and category columns and no positional fallback applies.
	ErrUnresolvedColumns = errors.New("unable to resolve name and category columns")

	// ErrEmptyRoster is returned when no usable rows remain after filtering
	// blank names and categories.
	ErrEmptyRoster = errors.New("roster contains no usable rows")
)

// Capacity errors - pin constraints that cannot be honored. All-or-nothing:
// the repartition aborts before any visible state changes.
var (
	// ErrCohortOverCapacity is returned when a pinned cohort cannot fit intact
	// into any single group at the requested capacity.
	ErrCohortOverCapacity = errors.New("pinned cohort exceeds group capacity")

	// ErrTooManyCohorts is returned when the target group count is smaller
	// than the number of non-empty cohorts, which would force a merge.
	ErrTooManyCohorts = errors.New("more pinned cohorts than target groups")

	// ErrCohortIntegrity is returned when the post-repartition integrity check
	// detects a split or merged cohort. The repartition result is rejected.
	ErrCohortIntegrity = errors.New("cohort integrity check failed")
)

// Store errors - snapshot persistence collaborator errors.
var (
	// ErrSnapshotNotFound is returned when loading a snapshot key that does not exist.
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrInvalidSnapshotKey is returned when a snapshot key contains characters
	// the backing store cannot represent.
	ErrInvalidSnapshotKey = errors.New("invalid snapshot key")

	// ErrStoreRequired is returned when a snapshot operation is invoked on a
	// Planner constructed without a store.
	ErrStoreRequired = errors.New("snapshot store is required")
)

// IsConfigurationError reports whether err belongs to the configuration
// error class: non-positive capacity, empty input, or unresolvable roster
// columns. Configuration errors are surfaced to the caller synchronously and
// never retried automatically.
//
// Parameters:
//   - err: The error to classify
//
// Returns:
//   - bool: true if err wraps a configuration sentinel
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrInvalidConfig) ||
		errors.Is(err, ErrInvalidCapacity) ||
		errors.Is(err, ErrNoItems) ||
		errors.Is(err, ErrUnresolvedColumns) ||
		errors.Is(err, ErrEmptyRoster)
}

// IsCapacityError reports whether err belongs to the capacity error class: a
// pinned cohort that cannot be honored at the requested capacity. Callers
// are expected to prompt for unlocking items or choosing a different
// capacity; the core only signals the condition.
//
// Parameters:
//   - err: The error to classify
//
// Returns:
//   - bool: true if err wraps a capacity sentinel
func IsCapacityError(err error) bool {
	return errors.Is(err, ErrCohortOverCapacity) ||
		errors.Is(err, ErrTooManyCohorts) ||
		errors.Is(err, ErrCohortIntegrity)
}
