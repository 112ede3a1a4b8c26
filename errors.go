package grouper

import "github.com/henriasv/create-student-groups/types"

// Sentinel errors re-exported from the types subpackage.
var (
	// ErrInvalidConfig is returned when the Planner configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrInvalidCapacity is returned when a requested group capacity is not a positive integer.
	ErrInvalidCapacity = types.ErrInvalidCapacity

	// ErrNoItems is returned when there are no items to partition.
	ErrNoItems = types.ErrNoItems

	// ErrUnresolvedColumns is returned when roster headers cannot be mapped to
	// name and category columns and no positional fallback applies.
	ErrUnresolvedColumns = types.ErrUnresolvedColumns

	// ErrEmptyRoster is returned when no usable roster rows remain after
	// filtering blank names and categories.
	ErrEmptyRoster = types.ErrEmptyRoster

	// ErrCohortOverCapacity is returned when a pinned cohort cannot fit intact
	// into any single group at the requested capacity.
	ErrCohortOverCapacity = types.ErrCohortOverCapacity

	// ErrTooManyCohorts is returned when the target group count is smaller
	// than the number of non-empty cohorts.
	ErrTooManyCohorts = types.ErrTooManyCohorts

	// ErrCohortIntegrity is returned when a repartition result is rejected by
	// the cohort integrity checker.
	ErrCohortIntegrity = types.ErrCohortIntegrity

	// ErrSnapshotNotFound is returned when loading a snapshot key that does not exist.
	ErrSnapshotNotFound = types.ErrSnapshotNotFound

	// ErrInvalidSnapshotKey is returned when a snapshot key contains characters
	// the backing store cannot represent.
	ErrInvalidSnapshotKey = types.ErrInvalidSnapshotKey

	// ErrStoreRequired is returned when a snapshot operation is invoked on a
	// Planner constructed without a store.
	ErrStoreRequired = types.ErrStoreRequired
)

// IsConfigurationError reports whether err belongs to the configuration error class.
func IsConfigurationError(err error) bool { return types.IsConfigurationError(err) }

// IsCapacityError reports whether err belongs to the capacity error class.
func IsCapacityError(err error) bool { return types.IsCapacityError(err) }
