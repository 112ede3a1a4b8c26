package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// The core itself is synchronous and single-threaded per operation, but a
// collector may be shared by several Planners and must be thread-safe.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	PlannerMetrics
	StoreMetrics
}

// PlannerMetrics defines metrics for build and repartition operations.
type PlannerMetrics interface {
	// RecordBuild records a partition build attempt.
	//
	// Parameters:
	//   - success: true if the build produced a partition, false on error
	//   - duration: Time taken in seconds
	RecordBuild(success bool, duration float64)

	// RecordRepartition records a constrained repartition attempt.
	//
	// Parameters:
	//   - success: true if the repartition produced a partition, false on error
	//   - duration: Time taken in seconds
	RecordRepartition(success bool, duration float64)

	// RecordGroupCount sets the group count of the most recent result (gauge metric).
	RecordGroupCount(count int)

	// RecordGroupFill observes the fill ratio (size/capacity) of one group.
	// Called once per group of a successful result.
	RecordGroupFill(ratio float64)

	// RecordDegradedGroups sets the number of groups with missing categories
	// in the most recent result (gauge metric).
	RecordDegradedGroups(count int)

	// RecordIntegrityRejection records a repartition rejected by the cohort
	// integrity checker.
	RecordIntegrityRejection()

	// RecordDuplicateIdentities records detection of duplicate (name, category)
	// identities in an input roster.
	//
	// Parameters:
	//   - count: Number of duplicated identity keys detected
	RecordDuplicateIdentities(count int)
}

// StoreMetrics defines metrics for snapshot persistence operations.
type StoreMetrics interface {
	// RecordSnapshotOperation records a snapshot store operation.
	//
	// Parameters:
	//   - operation: Operation type ("save", "load", "list")
	//   - duration: Time taken in seconds
	RecordSnapshotOperation(operation string, duration float64)
}
