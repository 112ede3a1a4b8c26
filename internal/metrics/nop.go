// Package metrics provides MetricsCollector implementations for the
// create-student-groups library.
package metrics

import "github.com/henriasv/create-student-groups/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external metrics
// collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
//
// Example:
//
//	planner, _ := grouper.NewPlanner(&cfg, grouper.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// PlannerMetrics implementation

// RecordBuild discards the observation.
func (n *NopMetrics) RecordBuild(_ bool, _ float64) {}

// RecordRepartition discards the observation.
func (n *NopMetrics) RecordRepartition(_ bool, _ float64) {}

// RecordGroupCount discards the observation.
func (n *NopMetrics) RecordGroupCount(_ int) {}

// RecordGroupFill discards the observation.
func (n *NopMetrics) RecordGroupFill(_ float64) {}

// RecordDegradedGroups discards the observation.
func (n *NopMetrics) RecordDegradedGroups(_ int) {}

// RecordIntegrityRejection discards the observation.
func (n *NopMetrics) RecordIntegrityRejection() {}

// RecordDuplicateIdentities discards the observation.
func (n *NopMetrics) RecordDuplicateIdentities(_ int) {}

// StoreMetrics implementation

// RecordSnapshotOperation discards the observation.
func (n *NopMetrics) RecordSnapshotOperation(_ string, _ float64) {}
