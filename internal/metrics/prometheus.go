package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/henriasv/create-student-groups/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	builds             *prometheus.CounterVec
	buildDuration      prometheus.Histogram
	repartitions       *prometheus.CounterVec
	repartitionLatency prometheus.Histogram
	groupCount         prometheus.Gauge
	groupFill          prometheus.Histogram
	degradedGroups     prometheus.Gauge
	integrityRejects   prometheus.Counter
	duplicateWarnings  prometheus.Counter
	snapshotOps        *prometheus.HistogramVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "grouper" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "grouper"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.builds = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "builds_total",
			Help:      "Total partition build attempts by result (success|failure).",
		}, []string{"result"})

		p.buildDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "build_duration_seconds",
			Help:      "Latency of partition build operations in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8), // 100us .. ~1.6s
		})

		p.repartitions = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "repartitions_total",
			Help:      "Total constrained repartition attempts by result (success|failure).",
		}, []string{"result"})

		p.repartitionLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "repartition_duration_seconds",
			Help:      "Latency of constrained repartition operations in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		})

		p.groupCount = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "groups_current",
			Help:      "Group count of the most recent partition result.",
		})

		p.groupFill = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "group_fill_ratio",
			Help:      "Observed per-group fill ratios (size/capacity) of partition results.",
			Buckets:   prometheus.LinearBuckets(0.1, 0.1, 10),
		})

		p.degradedGroups = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "degraded_groups_current",
			Help:      "Groups with missing categories in the most recent partition result.",
		})

		p.integrityRejects = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "integrity_rejections_total",
			Help:      "Repartition results rejected by the cohort integrity checker.",
		})

		p.duplicateWarnings = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "planner",
			Name:      "duplicate_identities_total",
			Help:      "Duplicate (name, category) identities detected in input rosters.",
		})

		p.snapshotOps = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "store",
			Name:      "snapshot_op_duration_seconds",
			Help:      "Latency of snapshot store operations in seconds by op (save|load|list).",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{"op"})

		p.reg.MustRegister(p.builds)
		p.reg.MustRegister(p.buildDuration)
		p.reg.MustRegister(p.repartitions)
		p.reg.MustRegister(p.repartitionLatency)
		p.reg.MustRegister(p.groupCount)
		p.reg.MustRegister(p.groupFill)
		p.reg.MustRegister(p.degradedGroups)
		p.reg.MustRegister(p.integrityRejects)
		p.reg.MustRegister(p.duplicateWarnings)
		p.reg.MustRegister(p.snapshotOps)
	})
}

// PlannerMetrics implementation

// RecordBuild records a build attempt and its latency.
func (p *PrometheusCollector) RecordBuild(success bool, duration float64) {
	p.ensureRegistered()
	p.builds.WithLabelValues(resultLabel(success)).Inc()
	p.buildDuration.Observe(duration)
}

// RecordRepartition records a repartition attempt and its latency.
func (p *PrometheusCollector) RecordRepartition(success bool, duration float64) {
	p.ensureRegistered()
	p.repartitions.WithLabelValues(resultLabel(success)).Inc()
	p.repartitionLatency.Observe(duration)
}

// RecordGroupCount sets the group count gauge.
func (p *PrometheusCollector) RecordGroupCount(count int) {
	p.ensureRegistered()
	p.groupCount.Set(float64(count))
}

// RecordGroupFill observes one group's fill ratio.
func (p *PrometheusCollector) RecordGroupFill(ratio float64) {
	p.ensureRegistered()
	p.groupFill.Observe(ratio)
}

// RecordDegradedGroups sets the degraded group gauge.
func (p *PrometheusCollector) RecordDegradedGroups(count int) {
	p.ensureRegistered()
	p.degradedGroups.Set(float64(count))
}

// RecordIntegrityRejection increments the integrity rejection counter.
func (p *PrometheusCollector) RecordIntegrityRejection() {
	p.ensureRegistered()
	p.integrityRejects.Inc()
}

// RecordDuplicateIdentities adds detected duplicates to the counter.
func (p *PrometheusCollector) RecordDuplicateIdentities(count int) {
	p.ensureRegistered()
	p.duplicateWarnings.Add(float64(count))
}

// StoreMetrics implementation

// RecordSnapshotOperation observes a snapshot operation's latency by op.
func (p *PrometheusCollector) RecordSnapshotOperation(operation string, duration float64) {
	p.ensureRegistered()
	p.snapshotOps.WithLabelValues(operation).Observe(duration)
}

func resultLabel(success bool) string {
	if success {
		return "success"
	}

	return "failure"
}
