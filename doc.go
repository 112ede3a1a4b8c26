// Package grouper partitions labeled roster items (students tagged with a
// study program) into fixed-capacity groups such that every group contains
// at least one item from every program whenever that is mathematically
// feasible.
//
// The core is a deterministic greedy heuristic, not an optimal assignment
// solver: it guarantees constraint satisfaction only when category counts
// and capacity allow it, and otherwise degrades gracefully by reporting the
// missing categories per group instead of failing.
//
// # Quick Start
//
// Build a partition from a parsed roster:
//
//	import (
//	    grouper "github.com/henriasv/create-student-groups"
//	    "github.com/henriasv/create-student-groups/roster"
//	)
//
//	items, err := roster.Parse(file)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	part, err := grouper.Build(items, 4, grouper.WithSeed(42))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Key Features
//
//   - Category Coverage: Every group receives one representative per program
//     when supply allows; shortages are reported as degraded coverage
//   - Reproducible Shuffles: A 32-bit seed makes the whole operation a
//     deterministic function of the input order
//   - Pinned Items: Locked placements survive repartitions; the pinned subset
//     of a group (cohort) moves together and is never split or merged
//   - All-or-Nothing Failures: Infeasible pin constraints abort before any
//     visible state changes
//
// # Architecture
//
// Data flows through the core in one direction:
//
//	roster rows → Build → groups → pin toggles (caller) → Repartition → CheckCohortIntegrity → groups
//
// Every operation derives a brand-new Partition from its inputs; the core
// never retains references to returned values, so callers may freely toggle
// pin flags between operations.
//
// # Advanced Usage
//
// The Planner wraps the pure operations with logging, metrics, and optional
// snapshot persistence:
//
//	snaps := store.NewMemory()
//	cfg := grouper.DefaultConfig()
//	planner, err := grouper.NewPlanner(&cfg,
//	    grouper.WithLogger(logger),
//	    grouper.WithStore(snaps),
//	)
//
//	part, err := planner.Build(items, 4, grouper.WithSeed(42))
//	err = planner.SaveSnapshot(ctx, "cs101-fall", rawCSV, part)
//
// See the examples/ directory for complete working examples.
package grouper
