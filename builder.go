package grouper

import (
	"fmt"
	"sort"

	"github.com/henriasv/create-student-groups/internal/rng"
	"github.com/henriasv/create-student-groups/types"
)

// Build partitions items into groups of at most capacity entries,
// guaranteeing one representative per category in every group whenever
// category supply allows it.
//
// The algorithm:
//  1. Bucket items by category; sort categories lexicographically. The
//     sorted order fixes the tie-break order of coverage assignment and is
//     part of the determinism contract.
//  2. Shuffle each category bucket with the (optionally seeded) source. One
//     source instance runs through the whole operation so a single seed
//     drives everything.
//  3. Compute groupCount = ceil(len(items) / capacity).
//  4. Split categories into "sufficient" (count >= groupCount) and "short".
//  5. Sufficient categories: hand one item to every group round-robin, so
//     each group gets exactly one representative while capacity allows.
//  6. Short categories: distribute all items round-robin; groups left
//     without the category report it under MissingCategories.
//  7. Pool every remaining item, shuffle the pool with the same source, and
//     repeatedly append to the smallest group (lowest index on ties) until
//     the pool is exhausted.
//  8. Record per-group missing categories.
//
// Coverage shortfalls degrade gracefully: when categories outnumber capacity
// or a category is short, the build still succeeds and per-group
// MissingCategories report the gaps. Only the two input errors below fail.
//
// Parameters:
//   - items: Roster items to partition (must be non-empty)
//   - capacity: Maximum items per group (must be positive)
//   - opts: Per-operation options (WithSeed for reproducible output)
//
// Returns:
//   - *types.Partition: Freshly built partition; never partially built
//   - error: ErrInvalidCapacity or ErrNoItems, nil otherwise
//
// Example:
//
//	part, err := grouper.Build(items, 3, grouper.WithSeed(42))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, g := range part.Groups {
//	    fmt.Println(g.Index, g.Size(), g.MissingCategories)
//	}
func Build(items []types.Item, capacity int, opts ...OpOption) (*types.Partition, error) {
	// Step 1: Validate inputs
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", types.ErrInvalidCapacity, capacity)
	}
	if len(items) == 0 {
		return nil, types.ErrNoItems
	}

	o := applyOpOptions(opts)
	src := o.source()

	// Step 2: Bucket by category, sort categories, shuffle each bucket with
	// the shared source in sorted-category order
	buckets := make(map[string][]types.Item)
	for _, it := range items {
		buckets[it.Category] = append(buckets[it.Category], it)
	}
	categories := make([]string, 0, len(buckets))
	for c := range buckets {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	for _, c := range categories {
		rng.Shuffle(buckets[c], src)
	}

	// Step 3: Derive the group count
	groupCount := (len(items) + capacity - 1) / capacity
	groups := make([][]types.Placement, groupCount)

	// Step 4: Split categories by sufficiency against the group count
	var sufficient, short []string
	for _, c := range categories {
		if len(buckets[c]) >= groupCount {
			sufficient = append(sufficient, c)
		} else {
			short = append(short, c)
		}
	}

	// Step 5: One representative of each sufficient category per group
	for _, c := range sufficient {
		for g := 0; g < groupCount; g++ {
			if len(buckets[c]) == 0 {
				break
			}
			if len(groups[g]) >= capacity {
				continue
			}
			groups[g] = append(groups[g], types.Placement{Item: buckets[c][0]})
			buckets[c] = buckets[c][1:]
		}
	}

	// Step 6: Short categories round-robin; they cannot cover every group
	for _, c := range short {
		distributeRoundRobin(groups, buckets[c], capacity)
		buckets[c] = nil
	}

	// Step 7: Pool the leftovers, shuffle, and balance onto smallest groups
	var pool []types.Item
	for _, c := range sufficient {
		pool = append(pool, buckets[c]...)
	}
	rng.Shuffle(pool, src)
	for _, it := range pool {
		g := smallestGroupWithSpace(groups, capacity)
		groups[g] = append(groups[g], types.Placement{Item: it})
	}

	// Step 8: Assemble the partition and record per-group coverage gaps
	return assemblePartition(groups, categories, capacity), nil
}

// distributeRoundRobin places items into groups one at a time starting at
// group 0, skipping groups that are already at capacity.
func distributeRoundRobin(groups [][]types.Placement, items []types.Item, capacity int) {
	g := 0
	for _, it := range items {
		for range groups {
			idx := g % len(groups)
			g++
			if len(groups[idx]) < capacity {
				groups[idx] = append(groups[idx], types.Placement{Item: it})

				break
			}
		}
	}
}

// smallestGroupWithSpace returns the index of the smallest group that still
// has spare capacity, breaking ties by lowest index. Returns -1 when every
// group is full.
//
// The "smallest group, lowest index on tie" order is a documented contract:
// it must be preserved exactly for deterministic-seed reproducibility.
func smallestGroupWithSpace(groups [][]types.Placement, capacity int) int {
	best := -1
	for i, g := range groups {
		if len(g) >= capacity {
			continue
		}
		if best == -1 || len(g) < len(groups[best]) {
			best = i
		}
	}

	return best
}

// assemblePartition wraps raw group slices into a Partition, computing the
// missing-category report for every group.
func assemblePartition(groups [][]types.Placement, categories []string, capacity int) *types.Partition {
	part := &types.Partition{
		Capacity:   capacity,
		Categories: categories,
		Groups:     make([]types.Group, len(groups)),
	}
	for i, placements := range groups {
		g := types.Group{Index: i + 1, Items: placements}
		for _, c := range categories {
			if !g.HasCategory(c) {
				g.MissingCategories = append(g.MissingCategories, c)
			}
		}
		part.Groups[i] = g
	}

	return part
}

// DuplicateIdentities returns the identity keys that occur more than once in
// items, in first-seen order.
//
// The core uses (name, category) pairs as identity for pin and cohort
// tracking without enforcing uniqueness. Duplicates make cohort tracking
// ambiguous; they are never silently deduplicated, and callers should
// surface them as a configuration warning (the Planner does).
//
// Parameters:
//   - items: Roster items to inspect
//
// Returns:
//   - []string: Human-readable "name (category)" labels of duplicated identities
func DuplicateIdentities(items []types.Item) []string {
	counts := make(map[string]int, len(items))
	var dups []string
	for _, it := range items {
		counts[it.Key()]++
		if counts[it.Key()] == 2 {
			dups = append(dups, fmt.Sprintf("%s (%s)", it.Name, it.Category))
		}
	}

	return dups
}
