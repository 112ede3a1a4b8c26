package grouper

import (
	"fmt"
	"sort"

	"github.com/henriasv/create-student-groups/internal/rng"
	"github.com/henriasv/create-student-groups/types"
)

// cohort is the pinned subset of one group of the previous partition. Its
// members must land together in exactly one target group, never split and
// never merged with another cohort's members.
type cohort struct {
	source  int // 0-based index of the originating group
	members []types.Placement
}

// Repartition recomputes a partition at a new capacity while honoring
// pinned placements.
//
// The algorithm:
//  1. Compute targetGroupCount = max(1, ceil(totalItems / newCapacity)).
//  2. Separate pinned placements into cohorts (one per originating group)
//     and flatten the unpinned items into a pool.
//  3. Reject structurally impossible pin constraints up front: a cohort
//     larger than newCapacity, or more cohorts than target groups.
//  4. Place each cohort into exactly one target slot, preferring its
//     original index when that slot exists and is free, otherwise the next
//     free slot round-robin.
//  5. Fill each group's missing sufficient categories from the shuffled
//     unpinned per-category queues, respecting remaining capacity; an empty
//     queue leaves the category reported missing rather than failing.
//  6. Pool the remaining unpinned items, shuffle, and distribute smallest
//     group first (lowest index on ties), never exceeding newCapacity.
//  7. Gate the result through CheckCohortIntegrity; a failure rejects the
//     whole repartition.
//
// Failures are all-or-nothing: no partially rebuilt partition is ever
// returned, and prev is never mutated. Category sufficiency is recomputed
// against total per-category counts (pinned + unpinned) versus the target
// group count, with the same semantics as Build.
//
// Parameters:
//   - prev: Current partition with pin flags set by the caller
//   - newCapacity: Desired maximum items per group (must be positive)
//   - opts: Per-operation options (WithSeed for reproducible output)
//
// Returns:
//   - *types.Partition: Freshly derived partition honoring all pins
//   - error: ErrInvalidCapacity, ErrNoItems, ErrCohortOverCapacity,
//     ErrTooManyCohorts, or ErrCohortIntegrity
func Repartition(prev *types.Partition, newCapacity int, opts ...OpOption) (*types.Partition, error) {
	// Step 1: Validate inputs and derive the target group count
	if newCapacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", types.ErrInvalidCapacity, newCapacity)
	}
	if prev == nil || prev.TotalItems() == 0 {
		return nil, types.ErrNoItems
	}

	total := prev.TotalItems()
	targetCount := (total + newCapacity - 1) / newCapacity
	if targetCount < 1 {
		targetCount = 1
	}

	// Step 2: Split placements into cohorts and the unpinned pool
	var cohorts []cohort
	var unpinned []types.Item
	for gi, g := range prev.Groups {
		var pinned []types.Placement
		for _, pl := range g.Items {
			if pl.Pinned {
				pinned = append(pinned, pl)
			} else {
				unpinned = append(unpinned, pl.Item)
			}
		}
		if len(pinned) > 0 {
			cohorts = append(cohorts, cohort{source: gi, members: pinned})
		}
	}

	// Step 3: Structural feasibility checks before touching anything
	if len(cohorts) > targetCount {
		return nil, fmt.Errorf("%w: %d cohorts, %d target groups",
			types.ErrTooManyCohorts, len(cohorts), targetCount)
	}
	for _, c := range cohorts {
		if len(c.members) > newCapacity {
			return nil, fmt.Errorf("%w: cohort of %d from group %d, capacity %d",
				types.ErrCohortOverCapacity, len(c.members), c.source+1, newCapacity)
		}
	}

	// Step 4: Place cohorts, same-index first, then round-robin into free slots
	groups := make([][]types.Placement, targetCount)
	hasCohort := make([]bool, targetCount)
	placed := make([]bool, len(cohorts))
	for i, c := range cohorts {
		if c.source < targetCount && !hasCohort[c.source] {
			groups[c.source] = append(groups[c.source], c.members...)
			hasCohort[c.source] = true
			placed[i] = true
		}
	}
	next := 0
	for i, c := range cohorts {
		if placed[i] {
			continue
		}
		for hasCohort[next] {
			next++
		}
		groups[next] = append(groups[next], c.members...)
		hasCohort[next] = true
	}

	// Step 5: Fill category gaps from the shuffled unpinned queues
	categories := partitionCategories(prev)
	counts := make(map[string]int)
	for _, g := range prev.Groups {
		for _, pl := range g.Items {
			counts[pl.Category]++
		}
	}
	sufficient := make(map[string]bool, len(categories))
	for _, c := range categories {
		if counts[c] >= targetCount {
			sufficient[c] = true
		}
	}

	o := applyOpOptions(opts)
	src := o.source()

	queues := make(map[string][]types.Item)
	for _, it := range unpinned {
		queues[it.Category] = append(queues[it.Category], it)
	}
	for _, c := range categories {
		rng.Shuffle(queues[c], src)
	}

	for gi := range groups {
		for _, c := range categories {
			if len(groups[gi]) >= newCapacity {
				break
			}
			if !sufficient[c] || groupHasCategory(groups[gi], c) {
				continue
			}
			q := queues[c]
			if len(q) == 0 {
				// Queue exhausted: leave the category reported missing
				continue
			}
			groups[gi] = append(groups[gi], types.Placement{Item: q[0]})
			queues[c] = q[1:]
		}
	}

	// Step 6: Balance the remaining unpinned items onto the smallest groups
	var pool []types.Item
	for _, c := range categories {
		pool = append(pool, queues[c]...)
	}
	rng.Shuffle(pool, src)
	for _, it := range pool {
		g := smallestGroupWithSpace(groups, newCapacity)
		if g < 0 {
			// Unreachable when the feasibility checks above hold; guard so a
			// future regression fails loudly instead of overfilling a group.
			return nil, fmt.Errorf("%w: no spare capacity for unpinned items",
				types.ErrCohortOverCapacity)
		}
		groups[g] = append(groups[g], types.Placement{Item: it})
	}

	// Step 7: Assemble and gate through the integrity checker
	result := assemblePartition(groups, categories, newCapacity)
	if !CheckCohortIntegrity(prev, result) {
		return nil, types.ErrCohortIntegrity
	}

	return result, nil
}

// partitionCategories returns the partition's category set, recomputing it
// from the placed items when the partition was hand-assembled without one.
func partitionCategories(p *types.Partition) []string {
	if len(p.Categories) > 0 {
		return p.Categories
	}

	seen := make(map[string]bool)
	var categories []string
	for _, g := range p.Groups {
		for _, pl := range g.Items {
			if !seen[pl.Category] {
				seen[pl.Category] = true
				categories = append(categories, pl.Category)
			}
		}
	}
	sort.Strings(categories)

	return categories
}

func groupHasCategory(placements []types.Placement, category string) bool {
	for _, pl := range placements {
		if pl.Category == category {
			return true
		}
	}

	return false
}
