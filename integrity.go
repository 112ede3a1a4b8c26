package grouper

import "github.com/henriasv/create-student-groups/types"

// CheckCohortIntegrity verifies that a repartition preserved every cohort.
//
// A cohort is the set of pinned item identities (name + category) that
// shared one group in the before partition. The check succeeds only if every
// cohort maps completely and injectively to exactly one after-group:
//
//   - no after-group contains pinned identities from more than one cohort
//     (no merge)
//   - no cohort's members are spread across multiple after-groups (no split)
//   - every cohort member is present in its after-group (no loss)
//
// Pinned identities in the after partition that belong to no before-cohort
// are ignored; the check constrains only what was pinned before. A before
// partition with no pinned items passes vacuously.
//
// The check is advisory-but-mandatory: Repartition runs it internally and
// rejects failing results, and callers performing their own pin surgery must
// treat a false result as "reject this repartition", never as a warning.
//
// Parameters:
//   - before: Partition state prior to the repartition
//   - after: Candidate result of the repartition
//
// Returns:
//   - bool: true if every cohort landed intact in exactly one group
func CheckCohortIntegrity(before, after *types.Partition) bool {
	if before == nil {
		return true
	}
	if after == nil {
		return false
	}

	// Collect before-cohorts: identity key -> cohort, plus member counts.
	cohortOf := make(map[string]int)
	members := make(map[int]int)
	for gi, g := range before.Groups {
		for _, pl := range g.Items {
			if pl.Pinned {
				cohortOf[pl.Key()] = gi
				members[gi]++
			}
		}
	}
	if len(members) == 0 {
		return true
	}

	foundIn := make(map[int]int) // cohort -> after-group index
	seen := make(map[int]int)    // cohort -> members found
	for ai, g := range after.Groups {
		groupCohort := -1
		for _, pl := range g.Items {
			if !pl.Pinned {
				continue
			}
			cid, ok := cohortOf[pl.Key()]
			if !ok {
				continue
			}
			if groupCohort == -1 {
				groupCohort = cid
			} else if groupCohort != cid {
				return false // merge: two cohorts share an after-group
			}
			if prevGroup, ok := foundIn[cid]; ok && prevGroup != ai {
				return false // split: cohort spread across after-groups
			}
			foundIn[cid] = ai
			seen[cid]++
		}
	}

	for cid, want := range members {
		if seen[cid] != want {
			return false // loss: cohort member missing from its after-group
		}
	}

	return true
}
