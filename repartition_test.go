package grouper

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/henriasv/create-student-groups/types"
)

// pinGroup marks every placement of the 0-based group as pinned.
func pinGroup(part *types.Partition, group int) {
	for i := range part.Groups[group].Items {
		part.Groups[group].Items[i].Pinned = true
	}
}

func mustBuild(t *testing.T, roster []types.Item, capacity int, seed uint32) *types.Partition {
	t.Helper()
	part, err := Build(roster, capacity, WithSeed(seed))
	require.NoError(t, err)

	return part
}

func TestRepartition_Validation(t *testing.T) {
	prev := mustBuild(t, items("A:CS", "B:Math"), 2, 1)

	t.Run("rejects non-positive capacity", func(t *testing.T) {
		_, err := Repartition(prev, 0)
		require.ErrorIs(t, err, ErrInvalidCapacity)

		_, err = Repartition(prev, -1)
		require.ErrorIs(t, err, ErrInvalidCapacity)
	})

	t.Run("rejects nil partition", func(t *testing.T) {
		_, err := Repartition(nil, 2)
		require.ErrorIs(t, err, ErrNoItems)
	})

	t.Run("rejects empty partition", func(t *testing.T) {
		_, err := Repartition(&types.Partition{Capacity: 2}, 2)
		require.ErrorIs(t, err, ErrNoItems)
	})
}

func TestRepartition_StructuralErrors(t *testing.T) {
	t.Run("cohort larger than new capacity", func(t *testing.T) {
		prev := mustBuild(t, items("A:CS", "B:CS", "C:CS", "D:CS", "E:CS"), 5, 1)
		require.Equal(t, 1, prev.GroupCount())
		pinGroup(prev, 0)

		_, err := Repartition(prev, 4)
		require.ErrorIs(t, err, ErrCohortOverCapacity)
		require.True(t, IsCapacityError(err))
		require.ErrorContains(t, err, "from group 1")
	})

	t.Run("more cohorts than target groups", func(t *testing.T) {
		prev := mustBuild(t, items("A:CS", "B:CS", "C:CS", "D:CS", "E:CS", "F:CS"), 2, 1)
		require.Equal(t, 3, prev.GroupCount())
		for g := range prev.Groups {
			prev.Groups[g].Items[0].Pinned = true
		}

		// Capacity 6 collapses everything into one target group, which cannot
		// hold three separate cohorts.
		_, err := Repartition(prev, 6)
		require.ErrorIs(t, err, ErrTooManyCohorts)
		require.True(t, IsCapacityError(err))
	})
}

func TestRepartition_Invariants(t *testing.T) {
	roster := items(
		"A:CS", "B:CS", "C:CS", "D:Math", "E:Math", "F:Math",
		"G:Physics", "H:Physics", "I:Physics",
	)
	prev := mustBuild(t, roster, 3, 42)
	pinGroup(prev, 0)

	part, err := Repartition(prev, 3, WithSeed(7))
	require.NoError(t, err)

	t.Run("item multiset is preserved", func(t *testing.T) {
		require.Equal(t, prev.TotalItems(), part.TotalItems())

		want := make(map[string]int)
		for _, it := range roster {
			want[it.Key()]++
		}
		got := make(map[string]int)
		for _, g := range part.Groups {
			for _, pl := range g.Items {
				got[pl.Key()]++
			}
		}
		require.Equal(t, want, got)
	})

	t.Run("no group exceeds the new capacity", func(t *testing.T) {
		for _, g := range part.Groups {
			require.LessOrEqual(t, g.Size(), 3)
		}
	})

	t.Run("categories carry over", func(t *testing.T) {
		require.Equal(t, prev.Categories, part.Categories)
	})

	t.Run("cohort integrity holds", func(t *testing.T) {
		require.True(t, CheckCohortIntegrity(prev, part))
	})

	t.Run("previous partition is not mutated", func(t *testing.T) {
		before := prev.Clone()
		_, err := Repartition(prev, 4, WithSeed(3))
		require.NoError(t, err)
		require.Equal(t, before, prev)
	})
}

func TestRepartition_CohortPlacement(t *testing.T) {
	roster := items("A:CS", "B:CS", "C:Math", "D:Math", "E:Physics", "F:Physics")

	t.Run("cohort keeps its group index when the slot survives", func(t *testing.T) {
		prev := mustBuild(t, roster, 3, 1)
		require.Equal(t, 2, prev.GroupCount())
		pinGroup(prev, 1)
		wantKeys := make(map[string]bool)
		for _, pl := range prev.Groups[1].Items {
			wantKeys[pl.Key()] = true
		}

		part, err := Repartition(prev, 3, WithSeed(2))
		require.NoError(t, err)

		// Same capacity, same group count: the cohort stays in group 2.
		got := part.Groups[1]
		for key := range wantKeys {
			found := false
			for _, pl := range got.Items {
				if pl.Key() == key {
					found = true
					require.True(t, pl.Pinned, "pin flag must survive repartitioning")
				}
			}
			require.True(t, found, "cohort member %s left group 2", key)
		}
	})

	t.Run("cohort from a vanished group lands in the first free slot", func(t *testing.T) {
		prev := mustBuild(t, roster, 2, 1)
		require.Equal(t, 3, prev.GroupCount())
		pinGroup(prev, 2)
		member := prev.Groups[2].Items[0].Key()

		// Capacity 3 shrinks to two groups, so index 2 no longer exists.
		part, err := Repartition(prev, 3, WithSeed(2))
		require.NoError(t, err)
		require.Equal(t, 2, part.GroupCount())
		require.True(t, CheckCohortIntegrity(prev, part))

		found := false
		for _, pl := range part.Groups[0].Items {
			if pl.Key() == member {
				found = true
			}
		}
		require.True(t, found, "displaced cohort should round-robin into group 1")
	})

	t.Run("growth keeps a pinned singleton in place", func(t *testing.T) {
		prev := mustBuild(t, roster, 3, 1)
		prev.Groups[0].Items[0].Pinned = true
		pinnedKey := prev.Groups[0].Items[0].Key()

		part, err := Repartition(prev, 2, WithSeed(9))
		require.NoError(t, err)
		require.Equal(t, 3, part.GroupCount())

		found := false
		for _, pl := range part.Groups[0].Items {
			if pl.Key() == pinnedKey {
				found = true
			}
		}
		require.True(t, found)
		require.True(t, CheckCohortIntegrity(prev, part))
	})
}

func TestRepartition_Coverage(t *testing.T) {
	t.Run("sufficient categories cover every target group", func(t *testing.T) {
		roster := items(
			"A:CS", "B:CS", "C:CS", "D:CS",
			"E:Math", "F:Math", "G:Math", "H:Math",
		)
		prev := mustBuild(t, roster, 4, 1)

		part, err := Repartition(prev, 2, WithSeed(4))
		require.NoError(t, err)
		require.Equal(t, 4, part.GroupCount())
		for _, g := range part.Groups {
			require.Nil(t, g.MissingCategories)
			require.True(t, g.HasCategory("CS"))
			require.True(t, g.HasCategory("Math"))
		}
	})

	t.Run("short categories are reported missing, not fatal", func(t *testing.T) {
		roster := items("A:CS", "B:Math", "C:Math", "D:Math", "E:Math", "F:Math")
		prev := mustBuild(t, roster, 3, 1)

		part, err := Repartition(prev, 2, WithSeed(4))
		require.NoError(t, err)
		require.Equal(t, 3, part.GroupCount())

		withCS := 0
		for _, g := range part.Groups {
			if g.HasCategory("CS") {
				withCS++
			} else {
				require.Equal(t, []string{"CS"}, g.MissingCategories)
			}
		}
		require.Equal(t, 1, withCS)
	})
}

func TestRepartition_Determinism(t *testing.T) {
	roster := items(
		"A:CS", "B:CS", "C:Math", "D:Math", "E:Physics", "F:Physics",
		"G:CS", "H:Math", "I:Physics",
	)
	prev := mustBuild(t, roster, 3, 42)
	pinGroup(prev, 1)

	a, err := Repartition(prev, 3, WithSeed(11))
	require.NoError(t, err)
	b, err := Repartition(prev, 3, WithSeed(11))
	require.NoError(t, err)

	require.Equal(t, a, b)
	require.Equal(t, a.Fingerprint(), b.Fingerprint())
}
