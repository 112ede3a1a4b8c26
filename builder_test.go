package grouper

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/henriasv/create-student-groups/types"
)

// items builds a roster from "Name:Category" specs.
func items(specs ...string) []types.Item {
	out := make([]types.Item, 0, len(specs))
	for _, s := range specs {
		for i := 0; i < len(s); i++ {
			if s[i] == ':' {
				out = append(out, types.Item{Name: s[:i], Category: s[i+1:]})

				break
			}
		}
	}

	return out
}

// groupNames returns the item names of a group in insertion order.
func groupNames(g types.Group) []string {
	names := make([]string, 0, len(g.Items))
	for _, pl := range g.Items {
		names = append(names, pl.Name)
	}

	return names
}

func TestBuild_Validation(t *testing.T) {
	t.Run("rejects zero capacity", func(t *testing.T) {
		_, err := Build(items("A:CS"), 0)
		require.ErrorIs(t, err, ErrInvalidCapacity)
		require.True(t, IsConfigurationError(err))
	})

	t.Run("rejects negative capacity", func(t *testing.T) {
		_, err := Build(items("A:CS"), -3)
		require.ErrorIs(t, err, ErrInvalidCapacity)
	})

	t.Run("rejects empty item list", func(t *testing.T) {
		_, err := Build(nil, 4)
		require.ErrorIs(t, err, ErrNoItems)
		require.True(t, IsConfigurationError(err))
	})
}

func TestBuild_Invariants(t *testing.T) {
	roster := items(
		"A:CS", "B:CS", "C:CS", "D:CS", "E:CS",
		"F:Math", "G:Math", "H:Math",
		"I:Physics", "J:Physics", "K:Physics", "L:Physics",
		"M:Bio",
	)

	for _, capacity := range []int{1, 2, 3, 4, 5, 13, 20} {
		part, err := Build(roster, capacity, WithSeed(42))
		require.NoError(t, err)

		t.Run("group sizes sum to item count", func(t *testing.T) {
			require.Equal(t, len(roster), part.TotalItems())
		})

		t.Run("no group exceeds capacity", func(t *testing.T) {
			for _, g := range part.Groups {
				require.LessOrEqual(t, g.Size(), capacity, "capacity %d", capacity)
			}
		})

		t.Run("group count is ceil(total/capacity)", func(t *testing.T) {
			want := (len(roster) + capacity - 1) / capacity
			require.Equal(t, want, part.GroupCount())
		})

		t.Run("group indices are 1-based ordinals", func(t *testing.T) {
			for i, g := range part.Groups {
				require.Equal(t, i+1, g.Index)
			}
		})
	}
}

func TestBuild_Categories(t *testing.T) {
	t.Run("categories are the sorted distinct set", func(t *testing.T) {
		part, err := Build(items("A:Physics", "B:CS", "C:Math", "D:CS"), 4, WithSeed(1))
		require.NoError(t, err)
		require.Equal(t, []string{"CS", "Math", "Physics"}, part.Categories)
	})

	t.Run("full coverage when every category is sufficient", func(t *testing.T) {
		// 3 categories x 4 items, capacity 4 -> 3 groups, every count >= 3
		roster := items(
			"A:CS", "B:CS", "C:CS", "D:CS",
			"E:Math", "F:Math", "G:Math", "H:Math",
			"I:Physics", "J:Physics", "K:Physics", "L:Physics",
		)
		part, err := Build(roster, 4, WithSeed(42))
		require.NoError(t, err)
		require.Len(t, part.Groups, 3)
		for _, g := range part.Groups {
			require.Nil(t, g.MissingCategories)
			for _, c := range part.Categories {
				require.True(t, g.HasCategory(c), "group %d should cover %s", g.Index, c)
			}
		}
	})

	t.Run("more categories than capacity degrades instead of failing", func(t *testing.T) {
		part, err := Build(items("A:W", "B:X", "C:Y", "D:Z"), 2, WithSeed(5))
		require.NoError(t, err)
		missingSomewhere := false
		for _, g := range part.Groups {
			require.LessOrEqual(t, g.Size(), 2)
			if len(g.MissingCategories) > 0 {
				missingSomewhere = true
			}
		}
		require.True(t, missingSomewhere, "4 categories cannot all fit in capacity-2 groups")
	})
}

func TestBuild_Determinism(t *testing.T) {
	roster := items(
		"A:CS", "B:CS", "C:CS", "D:Math", "E:Math", "F:Math",
		"G:Physics", "H:Physics", "I:Physics", "J:Bio", "K:Bio", "L:Bio",
	)

	t.Run("same seed yields identical partitions", func(t *testing.T) {
		a, err := Build(roster, 4, WithSeed(42))
		require.NoError(t, err)
		b, err := Build(roster, 4, WithSeed(42))
		require.NoError(t, err)

		require.Equal(t, a, b)
		require.Equal(t, a.Fingerprint(), b.Fingerprint())
	})

	t.Run("different seeds may move items", func(t *testing.T) {
		a, err := Build(roster, 4, WithSeed(1))
		require.NoError(t, err)

		diverged := false
		for seed := uint32(2); seed <= 10; seed++ {
			b, err := Build(roster, 4, WithSeed(seed))
			require.NoError(t, err)
			if b.Fingerprint() != a.Fingerprint() {
				diverged = true

				break
			}
		}
		require.True(t, diverged, "nine alternative seeds should not all reproduce seed 1")
	})

	t.Run("input is never mutated", func(t *testing.T) {
		original := items("A:CS", "B:Math", "C:CS", "D:Math")
		_, err := Build(original, 2, WithSeed(3))
		require.NoError(t, err)
		require.Equal(t, items("A:CS", "B:Math", "C:CS", "D:Math"), original)
	})
}

func TestBuild_Scenarios(t *testing.T) {
	t.Run("six students across three programs at capacity three", func(t *testing.T) {
		roster := items("A:CS", "B:Math", "C:Physics", "D:CS", "E:Math", "F:Physics")
		part, err := Build(roster, 3, WithSeed(1))
		require.NoError(t, err)

		require.Equal(t, 2, part.GroupCount())
		for _, g := range part.Groups {
			require.Equal(t, 3, g.Size())
			require.Nil(t, g.MissingCategories)
			for _, c := range []string{"CS", "Math", "Physics"} {
				require.True(t, g.HasCategory(c))
			}
		}
	})

	t.Run("one CS student among five Math students at capacity two", func(t *testing.T) {
		roster := items("A:CS", "B:Math", "C:Math", "D:Math", "E:Math", "F:Math")
		part, err := Build(roster, 2, WithSeed(1))
		require.NoError(t, err)

		require.Equal(t, 3, part.GroupCount())
		withCS := 0
		for _, g := range part.Groups {
			require.Equal(t, 2, g.Size())
			if g.HasCategory("CS") {
				withCS++
				require.Nil(t, g.MissingCategories)
			} else {
				require.Equal(t, []string{"CS"}, g.MissingCategories)
			}
		}
		require.Equal(t, 1, withCS, "the single CS student covers exactly one group")
	})

	t.Run("single item builds a single group", func(t *testing.T) {
		part, err := Build(items("A:CS"), 4)
		require.NoError(t, err)
		require.Equal(t, 1, part.GroupCount())
		require.Equal(t, []string{"A"}, groupNames(part.Groups[0]))
		require.Nil(t, part.Groups[0].MissingCategories)
	})

	t.Run("capacity one yields singleton groups", func(t *testing.T) {
		part, err := Build(items("A:CS", "B:Math", "C:CS"), 1, WithSeed(9))
		require.NoError(t, err)
		require.Equal(t, 3, part.GroupCount())
		for _, g := range part.Groups {
			require.Equal(t, 1, g.Size())
		}
	})
}

func TestDuplicateIdentities(t *testing.T) {
	t.Run("no duplicates yields nil", func(t *testing.T) {
		require.Nil(t, DuplicateIdentities(items("A:CS", "B:CS", "A:Math")))
	})

	t.Run("same name and category is reported once", func(t *testing.T) {
		dups := DuplicateIdentities(items("A:CS", "B:Math", "A:CS", "A:CS"))
		require.Equal(t, []string{"A (CS)"}, dups)
	})

	t.Run("same name in different categories is not a duplicate", func(t *testing.T) {
		require.Nil(t, DuplicateIdentities(items("A:CS", "A:Math")))
	})
}
