package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/henriasv/create-student-groups/types"
)

func samplePartition() *types.Partition {
	return &types.Partition{
		Capacity:   2,
		Categories: []string{"CS", "Math"},
		Groups: []types.Group{
			{
				Index: 1,
				Items: []types.Placement{
					{Item: types.Item{Name: "Alice", Category: "CS"}, Pinned: true},
					{Item: types.Item{Name: "Bob", Category: "Math"}},
				},
			},
		},
	}
}

func TestMemory_SaveLoad(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	snap := &Snapshot{
		Label:     "week-1",
		RawRoster: "name,program\nAlice,CS\nBob,Math\n",
		SavedAt:   time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
		Partition: samplePartition(),
	}
	require.NoError(t, mem.Save(ctx, "week-1", snap))

	loaded, err := mem.Load(ctx, "week-1")
	require.NoError(t, err)
	require.Equal(t, snap.Label, loaded.Label)
	require.Equal(t, snap.RawRoster, loaded.RawRoster)
	require.Equal(t, snap.SavedAt, loaded.SavedAt)
	require.Equal(t, snap.Partition, loaded.Partition)
	require.True(t, loaded.Partition.Groups[0].Items[0].Pinned, "pin flags must roundtrip")
}

func TestMemory_LoadUnknownKey(t *testing.T) {
	_, err := NewMemory().Load(context.Background(), "missing")
	require.ErrorIs(t, err, types.ErrSnapshotNotFound)
}

func TestMemory_CopySemantics(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	snap := &Snapshot{Label: "week-1", Partition: samplePartition()}
	require.NoError(t, mem.Save(ctx, "week-1", snap))

	// Mutating the saved value must not affect what a later Load returns.
	snap.Partition.Groups[0].Items[0].Name = "Mallory"

	loaded, err := mem.Load(ctx, "week-1")
	require.NoError(t, err)
	require.Equal(t, "Alice", loaded.Partition.Groups[0].Items[0].Name)

	// And mutating a loaded value must not affect the store.
	loaded.Partition.Groups[0].Items[1].Name = "Eve"
	again, err := mem.Load(ctx, "week-1")
	require.NoError(t, err)
	require.Equal(t, "Bob", again.Partition.Groups[0].Items[1].Name)
}

func TestMemory_SaveReplaces(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	require.NoError(t, mem.Save(ctx, "week-1", &Snapshot{Label: "week-1", RawRoster: "old"}))
	require.NoError(t, mem.Save(ctx, "week-1", &Snapshot{Label: "week-1", RawRoster: "new"}))

	loaded, err := mem.Load(ctx, "week-1")
	require.NoError(t, err)
	require.Equal(t, "new", loaded.RawRoster)
}

func TestMemory_List(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	t.Run("empty store lists nothing", func(t *testing.T) {
		keys, err := mem.List(ctx)
		require.NoError(t, err)
		require.Empty(t, keys)
	})

	t.Run("keys come back sorted", func(t *testing.T) {
		for _, key := range []string{"week-3", "week-1", "week-2"} {
			require.NoError(t, mem.Save(ctx, key, &Snapshot{Label: key}))
		}

		keys, err := mem.List(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"week-1", "week-2", "week-3"}, keys)
	})
}
