package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/henriasv/create-student-groups/types"
)

// Memory is an in-process Store backed by a concurrent map.
//
// Snapshots are stored JSON-encoded, so a loaded snapshot never aliases the
// saved value: mutating one cannot corrupt the other. Useful for tests and
// single-process tools that do not need durability.
type Memory struct {
	snaps *xsync.Map[string, []byte]
}

// Compile-time assertion that Memory implements Store.
var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-memory snapshot store.
//
// Returns:
//   - *Memory: Store safe for concurrent use
//
// Example:
//
//	snaps := store.NewMemory()
//	planner, _ := grouper.NewPlanner(&cfg, grouper.WithStore(snaps))
func NewMemory() *Memory {
	return &Memory{snaps: xsync.NewMap[string, []byte]()}
}

// Save stores a snapshot under the given key, replacing any previous value.
func (m *Memory) Save(_ context.Context, key string, snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	m.snaps.Store(key, data)

	return nil
}

// Load retrieves the snapshot stored under key.
//
// Returns:
//   - *Snapshot: Independent copy of the stored snapshot
//   - error: types.ErrSnapshotNotFound if the key does not exist
func (m *Memory) Load(_ context.Context, key string) (*Snapshot, error) {
	data, ok := m.snaps.Load(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", types.ErrSnapshotNotFound, key)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %q: %w", key, err)
	}

	return &snap, nil
}

// List returns the keys of all stored snapshots in lexicographic order.
func (m *Memory) List(_ context.Context) ([]string, error) {
	var keys []string
	m.snaps.Range(func(key string, _ []byte) bool {
		keys = append(keys, key)

		return true
	})
	sort.Strings(keys)

	return keys, nil
}
