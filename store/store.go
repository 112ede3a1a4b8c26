// Package store provides snapshot persistence for partitions.
//
// The core never touches storage directly; it only consumes the Store
// interface, which mirrors the key-value shape of the persistence
// collaborator: save a snapshot under a user-chosen label, load it back,
// and list the labels present. Two implementations are provided: an
// in-memory store for tests and single-process use, and a NATS JetStream
// KV store for shared deployments.
package store

import (
	"context"
	"time"

	"github.com/henriasv/create-student-groups/types"
)

// Snapshot is a persisted class-list state: the raw roster text the user
// imported plus the partition computed from it.
//
// The core treats snapshots as opaque; it never derives state from a stored
// snapshot except through an explicit load by the caller.
type Snapshot struct {
	// Label is the user-chosen name the snapshot is keyed by.
	Label string `json:"label"`

	// RawRoster is the original roster text, kept so a dataset can be
	// re-imported and re-partitioned from scratch.
	RawRoster string `json:"rawRoster,omitempty"`

	// SavedAt records when the snapshot was stored.
	SavedAt time.Time `json:"savedAt"`

	// Partition is the computed partition at save time, including pin flags.
	Partition *types.Partition `json:"partition"`
}

// Store persists partition snapshots under user-chosen string keys.
//
// Implementations must be safe for concurrent use; the core calls them from
// whatever goroutine owns the current operation.
type Store interface {
	// Save stores a snapshot under the given key, replacing any previous value.
	//
	// Parameters:
	//   - ctx: Context for cancellation and deadline
	//   - key: User-chosen label
	//   - snap: Snapshot to persist
	//
	// Returns:
	//   - error: Encoding or backend failure
	Save(ctx context.Context, key string, snap *Snapshot) error

	// Load retrieves the snapshot stored under key.
	//
	// Returns:
	//   - *Snapshot: The stored snapshot
	//   - error: types.ErrSnapshotNotFound if the key does not exist
	Load(ctx context.Context, key string) (*Snapshot, error)

	// List returns the keys of all stored snapshots in lexicographic order.
	List(ctx context.Context) ([]string, error)
}
