package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/henriasv/create-student-groups/internal/kvutil"
	"github.com/henriasv/create-student-groups/types"
)

// validKey matches the character set NATS KV accepts for keys.
var validKey = regexp.MustCompile(`^[-/_=.a-zA-Z0-9]+$`)

// NATSKV is a Store backed by a NATS JetStream KeyValue bucket.
//
// Snapshots are JSON-encoded. A bucket TTL of 0 keeps snapshots
// indefinitely, which is the sensible default for saved class lists.
type NATSKV struct {
	kv jetstream.KeyValue
}

// Compile-time assertion that NATSKV implements Store.
var _ Store = (*NATSKV)(nil)

// NewNATSKV creates a Store over a JetStream KV bucket, creating the bucket
// if it does not exist yet.
//
// Parameters:
//   - ctx: Context for bucket creation
//   - js: JetStream context
//   - bucket: Bucket name (e.g., "grouper-snapshots")
//   - ttl: Snapshot retention (0 = no expiration)
//
// Returns:
//   - *NATSKV: Store bound to the bucket
//   - error: Bucket creation or open failure
//
// Example:
//
//	js, _ := jetstream.New(nc)
//	snaps, err := store.NewNATSKV(ctx, js, cfg.Snapshots.Bucket, cfg.Snapshots.TTL)
func NewNATSKV(ctx context.Context, js jetstream.JetStream, bucket string, ttl time.Duration) (*NATSKV, error) {
	kv, err := kvutil.EnsureBucket(ctx, js, jetstream.KeyValueConfig{
		Bucket:      bucket,
		Description: "create-student-groups partition snapshots",
		TTL:         ttl,
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot bucket: %w", err)
	}

	return &NATSKV{kv: kv}, nil
}

// Save stores a snapshot under the given key, replacing any previous value.
//
// Returns:
//   - error: types.ErrInvalidSnapshotKey when the key contains characters
//     outside the NATS KV key charset, otherwise encoding or KV failure
func (s *NATSKV) Save(ctx context.Context, key string, snap *Snapshot) error {
	if !validKey.MatchString(key) {
		return fmt.Errorf("%w: %q", types.ErrInvalidSnapshotKey, key)
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if _, err := s.kv.Put(ctx, key, data); err != nil {
		return fmt.Errorf("failed to store snapshot %q: %w", key, err)
	}

	return nil
}

// Load retrieves the snapshot stored under key.
func (s *NATSKV) Load(ctx context.Context, key string) (*Snapshot, error) {
	if !validKey.MatchString(key) {
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidSnapshotKey, key)
	}

	entry, err := s.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: %q", types.ErrSnapshotNotFound, key)
		}

		return nil, fmt.Errorf("failed to fetch snapshot %q: %w", key, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(entry.Value(), &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %q: %w", key, err)
	}

	return &snap, nil
}

// List returns the keys of all stored snapshots in lexicographic order.
//
// An empty bucket yields an empty list, not an error; NATS reports "no keys
// found" in several shapes and all of them are treated as empty.
func (s *NATSKV) List(ctx context.Context) ([]string, error) {
	lister, err := s.kv.ListKeys(ctx)
	if err != nil {
		if isNoKeysFound(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to list snapshot keys: %w", err)
	}

	var keys []string
	for key := range lister.Keys() {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys, nil
}

// isNoKeysFound checks for the NATS "no keys found" condition, which may
// arrive as jetstream.ErrNoKeysFound or as a wrapped message from older
// servers.
func isNoKeysFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, jetstream.ErrNoKeysFound) {
		return true
	}

	return strings.Contains(err.Error(), "no keys found")
}
