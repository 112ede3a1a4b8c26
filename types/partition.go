package types

import (
	"slices"
	"strconv"

	"github.com/zeebo/xxh3"
)

// Partition is a complete division of a roster into fixed-capacity groups.
//
// A Partition is immutable from the core's point of view: every build or
// repartition derives a brand-new instance and never mutates its input.
// Between operations the caller exclusively owns the value and may toggle
// pin flags freely.
type Partition struct {
	// Capacity is the maximum number of items permitted in one group.
	Capacity int `json:"capacity"`

	// Categories is the sorted set of distinct category values seen in the
	// input roster. The sorted order is load-bearing: it fixes the tie-break
	// order of category-coverage assignment for deterministic output.
	Categories []string `json:"categories"`

	// Groups holds the groups in ordinal order (Index 1..N).
	Groups []Group `json:"groups"`
}

// Row is one entry of the tabular (group, name, category) projection
// consumed by export collaborators.
type Row struct {
	Group    int    `json:"group"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// TotalItems returns the number of items across all groups.
func (p *Partition) TotalItems() int {
	total := 0
	for _, g := range p.Groups {
		total += len(g.Items)
	}

	return total
}

// GroupCount returns the number of groups in the partition.
func (p *Partition) GroupCount() int {
	return len(p.Groups)
}

// Rows returns the read-only tabular projection of the partition, one row
// per item in group order then insertion order.
//
// The projection exposes no pin state; export collaborators must not depend
// on it.
//
// Returns:
//   - []Row: One (group, name, category) row per item
func (p *Partition) Rows() []Row {
	rows := make([]Row, 0, p.TotalItems())
	for _, g := range p.Groups {
		for _, pl := range g.Items {
			rows = append(rows, Row{Group: g.Index, Name: pl.Name, Category: pl.Category})
		}
	}

	return rows
}

// Clone returns a deep copy of the partition.
//
// Useful for callers that want to mutate pin flags while keeping the
// original result for diffing or integrity checking.
//
// Returns:
//   - *Partition: Independent copy sharing no slices with the receiver
func (p *Partition) Clone() *Partition {
	clone := &Partition{
		Capacity:   p.Capacity,
		Categories: slices.Clone(p.Categories),
		Groups:     make([]Group, len(p.Groups)),
	}
	for i, g := range p.Groups {
		clone.Groups[i] = g.Clone()
	}

	return clone
}

// Fingerprint returns a 64-bit xxh3 digest of the partition's group
// contents, including pin flags and group boundaries.
//
// Two partitions with identical group membership and order produce the same
// fingerprint, which makes it a cheap equality probe for determinism tests
// and log correlation.
//
// Returns:
//   - uint64: Content digest of capacity, group boundaries, items, and pins
func (p *Partition) Fingerprint() uint64 {
	h := xxh3.New()
	_, _ = h.WriteString(strconv.Itoa(p.Capacity))
	for _, g := range p.Groups {
		// Record separator between groups so moving an item across a group
		// boundary always changes the digest.
		_, _ = h.WriteString("\x1e")
		for _, pl := range g.Items {
			_, _ = h.WriteString(pl.Key())
			if pl.Pinned {
				_, _ = h.WriteString("*")
			}
			_, _ = h.WriteString("\x1f")
		}
	}

	return h.Sum64()
}
