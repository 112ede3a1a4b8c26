package types

import "slices"

// Group is one fixed-capacity bucket of placements inside a Partition.
//
// Item order within a group is insertion order. It carries no semantic
// meaning but must stay stable so callers can display and diff results.
type Group struct {
	// Index is the 1-based ordinal of the group within its partition.
	Index int `json:"index"`

	// Items are the placements in insertion order.
	Items []Placement `json:"items"`

	// MissingCategories lists the categories that could not be represented in
	// this group because their supply was insufficient (degraded coverage).
	// Nil when the group covers every category.
	MissingCategories []string `json:"missingCategories,omitempty"`
}

// Size returns the number of items currently placed in the group.
func (g Group) Size() int {
	return len(g.Items)
}

// HasCategory reports whether at least one placement in the group carries
// the given category.
func (g Group) HasCategory(category string) bool {
	for _, pl := range g.Items {
		if pl.Category == category {
			return true
		}
	}

	return false
}

// Pinned returns the pinned placements of the group in insertion order.
//
// The pinned subset of a group forms one cohort during repartitioning:
// it must land intact in exactly one resulting group.
//
// Returns:
//   - []Placement: Pinned placements (nil if none)
func (g Group) Pinned() []Placement {
	var pinned []Placement
	for _, pl := range g.Items {
		if pl.Pinned {
			pinned = append(pinned, pl)
		}
	}

	return pinned
}

// Clone returns a deep copy of the group.
func (g Group) Clone() Group {
	return Group{
		Index:             g.Index,
		Items:             slices.Clone(g.Items),
		MissingCategories: slices.Clone(g.MissingCategories),
	}
}
