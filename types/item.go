package types

// Item is a single roster entry: a student name tagged with the study
// program (category) the student belongs to.
//
// Names are not guaranteed to be globally unique; the (Name, Category) pair
// is treated as the item's identity for pin and cohort tracking. Duplicate
// identities are never silently deduplicated - callers should surface them
// as a configuration warning (see grouper.DuplicateIdentities).
type Item struct {
	// Name is the student's display name. Blank names are excluded from the
	// item set entirely during roster parsing.
	Name string `json:"name"`

	// Category is the study program label. Every group must contain at least
	// one item per category whenever that is mathematically feasible.
	Category string `json:"category"`
}

// Key returns the canonical identity key for pin and cohort tracking.
//
// The key joins Name and Category with an ASCII unit separator, which cannot
// appear in values produced by the roster parser.
//
// Returns:
//   - string: Stable identity key for the (name, category) pair
func (it Item) Key() string {
	return it.Name + "\x1f" + it.Category
}

// Placement is an item's position inside a group together with its pin flag.
//
// Pinning is an attribute of the placement, not of the item: the same item
// can be pinned in one partition and unpinned in another.
type Placement struct {
	Item

	// Pinned marks the placement as locked. Pinned items keep their group
	// membership across repartitions (see grouper.Repartition).
	Pinned bool `json:"pinned,omitempty"`
}
