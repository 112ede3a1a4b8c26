package grouper

import "github.com/henriasv/create-student-groups/types"

// Re-export types from the types subpackage.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing internal
// packages to depend on `types` without depending on the root `grouper`
// package, while still providing a convenient `grouper.Item`,
// `grouper.Partition`, etc. for users.
type (
	Item      = types.Item
	Placement = types.Placement
	Group     = types.Group
	Partition = types.Partition
	Row       = types.Row
)

// Re-export interfaces from the types subpackage for convenience.
type (
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
)
