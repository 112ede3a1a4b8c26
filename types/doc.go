// Package types contains the shared types and interfaces for the
// create-student-groups core.
//
// It is a leaf package: internal packages depend on it without depending on
// the root grouper package, which re-exports the commonly used definitions
// for convenience.
package types
