// Package roster parses CSV class lists into roster items.
//
// A roster has two logical fields, student name and study program, resolved
// from the header row via case-insensitive aliases. When no header cell
// matches an alias and the file has exactly two columns, column 0 is the
// name and column 1 is the program, and every row is treated as data. Rows
// with a blank name or program after trimming are silently dropped.
package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/henriasv/create-student-groups/types"
)

// Default header aliases, matching the header variants observed in real
// exported class lists. All comparisons are case-insensitive on trimmed
// cell values.
var (
	// DefaultNameAliases are the recognized student name headers.
	DefaultNameAliases = []string{"name", "student", "student_name", "student name"}

	// DefaultCategoryAliases are the recognized study program headers.
	DefaultCategoryAliases = []string{"program", "programme", "study_program", "study programme", "studyprogram", "major"}
)

// Option configures roster parsing.
type Option func(*options)

type options struct {
	nameAliases     []string
	categoryAliases []string
	comma           rune
}

// WithNameAliases replaces the recognized name-column header aliases.
func WithNameAliases(aliases ...string) Option {
	return func(o *options) {
		if len(aliases) > 0 {
			o.nameAliases = aliases
		}
	}
}

// WithCategoryAliases replaces the recognized program-column header aliases.
func WithCategoryAliases(aliases ...string) Option {
	return func(o *options) {
		if len(aliases) > 0 {
			o.categoryAliases = aliases
		}
	}
}

// WithComma sets the field separator (default ',').
//
// Useful for semicolon-separated exports common in locales that use the
// comma as a decimal separator.
func WithComma(comma rune) Option {
	return func(o *options) {
		if comma != 0 {
			o.comma = comma
		}
	}
}

// Parse reads CSV roster data into items.
//
// Column resolution:
//  1. If any cell of the first row matches a name alias and any other cell
//     matches a category alias, those cells fix the column indices and the
//     first row is consumed as a header.
//  2. Otherwise, if the first row has exactly two columns, column 0 is the
//     name and column 1 is the category, and the first row is data.
//  3. Otherwise parsing fails with types.ErrUnresolvedColumns.
//
// Rows shorter than the resolved indices and rows with a blank name or
// category after trimming are silently dropped. An input yielding no items
// at all is a configuration error.
//
// Parameters:
//   - r: CSV input
//   - opts: Optional alias and separator overrides
//
// Returns:
//   - []types.Item: Parsed items in input order
//   - error: CSV syntax error, types.ErrUnresolvedColumns, or types.ErrEmptyRoster
//
// Example:
//
//	items, err := roster.Parse(file, roster.WithComma(';'))
func Parse(r io.Reader, opts ...Option) ([]types.Item, error) {
	o := options{
		nameAliases:     DefaultNameAliases,
		categoryAliases: DefaultCategoryAliases,
		comma:           ',',
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	reader := csv.NewReader(r)
	reader.Comma = o.comma
	reader.FieldsPerRecord = -1 // rosters exported by hand are often ragged
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}
	if len(records) == 0 {
		return nil, types.ErrEmptyRoster
	}

	nameIdx, catIdx, headerFound := resolveColumns(records[0], o.nameAliases, o.categoryAliases)
	rows := records
	switch {
	case headerFound:
		rows = records[1:]
	case len(records[0]) == 2:
		nameIdx, catIdx = 0, 1
	default:
		return nil, fmt.Errorf("%w: header %v", types.ErrUnresolvedColumns, records[0])
	}

	var items []types.Item
	for _, row := range rows {
		if nameIdx >= len(row) || catIdx >= len(row) {
			continue
		}
		name := strings.TrimSpace(row[nameIdx])
		category := strings.TrimSpace(row[catIdx])
		if name == "" || category == "" {
			continue
		}
		items = append(items, types.Item{Name: name, Category: category})
	}
	if len(items) == 0 {
		return nil, types.ErrEmptyRoster
	}

	return items, nil
}

// resolveColumns maps header cells to the name and category column indices.
// Both must resolve, to distinct columns, for the row to count as a header.
func resolveColumns(header, nameAliases, categoryAliases []string) (nameIdx, catIdx int, ok bool) {
	nameIdx, catIdx = -1, -1
	for i, cell := range header {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		if nameIdx == -1 && matchesAlias(normalized, nameAliases) {
			nameIdx = i

			continue
		}
		if catIdx == -1 && matchesAlias(normalized, categoryAliases) {
			catIdx = i
		}
	}

	return nameIdx, catIdx, nameIdx != -1 && catIdx != -1
}

func matchesAlias(normalized string, aliases []string) bool {
	for _, a := range aliases {
		if normalized == strings.ToLower(a) {
			return true
		}
	}

	return false
}
