// Package style provides the decorate(text, style) -> text collaborator
// boxtable's render package accepts as a render.Decorate: a function applied
// to an already wrapped, aligned, and padded cell string, purely for
// terminal styling, never affecting display width.
package style

import "github.com/fatih/color"

// Colors is a list of fatih/color attributes applied together, grounded on
// the teacher's own (unwired) Colors type in renderer/colorized.go.
type Colors []color.Attribute

// Decorate builds a render.Decorate-compatible function that wraps its
// input in the given color attributes. An empty Colors list returns the
// identity function, so callers can pass a zero-value Theme field safely.
// Color output is forced on, whether or not stdout is a terminal.
func Decorate(colors Colors) func(string) string {
	if len(colors) == 0 {
		return func(s string) string { return s }
	}
	c := color.New(colors...)
	c.EnableColor()
	sprint := c.SprintFunc()
	return func(s string) string { return sprint(s) }
}

// Theme groups the per-section color attributes a table commonly wants:
// one styling for the header row, one for the footer row, and one list per
// data column (cycled if the table has more columns than entries).
type Theme struct {
	Header  Colors
	Footer  Colors
	Columns []Colors
}

// ForColumn returns the decorate function for data column col, cycling
// through Columns if col exceeds its length. A nil or empty Columns list
// returns the identity function for every column.
func (t Theme) ForColumn(col int) func(string) string {
	if len(t.Columns) == 0 {
		return Decorate(nil)
	}
	return Decorate(t.Columns[col%len(t.Columns)])
}

// ForHeader returns the decorate function for the header row.
func (t Theme) ForHeader() func(string) string { return Decorate(t.Header) }

// ForFooter returns the decorate function for the footer row.
func (t Theme) ForFooter() func(string) string { return Decorate(t.Footer) }

// Common attribute shorthands, named the way fatih/color's own examples do.
var (
	Bold   = color.Attribute(color.Bold)
	FgRed  = color.Attribute(color.FgRed)
	FgBlue = color.Attribute(color.FgBlue)
)
