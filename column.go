package boxtable

import "github.com/olekukonko/boxtable/tw"

// ColumnBuilder configures a single column's defaults, grounded on the
// teacher's ColumnConfigBuilder: each With* method mutates the pending
// config and returns the builder, and Build commits it back to the table.
type ColumnBuilder struct {
	table *Table
	col   int
	cfg   tw.ColumnConfig
}

// WithAlignment sets the column's default horizontal alignment, used for
// any cell in this column that does not set its own.
func (b *ColumnBuilder) WithAlignment(align tw.Align) *ColumnBuilder {
	b.cfg.Align = align
	return b
}

// WithVAlignment sets the column's default vertical alignment.
func (b *ColumnBuilder) WithVAlignment(valign tw.VAlign) *ColumnBuilder {
	b.cfg.VAlign = valign
	return b
}

// WithPadding sets the column's left/right padding.
func (b *ColumnBuilder) WithPadding(padding tw.CellPadding) *ColumnBuilder {
	b.cfg.Padding = padding
	return b
}

// WithConstraint sets the column's width constraint (tw.Absolute,
// tw.LowerBoundary, tw.UpperBoundary, tw.Boundaries, or tw.Hidden).
func (b *ColumnBuilder) WithConstraint(c tw.ColumnConstraint) *ColumnBuilder {
	b.cfg.Constraint = c
	return b
}

// Build commits the configured column back to the table and returns it for
// chaining onto the next call.
func (b *ColumnBuilder) Build() *Table {
	b.table.columns[b.col] = b.cfg
	return b.table
}
