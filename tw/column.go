package tw

// CellPadding defines the left/right spacing applied inside a cell, around its
// wrapped content, before the column separator.
type CellPadding struct {
	Left  int
	Right int
}

// DefaultPadding is applied to a column that never configured one explicitly.
var DefaultPadding = CellPadding{Left: 1, Right: 1}

// ColumnConfig holds the per-column defaults a Column builder assembles:
// default horizontal/vertical alignment, padding, and the width constraint
// the solver (C3) honors.
type ColumnConfig struct {
	Align      Align
	VAlign     VAlign
	Padding    CellPadding
	Constraint ColumnConstraint
}

// NewColumnConfig returns a ColumnConfig with the library defaults: left
// alignment, top vertical alignment, one space of padding on each side, and
// no width constraint.
func NewColumnConfig() ColumnConfig {
	return ColumnConfig{
		Align:   AlignLeft,
		VAlign:  VAlignTop,
		Padding: DefaultPadding,
	}
}

// ResolveAlign returns the effective horizontal alignment for a cell, given
// the cell's own override (may be AlignNone) and this column's default.
func (c ColumnConfig) ResolveAlign(cellAlign Align) Align {
	if cellAlign != "" && cellAlign != AlignNone {
		return cellAlign
	}
	if c.Align != "" && c.Align != AlignNone {
		return c.Align
	}
	return AlignLeft
}

// ResolveVAlign returns the effective vertical alignment for a cell, given
// the cell's own override and this column's default.
func (c ColumnConfig) ResolveVAlign(cellVAlign VAlign) VAlign {
	if cellVAlign != "" {
		return cellVAlign.Resolve()
	}
	return c.VAlign.Resolve()
}

// IsHidden reports whether this column's constraint marks it Hidden.
func (c ColumnConfig) IsHidden() bool {
	return c.Constraint.Kind == ConstraintHidden
}
