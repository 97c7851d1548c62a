package tw

import "github.com/olekukonko/errors"

// VAlign specifies the vertical alignment of a cell's content within the
// visual rows it occupies (relevant for multi-line cells and row-spans).
type VAlign string

const (
	VAlignTop    VAlign = "top" // default
	VAlignMiddle VAlign = "middle"
	VAlignBottom VAlign = "bottom"
)

// Validate checks that v is one of the known vertical alignments.
func (v VAlign) Validate() error {
	switch v {
	case "", VAlignTop, VAlignMiddle, VAlignBottom:
		return nil
	}
	return errors.Newf("invalid vertical alignment: %q", string(v))
}

// Resolve returns the effective vertical alignment, defaulting to Top.
func (v VAlign) Resolve() VAlign {
	if v == "" {
		return VAlignTop
	}
	return v
}

// ContentArrangement selects how the column-width solver reconciles
// intrinsic column demand against a total-width budget.
type ContentArrangement int

const (
	Disabled ContentArrangement = iota
	Dynamic
	DynamicFullWidth
)

// WidthUnit distinguishes a fixed character count from a percentage of the
// table's total-width budget.
type WidthUnit int

const (
	UnitFixed WidthUnit = iota
	UnitPercentage
)

// Width is either a fixed character count or a percentage of the total
// budget, resolved to a fixed count by Resolve.
type Width struct {
	Unit  WidthUnit
	Value int
}

// Fixed constructs a character-count Width.
func Fixed(n int) Width { return Width{Unit: UnitFixed, Value: n} }

// Percentage constructs a Width expressed as a percentage (1..100) of the
// total-width budget.
func Percentage(p int) Width { return Width{Unit: UnitPercentage, Value: p} }

// Resolve converts a Width to a concrete character count given the total
// budget. A Percentage with no budget set (budget <= 0) is treated as a
// Fixed value of the same number, per the error-handling policy for
// percentage constraints with no total-width budget.
func (w Width) Resolve(budget int) int {
	if w.Unit == UnitFixed || budget <= 0 {
		return w.Value
	}
	return ceilDiv(w.Value*budget, 100)
}

func ceilDiv(a, b int) int {
	if b == 0 {
		return a
	}
	q := a / b
	if a%b != 0 {
		q++
	}
	return q
}

// ConstraintKind identifies which shape of ColumnConstraint is set.
type ConstraintKind int

const (
	ConstraintNone ConstraintKind = iota
	ConstraintAbsolute
	ConstraintLowerBoundary
	ConstraintUpperBoundary
	ConstraintBoundaries
	ConstraintHidden
)

// ColumnConstraint narrows a column's computed width. Exactly one of the
// constructor functions below should be used to populate it.
type ColumnConstraint struct {
	Kind  ConstraintKind
	Lower Width
	Upper Width
}

// Absolute fixes a column to exactly w, removing it from the adjustable pool.
func Absolute(w Width) ColumnConstraint {
	return ColumnConstraint{Kind: ConstraintAbsolute, Lower: w, Upper: w}
}

// LowerBoundary raises a column's minimum width to at least w.
func LowerBoundary(w Width) ColumnConstraint {
	return ColumnConstraint{Kind: ConstraintLowerBoundary, Lower: w}
}

// UpperBoundary caps a column's width at w.
func UpperBoundary(w Width) ColumnConstraint {
	return ColumnConstraint{Kind: ConstraintUpperBoundary, Upper: w}
}

// Boundaries combines a lower and upper bound on a column's width.
func Boundaries(lower, upper Width) ColumnConstraint {
	return ColumnConstraint{Kind: ConstraintBoundaries, Lower: lower, Upper: upper}
}

// Hidden marks a column as contributing no width and being skipped entirely.
func Hidden() ColumnConstraint {
	return ColumnConstraint{Kind: ConstraintHidden}
}
