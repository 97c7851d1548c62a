package layout

import (
	"testing"

	"github.com/olekukonko/boxtable/tw"
)

func noPadCols(n int, constraints ...tw.ColumnConstraint) []Column {
	cols := make([]Column, n)
	for i := range cols {
		var c tw.ColumnConstraint
		if i < len(constraints) {
			c = constraints[i]
		}
		cols[i] = Column{Constraint: c}
	}
	return cols
}

func TestSolveDisabledUsesMaxWidth(t *testing.T) {
	cols := noPadCols(2)
	cells := []Cell{
		{Col: 0, Colspan: 1, Text: "hello"},
		{Col: 1, Colspan: 1, Text: "hi"},
	}
	infos := Solve(cols, cells, tw.Disabled, 0, 1)
	if infos[0].Width != 5 || infos[1].Width != 2 {
		t.Fatalf("infos = %#v, want [5 2]", infos)
	}
}

func TestSolveHiddenColumnZeroWidth(t *testing.T) {
	cols := noPadCols(2, tw.ColumnConstraint{}, tw.Hidden())
	cells := []Cell{
		{Col: 0, Colspan: 1, Text: "hello"},
		{Col: 1, Colspan: 1, Text: "world"},
	}
	infos := Solve(cols, cells, tw.Disabled, 0, 1)
	if !infos[1].Hidden || infos[1].Width != 0 {
		t.Fatalf("infos[1] = %#v, want hidden with zero width", infos[1])
	}
}

func TestSolveAbsoluteFixesWidth(t *testing.T) {
	cols := noPadCols(2, tw.Absolute(tw.Fixed(10)))
	cells := []Cell{
		{Col: 0, Colspan: 1, Text: "hi"},
		{Col: 1, Colspan: 1, Text: "world"},
	}
	infos := Solve(cols, cells, tw.Dynamic, 40, 1)
	if infos[0].Width != 10 {
		t.Fatalf("infos[0].Width = %d, want 10", infos[0].Width)
	}
}

func TestSolveDynamicFullWidthFillsBudget(t *testing.T) {
	cols := noPadCols(2)
	cells := []Cell{
		{Col: 0, Colspan: 1, Text: "hi"},
		{Col: 1, Colspan: 1, Text: "yo"},
	}
	infos := Solve(cols, cells, tw.DynamicFullWidth, 20, 1)
	total := infos[0].Width + infos[1].Width + 1 // one separator
	if total != 20 {
		t.Fatalf("total width = %d, want 20", total)
	}
}

func TestSolveDynamicNeverShrinksBelowMin(t *testing.T) {
	cols := noPadCols(3)
	cells := []Cell{
		{Col: 0, Colspan: 1, Text: "reallylongwordthatshoulddynamicallywrap"},
		{Col: 1, Colspan: 1, Text: "b"},
		{Col: 2, Colspan: 1, Text: "c"},
	}
	infos := Solve(cols, cells, tw.Dynamic, 10, 1)
	if infos[0].Width < len("reallylongwordthatshoulddynamicallywrap") {
		t.Fatalf("infos[0].Width = %d, want >= min token width (overflow allowed)", infos[0].Width)
	}
}

func TestSolveColspanDistributesDemandEvenly(t *testing.T) {
	cols := noPadCols(2)
	cells := []Cell{
		{Col: 0, Colspan: 2, Text: "abcdefgh"},
	}
	infos := Solve(cols, cells, tw.Disabled, 0, 1)
	if infos[0].Width+infos[1].Width < 8 {
		t.Fatalf("combined width = %d, want >= 8", infos[0].Width+infos[1].Width)
	}
}

func TestSolveMonotonicGrowthWithBudget(t *testing.T) {
	cols := noPadCols(2)
	cells := []Cell{
		{Col: 0, Colspan: 1, Text: "aaaaaaaaaaaaaaaa"},
		{Col: 1, Colspan: 1, Text: "bbbbbbbbbbbbbbbb"},
	}
	small := Solve(cols, cells, tw.Dynamic, 10, 1)
	large := Solve(cols, cells, tw.Dynamic, 15, 1)
	for i := range small {
		if large[i].Width < small[i].Width {
			t.Fatalf("column %d shrank when budget grew: %d -> %d", i, small[i].Width, large[i].Width)
		}
	}
}
