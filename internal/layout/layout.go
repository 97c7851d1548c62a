// Package layout implements the column-width solver: given intrinsic cell
// demand, per-column constraints, and a total-width budget, it resolves a
// single display width per column, padding included.
package layout

import (
	"sort"
	"strings"

	"github.com/olekukonko/boxtable/internal/wrap"
	"github.com/olekukonko/boxtable/pkg/twwidth"
	"github.com/olekukonko/boxtable/tw"
)

// Column carries the per-column inputs the solver needs beyond intrinsic
// cell demand: its width constraint and its padding.
type Column struct {
	Constraint tw.ColumnConstraint
	Padding    tw.CellPadding
}

// Cell is one piece of intrinsic demand: the raw text of a cell starting at
// column Col and spanning Colspan columns (Colspan < 1 is treated as 1).
type Cell struct {
	Col     int
	Colspan int
	Text    string
}

// Info is the resolved width of one column: Width is the column's total
// display width including its own padding, excluding inter-column
// separators. Hidden columns always resolve to a zero Width.
type Info struct {
	Width  int
	Hidden bool
}

// Solve runs the C3 column-width solver. budget is the total-width budget W
// (0 or negative means unbounded, which forces Disabled-like sizing
// regardless of arrangement). separatorWidth is the display width of one
// inter-column separator glyph (the solver assumes len(columns)-1 of them
// for a visible row with no hidden columns interleaved).
func Solve(columns []Column, cells []Cell, arrangement tw.ContentArrangement, budget int, separatorWidth int) []Info {
	n := len(columns)
	infos := make([]Info, n)

	minW := make([]int, n)
	maxW := make([]int, n)

	for _, cell := range cells {
		span := cell.Colspan
		if span < 1 {
			span = 1
		}
		if cell.Col < 0 || cell.Col >= n {
			continue
		}
		end := cell.Col + span
		if end > n {
			end = n
		}

		tokenW := longestToken(cell.Text)
		lineW := longestLine(cell.Text)
		shareTok := ceilDiv(tokenW, span)
		shareLine := ceilDiv(lineW, span)

		for c := cell.Col; c < end; c++ {
			if shareTok > minW[c] {
				minW[c] = shareTok
			}
			if shareLine > maxW[c] {
				maxW[c] = shareLine
			}
		}
	}

	// Apply per-column constraints.
	fixed := make([]bool, n)
	fixedWidth := make([]int, n)
	for c, col := range columns {
		if col.Constraint.Kind == tw.ConstraintHidden {
			infos[c].Hidden = true
			continue
		}
		switch col.Constraint.Kind {
		case tw.ConstraintAbsolute:
			w := col.Constraint.Lower.Resolve(budget)
			fixed[c] = true
			fixedWidth[c] = w
		case tw.ConstraintUpperBoundary:
			upper := col.Constraint.Upper.Resolve(budget)
			if maxW[c] > upper {
				maxW[c] = upper
			}
			if minW[c] > upper {
				minW[c] = upper
			}
		case tw.ConstraintLowerBoundary:
			lower := col.Constraint.Lower.Resolve(budget)
			if minW[c] < lower {
				minW[c] = lower
			}
			if maxW[c] < minW[c] {
				maxW[c] = minW[c]
			}
		case tw.ConstraintBoundaries:
			upper := col.Constraint.Upper.Resolve(budget)
			lower := col.Constraint.Lower.Resolve(budget)
			if maxW[c] > upper {
				maxW[c] = upper
			}
			if minW[c] > upper {
				minW[c] = upper
			}
			if minW[c] < lower {
				minW[c] = lower
			}
			if maxW[c] < minW[c] {
				maxW[c] = minW[c]
			}
		}
		if maxW[c] < minW[c] {
			maxW[c] = minW[c]
		}
	}

	visible := make([]int, 0, n)
	for c := range columns {
		if !infos[c].Hidden {
			visible = append(visible, c)
		}
	}

	content := make([]int, n)

	if arrangement == tw.Disabled || budget <= 0 {
		for _, c := range visible {
			if fixed[c] {
				content[c] = fixedWidth[c]
			} else {
				content[c] = maxW[c]
			}
		}
	} else {
		content = solveDynamic(columns, visible, fixed, fixedWidth, minW, maxW, arrangement, budget, separatorWidth)
	}

	for _, c := range visible {
		infos[c].Width = content[c] + columns[c].Padding.Left + columns[c].Padding.Right
	}
	return infos
}

func solveDynamic(columns []Column, visible []int, fixed []bool, fixedWidth, minW, maxW []int, arrangement tw.ContentArrangement, budget, separatorWidth int) []int {
	n := len(columns)
	content := make([]int, n)

	if len(visible) == 0 {
		return content
	}

	separators := 0
	if len(visible) > 1 {
		separators = (len(visible) - 1) * separatorWidth
	}
	totalPadding := 0
	fixedSum := 0
	var adjustable []int
	for _, c := range visible {
		totalPadding += columns[c].Padding.Left + columns[c].Padding.Right
		if fixed[c] {
			content[c] = fixedWidth[c]
			fixedSum += fixedWidth[c]
		} else {
			adjustable = append(adjustable, c)
		}
	}

	available := budget - separators - totalPadding - fixedSum
	if available < 0 {
		available = 0
	}
	if len(adjustable) == 0 {
		return content
	}

	sumMax, sumMin := 0, 0
	for _, c := range adjustable {
		sumMax += maxW[c]
		sumMin += minW[c]
	}

	if sumMax <= available {
		for _, c := range adjustable {
			content[c] = maxW[c]
		}
		if arrangement == tw.DynamicFullWidth && available > sumMax {
			distributeSurplus(content, adjustable, maxW, available-sumMax)
		}
		return content
	}

	remaining := available - sumMin
	if remaining <= 0 {
		for _, c := range adjustable {
			content[c] = minW[c]
		}
		return content
	}

	weights := make([]int, len(adjustable))
	sumWeight := 0
	for i, c := range adjustable {
		weights[i] = maxW[c] - minW[c]
		sumWeight += weights[i]
	}

	if sumWeight == 0 {
		for _, c := range adjustable {
			content[c] = minW[c]
		}
		distributeSurplus(content, adjustable, nil, remaining)
		return content
	}

	type frac struct {
		idx  int
		col  int
		frac float64
	}
	fracs := make([]frac, len(adjustable))
	distributed := 0
	for i, c := range adjustable {
		share := remaining * weights[i]
		whole := share / sumWeight
		rem := share - whole*sumWeight
		content[c] = minW[c] + whole
		distributed += whole
		fracs[i] = frac{idx: i, col: c, frac: float64(rem) / float64(sumWeight)}
	}

	leftover := remaining - distributed
	sort.SliceStable(fracs, func(i, j int) bool {
		if fracs[i].frac != fracs[j].frac {
			return fracs[i].frac > fracs[j].frac
		}
		return fracs[i].col < fracs[j].col
	})
	for i := 0; i < leftover && i < len(fracs); i++ {
		content[fracs[i].col]++
	}

	return content
}

// distributeSurplus awards extra width (DynamicFullWidth's fill-to-budget
// step) proportionally to weight, indexed by column id the same way as
// maxW/minW (falling back to equal shares when weight is nil or all-zero),
// using the same descending-fractional-part, left-to-right tie-break as the
// main proportional pass.
func distributeSurplus(content []int, cols []int, weight []int, surplus int) {
	if surplus <= 0 || len(cols) == 0 {
		return
	}
	sumWeight := 0
	useEqual := weight == nil
	if !useEqual {
		for _, c := range cols {
			sumWeight += weight[c]
		}
	}
	if useEqual || sumWeight == 0 {
		base := surplus / len(cols)
		rem := surplus % len(cols)
		for i, c := range cols {
			content[c] += base
			if i < rem {
				content[c]++
			}
		}
		return
	}

	type frac struct {
		col  int
		frac float64
	}
	fracs := make([]frac, len(cols))
	distributed := 0
	for i, c := range cols {
		w := weight[c]
		share := surplus * w
		whole := share / sumWeight
		rem := share - whole*sumWeight
		content[c] += whole
		distributed += whole
		fracs[i] = frac{col: c, frac: float64(rem) / float64(sumWeight)}
	}
	leftover := surplus - distributed
	sort.SliceStable(fracs, func(i, j int) bool {
		if fracs[i].frac != fracs[j].frac {
			return fracs[i].frac > fracs[j].frac
		}
		return fracs[i].col < fracs[j].col
	})
	for i := 0; i < leftover && i < len(fracs); i++ {
		content[fracs[i].col]++
	}
}

func longestToken(text string) int {
	max := 0
	for _, tok := range wrap.Tokenize(text) {
		if tok == "\n" {
			continue
		}
		if w := twwidth.Width(tok); w > max {
			max = w
		}
	}
	return max
}

func longestLine(text string) int {
	max := 0
	for _, line := range strings.Split(text, "\n") {
		if w := twwidth.Width(line); w > max {
			max = w
		}
	}
	return max
}
