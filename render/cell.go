// Package render implements the cell formatter (C4), row assembler (C5),
// and border drawer (C7): the stages that turn resolved column widths and
// raw cell text into the table's final visual lines.
package render

import (
	"strings"

	"github.com/olekukonko/boxtable/internal/wrap"
	"github.com/olekukonko/boxtable/tw"
	"github.com/olekukonko/boxtable/twfn"
)

// Column is the per-column input the formatter and assembler need: the
// resolved content width (text area only, no padding), the column's
// padding, and whether it is hidden (contributes nothing to any line).
type Column struct {
	Width   int
	Padding tw.CellPadding
	Hidden  bool
}

// Decorate applies styling (color, attributes) to already-padded cell
// text. Implementations must preserve display width: width(decorate(x)) ==
// width(x), since width is computed before decoration runs.
type Decorate func(string) string

// ColumnDecorate picks the Decorate to apply to a cell in the given table
// column, so a caller can style columns differently (see style.Theme). A
// nil ColumnDecorate, or one that returns nil, applies no styling.
type ColumnDecorate func(col int) Decorate

func totalWidth(col Column) int {
	return col.Padding.Left + col.Width + col.Padding.Right
}

// FormatCell wraps text to col.Width, aligns each resulting line, adds
// col.Padding on both sides, and applies decorate (if non-nil) last. Every
// returned line has the same display width: col.Padding.Left + col.Width +
// col.Padding.Right.
func FormatCell(text string, col Column, align tw.Align, decorate Decorate) []string {
	lines := wrap.Lines(text, col.Width)
	out := make([]string, len(lines))
	for i, line := range lines {
		var aligned string
		switch align {
		case tw.AlignRight:
			aligned = twfn.PadLeft(line, tw.Space, col.Width)
		case tw.AlignCenter:
			aligned = twfn.PadCenter(line, tw.Space, col.Width)
		default:
			aligned = twfn.PadRight(line, tw.Space, col.Width)
		}
		padded := strings.Repeat(tw.Space, col.Padding.Left) + aligned + strings.Repeat(tw.Space, col.Padding.Right)
		if decorate != nil {
			padded = decorate(padded)
		}
		out[i] = padded
	}
	return out
}

// Blank returns one line of spaces the full width of col (padding
// included) — used to fill rows beneath a cell's own content and for
// row-span continuation slots with no content at this row.
func Blank(col Column) string {
	return strings.Repeat(tw.Space, totalWidth(col))
}
