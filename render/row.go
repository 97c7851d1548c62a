package render

import (
	"strings"

	"github.com/olekukonko/boxtable/internal/span"
	"github.com/olekukonko/boxtable/tw"
)

// Cell is one input cell to the row assembler.
type Cell struct {
	Col     int
	Colspan int
	Rowspan int
	Text    string
	Align   tw.Align
	VAlign  tw.VAlign
}

// Piece is one column's contribution to one visual line of an assembled
// row. Continuation marks a logical position covered by a colspan (or, via
// AssembleRow, a row-span) that does not start there — the border drawer
// uses it to suppress the interior vertical separator.
type Piece struct {
	Text         string
	Continuation bool
}

func mergedContentWidth(columns []Column, start, span int) int {
	n := len(columns)
	end := start + span
	if end > n {
		end = n
	}
	total := 0
	for c := start; c < end; c++ {
		total += totalWidth(columns[c])
		if c > start {
			total++
		}
	}
	pad := columns[start].Padding
	return total - pad.Left - pad.Right
}

func mergedBlank(columns []Column, start, span int) string {
	n := len(columns)
	end := start + span
	if end > n {
		end = n
	}
	width := 0
	for c := start; c < end; c++ {
		width += totalWidth(columns[c])
		if c > start {
			width++
		}
	}
	return strings.Repeat(tw.Space, width)
}

func verticalPlace(lines []string, height int, valign tw.VAlign, blank string) []string {
	out := make([]string, height)
	for i := range out {
		out[i] = blank
	}
	n := len(lines)
	if n > height {
		n = height
	}
	offset := 0
	switch valign.Resolve() {
	case tw.VAlignMiddle:
		offset = (height - n) / 2
	case tw.VAlignBottom:
		offset = height - n
	}
	for i := 0; i < n; i++ {
		out[offset+i] = lines[i]
	}
	return out
}

// AssembleRow lays out one data row's cells into visual lines of Pieces,
// one Piece per table column (hidden columns included, so indices line up
// with columns). tracker supplies content and placement for any row-span
// continuing from an earlier row; rowIndex is this row's absolute index
// (the header occupies row 0). Cells with Rowspan > 1 are registered with
// tracker here, at their starting row; the caller must call
// tracker.AdvanceRow(rowIndex+1) after drawing the separator below this
// row, not before.
func AssembleRow(cells []Cell, columns []Column, tracker *span.Tracker, rowIndex int, decorate ColumnDecorate) [][]Piece {
	n := len(columns)
	decorateCol := func(col int) Decorate {
		if decorate == nil {
			return nil
		}
		return decorate(col)
	}

	memberOf := make([]int, n)
	for i := range memberOf {
		memberOf[i] = -1
	}

	type coverage struct {
		startRow int
		startCol int
		colspan  int
		lines    []string
	}
	covered := make(map[int]coverage)
	for c := 0; c < n; c++ {
		if memberOf[c] != -1 {
			continue
		}
		if _, _, ok := tracker.IsOccupied(rowIndex, c); !ok {
			continue
		}
		startRow, startCol, colspan, _ := tracker.Start(rowIndex, c)
		lines, _ := tracker.Content(startRow, startCol)
		covered[startCol] = coverage{startRow: startRow, startCol: startCol, colspan: colspan, lines: lines}
		for m := startCol; m < startCol+colspan && m < n; m++ {
			memberOf[m] = startCol
		}
	}

	type placedCell struct {
		col     int
		colspan int
		valign  tw.VAlign
		lines   []string
		rowspan int
	}
	var own []placedCell
	height := 1
	for _, cell := range cells {
		if cell.Col < 0 || cell.Col >= n || memberOf[cell.Col] != -1 {
			continue
		}
		colspan := cell.Colspan
		if colspan < 1 {
			colspan = 1
		}
		width := mergedContentWidth(columns, cell.Col, colspan)
		pad := columns[cell.Col].Padding
		lines := FormatCell(cell.Text, Column{Width: width, Padding: pad}, cell.Align, decorateCol(cell.Col))
		if len(lines) > height {
			height = len(lines)
		}
		own = append(own, placedCell{col: cell.Col, colspan: colspan, valign: cell.VAlign, lines: lines, rowspan: cell.Rowspan})
		if cell.Rowspan > 1 {
			tracker.RegisterRowspan(rowIndex, cell.Col, cell.Rowspan, colspan, lines, cell.VAlign)
		}
	}

	out := make([][]Piece, height)
	for l := range out {
		out[l] = make([]Piece, n)
	}

	for _, pc := range own {
		blank := mergedBlank(columns, pc.col, pc.colspan)
		var placed []string
		if pc.rowspan > 1 {
			// A rowspan's own starting row is just the first row of its span:
			// it shows at most one content line, at the slot the covered loop
			// below would also compute for this same row, never the full
			// vertically-placed block (that would double-render the content
			// the covered loop re-emits on later rows).
			placed = make([]string, height)
			for l := range placed {
				placed[l] = blank
			}
			offset := tracker.ContentOffset(rowIndex, pc.col, len(pc.lines))
			if offset == 0 && len(pc.lines) > 0 {
				placed[0] = pc.lines[0]
			}
		} else {
			placed = verticalPlace(pc.lines, height, pc.valign, blank)
		}
		for l := 0; l < height; l++ {
			out[l][pc.col] = Piece{Text: placed[l]}
			for m := pc.col + 1; m < pc.col+pc.colspan && m < n; m++ {
				out[l][m] = Piece{Continuation: true}
			}
		}
	}

	for startCol, cv := range covered {
		offset := tracker.ContentOffset(cv.startRow, startCol, len(cv.lines))
		slot := rowIndex - cv.startRow - offset
		blank := mergedBlank(columns, startCol, cv.colspan)
		text := blank
		if slot >= 0 && slot < len(cv.lines) {
			text = cv.lines[slot]
		}
		out[0][startCol] = Piece{Text: text}
		for m := startCol + 1; m < startCol+cv.colspan && m < n; m++ {
			out[0][m] = Piece{Continuation: true}
		}
		for l := 1; l < height; l++ {
			out[l][startCol] = Piece{Text: blank}
			for m := startCol + 1; m < startCol+cv.colspan && m < n; m++ {
				out[l][m] = Piece{Continuation: true}
			}
		}
	}

	// Columns no cell reaches (a row shorter than the table) render blank.
	for l := range out {
		for c := range out[l] {
			if out[l][c] == (Piece{}) {
				out[l][c] = Piece{Text: mergedBlank(columns, c, 1)}
			}
		}
	}

	for c, col := range columns {
		if col.Hidden {
			for l := range out {
				out[l][c] = Piece{}
			}
		}
	}

	return out
}
