package render

import (
	"strings"

	"github.com/olekukonko/boxtable/internal/span"
	"github.com/olekukonko/boxtable/tw"
)

// BuildContinuationMap reports, for numColumns logical columns, which
// column positions are colspan continuations (covered by a cell that
// started at an earlier column), and whether every cell in cells has
// colspan > 1 (a header built entirely from spanning cells does not
// establish real column boundaries, so the top border should not merge
// across it).
func BuildContinuationMap(cells []Cell, numColumns int) (continuation []bool, allColspan bool) {
	continuation = make([]bool, numColumns)
	if len(cells) == 0 {
		return continuation, false
	}
	allColspan = true
	col := 0
	for _, cell := range cells {
		colspan := cell.Colspan
		if colspan < 1 {
			colspan = 1
		}
		if colspan == 1 {
			allColspan = false
		}
		for i := 1; i < colspan; i++ {
			if col+i < numColumns {
				continuation[col+i] = true
			}
		}
		col += colspan
	}
	return continuation, allColspan
}

func nextVisibleFrom(columns []Column, from int) int {
	for c := from + 1; c < len(columns); c++ {
		if !columns[c].Hidden {
			return c
		}
	}
	return -1
}

func advanceSpan(columns []Column, start, colspan int) int {
	end := start + colspan
	if end > len(columns) {
		end = len(columns)
	}
	return end
}

// EmbedLine concatenates one visual line's per-column Pieces into one
// string, adding the left/right border glyphs and skipping the interior
// vertical separator wherever the following piece is a continuation.
func EmbedLine(pieces []Piece, columns []Column, preset tw.Preset) string {
	var b strings.Builder
	if preset.ShouldDrawLeftBorder() {
		if g, ok := preset.Glyph(tw.LeftBorder); ok {
			b.WriteString(g)
		}
	}

	for c := 0; c < len(columns); c++ {
		if columns[c].Hidden {
			continue
		}
		b.WriteString(pieces[c].Text)

		next := nextVisibleFrom(columns, c)
		if next == -1 {
			if preset.ShouldDrawRightBorder() {
				if g, ok := preset.Glyph(tw.RightBorder); ok {
					b.WriteString(g)
				}
			}
			continue
		}
		if pieces[next].Continuation {
			continue
		}
		if preset.ShouldDrawVerticalLines() {
			if g, ok := preset.Glyph(tw.VerticalLines); ok {
				b.WriteString(g)
			}
		}
	}
	return b.String()
}

// DrawTopBorder renders the table's top border, merging across a header
// cell's colspan unless arrangement is Dynamic/DynamicFullWidth (dynamic
// widths no longer align with the header's own column boundaries) or every
// header cell spans more than one column.
func DrawTopBorder(columns []Column, headerContinuation []bool, allHeaderColspan bool, arrangement tw.ContentArrangement, preset tw.Preset) string {
	if !preset.ShouldDrawTopBorder() {
		return ""
	}
	border, _ := preset.Glyph(tw.TopBorder)
	intersection, _ := preset.Glyph(tw.TopBorderIntersections)
	isDynamic := arrangement == tw.Dynamic || arrangement == tw.DynamicFullWidth
	shouldMerge := !allHeaderColspan && !isDynamic

	var b strings.Builder
	if preset.ShouldDrawLeftBorder() {
		if g, ok := preset.Glyph(tw.TopLeftCorner); ok {
			b.WriteString(g)
		}
	}

	first := true
	for c, col := range columns {
		if col.Hidden {
			continue
		}
		if !first {
			if shouldMerge && c < len(headerContinuation) && headerContinuation[c] {
				b.WriteString(border)
			} else {
				b.WriteString(intersection)
			}
		}
		b.WriteString(strings.Repeat(border, totalWidth(col)))
		first = false
	}

	if preset.ShouldDrawRightBorder() {
		if g, ok := preset.Glyph(tw.TopRightCorner); ok {
			b.WriteString(g)
		}
	}
	return b.String()
}

// DrawBottomBorder renders the table's bottom border. A row-span that
// reaches the last data row draws a continuous line across its spanned
// columns (no intersection). Otherwise the last row's own colspan merges
// into a continuous line when the header shared that same colspan, or when
// the table has two or fewer data rows.
func DrawBottomBorder(columns []Column, headerContinuation, lastRowContinuation []bool, tracker *span.Tracker, lastRowIndex, dataRowCount int, preset tw.Preset) string {
	if !preset.ShouldDrawBottomBorder() {
		return ""
	}
	border, _ := preset.Glyph(tw.BottomBorder)
	intersection, _ := preset.Glyph(tw.BottomBorderIntersections)

	var b strings.Builder
	if preset.ShouldDrawLeftBorder() {
		if g, ok := preset.Glyph(tw.BottomLeftCorner); ok {
			b.WriteString(g)
		}
	}

	n := len(columns)
	first := true
	c := 0
	for c < n {
		if columns[c].Hidden {
			c++
			continue
		}

		if _, startCol, colspan, ok := tracker.StartAtLastRow(lastRowIndex, c); ok {
			end := advanceSpan(columns, startCol, colspan)
			wrote := false
			if !first {
				b.WriteString(intersection)
			}
			for m := startCol; m < end; m++ {
				if columns[m].Hidden {
					continue
				}
				if wrote {
					b.WriteString(border)
				}
				b.WriteString(strings.Repeat(border, totalWidth(columns[m])))
				wrote = true
			}
			c = end
			first = false
			continue
		}

		if !first {
			headerMerge := c < len(headerContinuation) && headerContinuation[c]
			rowMerge := c < len(lastRowContinuation) && lastRowContinuation[c]
			fewRows := dataRowCount <= 2
			if rowMerge && (headerMerge || fewRows) {
				b.WriteString(border)
			} else {
				b.WriteString(intersection)
			}
		}
		b.WriteString(strings.Repeat(border, totalWidth(columns[c])))
		first = false
		c++
	}

	if preset.ShouldDrawRightBorder() {
		if g, ok := preset.Glyph(tw.BottomRightCorner); ok {
			b.WriteString(g)
		}
	}
	return b.String()
}

type separatorStyle struct {
	horizontal   string
	left         string
	right        string
	middle       string
	merge        string
	afterRowspan string
}

func separatorGlyphs(preset tw.Preset, header bool) separatorStyle {
	afterRowspan, _ := preset.Glyph(tw.LeftBorderIntersections)
	if header {
		h, _ := preset.Glyph(tw.HeaderLines)
		left, _ := preset.Glyph(tw.LeftHeaderIntersection)
		right, _ := preset.Glyph(tw.RightHeaderIntersection)
		mid, _ := preset.Glyph(tw.MiddleHeaderIntersections)
		merge, _ := preset.Glyph(tw.MiddleHeaderMergeIntersection)
		return separatorStyle{horizontal: h, left: left, right: right, middle: mid, merge: merge, afterRowspan: afterRowspan}
	}
	h, _ := preset.Glyph(tw.HorizontalLines)
	left, _ := preset.Glyph(tw.LeftBorderIntersections)
	right, _ := preset.Glyph(tw.RightBorderIntersections)
	mid, _ := preset.Glyph(tw.MiddleIntersections)
	// Body rows have no dedicated merge glyph: a merge intersection simply
	// continues the horizontal line (glossary: "joins two segments without
	// drawing the perpendicular separator").
	return separatorStyle{horizontal: h, left: left, right: right, middle: mid, merge: h, afterRowspan: afterRowspan}
}

func (s separatorStyle) intersection(header, previousWasRowspan, nextHasColspan bool) string {
	switch {
	case !header && previousWasRowspan:
		return s.afterRowspan
	case nextHasColspan:
		return s.merge
	default:
		return s.middle
	}
}

func isContinuingAt(tracker *span.Tracker, rowIndex, col int) bool {
	_, _, _, ok := tracker.StartAtRow(rowIndex, col)
	return ok
}

func nextHasColspan(nextRowPieces []Piece, col int) bool {
	return col < len(nextRowPieces) && nextRowPieces[col].Continuation
}

func rowspanSpaceWidth(columns []Column, start, colspan int) int {
	end := advanceSpan(columns, start, colspan)
	width := 0
	visible := 0
	for c := start; c < end; c++ {
		if columns[c].Hidden {
			continue
		}
		width += totalWidth(columns[c])
		visible++
	}
	if visible > 1 {
		width += visible - 1
	}
	return width
}

// DrawSeparator renders the horizontal line between rowIndex and the row
// that follows it. rowPieces is rowIndex's own first visual line and
// nextRowPieces the following row's first visual line (both used only to
// detect colspan continuations at this boundary, via Piece.Continuation).
// header selects the header/body glyph set. The caller must call
// tracker.AdvanceRow(rowIndex+1) only after this call, since the
// remaining-rows state it reads reflects spans as of rowIndex.
func DrawSeparator(columns []Column, tracker *span.Tracker, rowIndex int, rowPieces, nextRowPieces []Piece, header bool, preset tw.Preset) string {
	if header {
		if !preset.ShouldDrawHeaderSeparator() {
			return ""
		}
	} else if !preset.ShouldDrawHorizontalLines() {
		return ""
	}

	style := separatorGlyphs(preset, header)
	n := len(columns)
	var b strings.Builder

	first := nextVisibleFrom(columns, -1)
	leftIsRowspan := !header && first >= 0 && isContinuingAt(tracker, rowIndex, first)
	if preset.ShouldDrawLeftBorder() {
		if leftIsRowspan {
			b.WriteString(style.afterRowspan)
		} else {
			b.WriteString(style.left)
		}
	}

	isFirst := true
	previousWasRowspan := false
	c := 0
	for c < n {
		if columns[c].Hidden {
			c++
			continue
		}

		if isContinuingAt(tracker, rowIndex, c) {
			_, startCol, colspan, _ := tracker.StartAtRow(rowIndex, c)
			b.WriteString(strings.Repeat(tw.Space, rowspanSpaceWidth(columns, startCol, colspan)))
			c = advanceSpan(columns, startCol, colspan)
			isFirst = false
			previousWasRowspan = true
			continue
		}

		if startRow, startCol, colspan, ok := tracker.StartIncludingRow(rowIndex, c); ok {
			_ = startRow
			if !isFirst {
				b.WriteString(style.intersection(header, previousWasRowspan, nextHasColspan(nextRowPieces, c)))
			}
			end := advanceSpan(columns, startCol, colspan)
			wrote := false
			for m := startCol; m < end; m++ {
				if columns[m].Hidden {
					continue
				}
				if wrote {
					b.WriteString(style.horizontal)
				}
				b.WriteString(strings.Repeat(style.horizontal, totalWidth(columns[m])))
				wrote = true
			}
			c = end
			isFirst = false
			previousWasRowspan = false
			continue
		}

		if c < len(rowPieces) && rowPieces[c].Continuation {
			b.WriteString(strings.Repeat(style.horizontal, totalWidth(columns[c])))
			c++
			continue
		}

		colspan := 1
		total := totalWidth(columns[c])
		for c+colspan < n {
			nc := c + colspan
			if columns[nc].Hidden {
				colspan++
				continue
			}
			if nc < len(rowPieces) && rowPieces[nc].Continuation && !isContinuingAt(tracker, rowIndex, nc) {
				total += 1 + totalWidth(columns[nc])
				colspan++
				continue
			}
			break
		}

		if !isFirst {
			b.WriteString(style.intersection(header, previousWasRowspan, nextHasColspan(nextRowPieces, c)))
		}
		b.WriteString(strings.Repeat(style.horizontal, total))
		c += colspan
		isFirst = false
		previousWasRowspan = false
	}

	if preset.ShouldDrawRightBorder() {
		b.WriteString(style.right)
	}
	return b.String()
}
