package boxtable

import (
	"strings"

	"github.com/olekukonko/boxtable/internal/layout"
	"github.com/olekukonko/boxtable/internal/span"
	"github.com/olekukonko/boxtable/pkg/twwidth"
	"github.com/olekukonko/boxtable/render"
	"github.com/olekukonko/boxtable/tw"
)

// section is one logical row of the table together with the flag the border
// drawer needs to pick header- versus body-style glyphs.
type section struct {
	cells    Row
	isHeader bool
	isFooter bool
}

func (t *Table) sections() []section {
	var out []section
	if len(t.header) > 0 {
		out = append(out, section{cells: t.header, isHeader: true})
	}
	for _, r := range t.rows {
		out = append(out, section{cells: r})
	}
	if len(t.footer) > 0 {
		out = append(out, section{cells: t.footer, isFooter: true})
	}
	return out
}

// decorateFor picks the per-column styling callback for section i: a Theme,
// when set, colors the header and footer as a block and cycles a distinct
// style per data column (style.Theme.ForColumn); otherwise every column of
// every section shares the table's single WithDecorate callback.
func (t *Table) decorateFor(sections []section, i int) render.ColumnDecorate {
	if t.theme == nil {
		d := t.decorate
		return func(int) render.Decorate { return d }
	}
	switch {
	case sections[i].isHeader:
		d := t.theme.ForHeader()
		return func(int) render.Decorate { return d }
	case sections[i].isFooter:
		d := t.theme.ForFooter()
		return func(int) render.Decorate { return d }
	default:
		theme := t.theme
		return func(col int) render.Decorate { return theme.ForColumn(col) }
	}
}

// assignRow places cells left to right starting at column 0, skipping any
// column tracker reports as covered by a row-span begun in an earlier row.
// A colspan that would reach into such a covered column is cut short at it.
func assignRow(cells Row, tracker *span.Tracker, rowIndex int) []render.Cell {
	out := make([]render.Cell, 0, len(cells))
	col := 0
	for _, cell := range cells {
		for tracker.IsColOccupied(rowIndex, col) {
			col++
		}
		colspan := cell.Colspan
		if colspan < 1 {
			colspan = 1
		}
		for k := 1; k < colspan; k++ {
			if tracker.IsColOccupied(rowIndex, col+k) {
				colspan = k
				break
			}
		}
		out = append(out, render.Cell{
			Col:     col,
			Colspan: colspan,
			Rowspan: cell.Rowspan,
			Text:    cell.Text,
			Align:   cell.Align,
			VAlign:  cell.VAlign,
		})
		col += colspan
	}
	return out
}

// registerSpans records every Rowspan > 1 cell in assigned into tracker, for
// passes that need span geometry without running the full cell formatter
// (column counting, and the width-measuring pass).
func registerSpans(tracker *span.Tracker, rowIndex int, assigned []render.Cell) {
	for _, c := range assigned {
		if c.Rowspan > 1 {
			tracker.RegisterRowspan(rowIndex, c.Col, c.Rowspan, c.Colspan, nil, c.VAlign)
		}
	}
}

// columnCount walks every section once with a scratch tracker to determine
// how many logical columns the table has and the column assignment of every
// cell in every section, in one pass (assignRow's output is fully
// deterministic given the section order, so this assignment is reused by
// the measuring and rendering passes below).
func columnCount(sections []section) (numCols int, assigned [][]render.Cell) {
	tracker := span.NewTracker()
	assigned = make([][]render.Cell, len(sections))
	for i, sec := range sections {
		row := assignRow(sec.cells, tracker, i)
		assigned[i] = row
		for _, c := range row {
			if end := c.Col + c.Colspan; end > numCols {
				numCols = end
			}
		}
		registerSpans(tracker, i, row)
		tracker.AdvanceRow(i + 1)
	}
	return numCols, assigned
}

func (t *Table) separatorWidth() int {
	if g, ok := t.preset.Glyph(tw.VerticalLines); ok {
		return twwidth.Width(g)
	}
	return 0
}

// Lines renders the table into one string per output line, without a
// trailing newline on the last line. Calling it repeatedly is side-effect
// free and returns identical results each time, since it mutates no Table
// state.
func (t *Table) Lines() []string {
	sections := t.sections()
	numCols, assigned := columnCount(sections)
	if numCols == 0 {
		return nil
	}

	layoutCols := make([]layout.Column, numCols)
	renderColBase := make([]tw.ColumnConfig, numCols)
	for c := 0; c < numCols; c++ {
		cfg := t.columnConfig(c)
		renderColBase[c] = cfg
		layoutCols[c] = layout.Column{Constraint: cfg.Constraint, Padding: cfg.Padding}
	}

	// Resolve each cell's effective alignment against its column's default
	// now that every column's config is known (cell override > column
	// default > AlignLeft/VAlignTop, per ColumnConfig.ResolveAlign/ResolveVAlign).
	for _, row := range assigned {
		for i := range row {
			cfg := renderColBase[row[i].Col]
			row[i].Align = cfg.ResolveAlign(row[i].Align)
			row[i].VAlign = cfg.ResolveVAlign(row[i].VAlign)
		}
	}

	var layoutCells []layout.Cell
	for _, row := range assigned {
		for _, c := range row {
			layoutCells = append(layoutCells, layout.Cell{Col: c.Col, Colspan: c.Colspan, Text: c.Text})
		}
	}

	infos := layout.Solve(layoutCols, layoutCells, t.arrangement, t.maxWidth, t.separatorWidth())
	renderCols := make([]render.Column, numCols)
	for c, info := range infos {
		width := info.Width - renderColBase[c].Padding.Left - renderColBase[c].Padding.Right
		if width < 0 {
			width = 0
		}
		renderCols[c] = render.Column{Width: width, Padding: renderColBase[c].Padding, Hidden: info.Hidden}
	}

	// One tracker carries span registrations across both the row-assembly
	// pass (order-dependent on registration, not on AdvanceRow) and the
	// separator pass below (which needs AdvanceRow called once per row, per
	// AssembleRow's documented contract).
	tracker := span.NewTracker()
	pieces := make([][][]render.Piece, len(sections))
	for i, row := range assigned {
		pieces[i] = render.AssembleRow(row, renderCols, tracker, i, t.decorateFor(sections, i))
	}

	firstContinuation, allFirstColspan := render.BuildContinuationMap(assigned[0], numCols)
	lastIdx := len(sections) - 1
	lastContinuation, _ := render.BuildContinuationMap(assigned[lastIdx], numCols)

	var out []string
	if top := render.DrawTopBorder(renderCols, firstContinuation, allFirstColspan, t.arrangement, t.preset); top != "" {
		out = append(out, top)
	}

	for i := range sections {
		for _, line := range pieces[i] {
			out = append(out, render.EmbedLine(line, renderCols, t.preset))
		}
		if i+1 < len(sections) {
			var nextFirst []render.Piece
			if len(pieces[i+1]) > 0 {
				nextFirst = pieces[i+1][0]
			}
			if sep := render.DrawSeparator(renderCols, tracker, i, pieces[i][0], nextFirst, sections[i].isHeader, t.preset); sep != "" {
				out = append(out, sep)
			}
		}
		tracker.AdvanceRow(i + 1)
	}

	if bottom := render.DrawBottomBorder(renderCols, firstContinuation, lastContinuation, tracker, lastIdx, len(t.rows), t.preset); bottom != "" {
		out = append(out, bottom)
	}

	return out
}

// String joins Lines with newlines.
func (t *Table) String() string {
	return strings.Join(t.Lines(), "\n")
}

// Render writes the table to its writer, terminated by a trailing newline.
// Render is idempotent: repeated calls write the same content, since
// rendering reads Table state but never mutates it.
func (t *Table) Render() error {
	lines := t.Lines()
	if len(lines) == 0 {
		return nil
	}
	_, err := t.writer.Write([]byte(strings.Join(lines, "\n") + "\n"))
	return err
}
