// Package span tracks active and ended row-spans across a table render so
// the row assembler and border drawer can ask, for any (row, col), whether
// that position is covered by a span that started earlier.
package span

import "github.com/olekukonko/boxtable/tw"

// Key identifies a span by the (row, col) position where it starts.
type Key struct {
	Row int
	Col int
}

type info struct {
	startRow  int
	total     int // original rowspan
	remaining int // rows still covered below the current row (rowspan-1 at the start row)
	colspan   int
	content   []string
	valign    tw.VAlign
}

type ended struct {
	endRow  int
	colspan int
}

// Tracker holds the span bookkeeping for one render pass. It is not safe
// for concurrent use; a render is single-threaded per table (see the
// concurrency model).
type Tracker struct {
	active map[Key]*info
	ended  map[Key]ended
}

// NewTracker returns an empty span tracker.
func NewTracker() *Tracker {
	return &Tracker{active: make(map[Key]*info), ended: make(map[Key]ended)}
}

// RegisterRowspan records a cell starting at (row, col) that spans rowspan
// rows and colspan columns, caching its formatted content lines and
// vertical alignment for later placement. A rowspan of 1 or less is not a
// span and is ignored.
func (t *Tracker) RegisterRowspan(row, col, rowspan, colspan int, content []string, valign tw.VAlign) {
	if rowspan <= 1 {
		return
	}
	if colspan < 1 {
		colspan = 1
	}
	t.active[Key{Row: row, Col: col}] = &info{
		startRow:  row,
		total:     rowspan,
		remaining: rowspan - 1,
		colspan:   colspan,
		content:   content,
		valign:    valign,
	}
}

func covers(k Key, v *info, col int) bool {
	return k.Col <= col && col < k.Col+v.colspan
}

// IsOccupied reports whether (row, col) is covered by a span that started
// strictly before row, returning its remaining row count and colspan.
func (t *Tracker) IsOccupied(row, col int) (remaining, colspan int, ok bool) {
	for k, v := range t.active {
		if k.Row < row && covers(k, v, col) {
			return v.remaining, v.colspan, true
		}
	}
	return 0, 0, false
}

// Content returns the cached formatted content lines for the span covering
// (row, col), including row == the span's own starting row.
func (t *Tracker) Content(row, col int) ([]string, bool) {
	for k, v := range t.active {
		if k.Row <= row && covers(k, v, col) {
			return v.content, true
		}
	}
	return nil, false
}

// ContentOffset returns the row offset, within a rowspan starting at
// startRow and covering col, where content of the given height should
// begin, per the span's vertical alignment.
func (t *Tracker) ContentOffset(startRow, col, contentHeight int) int {
	for k, v := range t.active {
		if k.Row == startRow && covers(k, v, col) {
			padding := v.total - contentHeight
			if padding < 0 {
				padding = 0
			}
			switch v.valign.Resolve() {
			case tw.VAlignMiddle:
				return padding / 2
			case tw.VAlignBottom:
				return padding
			default:
				return 0
			}
		}
	}
	return 0
}

// AdvanceRow moves spans that were just displayed in their final row from
// active into ended, then decrements the remaining-row counter of every
// other active span that started before currentRow. Call once after each
// data row is rendered.
func (t *Tracker) AdvanceRow(currentRow int) {
	for k, v := range t.active {
		if v.remaining == 0 {
			t.ended[k] = ended{endRow: v.startRow + v.total - 1, colspan: v.colspan}
			delete(t.active, k)
		}
	}
	for k, v := range t.active {
		if k.Row < currentRow && v.remaining > 0 {
			v.remaining--
		}
	}
}

// IsColOccupied reports whether (row, col) falls inside any span begun in
// an earlier row.
func (t *Tracker) IsColOccupied(row, col int) bool {
	_, _, ok := t.IsOccupied(row, col)
	return ok
}

// Start returns the origin and colspan of a span covering (row, col) that
// began strictly before row.
func (t *Tracker) Start(row, col int) (startRow, startCol, colspan int, ok bool) {
	for k, v := range t.active {
		if k.Row < row && covers(k, v, col) {
			return k.Row, k.Col, v.colspan, true
		}
	}
	return 0, 0, 0, false
}

// StartIncludingSelf is like Start but also matches a span whose own
// starting row equals row.
func (t *Tracker) StartIncludingSelf(row, col int) (startRow, startCol, colspan int, ok bool) {
	for k, v := range t.active {
		if k.Row <= row && covers(k, v, col) {
			return k.Row, k.Col, v.colspan, true
		}
	}
	return 0, 0, 0, false
}

// StartAtRow returns the origin of a span that is active at row (started
// at or before row) and still has rows remaining beyond it — used for
// border drawing between two rows both covered by the same span.
func (t *Tracker) StartAtRow(row, col int) (startRow, startCol, colspan int, ok bool) {
	for k, v := range t.active {
		if k.Row <= row && v.remaining > 0 && covers(k, v, col) {
			return k.Row, k.Col, v.colspan, true
		}
	}
	return 0, 0, 0, false
}

// StartIncludingRow returns the origin of a span whose full row range
// (from its own original rowspan) includes row, whether or not it has
// already been fully displayed — used to detect merge intersections
// between consecutive spans.
func (t *Tracker) StartIncludingRow(row, col int) (startRow, startCol, colspan int, ok bool) {
	for k, v := range t.active {
		endRow := k.Row + v.total - 1
		if k.Row <= row && endRow >= row && covers(k, v, col) {
			return k.Row, k.Col, v.colspan, true
		}
	}
	return 0, 0, 0, false
}

// StartAtLastRow is like StartIncludingRow but also consults spans that
// have already ended, for bottom-border drawing after the table's last
// data row has advanced past every span.
func (t *Tracker) StartAtLastRow(row, col int) (startRow, startCol, colspan int, ok bool) {
	if sr, sc, cs, ok := t.StartIncludingRow(row, col); ok {
		return sr, sc, cs, true
	}
	for k, e := range t.ended {
		if k.Row <= row && e.endRow >= row && k.Col <= col && col < k.Col+e.colspan {
			return k.Row, k.Col, e.colspan, true
		}
	}
	return 0, 0, 0, false
}
