// Package boxtable renders text tables with wrapped, aligned, colspan- and
// rowspan-aware cells to any io.Writer.
package boxtable

import (
	"io"

	"github.com/olekukonko/errors"
	"github.com/olekukonko/ll"

	"github.com/olekukonko/boxtable/render"
	"github.com/olekukonko/boxtable/style"
	"github.com/olekukonko/boxtable/term"
	"github.com/olekukonko/boxtable/tw"
)

// Cell is one input cell of a header, data, or footer row. Colspan and
// Rowspan below 1 are treated as 1. A column position is never specified
// directly — cells are placed left to right in the order given, skipping any
// column still covered by a row-span begun in an earlier row.
type Cell struct {
	Text    string
	Colspan int
	Rowspan int
	Align   tw.Align
	VAlign  tw.VAlign
}

// Text constructs a plain, unspanned, default-aligned Cell.
func Text(s string) Cell { return Cell{Text: s} }

// Row is one line of input cells, either a data row or a header/footer row.
type Row []Cell

// TextRow builds a Row of plain unspanned cells from strings, the common
// case for data without spans or alignment overrides.
func TextRow(cells ...string) Row {
	row := make(Row, len(cells))
	for i, c := range cells {
		row[i] = Cell{Text: c}
	}
	return row
}

// Table assembles header, data, and footer rows into a bordered, word-
// wrapped, column-aligned text table.
type Table struct {
	writer      io.Writer
	columns     map[int]tw.ColumnConfig
	header      Row
	rows        []Row
	footer      Row
	preset      tw.Preset
	arrangement tw.ContentArrangement
	maxWidth    int
	decorate    render.Decorate
	theme       *style.Theme
	logger      *ll.Logger
}

// Option configures a Table at construction time.
type Option func(*Table)

// NewTable creates a Table that writes to w once Render is called.
func NewTable(w io.Writer, opts ...Option) *Table {
	t := &Table{
		writer:      w,
		columns:     make(map[int]tw.ColumnConfig),
		preset:      tw.ASCIIFull,
		arrangement: tw.Disabled,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// WithHeader sets the table's header row.
func WithHeader(cells ...Cell) Option {
	return func(t *Table) { t.header = cells }
}

// WithFooter sets the table's footer row.
func WithFooter(cells ...Cell) Option {
	return func(t *Table) { t.footer = cells }
}

// WithPreset selects the border glyph set (see tw.UTF8Full, tw.ASCIIFull,
// tw.Nothing, or a custom tw.NewPreset).
func WithPreset(p tw.Preset) Option {
	return func(t *Table) { t.preset = p }
}

// WithArrangement selects how the column-width solver (internal/layout)
// reconciles intrinsic column demand against WithMaxWidth's budget.
func WithArrangement(a tw.ContentArrangement) Option {
	return func(t *Table) { t.arrangement = a }
}

// WithMaxWidth sets the table's total-width budget. 0 (the default) means
// unbounded: every column renders at its intrinsic maximum width.
func WithMaxWidth(width int) Option {
	return func(t *Table) {
		if width < 0 {
			width = 0
		}
		t.maxWidth = width
	}
}

// WithDecorate sets a styling callback applied to every formatted cell after
// wrapping, alignment, and padding are finalized (see render.Decorate).
func WithDecorate(d render.Decorate) Option {
	return func(t *Table) { t.decorate = d }
}

// WithAutoWidth sets the table's width budget from the controlling
// terminal's current width (term.Width), for callers rendering straight to
// an interactive terminal rather than a fixed-width destination.
func WithAutoWidth() Option {
	return func(t *Table) { t.maxWidth = term.Width() }
}

// WithTheme applies a style.Theme's header, footer, and per-column
// decoration to the table in one call. While a theme is set, the WithDecorate
// callback is not used; column config set via WithColumn is left unchanged.
func WithTheme(theme style.Theme) Option {
	return func(t *Table) { t.theme = &theme }
}

// WithColumn sets the alignment, vertical alignment, padding, and width
// constraint for column index col, overriding the library defaults
// (tw.NewColumnConfig) for that column.
func WithColumn(col int, cfg tw.ColumnConfig) Option {
	return func(t *Table) { t.columns[col] = cfg }
}

// WithLogger attaches a debug logger. A nil logger (the default) disables
// logging entirely.
func WithLogger(logger *ll.Logger) Option {
	return func(t *Table) { t.logger = logger }
}

// Header replaces the table's header row.
func (t *Table) Header(cells ...Cell) {
	t.header = cells
	t.debugf("Header set with %d cells", len(cells))
}

// Footer replaces the table's footer row.
func (t *Table) Footer(cells ...Cell) {
	t.footer = cells
	t.debugf("Footer set with %d cells", len(cells))
}

// Append adds one data row built from plain cell values (no spans or
// alignment overrides). Use AppendRow for spans or per-cell alignment.
func (t *Table) Append(values ...string) error {
	return t.AppendRow(TextRow(values...)...)
}

// AppendRow adds one data row of fully specified cells.
func (t *Table) AppendRow(cells ...Cell) error {
	if len(cells) == 0 {
		return errors.New("boxtable: cannot append an empty row")
	}
	t.rows = append(t.rows, cells)
	t.debugf("row %d appended with %d cells", len(t.rows)-1, len(cells))
	return nil
}

// ForColumn returns a fluent builder for column col's configuration,
// grounded on the teacher's ColumnConfigBuilder shape.
func (t *Table) ForColumn(col int) *ColumnBuilder {
	cfg, ok := t.columns[col]
	if !ok {
		cfg = tw.NewColumnConfig()
	}
	return &ColumnBuilder{table: t, col: col, cfg: cfg}
}

func (t *Table) debugf(format string, args ...any) {
	if t.logger != nil {
		t.logger.Debugf(format, args...)
	}
}

func (t *Table) columnConfig(col int) tw.ColumnConfig {
	if cfg, ok := t.columns[col]; ok {
		return cfg
	}
	return tw.NewColumnConfig()
}
