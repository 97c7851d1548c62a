package tw

// TableComponent names a single position in the border grid that a preset
// may or may not supply a glyph for. The closed set mirrors the corners,
// borders, intersections, and merge-intersections a renderer needs to
// distinguish when deciding whether to draw a given line or column.
type TableComponent int

const (
	TopLeftCorner TableComponent = iota
	TopBorder
	TopBorderIntersections
	TopRightCorner

	LeftBorder
	LeftBorderIntersections
	LeftHeaderIntersection

	RightBorder
	RightBorderIntersections
	RightHeaderIntersection

	HorizontalLines
	MiddleIntersections

	HeaderLines
	MiddleHeaderIntersections
	MiddleHeaderMergeIntersection

	BottomLeftCorner
	BottomBorder
	BottomBorderIntersections
	BottomRightCorner

	VerticalLines
)

// Preset is a style map: a TableComponent position maps to the glyph drawn
// there, or is simply absent if that position draws nothing. A Preset is
// opaque data — two presets with the same glyph assignments behave
// identically regardless of how they were constructed.
type Preset Mapper[TableComponent, string]

// Glyph returns the glyph assigned to c and whether the position is set at
// all (an explicitly empty-string glyph and an unset position both count as
// "not set", matching the source's treatment of "" as invisible).
func (p Preset) Glyph(c TableComponent) (string, bool) {
	if p == nil {
		return "", false
	}
	v, ok := p[c]
	return v, ok && v != ""
}

func (p Preset) set(c TableComponent, v string) {
	if v == "" {
		return
	}
	p[c] = v
}

// NewPreset derives a full TableComponent preset from a Symbols glyph
// catalogue (one of the named border styles, or a SymbolCustom/SymbolSpecial
// built by the caller), reusing the glyph vocabulary the teacher's BorderStyle
// catalogue already ships.
func NewPreset(sym Symbols) Preset {
	p := make(Preset)
	p.set(TopLeftCorner, sym.TopLeft())
	p.set(TopBorder, sym.Row())
	p.set(TopBorderIntersections, sym.TopMid())
	p.set(TopRightCorner, sym.TopRight())

	p.set(LeftBorder, sym.Column())
	p.set(LeftBorderIntersections, sym.MidLeft())
	p.set(LeftHeaderIntersection, sym.HeaderLeft())

	p.set(RightBorder, sym.Column())
	p.set(RightBorderIntersections, sym.MidRight())
	p.set(RightHeaderIntersection, sym.HeaderRight())

	p.set(HorizontalLines, sym.Row())
	p.set(MiddleIntersections, sym.Center())

	p.set(HeaderLines, sym.Row())
	p.set(MiddleHeaderIntersections, sym.HeaderMid())
	p.set(MiddleHeaderMergeIntersection, sym.HeaderMid())

	p.set(BottomLeftCorner, sym.BottomLeft())
	p.set(BottomBorder, sym.Row())
	p.set(BottomBorderIntersections, sym.BottomMid())
	p.set(BottomRightCorner, sym.BottomRight())

	p.set(VerticalLines, sym.Column())
	return p
}

// Library-provided presets, named per the external-interfaces contract.
var (
	UTF8Full  = NewPreset(NewSymbols(StyleLight))
	ASCIIFull = NewPreset(NewSymbols(StyleASCII))
	Nothing   = NewPreset(NewSymbols(StyleNone))
)

func (p Preset) has(cs ...TableComponent) bool {
	for _, c := range cs {
		if _, ok := p.Glyph(c); ok {
			return true
		}
	}
	return false
}

// ShouldDrawTopBorder reports whether any top-border component is set.
func (p Preset) ShouldDrawTopBorder() bool {
	return p.has(TopLeftCorner, TopBorder, TopBorderIntersections, TopRightCorner)
}

// ShouldDrawBottomBorder reports whether any bottom-border component is set.
func (p Preset) ShouldDrawBottomBorder() bool {
	return p.has(BottomLeftCorner, BottomBorder, BottomBorderIntersections, BottomRightCorner)
}

// ShouldDrawLeftBorder reports whether any left-border component is set.
func (p Preset) ShouldDrawLeftBorder() bool {
	return p.has(TopLeftCorner, LeftBorder, LeftBorderIntersections, LeftHeaderIntersection, BottomLeftCorner)
}

// ShouldDrawRightBorder reports whether any right-border component is set.
func (p Preset) ShouldDrawRightBorder() bool {
	return p.has(TopRightCorner, RightBorder, RightBorderIntersections, RightHeaderIntersection, BottomRightCorner)
}

// ShouldDrawHorizontalLines reports whether inter-row separators are drawn.
func (p Preset) ShouldDrawHorizontalLines() bool {
	return p.has(LeftBorderIntersections, HorizontalLines, MiddleIntersections, RightBorderIntersections)
}

// ShouldDrawVerticalLines reports whether inter-column separators are drawn.
func (p Preset) ShouldDrawVerticalLines() bool {
	return p.has(TopBorderIntersections, MiddleHeaderIntersections, VerticalLines, MiddleIntersections, BottomBorderIntersections)
}

// ShouldDrawHeaderSeparator reports whether the header/body separator line is drawn.
func (p Preset) ShouldDrawHeaderSeparator() bool {
	return p.has(LeftHeaderIntersection, HeaderLines, MiddleHeaderIntersections, RightHeaderIntersection)
}
