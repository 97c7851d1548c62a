package render

import (
	"testing"

	"github.com/olekukonko/boxtable/tw"
)

func TestFormatCellPadsAndAligns(t *testing.T) {
	col := Column{Width: 5, Padding: tw.CellPadding{Left: 1, Right: 1}}
	lines := FormatCell("hi", col, tw.AlignLeft, nil)
	if len(lines) != 1 || lines[0] != " hi    " {
		t.Fatalf("lines = %#v, want [\" hi    \"]", lines)
	}
}

func TestFormatCellRightAlign(t *testing.T) {
	col := Column{Width: 5, Padding: tw.CellPadding{}}
	lines := FormatCell("hi", col, tw.AlignRight, nil)
	if lines[0] != "   hi" {
		t.Fatalf("lines[0] = %q, want %q", lines[0], "   hi")
	}
}

func TestFormatCellCenterAlign(t *testing.T) {
	col := Column{Width: 6, Padding: tw.CellPadding{}}
	lines := FormatCell("hi", col, tw.AlignCenter, nil)
	if lines[0] != "  hi  " {
		t.Fatalf("lines[0] = %q, want %q", lines[0], "  hi  ")
	}
}

func TestFormatCellAppliesDecorateAfterPadding(t *testing.T) {
	col := Column{Width: 4, Padding: tw.CellPadding{}}
	seen := ""
	lines := FormatCell("hi", col, tw.AlignLeft, func(s string) string {
		seen = s
		return "[" + s + "]"
	})
	if seen != "hi  " {
		t.Fatalf("decorate saw %q, want %q", seen, "hi  ")
	}
	if lines[0] != "[hi  ]" {
		t.Fatalf("lines[0] = %q, want %q", lines[0], "[hi  ]")
	}
}

func TestBlankWidth(t *testing.T) {
	col := Column{Width: 5, Padding: tw.CellPadding{Left: 1, Right: 2}}
	if b := Blank(col); len(b) != 8 {
		t.Fatalf("Blank width = %d, want 8", len(b))
	}
}
