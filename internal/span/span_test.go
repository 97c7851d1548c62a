package span

import (
	"testing"

	"github.com/olekukonko/boxtable/tw"
)

func TestRegisterRowspanIgnoresNonSpan(t *testing.T) {
	tr := NewTracker()
	tr.RegisterRowspan(0, 0, 1, 1, []string{"x"}, tw.VAlignTop)
	if len(tr.active) != 0 {
		t.Fatalf("rowspan=1 should not register a span, got %d active", len(tr.active))
	}
}

func TestIsOccupiedAcrossRows(t *testing.T) {
	tr := NewTracker()
	tr.RegisterRowspan(0, 0, 3, 1, []string{"Centered"}, tw.VAlignMiddle)

	if _, _, ok := tr.IsOccupied(0, 0); ok {
		t.Fatalf("starting row should not be reported as occupied-by-earlier-row")
	}
	if remaining, colspan, ok := tr.IsOccupied(1, 0); !ok || remaining != 2 || colspan != 1 {
		t.Fatalf("IsOccupied(1,0) = (%d,%d,%v), want (2,1,true)", remaining, colspan, ok)
	}
}

func TestContentIncludesStartRow(t *testing.T) {
	tr := NewTracker()
	tr.RegisterRowspan(0, 0, 2, 1, []string{"Centered"}, tw.VAlignTop)
	if content, ok := tr.Content(0, 0); !ok || content[0] != "Centered" {
		t.Fatalf("Content at start row = %v,%v, want Centered,true", content, ok)
	}
	if content, ok := tr.Content(1, 0); !ok || content[0] != "Centered" {
		t.Fatalf("Content at continuation row = %v,%v, want Centered,true", content, ok)
	}
}

func TestContentOffsetMiddleAlignment(t *testing.T) {
	tr := NewTracker()
	tr.RegisterRowspan(0, 0, 3, 1, []string{"Centered"}, tw.VAlignMiddle)
	if off := tr.ContentOffset(0, 0, 1); off != 1 {
		t.Fatalf("ContentOffset = %d, want 1 (middle row of 3)", off)
	}
}

func TestContentOffsetTopAndBottom(t *testing.T) {
	tr := NewTracker()
	tr.RegisterRowspan(0, 0, 3, 1, []string{"x"}, tw.VAlignTop)
	if off := tr.ContentOffset(0, 0, 1); off != 0 {
		t.Fatalf("top offset = %d, want 0", off)
	}

	tr2 := NewTracker()
	tr2.RegisterRowspan(0, 0, 3, 1, []string{"x"}, tw.VAlignBottom)
	if off := tr2.ContentOffset(0, 0, 1); off != 2 {
		t.Fatalf("bottom offset = %d, want 2", off)
	}
}

func TestAdvanceRowExpiresSpanAfterLastDisplay(t *testing.T) {
	tr := NewTracker()
	tr.RegisterRowspan(0, 0, 2, 1, []string{"x"}, tw.VAlignTop)

	tr.AdvanceRow(1)
	if _, ok := tr.active[Key{Row: 0, Col: 0}]; !ok {
		t.Fatalf("span with remaining=1 should still be active after first advance")
	}

	tr.AdvanceRow(2)
	if _, ok := tr.active[Key{Row: 0, Col: 0}]; ok {
		t.Fatalf("span should have expired into ended after its last display row")
	}
	if _, ok := tr.ended[Key{Row: 0, Col: 0}]; !ok {
		t.Fatalf("expired span should be recorded in ended")
	}
}

func TestStartAtLastRowConsultsEndedSpans(t *testing.T) {
	tr := NewTracker()
	tr.RegisterRowspan(0, 0, 2, 1, []string{"x"}, tw.VAlignTop)
	tr.AdvanceRow(1)
	tr.AdvanceRow(2)

	sr, sc, cs, ok := tr.StartAtLastRow(1, 0)
	if !ok || sr != 0 || sc != 0 || cs != 1 {
		t.Fatalf("StartAtLastRow = (%d,%d,%d,%v), want (0,0,1,true)", sr, sc, cs, ok)
	}
}

func TestColspanBoundaryNotCovered(t *testing.T) {
	tr := NewTracker()
	tr.RegisterRowspan(0, 0, 2, 2, []string{"x"}, tw.VAlignTop)
	if tr.IsColOccupied(1, 2) {
		t.Fatalf("column 2 is outside a colspan=2 span starting at column 0")
	}
	if !tr.IsColOccupied(1, 1) {
		t.Fatalf("column 1 should be covered by a colspan=2 span starting at column 0")
	}
}
