package term

import "testing"

func TestWidthNeverReturnsZeroOrNegative(t *testing.T) {
	if w := Width(); w <= 0 {
		t.Fatalf("Width() = %d, want > 0", w)
	}
}

func TestDefaultWidthIsPositive(t *testing.T) {
	if DefaultWidth <= 0 {
		t.Fatalf("DefaultWidth = %d, want > 0", DefaultWidth)
	}
}
