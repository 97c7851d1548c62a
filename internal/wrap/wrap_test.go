package wrap

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single word", "hello", []string{"hello"}},
		{"two words", "hello world", []string{"hello", "world"}},
		{"hard newline", "a\nb", []string{"a", "\n", "b"}},
		{"consecutive newlines", "a\n\nb", []string{"a", "\n", "\n", "b"}},
		{"extra whitespace collapses", "a   b", []string{"a", "b"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Tokenize(c.in)
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("Tokenize(%q) = %#v, want %#v", c.in, got, c.want)
			}
		})
	}
}

func TestLinesBasic(t *testing.T) {
	got := Lines("hello world", 20)
	want := []string{"hello world"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Lines = %#v, want %#v", got, want)
	}
}

func TestLinesWrapsOnWidth(t *testing.T) {
	got := Lines("one two three", 7)
	want := []string{"one two", "three"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Lines = %#v, want %#v", got, want)
	}
}

func TestLinesEmptyContent(t *testing.T) {
	got := Lines("", 10)
	want := []string{""}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Lines(empty) = %#v, want %#v", got, want)
	}
}

func TestLinesHardNewlines(t *testing.T) {
	got := Lines("a\n\nb", 10)
	want := []string{"a", "", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Lines = %#v, want %#v", got, want)
	}
}

func TestLinesBreaksOversizeToken(t *testing.T) {
	got := Lines("reallylongwordthatshoulddynamicallywrap", 10)
	for _, line := range got {
		if w := displayWidth(line); w > 10 {
			t.Errorf("line %q has width %d, want <= 10", line, w)
		}
	}
	if reassembled := joinNoSpace(got); reassembled != "reallylongwordthatshoulddynamicallywrap" {
		t.Errorf("reassembled = %q, want original token preserved", reassembled)
	}
}

func TestLinesZeroWidthTreatedAsOne(t *testing.T) {
	got := Lines("ab", 0)
	if len(got) != 2 {
		t.Fatalf("Lines with width 0 = %#v, want 2 single-char lines", got)
	}
}

func displayWidth(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

func joinNoSpace(lines []string) string {
	out := ""
	for _, l := range lines {
		out += l
	}
	return out
}
