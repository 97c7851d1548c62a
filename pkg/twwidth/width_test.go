package twwidth

import "testing"

func resetGlobalCache() {
	mu.Lock()
	eastAsian = false
	cacheCapacity = 4096
	mu.Unlock()
	widthCache = newLRUCache(cacheCapacity)
}

func TestFilter(t *testing.T) {
	re := Filter()
	if re == nil {
		t.Fatal("Filter returned nil")
	}
	if got := re.ReplaceAllString("\x1b[31mred\x1b[0m", ""); got != "red" {
		t.Errorf("Filter did not strip ANSI codes, got %q", got)
	}
}

func TestSetEastAsian(t *testing.T) {
	defer resetGlobalCache()

	SetEastAsian(true)
	if !IsEastAsian() {
		t.Fatal("expected IsEastAsian() == true after SetEastAsian(true)")
	}
	SetEastAsian(false)
	if IsEastAsian() {
		t.Fatal("expected IsEastAsian() == false after SetEastAsian(false)")
	}
}

func TestWidth(t *testing.T) {
	defer resetGlobalCache()
	SetEastAsian(false)

	cases := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"ansi stripped", "\x1b[31mhello\x1b[0m", 5},
		{"space", "a b", 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Width(c.in); got != c.want {
				t.Errorf("Width(%q) = %d, want %d", c.in, got, c.want)
			}
		})
	}
}

func TestWidthEastAsian(t *testing.T) {
	defer resetGlobalCache()
	SetEastAsian(true)

	// each of these runs 2 columns wide under east-asian measurement.
	if got := Width("世界"); got != 4 {
		t.Errorf("Width(wide) = %d, want 4", got)
	}
}

func TestDisplay(t *testing.T) {
	cond := condition()
	if got := Display(cond, "abc"); got != 3 {
		t.Errorf("Display = %d, want 3", got)
	}
	if got := Display(nil, "abc"); got != 3 {
		t.Errorf("Display(nil cond) = %d, want 3", got)
	}
}

func TestTruncate(t *testing.T) {
	defer resetGlobalCache()
	SetEastAsian(false)

	cases := []struct {
		name     string
		in       string
		maxWidth int
		suffix   []string
		want     string
	}{
		{"fits exactly", "hello", 5, nil, "hello"},
		{"shorter than max", "hi", 10, nil, "hi"},
		{"zero width", "hello", 0, nil, ""},
		{"negative width", "hello", -1, nil, ""},
		{"plain truncate no suffix", "hello world", 5, nil, "hello"},
		{"truncate with suffix", "hello world", 8, []string{"..."}, "hello..."},
		{"suffix wider than max", "hello world", 2, []string{"..."}, ".."},
		{"ansi stripped before truncate", "\x1b[31mhello\x1b[0m world", 5, nil, "hello"},
		{"suffix equal to max", "hello world", 3, []string{"..."}, "..."},
		{"single rune suffix joins", "hello world", 6, []string{"", "…"}, "hello…"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Truncate(c.in, c.maxWidth, c.suffix...); got != c.want {
				t.Errorf("Truncate(%q, %d, %v) = %q, want %q", c.in, c.maxWidth, c.suffix, got, c.want)
			}
		})
	}
}

func TestConcurrentSetEastAsian(t *testing.T) {
	defer resetGlobalCache()
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func(i int) {
			SetEastAsian(i%2 == 0)
			_ = Width("hello")
			done <- struct{}{}
		}(i)
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}

func TestWidthCachesResult(t *testing.T) {
	defer resetGlobalCache()
	SetEastAsian(false)
	SetCacheCapacity(16)

	s := "repeated-string"
	first := Width(s)
	second := Width(s)
	if first != second {
		t.Fatalf("cached width changed between calls: %d vs %d", first, second)
	}
	if widthCache.Len() == 0 {
		t.Fatal("expected Width to populate the cache")
	}
}
