package twwidth

import (
	"os"
	"regexp"
	"strings"
	"sync"

	runewidth "github.com/mattn/go-runewidth"

	"github.com/olekukonko/boxtable/pkg/twcache"
)

// ansiPattern matches ANSI/VT100 escape sequences (SGR color codes, cursor
// movement, etc.) so they can be stripped before measuring display width.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// Filter returns the regular expression used to strip ANSI escape codes.
func Filter() *regexp.Regexp {
	return ansiPattern
}

var (
	mu            sync.RWMutex
	eastAsian     bool
	cacheCapacity = 4096
)

func init() {
	eastAsian = AutoUseEastAsian()
	if v, ok := os.LookupEnv("RUNEWIDTH_EASTASIAN"); ok {
		eastAsian = v == "1"
	}
	widthCache = newLRUCache(cacheCapacity)
}

// SetEastAsian overrides whether wide East-Asian runes count as width 2,
// bypassing the environment-based auto-detection in AutoUseEastAsian.
func SetEastAsian(v bool) {
	mu.Lock()
	eastAsian = v
	mu.Unlock()
}

// IsEastAsian reports the East-Asian-width mode currently in effect.
func IsEastAsian() bool {
	mu.RLock()
	defer mu.RUnlock()
	return eastAsian
}

func condition() *runewidth.Condition {
	return &runewidth.Condition{EastAsianWidth: IsEastAsian()}
}

// Width returns the display width of s with ANSI escapes stripped,
// memoized in an LRU cache keyed by (east-asian mode, string).
func Width(s string) int {
	key := cacheKey{eastAsian: IsEastAsian(), str: s}
	if widthCache != nil {
		return widthCache.GetOrCompute(key, func() int {
			return WidthNoCache(s)
		})
	}
	return WidthNoCache(s)
}

// WidthNoCache is Width without the memoizing cache, for callers that
// already know the input won't repeat (or are measuring the cache itself).
func WidthNoCache(s string) int {
	clean := expandTabs(ansiPattern.ReplaceAllString(s, ""))
	return Display(condition(), clean)
}

// expandTabs replaces each tab with TabWidth() spaces so a literal tab
// contributes its detected column width rather than the single rune width
// go-runewidth would otherwise give it.
func expandTabs(s string) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", TabWidth()))
}

// Display measures the display width of s (assumed already free of ANSI
// escapes) under the given go-runewidth condition.
func Display(cond *runewidth.Condition, s string) int {
	if cond == nil {
		cond = condition()
	}
	return cond.StringWidth(s)
}

// Truncate shortens s to fit within maxWidth display columns, appending
// suffix (if given) when truncation occurs. ANSI escapes are stripped first.
// If maxWidth is too small to fit even the suffix, the suffix alone is
// returned truncated to maxWidth; a maxWidth <= 0 yields "".
func Truncate(s string, maxWidth int, suffix ...string) string {
	clean := expandTabs(ansiPattern.ReplaceAllString(s, ""))
	if maxWidth <= 0 {
		return ""
	}

	suf := ""
	if len(suffix) > 0 {
		suf = strings.Join(suffix, "")
	}

	cond := condition()
	if Display(cond, clean) <= maxWidth {
		return clean
	}

	sufWidth := Display(cond, suf)
	if sufWidth >= maxWidth {
		return truncateToWidth(cond, suf, maxWidth)
	}

	return truncateToWidth(cond, clean, maxWidth-sufWidth) + suf
}

// truncateToWidth returns the longest prefix of s (in whole runes) whose
// display width is <= width.
func truncateToWidth(cond *runewidth.Condition, s string, width int) string {
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	used := 0
	for _, r := range s {
		rw := cond.RuneWidth(r)
		if used+rw > width {
			break
		}
		b.WriteRune(r)
		used += rw
	}
	return b.String()
}
