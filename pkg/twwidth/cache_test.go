package twwidth

import (
	"strconv"
	"sync"
	"testing"
)

func TestSetCacheCapacityDisablesCache(t *testing.T) {
	defer resetGlobalCache()

	SetCacheCapacity(0)
	if widthCache != nil {
		t.Fatal("expected widthCache to be nil after SetCacheCapacity(0)")
	}
	// Width must still work with caching disabled.
	if got := Width("hello"); got != 5 {
		t.Errorf("Width with cache disabled = %d, want 5", got)
	}
}

func TestSetCacheCapacityResizes(t *testing.T) {
	defer resetGlobalCache()

	SetCacheCapacity(2)
	Width("a")
	Width("b")
	Width("c") // evicts "a"

	if widthCache.Cap() != 2 {
		t.Fatalf("Cap() = %d, want 2", widthCache.Cap())
	}
	if widthCache.Len() > 2 {
		t.Fatalf("Len() = %d, want <= 2", widthCache.Len())
	}
}

func TestCacheKeyDistinguishesEastAsianMode(t *testing.T) {
	defer resetGlobalCache()
	SetCacheCapacity(16)

	SetEastAsian(false)
	narrow := Width("±")
	SetEastAsian(true)
	wide := Width("±")

	if narrow == wide {
		t.Fatal("expected east-asian and narrow width results to differ for ambiguous-width runes")
	}
}

func TestConcurrentWidthAccess(t *testing.T) {
	defer resetGlobalCache()
	SetCacheCapacity(64)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			Width("key-" + strconv.Itoa(i%8))
		}(i)
	}
	wg.Wait()
}
