package twwidth

import "github.com/olekukonko/boxtable/pkg/twcache"

// widthCache stores memoized results of Width calculations to improve performance.
var widthCache *twcache.LRU[cacheKey, int]

type cacheKey struct {
	eastAsian bool
	str       string
}

func newLRUCache(capacity int) *twcache.LRU[cacheKey, int] {
	return twcache.NewLRU[cacheKey, int](capacity)
}

// SetCacheCapacity changes the cache size dynamically.
// If capacity <= 0, disables caching entirely.
func SetCacheCapacity(capacity int) {
	mu.Lock()
	defer mu.Unlock()

	cacheCapacity = capacity
	if capacity <= 0 {
		widthCache = nil // nil = fully disabled
		return
	}
	widthCache = newLRUCache(capacity)
}
