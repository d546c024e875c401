package cache

import "time"

// Store is a keyed read cache. Entries go stale after their stale window and
// are evicted after the GC window; mutations invalidate by key or prefix.
type Store interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{}, staleAfter time.Duration)
	Invalidate(key string)
	InvalidatePrefix(prefix string)
}
