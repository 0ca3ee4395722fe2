// Package cache implements an exact, fixed-capacity LRU cache.
//
// The core data structure is explicit:
//   - a map from key to arena slot gives O(1) lookup
//   - a doubly-linked recency chain, threaded through the arena by slot index,
//     gives O(1) move-to-front and O(1) eviction from the back
//
// Usage:
//
//	c, err := cache.New[string, int](2)
//	if err != nil {
//		return err
//	}
//	c.Set("a", 1)
//	c.Set("b", 2)
//	c.Get("a")    // a becomes most recently used
//	c.Set("c", 3) // evicts b
//
// The cache is single-threaded. It has no TTL, no eviction callbacks and no persistence.
package cache
