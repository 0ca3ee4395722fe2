package cache

import (
	"errors"
	"fmt"
)

// none marks an absent slot: the end of the recency chain, or an empty cache.
const none = -1

var (
	// ErrInvalidCapacity is returned by New when capacity is below 1.
	ErrInvalidCapacity = errors.New("cache: capacity must be at least 1")

	// ErrInternalInconsistency reports a mismatch between the index and the recency chain.
	ErrInternalInconsistency = errors.New("cache: internal inconsistency")
)

// entry is one arena slot: a key-value pair plus its neighbors in recency order.
//
// newer points toward the most recently used end, older toward the least recently used end.
type entry[K comparable, V any] struct {
	key   K
	value V
	newer int
	older int
}

// LRU is a fixed-capacity least-recently-used cache.
//
// The core is a map from key to arena slot and a doubly-linked recency chain
// threaded through the arena by slot index. The arena is the only owner of
// entries; the index and the chain hold slot numbers.
//
// Keys must equal themselves, as with Go map keys: a float NaN key is never
// found again, so setting it twice breaks the index.
//
// LRU is not safe for concurrent use. Guard it with a single mutex if needed.
type LRU[K comparable, V any] struct {
	capacity int

	entries []entry[K, V]
	index   map[K]int

	newest int // most recently used slot
	oldest int // least recently used slot, the next eviction victim
}

// New constructs an empty cache holding at most capacity entries.
func New[K comparable, V any](capacity int) (*LRU[K, V], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}

	return &LRU[K, V]{
		capacity: capacity,
		entries:  make([]entry[K, V], 0, capacity),
		index:    make(map[K]int, capacity),
		newest:   none,
		oldest:   none,
	}, nil
}

// MustNew is like New but panics on an invalid capacity.
func MustNew[K comparable, V any](capacity int) *LRU[K, V] {
	c, err := New[K, V](capacity)
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the value stored under key and marks it most recently used.
//
// A miss returns the zero value and false and leaves the cache untouched.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	slot, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}

	c.moveToFront(slot)
	return c.entries[slot].value, true
}

// Set stores value under key and marks it most recently used.
//
// An existing key is updated in place. A new key on a full cache evicts the
// least recently used entry first. key must equal itself (no NaN).
//
// Complexity: O(1), at most one eviction.
func (c *LRU[K, V]) Set(key K, value V) {
	if slot, ok := c.index[key]; ok {
		c.entries[slot].value = value
		c.moveToFront(slot)
		return
	}

	var slot int
	if len(c.index) == c.capacity {
		slot = c.evictOldest()
	} else {
		slot = len(c.entries)
		c.entries = append(c.entries, entry[K, V]{})
	}

	c.entries[slot] = entry[K, V]{key: key, value: value, newer: none, older: none}
	c.pushFront(slot)
	c.index[key] = slot

	if len(c.index) > c.capacity {
		panic(fmt.Errorf("%w: size %d exceeds capacity %d", ErrInternalInconsistency, len(c.index), c.capacity))
	}
}

// Len returns the number of stored entries.
func (c *LRU[K, V]) Len() int {
	return len(c.index)
}

// Cap returns the fixed capacity.
func (c *LRU[K, V]) Cap() int {
	return c.capacity
}

// Contains reports whether key is stored, without touching its recency.
func (c *LRU[K, V]) Contains(key K) bool {
	_, ok := c.index[key]
	return ok
}

// Oldest returns the least recently used key, which is the one the next
// insertion into a full cache evicts. It does not touch recency.
func (c *LRU[K, V]) Oldest() (K, bool) {
	if c.oldest == none {
		var zero K
		return zero, false
	}
	return c.entries[c.oldest].key, true
}

// Keys returns keys in MRU -> LRU order.
func (c *LRU[K, V]) Keys() []K {
	out := make([]K, 0, len(c.index))
	for slot := c.newest; slot != none; slot = c.entries[slot].older {
		out = append(out, c.entries[slot].key)
	}
	return out
}

// moveToFront relinks slot at the most recently used end.
func (c *LRU[K, V]) moveToFront(slot int) {
	if c.newest == slot {
		return
	}
	c.unlink(slot)
	c.pushFront(slot)
}

// unlink detaches slot from the chain and closes the gap between its neighbors.
func (c *LRU[K, V]) unlink(slot int) {
	e := &c.entries[slot]

	if e.newer != none {
		c.entries[e.newer].older = e.older
	} else {
		c.newest = e.older
	}

	if e.older != none {
		c.entries[e.older].newer = e.newer
	} else {
		c.oldest = e.newer
	}

	e.newer, e.older = none, none
}

// pushFront links a detached slot in front of the current newest entry.
func (c *LRU[K, V]) pushFront(slot int) {
	e := &c.entries[slot]
	e.newer = none
	e.older = c.newest

	if c.newest != none {
		c.entries[c.newest].newer = slot
	} else {
		c.oldest = slot
	}
	c.newest = slot
}

// evictOldest drops the least recently used entry and returns its freed slot.
// The slot is zeroed so the arena stops referencing the evicted key and value.
func (c *LRU[K, V]) evictOldest() int {
	slot := c.oldest
	c.unlink(slot)
	delete(c.index, c.entries[slot].key)
	c.entries[slot] = entry[K, V]{}
	return slot
}
