package cache

import (
	"fmt"
	"strings"
)

// Verify walks the recency chain and checks it against the index.
//
// It is O(n) and meant for tests and debugging. Any violation is reported as
// an error wrapping ErrInternalInconsistency.
func (c *LRU[K, V]) Verify() error {
	size := len(c.index)

	if size > c.capacity {
		return c.inconsistent("size %d exceeds capacity %d", size, c.capacity)
	}
	if len(c.entries) > c.capacity {
		return c.inconsistent("arena holds %d slots, capacity is %d", len(c.entries), c.capacity)
	}

	if size == 0 {
		if c.newest != none || c.oldest != none {
			return c.inconsistent("empty cache has chain ends %d/%d", c.newest, c.oldest)
		}
		return nil
	}

	if c.newest == none || c.oldest == none {
		return c.inconsistent("non-empty cache is missing a chain end")
	}
	if c.newest >= len(c.entries) || c.oldest >= len(c.entries) {
		return c.inconsistent("chain ends %d/%d out of arena range", c.newest, c.oldest)
	}
	if c.entries[c.newest].newer != none {
		return c.inconsistent("newest slot %d has a newer neighbor", c.newest)
	}
	if c.entries[c.oldest].older != none {
		return c.inconsistent("oldest slot %d has an older neighbor", c.oldest)
	}
	if size == 1 && c.newest != c.oldest {
		return c.inconsistent("single entry but newest %d != oldest %d", c.newest, c.oldest)
	}

	walked := 0
	prev := none
	for slot := c.newest; slot != none; slot = c.entries[slot].older {
		// A chain longer than the index means a cycle or a stray node.
		if walked == size {
			return c.inconsistent("chain is longer than index size %d", size)
		}
		if slot < 0 || slot >= len(c.entries) {
			return c.inconsistent("slot %d out of arena range", slot)
		}

		e := c.entries[slot]
		if e.newer != prev {
			return c.inconsistent("slot %d links back to %d, expected %d", slot, e.newer, prev)
		}
		if got, ok := c.index[e.key]; !ok || got != slot {
			return c.inconsistent("key %v at slot %d is indexed at %d (present=%t)", e.key, slot, got, ok)
		}

		prev = slot
		walked++
	}

	if prev != c.oldest {
		return c.inconsistent("chain ends at %d, oldest is %d", prev, c.oldest)
	}
	if walked != size {
		return c.inconsistent("chain has %d entries, index has %d", walked, size)
	}
	return nil
}

func (c *LRU[K, V]) inconsistent(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInternalInconsistency, fmt.Sprintf(format, args...))
}

// String renders size, capacity and the recency chain from most to least recent.
// The format is for debugging and may change.
func (c *LRU[K, V]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "LRU[%d/%d, ", len(c.index), c.capacity)

	if c.newest == none {
		b.WriteString("empty]")
		return b.String()
	}

	for slot := c.newest; slot != none; slot = c.entries[slot].older {
		if slot != c.newest {
			b.WriteString(" > ")
		}
		e := c.entries[slot]
		fmt.Fprintf(&b, "(%v,%v)", e.key, e.value)
	}
	b.WriteByte(']')
	return b.String()
}
