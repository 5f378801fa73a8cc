package voronoi

import (
	"fmt"

	"github.com/google/btree"
)

// queueEntry is one slot in an EventQueue's backing tree. removed is the
// tombstone flag used for lazy invalidation: entries are never deleted out
// of the tree directly (an O(log n) remove, which the queue deliberately
// avoids per its design), only flagged and skipped when popped or peeked.
type queueEntry[K comparable, V any] struct {
	x       float64
	counter uint64
	key     K
	value   V
	removed bool
}

// EventQueue is a min-heap-like priority queue ordered by (x, insertion
// counter), backed by a B-tree rather than a binary heap, mirroring how
// this module's teacher backs its own sweep-line event queue with
// github.com/google/btree. Each live key has exactly one live entry; a
// map from key identity to its entry supports O(1) invalidation.
//
// K should be a pointer type so that two distinct items with otherwise
// equal values (e.g. two coincident input sites) are never confused with
// the same queue identity.
type EventQueue[K comparable, V any] struct {
	tree    *btree.BTreeG[*queueEntry[K, V]]
	index   map[K]*queueEntry[K, V]
	counter uint64
}

func queueEntryLess[K comparable, V any](a, b *queueEntry[K, V]) bool {
	if a.x != b.x {
		return a.x < b.x
	}
	return a.counter < b.counter
}

// NewEventQueue creates an empty EventQueue.
func NewEventQueue[K comparable, V any]() *EventQueue[K, V] {
	return &EventQueue[K, V]{
		tree:  btree.NewG(32, queueEntryLess[K, V]),
		index: make(map[K]*queueEntry[K, V]),
	}
}

// Push inserts value under key, ordered by x. If key already has a live
// entry, that entry is tombstoned first — this is what lets an arc's
// pending circle event be transparently replaced when its x key is
// recomputed.
func (q *EventQueue[K, V]) Push(key K, x float64, value V) {
	if old, ok := q.index[key]; ok {
		old.removed = true
		delete(q.index, key)
	}
	q.counter++
	entry := &queueEntry[K, V]{x: x, counter: q.counter, key: key, value: value}
	q.index[key] = entry
	q.tree.ReplaceOrInsert(entry)
	logDebugf("[queue] pushed key=%v x=%g counter=%d", key, x, entry.counter)
}

// Invalidate tombstones key's entry, if it has one. It does not touch the
// tree: the tombstone is discovered and discarded lazily on the next
// Pop/Peek that reaches it.
func (q *EventQueue[K, V]) Invalidate(key K) {
	if entry, ok := q.index[key]; ok {
		entry.removed = true
		delete(q.index, key)
		logDebugf("[queue] invalidated key=%v", key)
	}
}

// Pop removes and returns the item with the smallest (x, counter), skipping
// tombstoned entries. ok is false iff the queue is empty.
func (q *EventQueue[K, V]) Pop() (value V, ok bool) {
	for {
		entry, found := q.tree.DeleteMin()
		if !found {
			return value, false
		}
		if entry.removed {
			continue
		}
		delete(q.index, entry.key)
		return entry.value, true
	}
}

// MustPop is Pop, panicking with ErrQueuePopEmpty when the queue is empty.
// The sweep driver uses this where its own bookkeeping guarantees the
// queue is non-empty; a panic here indicates that guarantee broke, i.e. a
// bug rather than an input condition.
func (q *EventQueue[K, V]) MustPop() V {
	v, ok := q.Pop()
	if !ok {
		panic(fmt.Errorf("%w", ErrQueuePopEmpty))
	}
	return v
}

// Peek returns the item that Pop would return, without removing it.
// Tombstoned entries encountered along the way are discarded permanently
// (there is nothing left to return them for), but the first live entry
// found is left in place.
func (q *EventQueue[K, V]) Peek() (value V, ok bool) {
	for {
		entry, found := q.tree.Min()
		if !found {
			return value, false
		}
		if !entry.removed {
			return entry.value, true
		}
		q.tree.DeleteMin()
	}
}

// Empty reports whether the queue has any live entries. Stale tombstones
// still sitting in the tree do not count.
func (q *EventQueue[K, V]) Empty() bool {
	return len(q.index) == 0
}
