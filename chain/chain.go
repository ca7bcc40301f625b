/*
Package chain implements an intrusive doubly linked list over caller-owned
storage.

A chain never allocates: the caller owns the storage for every element (a
Segment) and the chain only manages the links between segments. This keeps
list membership allocation-free and O(1), which is the point of the
package — environments where heap allocation is forbidden or its latency
is unacceptable.

Size is deliberately O(N): the chain carries no element counter that could
fall out of sync when segments move between chains or storage locations.

Chains and segments are not safe for concurrent use.
*/
package chain

import (
	"github.com/hardwave/heapfree/fault"
)

// Chain is a circular intrusive doubly linked list anchored by a sentinel.
// It owns only the sentinel, never the segments linked into it.
//
// The zero value is a ready to use empty chain. A non-empty chain must not
// be copied by value; use MoveTo or Swap.
type Chain[V any] struct {
	root link[V]
}

// lazyInit makes the sentinel self-referential, the representation of the
// empty chain.
func (c *Chain[V]) lazyInit() {
	if c.root.next == nil {
		c.root.next = &c.root
		c.root.prev = &c.root
	}
}

// Empty reports whether the chain has no segments. O(1).
func (c *Chain[V]) Empty() bool {
	return c.root.next == nil || c.root.next == &c.root
}

// Size counts the linked segments by full traversal. O(N).
func (c *Chain[V]) Size() int {
	n := 0
	for it := c.Begin(); !it.IsEnd(); it = it.Next() {
		n++
	}
	return n
}

// Begin returns an iterator to the first segment, or End when empty.
func (c *Chain[V]) Begin() Iterator[V] {
	c.lazyInit()
	return Iterator[V]{chain: c, node: c.root.next}
}

// End returns the iterator one past the last segment.
func (c *Chain[V]) End() Iterator[V] {
	c.lazyInit()
	return Iterator[V]{chain: c, node: &c.root}
}

// Link splices seg into the chain immediately before it and returns an
// iterator to seg. The segment must be unlinked and it must belong to this
// chain; violating either is a fault. O(1).
func (c *Chain[V]) Link(it Iterator[V], seg *Segment[V]) Iterator[V] {
	if seg.IsLinked() {
		fault.Failf("cannot link a segment that is already linked")
	}
	if it.chain != c {
		fault.Failf("cannot link at an iterator of a different chain")
	}
	seg.link.seg = seg
	seg.link.splice(it.node)
	return Iterator[V]{chain: c, node: &seg.link}
}

// LinkFront links seg as the first segment of the chain.
func (c *Chain[V]) LinkFront(seg *Segment[V]) Iterator[V] {
	return c.Link(c.Begin(), seg)
}

// LinkBack links seg as the last segment of the chain.
func (c *Chain[V]) LinkBack(seg *Segment[V]) Iterator[V] {
	return c.Link(c.End(), seg)
}

// Unlink removes the segment at it from the chain and returns an iterator
// to the segment that followed it, or End. The iterator must belong to
// this chain and must not be End. O(1).
func (c *Chain[V]) Unlink(it Iterator[V]) Iterator[V] {
	if it.chain != c {
		fault.Failf("cannot unlink through an iterator of a different chain")
	}
	next := it.Next()
	it.Segment().Unlink()
	return next
}

// Clear unlinks every segment and resets the chain to the empty state.
// The segments' payloads are untouched; the caller still owns the storage.
// O(N).
func (c *Chain[V]) Clear() {
	if c.root.next == nil {
		return
	}
	cur := c.root.next
	c.root.next = &c.root
	c.root.prev = &c.root
	for cur != &c.root {
		nx := cur.next
		cur.next = nil
		cur.prev = nil
		cur = nx
	}
}

// Place constructs a new segment holding v and links it immediately before
// it. The returned segment is owned by the caller, who must keep it
// reachable for the link to persist.
//
// Place allocates the segment. Callers that must stay allocation-free
// declare the Segment themselves and use Link.
func (c *Chain[V]) Place(it Iterator[V], v V) *Segment[V] {
	seg := NewSegment(v)
	c.Link(it, seg)
	return seg
}

// PlaceFront places a new segment at the front of the chain.
func (c *Chain[V]) PlaceFront(v V) *Segment[V] {
	return c.Place(c.Begin(), v)
}

// PlaceBack places a new segment at the back of the chain.
func (c *Chain[V]) PlaceBack(v V) *Segment[V] {
	return c.Place(c.End(), v)
}

// Front returns a pointer to the first payload. An empty chain is a fault.
func (c *Chain[V]) Front() *V {
	if c.Empty() {
		fault.Failf("cannot take the front of an empty chain")
	}
	return c.Begin().Value()
}

// Back returns a pointer to the last payload. An empty chain is a fault.
func (c *Chain[V]) Back() *V {
	if c.Empty() {
		fault.Failf("cannot take the back of an empty chain")
	}
	return c.End().Prev().Value()
}

// At returns a pointer to the payload idx positions past the front. This
// is a linked list, so indexed access is O(N). An index past the last
// segment trips the iterator boundary fault.
func (c *Chain[V]) At(idx int) *V {
	if idx < 0 {
		fault.Failf("chain index %d out of range", idx)
	}
	return c.Values().At(idx)
}

// Do calls function f on each segment of the chain, in link order.
// If f returns false, Do stops the iteration.
// f must not link or unlink segments of c.
func (c *Chain[V]) Do(f func(*Segment[V]) bool) {
	for it := c.Begin(); !it.IsEnd(); it = it.Next() {
		if !f(it.Segment()) {
			return
		}
	}
}

// MoveTo transfers every segment of c into dst in O(1), replacing dst's
// previous contents, and leaves c empty. Payload addresses are unchanged;
// only the sentinel and the two boundary segments are repointed.
func (c *Chain[V]) MoveTo(dst *Chain[V]) {
	if dst == c {
		return
	}
	dst.Clear()
	if c.Empty() {
		return
	}
	dst.root.next = c.root.next
	dst.root.prev = c.root.prev
	dst.root.next.prev = &dst.root
	dst.root.prev.next = &dst.root
	c.root.next = &c.root
	c.root.prev = &c.root
}

// Swap exchanges the contents of two chains in O(1). When either side is
// empty the neighbor repoint has no boundary segments to work on, so the
// operation degrades to a move.
func (c *Chain[V]) Swap(other *Chain[V]) {
	switch {
	case c == other:
	case c.Empty():
		other.MoveTo(c)
	case other.Empty():
		c.MoveTo(other)
	default:
		var tmp Chain[V]
		c.MoveTo(&tmp)
		other.MoveTo(c)
		tmp.MoveTo(other)
	}
}
