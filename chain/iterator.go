package chain

import (
	"github.com/hardwave/heapfree/fault"
)

// Iterator is a bidirectional cursor over a chain: a chain identity plus a
// link identity. An iterator stays usable as long as the segment it
// references is linked in its chain; if the segment is unlinked and later
// linked again, even at a different position, the iterator becomes usable
// again.
//
// The zero value denotes no position and compares equal only to another
// zero iterator.
type Iterator[V any] struct {
	chain *Chain[V]
	node  *link[V]
}

// NewIterator builds an iterator to s after verifying that s is actually
// reachable in c. The scan is O(N); a segment that is not a member of c is
// a fault. Use UnsafeIterator when membership is already guaranteed.
func NewIterator[V any](c *Chain[V], s *Segment[V]) Iterator[V] {
	it := UnsafeIterator(c, s)
	if !it.member() {
		fault.Failf("cannot create an iterator from a segment that is not part of the chain")
	}
	return it
}

// UnsafeIterator builds an iterator to s in O(1) without checking that s
// is part of c. If it is not, the iterator's behavior is undefined.
func UnsafeIterator[V any](c *Chain[V], s *Segment[V]) Iterator[V] {
	return Iterator[V]{chain: c, node: &s.link}
}

// member reports whether the node is reachable from the chain's sentinel.
func (it Iterator[V]) member() bool {
	if it.node.next == nil {
		return false
	}
	for p := it.node.next; ; p = p.next {
		if p == it.node {
			return false
		}
		if p == &it.chain.root {
			return true
		}
	}
}

func (it Iterator[V]) checkPosition(activity string) {
	if it.chain == nil || it.node == nil {
		fault.Failf("cannot %s a zero iterator", activity)
	}
}

// IsEnd reports whether the iterator denotes the sentinel position.
func (it Iterator[V]) IsEnd() bool {
	it.checkPosition("inspect")
	return it.node == &it.chain.root
}

// Next returns the iterator moved one position forward. Advancing the end
// iterator is a fault.
func (it Iterator[V]) Next() Iterator[V] {
	it.checkPosition("advance")
	if it.IsEnd() {
		fault.Failf("cannot advance the end iterator")
	}
	return Iterator[V]{chain: it.chain, node: it.node.next}
}

// Prev returns the iterator moved one position backward. Retreating past
// the begin iterator is a fault.
func (it Iterator[V]) Prev() Iterator[V] {
	it.checkPosition("retreat")
	r := Iterator[V]{chain: it.chain, node: it.node.prev}
	if r.IsEnd() {
		fault.Failf("cannot retreat past the begin iterator")
	}
	return r
}

// Segment returns the segment at the iterator's position. Dereferencing
// the end iterator is a fault.
func (it Iterator[V]) Segment() *Segment[V] {
	it.checkPosition("dereference")
	if it.IsEnd() {
		fault.Failf("cannot dereference the end iterator")
	}
	return it.node.seg
}

// Value returns a pointer to the payload at the iterator's position.
// Dereferencing the end iterator is a fault.
func (it Iterator[V]) Value() *V {
	return &it.Segment().Value
}

// Equal reports whether both iterators reference the same position of the
// same chain.
func (it Iterator[V]) Equal(other Iterator[V]) bool {
	return it.chain == other.chain && it.node == other.node
}
