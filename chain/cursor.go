package chain

import (
	"github.com/hardwave/heapfree/seq"
)

// ValueCursor adapts an Iterator into a seq cursor over payload pointers.
type ValueCursor[V any] struct {
	It Iterator[V]
}

// Advance returns the cursor moved one position forward.
func (c ValueCursor[V]) Advance() ValueCursor[V] {
	return ValueCursor[V]{It: c.It.Next()}
}

// Retreat returns the cursor moved one position backward.
func (c ValueCursor[V]) Retreat() ValueCursor[V] {
	return ValueCursor[V]{It: c.It.Prev()}
}

// Equal reports whether both cursors denote the same position.
func (c ValueCursor[V]) Equal(other ValueCursor[V]) bool {
	return c.It.Equal(other.It)
}

// Get returns a pointer to the payload at the cursor's position.
func (c ValueCursor[V]) Get() *V {
	return c.It.Value()
}

// SegmentCursor adapts an Iterator into a seq cursor over segments.
type SegmentCursor[V any] struct {
	It Iterator[V]
}

// Advance returns the cursor moved one position forward.
func (c SegmentCursor[V]) Advance() SegmentCursor[V] {
	return SegmentCursor[V]{It: c.It.Next()}
}

// Retreat returns the cursor moved one position backward.
func (c SegmentCursor[V]) Retreat() SegmentCursor[V] {
	return SegmentCursor[V]{It: c.It.Prev()}
}

// Equal reports whether both cursors denote the same position.
func (c SegmentCursor[V]) Equal(other SegmentCursor[V]) bool {
	return c.It.Equal(other.It)
}

// Get returns the segment at the cursor's position.
func (c SegmentCursor[V]) Get() *Segment[V] {
	return c.It.Segment()
}

// Values returns a lazy, restartable range over the chain's payloads.
func (c *Chain[V]) Values() seq.Range[ValueCursor[V], *V] {
	return seq.NewRange[ValueCursor[V], *V](
		ValueCursor[V]{It: c.Begin()},
		ValueCursor[V]{It: c.End()},
	)
}

// Segments returns a lazy, restartable range over the chain's segments.
// It lets callers operate on segment identity instead of payloads, which
// is what the event layer dispatches over.
func (c *Chain[V]) Segments() seq.Range[SegmentCursor[V], *Segment[V]] {
	return seq.NewRange[SegmentCursor[V], *Segment[V]](
		SegmentCursor[V]{It: c.Begin()},
		SegmentCursor[V]{It: c.End()},
	)
}
