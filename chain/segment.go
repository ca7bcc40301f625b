package chain

import (
	"github.com/hardwave/heapfree/fault"
)

// link is one cell of the circular ring. The chain's sentinel is a bare
// link; every other link belongs to a Segment. nil next/prev means the
// cell is not part of any ring.
type link[V any] struct {
	next, prev *link[V]
	seg        *Segment[V] // nil for the sentinel
}

func (l *link[V]) linked() bool {
	return l.next != nil
}

// splice inserts l immediately before pos. l must not be part of a ring.
func (l *link[V]) splice(pos *link[V]) {
	p := pos.prev
	l.prev = p
	l.next = pos
	pos.prev = l
	p.next = l
}

// drop removes l from its ring and clears its pointers.
func (l *link[V]) drop() {
	l.next.prev = l.prev
	l.prev.next = l.next
	l.next = nil
	l.prev = nil
}

// adopt repoints the neighbors at l after l's cell has changed address.
func (l *link[V]) adopt() {
	l.next.prev = l
	l.prev.next = l
}

// Segment is caller-owned storage for one chain element: a link cell plus
// the payload. The caller decides where a segment lives (a local variable,
// a struct field, static storage); the chain only manages the links
// between segments.
//
// The zero value is a valid unlinked segment. A linked segment must not be
// copied by value; use MoveTo or Swap to relocate it.
type Segment[V any] struct {
	link link[V]

	// Value is the payload. Its address is stable for the lifetime of the
	// segment and it may be mutated freely.
	Value V
}

// NewSegment creates an unlinked segment holding v.
func NewSegment[V any](v V) *Segment[V] {
	return &Segment[V]{Value: v}
}

// IsLinked reports whether the segment is part of some chain.
func (s *Segment[V]) IsLinked() bool {
	return s.link.linked()
}

// Unlink removes the segment from its chain. The payload is untouched.
// Unlinking a segment that is not linked is a fault.
func (s *Segment[V]) Unlink() {
	if !s.IsLinked() {
		fault.Failf("cannot unlink a segment that is not linked")
	}
	s.link.drop()
}

// MoveTo transfers the payload and the chain membership of s into dst,
// leaving s unlinked. If dst was linked it is unlinked first. If s was
// linked, its former neighbors are repointed at dst, so iterators
// referencing the segment track it to the new address.
func (s *Segment[V]) MoveTo(dst *Segment[V]) {
	if dst == s {
		return
	}
	if dst.IsLinked() {
		dst.link.drop()
	}
	dst.Value = s.Value
	dst.link.next = s.link.next
	dst.link.prev = s.link.prev
	s.link.next = nil
	s.link.prev = nil
	if dst.link.linked() {
		dst.link.seg = dst
		dst.link.adopt()
	}
}

// Swap exchanges both the payloads and the chain memberships of two
// segments. Either or both may be unlinked.
func (s *Segment[V]) Swap(other *Segment[V]) {
	if s == other {
		return
	}
	// Route through MoveTo so that adjacent segments of the same ring are
	// handled by plain relocation.
	var tmp Segment[V]
	s.MoveTo(&tmp)
	other.MoveTo(s)
	tmp.MoveTo(other)
}
