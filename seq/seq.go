/*
Package seq wraps a pair of cursors into a lazy, restartable range.

A range never stores elements; it only remembers where a traversal starts
and where it stops. Traversals can be repeated and the range can be sliced
or indexed, all in O(N) for plain cursors.
*/
package seq

// Cursor is a forward cursor over a sequence of T. Advancing past the
// sequence boundary is governed by the cursor's own contract; Range never
// advances a cursor that equals the end cursor.
type Cursor[C, T any] interface {
	// Advance returns the cursor moved one position forward.
	Advance() C
	// Equal reports whether both cursors denote the same position.
	Equal(C) bool
	// Get returns the element at the cursor's position.
	Get() T
}

// BidiCursor is a cursor that can also move backward.
type BidiCursor[C, T any] interface {
	Cursor[C, T]
	// Retreat returns the cursor moved one position backward.
	Retreat() C
}

// Range is a begin/end cursor pair exposing a container-like interface.
// The zero value is an empty range.
type Range[C Cursor[C, T], T any] struct {
	begin, end C
}

// NewRange builds a range over [begin, end).
func NewRange[C Cursor[C, T], T any](begin, end C) Range[C, T] {
	return Range[C, T]{begin: begin, end: end}
}

// Begin returns the cursor to the first element.
func (r Range[C, T]) Begin() C {
	return r.begin
}

// End returns the cursor one past the last element.
func (r Range[C, T]) End() C {
	return r.end
}

// Empty reports whether the range contains no elements.
func (r Range[C, T]) Empty() bool {
	return r.begin.Equal(r.end)
}

// Len counts the elements in O(N).
func (r Range[C, T]) Len() int {
	n := 0
	for c := r.begin; !c.Equal(r.end); c = c.Advance() {
		n++
	}
	return n
}

// Front returns the first element.
func (r Range[C, T]) Front() T {
	return r.begin.Get()
}

// At returns the element idx positions past the begin cursor in O(N).
func (r Range[C, T]) At(idx int) T {
	c := r.begin
	for i := 0; i < idx; i++ {
		c = c.Advance()
	}
	return c.Get()
}

// Do calls function f on each element of the range, in forward order.
// If f returns false, Do stops the iteration.
// f must not modify the underlying sequence.
func (r Range[C, T]) Do(f func(T) bool) {
	for c := r.begin; !c.Equal(r.end); c = c.Advance() {
		if !f(c.Get()) {
			return
		}
	}
}

// Slice returns the subrange [from, to) in O(N).
func (r Range[C, T]) Slice(from, to int) Range[C, T] {
	b := r.begin
	for i := 0; i < from; i++ {
		b = b.Advance()
	}
	e := b
	for i := from; i < to; i++ {
		e = e.Advance()
	}
	return Range[C, T]{begin: b, end: e}
}

// Back returns the last element of a bidirectional range.
func Back[C BidiCursor[C, T], T any](r Range[C, T]) T {
	return r.End().Retreat().Get()
}
