/*
Package heapfree implements synchronous listener registration and dispatch
without heap allocation on the dispatch path.

An Event is two intrusive chains of listener segments: listeners bound to
an object's method and plain listeners. Registration links a caller-owned
segment into the event; firing walks both chains in link order and invokes
every callback on the caller's goroutine. Nothing runs in the background
and nothing is retained beyond the caller-owned handles.

Events are not safe for concurrent use. A listener must not register or
deregister listeners of the event currently being fired; doing so
invalidates the in-progress traversal.
*/
package heapfree

import (
	"github.com/hardwave/heapfree/chain"
	"github.com/hardwave/heapfree/fault"
)

// Event dispatches values of type T to its registered listeners.
//
// The zero value is a ready to use event with no listeners.
type Event[T any] struct {
	members   chain.Chain[func(T)]
	listeners chain.Chain[func(T)]
}

// Listener is a registration handle returned by On. The caller owns it and
// must keep it reachable for the registration to stay active; Close
// deregisters (callers typically defer it).
type Listener[T any] struct {
	seg chain.Segment[func(T)]
}

// On registers fn as a listener of e and returns its handle.
func (e *Event[T]) On(fn func(T)) *Listener[T] {
	l := &Listener[T]{}
	l.seg.Value = fn
	e.listeners.LinkBack(&l.seg)
	return l
}

// Close deregisters the listener. Closing an already closed listener is a
// no-op.
func (l *Listener[T]) Close() {
	if l.seg.IsLinked() {
		l.seg.Unlink()
	}
}

// TryFire invokes every member listener, then every plain listener, in
// link order, and reports whether at least one listener was invoked.
//
// Every listener receives the same arg value. If T contains pointers,
// slices or maps, data mutated by an earlier listener is observed by later
// ones; this sharing is part of the contract.
func (e *Event[T]) TryFire(arg T) bool {
	fired := false
	invoke := func(s *chain.Segment[func(T)]) bool {
		s.Value(arg)
		fired = true
		return true
	}
	e.members.Do(invoke)
	e.listeners.Do(invoke)
	return fired
}

// Fire is TryFire, except that an event with zero listeners is a fault.
func (e *Event[T]) Fire(arg T) {
	if !e.TryFire(arg) {
		fault.Failf("cannot fire event: no listeners")
	}
}

// Len returns the number of currently registered listeners, member and
// plain. O(N).
func (e *Event[T]) Len() int {
	return e.members.Size() + e.listeners.Size()
}

// MoveTo transfers the plain listeners of e to dst, replacing dst's plain
// listeners, and leaves e without plain listeners. Member listeners stay
// where they are: they are bound to their owning objects, not to the event
// value's location.
func (e *Event[T]) MoveTo(dst *Event[T]) {
	e.listeners.MoveTo(&dst.listeners)
}

// Swap exchanges the plain listeners of two events. Member listeners stay
// put, as with MoveTo.
func (e *Event[T]) Swap(other *Event[T]) {
	e.listeners.Swap(&other.listeners)
}
