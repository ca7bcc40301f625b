package heapfree

import (
	"github.com/hardwave/heapfree/chain"
)

// MemberListener binds a method of a specific object to an event without
// allocation at dispatch time. The bound object is held as an explicit
// context pointer set at registration; when the object relocates, its own
// move or swap path calls Rebind to patch the pointer. Member listeners
// fire before plain listeners.
type MemberListener[C, T any] struct {
	seg    chain.Segment[func(T)]
	ctx    *C
	method func(*C, T)
}

// Bind registers method on ev's member listener chain, to be called with
// ctx as its receiver. The caller owns the returned handle and must keep
// it reachable for the registration to stay active.
func Bind[C, T any](ev *Event[T], ctx *C, method func(*C, T)) *MemberListener[C, T] {
	m := &MemberListener[C, T]{ctx: ctx, method: method}
	m.seg.Value = func(arg T) {
		m.method(m.ctx, arg)
	}
	ev.members.LinkBack(&m.seg)
	return m
}

// Rebind repoints the listener at a relocated receiver. The owning object
// calls this from its own move or swap path.
func (m *MemberListener[C, T]) Rebind(ctx *C) {
	m.ctx = ctx
}

// Close deregisters the listener. Closing an already closed listener is a
// no-op.
func (m *MemberListener[C, T]) Close() {
	if m.seg.IsLinked() {
		m.seg.Unlink()
	}
}
