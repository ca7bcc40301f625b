package heapfree_test

import (
	"testing"

	"github.com/hardwave/heapfree"
	. "github.com/onsi/gomega"
)

type counter struct {
	total int
}

func (c *counter) add(n int) {
	c.total += n
}

func TestBindInvokesMethod(t *testing.T) {
	var clicks heapfree.Event[int]

	g := NewWithT(t)

	c := &counter{}
	m := heapfree.Bind(&clicks, c, (*counter).add)
	defer m.Close()

	clicks.Fire(42)
	g.Expect(c.total).To(Equal(42))

	clicks.Fire(23)
	g.Expect(c.total).To(Equal(65))
}

func TestMemberListenersFireFirst(t *testing.T) {
	var ev heapfree.Event[int]

	g := NewWithT(t)

	var order []string
	l := ev.On(func(int) { order = append(order, "plain") })
	defer l.Close()

	type probe struct{}
	var p probe
	m := heapfree.Bind(&ev, &p, func(*probe, int) { order = append(order, "member") })
	defer m.Close()

	ev.Fire(0)
	g.Expect(order).To(Equal([]string{"member", "plain"}))
}

func TestRebindTracksRelocatedReceiver(t *testing.T) {
	var clicks heapfree.Event[int]

	g := NewWithT(t)

	old := &counter{}
	m := heapfree.Bind(&clicks, old, (*counter).add)
	defer m.Close()

	clicks.Fire(1)
	g.Expect(old.total).To(Equal(1))

	// The receiver relocates; its move path patches the stored pointer.
	relocated := *old
	m.Rebind(&relocated)

	clicks.Fire(2)
	g.Expect(relocated.total).To(Equal(3))
	g.Expect(old.total).To(Equal(1))
}

func TestMemberListenerClose(t *testing.T) {
	var clicks heapfree.Event[int]

	g := NewWithT(t)

	c := &counter{}
	m := heapfree.Bind(&clicks, c, (*counter).add)

	clicks.Fire(5)
	g.Expect(c.total).To(Equal(5))

	m.Close()
	g.Expect(clicks.TryFire(5)).To(BeFalse())
	g.Expect(c.total).To(Equal(5))

	// Closing twice is a no-op.
	m.Close()
}

// widget owns both an event and a member listener on it. Its move path
// shows the re-registration pattern: plain listeners follow the event,
// the member listener is registered anew against the new location.
type widget struct {
	hits   int
	clicks heapfree.Event[int]
	l      *heapfree.MemberListener[widget, int]
}

func newWidget() *widget {
	w := &widget{}
	w.l = heapfree.Bind(&w.clicks, w, (*widget).click)
	return w
}

func (w *widget) click(n int) {
	w.hits += n
}

func (w *widget) moveTo(dst *widget) {
	dst.hits = w.hits
	w.hits = 0
	w.clicks.MoveTo(&dst.clicks)
	w.l.Close()
	w.l = nil
	dst.l = heapfree.Bind(&dst.clicks, dst, (*widget).click)
}

func TestOwnerMove(t *testing.T) {
	g := NewWithT(t)

	w := newWidget()
	external := 0
	l := w.clicks.On(func(n int) { external += n })
	defer l.Close()

	w.clicks.Fire(1)
	g.Expect(w.hits).To(Equal(1))
	g.Expect(external).To(Equal(1))

	var w2 widget
	w.moveTo(&w2)

	w2.clicks.Fire(2)
	g.Expect(w2.hits).To(Equal(3))
	g.Expect(external).To(Equal(3))

	// The source no longer has listeners of its own.
	g.Expect(w.clicks.TryFire(5)).To(BeFalse())
	g.Expect(w.hits).To(BeZero())
}
