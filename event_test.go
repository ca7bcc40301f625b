package heapfree_test

import (
	"testing"

	"github.com/hardwave/heapfree"
	"github.com/hardwave/heapfree/internal/faulttest"
	. "github.com/onsi/gomega"
)

func TestOnAndFire(t *testing.T) {
	var ev heapfree.Event[[3]int]

	g := NewWithT(t)

	ctr0 := 0
	a := ev.On(func(v [3]int) {
		ctr0 += v[0] + v[1] + v[2]
	})
	defer a.Close()

	ctr1, ctr2 := 0, 0
	b := ev.On(func(v [3]int) {
		ctr1 -= v[0] + v[1] + v[2]
		ctr2 += v[0]
	})
	defer b.Close()

	ctr3 := 0
	c := ev.On(func(v [3]int) {
		ctr3++
	})
	defer c.Close()

	ev.Fire([3]int{1, 2, 3})
	g.Expect(ctr0).To(Equal(6))
	g.Expect(ctr1).To(Equal(-6))
	g.Expect(ctr2).To(Equal(1))
	g.Expect(ctr3).To(Equal(1))

	ev.Fire([3]int{4, 5, 6})
	g.Expect(ctr0).To(Equal(21))
	g.Expect(ctr1).To(Equal(-21))
	g.Expect(ctr2).To(Equal(5))
	g.Expect(ctr3).To(Equal(2))
}

func TestFireInvokesInRegistrationOrder(t *testing.T) {
	var ev heapfree.Event[int]

	g := NewWithT(t)

	var order []string
	a := ev.On(func(int) { order = append(order, "a") })
	defer a.Close()
	b := ev.On(func(int) { order = append(order, "b") })
	defer b.Close()
	c := ev.On(func(int) { order = append(order, "c") })
	defer c.Close()

	ev.Fire(0)
	g.Expect(order).To(Equal([]string{"a", "b", "c"}))
}

func TestFireWithoutListenersFaults(t *testing.T) {
	var ev heapfree.Event[int]

	g := NewWithT(t)

	// The tolerant variant is a no-op.
	g.Expect(ev.TryFire(42)).To(BeFalse())

	g.Expect(faulttest.Faults(t, func() { ev.Fire(42) })).To(BeTrue())
}

func TestListenerClose(t *testing.T) {
	var ev heapfree.Event[int]

	g := NewWithT(t)

	counter := 0
	l := ev.On(func(n int) { counter += n })

	ev.Fire(5)
	g.Expect(counter).To(Equal(5))

	l.Close()
	g.Expect(ev.TryFire(5)).To(BeFalse())
	g.Expect(counter).To(Equal(5))

	// Closing twice is a no-op.
	l.Close()
}

func TestEventLen(t *testing.T) {
	var ev heapfree.Event[int]

	g := NewWithT(t)

	g.Expect(ev.Len()).To(Equal(0))

	a := ev.On(func(int) {})
	b := ev.On(func(int) {})
	g.Expect(ev.Len()).To(Equal(2))

	type owner struct{}
	var o owner
	m := heapfree.Bind(&ev, &o, func(*owner, int) {})
	g.Expect(ev.Len()).To(Equal(3))

	a.Close()
	b.Close()
	m.Close()
	g.Expect(ev.Len()).To(Equal(0))
}

func TestFireSharesArgument(t *testing.T) {
	var ev heapfree.Event[*int]

	g := NewWithT(t)

	// Every listener receives the same value; mutations of shared data by
	// an earlier listener are visible to later ones.
	var seen []int
	a := ev.On(func(p *int) {
		seen = append(seen, *p)
		*p = 99
	})
	defer a.Close()
	b := ev.On(func(p *int) {
		seen = append(seen, *p)
	})
	defer b.Close()

	n := 1
	ev.Fire(&n)
	g.Expect(seen).To(Equal([]int{1, 99}))
}

func TestEventMoveTo(t *testing.T) {
	var ev, ev2 heapfree.Event[int]

	g := NewWithT(t)

	got := 0
	l := ev.On(func(n int) { got = n })
	defer l.Close()

	ev.MoveTo(&ev2)

	g.Expect(ev.TryFire(1)).To(BeFalse())
	g.Expect(got).To(Equal(0))

	ev2.Fire(2)
	g.Expect(got).To(Equal(2))
}

func TestEventSwap(t *testing.T) {
	var ev, ev2 heapfree.Event[int]

	g := NewWithT(t)

	gotA, gotB := 0, 0
	a := ev.On(func(n int) { gotA = n })
	defer a.Close()
	b := ev2.On(func(n int) { gotB = n })
	defer b.Close()

	ev.Swap(&ev2)

	ev.Fire(1)
	g.Expect(gotB).To(Equal(1))
	g.Expect(gotA).To(Equal(0))

	ev2.Fire(2)
	g.Expect(gotA).To(Equal(2))
	g.Expect(gotB).To(Equal(1))
}
