package main

import (
	"fmt"

	"github.com/hardwave/heapfree"
	"github.com/hardwave/heapfree/chain"
)

func main() {
	// The caller owns the storage for every element; the chain only links
	// the segments together.
	var ch chain.Chain[int]
	var a, b, c chain.Segment[int]
	a.Value, b.Value, c.Value = 42, 5, 13

	ch.LinkBack(&a)
	ch.LinkBack(&b)
	ch.LinkBack(&c)

	fmt.Println("second element:", *ch.At(1))

	*ch.At(1) = 10

	fmt.Print("chain elements: ")
	ch.Values().Do(func(v *int) bool {
		fmt.Print(*v, ", ")
		return true
	})
	fmt.Println()

	b.Unlink()
	fmt.Println("after unlink: size", ch.Size(), "front", *ch.Front(), "back", *ch.Back())

	// Synchronous dispatch over caller-owned listener handles.
	var clicks heapfree.Event[int]

	total := 0
	l := clicks.On(func(n int) {
		total += n
	})
	defer l.Close()

	clicks.Fire(5)
	clicks.Fire(3)
	fmt.Println("total clicks:", total)
}
