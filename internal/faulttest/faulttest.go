// Package faulttest traps fault handler invocations so tests can observe
// invariant violations instead of exiting the process.
package faulttest

import (
	"testing"

	"github.com/hardwave/heapfree/fault"
)

// Fault is the panic payload raised by the trap handler.
type Fault struct {
	Msg string
}

func (f *Fault) Error() string {
	return f.Msg
}

// Trap installs a panicking fault handler for the duration of the test.
func Trap(t testing.TB) {
	t.Helper()

	prev := fault.Set(func(msg string) {
		panic(&Fault{Msg: msg})
	})

	t.Cleanup(func() {
		fault.Set(prev)
	})
}

// Faults runs f under a trap handler and reports whether it violated an
// invariant. Panics other than faults are re-raised.
func Faults(t testing.TB, f func()) (faulted bool) {
	t.Helper()

	prev := fault.Set(func(msg string) {
		panic(&Fault{Msg: msg})
	})
	defer fault.Set(prev)

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*Fault); !ok {
				panic(r)
			}
			faulted = true
		}
	}()

	f()
	return false
}
