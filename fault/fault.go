/*
Package fault routes invariant violations to a replaceable abort handler.

Every precondition failure in this module is a programming error, not a
recoverable condition: the handler receives a descriptive message with the
violating call site and must not return. The default handler writes the
message to stderr and exits. Test harnesses may install a handler that
panics instead so that violations can be observed.
*/
package fault

import (
	"fmt"
	"os"
	"runtime"
)

// Handler receives the formatted violation message. It must not return
// normally; Failf panics if it does.
type Handler func(msg string)

var handler Handler = func(msg string) {
	fmt.Fprintln(os.Stderr, "heapfree: "+msg)
	os.Exit(2)
}

// Set replaces the fault handler and returns the previous one.
//
// Like the rest of the module, Set is not safe for concurrent use.
func Set(h Handler) Handler {
	prev := handler
	handler = h
	return prev
}

// Failf reports an invariant violation. The message is suffixed with the
// file and line of the violating call site. Failf never returns.
func Failf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if _, file, line, ok := runtime.Caller(1); ok {
		msg = fmt.Sprintf("%s (%s:%d)", msg, file, line)
	}
	handler(msg)
	panic("fault: handler returned: " + msg)
}
