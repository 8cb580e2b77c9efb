// Package assert provides a minimal invariant check for library-internal
// bugs. It must never be used to validate caller-supplied data.
package assert

import "fmt"

// Assert panics with a formatted message if cond is false. Reserved for
// conditions that indicate a bug in this module, never for rejecting
// untrusted input from a caller.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("netmatch: invariant violated: "+format, args...))
	}
}
