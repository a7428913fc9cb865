// Package gid exposes the identity of the calling goroutine.
//
// The lock bookkeeping in pkg/rsmutex is keyed by goroutine: the writer slot
// stores the owner's id and the reader table maps ids to recursion depths.
// Ids are assigned by the runtime, are unique among live goroutines, and are
// never 0, so 0 is usable as a "no goroutine" sentinel.
package gid

import "github.com/petermattis/goid"

// None is the sentinel value that no live goroutine ever has as its id.
const None int64 = 0

// Current returns the id of the calling goroutine.
func Current() int64 {
	return goid.Get()
}
