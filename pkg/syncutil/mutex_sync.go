//go:build !deadlock

// Package syncutil provides the mutex used for the lock's internal
// bookkeeping. Build with -tags=deadlock to swap in a deadlock-detecting
// implementation during development; the default build is plain sync.Mutex.
package syncutil

import "sync"

// DeadlockEnabled reports whether the deadlock detector is compiled in.
const DeadlockEnabled = false

// A Mutex is a mutual exclusion lock.
type Mutex struct {
	sync.Mutex
}
