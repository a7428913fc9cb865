//go:build deadlock

// Package syncutil provides the mutex used for the lock's internal
// bookkeeping. Build with -tags=deadlock to swap in a deadlock-detecting
// implementation during development; the default build is plain sync.Mutex.
package syncutil

import (
	"time"

	deadlock "github.com/sasha-s/go-deadlock"
)

// DeadlockEnabled reports whether the deadlock detector is compiled in.
const DeadlockEnabled = true

func init() {
	// The bookkeeping mutex is held for very short sections; anything close
	// to a second means a bug in the acquisition protocol, not contention.
	deadlock.Opts.DeadlockTimeout = 30 * time.Second
}

// A Mutex is a mutual exclusion lock.
type Mutex struct {
	deadlock.Mutex
}
