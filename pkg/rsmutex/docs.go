// Package rsmutex implements a recursive reader/writer mutual-exclusion lock.
//
// # Overview
//
// [RecursiveSharedMutex] supports exclusive (writer) and shared (reader)
// ownership, and a goroutine already holding ownership in either mode may
// re-acquire that mode recursively without deadlocking itself. Ownership is
// released only after the goroutine makes a matching number of release calls.
//
// Two ownership modes are supported:
//
//   - exclusive — held by at most one goroutine; excludes all shared holders.
//   - shared    — held by any number of goroutines; excluded only by a writer.
//
// Upgrading held shared ownership to exclusive is not supported: a goroutine
// holding shared ownership that calls [RecursiveSharedMutex.Lock] has written
// a bug that would otherwise deadlock it, and the call panics with a
// [*MisuseError] instead. Downgrading does not exist either; the two modes are
// strictly mutually exclusive per goroutine.
//
// # Writer priority
//
// Once any goroutine is waiting for (or holding) exclusive ownership, no new
// reader may join; readers that already hold ownership keep recursing freely
// and drain naturally. This prevents a continuous stream of readers from
// starving writers. Acquisition order among competing writers is arbitrary.
//
// # Mechanism
//
// The writer slot is a single atomically-updated goroutine id, claimed with
// compare-and-swap and giving the reader path a lock-free answer to "is a
// writer present". Everything else — the reader table (goroutine id to
// recursion depth) and the waiting-writer count — lives behind a short-held
// internal mutex. Waiting is busy-wait polling with [runtime.Gosched] between
// attempts rather than OS-level blocking, so no acquisition is bounded-time;
// correctness relies only on eventual scheduling fairness.
//
// # Misuse
//
// Releasing ownership that is not held, and attempting a shared-to-exclusive
// upgrade, are programming errors. They panic with a [*MisuseError] in all
// builds; there is no undefined-behavior mode. Acquisition itself never fails:
// the non-blocking [RecursiveSharedMutex.TryLock] and
// [RecursiveSharedMutex.TryLockShared] report failure with a bool.
//
// The zero value is a valid, unowned lock. A RecursiveSharedMutex must not be
// copied after first use.
package rsmutex
