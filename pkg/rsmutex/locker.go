package rsmutex

import "sync"

// Exclusive mode satisfies sync.Locker directly, so a RecursiveSharedMutex
// drops in wherever a plain mutex is expected.
var _ sync.Locker = (*RecursiveSharedMutex)(nil)

// RLocker returns a sync.Locker whose Lock and Unlock methods call
// LockShared and UnlockShared, for callers that want scoped shared
// acquisition through the standard interface.
func (m *RecursiveSharedMutex) RLocker() sync.Locker {
	return (*rlocker)(m)
}

type rlocker RecursiveSharedMutex

func (r *rlocker) Lock()   { (*RecursiveSharedMutex)(r).LockShared() }
func (r *rlocker) Unlock() { (*RecursiveSharedMutex)(r).UnlockShared() }
