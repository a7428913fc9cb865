package rsmutex

import (
	"runtime"

	"go.uber.org/atomic"

	"rsmutex/pkg/gid"
	"rsmutex/pkg/syncutil"
)

// RecursiveSharedMutex is a reader/writer mutual-exclusion lock that a
// goroutine holding ownership in either mode may re-acquire recursively.
// See the package documentation for the ownership rules and the
// writer-priority policy.
//
// The zero value is an unowned lock ready for use.
type RecursiveSharedMutex struct {
	// mu guards waitingWriters, writerDepth and readers. It is held only for
	// the short decision sections, never across a yield.
	mu syncutil.Mutex

	// waitingWriters counts goroutines inside Lock's polling phase. A nonzero
	// value closes admission for new readers.
	waitingWriters uint32

	// writerGID is the writer slot: the id of the goroutine holding exclusive
	// ownership, or gid.None. Claimed by compare-and-swap outside mu so the
	// reader path can detect writer presence with a single atomic load.
	writerGID atomic.Int64

	// writerDepth is the writer's recursion depth. Meaningful only while the
	// slot is occupied; a fresh claim re-arms it to 1.
	writerDepth uint32

	// readers maps each goroutine holding shared ownership to its recursion
	// depth. Entries are removed when the depth reaches zero; an entry with
	// depth 0 never exists.
	readers map[int64]uint32
}

// Lock acquires exclusive ownership, busy-waiting until it is available. If
// the calling goroutine already holds exclusive ownership its recursion depth
// is incremented and Lock returns immediately. Calling Lock while holding
// shared ownership is an upgrade attempt and panics with a [*MisuseError].
func (m *RecursiveSharedMutex) Lock() {
	id := gid.Current()

	m.mu.Lock()
	if m.writerGID.Load() == id {
		m.writerDepth++
		m.mu.Unlock()
		return
	}
	if _, shared := m.readers[id]; shared {
		m.mu.Unlock()
		misuse("Lock", ReasonUpgrade, id)
	}
	m.waitingWriters++
	m.mu.Unlock()

	for {
		if m.writerGID.CompareAndSwap(gid.None, id) {
			// Slot claimed. New readers are now shut out, but readers that
			// were already admitted must drain before ownership is complete.
			for {
				m.mu.Lock()
				if len(m.readers) == 0 {
					m.writerDepth = 1
					m.waitingWriters--
					m.mu.Unlock()
					return
				}
				m.mu.Unlock()
				runtime.Gosched()
			}
		}
		runtime.Gosched()
	}
}

// TryLock attempts to acquire exclusive ownership without waiting and reports
// whether it succeeded. Recursive acquisition by the current writer always
// succeeds. Unlike Lock, TryLock does not register as a waiting writer, so a
// failed attempt leaves no trace in the admission policy; a goroutine holding
// shared ownership simply gets false rather than a panic, since its own
// reader entry keeps the table non-empty.
func (m *RecursiveSharedMutex) TryLock() bool {
	id := gid.Current()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.writerGID.Load() == id {
		m.writerDepth++
		return true
	}
	if len(m.readers) == 0 && m.writerGID.CompareAndSwap(gid.None, id) {
		m.writerDepth = 1
		return true
	}
	return false
}

// LockShared acquires shared ownership, busy-waiting until it is available.
// If the calling goroutine already holds exclusive ownership, the writer
// recursion depth is incremented instead — the goroutine keeps counting as a
// writer, never as an additional reader. If it already holds shared
// ownership, its reader depth is incremented. Otherwise the goroutine is
// admitted once no writer is waiting or holding the slot.
func (m *RecursiveSharedMutex) LockShared() {
	id := gid.Current()

	m.mu.Lock()
	if m.writerGID.Load() == id {
		m.writerDepth++
		m.mu.Unlock()
		return
	}
	if depth, ok := m.readers[id]; ok {
		m.readers[id] = depth + 1
		m.mu.Unlock()
		return
	}
	m.mu.Unlock()

	for {
		m.mu.Lock()
		if m.waitingWriters == 0 && m.writerGID.Load() == gid.None {
			m.addReader(id)
			m.mu.Unlock()
			return
		}
		m.mu.Unlock()
		runtime.Gosched()
	}
}

// TryLockShared attempts to acquire shared ownership without waiting and
// reports whether it succeeded. Recursion in either held mode always
// succeeds; a fresh acquisition honors the same admission gate as LockShared,
// so it fails while any writer is waiting or holding.
func (m *RecursiveSharedMutex) TryLockShared() bool {
	id := gid.Current()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.writerGID.Load() == id {
		m.writerDepth++
		return true
	}
	if depth, ok := m.readers[id]; ok {
		m.readers[id] = depth + 1
		return true
	}
	if m.waitingWriters == 0 && m.writerGID.Load() == gid.None {
		m.addReader(id)
		return true
	}
	return false
}

// Unlock releases one level of exclusive ownership. The slot is vacated when
// the last level is released. Calling Unlock without holding exclusive
// ownership panics with a [*MisuseError].
func (m *RecursiveSharedMutex) Unlock() {
	id := gid.Current()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.writerGID.Load() != id {
		misuse("Unlock", ReasonNotWriter, id)
	}
	m.releaseWriter()
}

// UnlockShared releases one level of shared ownership. If the calling
// goroutine is the current writer this decrements the writer depth exactly
// like Unlock, undoing a LockShared recursion made while exclusive. Calling
// UnlockShared while holding no ownership panics with a [*MisuseError].
func (m *RecursiveSharedMutex) UnlockShared() {
	id := gid.Current()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.writerGID.Load() == id {
		m.releaseWriter()
		return
	}

	depth, ok := m.readers[id]
	if !ok {
		misuse("UnlockShared", ReasonNotReader, id)
	}
	if depth != 1 {
		m.readers[id] = depth - 1
		return
	}
	delete(m.readers, id)
}

// releaseWriter decrements the writer recursion depth, vacating the slot at
// depth 1. The depth value is left alone on vacate; only slot occupancy is
// meaningful while unowned, and the next claim re-arms the depth. The caller
// holds m.mu and has verified the calling goroutine occupies the slot.
func (m *RecursiveSharedMutex) releaseWriter() {
	if m.writerDepth != 1 {
		m.writerDepth--
		return
	}
	m.writerGID.Store(gid.None)
}

// addReader inserts a depth-1 reader entry. The caller holds m.mu.
func (m *RecursiveSharedMutex) addReader(id int64) {
	if m.readers == nil {
		m.readers = make(map[int64]uint32)
	}
	m.readers[id] = 1
}

// WriterPresent reports whether any goroutine holds exclusive ownership.
// It is a single atomic load and safe to call from hot paths.
func (m *RecursiveSharedMutex) WriterPresent() bool {
	return m.writerGID.Load() != gid.None
}

// HeldExclusive reports whether the calling goroutine holds exclusive
// ownership.
func (m *RecursiveSharedMutex) HeldExclusive() bool {
	return m.writerGID.Load() == gid.Current()
}

// HeldShared reports whether the calling goroutine holds shared ownership.
func (m *RecursiveSharedMutex) HeldShared() bool {
	id := gid.Current()

	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.readers[id]
	return ok
}

// SharedHolders returns the number of goroutines currently holding shared
// ownership.
func (m *RecursiveSharedMutex) SharedHolders() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.readers)
}
