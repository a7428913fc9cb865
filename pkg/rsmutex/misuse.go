package rsmutex

import "fmt"

// MisuseReason classifies the caller contract violations the lock detects.
type MisuseReason int

const (
	// ReasonUpgrade means a goroutine holding shared ownership called Lock.
	// Upgrading to exclusive ownership is not supported; letting the call
	// proceed would deadlock the caller on its own reader entry.
	ReasonUpgrade MisuseReason = iota

	// ReasonNotWriter means Unlock was called by a goroutine that does not
	// hold exclusive ownership.
	ReasonNotWriter

	// ReasonNotReader means UnlockShared was called by a goroutine that holds
	// neither shared nor exclusive ownership.
	ReasonNotReader
)

func (r MisuseReason) String() string {
	switch r {
	case ReasonUpgrade:
		return "shared-to-exclusive upgrade"
	case ReasonNotWriter:
		return "release of exclusive ownership not held"
	case ReasonNotReader:
		return "release of shared ownership not held"
	default:
		return fmt.Sprintf("unknown misuse reason %d", int(r))
	}
}

// MisuseError is the panic payload for caller contract violations. These are
// programming errors, never runtime failures, so they are raised at the
// offending call in every build configuration rather than left undefined.
type MisuseError struct {
	// Op is the method the caller violated, e.g. "Lock" or "UnlockShared".
	Op string

	// Reason classifies the violation.
	Reason MisuseReason

	// GID is the id of the offending goroutine.
	GID int64
}

func (e *MisuseError) Error() string {
	return fmt.Sprintf("rsmutex: %s: %s by goroutine %d", e.Op, e.Reason, e.GID)
}

// misuse panics with a MisuseError for the given violation.
func misuse(op string, reason MisuseReason, id int64) {
	panic(&MisuseError{Op: op, Reason: reason, GID: id})
}
