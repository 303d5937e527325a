// Package handle implements the dispatch table that routes native virtual
// calls back to Go behavior objects. A Handle is a word-sized opaque
// identifier that is safe to hand to C code in place of a Go pointer.
//
// The table is a fixed array of atomically-managed slots: registration does a
// compare-and-swap scan, lookup is a single atomic load. There are no locks
// anywhere, because lookups happen on the host's realtime audio thread where
// blocking on a mutex held by a lower-priority thread would cause priority
// inversion and dropped buffers.
//
// Unlike runtime/cgo.Handle, a lookup of an invalid or deleted handle does
// not panic: the bridge must answer a stale dispatch with the operation's
// default value, never with a fault.
package handle

import (
	"errors"
	"sync/atomic"
	"unsafe"
)

// Handle identifies one registered Go value. The zero Handle is never issued
// and is safe to use as a sentinel in C APIs.
type Handle uintptr

const (
	// Max is the largest value a Handle can hold, and therefore the maximum
	// number of simultaneously registered values. Bridged interface
	// instances are long-lived host-facing objects; a plugin needing more
	// than this many alive at once is leaking them.
	Max = 1024 - 1

	// How many full scans of the slot array New is willing to do before
	// giving up. Only relevant when the table is contended near capacity.
	maxNewRounds = 20
)

// ErrExhausted is returned by New when every slot is taken.
var ErrExhausted = errors.New("handle: table exhausted")

var (
	slots  [Max + 1]unsafe.Pointer // [int]*any
	noSlot unsafe.Pointer
)

// New registers v and returns its handle. The handle stays valid until
// Delete; C code may hold it arbitrarily long, so the caller must Delete it
// once no native object can refer to it anymore.
func New(v any) (Handle, error) {
	rounds := 0
	for h := uintptr(1); ; h++ {
		if atomic.CompareAndSwapPointer(&slots[h], noSlot, unsafe.Pointer(&v)) {
			return Handle(h), nil
		}
		if h < Max {
			continue
		}
		h = 0 // incremented on continue
		if rounds < maxNewRounds {
			rounds++
			continue
		}
		return 0, ErrExhausted
	}
}

// Value returns the value registered under h. ok is false when h was never
// issued or has been deleted; callers are expected to fall back to the
// operation's default value in that case.
func (h Handle) Value() (v any, ok bool) {
	if h == 0 || h > Max {
		return nil, false
	}
	p := atomic.LoadPointer(&slots[h])
	if p == noSlot {
		return nil, false
	}
	return *(*any)(p), true
}

// Delete invalidates h. It reports whether h was valid; deleting an invalid
// or already-deleted handle is a no-op, not a fault, because teardown races
// between the safe side and the native delete call must stay benign.
func (h Handle) Delete() bool {
	if h == 0 || h > Max {
		return false
	}
	for {
		p := atomic.LoadPointer(&slots[h])
		if p == noSlot {
			return false
		}
		if atomic.CompareAndSwapPointer(&slots[h], p, noSlot) {
			return true
		}
	}
}
