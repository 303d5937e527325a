package bridge

import (
	"errors"
	"sync/atomic"
	"unsafe"

	"github.com/reapergo/reapergo/pkg/handle"
)

// ErrClosed is returned by Close on an already-consumed owned object.
var ErrClosed = errors.New("bridge: object already closed")

// owned is the common core of every Owned<X> type: the native shim pointer,
// the dispatch identifier its virtuals carry, and a consumed flag. Close is
// consuming; after it the pointer is gone and the identifier dispatches to
// defaults.
type owned struct {
	ptr    unsafe.Pointer
	h      handle.Handle
	closed atomic.Bool
}

// Ptr returns the native interface pointer to hand to the host, or nil once
// the object has been closed.
func (o *owned) Ptr() unsafe.Pointer {
	if o.closed.Load() {
		return nil
	}
	return o.ptr
}

// close destroys the shim via del, then runs cleanup for per-instance native
// state, then retires the dispatch identifier. The shim goes first: the
// identifier must stay resolvable for any call already in flight, and a call
// arriving after retirement only ever sees the default path.
func (o *owned) close(del func(unsafe.Pointer), cleanup func()) error {
	if !o.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}
	del(o.ptr)
	if cleanup != nil {
		cleanup()
	}
	o.h.Delete()
	return nil
}

// register stores target in the dispatch table. Exhaustion of the table at
// creation time has no recovery path; it aborts like any other allocation
// failure during object construction.
func register(target any) handle.Handle {
	h, err := handle.New(target)
	if err != nil {
		panic(err)
	}
	return h
}
