package bridge

import (
	"github.com/reapergo/reapergo/pkg/debug"
	"github.com/reapergo/reapergo/pkg/handle"
)

// guard invokes f and converts any panic into the operation's default value.
// Native callers sit directly above every dispatch function, so a panic must
// never be allowed to unwind past this frame.
func guard[T any](op string, def T, f func() T) (result T) {
	defer func() {
		if r := recover(); r != nil {
			debug.Error("panic in %s: %v", op, r)
			result = def
		}
	}()
	return f()
}

// guard0 is guard for void operations.
func guard0(op string, f func()) {
	defer func() {
		if r := recover(); r != nil {
			debug.Error("panic in %s: %v", op, r)
		}
	}()
	f()
}

// lookup resolves a dispatch identifier to the registered target of type T.
// A stale identifier or a type mismatch yields the zero T; callers return
// the operation's default in that case.
func lookup[T any](target uintptr) T {
	var zero T
	v, ok := handle.Handle(target).Value()
	if !ok {
		return zero
	}
	t, ok := v.(T)
	if !ok {
		return zero
	}
	return t
}
