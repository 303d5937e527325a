package bridge

/*
#include <stdlib.h>
#include <string.h>
*/
import "C"

import (
	"sync/atomic"
	"unsafe"
)

// cstr holds one C-heap string slot. String-returning dispatch operations
// hand the host a pointer that stays valid until the next call of the same
// operation on the same instance, which is the host's own convention for
// these methods. Replacing the slot frees the previous string.
type cstr struct {
	p unsafe.Pointer
}

// set stores v in the slot and returns the C pointer. An empty string maps
// to NULL, matching interfaces where NULL means "no value".
func (s *cstr) set(v string) *C.char {
	var p unsafe.Pointer
	if v != "" {
		p = unsafe.Pointer(C.CString(v))
	}
	old := atomic.SwapPointer(&s.p, p)
	if old != nil {
		C.free(old)
	}
	return (*C.char)(p)
}

func (s *cstr) free() {
	old := atomic.SwapPointer(&s.p, nil)
	if old != nil {
		C.free(old)
	}
}

// copyToC writes v into the fixed-size native buffer buf, truncating to fit
// and always NUL-terminating. Used by operations where the host supplies the
// destination.
func copyToC(buf *C.char, buflen C.int, v string) {
	if buf == nil || buflen <= 0 {
		return
	}
	n := len(v)
	if n > int(buflen)-1 {
		n = int(buflen) - 1
	}
	dst := unsafe.Slice((*byte)(unsafe.Pointer(buf)), int(buflen))
	copy(dst[:n], v)
	dst[n] = 0
}

// goStringN reads at most max bytes from a native NUL-terminated buffer.
func goStringN(buf *C.char, max int) string {
	if buf == nil {
		return ""
	}
	b := unsafe.Slice((*byte)(unsafe.Pointer(buf)), max)
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
