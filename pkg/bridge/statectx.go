package bridge

/*
#include <stdlib.h>

#include "statectx.h"
*/
import "C"

import (
	"unsafe"

	"github.com/reapergo/reapergo/pkg/reaper"
)

// StateContext is the behavior contract for a Go-implemented project state
// context: a line-oriented serialization channel for project chunks.
type StateContext interface {
	// AddLine receives one fully rendered line. Format expansion has
	// already happened on the native side.
	AddLine(line string)
	// GetLine returns the next line, or ok=false once the stream is
	// exhausted. Lines longer than the host's buffer are truncated by the
	// bridge, not by the implementation.
	GetLine() (line string, ok bool)
	GetOutputSize() int64
	GetTempFlag() int32
	SetTempFlag(flag int32)
}

// BaseStateContext is a StateContext with no content: writes are discarded
// and reads report end of stream.
type BaseStateContext struct{}

func (BaseStateContext) AddLine(string)          {}
func (BaseStateContext) GetLine() (string, bool) { return "", false }
func (BaseStateContext) GetOutputSize() int64    { return 0 }
func (BaseStateContext) GetTempFlag() int32      { return 0 }
func (BaseStateContext) SetTempFlag(int32)       {}

type stateCtxTarget struct {
	ctx StateContext
}

// OwnedStateContext owns a native state context shim created by
// CreateStateContext.
type OwnedStateContext struct {
	owned
	t *stateCtxTarget
}

// CreateStateContext registers ctx in the dispatch table and builds the
// native shim that forwards to it.
func CreateStateContext(ctx StateContext) *OwnedStateContext {
	t := &stateCtxTarget{ctx: ctx}
	h := register(t)
	p := C.statectx_create(C.uintptr_t(h))
	return &OwnedStateContext{owned: owned{ptr: unsafe.Pointer(p), h: h}, t: t}
}

// Close destroys the shim and retires its dispatch identifier.
func (o *OwnedStateContext) Close() error {
	return o.close(func(p unsafe.Pointer) {
		C.statectx_delete((*C.ProjectStateContext)(p))
	}, nil)
}

// Native returns the accessor view of the owned shim.
func (o *OwnedStateContext) Native() StateCtxPtr {
	return StateCtxPtr{p: (*C.ProjectStateContext)(o.Ptr())}
}

// StateCtxPtr drives any ProjectStateContext through its vtable.
type StateCtxPtr struct {
	p *C.ProjectStateContext
}

// WrapStateContext wraps a host-owned state context pointer.
func WrapStateContext(p unsafe.Pointer) StateCtxPtr {
	return StateCtxPtr{p: (*C.ProjectStateContext)(p)}
}

// AddLine writes one line. The native variadic is fed through a literal
// "%s", so line may safely contain percent signs.
func (s StateCtxPtr) AddLine(line string) {
	cline := C.CString(line)
	defer C.free(unsafe.Pointer(cline))
	C.statectx_AddLine(s.p, cline)
}

// AddLineFormat writes one line through the native printf-style virtual with
// a string, an int and a double argument. format must consume exactly that
// argument set.
func (s StateCtxPtr) AddLineFormat(format, str string, n int32, x float64) {
	cformat := C.CString(format)
	defer C.free(unsafe.Pointer(cformat))
	carg := C.CString(str)
	defer C.free(unsafe.Pointer(carg))
	C.statectx_AddLineFormat(s.p, cformat, carg, C.int(n), C.double(x))
}

// GetLine reads the next line, reporting ok=false at end of stream.
func (s StateCtxPtr) GetLine() (string, bool) {
	var buf [4096]C.char
	if C.statectx_GetLine(s.p, &buf[0], C.int(len(buf))) == C.int(reaper.GetLineEOF) {
		return "", false
	}
	return goStringN(&buf[0], len(buf)), true
}

func (s StateCtxPtr) GetOutputSize() int64 {
	return int64(C.statectx_GetOutputSize(s.p))
}

func (s StateCtxPtr) GetTempFlag() int32 {
	return int32(C.statectx_GetTempFlag(s.p))
}

func (s StateCtxPtr) SetTempFlag(flag int32) {
	C.statectx_SetTempFlag(s.p, C.int(flag))
}

func lookupStateCtx(target C.uintptr_t) *stateCtxTarget {
	return lookup[*stateCtxTarget](uintptr(target))
}

//export GoStateCtxAddLine
func GoStateCtxAddLine(target C.uintptr_t, line *C.char) {
	if t := lookupStateCtx(target); t != nil {
		rendered := C.GoString(line)
		guard0("ProjectStateContext.AddLine", func() {
			t.ctx.AddLine(rendered)
		})
	}
}

//export GoStateCtxGetLine
func GoStateCtxGetLine(target C.uintptr_t, buf *C.char, buflen C.int) C.int {
	t := lookupStateCtx(target)
	if t == nil {
		return C.int(reaper.GetLineEOF)
	}
	type lineResult struct {
		line string
		ok   bool
	}
	res := guard("ProjectStateContext.GetLine", lineResult{}, func() lineResult {
		line, ok := t.ctx.GetLine()
		return lineResult{line: line, ok: ok}
	})
	if !res.ok {
		return C.int(reaper.GetLineEOF)
	}
	copyToC(buf, buflen, res.line)
	return 0
}

//export GoStateCtxGetOutputSize
func GoStateCtxGetOutputSize(target C.uintptr_t) C.int64_t {
	t := lookupStateCtx(target)
	if t == nil {
		return 0
	}
	return C.int64_t(guard("ProjectStateContext.GetOutputSize", int64(0), t.ctx.GetOutputSize))
}

//export GoStateCtxGetTempFlag
func GoStateCtxGetTempFlag(target C.uintptr_t) C.int {
	t := lookupStateCtx(target)
	if t == nil {
		return 0
	}
	return C.int(guard("ProjectStateContext.GetTempFlag", int32(0), t.ctx.GetTempFlag))
}

//export GoStateCtxSetTempFlag
func GoStateCtxSetTempFlag(target C.uintptr_t, flag C.int) {
	if t := lookupStateCtx(target); t != nil {
		guard0("ProjectStateContext.SetTempFlag", func() {
			t.ctx.SetTempFlag(int32(flag))
		})
	}
}
