package bridge

/*
#include <stdlib.h>

#include "pcmsource.h"
*/
import "C"

import (
	"unsafe"

	"github.com/reapergo/reapergo/pkg/reaper"
)

// PCMSource is the behavior contract for a Go-implemented media source.
// Embed BasePCMSource and override what the source actually supports.
//
// Duplicate and GetSource return raw native PCM_source pointers, typically
// the Ptr of another OwnedSource; ownership of a Duplicate result transfers
// to the caller.
type PCMSource interface {
	Duplicate() unsafe.Pointer
	IsAvailable() bool
	SetAvailable(avail bool)
	GetType() string
	GetFileName() string
	GetSource() unsafe.Pointer
	SetSource(src unsafe.Pointer)
	GetNumChannels() int32
	GetSampleRate() float64
	GetLength() float64
	GetLengthBeats() float64
	GetBitsPerSample() int32
	GetPreferredPosition() float64
	PropertiesWindow(parent reaper.HWND) int32
	// GetSamples fills block.SamplesOut samples into the host-owned block
	// buffer. The block is a zero-copy view of host memory and is only
	// valid for the duration of the call.
	GetSamples(block *reaper.PCMSourceTransfer)
	GetPeakInfo(block *reaper.PeakTransfer)
	SaveState(ctx StateCtxPtr)
	LoadState(firstline string, ctx StateCtxPtr) int32
	PeaksClear(deleteFile bool)
	PeaksBuildBegin() int32
	PeaksBuildRun() int32
	PeaksBuildFinish()
	Extended(call int32, parm1, parm2, parm3 unsafe.Pointer) int32
}

// BasePCMSource implements PCMSource with the abstract class's defaults:
// unavailable, empty, zero-length, and -1 for the "not supported" sentinels.
type BasePCMSource struct{}

func (BasePCMSource) Duplicate() unsafe.Pointer          { return nil }
func (BasePCMSource) IsAvailable() bool                  { return false }
func (BasePCMSource) SetAvailable(bool)                  {}
func (BasePCMSource) GetType() string                    { return "" }
func (BasePCMSource) GetFileName() string                { return "" }
func (BasePCMSource) GetSource() unsafe.Pointer          { return nil }
func (BasePCMSource) SetSource(unsafe.Pointer)           {}
func (BasePCMSource) GetNumChannels() int32              { return 0 }
func (BasePCMSource) GetSampleRate() float64             { return 0 }
func (BasePCMSource) GetLength() float64                 { return 0 }
func (BasePCMSource) GetLengthBeats() float64            { return -1 }
func (BasePCMSource) GetBitsPerSample() int32            { return 0 }
func (BasePCMSource) GetPreferredPosition() float64      { return -1 }
func (BasePCMSource) PropertiesWindow(reaper.HWND) int32 { return 0 }
func (BasePCMSource) GetSamples(*reaper.PCMSourceTransfer)    {}
func (BasePCMSource) GetPeakInfo(*reaper.PeakTransfer)        {}
func (BasePCMSource) SaveState(StateCtxPtr)                   {}
func (BasePCMSource) LoadState(string, StateCtxPtr) int32     { return -1 }
func (BasePCMSource) PeaksClear(bool)                         {}
func (BasePCMSource) PeaksBuildBegin() int32                  { return 0 }
func (BasePCMSource) PeaksBuildRun() int32                    { return 0 }
func (BasePCMSource) PeaksBuildFinish()                       {}
func (BasePCMSource) Extended(int32, unsafe.Pointer, unsafe.Pointer, unsafe.Pointer) int32 {
	return 0
}

type sourceTarget struct {
	src     PCMSource
	typeStr cstr
	fileStr cstr
}

func (t *sourceTarget) release() {
	t.typeStr.free()
	t.fileStr.free()
}

// OwnedSource owns a native media source shim created by CreatePCMSource.
type OwnedSource struct {
	owned
	t *sourceTarget
}

// CreatePCMSource registers src in the dispatch table and builds the native
// shim that forwards to it.
func CreatePCMSource(src PCMSource) *OwnedSource {
	t := &sourceTarget{src: src}
	h := register(t)
	p := C.source_create(C.uintptr_t(h))
	return &OwnedSource{owned: owned{ptr: unsafe.Pointer(p), h: h}, t: t}
}

// Close destroys the shim and retires its dispatch identifier.
func (o *OwnedSource) Close() error {
	return o.close(func(p unsafe.Pointer) {
		C.source_delete((*C.PCM_source)(p))
	}, o.t.release)
}

// Native returns the accessor view of the owned shim.
func (o *OwnedSource) Native() SourcePtr {
	return SourcePtr{p: (*C.PCM_source)(o.Ptr())}
}

// SourcePtr drives any PCM_source through its vtable.
type SourcePtr struct {
	p *C.PCM_source
}

// WrapPCMSource wraps a host-owned media source pointer.
func WrapPCMSource(p unsafe.Pointer) SourcePtr {
	return SourcePtr{p: (*C.PCM_source)(p)}
}

// Duplicate asks the source to clone itself. The returned pointer is a new
// PCM_source owned by the caller; wrap it with WrapPCMSource to drive it.
func (s SourcePtr) Duplicate() unsafe.Pointer {
	return unsafe.Pointer(C.source_Duplicate(s.p))
}

func (s SourcePtr) IsAvailable() bool {
	return C.source_IsAvailable(s.p) != 0
}

func (s SourcePtr) SetAvailable(avail bool) {
	C.source_SetAvailable(s.p, cbool(avail))
}

func (s SourcePtr) GetType() string {
	return C.GoString(C.source_GetType(s.p))
}

func (s SourcePtr) GetFileName() string {
	return C.GoString(C.source_GetFileName(s.p))
}

func (s SourcePtr) GetSource() unsafe.Pointer {
	return unsafe.Pointer(C.source_GetSource(s.p))
}

func (s SourcePtr) SetSource(src unsafe.Pointer) {
	C.source_SetSource(s.p, (*C.PCM_source)(src))
}

func (s SourcePtr) GetNumChannels() int32 {
	return int32(C.source_GetNumChannels(s.p))
}

func (s SourcePtr) GetSampleRate() float64 {
	return float64(C.source_GetSampleRate(s.p))
}

func (s SourcePtr) GetLength() float64 {
	return float64(C.source_GetLength(s.p))
}

func (s SourcePtr) GetLengthBeats() float64 {
	return float64(C.source_GetLengthBeats(s.p))
}

func (s SourcePtr) GetBitsPerSample() int32 {
	return int32(C.source_GetBitsPerSample(s.p))
}

func (s SourcePtr) GetPreferredPosition() float64 {
	return float64(C.source_GetPreferredPosition(s.p))
}

func (s SourcePtr) PropertiesWindow(parent reaper.HWND) int32 {
	return int32(C.source_PropertiesWindow(s.p, C.HWND(parent)))
}

func (s SourcePtr) GetSamples(block *reaper.PCMSourceTransfer) {
	C.source_GetSamples(s.p, (*C.PCM_source_transfer_t)(unsafe.Pointer(block)))
}

func (s SourcePtr) GetPeakInfo(block *reaper.PeakTransfer) {
	C.source_GetPeakInfo(s.p, (*C.PCM_source_peaktransfer_t)(unsafe.Pointer(block)))
}

func (s SourcePtr) SaveState(ctx StateCtxPtr) {
	C.source_SaveState(s.p, ctx.p)
}

func (s SourcePtr) LoadState(firstline string, ctx StateCtxPtr) int32 {
	cline := C.CString(firstline)
	defer C.free(unsafe.Pointer(cline))
	return int32(C.source_LoadState(s.p, cline, ctx.p))
}

func (s SourcePtr) PeaksClear(deleteFile bool) {
	C.source_Peaks_Clear(s.p, cbool(deleteFile))
}

func (s SourcePtr) PeaksBuildBegin() int32 {
	return int32(C.source_PeaksBuild_Begin(s.p))
}

func (s SourcePtr) PeaksBuildRun() int32 {
	return int32(C.source_PeaksBuild_Run(s.p))
}

func (s SourcePtr) PeaksBuildFinish() {
	C.source_PeaksBuild_Finish(s.p)
}

func (s SourcePtr) Extended(call int32, parm1, parm2, parm3 unsafe.Pointer) int32 {
	return int32(C.source_Extended(s.p, C.int(call), parm1, parm2, parm3))
}

func lookupSource(target C.uintptr_t) *sourceTarget {
	return lookup[*sourceTarget](uintptr(target))
}

//export GoSourceDuplicate
func GoSourceDuplicate(target C.uintptr_t) unsafe.Pointer {
	t := lookupSource(target)
	if t == nil {
		return nil
	}
	return guard("PCM_source.Duplicate", nil, t.src.Duplicate)
}

//export GoSourceIsAvailable
func GoSourceIsAvailable(target C.uintptr_t) C.int {
	t := lookupSource(target)
	if t == nil {
		return 0
	}
	return cbool(guard("PCM_source.IsAvailable", false, t.src.IsAvailable))
}

//export GoSourceSetAvailable
func GoSourceSetAvailable(target C.uintptr_t, avail C.int) {
	if t := lookupSource(target); t != nil {
		guard0("PCM_source.SetAvailable", func() {
			t.src.SetAvailable(avail != 0)
		})
	}
}

//export GoSourceGetType
func GoSourceGetType(target C.uintptr_t) *C.char {
	t := lookupSource(target)
	if t == nil {
		return nil
	}
	return t.typeStr.set(guard("PCM_source.GetType", "", t.src.GetType))
}

//export GoSourceGetFileName
func GoSourceGetFileName(target C.uintptr_t) *C.char {
	t := lookupSource(target)
	if t == nil {
		return nil
	}
	return t.fileStr.set(guard("PCM_source.GetFileName", "", t.src.GetFileName))
}

//export GoSourceGetSource
func GoSourceGetSource(target C.uintptr_t) unsafe.Pointer {
	t := lookupSource(target)
	if t == nil {
		return nil
	}
	return guard("PCM_source.GetSource", nil, t.src.GetSource)
}

//export GoSourceSetSource
func GoSourceSetSource(target C.uintptr_t, src *C.PCM_source) {
	if t := lookupSource(target); t != nil {
		guard0("PCM_source.SetSource", func() {
			t.src.SetSource(unsafe.Pointer(src))
		})
	}
}

//export GoSourceGetNumChannels
func GoSourceGetNumChannels(target C.uintptr_t) C.int {
	t := lookupSource(target)
	if t == nil {
		return 0
	}
	return C.int(guard("PCM_source.GetNumChannels", int32(0), t.src.GetNumChannels))
}

//export GoSourceGetSampleRate
func GoSourceGetSampleRate(target C.uintptr_t) C.double {
	t := lookupSource(target)
	if t == nil {
		return 0
	}
	return C.double(guard("PCM_source.GetSampleRate", float64(0), t.src.GetSampleRate))
}

//export GoSourceGetLength
func GoSourceGetLength(target C.uintptr_t) C.double {
	t := lookupSource(target)
	if t == nil {
		return 0
	}
	return C.double(guard("PCM_source.GetLength", float64(0), t.src.GetLength))
}

//export GoSourceGetLengthBeats
func GoSourceGetLengthBeats(target C.uintptr_t) C.double {
	t := lookupSource(target)
	if t == nil {
		return -1
	}
	return C.double(guard("PCM_source.GetLengthBeats", float64(-1), t.src.GetLengthBeats))
}

//export GoSourceGetBitsPerSample
func GoSourceGetBitsPerSample(target C.uintptr_t) C.int {
	t := lookupSource(target)
	if t == nil {
		return 0
	}
	return C.int(guard("PCM_source.GetBitsPerSample", int32(0), t.src.GetBitsPerSample))
}

//export GoSourceGetPreferredPosition
func GoSourceGetPreferredPosition(target C.uintptr_t) C.double {
	t := lookupSource(target)
	if t == nil {
		return -1
	}
	return C.double(guard("PCM_source.GetPreferredPosition", float64(-1), t.src.GetPreferredPosition))
}

//export GoSourcePropertiesWindow
func GoSourcePropertiesWindow(target C.uintptr_t, hwndParent C.HWND) C.int {
	t := lookupSource(target)
	if t == nil {
		return 0
	}
	return C.int(guard("PCM_source.PropertiesWindow", int32(0), func() int32 {
		return t.src.PropertiesWindow(reaper.HWND(hwndParent))
	}))
}

//export GoSourceGetSamples
func GoSourceGetSamples(target C.uintptr_t, block *C.PCM_source_transfer_t) {
	if t := lookupSource(target); t != nil {
		guard0("PCM_source.GetSamples", func() {
			t.src.GetSamples((*reaper.PCMSourceTransfer)(unsafe.Pointer(block)))
		})
	}
}

//export GoSourceGetPeakInfo
func GoSourceGetPeakInfo(target C.uintptr_t, block *C.PCM_source_peaktransfer_t) {
	if t := lookupSource(target); t != nil {
		guard0("PCM_source.GetPeakInfo", func() {
			t.src.GetPeakInfo((*reaper.PeakTransfer)(unsafe.Pointer(block)))
		})
	}
}

//export GoSourceSaveState
func GoSourceSaveState(target C.uintptr_t, ctx *C.ProjectStateContext) {
	if t := lookupSource(target); t != nil {
		guard0("PCM_source.SaveState", func() {
			t.src.SaveState(StateCtxPtr{p: ctx})
		})
	}
}

//export GoSourceLoadState
func GoSourceLoadState(target C.uintptr_t, firstline *C.char, ctx *C.ProjectStateContext) C.int {
	t := lookupSource(target)
	if t == nil {
		return -1
	}
	line := C.GoString(firstline)
	return C.int(guard("PCM_source.LoadState", int32(-1), func() int32 {
		return t.src.LoadState(line, StateCtxPtr{p: ctx})
	}))
}

//export GoSourcePeaksClear
func GoSourcePeaksClear(target C.uintptr_t, deleteFile C.int) {
	if t := lookupSource(target); t != nil {
		guard0("PCM_source.Peaks_Clear", func() {
			t.src.PeaksClear(deleteFile != 0)
		})
	}
}

//export GoSourcePeaksBuildBegin
func GoSourcePeaksBuildBegin(target C.uintptr_t) C.int {
	t := lookupSource(target)
	if t == nil {
		return 0
	}
	return C.int(guard("PCM_source.PeaksBuild_Begin", int32(0), t.src.PeaksBuildBegin))
}

//export GoSourcePeaksBuildRun
func GoSourcePeaksBuildRun(target C.uintptr_t) C.int {
	t := lookupSource(target)
	if t == nil {
		return 0
	}
	return C.int(guard("PCM_source.PeaksBuild_Run", int32(0), t.src.PeaksBuildRun))
}

//export GoSourcePeaksBuildFinish
func GoSourcePeaksBuildFinish(target C.uintptr_t) {
	if t := lookupSource(target); t != nil {
		guard0("PCM_source.PeaksBuild_Finish", t.src.PeaksBuildFinish)
	}
}

//export GoSourceExtended
func GoSourceExtended(target C.uintptr_t, call C.int, parm1, parm2, parm3 unsafe.Pointer) C.int {
	t := lookupSource(target)
	if t == nil {
		return 0
	}
	return C.int(guard("PCM_source.Extended", int32(0), func() int32 {
		return t.src.Extended(int32(call), parm1, parm2, parm3)
	}))
}
