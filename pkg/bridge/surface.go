package bridge

/*
#include <stdlib.h>

#include "surface.h"
*/
import "C"

import (
	"unsafe"

	"github.com/reapergo/reapergo/pkg/reaper"
)

// ControlSurface is the behavior contract for a Go-implemented control
// surface. Embed BaseControlSurface and override the methods you care about.
//
// Methods are invoked from host threads via the dispatch table; if several
// host threads drive the surface, the implementation synchronizes its own
// state.
type ControlSurface interface {
	// GetTypeString identifies the surface type. Consecutive calls must
	// return the same value; the host compares pointers as well as content.
	GetTypeString() string
	GetDescString() string
	GetConfigString() string

	CloseNoReset()
	Run()
	SetTrackListChange()
	SetSurfaceVolume(track *reaper.MediaTrack, volume float64)
	SetSurfacePan(track *reaper.MediaTrack, pan float64)
	SetSurfaceMute(track *reaper.MediaTrack, mute bool)
	SetSurfaceSelected(track *reaper.MediaTrack, selected bool)
	SetSurfaceSolo(track *reaper.MediaTrack, solo bool)
	SetSurfaceRecArm(track *reaper.MediaTrack, recarm bool)
	SetPlayState(play, pause, rec bool)
	SetRepeatState(rep bool)
	SetTrackTitle(track *reaper.MediaTrack, title string)
	GetTouchState(track *reaper.MediaTrack, isPan int32) bool
	SetAutoMode(mode int32)
	ResetCachedVolPanStates()
	OnTrackSelection(track *reaper.MediaTrack)
	IsKeyDown(key int32) bool
	Extended(call int32, parm1, parm2, parm3 unsafe.Pointer) int32
}

// BaseControlSurface implements ControlSurface with the interface's default
// behavior for every operation: empty strings, false, zero, and no-ops.
type BaseControlSurface struct{}

func (BaseControlSurface) GetTypeString() string                              { return "" }
func (BaseControlSurface) GetDescString() string                              { return "" }
func (BaseControlSurface) GetConfigString() string                            { return "" }
func (BaseControlSurface) CloseNoReset()                                      {}
func (BaseControlSurface) Run()                                               {}
func (BaseControlSurface) SetTrackListChange()                                {}
func (BaseControlSurface) SetSurfaceVolume(*reaper.MediaTrack, float64)       {}
func (BaseControlSurface) SetSurfacePan(*reaper.MediaTrack, float64)          {}
func (BaseControlSurface) SetSurfaceMute(*reaper.MediaTrack, bool)            {}
func (BaseControlSurface) SetSurfaceSelected(*reaper.MediaTrack, bool)        {}
func (BaseControlSurface) SetSurfaceSolo(*reaper.MediaTrack, bool)            {}
func (BaseControlSurface) SetSurfaceRecArm(*reaper.MediaTrack, bool)          {}
func (BaseControlSurface) SetPlayState(play, pause, rec bool)                 {}
func (BaseControlSurface) SetRepeatState(bool)                                {}
func (BaseControlSurface) SetTrackTitle(*reaper.MediaTrack, string)           {}
func (BaseControlSurface) GetTouchState(*reaper.MediaTrack, int32) bool       { return false }
func (BaseControlSurface) SetAutoMode(int32)                                  {}
func (BaseControlSurface) ResetCachedVolPanStates()                           {}
func (BaseControlSurface) OnTrackSelection(*reaper.MediaTrack)                {}
func (BaseControlSurface) IsKeyDown(int32) bool                               { return false }
func (BaseControlSurface) Extended(int32, unsafe.Pointer, unsafe.Pointer, unsafe.Pointer) int32 {
	return 0
}

// surfaceTarget is the dispatch-table entry for one shim instance. The cstr
// slots back the three string-returning virtuals.
type surfaceTarget struct {
	cs      ControlSurface
	typeStr cstr
	descStr cstr
	cfgStr  cstr
}

func (t *surfaceTarget) release() {
	t.typeStr.free()
	t.descStr.free()
	t.cfgStr.free()
}

// OwnedSurface owns a native control surface shim created by
// CreateControlSurface.
type OwnedSurface struct {
	owned
	t *surfaceTarget
}

// CreateControlSurface registers cs in the dispatch table and builds the
// native shim that forwards to it. The caller owns the result and must Close
// it once the host can no longer call the surface.
func CreateControlSurface(cs ControlSurface) *OwnedSurface {
	t := &surfaceTarget{cs: cs}
	h := register(t)
	p := C.surface_create(C.uintptr_t(h))
	return &OwnedSurface{owned: owned{ptr: unsafe.Pointer(p), h: h}, t: t}
}

// Close destroys the shim and retires its dispatch identifier. Close consumes
// the object; a second call returns ErrClosed and does nothing.
func (o *OwnedSurface) Close() error {
	return o.close(func(p unsafe.Pointer) {
		C.surface_delete((*C.IReaperControlSurface)(p))
	}, o.t.release)
}

// Native returns the accessor view of the owned shim, for driving it the way
// the host would. The zero SurfacePtr is returned after Close.
func (o *OwnedSurface) Native() SurfacePtr {
	return SurfacePtr{p: (*C.IReaperControlSurface)(o.Ptr())}
}

// SurfacePtr drives any IReaperControlSurface through its vtable. The host
// (or an Owned handle) keeps ownership of the pointer; the wrapper performs
// calls only and must not outlive the object.
type SurfacePtr struct {
	p *C.IReaperControlSurface
}

// WrapSurface wraps a host-owned control surface pointer.
func WrapSurface(p unsafe.Pointer) SurfacePtr {
	return SurfacePtr{p: (*C.IReaperControlSurface)(p)}
}

func (s SurfacePtr) GetTypeString() string {
	return C.GoString(C.surface_GetTypeString(s.p))
}

func (s SurfacePtr) GetDescString() string {
	return C.GoString(C.surface_GetDescString(s.p))
}

func (s SurfacePtr) GetConfigString() string {
	return C.GoString(C.surface_GetConfigString(s.p))
}

func (s SurfacePtr) CloseNoReset() { C.surface_CloseNoReset(s.p) }

func (s SurfacePtr) Run() { C.surface_Run(s.p) }

func (s SurfacePtr) SetTrackListChange() { C.surface_SetTrackListChange(s.p) }

func (s SurfacePtr) SetSurfaceVolume(track *reaper.MediaTrack, volume float64) {
	C.surface_SetSurfaceVolume(s.p, (*C.MediaTrack)(unsafe.Pointer(track)), C.double(volume))
}

func (s SurfacePtr) SetSurfacePan(track *reaper.MediaTrack, pan float64) {
	C.surface_SetSurfacePan(s.p, (*C.MediaTrack)(unsafe.Pointer(track)), C.double(pan))
}

func (s SurfacePtr) SetSurfaceMute(track *reaper.MediaTrack, mute bool) {
	C.surface_SetSurfaceMute(s.p, (*C.MediaTrack)(unsafe.Pointer(track)), cbool(mute))
}

func (s SurfacePtr) SetSurfaceSelected(track *reaper.MediaTrack, selected bool) {
	C.surface_SetSurfaceSelected(s.p, (*C.MediaTrack)(unsafe.Pointer(track)), cbool(selected))
}

func (s SurfacePtr) SetSurfaceSolo(track *reaper.MediaTrack, solo bool) {
	C.surface_SetSurfaceSolo(s.p, (*C.MediaTrack)(unsafe.Pointer(track)), cbool(solo))
}

func (s SurfacePtr) SetSurfaceRecArm(track *reaper.MediaTrack, recarm bool) {
	C.surface_SetSurfaceRecArm(s.p, (*C.MediaTrack)(unsafe.Pointer(track)), cbool(recarm))
}

func (s SurfacePtr) SetPlayState(play, pause, rec bool) {
	C.surface_SetPlayState(s.p, cbool(play), cbool(pause), cbool(rec))
}

func (s SurfacePtr) SetRepeatState(rep bool) {
	C.surface_SetRepeatState(s.p, cbool(rep))
}

func (s SurfacePtr) SetTrackTitle(track *reaper.MediaTrack, title string) {
	ctitle := C.CString(title)
	defer C.free(unsafe.Pointer(ctitle))
	C.surface_SetTrackTitle(s.p, (*C.MediaTrack)(unsafe.Pointer(track)), ctitle)
}

func (s SurfacePtr) GetTouchState(track *reaper.MediaTrack, isPan int32) bool {
	return C.surface_GetTouchState(s.p, (*C.MediaTrack)(unsafe.Pointer(track)), C.int(isPan)) != 0
}

func (s SurfacePtr) SetAutoMode(mode int32) {
	C.surface_SetAutoMode(s.p, C.int(mode))
}

func (s SurfacePtr) ResetCachedVolPanStates() {
	C.surface_ResetCachedVolPanStates(s.p)
}

func (s SurfacePtr) OnTrackSelection(track *reaper.MediaTrack) {
	C.surface_OnTrackSelection(s.p, (*C.MediaTrack)(unsafe.Pointer(track)))
}

func (s SurfacePtr) IsKeyDown(key int32) bool {
	return C.surface_IsKeyDown(s.p, C.int(key)) != 0
}

func (s SurfacePtr) Extended(call int32, parm1, parm2, parm3 unsafe.Pointer) int32 {
	return int32(C.surface_Extended(s.p, C.int(call), parm1, parm2, parm3))
}

func lookupSurface(target C.uintptr_t) *surfaceTarget {
	return lookup[*surfaceTarget](uintptr(target))
}

//export GoSurfaceGetTypeString
func GoSurfaceGetTypeString(target C.uintptr_t) *C.char {
	t := lookupSurface(target)
	if t == nil {
		return nil
	}
	return t.typeStr.set(guard("IReaperControlSurface.GetTypeString", "", t.cs.GetTypeString))
}

//export GoSurfaceGetDescString
func GoSurfaceGetDescString(target C.uintptr_t) *C.char {
	t := lookupSurface(target)
	if t == nil {
		return nil
	}
	return t.descStr.set(guard("IReaperControlSurface.GetDescString", "", t.cs.GetDescString))
}

//export GoSurfaceGetConfigString
func GoSurfaceGetConfigString(target C.uintptr_t) *C.char {
	t := lookupSurface(target)
	if t == nil {
		return nil
	}
	return t.cfgStr.set(guard("IReaperControlSurface.GetConfigString", "", t.cs.GetConfigString))
}

//export GoSurfaceCloseNoReset
func GoSurfaceCloseNoReset(target C.uintptr_t) {
	if t := lookupSurface(target); t != nil {
		guard0("IReaperControlSurface.CloseNoReset", t.cs.CloseNoReset)
	}
}

//export GoSurfaceRun
func GoSurfaceRun(target C.uintptr_t) {
	if t := lookupSurface(target); t != nil {
		guard0("IReaperControlSurface.Run", t.cs.Run)
	}
}

//export GoSurfaceSetTrackListChange
func GoSurfaceSetTrackListChange(target C.uintptr_t) {
	if t := lookupSurface(target); t != nil {
		guard0("IReaperControlSurface.SetTrackListChange", t.cs.SetTrackListChange)
	}
}

//export GoSurfaceSetSurfaceVolume
func GoSurfaceSetSurfaceVolume(target C.uintptr_t, trackid *C.MediaTrack, volume C.double) {
	if t := lookupSurface(target); t != nil {
		guard0("IReaperControlSurface.SetSurfaceVolume", func() {
			t.cs.SetSurfaceVolume((*reaper.MediaTrack)(unsafe.Pointer(trackid)), float64(volume))
		})
	}
}

//export GoSurfaceSetSurfacePan
func GoSurfaceSetSurfacePan(target C.uintptr_t, trackid *C.MediaTrack, pan C.double) {
	if t := lookupSurface(target); t != nil {
		guard0("IReaperControlSurface.SetSurfacePan", func() {
			t.cs.SetSurfacePan((*reaper.MediaTrack)(unsafe.Pointer(trackid)), float64(pan))
		})
	}
}

//export GoSurfaceSetSurfaceMute
func GoSurfaceSetSurfaceMute(target C.uintptr_t, trackid *C.MediaTrack, mute C.int) {
	if t := lookupSurface(target); t != nil {
		guard0("IReaperControlSurface.SetSurfaceMute", func() {
			t.cs.SetSurfaceMute((*reaper.MediaTrack)(unsafe.Pointer(trackid)), mute != 0)
		})
	}
}

//export GoSurfaceSetSurfaceSelected
func GoSurfaceSetSurfaceSelected(target C.uintptr_t, trackid *C.MediaTrack, selected C.int) {
	if t := lookupSurface(target); t != nil {
		guard0("IReaperControlSurface.SetSurfaceSelected", func() {
			t.cs.SetSurfaceSelected((*reaper.MediaTrack)(unsafe.Pointer(trackid)), selected != 0)
		})
	}
}

//export GoSurfaceSetSurfaceSolo
func GoSurfaceSetSurfaceSolo(target C.uintptr_t, trackid *C.MediaTrack, solo C.int) {
	if t := lookupSurface(target); t != nil {
		guard0("IReaperControlSurface.SetSurfaceSolo", func() {
			t.cs.SetSurfaceSolo((*reaper.MediaTrack)(unsafe.Pointer(trackid)), solo != 0)
		})
	}
}

//export GoSurfaceSetSurfaceRecArm
func GoSurfaceSetSurfaceRecArm(target C.uintptr_t, trackid *C.MediaTrack, recarm C.int) {
	if t := lookupSurface(target); t != nil {
		guard0("IReaperControlSurface.SetSurfaceRecArm", func() {
			t.cs.SetSurfaceRecArm((*reaper.MediaTrack)(unsafe.Pointer(trackid)), recarm != 0)
		})
	}
}

//export GoSurfaceSetPlayState
func GoSurfaceSetPlayState(target C.uintptr_t, play, pause, rec C.int) {
	if t := lookupSurface(target); t != nil {
		guard0("IReaperControlSurface.SetPlayState", func() {
			t.cs.SetPlayState(play != 0, pause != 0, rec != 0)
		})
	}
}

//export GoSurfaceSetRepeatState
func GoSurfaceSetRepeatState(target C.uintptr_t, rep C.int) {
	if t := lookupSurface(target); t != nil {
		guard0("IReaperControlSurface.SetRepeatState", func() {
			t.cs.SetRepeatState(rep != 0)
		})
	}
}

//export GoSurfaceSetTrackTitle
func GoSurfaceSetTrackTitle(target C.uintptr_t, trackid *C.MediaTrack, title *C.char) {
	if t := lookupSurface(target); t != nil {
		name := C.GoString(title)
		guard0("IReaperControlSurface.SetTrackTitle", func() {
			t.cs.SetTrackTitle((*reaper.MediaTrack)(unsafe.Pointer(trackid)), name)
		})
	}
}

//export GoSurfaceGetTouchState
func GoSurfaceGetTouchState(target C.uintptr_t, trackid *C.MediaTrack, isPan C.int) C.int {
	t := lookupSurface(target)
	if t == nil {
		return 0
	}
	return cbool(guard("IReaperControlSurface.GetTouchState", false, func() bool {
		return t.cs.GetTouchState((*reaper.MediaTrack)(unsafe.Pointer(trackid)), int32(isPan))
	}))
}

//export GoSurfaceSetAutoMode
func GoSurfaceSetAutoMode(target C.uintptr_t, mode C.int) {
	if t := lookupSurface(target); t != nil {
		guard0("IReaperControlSurface.SetAutoMode", func() {
			t.cs.SetAutoMode(int32(mode))
		})
	}
}

//export GoSurfaceResetCachedVolPanStates
func GoSurfaceResetCachedVolPanStates(target C.uintptr_t) {
	if t := lookupSurface(target); t != nil {
		guard0("IReaperControlSurface.ResetCachedVolPanStates", t.cs.ResetCachedVolPanStates)
	}
}

//export GoSurfaceOnTrackSelection
func GoSurfaceOnTrackSelection(target C.uintptr_t, trackid *C.MediaTrack) {
	if t := lookupSurface(target); t != nil {
		guard0("IReaperControlSurface.OnTrackSelection", func() {
			t.cs.OnTrackSelection((*reaper.MediaTrack)(unsafe.Pointer(trackid)))
		})
	}
}

//export GoSurfaceIsKeyDown
func GoSurfaceIsKeyDown(target C.uintptr_t, key C.int) C.int {
	t := lookupSurface(target)
	if t == nil {
		return 0
	}
	return cbool(guard("IReaperControlSurface.IsKeyDown", false, func() bool {
		return t.cs.IsKeyDown(int32(key))
	}))
}

//export GoSurfaceExtended
func GoSurfaceExtended(target C.uintptr_t, call C.int, parm1, parm2, parm3 unsafe.Pointer) C.int {
	t := lookupSurface(target)
	if t == nil {
		return 0
	}
	return C.int(guard("IReaperControlSurface.Extended", int32(0), func() int32 {
		return t.cs.Extended(int32(call), parm1, parm2, parm3)
	}))
}
