package bridge

/*
#include "pitchshift.h"
*/
import "C"

import (
	"unsafe"

	"github.com/reapergo/reapergo/pkg/reaper"
)

// PitchShifter is the behavior contract for a Go-implemented pitch shifter.
//
// GetBuffer hands the host an input buffer it fills and keeps until
// BufferDone, so the buffer must be native memory from AllocSampleBuffer.
type PitchShifter interface {
	SetSampleRate(srate float64)
	SetNumChannels(nch int32)
	SetShift(shift float64)
	SetFormantShift(shift float64)
	SetTempo(tempo float64)
	Reset()
	// GetBuffer returns an input buffer for size sample frames, or nil if
	// the request cannot be satisfied.
	GetBuffer(size int32) []reaper.Sample
	BufferDone(inputFilled int32)
	FlushSamples()
	IsReset() bool
	// GetSamples fills out with up to requested output frames, returning
	// the number produced.
	GetSamples(requested int32, out []reaper.Sample) int32
	SetQualityParameter(parm int32)
	Extended(call int32, parm1, parm2, parm3 unsafe.Pointer) int32
}

// BasePitchShifter is a PitchShifter that accepts no input and produces no
// output. IsReset reports true since there is never buffered state.
type BasePitchShifter struct{}

func (BasePitchShifter) SetSampleRate(float64)                 {}
func (BasePitchShifter) SetNumChannels(int32)                  {}
func (BasePitchShifter) SetShift(float64)                      {}
func (BasePitchShifter) SetFormantShift(float64)               {}
func (BasePitchShifter) SetTempo(float64)                      {}
func (BasePitchShifter) Reset()                                {}
func (BasePitchShifter) GetBuffer(int32) []reaper.Sample       { return nil }
func (BasePitchShifter) BufferDone(int32)                      {}
func (BasePitchShifter) FlushSamples()                         {}
func (BasePitchShifter) IsReset() bool                         { return true }
func (BasePitchShifter) GetSamples(int32, []reaper.Sample) int32 { return 0 }
func (BasePitchShifter) SetQualityParameter(int32)             {}
func (BasePitchShifter) Extended(int32, unsafe.Pointer, unsafe.Pointer, unsafe.Pointer) int32 {
	return 0
}

type pitchShiftTarget struct {
	ps  PitchShifter
	nch int32
}

// OwnedPitchShifter owns a native pitch shifter shim created by
// CreatePitchShifter.
type OwnedPitchShifter struct {
	owned
	t *pitchShiftTarget
}

// CreatePitchShifter registers ps in the dispatch table and builds the
// native shim that forwards to it.
func CreatePitchShifter(ps PitchShifter) *OwnedPitchShifter {
	t := &pitchShiftTarget{ps: ps, nch: 1}
	h := register(t)
	p := C.pitchshift_create(C.uintptr_t(h))
	return &OwnedPitchShifter{owned: owned{ptr: unsafe.Pointer(p), h: h}, t: t}
}

// Close destroys the shim and retires its dispatch identifier.
func (o *OwnedPitchShifter) Close() error {
	return o.close(func(p unsafe.Pointer) {
		C.pitchshift_delete((*C.IReaperPitchShift)(p))
	}, nil)
}

// Native returns the accessor view of the owned shim. The view shares the
// channel count with the dispatch side, so SetNumChannels through either
// path keeps slice views sized correctly.
func (o *OwnedPitchShifter) Native() PitchShiftPtr {
	return PitchShiftPtr{p: (*C.IReaperPitchShift)(o.Ptr()), nch: &o.t.nch}
}

// PitchShiftPtr drives any IReaperPitchShift through its vtable. The channel
// count set through SetNumChannels scales the slice views handed to and from
// the object; set it before moving audio.
type PitchShiftPtr struct {
	p   *C.IReaperPitchShift
	nch *int32
}

// WrapPitchShifter wraps a host-owned pitch shifter pointer.
func WrapPitchShifter(p unsafe.Pointer) PitchShiftPtr {
	nch := int32(1)
	return PitchShiftPtr{p: (*C.IReaperPitchShift)(p), nch: &nch}
}

func (s PitchShiftPtr) SetSampleRate(srate float64) {
	C.pitchshift_set_srate(s.p, C.double(srate))
}

func (s PitchShiftPtr) SetNumChannels(nch int32) {
	if s.nch != nil && nch > 0 {
		*s.nch = nch
	}
	C.pitchshift_set_nch(s.p, C.int(nch))
}

func (s PitchShiftPtr) SetShift(shift float64) {
	C.pitchshift_set_shift(s.p, C.double(shift))
}

func (s PitchShiftPtr) SetFormantShift(shift float64) {
	C.pitchshift_set_formant_shift(s.p, C.double(shift))
}

func (s PitchShiftPtr) SetTempo(tempo float64) {
	C.pitchshift_set_tempo(s.p, C.double(tempo))
}

func (s PitchShiftPtr) Reset() { C.pitchshift_Reset(s.p) }

// GetBuffer returns the object's input buffer for size frames as a slice of
// size*nch samples, or nil. The buffer belongs to the object and is consumed
// by BufferDone.
func (s PitchShiftPtr) GetBuffer(size int32) []reaper.Sample {
	raw := C.pitchshift_GetBuffer(s.p, C.int(size))
	if raw == nil {
		return nil
	}
	return reaper.SampleSlice((*reaper.Sample)(unsafe.Pointer(raw)), size*s.channels())
}

func (s PitchShiftPtr) BufferDone(inputFilled int32) {
	C.pitchshift_BufferDone(s.p, C.int(inputFilled))
}

func (s PitchShiftPtr) FlushSamples() { C.pitchshift_FlushSamples(s.p) }

func (s PitchShiftPtr) IsReset() bool {
	return C.pitchshift_IsReset(s.p) != 0
}

func (s PitchShiftPtr) GetSamples(requested int32, out []reaper.Sample) int32 {
	var p *C.ReaSample
	if len(out) > 0 {
		p = (*C.ReaSample)(unsafe.Pointer(&out[0]))
	}
	return int32(C.pitchshift_GetSamples(s.p, C.int(requested), p))
}

func (s PitchShiftPtr) SetQualityParameter(parm int32) {
	C.pitchshift_SetQualityParameter(s.p, C.int(parm))
}

func (s PitchShiftPtr) Extended(call int32, parm1, parm2, parm3 unsafe.Pointer) int32 {
	return int32(C.pitchshift_Extended(s.p, C.int(call), parm1, parm2, parm3))
}

func (s PitchShiftPtr) channels() int32 {
	if s.nch == nil || *s.nch <= 0 {
		return 1
	}
	return *s.nch
}

func lookupPitchShift(target C.uintptr_t) *pitchShiftTarget {
	return lookup[*pitchShiftTarget](uintptr(target))
}

//export GoPitchShiftSetSampleRate
func GoPitchShiftSetSampleRate(target C.uintptr_t, srate C.double) {
	if t := lookupPitchShift(target); t != nil {
		guard0("IReaperPitchShift.set_srate", func() {
			t.ps.SetSampleRate(float64(srate))
		})
	}
}

//export GoPitchShiftSetNumChannels
func GoPitchShiftSetNumChannels(target C.uintptr_t, nch C.int) {
	if t := lookupPitchShift(target); t != nil {
		if nch > 0 {
			t.nch = int32(nch)
		}
		guard0("IReaperPitchShift.set_nch", func() {
			t.ps.SetNumChannels(int32(nch))
		})
	}
}

//export GoPitchShiftSetShift
func GoPitchShiftSetShift(target C.uintptr_t, shift C.double) {
	if t := lookupPitchShift(target); t != nil {
		guard0("IReaperPitchShift.set_shift", func() {
			t.ps.SetShift(float64(shift))
		})
	}
}

//export GoPitchShiftSetFormantShift
func GoPitchShiftSetFormantShift(target C.uintptr_t, shift C.double) {
	if t := lookupPitchShift(target); t != nil {
		guard0("IReaperPitchShift.set_formant_shift", func() {
			t.ps.SetFormantShift(float64(shift))
		})
	}
}

//export GoPitchShiftSetTempo
func GoPitchShiftSetTempo(target C.uintptr_t, tempo C.double) {
	if t := lookupPitchShift(target); t != nil {
		guard0("IReaperPitchShift.set_tempo", func() {
			t.ps.SetTempo(float64(tempo))
		})
	}
}

//export GoPitchShiftReset
func GoPitchShiftReset(target C.uintptr_t) {
	if t := lookupPitchShift(target); t != nil {
		guard0("IReaperPitchShift.Reset", t.ps.Reset)
	}
}

//export GoPitchShiftGetBuffer
func GoPitchShiftGetBuffer(target C.uintptr_t, size C.int) unsafe.Pointer {
	t := lookupPitchShift(target)
	if t == nil {
		return nil
	}
	buf := guard("IReaperPitchShift.GetBuffer", nil, func() []reaper.Sample {
		return t.ps.GetBuffer(int32(size))
	})
	if len(buf) == 0 {
		return nil
	}
	return unsafe.Pointer(&buf[0])
}

//export GoPitchShiftBufferDone
func GoPitchShiftBufferDone(target C.uintptr_t, inputFilled C.int) {
	if t := lookupPitchShift(target); t != nil {
		guard0("IReaperPitchShift.BufferDone", func() {
			t.ps.BufferDone(int32(inputFilled))
		})
	}
}

//export GoPitchShiftFlushSamples
func GoPitchShiftFlushSamples(target C.uintptr_t) {
	if t := lookupPitchShift(target); t != nil {
		guard0("IReaperPitchShift.FlushSamples", t.ps.FlushSamples)
	}
}

//export GoPitchShiftIsReset
func GoPitchShiftIsReset(target C.uintptr_t) C.int {
	t := lookupPitchShift(target)
	if t == nil {
		return 1
	}
	return cbool(guard("IReaperPitchShift.IsReset", true, t.ps.IsReset))
}

//export GoPitchShiftGetSamples
func GoPitchShiftGetSamples(target C.uintptr_t, requested C.int, buffer *C.ReaSample) C.int {
	t := lookupPitchShift(target)
	if t == nil {
		return 0
	}
	out := reaper.SampleSlice((*reaper.Sample)(unsafe.Pointer(buffer)), int32(requested)*t.nch)
	return C.int(guard("IReaperPitchShift.GetSamples", int32(0), func() int32 {
		return t.ps.GetSamples(int32(requested), out)
	}))
}

//export GoPitchShiftSetQualityParameter
func GoPitchShiftSetQualityParameter(target C.uintptr_t, parm C.int) {
	if t := lookupPitchShift(target); t != nil {
		guard0("IReaperPitchShift.SetQualityParameter", func() {
			t.ps.SetQualityParameter(int32(parm))
		})
	}
}

//export GoPitchShiftExtended
func GoPitchShiftExtended(target C.uintptr_t, call C.int, parm1, parm2, parm3 unsafe.Pointer) C.int {
	t := lookupPitchShift(target)
	if t == nil {
		return 0
	}
	return C.int(guard("IReaperPitchShift.Extended", int32(0), func() int32 {
		return t.ps.Extended(int32(call), parm1, parm2, parm3)
	}))
}
