package bridge

/*
#include "resample.h"
*/
import "C"

import (
	"unsafe"

	"github.com/reapergo/reapergo/pkg/reaper"
)

// Resampler is the behavior contract for a Go-implemented sample rate
// converter.
//
// ResamplePrepare hands the host an input staging buffer that the host fills
// and keeps across the ResampleOut call, so the buffer must be native memory
// from AllocSampleBuffer. Returning a nil buffer tells the host no input is
// needed.
type Resampler interface {
	SetRates(rateIn, rateOut float64)
	Reset()
	GetCurrentLatency() float64
	// ResamplePrepare returns the staging buffer for up to outSamples
	// output samples of nch channels, and the number of input sample
	// frames the host should write into it.
	ResamplePrepare(outSamples, nch int32) (buf []reaper.Sample, inSamples int32)
	// ResampleOut converts inSamples frames from the staging buffer into
	// out, returning the number of output frames produced.
	ResampleOut(out []reaper.Sample, inSamples, outSamples, nch int32) int32
	Extended(call int32, parm1, parm2, parm3 unsafe.Pointer) int32
}

// BaseResampler is a pass-through-less Resampler: no latency, no input
// wanted, no output produced.
type BaseResampler struct{}

func (BaseResampler) SetRates(float64, float64)     {}
func (BaseResampler) Reset()                        {}
func (BaseResampler) GetCurrentLatency() float64    { return 0 }
func (BaseResampler) ResamplePrepare(int32, int32) ([]reaper.Sample, int32) {
	return nil, 0
}
func (BaseResampler) ResampleOut([]reaper.Sample, int32, int32, int32) int32 { return 0 }
func (BaseResampler) Extended(int32, unsafe.Pointer, unsafe.Pointer, unsafe.Pointer) int32 {
	return 0
}

type resampleTarget struct {
	rs Resampler
}

// OwnedResampler owns a native resampler shim created by CreateResampler.
type OwnedResampler struct {
	owned
	t *resampleTarget
}

// CreateResampler registers rs in the dispatch table and builds the native
// shim that forwards to it.
func CreateResampler(rs Resampler) *OwnedResampler {
	t := &resampleTarget{rs: rs}
	h := register(t)
	p := C.resample_create(C.uintptr_t(h))
	return &OwnedResampler{owned: owned{ptr: unsafe.Pointer(p), h: h}, t: t}
}

// Close destroys the shim and retires its dispatch identifier. Buffers the
// behavior handed out via ResamplePrepare remain the behavior's to free.
func (o *OwnedResampler) Close() error {
	return o.close(func(p unsafe.Pointer) {
		C.resample_delete((*C.REAPER_Resample_Interface)(p))
	}, nil)
}

// Native returns the accessor view of the owned shim.
func (o *OwnedResampler) Native() ResamplePtr {
	return ResamplePtr{p: (*C.REAPER_Resample_Interface)(o.Ptr())}
}

// ResamplePtr drives any REAPER_Resample_Interface through its vtable.
type ResamplePtr struct {
	p *C.REAPER_Resample_Interface
}

// WrapResampler wraps a host-owned resampler pointer.
func WrapResampler(p unsafe.Pointer) ResamplePtr {
	return ResamplePtr{p: (*C.REAPER_Resample_Interface)(p)}
}

func (r ResamplePtr) SetRates(rateIn, rateOut float64) {
	C.resample_SetRates(r.p, C.double(rateIn), C.double(rateOut))
}

func (r ResamplePtr) Reset() { C.resample_Reset(r.p) }

func (r ResamplePtr) GetCurrentLatency() float64 {
	return float64(C.resample_GetCurrentLatency(r.p))
}

// ResamplePrepare returns the object's input staging buffer as a slice of
// inSamples*nch samples, or nil when no input is wanted. The buffer belongs
// to the resampler and is valid until its next Reset or ResamplePrepare.
func (r ResamplePtr) ResamplePrepare(outSamples, nch int32) (buf []reaper.Sample, inSamples int32) {
	var raw *C.ReaSample
	n := int32(C.resample_ResamplePrepare(r.p, C.int(outSamples), C.int(nch), &raw))
	if raw == nil || n <= 0 {
		return nil, n
	}
	return reaper.SampleSlice((*reaper.Sample)(unsafe.Pointer(raw)), n*nch), n
}

func (r ResamplePtr) ResampleOut(out []reaper.Sample, inSamples, outSamples, nch int32) int32 {
	var p *C.ReaSample
	if len(out) > 0 {
		p = (*C.ReaSample)(unsafe.Pointer(&out[0]))
	}
	return int32(C.resample_ResampleOut(r.p, p, C.int(inSamples), C.int(outSamples), C.int(nch)))
}

func (r ResamplePtr) Extended(call int32, parm1, parm2, parm3 unsafe.Pointer) int32 {
	return int32(C.resample_Extended(r.p, C.int(call), parm1, parm2, parm3))
}

func lookupResample(target C.uintptr_t) *resampleTarget {
	return lookup[*resampleTarget](uintptr(target))
}

//export GoResampleSetRates
func GoResampleSetRates(target C.uintptr_t, rateIn, rateOut C.double) {
	if t := lookupResample(target); t != nil {
		guard0("REAPER_Resample_Interface.SetRates", func() {
			t.rs.SetRates(float64(rateIn), float64(rateOut))
		})
	}
}

//export GoResampleReset
func GoResampleReset(target C.uintptr_t) {
	if t := lookupResample(target); t != nil {
		guard0("REAPER_Resample_Interface.Reset", t.rs.Reset)
	}
}

//export GoResampleGetCurrentLatency
func GoResampleGetCurrentLatency(target C.uintptr_t) C.double {
	t := lookupResample(target)
	if t == nil {
		return 0
	}
	return C.double(guard("REAPER_Resample_Interface.GetCurrentLatency", float64(0), t.rs.GetCurrentLatency))
}

//export GoResampleResamplePrepare
func GoResampleResamplePrepare(target C.uintptr_t, outSamples, nch C.int, inbuffer **C.ReaSample) C.int {
	t := lookupResample(target)
	if t == nil {
		if inbuffer != nil {
			*inbuffer = nil
		}
		return 0
	}
	type prepResult struct {
		buf []reaper.Sample
		n   int32
	}
	res := guard("REAPER_Resample_Interface.ResamplePrepare", prepResult{}, func() prepResult {
		buf, n := t.rs.ResamplePrepare(int32(outSamples), int32(nch))
		return prepResult{buf: buf, n: n}
	})
	if inbuffer != nil {
		if len(res.buf) > 0 {
			*inbuffer = (*C.ReaSample)(unsafe.Pointer(&res.buf[0]))
		} else {
			*inbuffer = nil
		}
	}
	return C.int(res.n)
}

//export GoResampleResampleOut
func GoResampleResampleOut(target C.uintptr_t, out *C.ReaSample, inSamples, outSamples, nch C.int) C.int {
	t := lookupResample(target)
	if t == nil {
		return 0
	}
	dst := reaper.SampleSlice((*reaper.Sample)(unsafe.Pointer(out)), int32(outSamples)*int32(nch))
	return C.int(guard("REAPER_Resample_Interface.ResampleOut", int32(0), func() int32 {
		return t.rs.ResampleOut(dst, int32(inSamples), int32(outSamples), int32(nch))
	}))
}

//export GoResampleExtended
func GoResampleExtended(target C.uintptr_t, call C.int, parm1, parm2, parm3 unsafe.Pointer) C.int {
	t := lookupResample(target)
	if t == nil {
		return 0
	}
	return C.int(guard("REAPER_Resample_Interface.Extended", int32(0), func() int32 {
		return t.rs.Extended(int32(call), parm1, parm2, parm3)
	}))
}
