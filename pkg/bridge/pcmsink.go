package bridge

/*
#include "pcmsink.h"
*/
import "C"

import (
	"unsafe"

	"github.com/reapergo/reapergo/pkg/reaper"
)

// PCMSink is the behavior contract for a Go-implemented recording sink.
// Embed BasePCMSink and override what the sink supports.
type PCMSink interface {
	GetOutputInfoString() string
	GetStartTime() float64
	SetStartTime(st float64)
	GetFileName() string
	GetNumChannels() int32
	GetLength() float64
	GetFileSize() int64
	// WriteMIDI receives the host's event list for the block; the list is
	// host-owned and valid only for the duration of the call.
	WriteMIDI(events MIDIListPtr, length int32, samplerate float64)
	// WriteDoubles receives one host-owned pointer per channel. Sample i
	// of a channel lives at index offset+i*spacing of that channel's
	// buffer; spacing 1 with offset 0 is the common tightly-packed case.
	WriteDoubles(channels []*reaper.Sample, length, offset, spacing int32)
	WantMIDI() bool
	GetLastSecondPeaks(buf []reaper.Sample) int32
	GetPeakInfo(block *reaper.PeakTransfer)
	Extended(call int32, parm1, parm2, parm3 unsafe.Pointer) int32
}

// BasePCMSink implements PCMSink as a silent zero-length sink that discards
// writes and declines MIDI. It carries the start time so implementations that
// embed it inherit working GetStartTime/SetStartTime.
type BasePCMSink struct {
	startTime float64
}

func (b *BasePCMSink) GetOutputInfoString() string                        { return "" }
func (b *BasePCMSink) GetStartTime() float64                              { return b.startTime }
func (b *BasePCMSink) SetStartTime(st float64)                            { b.startTime = st }
func (b *BasePCMSink) GetFileName() string                                { return "" }
func (b *BasePCMSink) GetNumChannels() int32                              { return 0 }
func (b *BasePCMSink) GetLength() float64                                 { return 0 }
func (b *BasePCMSink) GetFileSize() int64                                 { return 0 }
func (b *BasePCMSink) WriteMIDI(MIDIListPtr, int32, float64)              {}
func (b *BasePCMSink) WriteDoubles([]*reaper.Sample, int32, int32, int32) {}
func (b *BasePCMSink) WantMIDI() bool                                     { return false }
func (b *BasePCMSink) GetLastSecondPeaks([]reaper.Sample) int32           { return 0 }
func (b *BasePCMSink) GetPeakInfo(*reaper.PeakTransfer)                   {}
func (b *BasePCMSink) Extended(int32, unsafe.Pointer, unsafe.Pointer, unsafe.Pointer) int32 {
	return 0
}

type sinkTarget struct {
	sink    PCMSink
	fileStr cstr
}

func (t *sinkTarget) release() {
	t.fileStr.free()
}

// OwnedSink owns a native recording sink shim created by CreatePCMSink.
type OwnedSink struct {
	owned
	t *sinkTarget
}

// CreatePCMSink registers sink in the dispatch table and builds the native
// shim that forwards to it.
func CreatePCMSink(sink PCMSink) *OwnedSink {
	t := &sinkTarget{sink: sink}
	h := register(t)
	p := C.sink_create(C.uintptr_t(h))
	return &OwnedSink{owned: owned{ptr: unsafe.Pointer(p), h: h}, t: t}
}

// Close destroys the shim and retires its dispatch identifier.
func (o *OwnedSink) Close() error {
	return o.close(func(p unsafe.Pointer) {
		C.sink_delete((*C.PCM_sink)(p))
	}, o.t.release)
}

// Native returns the accessor view of the owned shim.
func (o *OwnedSink) Native() SinkPtr {
	return SinkPtr{p: (*C.PCM_sink)(o.Ptr())}
}

// SinkPtr drives any PCM_sink through its vtable.
type SinkPtr struct {
	p *C.PCM_sink
}

// WrapPCMSink wraps a host-owned sink pointer.
func WrapPCMSink(p unsafe.Pointer) SinkPtr {
	return SinkPtr{p: (*C.PCM_sink)(p)}
}

func (s SinkPtr) GetOutputInfoString() string {
	var buf [512]C.char
	C.sink_GetOutputInfoString(s.p, &buf[0], C.int(len(buf)))
	return goStringN(&buf[0], len(buf))
}

func (s SinkPtr) GetStartTime() float64 {
	return float64(C.sink_GetStartTime(s.p))
}

func (s SinkPtr) SetStartTime(st float64) {
	C.sink_SetStartTime(s.p, C.double(st))
}

func (s SinkPtr) GetFileName() string {
	return C.GoString(C.sink_GetFileName(s.p))
}

func (s SinkPtr) GetNumChannels() int32 {
	return int32(C.sink_GetNumChannels(s.p))
}

func (s SinkPtr) GetLength() float64 {
	return float64(C.sink_GetLength(s.p))
}

func (s SinkPtr) GetFileSize() int64 {
	return int64(C.sink_GetFileSize(s.p))
}

func (s SinkPtr) WriteMIDI(events MIDIListPtr, length int32, samplerate float64) {
	C.sink_WriteMIDI(s.p, events.p, C.int(length), C.double(samplerate))
}

// WriteDoubles hands one pointer per channel to the sink. The pointers must
// reference memory that stays valid for the duration of the call.
func (s SinkPtr) WriteDoubles(channels []*reaper.Sample, length, offset, spacing int32) {
	if len(channels) == 0 {
		return
	}
	C.sink_WriteDoubles(s.p, (**C.ReaSample)(unsafe.Pointer(&channels[0])),
		C.int(length), C.int(len(channels)), C.int(offset), C.int(spacing))
}

func (s SinkPtr) WantMIDI() bool {
	return C.sink_WantMIDI(s.p) != 0
}

func (s SinkPtr) GetLastSecondPeaks(buf []reaper.Sample) int32 {
	if len(buf) == 0 {
		return 0
	}
	return int32(C.sink_GetLastSecondPeaks(s.p, C.int(len(buf)),
		(*C.ReaSample)(unsafe.Pointer(&buf[0]))))
}

func (s SinkPtr) GetPeakInfo(block *reaper.PeakTransfer) {
	C.sink_GetPeakInfo(s.p, (*C.PCM_source_peaktransfer_t)(unsafe.Pointer(block)))
}

func (s SinkPtr) Extended(call int32, parm1, parm2, parm3 unsafe.Pointer) int32 {
	return int32(C.sink_Extended(s.p, C.int(call), parm1, parm2, parm3))
}

func lookupSink(target C.uintptr_t) *sinkTarget {
	return lookup[*sinkTarget](uintptr(target))
}

//export GoSinkGetOutputInfoString
func GoSinkGetOutputInfoString(target C.uintptr_t, buf *C.char, buflen C.int) {
	t := lookupSink(target)
	if t == nil {
		copyToC(buf, buflen, "")
		return
	}
	copyToC(buf, buflen, guard("PCM_sink.GetOutputInfoString", "", t.sink.GetOutputInfoString))
}

//export GoSinkGetStartTime
func GoSinkGetStartTime(target C.uintptr_t) C.double {
	t := lookupSink(target)
	if t == nil {
		return 0
	}
	return C.double(guard("PCM_sink.GetStartTime", float64(0), t.sink.GetStartTime))
}

//export GoSinkSetStartTime
func GoSinkSetStartTime(target C.uintptr_t, st C.double) {
	if t := lookupSink(target); t != nil {
		guard0("PCM_sink.SetStartTime", func() {
			t.sink.SetStartTime(float64(st))
		})
	}
}

//export GoSinkGetFileName
func GoSinkGetFileName(target C.uintptr_t) *C.char {
	t := lookupSink(target)
	if t == nil {
		return nil
	}
	return t.fileStr.set(guard("PCM_sink.GetFileName", "", t.sink.GetFileName))
}

//export GoSinkGetNumChannels
func GoSinkGetNumChannels(target C.uintptr_t) C.int {
	t := lookupSink(target)
	if t == nil {
		return 0
	}
	return C.int(guard("PCM_sink.GetNumChannels", int32(0), t.sink.GetNumChannels))
}

//export GoSinkGetLength
func GoSinkGetLength(target C.uintptr_t) C.double {
	t := lookupSink(target)
	if t == nil {
		return 0
	}
	return C.double(guard("PCM_sink.GetLength", float64(0), t.sink.GetLength))
}

//export GoSinkGetFileSize
func GoSinkGetFileSize(target C.uintptr_t) C.int64_t {
	t := lookupSink(target)
	if t == nil {
		return 0
	}
	return C.int64_t(guard("PCM_sink.GetFileSize", int64(0), t.sink.GetFileSize))
}

//export GoSinkWriteMIDI
func GoSinkWriteMIDI(target C.uintptr_t, events *C.MIDI_eventlist, length C.int, samplerate C.double) {
	if t := lookupSink(target); t != nil {
		guard0("PCM_sink.WriteMIDI", func() {
			t.sink.WriteMIDI(MIDIListPtr{p: events}, int32(length), float64(samplerate))
		})
	}
}

//export GoSinkWriteDoubles
func GoSinkWriteDoubles(target C.uintptr_t, samples **C.ReaSample, length, nch, offset, spacing C.int) {
	if t := lookupSink(target); t != nil {
		channels := reaper.ChannelPointers(unsafe.Pointer(samples), int32(nch))
		guard0("PCM_sink.WriteDoubles", func() {
			t.sink.WriteDoubles(channels, int32(length), int32(offset), int32(spacing))
		})
	}
}

//export GoSinkWantMIDI
func GoSinkWantMIDI(target C.uintptr_t) C.int {
	t := lookupSink(target)
	if t == nil {
		return 0
	}
	return cbool(guard("PCM_sink.WantMIDI", false, t.sink.WantMIDI))
}

//export GoSinkGetLastSecondPeaks
func GoSinkGetLastSecondPeaks(target C.uintptr_t, sz C.int, buf *C.ReaSample) C.int {
	t := lookupSink(target)
	if t == nil {
		return 0
	}
	peaks := reaper.SampleSlice((*reaper.Sample)(unsafe.Pointer(buf)), int32(sz))
	return C.int(guard("PCM_sink.GetLastSecondPeaks", int32(0), func() int32 {
		return t.sink.GetLastSecondPeaks(peaks)
	}))
}

//export GoSinkGetPeakInfo
func GoSinkGetPeakInfo(target C.uintptr_t, block *C.PCM_source_peaktransfer_t) {
	if t := lookupSink(target); t != nil {
		guard0("PCM_sink.GetPeakInfo", func() {
			t.sink.GetPeakInfo((*reaper.PeakTransfer)(unsafe.Pointer(block)))
		})
	}
}

//export GoSinkExtended
func GoSinkExtended(target C.uintptr_t, call C.int, parm1, parm2, parm3 unsafe.Pointer) C.int {
	t := lookupSink(target)
	if t == nil {
		return 0
	}
	return C.int(guard("PCM_sink.Extended", int32(0), func() int32 {
		return t.sink.Extended(int32(call), parm1, parm2, parm3)
	}))
}
