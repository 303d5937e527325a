package bridge

/*
#include <stdlib.h>

#include "midi.h"
*/
import "C"

import (
	"unsafe"

	"github.com/reapergo/reapergo/pkg/reaper"
)

// MIDIEventList is the behavior contract for a Go-implemented MIDI event
// list. pkg/midi.EventQueue is the usual backing store.
type MIDIEventList interface {
	// AddItem consumes one event. The pointer views caller-owned memory
	// and must not be retained; copy the value.
	AddItem(evt *reaper.MIDIEvent)
	// EnumItems returns the event at byte position *bpos and advances
	// *bpos, or ok=false past the end. The returned value is copied into
	// per-instance native storage that stays valid until the next
	// EnumItems call on the same instance.
	EnumItems(bpos *int32) (evt reaper.MIDIEvent, ok bool)
	DeleteItem(bpos int32)
	GetSize() int32
	Empty()
}

// BaseMIDIEventList is an always-empty MIDIEventList.
type BaseMIDIEventList struct{}

func (BaseMIDIEventList) AddItem(*reaper.MIDIEvent)               {}
func (BaseMIDIEventList) EnumItems(*int32) (reaper.MIDIEvent, bool) { return reaper.MIDIEvent{}, false }
func (BaseMIDIEventList) DeleteItem(int32)                        {}
func (BaseMIDIEventList) GetSize() int32                          { return 0 }
func (BaseMIDIEventList) Empty()                                  {}

// MIDIInput is the behavior contract for a Go-implemented MIDI input device.
type MIDIInput interface {
	// GetReadBuf returns the native MIDI_eventlist holding the pending
	// input events, typically the Ptr of an OwnedMIDIList, or nil.
	GetReadBuf() unsafe.Pointer
}

// BaseMIDIInput is a MIDIInput with no event buffer.
type BaseMIDIInput struct{}

func (BaseMIDIInput) GetReadBuf() unsafe.Pointer { return nil }

// MIDIOutput is the behavior contract for a Go-implemented MIDI output
// device.
type MIDIOutput interface {
	BeginBlock()
	EndBlock(length int32, srate, curtempo float64)
	// SendMsg consumes one event; the pointer must not be retained.
	SendMsg(msg *reaper.MIDIEvent, frameOffset int32)
	Send(status, d1, d2 byte, frameOffset int32)
}

// BaseMIDIOutput is a MIDIOutput that discards everything.
type BaseMIDIOutput struct{}

func (BaseMIDIOutput) BeginBlock()                            {}
func (BaseMIDIOutput) EndBlock(int32, float64, float64)       {}
func (BaseMIDIOutput) SendMsg(*reaper.MIDIEvent, int32)       {}
func (BaseMIDIOutput) Send(byte, byte, byte, int32)           {}

// midiListTarget carries one native MIDI_event_t slot backing EnumItems
// results.
type midiListTarget struct {
	list MIDIEventList
	slot unsafe.Pointer
}

func (t *midiListTarget) release() {
	if t.slot != nil {
		C.free(t.slot)
		t.slot = nil
	}
}

// OwnedMIDIList owns a native event list shim created by
// CreateMIDIEventList.
type OwnedMIDIList struct {
	owned
	t *midiListTarget
}

// CreateMIDIEventList registers list in the dispatch table and builds the
// native shim that forwards to it.
func CreateMIDIEventList(list MIDIEventList) *OwnedMIDIList {
	t := &midiListTarget{
		list: list,
		slot: C.malloc(C.size_t(unsafe.Sizeof(reaper.MIDIEvent{}))),
	}
	h := register(t)
	p := C.midilist_create(C.uintptr_t(h))
	return &OwnedMIDIList{owned: owned{ptr: unsafe.Pointer(p), h: h}, t: t}
}

// Close destroys the shim and retires its dispatch identifier.
func (o *OwnedMIDIList) Close() error {
	return o.close(func(p unsafe.Pointer) {
		C.midilist_delete((*C.MIDI_eventlist)(p))
	}, o.t.release)
}

// Native returns the accessor view of the owned shim.
func (o *OwnedMIDIList) Native() MIDIListPtr {
	return MIDIListPtr{p: (*C.MIDI_eventlist)(o.Ptr())}
}

// MIDIListPtr drives any MIDI_eventlist through its vtable.
type MIDIListPtr struct {
	p *C.MIDI_eventlist
}

// WrapMIDIEventList wraps a host-owned event list pointer.
func WrapMIDIEventList(p unsafe.Pointer) MIDIListPtr {
	return MIDIListPtr{p: (*C.MIDI_eventlist)(p)}
}

// Ptr returns the wrapped native pointer, for handing the list onward.
func (l MIDIListPtr) Ptr() unsafe.Pointer { return unsafe.Pointer(l.p) }

func (l MIDIListPtr) AddItem(evt *reaper.MIDIEvent) {
	C.midilist_AddItem(l.p, (*C.MIDI_event_t)(unsafe.Pointer(evt)))
}

// EnumItems returns a view of the event at *bpos and advances *bpos, or nil
// past the end. The view belongs to the list and is valid until the next
// EnumItems call.
func (l MIDIListPtr) EnumItems(bpos *int32) *reaper.MIDIEvent {
	p := C.midilist_EnumItems(l.p, (*C.int)(unsafe.Pointer(bpos)))
	return (*reaper.MIDIEvent)(unsafe.Pointer(p))
}

func (l MIDIListPtr) DeleteItem(bpos int32) {
	C.midilist_DeleteItem(l.p, C.int(bpos))
}

func (l MIDIListPtr) GetSize() int32 {
	return int32(C.midilist_GetSize(l.p))
}

func (l MIDIListPtr) Empty() {
	C.midilist_Empty(l.p)
}

type midiInTarget struct {
	in MIDIInput
}

// OwnedMIDIInput owns a native MIDI input shim created by CreateMIDIInput.
type OwnedMIDIInput struct {
	owned
	t *midiInTarget
}

// CreateMIDIInput registers in in the dispatch table and builds the native
// shim that forwards to it.
func CreateMIDIInput(in MIDIInput) *OwnedMIDIInput {
	t := &midiInTarget{in: in}
	h := register(t)
	p := C.midiin_create(C.uintptr_t(h))
	return &OwnedMIDIInput{owned: owned{ptr: unsafe.Pointer(p), h: h}, t: t}
}

// Close destroys the shim and retires its dispatch identifier.
func (o *OwnedMIDIInput) Close() error {
	return o.close(func(p unsafe.Pointer) {
		C.midiin_delete((*C.midi_Input)(p))
	}, nil)
}

// Native returns the accessor view of the owned shim.
func (o *OwnedMIDIInput) Native() MIDIInPtr {
	return MIDIInPtr{p: (*C.midi_Input)(o.Ptr())}
}

// MIDIInPtr drives any midi_Input through its vtable.
type MIDIInPtr struct {
	p *C.midi_Input
}

// WrapMIDIInput wraps a host-owned MIDI input pointer.
func WrapMIDIInput(p unsafe.Pointer) MIDIInPtr {
	return MIDIInPtr{p: (*C.midi_Input)(p)}
}

// GetReadBuf returns the device's pending event list. The zero MIDIListPtr
// means the device has none.
func (i MIDIInPtr) GetReadBuf() MIDIListPtr {
	return MIDIListPtr{p: C.midiin_GetReadBuf(i.p)}
}

type midiOutTarget struct {
	out MIDIOutput
}

// OwnedMIDIOutput owns a native MIDI output shim created by
// CreateMIDIOutput.
type OwnedMIDIOutput struct {
	owned
	t *midiOutTarget
}

// CreateMIDIOutput registers out in the dispatch table and builds the native
// shim that forwards to it.
func CreateMIDIOutput(out MIDIOutput) *OwnedMIDIOutput {
	t := &midiOutTarget{out: out}
	h := register(t)
	p := C.midiout_create(C.uintptr_t(h))
	return &OwnedMIDIOutput{owned: owned{ptr: unsafe.Pointer(p), h: h}, t: t}
}

// Close destroys the shim and retires its dispatch identifier.
func (o *OwnedMIDIOutput) Close() error {
	return o.close(func(p unsafe.Pointer) {
		C.midiout_delete((*C.midi_Output)(p))
	}, nil)
}

// Native returns the accessor view of the owned shim.
func (o *OwnedMIDIOutput) Native() MIDIOutPtr {
	return MIDIOutPtr{p: (*C.midi_Output)(o.Ptr())}
}

// MIDIOutPtr drives any midi_Output through its vtable.
type MIDIOutPtr struct {
	p *C.midi_Output
}

// WrapMIDIOutput wraps a host-owned MIDI output pointer.
func WrapMIDIOutput(p unsafe.Pointer) MIDIOutPtr {
	return MIDIOutPtr{p: (*C.midi_Output)(p)}
}

func (o MIDIOutPtr) BeginBlock() { C.midiout_BeginBlock(o.p) }

func (o MIDIOutPtr) EndBlock(length int32, srate, curtempo float64) {
	C.midiout_EndBlock(o.p, C.int(length), C.double(srate), C.double(curtempo))
}

func (o MIDIOutPtr) SendMsg(msg *reaper.MIDIEvent, frameOffset int32) {
	C.midiout_SendMsg(o.p, (*C.MIDI_event_t)(unsafe.Pointer(msg)), C.int(frameOffset))
}

func (o MIDIOutPtr) Send(status, d1, d2 byte, frameOffset int32) {
	C.midiout_Send(o.p, C.uchar(status), C.uchar(d1), C.uchar(d2), C.int(frameOffset))
}

func lookupMIDIList(target C.uintptr_t) *midiListTarget {
	return lookup[*midiListTarget](uintptr(target))
}

//export GoMIDIListAddItem
func GoMIDIListAddItem(target C.uintptr_t, evt *C.MIDI_event_t) {
	if t := lookupMIDIList(target); t != nil {
		guard0("MIDI_eventlist.AddItem", func() {
			t.list.AddItem((*reaper.MIDIEvent)(unsafe.Pointer(evt)))
		})
	}
}

//export GoMIDIListEnumItems
func GoMIDIListEnumItems(target C.uintptr_t, bpos *C.int) unsafe.Pointer {
	t := lookupMIDIList(target)
	if t == nil || t.slot == nil {
		return nil
	}
	type enumResult struct {
		evt reaper.MIDIEvent
		ok  bool
	}
	res := guard("MIDI_eventlist.EnumItems", enumResult{}, func() enumResult {
		evt, ok := t.list.EnumItems((*int32)(unsafe.Pointer(bpos)))
		return enumResult{evt: evt, ok: ok}
	})
	if !res.ok {
		return nil
	}
	*(*reaper.MIDIEvent)(t.slot) = res.evt
	return t.slot
}

//export GoMIDIListDeleteItem
func GoMIDIListDeleteItem(target C.uintptr_t, bpos C.int) {
	if t := lookupMIDIList(target); t != nil {
		guard0("MIDI_eventlist.DeleteItem", func() {
			t.list.DeleteItem(int32(bpos))
		})
	}
}

//export GoMIDIListGetSize
func GoMIDIListGetSize(target C.uintptr_t) C.int {
	t := lookupMIDIList(target)
	if t == nil {
		return 0
	}
	return C.int(guard("MIDI_eventlist.GetSize", int32(0), t.list.GetSize))
}

//export GoMIDIListEmpty
func GoMIDIListEmpty(target C.uintptr_t) {
	if t := lookupMIDIList(target); t != nil {
		guard0("MIDI_eventlist.Empty", t.list.Empty)
	}
}

func lookupMIDIIn(target C.uintptr_t) *midiInTarget {
	return lookup[*midiInTarget](uintptr(target))
}

//export GoMIDIInGetReadBuf
func GoMIDIInGetReadBuf(target C.uintptr_t) unsafe.Pointer {
	t := lookupMIDIIn(target)
	if t == nil {
		return nil
	}
	return guard("midi_Input.GetReadBuf", nil, t.in.GetReadBuf)
}

func lookupMIDIOut(target C.uintptr_t) *midiOutTarget {
	return lookup[*midiOutTarget](uintptr(target))
}

//export GoMIDIOutBeginBlock
func GoMIDIOutBeginBlock(target C.uintptr_t) {
	if t := lookupMIDIOut(target); t != nil {
		guard0("midi_Output.BeginBlock", t.out.BeginBlock)
	}
}

//export GoMIDIOutEndBlock
func GoMIDIOutEndBlock(target C.uintptr_t, length C.int, srate, curtempo C.double) {
	if t := lookupMIDIOut(target); t != nil {
		guard0("midi_Output.EndBlock", func() {
			t.out.EndBlock(int32(length), float64(srate), float64(curtempo))
		})
	}
}

//export GoMIDIOutSendMsg
func GoMIDIOutSendMsg(target C.uintptr_t, msg *C.MIDI_event_t, frameOffset C.int) {
	if t := lookupMIDIOut(target); t != nil {
		guard0("midi_Output.SendMsg", func() {
			t.out.SendMsg((*reaper.MIDIEvent)(unsafe.Pointer(msg)), int32(frameOffset))
		})
	}
}

//export GoMIDIOutSend
func GoMIDIOutSend(target C.uintptr_t, status, d1, d2 C.uchar, frameOffset C.int) {
	if t := lookupMIDIOut(target); t != nil {
		guard0("midi_Output.Send", func() {
			t.out.Send(byte(status), byte(d1), byte(d2), int32(frameOffset))
		})
	}
}
