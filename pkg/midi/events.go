// Package midi builds and inspects the 3-byte short messages carried by the
// host's MIDI_event_t. REAPER hands MIDI around as raw status/data bytes;
// this package is the typed layer behavior implementations use on top of the
// bridge's MIDI event list, input and output interfaces.
package midi

import (
	"fmt"

	"github.com/reapergo/reapergo/pkg/reaper"
)

type EventType uint8

const (
	EventTypeNoteOff EventType = iota
	EventTypeNoteOn
	EventTypePolyPressure
	EventTypeControlChange
	EventTypeProgramChange
	EventTypeChannelPressure
	EventTypePitchBend
	EventTypeSystem
	EventTypeUnknown
)

// TypeOf classifies a short message by its status byte. A note-on with
// velocity zero is reported as a note-off, matching how hosts treat it.
func TypeOf(e reaper.MIDIEvent) EventType {
	status := e.Message[0] & 0xF0
	switch status {
	case 0x80:
		return EventTypeNoteOff
	case 0x90:
		if e.Message[2] == 0 {
			return EventTypeNoteOff
		}
		return EventTypeNoteOn
	case 0xA0:
		return EventTypePolyPressure
	case 0xB0:
		return EventTypeControlChange
	case 0xC0:
		return EventTypeProgramChange
	case 0xD0:
		return EventTypeChannelPressure
	case 0xE0:
		return EventTypePitchBend
	case 0xF0:
		return EventTypeSystem
	default:
		return EventTypeUnknown
	}
}

// Channel returns the 0-based channel of a channel-voice message.
func Channel(e reaper.MIDIEvent) uint8 {
	return e.Message[0] & 0x0F
}

func String(e reaper.MIDIEvent) string {
	return fmt.Sprintf("MIDI{status:%02X, d1:%d, d2:%d, offset:%d}",
		e.Message[0], e.Message[1], e.Message[2], e.FrameOffset)
}

// NoteOn builds a note-on message.
func NoteOn(channel, note, velocity uint8, offset int32) reaper.MIDIEvent {
	return reaper.ShortMessage(0x90|channel&0x0F, note&0x7F, velocity&0x7F, offset)
}

// NoteOff builds a note-off message.
func NoteOff(channel, note, velocity uint8, offset int32) reaper.MIDIEvent {
	return reaper.ShortMessage(0x80|channel&0x0F, note&0x7F, velocity&0x7F, offset)
}

// ControlChange builds a CC message.
func ControlChange(channel, controller, value uint8, offset int32) reaper.MIDIEvent {
	return reaper.ShortMessage(0xB0|channel&0x0F, controller&0x7F, value&0x7F, offset)
}

// ProgramChange builds a program change message.
func ProgramChange(channel, program uint8, offset int32) reaper.MIDIEvent {
	return reaper.ShortMessage(0xC0|channel&0x0F, program&0x7F, 0, offset)
}

// ChannelPressure builds a channel aftertouch message.
func ChannelPressure(channel, pressure uint8, offset int32) reaper.MIDIEvent {
	return reaper.ShortMessage(0xD0|channel&0x0F, pressure&0x7F, 0, offset)
}

// PolyPressure builds a polyphonic aftertouch message.
func PolyPressure(channel, note, pressure uint8, offset int32) reaper.MIDIEvent {
	return reaper.ShortMessage(0xA0|channel&0x0F, note&0x7F, pressure&0x7F, offset)
}

// PitchBend builds a pitch bend message. value ranges -8192..8191, 0 center.
func PitchBend(channel uint8, value int16, offset int32) reaper.MIDIEvent {
	raw := uint16(value + 8192)
	return reaper.ShortMessage(0xE0|channel&0x0F, uint8(raw&0x7F), uint8(raw>>7)&0x7F, offset)
}

// PitchBendValue decodes the bend amount of a pitch bend message.
func PitchBendValue(e reaper.MIDIEvent) int16 {
	raw := uint16(e.Message[1]&0x7F) | uint16(e.Message[2]&0x7F)<<7
	return int16(raw) - 8192
}

// Common controller numbers.
const (
	CCModWheel    uint8 = 1
	CCVolume      uint8 = 7
	CCPan         uint8 = 10
	CCExpression  uint8 = 11
	CCSustain     uint8 = 64
	CCAllSoundOff uint8 = 120
	CCAllNotesOff uint8 = 123
)
