package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reapergo/reapergo/pkg/midi"
	"github.com/reapergo/reapergo/pkg/reaper"
)

// captureSink accumulates written audio per channel and received MIDI.
type captureSink struct {
	BasePCMSink

	name     string
	channels [][]reaper.Sample
	events   []reaper.MIDIEvent
}

func (s *captureSink) GetOutputInfoString() string { return "capture: 2ch 48kHz" }
func (s *captureSink) GetFileName() string         { return s.name }
func (s *captureSink) GetNumChannels() int32       { return 2 }
func (s *captureSink) WantMIDI() bool              { return true }

func (s *captureSink) GetFileSize() int64 {
	var frames int64
	if len(s.channels) > 0 {
		frames = int64(len(s.channels[0]))
	}
	return frames * int64(len(s.channels)) * 8
}

func (s *captureSink) WriteDoubles(channels []*reaper.Sample, length, offset, spacing int32) {
	for len(s.channels) < len(channels) {
		s.channels = append(s.channels, nil)
	}
	for ch, base := range channels {
		view := reaper.SampleSlice(base, offset+length*spacing)
		for i := int32(0); i < length; i++ {
			s.channels[ch] = append(s.channels[ch], view[offset+i*spacing])
		}
	}
}

func (s *captureSink) WriteMIDI(events MIDIListPtr, length int32, samplerate float64) {
	var bpos int32
	for {
		evt := events.EnumItems(&bpos)
		if evt == nil {
			break
		}
		s.events = append(s.events, *evt)
	}
}

func TestPCMSinkMetadata(t *testing.T) {
	sink := &captureSink{name: "out.wav"}
	owned := CreatePCMSink(sink)
	defer owned.Close()
	native := owned.Native()

	assert.Equal(t, "capture: 2ch 48kHz", native.GetOutputInfoString())
	assert.Equal(t, "out.wav", native.GetFileName())
	assert.Equal(t, int32(2), native.GetNumChannels())
	assert.True(t, native.WantMIDI())

	native.SetStartTime(1.5)
	assert.Equal(t, 1.5, native.GetStartTime())
}

func TestPCMSinkWriteDoubles(t *testing.T) {
	sink := &captureSink{}
	owned := CreatePCMSink(sink)
	defer owned.Close()

	const frames = 16
	left := AllocSampleBuffer(frames)
	right := AllocSampleBuffer(frames)
	defer FreeSampleBuffer(left)
	defer FreeSampleBuffer(right)
	for i := 0; i < frames; i++ {
		left[i] = float64(i)
		right[i] = -float64(i)
	}

	owned.Native().WriteDoubles([]*reaper.Sample{&left[0], &right[0]}, frames, 0, 1)

	require.Len(t, sink.channels, 2)
	assert.Equal(t, left, sink.channels[0])
	assert.Equal(t, right, sink.channels[1])
	assert.Equal(t, int64(frames*2*8), owned.Native().GetFileSize())
}

func TestPCMSinkWriteDoublesSpacing(t *testing.T) {
	sink := &captureSink{}
	owned := CreatePCMSink(sink)
	defer owned.Close()

	// Interleaved stereo presented as two strided channel views.
	const frames = 8
	inter := AllocSampleBuffer(frames * 2)
	defer FreeSampleBuffer(inter)
	for i := 0; i < frames; i++ {
		inter[i*2] = float64(i)
		inter[i*2+1] = 100 + float64(i)
	}

	owned.Native().WriteDoubles([]*reaper.Sample{&inter[0], &inter[1]}, frames, 0, 2)

	require.Len(t, sink.channels, 2)
	for i := 0; i < frames; i++ {
		assert.Equal(t, float64(i), sink.channels[0][i])
		assert.Equal(t, 100+float64(i), sink.channels[1][i])
	}
}

func TestPCMSinkWriteMIDI(t *testing.T) {
	sink := &captureSink{}
	owned := CreatePCMSink(sink)
	defer owned.Close()

	queue := &queueEventList{}
	list := CreateMIDIEventList(queue)
	defer list.Close()

	on := midi.NoteOn(0, 60, 100, 0)
	off := midi.NoteOff(0, 60, 0, 32)
	list.Native().AddItem(&on)
	list.Native().AddItem(&off)

	owned.Native().WriteMIDI(list.Native(), 64, 48000)

	require.Len(t, sink.events, 2)
	assert.Equal(t, on, sink.events[0])
	assert.Equal(t, off, sink.events[1])
}

func TestPCMSinkStaleIdentifier(t *testing.T) {
	sink := &captureSink{name: "out.wav"}
	owned := CreatePCMSink(sink)
	defer owned.Close()
	native := owned.Native()

	require.True(t, owned.h.Delete())

	assert.Equal(t, "", native.GetOutputInfoString())
	assert.Equal(t, "", native.GetFileName())
	assert.False(t, native.WantMIDI())
	assert.Equal(t, int64(0), native.GetFileSize())

	buf := AllocSampleBuffer(4)
	defer FreeSampleBuffer(buf)
	native.WriteDoubles([]*reaper.Sample{&buf[0]}, 4, 0, 1)
	assert.Empty(t, sink.channels)
}
