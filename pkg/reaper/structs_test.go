package reaper

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

// The mirror structs must match the C declarations in
// include/reaper/reaper_plugin.h byte for byte. These offsets are fixed by
// the host ABI on 64-bit platforms; a failure here means a mirror field was
// reordered or resized.

func TestMIDIEventLayout(t *testing.T) {
	var e MIDIEvent
	assert.Equal(t, uintptr(12), unsafe.Sizeof(e))
	assert.Equal(t, uintptr(0), unsafe.Offsetof(e.FrameOffset))
	assert.Equal(t, uintptr(4), unsafe.Offsetof(e.Size))
	assert.Equal(t, uintptr(8), unsafe.Offsetof(e.Message))
}

func TestPCMSourceTransferLayout(t *testing.T) {
	var b PCMSourceTransfer
	assert.Equal(t, uintptr(72), unsafe.Sizeof(b))
	assert.Equal(t, uintptr(0), unsafe.Offsetof(b.TimeS))
	assert.Equal(t, uintptr(8), unsafe.Offsetof(b.SampleRate))
	assert.Equal(t, uintptr(16), unsafe.Offsetof(b.NCh))
	assert.Equal(t, uintptr(20), unsafe.Offsetof(b.Length))
	assert.Equal(t, uintptr(24), unsafe.Offsetof(b.Samples))
	assert.Equal(t, uintptr(32), unsafe.Offsetof(b.SamplesOut))
	assert.Equal(t, uintptr(40), unsafe.Offsetof(b.MIDIEvents))
	assert.Equal(t, uintptr(48), unsafe.Offsetof(b.PlaybackLatency))
	assert.Equal(t, uintptr(56), unsafe.Offsetof(b.AbsoluteTimeS))
	assert.Equal(t, uintptr(64), unsafe.Offsetof(b.ForceBPM))
}

func TestPeakTransferLayout(t *testing.T) {
	var b PeakTransfer
	assert.Equal(t, uintptr(72), unsafe.Sizeof(b))
	assert.Equal(t, uintptr(24), unsafe.Offsetof(b.Peaks))
	assert.Equal(t, uintptr(32), unsafe.Offsetof(b.PeaksMinVals))
	assert.Equal(t, uintptr(40), unsafe.Offsetof(b.PeaksMinValsUsed))
	assert.Equal(t, uintptr(48), unsafe.Offsetof(b.ExtType))
	assert.Equal(t, uintptr(56), unsafe.Offsetof(b.ExtData))
}

func TestShortMessage(t *testing.T) {
	e := ShortMessage(0x90, 60, 100, 42)
	assert.Equal(t, int32(42), e.FrameOffset)
	assert.Equal(t, int32(3), e.Size)
	assert.Equal(t, [4]byte{0x90, 60, 100, 0}, e.Message)
}

func TestSampleSlice(t *testing.T) {
	buf := make([]Sample, 8)
	buf[3] = 0.5
	s := SampleSlice(&buf[0], 8)
	assert.Len(t, s, 8)
	assert.Equal(t, 0.5, s[3])

	assert.Nil(t, SampleSlice(nil, 8))
	assert.Nil(t, SampleSlice(&buf[0], 0))
}

func TestInterleaved(t *testing.T) {
	buf := make([]Sample, 6)
	block := &PCMSourceTransfer{NCh: 2, Length: 3, Samples: &buf[0]}
	assert.Len(t, block.Interleaved(), 6)

	var nilBlock *PCMSourceTransfer
	assert.Nil(t, nilBlock.Interleaved())
}
