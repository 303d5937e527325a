package bridge

import (
	"fmt"
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reapergo/reapergo/pkg/reaper"
)

// sineSource renders a fixed-frequency sine and serializes its settings as a
// small chunk, exercising the data-plane and state-plane paths together.
type sineSource struct {
	BasePCMSource

	freq      float64
	srate     float64
	nch       int32
	length    float64
	available bool
}

func newSineSource() *sineSource {
	return &sineSource{freq: 440, srate: 48000, nch: 2, length: 4, available: true}
}

func (s *sineSource) IsAvailable() bool        { return s.available }
func (s *sineSource) SetAvailable(avail bool)  { s.available = avail }
func (s *sineSource) GetType() string          { return "SINE" }
func (s *sineSource) GetNumChannels() int32    { return s.nch }
func (s *sineSource) GetSampleRate() float64   { return s.srate }
func (s *sineSource) GetLength() float64       { return s.length }
func (s *sineSource) GetBitsPerSample() int32  { return 64 }

func (s *sineSource) GetSamples(block *reaper.PCMSourceTransfer) {
	out := block.Interleaved()
	frames := int(block.Length)
	nch := int(block.NCh)
	for i := 0; i < frames; i++ {
		tm := block.TimeS + float64(i)/block.SampleRate
		v := math.Sin(2 * math.Pi * s.freq * tm)
		for ch := 0; ch < nch; ch++ {
			out[i*nch+ch] = v
		}
	}
	block.SamplesOut = block.Length
}

func (s *sineSource) SaveState(ctx StateCtxPtr) {
	ctx.AddLine(fmt.Sprintf("FREQ %g", s.freq))
	ctx.AddLine(fmt.Sprintf("SRATE %g", s.srate))
}

func (s *sineSource) LoadState(firstline string, ctx StateCtxPtr) int32 {
	var freq float64
	if _, err := fmt.Sscanf(firstline, "FREQ %g", &freq); err != nil {
		return -1
	}
	s.freq = freq
	for {
		line, ok := ctx.GetLine()
		if !ok {
			break
		}
		var srate float64
		if _, err := fmt.Sscanf(line, "SRATE %g", &srate); err == nil {
			s.srate = srate
		}
	}
	return 0
}

func TestPCMSourceMetadata(t *testing.T) {
	src := newSineSource()
	owned := CreatePCMSource(src)
	defer owned.Close()
	native := owned.Native()

	assert.Equal(t, "SINE", native.GetType())
	assert.Equal(t, "", native.GetFileName())
	assert.True(t, native.IsAvailable())
	assert.Equal(t, int32(2), native.GetNumChannels())
	assert.Equal(t, 48000.0, native.GetSampleRate())
	assert.Equal(t, 4.0, native.GetLength())
	assert.Equal(t, int32(64), native.GetBitsPerSample())
	assert.Equal(t, -1.0, native.GetLengthBeats())
	assert.Equal(t, -1.0, native.GetPreferredPosition())

	native.SetAvailable(false)
	assert.False(t, native.IsAvailable())
}

func TestPCMSourceGetSamples(t *testing.T) {
	src := newSineSource()
	owned := CreatePCMSource(src)
	defer owned.Close()

	const frames = 64
	buf := AllocSampleBuffer(frames * 2)
	defer FreeSampleBuffer(buf)

	block := &reaper.PCMSourceTransfer{
		TimeS:      0,
		SampleRate: 48000,
		NCh:        2,
		Length:     frames,
		Samples:    &buf[0],
	}
	owned.Native().GetSamples(block)

	assert.Equal(t, int32(frames), block.SamplesOut)
	assert.Equal(t, 0.0, buf[0])
	for i := 0; i < frames; i++ {
		want := math.Sin(2 * math.Pi * 440 * float64(i) / 48000)
		assert.InDelta(t, want, buf[i*2], 1e-12, "frame %d", i)
		assert.Equal(t, buf[i*2], buf[i*2+1], "channels differ at frame %d", i)
	}
}

func TestPCMSourceStateRoundTrip(t *testing.T) {
	src := newSineSource()
	src.freq = 880
	src.srate = 44100
	owned := CreatePCMSource(src)
	defer owned.Close()

	chunk := &chunkBuffer{}
	ctx := CreateStateContext(chunk)
	defer ctx.Close()

	owned.Native().SaveState(ctx.Native())
	require.Equal(t, []string{"FREQ 880", "SRATE 44100"}, chunk.lines)

	restored := newSineSource()
	owned2 := CreatePCMSource(restored)
	defer owned2.Close()

	first, ok := ctx.Native().GetLine()
	require.True(t, ok)
	require.Equal(t, int32(0), owned2.Native().LoadState(first, ctx.Native()))
	assert.Equal(t, 880.0, restored.freq)
	assert.Equal(t, 44100.0, restored.srate)
}

// duplicatingSource hands out the shim pointer of a second Go source, the
// way cloning composes across the boundary.
type duplicatingSource struct {
	BasePCMSource
	clone *OwnedSource
}

func (d *duplicatingSource) GetType() string { return "OUTER" }

func (d *duplicatingSource) Duplicate() unsafe.Pointer { return d.clone.Ptr() }

func TestPCMSourceDuplicate(t *testing.T) {
	inner := CreatePCMSource(newSineSource())
	defer inner.Close()

	outer := CreatePCMSource(&duplicatingSource{clone: inner})
	defer outer.Close()

	dup := outer.Native().Duplicate()
	require.NotNil(t, dup)
	assert.Equal(t, "SINE", WrapPCMSource(dup).GetType())
}

func TestPCMSourceStaleIdentifier(t *testing.T) {
	owned := CreatePCMSource(newSineSource())
	defer owned.Close()
	native := owned.Native()

	require.True(t, owned.h.Delete())

	assert.Nil(t, native.Duplicate())
	assert.False(t, native.IsAvailable())
	assert.Equal(t, "", native.GetType())
	assert.Equal(t, int32(0), native.GetNumChannels())
	assert.Equal(t, -1.0, native.GetLengthBeats())
	assert.Equal(t, int32(-1), native.LoadState("FREQ 1", StateCtxPtr{}))
}

type panicSource struct {
	BasePCMSource
}

func (panicSource) GetSamples(*reaper.PCMSourceTransfer) { panic("source fault") }
func (panicSource) GetNumChannels() int32                { panic("source fault") }

func TestPCMSourcePanicFirewall(t *testing.T) {
	owned := CreatePCMSource(panicSource{})
	defer owned.Close()
	native := owned.Native()

	buf := AllocSampleBuffer(8)
	defer FreeSampleBuffer(buf)
	block := &reaper.PCMSourceTransfer{NCh: 1, Length: 8, SampleRate: 48000, Samples: &buf[0]}

	assert.NotPanics(t, func() {
		native.GetSamples(block)
		assert.Equal(t, int32(0), native.GetNumChannels())
	})
	assert.Equal(t, int32(0), block.SamplesOut)
}
