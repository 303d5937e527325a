package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventQueueBasics(t *testing.T) {
	q := NewEventQueue()
	assert.True(t, q.IsEmpty())
	assert.Equal(t, 0, q.Size())

	q.Add(NoteOn(0, 60, 100, 100))
	q.Add(NoteOff(0, 60, 0, 200))
	q.Add(ControlChange(0, CCSustain, 127, 50))

	assert.False(t, q.IsEmpty())
	assert.Equal(t, 3, q.Size())
}

func TestEventQueueSorting(t *testing.T) {
	q := NewEventQueue()
	q.Add(NoteOn(0, 62, 100, 300))
	q.Add(NoteOn(0, 60, 100, 100))
	q.Add(NoteOn(0, 61, 100, 200))

	events := q.All()
	require.Len(t, events, 3)
	for i, want := range []int32{100, 200, 300} {
		assert.Equal(t, want, events[i].FrameOffset, "event %d", i)
	}

	e, ok := q.At(0)
	require.True(t, ok)
	assert.Equal(t, uint8(60), e.Message[1])

	_, ok = q.At(3)
	assert.False(t, ok)
}

func TestEventQueueInRange(t *testing.T) {
	q := NewEventQueue()
	for _, off := range []int32{0, 64, 128, 192, 256} {
		q.Add(NoteOn(0, 60, 100, off))
	}

	got := q.InRange(64, 192)
	require.Len(t, got, 2)
	assert.Equal(t, int32(64), got[0].FrameOffset)
	assert.Equal(t, int32(128), got[1].FrameOffset)

	assert.Nil(t, q.InRange(300, 400))
}

func TestEventQueueRemoveAndClear(t *testing.T) {
	q := NewEventQueue()
	q.Add(NoteOn(0, 60, 100, 100))
	q.Add(NoteOn(0, 61, 100, 200))

	assert.True(t, q.Remove(0))
	assert.Equal(t, 1, q.Size())
	e, ok := q.At(0)
	require.True(t, ok)
	assert.Equal(t, uint8(61), e.Message[1])

	assert.False(t, q.Remove(5))

	q.Clear()
	assert.True(t, q.IsEmpty())
}

func TestEventQueueShift(t *testing.T) {
	q := NewEventQueue()
	q.Add(NoteOn(0, 60, 100, 10))
	q.Add(NoteOn(0, 61, 100, 20))
	q.Shift(-10)

	events := q.All()
	assert.Equal(t, int32(0), events[0].FrameOffset)
	assert.Equal(t, int32(10), events[1].FrameOffset)
}
