package midi

import (
	"sort"
	"sync"

	"github.com/reapergo/reapergo/pkg/reaper"
)

// EventQueue collects short messages ordered by frame offset. It backs
// Go-side MIDI event list behaviors, where the host adds events in arbitrary
// order and enumerates them sorted.
type EventQueue struct {
	mu     sync.RWMutex
	events []reaper.MIDIEvent
	sorted bool
}

func NewEventQueue() *EventQueue {
	return &EventQueue{
		events: make([]reaper.MIDIEvent, 0, 128),
		sorted: true,
	}
}

func (q *EventQueue) Add(e reaper.MIDIEvent) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, e)
	q.sorted = len(q.events) == 1 ||
		(q.sorted && q.events[len(q.events)-2].FrameOffset <= e.FrameOffset)
}

// At returns the event at position i in offset order.
func (q *EventQueue) At(i int) (reaper.MIDIEvent, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.ensureSorted()
	if i < 0 || i >= len(q.events) {
		return reaper.MIDIEvent{}, false
	}
	return q.events[i], true
}

// Remove deletes the event at position i in offset order.
func (q *EventQueue) Remove(i int) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.ensureSorted()
	if i < 0 || i >= len(q.events) {
		return false
	}
	q.events = append(q.events[:i], q.events[i+1:]...)
	return true
}

// All returns a sorted copy of the queued events.
func (q *EventQueue) All() []reaper.MIDIEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.ensureSorted()
	out := make([]reaper.MIDIEvent, len(q.events))
	copy(out, q.events)
	return out
}

// InRange returns a sorted copy of the events with startSample <= offset <
// endSample.
func (q *EventQueue) InRange(startSample, endSample int32) []reaper.MIDIEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.ensureSorted()

	lo := sort.Search(len(q.events), func(i int) bool {
		return q.events[i].FrameOffset >= startSample
	})
	hi := lo
	for hi < len(q.events) && q.events[hi].FrameOffset < endSample {
		hi++
	}
	if lo == hi {
		return nil
	}
	out := make([]reaper.MIDIEvent, hi-lo)
	copy(out, q.events[lo:hi])
	return out
}

func (q *EventQueue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = q.events[:0]
	q.sorted = true
}

func (q *EventQueue) Size() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.events)
}

func (q *EventQueue) IsEmpty() bool {
	return q.Size() == 0
}

// Shift adds offset to every queued event's frame offset, for carrying
// leftover events into the next processing block.
func (q *EventQueue) Shift(offset int32) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i := range q.events {
		q.events[i].FrameOffset += offset
	}
}

func (q *EventQueue) ensureSorted() {
	if q.sorted {
		return
	}
	sort.SliceStable(q.events, func(i, j int) bool {
		return q.events[i].FrameOffset < q.events[j].FrameOffset
	})
	q.sorted = true
}
