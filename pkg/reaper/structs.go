package reaper

import "unsafe"

// MIDIEvent mirrors MIDI_event_t. The host convention is that Size counts the
// valid bytes of Message (3 for a short message); longer sysex payloads extend
// past the struct and are not representable through this mirror.
type MIDIEvent struct {
	FrameOffset int32
	Size        int32
	Message     [4]byte
}

// PCMSourceTransfer mirrors PCM_source_transfer_t, the sample-transfer block
// a host passes to PCM_source.GetSamples. Samples points to a host-owned
// interleaved buffer of Length*NCh samples the callee fills in place;
// SamplesOut reports how many sample frames were actually produced.
type PCMSourceTransfer struct {
	TimeS           float64
	SampleRate      float64
	NCh             int32
	Length          int32
	Samples         *Sample
	SamplesOut      int32
	MIDIEvents      unsafe.Pointer // *MIDI_eventlist, host-owned
	PlaybackLatency float64
	AbsoluteTimeS   float64
	ForceBPM        float64
}

// PeakTransfer mirrors PCM_source_peaktransfer_t. All buffers are host-owned.
type PeakTransfer struct {
	StartTime        float64
	PeakRate         float64
	NumPeakPoints    int32
	NChPeaks         int32
	Peaks            *Sample
	PeaksMinVals     *Sample
	PeaksMinValsUsed int32
	PeaksOut         int32
	ExtType          int32
	ExtData          unsafe.Pointer
	expInternal      uint32 //nolint:unused
}

// ShortMessage builds a 3-byte MIDI event.
func ShortMessage(status, d1, d2 byte, frameOffset int32) MIDIEvent {
	return MIDIEvent{
		FrameOffset: frameOffset,
		Size:        3,
		Message:     [4]byte{status, d1, d2, 0},
	}
}
