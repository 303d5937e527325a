package reaper

import "unsafe"

// SampleSlice views n samples starting at p as a Go slice without copying.
// The backing memory stays owned by whoever produced p; the slice must not
// outlive the call that handed the pointer over.
func SampleSlice(p *Sample, n int32) []Sample {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice(p, int(n))
}

// ChannelPointers views a ReaSample** channel-pointer array (as passed to
// PCM_sink.WriteDoubles) as a slice of per-channel base pointers.
func ChannelPointers(pp unsafe.Pointer, nch int32) []*Sample {
	if pp == nil || nch <= 0 {
		return nil
	}
	return unsafe.Slice((**Sample)(pp), int(nch))
}

// Interleaved views the transfer block's sample buffer as one interleaved
// slice of Length*NCh samples.
func (t *PCMSourceTransfer) Interleaved() []Sample {
	if t == nil {
		return nil
	}
	return SampleSlice(t.Samples, t.Length*t.NCh)
}
