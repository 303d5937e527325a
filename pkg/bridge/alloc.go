package bridge

/*
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"github.com/reapergo/reapergo/pkg/reaper"
)

// AllocSampleBuffer allocates a zeroed native sample buffer of n samples.
// Behaviors that hand a buffer to the host and keep it across calls, such as
// Resampler.ResamplePrepare and PitchShifter.GetBuffer, must use native
// memory: the host retains the pointer, so Go-managed memory is off limits.
// Free with FreeSampleBuffer when the owning object is torn down.
func AllocSampleBuffer(n int) []reaper.Sample {
	if n <= 0 {
		return nil
	}
	p := C.calloc(C.size_t(n), C.size_t(unsafe.Sizeof(reaper.Sample(0))))
	return unsafe.Slice((*reaper.Sample)(p), n)
}

// FreeSampleBuffer releases a buffer obtained from AllocSampleBuffer.
// Freeing nil or an already-released buffer slice of length zero is a no-op.
func FreeSampleBuffer(buf []reaper.Sample) {
	if len(buf) == 0 {
		return
	}
	C.free(unsafe.Pointer(&buf[0]))
}
