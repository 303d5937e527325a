// Package reaper defines Go mirrors of the REAPER SDK data types that cross
// the bridge boundary. The package is cgo-free so that behavior
// implementations and tests can use these types without a C toolchain; the
// struct layouts are byte-identical to the declarations in
// include/reaper/reaper_plugin.h and are verified by tests.
package reaper

import "unsafe"

// Sample is the host's audio sample type (ReaSample).
type Sample = float64

// MediaTrack is an opaque host object. Only pointers to it are ever handled;
// the pointee is never accessed from Go.
type MediaTrack struct {
	private [0]byte //nolint:unused
}

// HWND is an opaque window handle (win32 or swell).
type HWND = unsafe.Pointer

// GetLine returns this when a project state context has no more lines.
const GetLineEOF = -1
