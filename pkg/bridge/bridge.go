// Package bridge lets Go code implement and drive REAPER's C++ extension
// interfaces without writing virtual-dispatch code.
//
// For every bridged interface the package provides both directions:
//
//   - Go implements the interface: Create<X> registers a behavior object in
//     the dispatch table and synthesizes a native shim object whose virtual
//     methods forward into Go. The returned Owned<X> handle owns the shim and
//     must be Closed exactly once, no earlier than the moment the host can no
//     longer call it.
//
//   - Go drives a host object: Wrap<X> wraps a host-owned interface pointer
//     in an accessor type whose methods perform the virtual calls natively.
//     The host keeps ownership; the wrapper never frees the pointer.
//
// The opaque identifier crossing the boundary is a pkg/handle Handle. Native
// code never dereferences it. Dispatch of a stale identifier returns the
// operation's default value, and every dispatch function carries a panic
// firewall: a fault in a behavior must never unwind into the host.
package bridge

/*
#cgo CFLAGS: -I${SRCDIR}/../../include
#cgo CXXFLAGS: -std=c++17 -I${SRCDIR}/../../include
#cgo !darwin LDFLAGS: -lstdc++
#cgo darwin LDFLAGS: -lc++
#include "reaper/reaper_plugin.h"
*/
import "C"

func cbool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}
