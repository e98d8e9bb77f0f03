// Command libaccesskit builds the C shared library:
//
//	go build -buildmode=c-shared -o libaccesskit.so ./cmd/libaccesskit
//
// Include include/accesskit.h rather than the generated cgo header. The Go
// shims take every pointer and handle as uintptr_t, which has the same
// representation as the pointer types the public header declares.
//
// Contract violations by the caller panic and terminate the process after
// the violation is logged.
package main

/*
#cgo CFLAGS: -I${SRCDIR}/../../include
#include <stdlib.h>
#include "accesskit_types.h"
*/
import "C"

import (
	"unsafe"

	"github.com/wippyai/accesskit-go/ffi"
	"github.com/wippyai/accesskit-go/handle"
	"github.com/wippyai/accesskit-go/memory"
)

var boundary *ffi.Boundary

func init() {
	cfg := loadConfig()
	configureLogging(cfg)

	heap := memory.NewNative(
		func(size uintptr) unsafe.Pointer { return C.malloc(C.size_t(size)) },
		func(p unsafe.Pointer) { C.free(p) },
	)
	boundary = ffi.New(heap, heap, ffi.WithEventSink(eventLogger{}))
}

func main() {}

func ref(h C.uintptr_t) handle.Handle { return handle.Handle(h) }

func out(h handle.Handle) C.uintptr_t { return C.uintptr_t(h) }

//export accesskit_string_free
func accesskit_string_free(s C.uintptr_t) {
	defer guard("accesskit_string_free")
	boundary.StringFree(addr(s))
}
