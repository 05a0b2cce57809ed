// Command libsnapshot builds the snapshot collector as a C shared library:
//
//	go build -buildmode=c-shared -o libvitalis_snapshot.so ./cmd/libsnapshot
//
// Host processes load it and call vitalis_get_metrics_json. The returned
// string belongs to the caller, who MUST hand it back to vitalis_free_string
// exactly once. Freeing it any other way, freeing it twice, or passing a
// pointer this library did not return is undefined behavior.
package main

/*
#include <stddef.h>
*/
import "C"

import (
	"unsafe"

	"github.com/Guliveer/vitalis/snapshot/internal/boundary"
	"github.com/Guliveer/vitalis/snapshot/internal/snapshot"
)

//export vitalis_get_metrics_json
func vitalis_get_metrics_json(limit C.size_t) *C.char {
	h := boundary.New(snapshot.DefaultOptions(), nil)
	return (*C.char)(h.Acquire(uint(limit)))
}

//export vitalis_free_string
func vitalis_free_string(s *C.char) {
	boundary.Release(unsafe.Pointer(s))
}

func main() {}
