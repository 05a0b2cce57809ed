// Package boundary hands snapshot payloads to callers in another runtime.
//
// OWNERSHIP: Acquire returns a NUL-terminated UTF-8 string allocated with the
// C allocator (malloc). The caller owns it and must pass it to Release exactly
// once when done reading. Never free it with another allocator, never release
// it twice, and never pass Release a pointer that Acquire did not return.
// None of these mistakes can be detected at runtime.
package boundary

/*
#include <stdlib.h>
*/
import "C"

import (
	"context"
	"fmt"
	"math"
	"unsafe"

	"go.uber.org/zap"

	"github.com/Guliveer/vitalis/snapshot/internal/models"
	"github.com/Guliveer/vitalis/snapshot/internal/payload"
	"github.com/Guliveer/vitalis/snapshot/internal/snapshot"
)

// Handoff produces boundary payloads. Its zero value is not usable; use New.
type Handoff struct {
	assemble func(ctx context.Context, limit int) (models.SystemMetrics, error)
	logger   *zap.Logger
}

// New creates a Handoff backed by an assembler with the given options.
// Pass nil for no logging.
func New(opts snapshot.Options, logger *zap.Logger) *Handoff {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handoff{
		assemble: snapshot.New(opts, logger).Assemble,
		logger:   logger,
	}
}

// Acquire assembles a snapshot and returns its compact JSON as a C string.
// It never panics: assembly errors, encoding errors and panics all yield "{}".
func (h *Handoff) Acquire(limit uint) unsafe.Pointer {
	return unsafe.Pointer(C.CString(string(h.encode(limit))))
}

func (h *Handoff) encode(limit uint) (data []byte) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("Snapshot panicked, returning empty payload",
				zap.String("panic", fmt.Sprint(r)))
			data = []byte(payload.Empty)
		}
	}()

	if limit > math.MaxInt32 {
		limit = math.MaxInt32
	}

	m, err := h.assemble(context.Background(), int(limit))
	if err != nil {
		h.logger.Error("Snapshot failed, returning empty payload", zap.Error(err))
		return []byte(payload.Empty)
	}

	data, err = payload.Encode(m)
	if err != nil {
		h.logger.Error("Encoding failed, returning empty payload", zap.Error(err))
		return []byte(payload.Empty)
	}
	return data
}

// Release frees a payload returned by Acquire. A nil pointer is a no-op.
func Release(p unsafe.Pointer) {
	if p == nil {
		return
	}
	C.free(p)
}

// String copies the payload at p into a Go string without releasing it.
func String(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	return C.GoString((*C.char)(p))
}
