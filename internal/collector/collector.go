// Package collector turns refreshed provider state into snapshot sections.
// The extractors are pure functions; Stage wraps each one so the assembler
// can compose the sections it needs into a Pipeline.
package collector

import (
	"context"

	"github.com/Guliveer/vitalis/snapshot/internal/models"
	"github.com/Guliveer/vitalis/snapshot/internal/provider"
)

// CPUSource exposes aggregate CPU readings.
type CPUSource interface {
	CPUUsage() float32
	LogicalCores() uint64
}

// MemorySource exposes memory counters.
type MemorySource interface {
	Memory() provider.MemoryStat
}

// ProcessSource exposes the process table in provider order.
type ProcessSource interface {
	Processes() []provider.ProcessStat
}

// DiskSource exposes the mounted disk list.
type DiskSource interface {
	List() []provider.DiskStat
}

// SystemSource is everything a refreshed provider.System offers.
type SystemSource interface {
	CPUSource
	MemorySource
	ProcessSource
}

// State is the refreshed provider state one pipeline run reads from.
type State struct {
	System SystemSource
	Load   provider.LoadAvg
	Disks  DiskSource
	Limit  int
}

// Stage is one extraction step. It fills its section of the snapshot.
type Stage interface {
	// Name returns the unique identifier for this stage.
	Name() string

	// Apply extracts this stage's section from state into m.
	Apply(ctx context.Context, state *State, m *models.SystemMetrics) error

	// IsAvailable reports whether the stage can run on the current platform.
	// Unavailable stages are not registered.
	IsAvailable() bool
}
