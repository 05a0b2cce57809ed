// RAM usage collector: converts total, used and available bytes to megabytes.
package collector

import (
	"context"
	"errors"

	"github.com/Guliveer/vitalis/snapshot/internal/models"
)

const bytesPerMB = 1024 * 1024

// Memory converts byte counters to whole megabytes, truncating.
// Percent is not guarded: a zero total yields NaN (0/0) or +Inf.
func Memory(src MemorySource) models.MemoryMetrics {
	v := src.Memory()
	return models.MemoryMetrics{
		TotalMB:     v.Total / bytesPerMB,
		UsedMB:      v.Used / bytesPerMB,
		AvailableMB: v.Available / bytesPerMB,
		Percent:     float64(v.Used) / float64(v.Total) * 100,
	}
}

// MemoryStage fills the memory section.
type MemoryStage struct{}

// NewMemoryStage creates a new memory stage.
func NewMemoryStage() *MemoryStage {
	return &MemoryStage{}
}

// Name returns the stage identifier.
func (c *MemoryStage) Name() string { return "memory" }

// Apply extracts memory metrics from the refreshed system state.
func (c *MemoryStage) Apply(ctx context.Context, state *State, m *models.SystemMetrics) error {
	if state.System == nil {
		return errors.New("system state not refreshed")
	}
	m.Memory = Memory(state.System)
	return nil
}

// IsAvailable returns true; memory metrics are available on all platforms.
func (c *MemoryStage) IsAvailable() bool { return true }
