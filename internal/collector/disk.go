// Disk capacity collector: sums total and available space across mounted disks.
package collector

import (
	"context"
	"errors"

	"github.com/Guliveer/vitalis/snapshot/internal/models"
	"github.com/Guliveer/vitalis/snapshot/internal/provider"
)

const bytesPerGB = 1024 * 1024 * 1024

// Disk sums capacity across all disks. Used is derived as total minus
// available, clamped at zero when disks sampled at slightly different
// instants disagree. UsedGB is derived from the truncated TotalGB and FreeGB
// so that UsedGB+FreeGB == TotalGB whenever available <= total.
// Percent is computed from bytes and is 0 when total is 0.
func Disk(disks []provider.DiskStat) models.DiskMetrics {
	var total, available uint64
	for _, d := range disks {
		total += d.Total
		available += d.Available
	}

	var used uint64
	if total > available {
		used = total - available
	}

	var percent float64
	if total > 0 {
		percent = float64(used) / float64(total) * 100
	}

	totalGB := total / bytesPerGB
	freeGB := available / bytesPerGB
	var usedGB uint64
	if totalGB > freeGB {
		usedGB = totalGB - freeGB
	}

	return models.DiskMetrics{
		TotalGB: totalGB,
		UsedGB:  usedGB,
		FreeGB:  freeGB,
		Percent: percent,
	}
}

// DiskStage fills the optional disk section.
type DiskStage struct{}

// NewDiskStage creates a new disk stage.
func NewDiskStage() *DiskStage {
	return &DiskStage{}
}

// Name returns the stage identifier.
func (c *DiskStage) Name() string { return "disk" }

// Apply extracts aggregate disk metrics from the independently refreshed disk list.
func (c *DiskStage) Apply(ctx context.Context, state *State, m *models.SystemMetrics) error {
	if state.Disks == nil {
		return errors.New("disk list not refreshed")
	}
	d := Disk(state.Disks.List())
	m.Disk = &d
	return nil
}

// IsAvailable returns true; disk metrics are available on all platforms.
func (c *DiskStage) IsAvailable() bool { return true }
