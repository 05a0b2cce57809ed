// CPU collector: passes aggregate usage, logical core count and load averages through.
package collector

import (
	"context"
	"errors"

	"github.com/Guliveer/vitalis/snapshot/internal/models"
	"github.com/Guliveer/vitalis/snapshot/internal/provider"
)

// CPU passes aggregate usage, core count and load averages through unchanged.
func CPU(src CPUSource, load provider.LoadAvg) models.CPUMetrics {
	return models.CPUMetrics{
		UsagePercent: src.CPUUsage(),
		CoresLogical: src.LogicalCores(),
		LoadAvg1:     load.One,
		LoadAvg5:     load.Five,
		LoadAvg15:    load.Fifteen,
	}
}

// CPUStage fills the cpu section.
type CPUStage struct{}

// NewCPUStage creates a new CPU stage.
func NewCPUStage() *CPUStage {
	return &CPUStage{}
}

// Name returns the stage identifier.
func (c *CPUStage) Name() string { return "cpu" }

// Apply extracts CPU metrics from the refreshed system state.
func (c *CPUStage) Apply(ctx context.Context, state *State, m *models.SystemMetrics) error {
	if state.System == nil {
		return errors.New("system state not refreshed")
	}
	m.CPU = CPU(state.System, state.Load)
	return nil
}

// IsAvailable returns true; CPU metrics are available on all platforms.
func (c *CPUStage) IsAvailable() bool { return true }
