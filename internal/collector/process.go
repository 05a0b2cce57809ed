// Top N processes collector: ranks the process table by CPU usage.
package collector

import (
	"context"
	"errors"
	"sort"

	"github.com/Guliveer/vitalis/snapshot/internal/models"
	"github.com/Guliveer/vitalis/snapshot/internal/provider"
)

// TopProcesses returns the limit processes with the highest CPU usage,
// sorted descending. The sort is stable, so equal-CPU processes keep the
// provider's table order: deterministic, but carrying no meaning.
// A limit of 0 yields an empty, non-nil slice.
func TopProcesses(procs []provider.ProcessStat, limit int) []models.ProcessInfo {
	infos := make([]models.ProcessInfo, 0, len(procs))
	for _, p := range procs {
		infos = append(infos, models.ProcessInfo{
			PID:        p.PID,
			Name:       p.Name,
			CPUPercent: p.CPUPercent,
			MemoryMB:   p.RSS / bytesPerMB,
		})
	}

	// Sort by CPU usage descending
	sort.SliceStable(infos, func(i, j int) bool {
		return infos[i].CPUPercent > infos[j].CPUPercent
	})

	if limit < 0 {
		limit = 0
	}
	if len(infos) > limit {
		infos = infos[:limit]
	}
	return infos
}

// ProcessStage fills the top_processes section.
type ProcessStage struct{}

// NewProcessStage creates a new process stage. The number of processes
// reported comes from State.Limit.
func NewProcessStage() *ProcessStage {
	return &ProcessStage{}
}

// Name returns the stage identifier.
func (c *ProcessStage) Name() string { return "processes" }

// Apply ranks the refreshed process table.
func (c *ProcessStage) Apply(ctx context.Context, state *State, m *models.SystemMetrics) error {
	if state.System == nil {
		return errors.New("system state not refreshed")
	}
	m.TopProcesses = TopProcesses(state.System.Processes(), state.Limit)
	return nil
}

// IsAvailable returns true; process listing is available on all platforms.
func (c *ProcessStage) IsAvailable() bool { return true }
