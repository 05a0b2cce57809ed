package provider

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
	"go.uber.org/zap"
)

// procEntry pairs a gopsutil process handle with its latest reading.
// The handle keeps the CPU-time baseline used for the usage delta.
type procEntry struct {
	handle *process.Process
	stat   ProcessStat
}

// System is a provider handle over CPU, memory and the process table.
// CPU usage figures are deltas between two refreshes, so a handle that has
// been refreshed only once reports zero usage.
type System struct {
	logger *zap.Logger

	total    *cpu.TimesStat
	perCPU   []cpu.TimesStat
	usage    float32
	perUsage []float32

	memory MemoryStat
	procs  []procEntry
}

// NewSystem creates an empty provider handle. Pass nil for no logging.
func NewSystem(logger *zap.Logger) *System {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &System{logger: logger}
}

// Refresh re-reads CPU times, memory counters and the live process table.
// It records a CPU-time baseline for every process it tables.
func (s *System) Refresh(ctx context.Context) error {
	if err := s.refreshCPUTimes(ctx); err != nil {
		return err
	}

	v, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return fmt.Errorf("reading virtual memory: %w", err)
	}
	s.memory = MemoryStat{
		Total:     v.Total,
		Used:      v.Used,
		Available: v.Available,
	}

	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return fmt.Errorf("listing processes: %w", err)
	}

	entries := make([]procEntry, 0, len(procs))
	for _, p := range procs {
		// Errors for individual processes are expected: they can exit
		// mid-scan or deny access. Keep the row with whatever was readable.
		name, _ := p.NameWithContext(ctx)

		var rss uint64
		if mi, err := p.MemoryInfoWithContext(ctx); err == nil && mi != nil {
			rss = mi.RSS
		}

		pct, _ := p.PercentWithContext(ctx, 0)

		entries = append(entries, procEntry{
			handle: p,
			stat: ProcessStat{
				PID:        uint32(p.Pid),
				Name:       name,
				CPUPercent: float32(pct),
				RSS:        rss,
			},
		})
	}
	s.procs = entries

	s.logger.Debug("Provider refreshed",
		zap.Int("processes", len(entries)),
		zap.Int("cpus", len(s.perCPU)))
	return nil
}

// RefreshCPU re-samples aggregate, per-CPU and per-process CPU times only.
// Memory and the process table itself are left as of the last Refresh.
func (s *System) RefreshCPU(ctx context.Context) error {
	if err := s.refreshCPUTimes(ctx); err != nil {
		return err
	}

	for i := range s.procs {
		pct, err := s.procs[i].handle.PercentWithContext(ctx, 0)
		if err != nil {
			// Exited since the full refresh.
			s.procs[i].stat.CPUPercent = 0
			continue
		}
		s.procs[i].stat.CPUPercent = float32(pct)
	}
	return nil
}

func (s *System) refreshCPUTimes(ctx context.Context) error {
	totals, err := cpu.TimesWithContext(ctx, false)
	if err != nil {
		return fmt.Errorf("reading cpu times: %w", err)
	}
	per, err := cpu.TimesWithContext(ctx, true)
	if err != nil {
		return fmt.Errorf("reading per-cpu times: %w", err)
	}

	if len(totals) > 0 {
		cur := totals[0]
		if s.total != nil {
			s.usage = float32(busyPercent(*s.total, cur))
		}
		s.total = &cur
	}

	usage := make([]float32, len(per))
	if len(s.perCPU) == len(per) {
		for i := range per {
			usage[i] = float32(busyPercent(s.perCPU[i], per[i]))
		}
	}
	s.perCPU = per
	s.perUsage = usage
	return nil
}

// CPUUsage returns aggregate CPU utilization (0-100) between the last two refreshes.
func (s *System) CPUUsage() float32 { return s.usage }

// PerCPUUsage returns per-CPU utilization between the last two refreshes.
func (s *System) PerCPUUsage() []float32 {
	out := make([]float32, len(s.perUsage))
	copy(out, s.perUsage)
	return out
}

// LogicalCores returns the number of logical CPUs in the per-CPU table.
// It is 0 on platforms that report no per-CPU times.
func (s *System) LogicalCores() uint64 { return uint64(len(s.perCPU)) }

// Memory returns the memory counters from the last full refresh.
func (s *System) Memory() MemoryStat { return s.memory }

// Processes returns the process table in provider order.
func (s *System) Processes() []ProcessStat {
	out := make([]ProcessStat, len(s.procs))
	for i, e := range s.procs {
		out[i] = e.stat
	}
	return out
}
