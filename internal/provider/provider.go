// Package provider is the typed access layer over gopsutil. A System handle
// owns the refresh lifecycle for CPU, memory and process state; disks are
// listed by a separately constructed Disks handle.
//
// Handles are never shared between snapshot calls and keep no package-level
// state, so concurrent callers each sample independently.
package provider

// MemoryStat holds virtual memory counters in bytes.
type MemoryStat struct {
	Total     uint64
	Used      uint64
	Available uint64
}

// ProcessStat is one row of the process table as seen by the provider.
type ProcessStat struct {
	PID        uint32
	Name       string
	CPUPercent float32 // relative to a single core
	RSS        uint64  // resident memory in bytes
}

// DiskStat describes the capacity of one mounted filesystem in bytes.
type DiskStat struct {
	Mount     string
	Fstype    string
	Total     uint64
	Available uint64
}

// LoadAvg holds the system-wide 1, 5 and 15 minute load averages.
type LoadAvg struct {
	One     float64
	Five    float64
	Fifteen float64
}
