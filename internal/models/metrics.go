// Package models defines the snapshot data structures returned to callers.
// These structures are serialized to JSON for the host process; field names
// and units are part of the payload contract.
package models

import (
	"encoding/json"
	"math"
)

// CPUMetrics holds aggregate CPU utilization and system load averages.
type CPUMetrics struct {
	UsagePercent float32 `json:"usage_percent"`
	CoresLogical uint64  `json:"cores_logical"`
	LoadAvg1     float64 `json:"load_avg_1"`
	LoadAvg5     float64 `json:"load_avg_5"`
	LoadAvg15    float64 `json:"load_avg_15"`
}

// MemoryMetrics holds RAM usage in whole megabytes.
// Percent is NaN or +Inf when the provider reports a total of zero.
type MemoryMetrics struct {
	TotalMB     uint64  `json:"total_mb"`
	UsedMB      uint64  `json:"used_mb"`
	AvailableMB uint64  `json:"available_mb"`
	Percent     float64 `json:"percent"`
}

// MarshalJSON encodes a non-finite Percent as null, since JSON has no
// representation for NaN or Infinity.
func (m MemoryMetrics) MarshalJSON() ([]byte, error) {
	type plain MemoryMetrics
	if !math.IsNaN(m.Percent) && !math.IsInf(m.Percent, 0) {
		return json.Marshal(plain(m))
	}
	return json.Marshal(struct {
		TotalMB     uint64   `json:"total_mb"`
		UsedMB      uint64   `json:"used_mb"`
		AvailableMB uint64   `json:"available_mb"`
		Percent     *float64 `json:"percent"`
	}{m.TotalMB, m.UsedMB, m.AvailableMB, nil})
}

// UnmarshalJSON accepts a null percent and restores it as NaN.
func (m *MemoryMetrics) UnmarshalJSON(data []byte) error {
	var aux struct {
		TotalMB     uint64   `json:"total_mb"`
		UsedMB      uint64   `json:"used_mb"`
		AvailableMB uint64   `json:"available_mb"`
		Percent     *float64 `json:"percent"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	m.TotalMB = aux.TotalMB
	m.UsedMB = aux.UsedMB
	m.AvailableMB = aux.AvailableMB
	if aux.Percent == nil {
		m.Percent = math.NaN()
	} else {
		m.Percent = *aux.Percent
	}
	return nil
}

// DiskMetrics holds capacity summed across all mounted disks, in whole gigabytes.
type DiskMetrics struct {
	TotalGB uint64  `json:"total_gb"`
	UsedGB  uint64  `json:"used_gb"`
	FreeGB  uint64  `json:"free_gb"`
	Percent float64 `json:"percent"`
}

// ProcessInfo represents a single process's resource usage.
// CPUPercent is relative to one core and may exceed 100 on multi-core hosts.
type ProcessInfo struct {
	PID        uint32  `json:"pid"`
	Name       string  `json:"name"`
	CPUPercent float32 `json:"cpu_percent"`
	MemoryMB   uint64  `json:"memory_mb"`
}

// SystemMetrics is one point-in-time snapshot. Its sections are sampled
// independently and are not transactionally consistent with one another.
// Disk is nil when disk collection is disabled and is then omitted from JSON.
type SystemMetrics struct {
	CPU          CPUMetrics    `json:"cpu"`
	Memory       MemoryMetrics `json:"memory"`
	Disk         *DiskMetrics  `json:"disk,omitempty"`
	TopProcesses []ProcessInfo `json:"top_processes"`
}
