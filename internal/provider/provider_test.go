package provider

import (
	"context"
	"testing"

	"github.com/shirou/gopsutil/v3/cpu"
)

func TestBusyPercent(t *testing.T) {
	tests := []struct {
		name     string
		prev     cpu.TimesStat
		cur      cpu.TimesStat
		expected float64
	}{
		{
			name:     "half busy",
			prev:     cpu.TimesStat{User: 10, Idle: 10},
			cur:      cpu.TimesStat{User: 15, Idle: 15},
			expected: 50,
		},
		{
			name:     "iowait counts as idle",
			prev:     cpu.TimesStat{System: 0, Idle: 0, Iowait: 0},
			cur:      cpu.TimesStat{System: 1, Idle: 2, Iowait: 1},
			expected: 25,
		},
		{
			name:     "no progress",
			prev:     cpu.TimesStat{User: 5, Idle: 5},
			cur:      cpu.TimesStat{User: 5, Idle: 5},
			expected: 0,
		},
		{
			name:     "counter went backwards",
			prev:     cpu.TimesStat{User: 9, Idle: 5},
			cur:      cpu.TimesStat{User: 3, Idle: 6},
			expected: 0,
		},
		{
			name:     "fully busy",
			prev:     cpu.TimesStat{User: 1, Idle: 1},
			cur:      cpu.TimesStat{User: 3, Idle: 1},
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := busyPercent(tt.prev, tt.cur)
			if got != tt.expected {
				t.Errorf("busyPercent() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsLocalStorage(t *testing.T) {
	tests := []struct {
		fstype   string
		mount    string
		expected bool
	}{
		{"ext4", "/", true},
		{"apfs", "/", true},
		{"NTFS", "C:", true},
		{"tmpfs", "/run", false},
		{"overlay", "/", false},
		{"nfs4", "/mnt/share", false},
		{"apfs", "/System/Volumes/Data", false},
		{"apfs", "/private/var/vm", false},
	}

	for _, tt := range tests {
		t.Run(tt.fstype+"_"+tt.mount, func(t *testing.T) {
			if got := isLocalStorage(tt.fstype, tt.mount); got != tt.expected {
				t.Errorf("isLocalStorage(%q, %q) = %v, want %v", tt.fstype, tt.mount, got, tt.expected)
			}
		})
	}
}

func TestSystem_UsageZeroBeforeSecondRefresh(t *testing.T) {
	s := NewSystem(nil)
	if err := s.Refresh(context.Background()); err != nil {
		t.Skipf("provider unavailable: %v", err)
	}
	if got := s.CPUUsage(); got != 0 {
		t.Errorf("CPUUsage() after one refresh = %v, want 0", got)
	}
	for i, u := range s.PerCPUUsage() {
		if u != 0 {
			t.Errorf("PerCPUUsage()[%d] after one refresh = %v, want 0", i, u)
		}
	}
}

func TestSystem_RefreshCPU(t *testing.T) {
	ctx := context.Background()
	s := NewSystem(nil)
	if err := s.Refresh(ctx); err != nil {
		t.Skipf("provider unavailable: %v", err)
	}
	procs := s.Processes()
	mem := s.Memory()

	if err := s.RefreshCPU(ctx); err != nil {
		t.Fatal(err)
	}

	if usage := s.CPUUsage(); usage < 0 || usage > 100 {
		t.Errorf("CPUUsage() = %v, want within [0, 100]", usage)
	}
	if got := uint64(len(s.PerCPUUsage())); got != s.LogicalCores() {
		t.Errorf("len(PerCPUUsage()) = %d, want %d", got, s.LogicalCores())
	}
	if len(s.Processes()) != len(procs) {
		t.Errorf("RefreshCPU changed the process table: %d -> %d", len(procs), len(s.Processes()))
	}
	if s.Memory() != mem {
		t.Error("RefreshCPU changed memory counters")
	}
	for _, p := range s.Processes() {
		if p.CPUPercent < 0 {
			t.Errorf("pid %d: negative cpu percent %v", p.PID, p.CPUPercent)
		}
	}
}

func TestDisks_Refresh(t *testing.T) {
	d := NewDisks(nil, DiskOptions{})
	if err := d.Refresh(context.Background()); err != nil {
		t.Skipf("partitions unavailable: %v", err)
	}
	for _, ds := range d.List() {
		if pseudoFSTypes[ds.Fstype] {
			t.Errorf("pseudo filesystem %s listed at %s", ds.Fstype, ds.Mount)
		}
	}
}

func TestLoadAverage_NonNegative(t *testing.T) {
	avg := LoadAverage(context.Background())
	if avg.One < 0 || avg.Five < 0 || avg.Fifteen < 0 {
		t.Errorf("LoadAverage() = %+v, want non-negative", avg)
	}
}
