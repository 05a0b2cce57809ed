package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Collection.TopProcesses != 5 {
		t.Errorf("TopProcesses = %d, want 5", cfg.Collection.TopProcesses)
	}
	if cfg.Collection.CPUSampleInterval.Duration != 200*time.Millisecond {
		t.Errorf("CPUSampleInterval = %v, want 200ms", cfg.Collection.CPUSampleInterval.Duration)
	}
	if !cfg.Collection.Disk {
		t.Error("Disk = false, want true by default")
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Level = %q, want warn", cfg.Logging.Level)
	}
}

func TestLoadFromBytes_Overrides(t *testing.T) {
	data := []byte("collection:\n  top_processes: 12\n  cpu_sample_interval: 50ms\n  disk: false\nlogging:\n  level: debug\n")

	cfg, err := LoadFromBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Collection.TopProcesses != 12 {
		t.Errorf("TopProcesses = %d, want 12", cfg.Collection.TopProcesses)
	}
	if cfg.Collection.CPUSampleInterval.Duration != 50*time.Millisecond {
		t.Errorf("CPUSampleInterval = %v, want 50ms", cfg.Collection.CPUSampleInterval.Duration)
	}
	if cfg.Collection.Disk {
		t.Error("Disk = true, want false")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadFromBytes_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad duration":   "collection:\n  cpu_sample_interval: soon\n",
		"negative limit": "collection:\n  top_processes: -1\n",
		"unknown level":  "logging:\n  level: loud\n",
		"not yaml":       "collection: [",
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadFromBytes([]byte(data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	data := "collection:\n  top_processes: 3\n  cpu_sample_interval: 1s\n  disk: false\n"
	if err := os.WriteFile(path, []byte(data), 0640); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Collection.TopProcesses != 3 {
		t.Errorf("TopProcesses = %d, want 3", loaded.Collection.TopProcesses)
	}
	if loaded.Collection.CPUSampleInterval.Duration != time.Second {
		t.Errorf("CPUSampleInterval = %v, want 1s", loaded.Collection.CPUSampleInterval.Duration)
	}
	if loaded.Collection.Disk {
		t.Error("Disk = true, want false")
	}
	if loaded.Logging.Level != "warn" {
		t.Errorf("Level = %q, want warn default", loaded.Logging.Level)
	}
}
