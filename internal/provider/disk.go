package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// pseudoFSTypes contains filesystem types that do not represent local storage.
// These are virtual/system filesystems and network/remote filesystems.
var pseudoFSTypes = map[string]bool{
	// Virtual / system filesystems
	"devfs":         true,
	"autofs":        true,
	"nullfs":        true,
	"tmpfs":         true,
	"sysfs":         true,
	"proc":          true,
	"procfs":        true,
	"devtmpfs":      true,
	"cgroup":        true,
	"cgroup2":       true,
	"overlay":       true,
	"squashfs":      true,
	"fuse.snapfuse": true,
	"nsfs":          true,
	"pstore":        true,
	"debugfs":       true,
	"tracefs":       true,
	"securityfs":    true,
	"configfs":      true,
	"fusectl":       true,
	"mqueue":        true,
	"hugetlbfs":     true,
	"binfmt_misc":   true,
	"efivarfs":      true,
	"bpf":           true,
	"ramfs":         true,

	// Network / remote filesystems
	"nfs":           true,
	"nfs4":          true,
	"cifs":          true,
	"smbfs":         true,
	"fuse.sshfs":    true,
	"fuse.rclone":   true,
	"9p":            true,
	"afs":           true,
	"glusterfs":     true,
	"lustre":        true,
	"ceph":          true,
	"fuse.ceph":     true,
	"fuse.s3fs":     true,
	"fuse.gcsfuse":  true,
	"fuse.blobfuse": true,
	"davfs2":        true,
}

// systemMountPrefixes are macOS volumes that mirror the root disk.
var systemMountPrefixes = []string{
	"/System/Volumes/",
	"/private/var/vm",
}

// DiskOptions controls which mounts a Disks handle lists.
type DiskOptions struct {
	// IncludeAll disables the pseudo/network filesystem filter.
	IncludeAll bool
}

// Disks is the disk list accessor. It is constructed and refreshed
// independently of System, so its figures may reflect a slightly
// different instant than CPU and memory.
type Disks struct {
	opts   DiskOptions
	logger *zap.Logger
	list   []DiskStat
}

// NewDisks creates an empty disk list. Pass nil for no logging.
func NewDisks(logger *zap.Logger, opts DiskOptions) *Disks {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Disks{opts: opts, logger: logger}
}

// Refresh re-lists mounted partitions and reads their capacity.
// Mounts that cannot be queried are skipped; only a failure to list
// partitions at all is returned.
func (d *Disks) Refresh(ctx context.Context) error {
	partitions, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return fmt.Errorf("listing partitions: %w", err)
	}

	var (
		list    []DiskStat
		skipped error
	)
	for _, p := range partitions {
		if !d.opts.IncludeAll && !isLocalStorage(p.Fstype, p.Mountpoint) {
			continue
		}

		usage, err := disk.UsageWithContext(ctx, p.Mountpoint)
		if err != nil {
			skipped = multierr.Append(skipped, fmt.Errorf("%s: %w", p.Mountpoint, err))
			continue
		}
		list = append(list, DiskStat{
			Mount:     p.Mountpoint,
			Fstype:    p.Fstype,
			Total:     usage.Total,
			Available: usage.Free,
		})
	}

	if skipped != nil {
		d.logger.Debug("Skipped inaccessible mounts",
			zap.Int("count", len(multierr.Errors(skipped))),
			zap.Error(skipped))
	}

	d.list = list
	return nil
}

// List returns the disks found by the last Refresh.
func (d *Disks) List() []DiskStat {
	out := make([]DiskStat, len(d.list))
	copy(out, d.list)
	return out
}

// isLocalStorage reports whether a mount represents a local storage device.
func isLocalStorage(fstype, mount string) bool {
	if pseudoFSTypes[fstype] {
		return false
	}
	for _, prefix := range systemMountPrefixes {
		if strings.HasPrefix(mount, prefix) {
			return false
		}
	}
	return true
}
