// Package snapshot assembles one SystemMetrics value per call.
// Each call builds its own provider handles, refreshes them, waits for the
// CPU sample interval, refreshes CPU times again and runs the extraction
// pipeline. Nothing is cached or shared between calls.
package snapshot

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Guliveer/vitalis/snapshot/internal/collector"
	"github.com/Guliveer/vitalis/snapshot/internal/config"
	"github.com/Guliveer/vitalis/snapshot/internal/models"
	"github.com/Guliveer/vitalis/snapshot/internal/provider"
)

// DefaultCPUSampleInterval is the settling delay between the two refreshes.
// CPU usage is a delta between samples, so it cannot be shorter than this
// without losing accuracy.
const DefaultCPUSampleInterval = 200 * time.Millisecond

// Options controls what an Assembler samples.
type Options struct {
	CPUSampleInterval time.Duration
	Disk              bool
	DiskOptions       provider.DiskOptions
}

// DefaultOptions returns the 200ms interval with disk metrics enabled.
func DefaultOptions() Options {
	return Options{
		CPUSampleInterval: DefaultCPUSampleInterval,
		Disk:              true,
	}
}

// OptionsFromConfig maps the collection config onto assembler options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		CPUSampleInterval: cfg.Collection.CPUSampleInterval.Duration,
		Disk:              cfg.Collection.Disk,
		DiskOptions: provider.DiskOptions{
			IncludeAll: cfg.Collection.IncludeAllFilesystems,
		},
	}
}

// systemProvider is the refresh lifecycle of provider.System.
type systemProvider interface {
	collector.SystemSource
	Refresh(ctx context.Context) error
	RefreshCPU(ctx context.Context) error
}

// diskProvider is the refresh lifecycle of provider.Disks.
type diskProvider interface {
	collector.DiskSource
	Refresh(ctx context.Context) error
}

// Assembler produces snapshots. It is safe for concurrent use: every
// Assemble call works on its own provider handles.
type Assembler struct {
	opts     Options
	logger   *zap.Logger
	pipeline *collector.Pipeline

	newSystem   func() systemProvider
	newDisks    func() diskProvider
	loadAverage func(ctx context.Context) provider.LoadAvg
	sleep       func(time.Duration)
}

// New creates an Assembler backed by the OS provider. Pass nil for no logging.
func New(opts Options, logger *zap.Logger) *Assembler {
	if logger == nil {
		logger = zap.NewNop()
	}

	pipeline := collector.NewPipeline(logger)
	pipeline.Register(collector.NewCPUStage())
	pipeline.Register(collector.NewMemoryStage())
	if opts.Disk {
		pipeline.Register(collector.NewDiskStage())
	}
	pipeline.Register(collector.NewProcessStage())

	return &Assembler{
		opts:     opts,
		logger:   logger,
		pipeline: pipeline,
		newSystem: func() systemProvider {
			return provider.NewSystem(logger)
		},
		newDisks: func() diskProvider {
			return provider.NewDisks(logger, opts.DiskOptions)
		},
		loadAverage: provider.LoadAverage,
		sleep:       time.Sleep,
	}
}

// Assemble samples the system once and returns a snapshot listing at most
// limit processes. It blocks for at least the CPU sample interval and does
// not retry; any refresh or extraction error aborts the whole snapshot.
func (a *Assembler) Assemble(ctx context.Context, limit int) (models.SystemMetrics, error) {
	if limit < 0 {
		return models.SystemMetrics{}, fmt.Errorf("negative process limit %d", limit)
	}
	start := time.Now()

	sys := a.newSystem()
	if err := sys.Refresh(ctx); err != nil {
		return models.SystemMetrics{}, fmt.Errorf("initial refresh: %w", err)
	}

	// Blocking wait; CPU usage needs two samples at least this far apart.
	a.sleep(a.opts.CPUSampleInterval)

	if err := sys.RefreshCPU(ctx); err != nil {
		return models.SystemMetrics{}, fmt.Errorf("cpu refresh: %w", err)
	}

	state := &collector.State{
		System: sys,
		Load:   a.loadAverage(ctx),
		Limit:  limit,
	}

	if a.opts.Disk {
		disks := a.newDisks()
		if err := disks.Refresh(ctx); err != nil {
			return models.SystemMetrics{}, fmt.Errorf("disk refresh: %w", err)
		}
		state.Disks = disks
	}

	m, err := a.pipeline.Run(ctx, state)
	if err != nil {
		return models.SystemMetrics{}, err
	}

	a.logger.Debug("Snapshot assembled",
		zap.Int("limit", limit),
		zap.Int("processes", len(m.TopProcesses)),
		zap.Duration("took", time.Since(start)))
	return m, nil
}

// GetMetrics is the in-process path: one snapshot with default options.
func GetMetrics(ctx context.Context, limit int) (models.SystemMetrics, error) {
	return New(DefaultOptions(), nil).Assemble(ctx, limit)
}
