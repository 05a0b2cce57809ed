// Stage pipeline: runs registered stages in order and aborts on the first error.
package collector

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Guliveer/vitalis/snapshot/internal/models"
)

// Pipeline holds the registered stages and runs them in registration order.
type Pipeline struct {
	stages []Stage
	logger *zap.Logger
}

// NewPipeline creates an empty pipeline. Pass nil for no logging.
func NewPipeline(logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		stages: make([]Stage, 0),
		logger: logger,
	}
}

// Register adds a stage if it's available on the current platform.
// Unavailable stages are logged and skipped.
func (p *Pipeline) Register(s Stage) {
	if !s.IsAvailable() {
		p.logger.Warn("Stage not available, skipping", zap.String("name", s.Name()))
		return
	}
	p.stages = append(p.stages, s)
	p.logger.Debug("Registered stage", zap.String("name", s.Name()))
}

// Run applies every stage to a fresh snapshot. The first failing stage
// aborts the run; no partial snapshot is returned.
func (p *Pipeline) Run(ctx context.Context, state *State) (models.SystemMetrics, error) {
	var m models.SystemMetrics
	for _, s := range p.stages {
		if err := s.Apply(ctx, state, &m); err != nil {
			return models.SystemMetrics{}, fmt.Errorf("stage %s: %w", s.Name(), err)
		}
	}
	return m, nil
}

// Stages returns a copy of all registered stages.
func (p *Pipeline) Stages() []Stage {
	result := make([]Stage, len(p.stages))
	copy(result, p.stages)
	return result
}
