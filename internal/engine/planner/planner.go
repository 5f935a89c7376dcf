// Package planner turns a validated graph plus fingerprints into an ordered
// build plan.
package planner

import (
	"path/filepath"

	"go.trai.ch/pak/internal/core/domain"
	"go.trai.ch/pak/internal/core/ports"
)

// Planner decides, asset by asset, whether the previous output can be reused
// or the asset must be rebuilt.
type Planner struct {
	ops ports.FileOps
}

// NewPlanner creates a new Planner.
func NewPlanner(ops ports.FileOps) *Planner {
	return &Planner{ops: ops}
}

// Plan emits one step per asset, in dependency order. An asset is Reusable
// when the previous run recorded the same fingerprint at the same versioned
// path and that file still exists; otherwise it must be rebuilt. An input
// marked Rebuild does not by itself force its consumers to rebuild — a
// content change upstream already shows up in the consumer's fingerprint.
func (p *Planner) Plan(g *domain.Graph, fps map[domain.InternedString]domain.Fingerprint, prev domain.BuildState, outputDir string) *domain.Plan {
	plan := &domain.Plan{Steps: make([]domain.PlannedStep, 0, g.Len())}

	for def := range g.Walk() {
		fp := fps[def.Name]
		step := domain.PlannedStep{
			Asset:       def,
			Fingerprint: fp,
			Action:      domain.ActionRebuild,
			OutputPath:  def.VersionedPath(fp),
		}

		// Comparing against the freshly derived versioned path also catches
		// definition changes that leave the fingerprint alone, like a new
		// extension or output base.
		if entry, ok := prev.Get(def.Name); ok &&
			entry.Fingerprint == fp &&
			entry.OutputPath == step.OutputPath &&
			p.ops.Exists(filepath.Join(outputDir, entry.OutputPath)) {
			step.Action = domain.ActionReuse
		}

		plan.Steps = append(plan.Steps, step)
	}

	return plan
}
