// Package packer orchestrates a full pack run: graph validation, fingerprint
// resolution, planning and plan execution.
package packer

import (
	"context"
	"path/filepath"

	"go.trai.ch/pak/internal/core/domain"
	"go.trai.ch/pak/internal/engine/fingerprint"
	"go.trai.ch/pak/internal/engine/planner"
	"go.trai.ch/pak/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// Result is the outcome of a successful pack run.
type Result struct {
	// State maps every asset to its fingerprint and versioned output path.
	State domain.BuildState

	// PublicPaths maps public asset names to their slash-separated versioned
	// paths, relative to the output root.
	PublicPaths map[string]string

	Stats scheduler.Stats
}

// Packer drives one run through its phases. Each stage only starts after the
// previous one finished cleanly, so a failed run never writes partial output
// beyond the steps that were already in flight.
type Packer struct {
	resolver  *fingerprint.Resolver
	planner   *planner.Planner
	scheduler *scheduler.Scheduler
}

// NewPacker creates a new Packer.
func NewPacker(resolver *fingerprint.Resolver, pl *planner.Planner, sched *scheduler.Scheduler) *Packer {
	return &Packer{
		resolver:  resolver,
		planner:   pl,
		scheduler: sched,
	}
}

// Pack validates the manifest, resolves fingerprints, plans against the
// previous state and executes the plan. The returned state supersedes prev
// entirely; assets that left the manifest are absent from it.
func (p *Packer) Pack(
	ctx context.Context,
	manifest *domain.Manifest,
	prev domain.BuildState,
	layout domain.Layout,
	parallelism int,
) (*Result, error) {
	g, err := domain.BuildGraph(manifest)
	if err != nil {
		return nil, p.fail(err, domain.PhaseLoaded)
	}

	fps, err := p.resolver.Resolve(ctx, g, layout.SourceDir)
	if err != nil {
		return nil, p.fail(err, domain.PhaseValidated)
	}

	plan := p.planner.Plan(g, fps, prev, layout.OutputDir)

	state, stats, err := p.scheduler.Execute(ctx, g, plan, layout, parallelism)
	if err != nil {
		return nil, p.fail(err, domain.PhaseExecuting)
	}

	return &Result{
		State:       state,
		PublicPaths: publicPaths(manifest, state),
		Stats:       stats,
	}, nil
}

// fail annotates err with the phase the run was in when it aborted.
func (p *Packer) fail(err error, phase domain.Phase) error {
	return zerr.With(err, "phase", phase.String())
}

// publicPaths projects the public asset names onto their recorded output
// paths. Every public name was validated against the manifest when the graph
// was built, and every asset has a state entry after a successful run.
func publicPaths(manifest *domain.Manifest, state domain.BuildState) map[string]string {
	paths := make(map[string]string, len(manifest.Public()))
	for _, name := range manifest.Public() {
		if entry, ok := state.Get(name); ok {
			paths[name.String()] = filepath.ToSlash(entry.OutputPath)
		}
	}
	return paths
}
