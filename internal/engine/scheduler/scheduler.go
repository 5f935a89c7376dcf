// Package scheduler executes a build plan with a bounded worker pool.
package scheduler

import (
	"context"
	"errors"
	"path/filepath"

	"go.trai.ch/pak/internal/core/domain"
	"go.trai.ch/pak/internal/core/ports"
	"go.trai.ch/zerr"
)

// Stats summarizes one execution.
type Stats struct {
	Rebuilt int
	Reused  int
}

// Scheduler executes planned steps in dependency order. Independent branches
// run concurrently; a step is dispatched only once every input has a
// materialized output.
type Scheduler struct {
	registry  ports.FilterRegistry
	ops       ports.FileOps
	telemetry ports.Telemetry
	logger    ports.Logger
}

// NewScheduler creates a new Scheduler.
func NewScheduler(
	registry ports.FilterRegistry,
	ops ports.FileOps,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Scheduler {
	return &Scheduler{
		registry:  registry,
		ops:       ops,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Execute processes the plan and returns the new build state. On any fatal
// error the in-flight steps drain, nothing new is dispatched, and no partial
// state is returned.
func (s *Scheduler) Execute(
	ctx context.Context,
	g *domain.Graph,
	plan *domain.Plan,
	layout domain.Layout,
	parallelism int,
) (domain.BuildState, Stats, error) {
	if parallelism < 1 {
		parallelism = 1
	}

	if err := s.preflight(plan); err != nil {
		return domain.BuildState{}, Stats{}, err
	}

	state := s.newRunState(ctx, g, plan, layout, parallelism)

	for !state.isDone() {
		state.schedule()

		if state.isDone() {
			break
		}

		if state.ctx.Err() != nil && state.active == 0 {
			break
		}

		select {
		case res := <-state.resultsCh:
			state.handleResult(res)
		case <-state.ctx.Done():
		}
	}

	if state.ctx.Err() != nil {
		state.errs = errors.Join(state.errs, state.ctx.Err())
	}
	if state.errs != nil {
		return domain.BuildState{}, Stats{}, state.errs
	}
	return state.state, state.stats, nil
}

// preflight resolves every filter and type-checks its options before any
// work is scheduled, so structural errors never leave partial output behind.
func (s *Scheduler) preflight(plan *domain.Plan) error {
	for i := range plan.Steps {
		def := &plan.Steps[i].Asset
		if def.Source.Kind != domain.SourceFiltered {
			continue
		}
		filter, ok := s.registry.Lookup(def.Source.FilterName)
		if !ok {
			err := zerr.With(domain.ErrUnknownFilter, "filter", def.Source.FilterName)
			return zerr.With(err, "asset", def.Name.String())
		}
		if err := filter.Validate(def.Source.FilterOptions); err != nil {
			return zerr.With(err, "asset", def.Name.String())
		}
	}
	return nil
}

type result struct {
	idx int
	err error
}

type runState struct {
	s           *Scheduler
	ctx         context.Context
	layout      domain.Layout
	parallelism int

	steps     []domain.PlannedStep
	index     map[domain.InternedString]int
	inDegree  []int
	ready     []int
	active    int
	resultsCh chan result
	errs      error

	// outputs, state, stats, and vertices are only touched by the scheduling
	// loop; workers report back over resultsCh.
	outputs  map[domain.InternedString]string
	state    domain.BuildState
	stats    Stats
	vertices map[int]ports.Vertex
	graph    *domain.Graph
}

func (s *Scheduler) newRunState(
	ctx context.Context,
	g *domain.Graph,
	plan *domain.Plan,
	layout domain.Layout,
	parallelism int,
) *runState {
	state := &runState{
		s:           s,
		ctx:         ctx,
		layout:      layout,
		parallelism: parallelism,
		steps:       plan.Steps,
		index:       make(map[domain.InternedString]int, len(plan.Steps)),
		inDegree:    make([]int, len(plan.Steps)),
		resultsCh:   make(chan result, parallelism),
		outputs:     make(map[domain.InternedString]string, len(plan.Steps)),
		state:       domain.NewBuildState(),
		vertices:    make(map[int]ports.Vertex),
		graph:       g,
	}

	for i := range plan.Steps {
		state.index[plan.Steps[i].Asset.Name] = i
	}
	for i := range plan.Steps {
		deps := g.Dependencies(plan.Steps[i].Asset)
		state.inDegree[i] = len(deps)
		if len(deps) == 0 {
			state.ready = append(state.ready, i)
		}
	}
	return state
}

func (state *runState) isDone() bool {
	return state.active == 0 && (len(state.ready) == 0 || state.errs != nil)
}

// schedule drains the ready queue: reusable steps resolve inline, rebuild
// steps go to workers until the pool is full. Nothing is dispatched after a
// failure or cancellation.
func (state *runState) schedule() {
	for len(state.ready) > 0 && state.errs == nil && state.ctx.Err() == nil {
		idx := state.ready[0]
		step := &state.steps[idx]

		if step.Action == domain.ActionReuse {
			state.ready = state.ready[1:]
			state.resolveReusable(idx, step)
			continue
		}

		if state.active >= state.parallelism {
			return
		}
		state.ready = state.ready[1:]
		state.dispatch(idx, step)
	}
}

// resolveReusable confirms the prior output is still present and completes
// the step without a worker. A vanished output degrades the step to a
// rebuild, which self-heals partial prior runs.
func (state *runState) resolveReusable(idx int, step *domain.PlannedStep) {
	full := filepath.Join(state.layout.OutputDir, step.OutputPath)
	if !state.s.ops.Exists(full) {
		state.s.logger.Info("previous output for " + step.Asset.Name.String() + " is missing, rebuilding")
		step.Action = domain.ActionRebuild
		state.ready = append([]int{idx}, state.ready...)
		return
	}

	_, v := state.s.telemetry.Record(state.ctx, step.Asset.Name.String())
	v.Cached()
	v.Complete(nil)

	state.complete(step)
	state.stats.Reused++
}

func (state *runState) dispatch(idx int, step *domain.PlannedStep) {
	inputPaths := state.inputPaths(step)
	state.active++
	_, v := state.s.telemetry.Record(state.ctx, step.Asset.Name.String())
	state.vertices[idx] = v

	go func(step domain.PlannedStep) {
		state.resultsCh <- result{idx: idx, err: state.s.executeStep(state.ctx, &step, inputPaths, state.layout)}
	}(*step)
}

// inputPaths resolves the materialized output files of the step's inputs.
// By scheduling order every input has completed, so the lookups cannot miss.
func (state *runState) inputPaths(step *domain.PlannedStep) []string {
	if step.Asset.Source.Kind != domain.SourceFiltered {
		return nil
	}
	paths := make([]string, len(step.Asset.Source.Inputs))
	for i, input := range step.Asset.Source.Inputs {
		paths[i] = filepath.Join(state.layout.OutputDir, state.outputs[input])
	}
	return paths
}

func (state *runState) handleResult(res result) {
	state.active--
	step := &state.steps[res.idx]

	if v, ok := state.vertices[res.idx]; ok {
		v.Complete(res.err)
		delete(state.vertices, res.idx)
	}

	if res.err != nil {
		wrapped := zerr.With(res.err, "asset", step.Asset.Name.String())
		state.errs = errors.Join(state.errs, wrapped)
		return
	}

	state.complete(step)
	state.stats.Rebuilt++
}

// complete records the step's terminal entry and releases its dependents.
func (state *runState) complete(step *domain.PlannedStep) {
	state.outputs[step.Asset.Name] = step.OutputPath
	state.state.Put(step.Asset.Name, domain.StateEntry{
		Fingerprint: step.Fingerprint,
		OutputPath:  step.OutputPath,
	})
	for _, dep := range state.graph.Dependents(step.Asset.Name) {
		i := state.index[dep]
		state.inDegree[i]--
		if state.inDegree[i] == 0 {
			state.ready = append(state.ready, i)
		}
	}
}

// executeStep materializes one rebuilt asset: file sources are copied
// verbatim, filtered sources run their filter against the inputs' outputs.
func (s *Scheduler) executeStep(ctx context.Context, step *domain.PlannedStep, inputPaths []string, layout domain.Layout) error {
	dst := filepath.Join(layout.OutputDir, step.OutputPath)
	if err := s.ops.EnsureDir(filepath.Dir(dst)); err != nil {
		wrapped := zerr.Wrap(domain.ErrOutputWriteFailed, "cannot create output directory")
		return zerr.With(wrapped, "cause", err.Error())
	}

	switch step.Asset.Source.Kind {
	case domain.SourceFile:
		src := filepath.Join(layout.SourceDir, step.Asset.Source.Path)
		if err := s.ops.CopyFile(src, dst); err != nil {
			wrapped := zerr.Wrap(domain.ErrOutputWriteFailed, "cannot copy source file")
			return zerr.With(wrapped, "cause", err.Error())
		}
	case domain.SourceFiltered:
		filter, ok := s.registry.Lookup(step.Asset.Source.FilterName)
		if !ok {
			// preflight already resolved it; kept for safety
			return zerr.With(domain.ErrUnknownFilter, "filter", step.Asset.Source.FilterName)
		}
		if err := filter.Apply(ctx, inputPaths, dst, step.Asset.Source.FilterOptions); err != nil {
			wrapped := zerr.Wrap(domain.ErrFilterExecutionFailed, "filter reported an error")
			wrapped = zerr.With(wrapped, "filter", step.Asset.Source.FilterName)
			return zerr.With(wrapped, "cause", err.Error())
		}
	}
	return nil
}
