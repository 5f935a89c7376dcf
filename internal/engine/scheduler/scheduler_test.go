package scheduler_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"testing/synctest"

	"go.trai.ch/pak/internal/adapters/telemetry"
	"go.trai.ch/pak/internal/core/domain"
	"go.trai.ch/pak/internal/core/ports/mocks"
	"go.trai.ch/pak/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

var layout = domain.Layout{SourceDir: "src", OutputDir: "dist"}

func fileDef(name, path string) domain.AssetDefinition {
	return domain.AssetDefinition{
		Name:      domain.NewInternedString(name),
		Extension: "txt",
		Source:    domain.AssetSource{Kind: domain.SourceFile, Path: path},
	}
}

func filterDef(name string, inputs ...string) domain.AssetDefinition {
	interned := make([]domain.InternedString, len(inputs))
	for i, in := range inputs {
		interned[i] = domain.NewInternedString(in)
	}
	return domain.AssetDefinition{
		Name:      domain.NewInternedString(name),
		Extension: "txt",
		Source: domain.AssetSource{
			Kind:       domain.SourceFiltered,
			FilterName: "concat",
			Inputs:     interned,
		},
	}
}

func buildGraph(t *testing.T, defs ...domain.AssetDefinition) *domain.Graph {
	t.Helper()
	m := domain.NewManifest()
	for _, def := range defs {
		if err := m.AddAsset(def); err != nil {
			t.Fatalf("failed to add asset: %v", err)
		}
	}
	g, err := domain.BuildGraph(m)
	if err != nil {
		t.Fatalf("failed to build graph: %v", err)
	}
	return g
}

func rebuildPlan(g *domain.Graph, fp domain.Fingerprint) *domain.Plan {
	plan := &domain.Plan{}
	for def := range g.Walk() {
		plan.Steps = append(plan.Steps, domain.PlannedStep{
			Asset:       def,
			Fingerprint: fp,
			Action:      domain.ActionRebuild,
			OutputPath:  def.VersionedPath(fp),
		})
	}
	return plan
}

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	return log
}

func TestScheduler_Execute_FileCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	g := buildGraph(t, fileDef("a", "a.txt"))
	plan := rebuildPlan(g, 0xaa)
	out := plan.Steps[0].OutputPath

	mockRegistry := mocks.NewMockFilterRegistry(ctrl)
	mockOps := mocks.NewMockFileOps(ctrl)
	mockOps.EXPECT().EnsureDir(filepath.Dir(filepath.Join("dist", out))).Return(nil)
	mockOps.EXPECT().CopyFile(filepath.Join("src", "a.txt"), filepath.Join("dist", out)).Return(nil)

	s := scheduler.NewScheduler(mockRegistry, mockOps, telemetry.NewNoop(), quietLogger(ctrl))
	state, stats, err := s.Execute(context.Background(), g, plan, layout, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entry, ok := state.Get(domain.NewInternedString("a"))
	if !ok {
		t.Fatal("expected state entry for a")
	}
	if entry.Fingerprint != 0xaa || entry.OutputPath != out {
		t.Errorf("unexpected entry: %+v", entry)
	}
	if stats.Rebuilt != 1 || stats.Reused != 0 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestScheduler_Execute_FilterInputsResolved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	g := buildGraph(t, fileDef("a", "a.txt"), filterDef("bundle", "a"))
	plan := rebuildPlan(g, 0x1)
	aOut := plan.Steps[0].OutputPath
	bundleOut := plan.Steps[1].OutputPath

	mockFilter := mocks.NewMockAssetFilter(ctrl)
	mockFilter.EXPECT().Validate(gomock.Any()).Return(nil)
	// The filter receives its input's materialized output, not the source file.
	mockFilter.EXPECT().Apply(
		gomock.Any(),
		[]string{filepath.Join("dist", aOut)},
		filepath.Join("dist", bundleOut),
		gomock.Any(),
	).Return(nil)

	mockRegistry := mocks.NewMockFilterRegistry(ctrl)
	mockRegistry.EXPECT().Lookup("concat").Return(mockFilter, true).AnyTimes()

	mockOps := mocks.NewMockFileOps(ctrl)
	mockOps.EXPECT().EnsureDir(gomock.Any()).Return(nil).Times(2)
	mockOps.EXPECT().CopyFile(gomock.Any(), gomock.Any()).Return(nil)

	s := scheduler.NewScheduler(mockRegistry, mockOps, telemetry.NewNoop(), quietLogger(ctrl))
	state, stats, err := s.Execute(context.Background(), g, plan, layout, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Len() != 2 || stats.Rebuilt != 2 {
		t.Errorf("unexpected result: state %d entries, stats %+v", state.Len(), stats)
	}
}

func TestScheduler_Execute_Reuse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	g := buildGraph(t, fileDef("a", "a.txt"))
	plan := rebuildPlan(g, 0xaa)
	plan.Steps[0].Action = domain.ActionReuse
	out := plan.Steps[0].OutputPath

	mockRegistry := mocks.NewMockFilterRegistry(ctrl)
	mockOps := mocks.NewMockFileOps(ctrl)
	mockOps.EXPECT().Exists(filepath.Join("dist", out)).Return(true)

	s := scheduler.NewScheduler(mockRegistry, mockOps, telemetry.NewNoop(), quietLogger(ctrl))
	state, stats, err := s.Execute(context.Background(), g, plan, layout, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Reused != 1 || stats.Rebuilt != 0 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if _, ok := state.Get(domain.NewInternedString("a")); !ok {
		t.Error("expected reused step to be recorded in state")
	}
}

func TestScheduler_Execute_ReuseDegradesWhenOutputMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	g := buildGraph(t, fileDef("a", "a.txt"))
	plan := rebuildPlan(g, 0xaa)
	plan.Steps[0].Action = domain.ActionReuse
	out := plan.Steps[0].OutputPath

	mockRegistry := mocks.NewMockFilterRegistry(ctrl)
	mockOps := mocks.NewMockFileOps(ctrl)
	mockOps.EXPECT().Exists(filepath.Join("dist", out)).Return(false)
	mockOps.EXPECT().EnsureDir(gomock.Any()).Return(nil)
	mockOps.EXPECT().CopyFile(gomock.Any(), gomock.Any()).Return(nil)

	s := scheduler.NewScheduler(mockRegistry, mockOps, telemetry.NewNoop(), quietLogger(ctrl))
	_, stats, err := s.Execute(context.Background(), g, plan, layout, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Rebuilt != 1 || stats.Reused != 0 {
		t.Errorf("expected the vanished output to be rebuilt, got %+v", stats)
	}
}

func TestScheduler_Execute_UnknownFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	g := buildGraph(t, fileDef("a", "a.txt"), filterDef("bundle", "a"))
	plan := rebuildPlan(g, 0x1)

	mockRegistry := mocks.NewMockFilterRegistry(ctrl)
	mockRegistry.EXPECT().Lookup("concat").Return(nil, false)

	// Preflight fails before any file operation happens.
	mockOps := mocks.NewMockFileOps(ctrl)

	s := scheduler.NewScheduler(mockRegistry, mockOps, telemetry.NewNoop(), quietLogger(ctrl))
	_, _, err := s.Execute(context.Background(), g, plan, layout, 2)
	if !errors.Is(err, domain.ErrUnknownFilter) {
		t.Errorf("expected ErrUnknownFilter, got %v", err)
	}
}

func TestScheduler_Execute_ValidateFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	g := buildGraph(t, fileDef("a", "a.txt"), filterDef("bundle", "a"))
	plan := rebuildPlan(g, 0x1)

	mockFilter := mocks.NewMockAssetFilter(ctrl)
	mockFilter.EXPECT().Validate(gomock.Any()).Return(errors.New("bad options"))

	mockRegistry := mocks.NewMockFilterRegistry(ctrl)
	mockRegistry.EXPECT().Lookup("concat").Return(mockFilter, true)

	mockOps := mocks.NewMockFileOps(ctrl)

	s := scheduler.NewScheduler(mockRegistry, mockOps, telemetry.NewNoop(), quietLogger(ctrl))
	if _, _, err := s.Execute(context.Background(), g, plan, layout, 2); err == nil {
		t.Error("expected validation error, got nil")
	}
}

func TestScheduler_Execute_FilterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	g := buildGraph(t, fileDef("a", "a.txt"), filterDef("bundle", "a"))
	plan := rebuildPlan(g, 0x1)

	mockFilter := mocks.NewMockAssetFilter(ctrl)
	mockFilter.EXPECT().Validate(gomock.Any()).Return(nil)
	mockFilter.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("bad input"))

	mockRegistry := mocks.NewMockFilterRegistry(ctrl)
	mockRegistry.EXPECT().Lookup("concat").Return(mockFilter, true).AnyTimes()

	mockOps := mocks.NewMockFileOps(ctrl)
	mockOps.EXPECT().EnsureDir(gomock.Any()).Return(nil).Times(2)
	mockOps.EXPECT().CopyFile(gomock.Any(), gomock.Any()).Return(nil)

	s := scheduler.NewScheduler(mockRegistry, mockOps, telemetry.NewNoop(), quietLogger(ctrl))
	_, _, err := s.Execute(context.Background(), g, plan, layout, 2)
	if !errors.Is(err, domain.ErrFilterExecutionFailed) {
		t.Errorf("expected ErrFilterExecutionFailed, got %v", err)
	}
}

func TestScheduler_Execute_FailureStopsDispatch(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		g := buildGraph(t, fileDef("a", "a.txt"), fileDef("b", "b.txt"))
		plan := rebuildPlan(g, 0x1)

		mockRegistry := mocks.NewMockFilterRegistry(ctrl)
		mockOps := mocks.NewMockFileOps(ctrl)
		// With a single worker, a's failure must prevent b from dispatching.
		mockOps.EXPECT().EnsureDir(gomock.Any()).Return(nil)
		mockOps.EXPECT().CopyFile(filepath.Join("src", "a.txt"), gomock.Any()).Return(errors.New("disk full"))

		s := scheduler.NewScheduler(mockRegistry, mockOps, telemetry.NewNoop(), quietLogger(ctrl))
		_, _, err := s.Execute(context.Background(), g, plan, layout, 1)
		if !errors.Is(err, domain.ErrOutputWriteFailed) {
			t.Errorf("expected ErrOutputWriteFailed, got %v", err)
		}
	})
}

func TestScheduler_Execute_ParallelIndependentSteps(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		g := buildGraph(t, fileDef("a", "a.txt"), fileDef("b", "b.txt"))
		plan := rebuildPlan(g, 0x1)

		aStarted := make(chan struct{})
		bStarted := make(chan struct{})
		proceed := make(chan struct{})

		mockRegistry := mocks.NewMockFilterRegistry(ctrl)
		mockOps := mocks.NewMockFileOps(ctrl)
		mockOps.EXPECT().EnsureDir(gomock.Any()).Return(nil).Times(2)
		mockOps.EXPECT().CopyFile(gomock.Any(), gomock.Any()).DoAndReturn(func(src, _ string) error {
			switch filepath.Base(src) {
			case "a.txt":
				close(aStarted)
			case "b.txt":
				close(bStarted)
			}
			<-proceed
			return nil
		}).Times(2)

		s := scheduler.NewScheduler(mockRegistry, mockOps, telemetry.NewNoop(), quietLogger(ctrl))

		errCh := make(chan error)
		var stats scheduler.Stats
		go func() {
			var err error
			_, stats, err = s.Execute(context.Background(), g, plan, layout, 2)
			errCh <- err
		}()

		// Both independent steps must run at the same time with two workers.
		<-aStarted
		<-bStarted
		close(proceed)

		if err := <-errCh; err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if stats.Rebuilt != 2 {
			t.Errorf("expected 2 rebuilds, got %+v", stats)
		}
	})
}

func TestScheduler_Execute_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	g := buildGraph(t, fileDef("a", "a.txt"))
	plan := rebuildPlan(g, 0x1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mockRegistry := mocks.NewMockFilterRegistry(ctrl)
	mockOps := mocks.NewMockFileOps(ctrl)

	s := scheduler.NewScheduler(mockRegistry, mockOps, telemetry.NewNoop(), quietLogger(ctrl))
	if _, _, err := s.Execute(ctx, g, plan, layout, 2); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
