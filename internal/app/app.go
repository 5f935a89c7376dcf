// Package app implements the application layer for pak.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"go.trai.ch/pak/internal/core/domain"
	"go.trai.ch/pak/internal/core/ports"
	"go.trai.ch/pak/internal/engine/packer"
	"go.trai.ch/zerr"
)

// PublicIndexName is the file written next to the packed assets that maps
// public asset names to their versioned paths.
const PublicIndexName = "public.json"

// App represents the main application logic.
type App struct {
	loader    ports.ManifestLoader
	store     ports.StateStore
	packer    *packer.Packer
	ops       ports.FileOps
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ManifestLoader,
	store ports.StateStore,
	pk *packer.Packer,
	ops ports.FileOps,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		loader:    loader,
		store:     store,
		packer:    pk,
		ops:       ops,
		telemetry: telemetry,
		logger:    logger,
	}
}

// PackOptions carries the per-invocation settings of a pack run.
type PackOptions struct {
	ManifestPath string
	StatePath    string
	Layout       domain.Layout
	Jobs         int
}

// Pack runs one full pack: load manifest and previous state, pack, persist
// the new state and the public index. The state file is only rewritten after
// the run succeeded, so a failed run retries against the old snapshot.
func (a *App) Pack(ctx context.Context, opts PackOptions) error {
	defer func() {
		if err := a.telemetry.Close(); err != nil {
			a.logger.Error(zerr.Wrap(err, "failed to close telemetry"))
		}
	}()

	manifest, err := a.loader.Load(opts.ManifestPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load manifest")
	}

	prev, err := a.store.Load(opts.StatePath)
	if err != nil {
		return zerr.Wrap(err, "failed to load build state")
	}

	jobs := opts.Jobs
	if jobs < 1 {
		jobs = runtime.NumCPU()
	}

	res, err := a.packer.Pack(ctx, manifest, prev, opts.Layout, jobs)
	if err != nil {
		return err
	}

	if err := a.store.Save(opts.StatePath, res.State); err != nil {
		return zerr.Wrap(err, "failed to save build state")
	}

	if err := a.writePublicIndex(opts.Layout.OutputDir, res.PublicPaths); err != nil {
		return err
	}

	for _, name := range slices.Sorted(maps.Keys(res.PublicPaths)) {
		a.logger.Info(fmt.Sprintf("public %s -> %s", name, res.PublicPaths[name]))
	}
	a.logger.Info(fmt.Sprintf(
		"packed %d assets (%d rebuilt, %d reused)",
		res.State.Len(), res.Stats.Rebuilt, res.Stats.Reused,
	))
	return nil
}

// CleanOptions carries the per-invocation settings of a clean run.
type CleanOptions struct {
	StatePath string
	OutputDir string
}

// Clean removes files under the output root that the recorded state does not
// claim. Stale versioned outputs accumulate as fingerprints move; this is the
// garbage collection pass.
func (a *App) Clean(opts CleanOptions) error {
	state, err := a.store.Load(opts.StatePath)
	if err != nil {
		return zerr.Wrap(err, "failed to load build state")
	}

	keep := make(map[string]struct{}, state.Len()+1)
	keep[PublicIndexName] = struct{}{}
	for _, entry := range state.Assets {
		keep[entry.OutputPath] = struct{}{}
	}

	files, err := a.ops.ListFiles(opts.OutputDir)
	if err != nil {
		return zerr.Wrap(err, "failed to list output files")
	}

	removed := 0
	for _, file := range files {
		if _, ok := keep[filepath.ToSlash(file)]; ok {
			continue
		}
		if err := a.ops.Remove(filepath.Join(opts.OutputDir, file)); err != nil {
			return zerr.Wrap(err, "failed to remove stale output")
		}
		a.logger.Info("removed " + filepath.ToSlash(file))
		removed++
	}

	a.logger.Info(fmt.Sprintf("removed %d stale files", removed))
	return nil
}

// writePublicIndex persists the public name -> versioned path map as JSON in
// the output root.
func (a *App) writePublicIndex(outputDir string, paths map[string]string) error {
	data, err := json.MarshalIndent(paths, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to encode public index")
	}
	if err := a.ops.EnsureDir(outputDir); err != nil {
		return err
	}
	target := filepath.Join(outputDir, PublicIndexName)
	if err := os.WriteFile(target, append(data, '\n'), 0o600); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write public index"), "path", target)
	}
	return nil
}
