// Package fingerprint computes content fingerprints for every asset in a
// dependency graph.
package fingerprint

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/pak/internal/core/domain"
	"go.trai.ch/pak/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Resolver computes fingerprints: file assets hash their literal source
// bytes, filtered assets hash filter identity + canonical options + the
// ordered input fingerprints. Because composition is transitive, a change
// anywhere upstream changes every downstream fingerprint without re-reading
// upstream bytes.
type Resolver struct {
	hasher ports.FileHasher
}

// NewResolver creates a new Resolver.
func NewResolver(hasher ports.FileHasher) *Resolver {
	return &Resolver{hasher: hasher}
}

// Resolve computes a fingerprint for every asset in the graph. Leaf files are
// hashed concurrently; composition then runs in dependency order.
func (r *Resolver) Resolve(ctx context.Context, g *domain.Graph, sourceDir string) (map[domain.InternedString]domain.Fingerprint, error) {
	fps := make(map[domain.InternedString]domain.Fingerprint, g.Len())

	if err := r.hashLeaves(ctx, g, sourceDir, fps); err != nil {
		return nil, err
	}

	for def := range g.Walk() {
		if def.Source.Kind != domain.SourceFiltered {
			continue
		}
		fps[def.Name] = composeFingerprint(&def, fps)
	}

	return fps, nil
}

// hashLeaves hashes all file-sourced assets, bounded by the CPU count. The
// fingerprint map is only written under the mutex; the graph walk that
// follows runs strictly after Wait.
func (r *Resolver) hashLeaves(ctx context.Context, g *domain.Graph, sourceDir string, fps map[domain.InternedString]domain.Fingerprint) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.NumCPU())

	var mu sync.Mutex
	for def := range g.Walk() {
		if def.Source.Kind != domain.SourceFile {
			continue
		}
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(sourceDir, def.Source.Path)
			if _, err := os.Stat(path); err != nil {
				if os.IsNotExist(err) {
					err = zerr.With(domain.ErrSourceFileMissing, "path", def.Source.Path)
					return zerr.With(err, "asset", def.Name.String())
				}
				return zerr.With(zerr.Wrap(err, "failed to stat source file"), "path", path)
			}
			sum, err := r.hasher.HashFile(path)
			if err != nil {
				return zerr.With(err, "asset", def.Name.String())
			}
			mu.Lock()
			fps[def.Name] = domain.Fingerprint(sum)
			mu.Unlock()
			return nil
		})
	}

	return eg.Wait()
}

// composeFingerprint digests the filter name, the canonical option bytes,
// and the input fingerprints in declared order, NUL-separated.
func composeFingerprint(def *domain.AssetDefinition, fps map[domain.InternedString]domain.Fingerprint) domain.Fingerprint {
	d := xxhash.New()
	_, _ = d.WriteString(def.Source.FilterName)
	_, _ = d.Write([]byte{0})
	_, _ = d.Write(def.Source.FilterOptions.Canonical())
	_, _ = d.Write([]byte{0})
	for _, input := range def.Source.Inputs {
		_ = binary.Write(d, binary.LittleEndian, uint64(fps[input]))
	}
	return domain.Fingerprint(d.Sum64())
}
