package domain

import (
	"iter"
	"sort"

	"go.trai.ch/zerr"
)

// Graph is the asset dependency graph derived from a manifest: one node per
// asset, one edge from each filtered asset to each of its inputs. It is built
// once per pack run and never mutated afterwards.
type Graph struct {
	manifest   *Manifest
	order      []InternedString // topological, dependencies first
	dependents map[InternedString][]InternedString
	declIndex  map[InternedString]int
}

// BuildGraph validates the manifest and constructs its dependency graph.
// It checks that every referenced name exists (public assets and filter
// inputs), that output bases stay inside the output root, and that the graph
// is acyclic. Pure function over the manifest; no I/O.
func BuildGraph(m *Manifest) (*Graph, error) {
	g := &Graph{
		manifest:   m,
		dependents: make(map[InternedString][]InternedString),
		declIndex:  make(map[InternedString]int, m.Len()),
	}
	for i, name := range m.Names() {
		g.declIndex[name] = i
	}

	if err := g.validateReferences(); err != nil {
		return nil, err
	}
	if err := g.checkCycles(); err != nil {
		return nil, err
	}
	g.buildOrder()
	return g, nil
}

func (g *Graph) validateReferences() error {
	for _, name := range g.manifest.Names() {
		def, _ := g.manifest.Asset(name)
		if !validOutputBase(def.OutputBase) {
			return zerr.With(ErrInvalidOutputPath, "asset", name.String())
		}
		if def.Source.Kind != SourceFiltered {
			continue
		}
		for _, input := range def.Source.Inputs {
			if _, ok := g.manifest.Asset(input); !ok {
				return zerr.With(zerr.With(ErrUnknownAsset, "asset", input.String()), "referenced_by", name.String())
			}
			g.dependents[input] = append(g.dependents[input], name)
		}
	}
	for _, name := range g.manifest.Public() {
		if _, ok := g.manifest.Asset(name); !ok {
			return zerr.With(zerr.With(ErrUnknownAsset, "asset", name.String()), "referenced_by", "public_assets")
		}
	}
	return nil
}

// checkCycles runs a depth-first traversal tracking the in-progress path so a
// detected cycle can be reported in full, not just its first repeated node.
func (g *Graph) checkCycles() error {
	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	visited := make(map[InternedString]int, g.manifest.Len())
	var path []InternedString

	var visit func(u InternedString) error
	visit = func(u InternedString) error {
		visited[u] = visiting
		path = append(path, u)

		def, _ := g.manifest.Asset(u)
		for _, dep := range g.Dependencies(def) {
			switch visited[dep] {
			case visiting:
				return g.buildCycleError(path, dep)
			case unvisited:
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = done
		path = path[:len(path)-1]
		return nil
	}

	for _, name := range g.manifest.Names() {
		if visited[name] == unvisited {
			if err := visit(name); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Graph) buildCycleError(path []InternedString, dep InternedString) error {
	start := 0
	for i, node := range path {
		if node == dep {
			start = i
			break
		}
	}
	cyclePath := ""
	for _, node := range path[start:] {
		cyclePath += node.String() + " -> "
	}
	cyclePath += dep.String()
	return zerr.With(ErrCycleDetected, "cycle", cyclePath)
}

// buildOrder computes a topological order with Kahn's algorithm. Ties among
// simultaneously ready nodes are broken by manifest declaration order so the
// plan is deterministic across runs.
func (g *Graph) buildOrder() {
	inDegree := make(map[InternedString]int, g.manifest.Len())
	var ready []InternedString
	for _, name := range g.manifest.Names() {
		def, _ := g.manifest.Asset(name)
		inDegree[name] = len(g.Dependencies(def))
		if inDegree[name] == 0 {
			ready = append(ready, name)
		}
	}

	g.order = make([]InternedString, 0, g.manifest.Len())
	for len(ready) > 0 {
		sort.Slice(ready, func(i, j int) bool {
			return g.declIndex[ready[i]] < g.declIndex[ready[j]]
		})
		next := ready[0]
		ready = ready[1:]
		g.order = append(g.order, next)

		for _, dep := range g.dependents[next] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				ready = append(ready, dep)
			}
		}
	}
}

// Dependencies returns the input names of def, in declared order. File assets
// have none.
func (g *Graph) Dependencies(def AssetDefinition) []InternedString {
	if def.Source.Kind != SourceFiltered {
		return nil
	}
	return def.Source.Inputs
}

// Dependents returns the assets that consume name as an input.
func (g *Graph) Dependents(name InternedString) []InternedString {
	return g.dependents[name]
}

// Manifest returns the manifest this graph was built from.
func (g *Graph) Manifest() *Manifest {
	return g.manifest
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return g.manifest.Len()
}

// Walk returns an iterator yielding asset definitions in dependency order:
// every asset is yielded after all of its inputs.
func (g *Graph) Walk() iter.Seq[AssetDefinition] {
	return func(yield func(AssetDefinition) bool) {
		for _, name := range g.order {
			def, _ := g.manifest.Asset(name)
			if !yield(def) {
				return
			}
		}
	}
}
