// Package domain contains the core domain models for the asset dependency
// graph and the incremental pack run.
package domain

import (
	"path"
	"path/filepath"
	"strings"
)

// SourceKind identifies the variant held by an AssetSource.
type SourceKind uint8

const (
	// SourceFile is a leaf asset backed by a file in the source tree.
	SourceFile SourceKind = iota
	// SourceFiltered is an asset produced by running a filter over other assets.
	SourceFiltered
)

// AssetSource describes where an asset's content comes from. Exactly one
// variant is populated, selected by Kind.
type AssetSource struct {
	Kind SourceKind

	// Path is the source-relative file path. SourceFile only.
	Path string

	// FilterName, Inputs and FilterOptions describe the transformation.
	// SourceFiltered only. Input order is semantically meaningful: it is the
	// argument order passed to the filter and the fingerprint composition order.
	FilterName    string
	Inputs        []InternedString
	FilterOptions Options
}

// AssetDefinition is a single named, buildable unit of web content.
// Definitions are immutable for the duration of a pack run.
type AssetDefinition struct {
	Name       InternedString
	OutputBase string
	Extension  string
	Source     AssetSource
}

// VersionedPath returns the output path for this asset at the given
// fingerprint: <output_base?>/<name>-<fingerprint>.<extension>. The path is
// relative to the output root and unique per (name, fingerprint) pair.
func (d *AssetDefinition) VersionedPath(fp Fingerprint) string {
	stem := d.Name.String() + "-" + fp.Hex() + "." + d.Extension
	if d.OutputBase == "" {
		return stem
	}
	return path.Join(d.OutputBase, stem)
}

// validOutputBase reports whether base stays inside the output root.
func validOutputBase(base string) bool {
	if base == "" {
		return true
	}
	if filepath.IsAbs(base) {
		return false
	}
	clean := path.Clean(filepath.ToSlash(base))
	return clean != ".." && !strings.HasPrefix(clean, "../")
}
