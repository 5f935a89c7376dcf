package domain

import "go.trai.ch/zerr"

// Manifest is the in-memory representation of the asset definitions and the
// public-asset set. It is read-only once loaded; declaration order is kept
// because it breaks ties when ordering the build plan.
type Manifest struct {
	assets map[InternedString]AssetDefinition
	order  []InternedString
	public []InternedString
}

// NewManifest creates an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{
		assets: make(map[InternedString]AssetDefinition),
	}
}

// AddAsset adds a definition to the manifest.
// It returns an error if a definition with the same name already exists.
func (m *Manifest) AddAsset(def AssetDefinition) error {
	if _, exists := m.assets[def.Name]; exists {
		return zerr.With(ErrDuplicateAsset, "asset", def.Name.String())
	}
	m.assets[def.Name] = def
	m.order = append(m.order, def.Name)
	return nil
}

// AddPublic marks an asset name as public. Existence is checked when the
// dependency graph is built, not here.
func (m *Manifest) AddPublic(name InternedString) {
	m.public = append(m.public, name)
}

// Asset returns the definition for name.
func (m *Manifest) Asset(name InternedString) (AssetDefinition, bool) {
	def, ok := m.assets[name]
	return def, ok
}

// Names returns all asset names in declaration order.
func (m *Manifest) Names() []InternedString {
	out := make([]InternedString, len(m.order))
	copy(out, m.order)
	return out
}

// Public returns the public asset names in declaration order.
func (m *Manifest) Public() []InternedString {
	out := make([]InternedString, len(m.public))
	copy(out, m.public)
	return out
}

// Len returns the number of asset definitions.
func (m *Manifest) Len() int {
	return len(m.assets)
}
