// Package config provides the YAML manifest loader for pak.
package config

import (
	"os"

	"go.trai.ch/pak/internal/core/domain"
	"go.trai.ch/pak/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ManifestLoader = (*Loader)(nil)

// Loader implements ports.ManifestLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads a manifest file from the given path. Asset declaration order is
// preserved because it breaks ties in the build plan.
func (l *Loader) Load(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read manifest file")
	}
	return Parse(data)
}

// Parse decodes manifest YAML into a domain.Manifest.
func Parse(data []byte) (*domain.Manifest, error) {
	var file manifestFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse manifest file")
	}

	m := domain.NewManifest()

	// The assets mapping is walked as a raw node so declaration order
	// survives; a map[string]assetDTO would shuffle it.
	if file.Assets.Kind != 0 {
		if file.Assets.Kind != yaml.MappingNode {
			return nil, zerr.New("manifest 'assets' must be a mapping")
		}
		for i := 0; i+1 < len(file.Assets.Content); i += 2 {
			name := file.Assets.Content[i].Value
			var dto assetDTO
			if err := file.Assets.Content[i+1].Decode(&dto); err != nil {
				return nil, zerr.With(zerr.Wrap(err, "failed to decode asset definition"), "asset", name)
			}
			def, err := dto.toDomain(name)
			if err != nil {
				return nil, err
			}
			if err := m.AddAsset(def); err != nil {
				return nil, err
			}
		}
	}

	for _, name := range file.Public {
		m.AddPublic(domain.NewInternedString(name))
	}

	return m, nil
}

func (dto *assetDTO) toDomain(name string) (domain.AssetDefinition, error) {
	def := domain.AssetDefinition{
		Name:       domain.NewInternedString(name),
		OutputBase: dto.OutputBase,
		Extension:  dto.Extension,
	}

	if def.Extension == "" {
		return def, zerr.With(zerr.New("asset is missing an extension"), "asset", name)
	}

	switch {
	case dto.File != "" && dto.Filter != "":
		return def, zerr.With(zerr.New("asset declares both 'file' and 'filter'"), "asset", name)
	case dto.File != "":
		def.Source = domain.AssetSource{
			Kind: domain.SourceFile,
			Path: dto.File,
		}
	case dto.Filter != "":
		opts, err := decodeOptions(dto.Options)
		if err != nil {
			return def, zerr.With(err, "asset", name)
		}
		def.Source = domain.AssetSource{
			Kind:          domain.SourceFiltered,
			FilterName:    dto.Filter,
			Inputs:        internStrings(dto.Inputs),
			FilterOptions: opts,
		}
	default:
		return def, zerr.With(zerr.New("asset declares neither 'file' nor 'filter'"), "asset", name)
	}

	return def, nil
}

// decodeOptions maps YAML option values onto the tagged OptionValue variants:
// null becomes a Flag, booleans become Bool, other scalars become String, and
// sequences become StringVec.
func decodeOptions(raw map[string]yaml.Node) (domain.Options, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	opts := make(domain.Options, len(raw))
	for key, node := range raw {
		switch node.Kind {
		case yaml.ScalarNode:
			switch node.Tag {
			case "!!null":
				opts[key] = domain.FlagValue()
			case "!!bool":
				var b bool
				if err := node.Decode(&b); err != nil {
					return nil, zerr.With(zerr.Wrap(err, "failed to decode bool option"), "option", key)
				}
				opts[key] = domain.BoolValue(b)
			default:
				opts[key] = domain.StringValue(node.Value)
			}
		case yaml.SequenceNode:
			var vs []string
			if err := node.Decode(&vs); err != nil {
				return nil, zerr.With(zerr.Wrap(err, "failed to decode list option"), "option", key)
			}
			opts[key] = domain.StringVecValue(vs...)
		default:
			return nil, zerr.With(zerr.New("option value must be a scalar or a list"), "option", key)
		}
	}
	return opts, nil
}

func internStrings(strs []string) []domain.InternedString {
	res := make([]domain.InternedString, len(strs))
	for i, s := range strs {
		res[i] = domain.NewInternedString(s)
	}
	return res
}
