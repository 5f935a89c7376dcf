package config

import "gopkg.in/yaml.v3"

// manifestFile represents the structure of the assets.yaml manifest file.
// The assets mapping is kept as a raw node to preserve declaration order.
type manifestFile struct {
	Assets yaml.Node `yaml:"assets"`
	Public []string  `yaml:"public"`
}

// assetDTO represents a single asset definition in the manifest.
// Exactly one of File or Filter must be set.
type assetDTO struct {
	OutputBase string               `yaml:"output_base"`
	Extension  string               `yaml:"extension"`
	File       string               `yaml:"file"`
	Filter     string               `yaml:"filter"`
	Inputs     []string             `yaml:"inputs"`
	Options    map[string]yaml.Node `yaml:"options"`
}
