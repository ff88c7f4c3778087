package config

import "gopkg.in/yaml.v3"

// CatalogFile represents the structure of the taskid.yaml catalog file.
type CatalogFile struct {
	Version string             `yaml:"version"`
	Tasks   map[string]TaskDTO `yaml:"tasks"`
}

// TaskDTO represents a task declaration in the catalog.
type TaskDTO struct {
	Params []ParamDTO `yaml:"params"`
}

// ParamDTO represents a parameter declaration.
// Default is kept as a raw node so its text goes through the parameter's own codec.
type ParamDTO struct {
	Name        string     `yaml:"name"`
	Kind        string     `yaml:"kind"`
	Significant *bool      `yaml:"significant"`
	Repeated    bool       `yaml:"repeated"`
	Default     *yaml.Node `yaml:"default"`
}
