// Package config provides the task catalog loader for taskid.
package config

import (
	"fmt"
	"os"
	"slices"

	"go.trai.ch/taskid/internal/core/domain"
	"go.trai.ch/taskid/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// CatalogVersion is the only catalog schema version understood by the loader.
const CatalogVersion = "1"

var _ ports.CatalogLoader = (*Loader)(nil)

// Loader implements ports.CatalogLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new catalog loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads a catalog file from the given path and returns a domain.Catalog.
func (l *Loader) Load(path string) (*domain.Catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read catalog file"), "path", path)
	}
	return l.Parse(data)
}

// Parse decodes catalog YAML into a domain.Catalog.
func (l *Loader) Parse(data []byte) (*domain.Catalog, error) {
	var file CatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse catalog file")
	}

	switch file.Version {
	case CatalogVersion:
	case "":
		l.logger.Warn(fmt.Sprintf("catalog version not set, assuming %q", CatalogVersion))
	default:
		return nil, zerr.With(zerr.New("unsupported catalog version"), "version", file.Version)
	}

	// Sort task names so the first reported error does not depend on map order.
	names := make([]string, 0, len(file.Tasks))
	for name := range file.Tasks {
		names = append(names, name)
	}
	slices.Sort(names)

	catalog := domain.NewCatalog()
	for _, name := range names {
		desc, err := buildDescriptor(name, file.Tasks[name])
		if err != nil {
			return nil, err
		}
		if err := catalog.Register(desc); err != nil {
			return nil, err
		}
	}

	return catalog, nil
}

func buildDescriptor(name string, dto TaskDTO) (*domain.TaskDescriptor, error) {
	params := make([]domain.ParameterDescriptor, 0, len(dto.Params))
	for _, p := range dto.Params {
		param, err := buildParameter(p)
		if err != nil {
			return nil, zerr.With(err, "task_name", name)
		}
		params = append(params, param)
	}
	return domain.NewTaskDescriptor(name, params...)
}

func buildParameter(dto ParamDTO) (domain.ParameterDescriptor, error) {
	kind, err := domain.ParseKind(dto.Kind)
	if err != nil {
		return domain.ParameterDescriptor{}, zerr.With(err, "parameter", dto.Name)
	}

	var opts []domain.ParameterOption
	if dto.Significant != nil && !*dto.Significant {
		opts = append(opts, domain.Insignificant())
	}
	if dto.Repeated {
		opts = append(opts, domain.Repeated())
	}
	if dto.Default != nil {
		def, err := parseDefault(kind, dto.Repeated, dto.Default)
		if err != nil {
			return domain.ParameterDescriptor{}, zerr.With(zerr.Wrap(err, "invalid default"), "parameter", dto.Name)
		}
		opts = append(opts, domain.WithDefault(def))
	}

	return domain.NewParameter(dto.Name, kind, opts...), nil
}

// parseDefault runs the default's YAML text through the parameter's codec, so
// defaults use the same wire format as task ids.
func parseDefault(kind domain.ParameterKind, repeated bool, node *yaml.Node) (domain.Value, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		v, err := kind.Parse(node.Value)
		if err != nil || !repeated {
			return v, err
		}
		return domain.ListValue(kind, v)

	case yaml.SequenceNode:
		if !repeated {
			return domain.Value{}, zerr.New("list default for a scalar parameter")
		}
		elems := make([]domain.Value, 0, len(node.Content))
		for _, child := range node.Content {
			if child.Kind != yaml.ScalarNode {
				return domain.Value{}, zerr.With(zerr.New("list default elements must be scalars"), "line", child.Line)
			}
			v, err := kind.Parse(child.Value)
			if err != nil {
				return domain.Value{}, err
			}
			elems = append(elems, v)
		}
		return domain.ListValue(kind, elems...)

	default:
		return domain.Value{}, zerr.With(zerr.New("default must be a scalar or a list"), "line", node.Line)
	}
}
