package domain

// ParameterDescriptor declares one named, typed parameter of a task.
type ParameterDescriptor struct {
	Name        string
	Kind        ParameterKind
	Significant bool
	Repeated    bool
	Default     Value
	HasDefault  bool
}

// ParameterOption configures a ParameterDescriptor built by NewParameter.
type ParameterOption func(*ParameterDescriptor)

// NewParameter declares a significant, required parameter of the given kind.
func NewParameter(name string, kind ParameterKind, opts ...ParameterOption) ParameterDescriptor {
	p := ParameterDescriptor{
		Name:        name,
		Kind:        kind,
		Significant: true,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Insignificant excludes the parameter from the task id.
// It does not make the parameter optional; only a default does.
func Insignificant() ParameterOption {
	return func(p *ParameterDescriptor) {
		p.Significant = false
	}
}

// WithDefault sets the value used when the parameter is not supplied.
func WithDefault(v Value) ParameterOption {
	return func(p *ParameterDescriptor) {
		p.Default = v
		p.HasDefault = true
	}
}

// Repeated makes the parameter hold a list of values of its kind.
func Repeated() ParameterOption {
	return func(p *ParameterDescriptor) {
		p.Repeated = true
	}
}

// Accepts reports whether v has the kind and shape this parameter declares.
func (p ParameterDescriptor) Accepts(v Value) bool {
	return v.Kind() == p.Kind && v.IsList() == p.Repeated
}
