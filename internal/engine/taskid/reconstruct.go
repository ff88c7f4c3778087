package taskid

import (
	"maps"

	"go.trai.ch/taskid/internal/core/domain"
	"go.trai.ch/zerr"
)

// Reconstruct builds a typed instance of desc from raw parameters.
//
// Each declared parameter takes its supplied raw value parsed through its kind,
// else its default, else reconstruction fails with *domain.MissingParameterError.
// Significance plays no part: an insignificant parameter without a default is
// still required. Raw keys the descriptor does not declare are ignored.
func Reconstruct(desc *domain.TaskDescriptor, raw domain.RawParams) (*domain.TaskInstance, error) {
	values := make(map[string]domain.Value, len(raw))
	for _, p := range desc.Params() {
		r, ok := raw[p.Name]
		if !ok {
			continue
		}
		v, err := parseRaw(p, r)
		if err != nil {
			return nil, err
		}
		values[p.Name] = v
	}
	return build(desc, values)
}

// New builds an instance of desc from typed values, applying defaults for
// parameters that are not supplied.
func New(desc *domain.TaskDescriptor, values map[string]domain.Value) (*domain.TaskInstance, error) {
	return build(desc, maps.Clone(values))
}

// ToStrParams renders every parameter of t, significant or not, to its raw form.
// Reconstruct(t.Descriptor(), ToStrParams(t)) yields an instance equal to t.
func ToStrParams(t *domain.TaskInstance) domain.RawParams {
	raw := make(domain.RawParams)
	for name, v := range t.Values() {
		if !v.IsList() {
			raw[name] = domain.RawScalar(v.Render())
			continue
		}
		elems := v.Elems()
		rendered := make([]string, len(elems))
		for i, e := range elems {
			rendered[i] = e.Render()
		}
		raw[name] = domain.RawList(rendered...)
	}
	return raw
}

// Clone returns a new instance of the same task with some values replaced.
func Clone(t *domain.TaskInstance, overrides map[string]domain.Value) (*domain.TaskInstance, error) {
	values := make(map[string]domain.Value)
	for name, v := range t.Values() {
		values[name] = v
	}
	maps.Copy(values, overrides)
	return build(t.Descriptor(), values)
}

// Load looks a task up by name in the catalog and reconstructs it from raw parameters.
func Load(c *domain.Catalog, name string, raw domain.RawParams) (*domain.TaskInstance, error) {
	desc, err := c.Lookup(name)
	if err != nil {
		return nil, err
	}
	return Reconstruct(desc, raw)
}

// FromID parses a task id and reconstructs it against the catalog.
func FromID(c *domain.Catalog, id string) (*domain.TaskInstance, error) {
	name, raw, err := Parse(id)
	if err != nil {
		return nil, err
	}
	return Load(c, name, raw)
}

func build(desc *domain.TaskDescriptor, values map[string]domain.Value) (*domain.TaskInstance, error) {
	if values == nil {
		values = make(map[string]domain.Value)
	}
	for _, p := range desc.Params() {
		if _, ok := values[p.Name]; ok {
			continue
		}
		if !p.HasDefault {
			return nil, domain.NewMissingParameterError(desc.Name(), p.Name)
		}
		values[p.Name] = p.Default
	}
	return domain.NewTaskInstance(desc, values)
}

func parseRaw(p domain.ParameterDescriptor, r domain.RawValue) (domain.Value, error) {
	if !p.Repeated {
		if r.IsList() {
			return domain.Value{}, &domain.ValueParseError{Kind: p.Kind, Raw: r.String()}
		}
		return p.Kind.Parse(r.Scalar())
	}

	elems := r.List()
	if !r.IsList() {
		elems = []string{r.Scalar()}
	}
	parsed := make([]domain.Value, len(elems))
	for i, e := range elems {
		v, err := p.Kind.Parse(e)
		if err != nil {
			return domain.Value{}, err
		}
		parsed[i] = v
	}
	v, err := domain.ListValue(p.Kind, parsed...)
	if err != nil {
		return domain.Value{}, zerr.With(err, "parameter", p.Name)
	}
	return v, nil
}
