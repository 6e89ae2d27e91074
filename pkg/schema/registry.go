package schema

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Registry holds compiled forms keyed by name.
type Registry struct {
	names []string
	specs map[string]FormSpec
	forms map[string][]form.Field
}

// Compile converts every rule spec into validator rules.
func (d Document) Compile() (*Registry, error) {
	if len(d.Forms) == 0 {
		return nil, ErrNoForms
	}

	reg := &Registry{
		specs: make(map[string]FormSpec, len(d.Forms)),
		forms: make(map[string][]form.Field, len(d.Forms)),
	}

	for name, spec := range d.Forms {
		fields := make([]form.Field, 0, len(spec.Fields))
		for _, fs := range spec.Fields {
			rules := make([]validator.Rule, 0, len(fs.Rules))
			for i, rs := range fs.Rules {
				rule, err := CompileRule(rs)
				if err != nil {
					return nil, fmt.Errorf("form %q field %q rule %d: %w", name, fs.Name, i, err)
				}
				rules = append(rules, rule)
			}
			fields = append(fields, form.Field{Name: fs.Name, Rules: rules})
		}

		// Surface empty or duplicate field names at load time.
		if _, err := form.New(fields); err != nil {
			return nil, fmt.Errorf("form %q: %w: %w", name, ErrInvalidFormField, err)
		}

		reg.names = append(reg.names, name)
		reg.specs[name] = spec
		reg.forms[name] = fields
	}
	slices.Sort(reg.names)

	return reg, nil
}

// CompileRule builds a validator rule from its declaration. Kinds added with
// validator.Register are accepted and receive Min/Max as constraints.
func CompileRule(rs RuleSpec) (validator.Rule, error) {
	kind := validator.Kind(rs.Type)

	switch kind {
	case validator.KindIsRequired:
		return validator.IsRequired(), nil

	case validator.KindLength, validator.KindHasMinMax:
		if rs.Max == nil {
			return validator.Rule{}, fmt.Errorf("%w: %s", ErrMissingMax, kind)
		}
		c := validator.Constraints{Min: rs.Min, Max: *rs.Max}
		if kind == validator.KindLength {
			return validator.HasLength(c), nil
		}
		return validator.HasMinMax(c), nil

	case validator.KindHasFormat:
		if rs.Pattern == "" {
			return validator.Rule{}, ErrMissingPattern
		}
		re, err := regexp.Compile(rs.Pattern)
		if err != nil {
			return validator.Rule{}, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
		}
		return validator.HasFormat(re, rs.Message), nil
	}

	if kind != "" && validator.Registered(kind) {
		c := validator.Constraints{Min: rs.Min}
		if rs.Max != nil {
			c.Max = *rs.Max
		}
		return validator.Custom(kind, c), nil
	}

	return validator.Rule{}, fmt.Errorf("%w: %q", ErrUnknownRuleType, rs.Type)
}

// Names returns form names in sorted order.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// Spec returns the declaration a form was compiled from.
func (r *Registry) Spec(name string) (FormSpec, bool) {
	spec, ok := r.specs[name]
	return spec, ok
}

// Fields returns the compiled fields of a form.
func (r *Registry) Fields(name string) ([]form.Field, bool) {
	fields, ok := r.forms[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(fields), true
}

// NewForm creates a fresh form instance bound to the named definition.
func (r *Registry) NewForm(name string, opts ...form.Option) (*form.Form, error) {
	fields, ok := r.forms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownForm, name)
	}
	return form.New(fields, append([]form.Option{form.WithName(name)}, opts...)...)
}
