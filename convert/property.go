package convert

import (
	"fmt"
	"maps"
	"slices"

	"isis-core/internal/diagnostic"
	"isis-core/kind"
	"isis-core/value"
)

// Transform re-types the property to kind k. The property keeps its value
// if the conversion fails.
func (r *Registry) Transform(p *value.Property, k kind.KindEnum) error {
	if p.IsEmpty() {
		return ErrEmptyProperty
	}

	if p.Kind() == k {
		return nil
	}

	res, err := r.Generate(p.Value(), k)
	if err != nil {
		return err
	}

	p.Replace(res)

	return nil
}

// As reads the property as T, converting a copy if it holds another kind.
func As[T value.Payload](r *Registry, p value.Property) (T, error) {
	var zero T
	if p.IsEmpty() {
		return zero, ErrEmptyProperty
	}

	res, err := r.Generate(p.Value(), value.KindOf[T]())
	if err != nil {
		return zero, err
	}

	return *value.CastTo[T](res), nil
}

// MissingPropertyError reports a path that is not set, with the closest
// existing paths as suggestions.
type MissingPropertyError struct {
	Path        string
	Suggestions []string
}

func (e *MissingPropertyError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("%v: %s", ErrNoProperty, e.Path)
	}

	return fmt.Sprintf("%v: %s (did you mean %v?)", ErrNoProperty, e.Path, e.Suggestions)
}

func (e *MissingPropertyError) Unwrap() error {
	return ErrNoProperty
}

// GetAs reads the property at path of m as T through the default registry.
func GetAs[T value.Payload](m *value.PropMap, path string) (T, error) {
	p, ok := m.Lookup(path)
	if !ok {
		var zero T
		return zero, &MissingPropertyError{Path: path, Suggestions: m.Suggest(path, 3)}
	}

	return As[T](Default(), p)
}

// TransformAll re-types every property of m named in targets. A failing
// property is reported and keeps its value, the others are still converted.
func (r *Registry) TransformAll(m *value.PropMap, targets map[string]kind.KindEnum) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	for _, path := range slices.Sorted(maps.Keys(targets)) {
		k := targets[path]

		p, ok := m.Lookup(path)
		switch {
		case !ok:
			diags.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.DiagnosticError,
				Code:        diagnostic.CodeMissing,
				Message:     ErrNoProperty.Error(),
				FieldPath:   path,
				Suggestions: m.Suggest(path, 3),
			})

			continue
		case p.IsEmpty():
			diags.AddWarning(diagnostic.CodeEmpty, ErrEmptyProperty.Error(), "", path)

			continue
		}

		pair := ConversionPair{From: p.Kind(), To: k}
		if pair.From == pair.To {
			continue
		}

		cell, err := m.PropertyValue(path)
		if err == nil {
			err = r.Transform(cell, k)
		}

		if err != nil {
			diags.AddError(StatusOf(err).Code(), err.Error(), pair.String(), path)
			continue
		}

		diags.AddInfo(diagnostic.CodeConverted, "converted to "+k.TypeName(), pair.String(), path)
	}

	return diags
}

// Code returns the diagnostic code reporting a conversion with this status.
func (s Status) Code() string {
	switch s {
	case StatusOK:
		return ""
	case StatusUnsupported:
		return diagnostic.CodeUnsupported
	case StatusOverflow:
		return diagnostic.CodeOverflow
	case StatusAmbiguous:
		return diagnostic.CodeAmbiguous
	default:
		return diagnostic.CodeConversion
	}
}
