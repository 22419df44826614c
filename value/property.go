package value

import (
	"isis-core/kind"
)

// Property is a nullable cell holding zero or one Value. The zero Property
// is empty, which is distinct from holding a default payload.
//
// Copying a Property copies the reference to its Value; use Clone for an
// independent cell. The kind of a non-empty Property only changes through
// Replace, which the conversion layer uses to re-type it.
type Property struct {
	v Value
}

// NewProperty wraps a native payload into a Property.
func NewProperty[T Payload](v T) Property {
	return Property{v: New(v)}
}

// PropertyOf wraps an existing Value, nil yields an empty Property.
func PropertyOf(v Value) Property {
	return Property{v: v}
}

func (p Property) IsEmpty() bool { return p.v == nil }

// Value returns the held value, nil when empty.
func (p Property) Value() Value { return p.v }

// Kind returns the kind of the held value, 0 when empty.
func (p Property) Kind() kind.KindEnum { return KindOfValue(p.v) }

// TypeName returns the type name of the held value, empty when empty.
func (p Property) TypeName() string {
	if p.v == nil {
		return ""
	}

	return p.v.TypeName()
}

func (p Property) String() string {
	return p.ToString(false)
}

func (p Property) ToString(labeled bool) string {
	if p.v == nil {
		return ""
	}

	return p.v.ToString(labeled)
}

func (p Property) Clone() Property {
	if p.v == nil {
		return Property{}
	}

	return Property{v: p.v.Clone()}
}

// Equal compares the held values, two empty properties are equal.
func (p Property) Equal(o Property) bool {
	if p.v == nil || o.v == nil {
		return p.v == nil && o.v == nil
	}

	return p.v.Equal(o.v)
}

// Replace swaps the held value and returns the previous one.
func (p *Property) Replace(v Value) Value {
	old := p.v
	p.v = v

	return old
}

// Reset empties the property.
func (p *Property) Reset() {
	p.v = nil
}

// Get reads the payload of p as T. It panics with a *CastError if p is
// empty or holds another kind.
func Get[T Payload](p Property) T {
	return *CastTo[T](p.v)
}

// Set stores v into p. An empty property takes the kind of T, a non-empty
// one must already hold a T, otherwise Set panics with a *CastError.
func Set[T Payload](p *Property, v T) {
	if p.v == nil {
		p.v = New(v)
		return
	}

	*CastTo[T](p.v) = v
}

// PropertyIs reports whether p holds a T.
func PropertyIs[T Payload](p Property) bool {
	return Is[T](p.v)
}
