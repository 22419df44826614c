package value

import (
	"fmt"
	"slices"
	"time"

	"isis-core/kind"
)

// Value is a type-erased holder of exactly one payload. Typed is the only
// implementation, the set of kinds is closed.
//
// Equality is only defined between values of the same kind,
// Equal returns false across kinds.
type Value interface {
	Kind() kind.KindEnum
	TypeID() uint16
	TypeName() string
	String() string
	ToString(labeled bool) string
	Equal(other Value) bool
	Clone() Value

	payload() any
	copyFrom(src Value)
	isNil() bool
}

// Typed is the concrete Value for payload type T.
type Typed[T Payload] struct {
	v T
}

var _ Value = (*Typed[int8])(nil)

func New[T Payload](v T) *Typed[T] {
	return &Typed[T]{v: v}
}

func (t *Typed[T]) Get() T  { return t.v }
func (t *Typed[T]) Set(v T) { t.v = v }
func (t *Typed[T]) Ptr() *T { return &t.v }

func (t *Typed[T]) Kind() kind.KindEnum { return KindOf[T]() }
func (t *Typed[T]) TypeID() uint16      { return t.Kind().ID() }
func (t *Typed[T]) TypeName() string    { return t.Kind().TypeName() }

func (t *Typed[T]) payload() any { return t.v }
func (t *Typed[T]) isNil() bool  { return t == nil }

func (t *Typed[T]) String() string {
	return formatPayload(any(t.v))
}

// ToString renders the payload, labeled output appends the type name: "42(s16bit)".
func (t *Typed[T]) ToString(labeled bool) string {
	if labeled {
		return t.String() + "(" + t.TypeName() + ")"
	}

	return t.String()
}

func (t *Typed[T]) Equal(other Value) bool {
	o, ok := other.(*Typed[T])
	if !ok || o == nil {
		return false
	}

	return equalPayload(any(t.v), any(o.v))
}

// Clone returns an independent copy, lists and maps are copied deeply.
func (t *Typed[T]) Clone() Value {
	return &Typed[T]{v: clonePayload(t.v)}
}

// CastError reports a downcast to a payload type that does not match the stored kind.
type CastError struct {
	Have kind.KindEnum
	Want kind.KindEnum
}

func (e *CastError) Error() string {
	if !e.Have.IsValid() {
		return fmt.Sprintf("cannot cast an empty value to %s", e.Want.TypeName())
	}

	return fmt.Sprintf("cannot cast a value of type %s to %s", e.Have.TypeName(), e.Want.TypeName())
}

// Is reports whether v holds a payload of type T.
func Is[T Payload](v Value) bool {
	_, ok := v.(*Typed[T])
	return ok
}

// CastTo returns a pointer to the payload of v for in-place mutation.
// It panics with a *CastError if v does not hold a T.
func CastTo[T Payload](v Value) *T {
	t, ok := v.(*Typed[T])
	if !ok || t == nil {
		panic(&CastError{Have: KindOfValue(v), Want: KindOf[T]()})
	}

	return &t.v
}

// IsNil reports whether v holds no payload at all, either a nil interface
// or a nil *Typed.
func IsNil(v Value) bool {
	return v == nil || v.isNil()
}

// KindOfValue returns the kind of v, 0 for nil.
func KindOfValue(v Value) kind.KindEnum {
	if IsNil(v) {
		return 0
	}

	return v.Kind()
}

func equalPayload(a, b any) bool {
	switch x := a.(type) {
	case []int32:
		return slices.Equal(x, b.([]int32))
	case []float64:
		return slices.Equal(x, b.([]float64))
	case []string:
		return slices.Equal(x, b.([]string))
	case time.Time:
		return x.Equal(b.(time.Time))
	case *PropMap:
		return x.Equal(b.(*PropMap))
	}

	return a == b
}

func clonePayload[T Payload](v T) T {
	switch x := any(v).(type) {
	case []int32:
		return any(slices.Clone(x)).(T)
	case []float64:
		return any(slices.Clone(x)).(T)
	case []string:
		return any(slices.Clone(x)).(T)
	case *PropMap:
		return any(x.Clone()).(T)
	}

	return v
}
