package value

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// Kind agnostic payload access for the conversion layer. Every helper panics
// with a *CastError when the value is not of a suitable kind.

var ErrElementCount = errors.New("wrong number of elements")

// Copy overwrites the payload of dst with a deep copy of the payload of src.
// Both must be of the same kind.
func Copy(dst, src Value) {
	if IsNil(dst) {
		panic(&CastError{Want: KindOfValue(src)})
	}

	dst.copyFrom(src)
}

func (t *Typed[T]) copyFrom(src Value) {
	t.v = clonePayload(*CastTo[T](src))
}

// Number reads any number kind as float64. Every number kind is exactly
// representable in float64.
func Number(v Value) float64 {
	switch t := v.(type) {
	case *Typed[int8]:
		return float64(t.v)
	case *Typed[uint8]:
		return float64(t.v)
	case *Typed[int16]:
		return float64(t.v)
	case *Typed[uint16]:
		return float64(t.v)
	case *Typed[int32]:
		return float64(t.v)
	case *Typed[uint32]:
		return float64(t.v)
	case *Typed[float32]:
		return float64(t.v)
	case *Typed[float64]:
		return t.v
	}

	panic(&CastError{Have: KindOfValue(v), Want: 0})
}

// SetNumber stores f into a number kind with a plain Go conversion. The
// caller is responsible for rounding and range checks.
func SetNumber(v Value, f float64) {
	switch t := v.(type) {
	case *Typed[int8]:
		t.v = int8(f)
	case *Typed[uint8]:
		t.v = uint8(f)
	case *Typed[int16]:
		t.v = int16(f)
	case *Typed[uint16]:
		t.v = uint16(f)
	case *Typed[int32]:
		t.v = int32(f)
	case *Typed[uint32]:
		t.v = uint32(f)
	case *Typed[float32]:
		t.v = float32(f)
	case *Typed[float64]:
		t.v = f
	default:
		panic(&CastError{Have: KindOfValue(v), Want: 0})
	}
}

// UnixSeconds reads a timestamp as fractional seconds since the Unix epoch.
func UnixSeconds(v Value) float64 {
	ts := *CastTo[time.Time](v)
	return float64(ts.Unix()) + float64(ts.Nanosecond())/1e9
}

// SetUnixSeconds stores fractional seconds since the Unix epoch into a timestamp.
func SetUnixSeconds(v Value, sec float64) {
	whole := int64(sec)
	nsec := int64((sec - float64(whole)) * 1e9)
	*CastTo[time.Time](v) = time.Unix(whole, nsec).UTC()
}

// Elements returns the components of a vector or the elements of a list,
// each wrapped as a Value of the element kind.
func Elements(v Value) []Value {
	switch t := v.(type) {
	case *Typed[FVector4]:
		return wrapAll(t.v[:])
	case *Typed[DVector4]:
		return wrapAll(t.v[:])
	case *Typed[IVector4]:
		return wrapAll(t.v[:])
	case *Typed[[]int32]:
		return wrapAll(t.v)
	case *Typed[[]float64]:
		return wrapAll(t.v)
	case *Typed[[]string]:
		return wrapAll(t.v)
	}

	panic(&CastError{Have: KindOfValue(v), Want: 0})
}

// AssignComponents stores up to four element values into the leading
// components of a vector, the remaining components are kept. Nothing is
// stored if an element has the wrong kind or there are more than four.
func AssignComponents(v Value, elems []Value) error {
	switch t := v.(type) {
	case *Typed[FVector4]:
		return assignVector(&t.v, elems)
	case *Typed[DVector4]:
		return assignVector(&t.v, elems)
	case *Typed[IVector4]:
		return assignVector(&t.v, elems)
	}

	panic(&CastError{Have: KindOfValue(v), Want: 0})
}

// AppendElements appends element values to a list. Nothing is appended if
// an element has the wrong kind.
func AppendElements(v Value, elems []Value) {
	switch t := v.(type) {
	case *Typed[[]int32]:
		t.v = append(t.v, unwrapAll[int32](elems)...)
	case *Typed[[]float64]:
		t.v = append(t.v, unwrapAll[float64](elems)...)
	case *Typed[[]string]:
		t.v = append(t.v, unwrapAll[string](elems)...)
	default:
		panic(&CastError{Have: KindOfValue(v), Want: 0})
	}
}

// Len returns the number of elements of a list or vector value.
func Len(v Value) int {
	switch t := v.(type) {
	case *Typed[FVector4], *Typed[DVector4], *Typed[IVector4]:
		return 4
	case *Typed[[]int32]:
		return len(t.v)
	case *Typed[[]float64]:
		return len(t.v)
	case *Typed[[]string]:
		return len(t.v)
	}

	return 0
}

func assignVector[E VectorElem](dst *Vector4[E], elems []Value) error {
	if len(elems) > len(dst) {
		return fmt.Errorf("%w: %d components for a vector of %d", ErrElementCount, len(elems), len(dst))
	}

	vals := unwrapAll[E](elems)
	copy(dst[:], vals)

	return nil
}

func wrapAll[E int32 | float32 | float64 | string](s []E) []Value {
	res := make([]Value, len(s))
	for i, e := range s {
		res[i] = New(e)
	}

	return res
}

func unwrapAll[E int32 | float32 | float64 | string](elems []Value) []E {
	res := make([]E, len(elems))
	for i, e := range elems {
		res[i] = *CastTo[E](e)
	}

	return slices.Clip(res)
}
