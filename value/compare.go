package value

import (
	"cmp"
	"errors"
	"fmt"
	"time"
)

var ErrUnordered = errors.New("values cannot be ordered")

// Compare orders two values of the same kind. Numbers, strings, booleans
// (false before true), timestamps and vectors (component by component) are
// ordered, any other kind or a kind mismatch yields ErrUnordered.
func Compare(a, b Value) (int, error) {
	ka, kb := KindOfValue(a), KindOfValue(b)
	if ka != kb || !ka.IsValid() {
		return 0, fmt.Errorf("%w: %s and %s", ErrUnordered, ka.TypeName(), kb.TypeName())
	}

	res, ok := comparePayload(a.payload(), b.payload())
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnordered, ka.TypeName())
	}

	return res, nil
}

func comparePayload(a, b any) (int, bool) {
	switch x := a.(type) {
	case int8:
		return cmp.Compare(x, b.(int8)), true
	case uint8:
		return cmp.Compare(x, b.(uint8)), true
	case int16:
		return cmp.Compare(x, b.(int16)), true
	case uint16:
		return cmp.Compare(x, b.(uint16)), true
	case int32:
		return cmp.Compare(x, b.(int32)), true
	case uint32:
		return cmp.Compare(x, b.(uint32)), true
	case float32:
		return cmp.Compare(x, b.(float32)), true
	case float64:
		return cmp.Compare(x, b.(float64)), true
	case string:
		return cmp.Compare(x, b.(string)), true
	case bool:
		return compareBool(x, b.(bool)), true
	case time.Time:
		return x.Compare(b.(time.Time)), true
	case FVector4:
		return compareVector(x, b.(FVector4)), true
	case DVector4:
		return compareVector(x, b.(DVector4)), true
	case IVector4:
		return compareVector(x, b.(IVector4)), true
	}

	return 0, false
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	default:
		return 1
	}
}

func compareVector[E VectorElem](a, b Vector4[E]) int {
	for i := range a {
		if c := cmp.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}

	return 0
}
