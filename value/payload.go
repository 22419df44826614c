package value

import (
	"errors"
	"fmt"
	"math"
	"time"

	"isis-core/kind"
	"isis-core/utils"
)

var ErrUnsupportedType = errors.New("native type has no matching kind")

// VectorElem lists the element types of the vector kinds.
type VectorElem interface {
	float32 | float64 | int32
}

// Vector4 is a fixed four component vector, e.g. a voxel size or a slice
// orientation with an unused fourth (time) component.
type Vector4[E VectorElem] [4]E

type (
	FVector4 = Vector4[float32]
	DVector4 = Vector4[float64]
	IVector4 = Vector4[int32]
)

// Color24 is an 8 bit per channel RGB color.
type Color24 struct{ R, G, B uint8 }

// Color48 is a 16 bit per channel RGB color.
type Color48 struct{ R, G, B uint16 }

// Payload is the closed set of native types a Value can hold.
type Payload interface {
	int8 | uint8 | int16 | uint16 | int32 | uint32 | float32 | float64 |
		FVector4 | DVector4 | IVector4 |
		[]int32 | []float64 | []string |
		string | bool | Color24 | Color48 | time.Time | *PropMap
}

// KindOf returns the kind matching the payload type T.
func KindOf[T Payload]() kind.KindEnum {
	var zero T
	return kindOfPayload(any(zero))
}

func kindOfPayload(v any) kind.KindEnum {
	switch v.(type) {
	case int8:
		return kind.KindInt8
	case uint8:
		return kind.KindUint8
	case int16:
		return kind.KindInt16
	case uint16:
		return kind.KindUint16
	case int32:
		return kind.KindInt32
	case uint32:
		return kind.KindUint32
	case float32:
		return kind.KindFloat32
	case float64:
		return kind.KindFloat64
	case FVector4:
		return kind.KindFVector4
	case DVector4:
		return kind.KindDVector4
	case IVector4:
		return kind.KindIVector4
	case []int32:
		return kind.KindIList
	case []float64:
		return kind.KindDList
	case []string:
		return kind.KindSList
	case string:
		return kind.KindString
	case bool:
		return kind.KindBool
	case Color24:
		return kind.KindColor24
	case Color48:
		return kind.KindColor48
	case time.Time:
		return kind.KindTimestamp
	case *PropMap:
		return kind.KindPropertyMap
	}

	return 0
}

// Zero creates an empty destination value of the given kind, nil for invalid kinds.
func Zero(k kind.KindEnum) Value {
	switch k {
	default:
		return nil
	case kind.KindInt8:
		return New[int8](0)
	case kind.KindUint8:
		return New[uint8](0)
	case kind.KindInt16:
		return New[int16](0)
	case kind.KindUint16:
		return New[uint16](0)
	case kind.KindInt32:
		return New[int32](0)
	case kind.KindUint32:
		return New[uint32](0)
	case kind.KindFloat32:
		return New[float32](0)
	case kind.KindFloat64:
		return New[float64](0)
	case kind.KindFVector4:
		return New(FVector4{})
	case kind.KindDVector4:
		return New(DVector4{})
	case kind.KindIVector4:
		return New(IVector4{})
	case kind.KindIList:
		return New([]int32(nil))
	case kind.KindDList:
		return New([]float64(nil))
	case kind.KindSList:
		return New([]string(nil))
	case kind.KindString:
		return New("")
	case kind.KindBool:
		return New(false)
	case kind.KindColor24:
		return New(Color24{})
	case kind.KindColor48:
		return New(Color48{})
	case kind.KindTimestamp:
		return New(time.Time{})
	case kind.KindPropertyMap:
		return New(NewPropMap())
	}
}

// FromAny wraps a native Go value. Besides the payload types it accepts
// Values (returned as is), platform ints narrowed to s32bit when they fit,
// and map[string]any, which becomes a nested PropMap.
func FromAny(v any) (Value, error) {
	switch t := v.(type) {
	case Value:
		return t, nil
	case int8:
		return New(t), nil
	case uint8:
		return New(t), nil
	case int16:
		return New(t), nil
	case uint16:
		return New(t), nil
	case int32:
		return New(t), nil
	case uint32:
		return New(t), nil
	case float32:
		return New(t), nil
	case float64:
		return New(t), nil
	case FVector4:
		return New(t), nil
	case DVector4:
		return New(t), nil
	case IVector4:
		return New(t), nil
	case []int32:
		return New(t), nil
	case []float64:
		return New(t), nil
	case []string:
		return New(t), nil
	case string:
		return New(t), nil
	case bool:
		return New(t), nil
	case Color24:
		return New(t), nil
	case Color48:
		return New(t), nil
	case time.Time:
		return New(t), nil
	case *PropMap:
		return New(t), nil
	case int:
		return narrowInt(int64(t))
	case int64:
		return narrowInt(t)
	case uint:
		return narrowUint(uint64(t))
	case uint64:
		return narrowUint(t)
	case map[string]any:
		m := NewPropMap()
		for key, elem := range t {
			ev, err := FromAny(elem)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}

			if err := m.SetProperty(key, PropertyOf(ev)); err != nil {
				return nil, err
			}
		}

		return New(m), nil
	}

	return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
}

func narrowInt(v int64) (Value, error) {
	if !utils.IsInRange(math.MinInt32, v, math.MaxInt32) {
		return nil, fmt.Errorf("%w: %d does not fit into %s", ErrUnsupportedType, v, kind.KindInt32.TypeName())
	}

	return New(int32(v)), nil
}

func narrowUint(v uint64) (Value, error) {
	if v > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d does not fit into %s", ErrUnsupportedType, v, kind.KindUint32.TypeName())
	}

	return New(uint32(v)), nil
}
