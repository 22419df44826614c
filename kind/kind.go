package kind

import (
	"math"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt8
	KindUint8
	KindInt16
	KindUint16
	KindInt32
	KindUint32
	KindFloat32
	KindFloat64
	KindFVector4
	KindDVector4
	KindIVector4
	KindIList
	KindDList
	KindSList
	KindString
	KindBool
	KindColor24
	KindColor48
	KindTimestamp
	KindPropertyMap

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

type info struct {
	id   uint16
	name string
}

// infos is indexed by KindEnum, the stable ids must never change once released.
var infos = [KindTotal]info{
	KindInt8:        {0x01, "s8bit"},
	KindUint8:       {0x02, "u8bit"},
	KindInt16:       {0x03, "s16bit"},
	KindUint16:      {0x04, "u16bit"},
	KindInt32:       {0x05, "s32bit"},
	KindUint32:      {0x06, "u32bit"},
	KindBool:        {0x0E, "boolean"},
	KindFloat32:     {0x10, "float"},
	KindFloat64:     {0x11, "double"},
	KindFVector4:    {0xA0, "fvector4"},
	KindDVector4:    {0xA1, "dvector4"},
	KindIVector4:    {0xA2, "ivector4"},
	KindString:      {0xB0, "string"},
	KindPropertyMap: {0xB1, "PropertyMap"},
	KindTimestamp:   {0xB2, "timestamp"},
	KindIList:       {0xC0, "ilist"},
	KindDList:       {0xC1, "dlist"},
	KindSList:       {0xC2, "slist"},
	KindColor24:     {0xD0, "color24"},
	KindColor48:     {0xD1, "color48"},
}

var (
	byID   map[uint16]KindEnum
	byName map[string]KindEnum
)

func init() {
	byID = make(map[uint16]KindEnum, KindTotal)
	byName = make(map[string]KindEnum, KindTotal)

	for k := KindEnum(1); int(k) < KindTotal; k++ {
		byID[infos[k].id] = k
		byName[infos[k].name] = k
	}
}

// All returns every valid kind in enumeration order.
func All() []KindEnum {
	res := make([]KindEnum, 0, KindTotal-1)
	for k := KindEnum(1); int(k) < KindTotal; k++ {
		res = append(res, k)
	}

	return res
}

// FromID resolves a stable type id back to its kind.
func FromID(id uint16) (KindEnum, bool) {
	k, ok := byID[id]
	return k, ok
}

// FromName resolves a type name (as returned by TypeName) back to its kind.
func FromName(name string) (KindEnum, bool) {
	k, ok := byName[name]
	return k, ok
}

func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

// ID returns the stable numeric type tag of the kind, 0 for invalid kinds.
func (k KindEnum) ID() uint16 {
	if !k.IsValid() {
		return 0
	}

	return infos[k].id
}

// TypeName returns the human-readable label used in diagnostics.
func (k KindEnum) TypeName() string {
	if !k.IsValid() {
		return "invalid"
	}

	return infos[k].name
}

// IsNumber reports arithmetic kinds: every integer and floating-point kind.
func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt8, KindInt16, KindInt32,
		KindUint8, KindUint16, KindUint32,
		KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt8, KindInt16, KindInt32,
		KindUint8, KindUint16, KindUint32:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt8, KindInt16, KindInt32:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint8, KindUint16, KindUint32:
		return true
	}
}

func (k KindEnum) IsVector() bool {
	switch k {
	default:
		return false
	case KindFVector4, KindDVector4, KindIVector4:
		return true
	}
}

func (k KindEnum) IsList() bool {
	switch k {
	default:
		return false
	case KindIList, KindDList, KindSList:
		return true
	}
}

func (k KindEnum) IsColor() bool {
	return k == KindColor24 || k == KindColor48
}

// Elem returns the element kind of vector and list kinds, 0 for everything else.
func (k KindEnum) Elem() KindEnum {
	switch k {
	default:
		return 0
	case KindFVector4:
		return KindFloat32
	case KindDVector4, KindDList:
		return KindFloat64
	case KindIVector4, KindIList:
		return KindInt32
	case KindSList:
		return KindString
	}
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only number kinds has meaningful bits amount, but requested for: " + k.String())
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32, KindFloat32:
		return 32
	case KindFloat64:
		return 64
	}
}

// Limits returns the inclusive representable range of a number kind.
// Integer bounds are exact in float64 because no integer kind is wider than 32 bits.
func (k KindEnum) Limits() (lo, hi float64) {
	switch k {
	default:
		panic("only number kinds has limits, but requested for: " + k.String())
	case KindInt8:
		return math.MinInt8, math.MaxInt8
	case KindUint8:
		return 0, math.MaxUint8
	case KindInt16:
		return math.MinInt16, math.MaxInt16
	case KindUint16:
		return 0, math.MaxUint16
	case KindInt32:
		return math.MinInt32, math.MaxInt32
	case KindUint32:
		return 0, math.MaxUint32
	case KindFloat32:
		return -math.MaxFloat32, math.MaxFloat32
	case KindFloat64:
		return -math.MaxFloat64, math.MaxFloat64
	}
}
