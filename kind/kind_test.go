package kind_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isis-core/kind"
)

func Example() {
	fmt.Println(kind.KindInt16, kind.KindInt16.TypeName(), kind.KindInt16.ID())
	fmt.Println(kind.KindFVector4, kind.KindFVector4.TypeName(), kind.KindFVector4.Elem())
	fmt.Println(kind.KindPropertyMap.TypeName(), kind.KindPropertyMap.ID())
	fmt.Println(kind.KindEnum(0), kind.KindEnum(0).TypeName())
	// Output:
	// KindInt16 s16bit 3
	// KindFVector4 fvector4 KindFloat32
	// PropertyMap 177
	// KindEnum(0) invalid
}

func TestStableIdentity(t *testing.T) {
	t.Parallel()

	ids := map[uint16]kind.KindEnum{}
	names := map[string]kind.KindEnum{}

	for _, k := range kind.All() {
		require.True(t, k.IsValid(), k.String())
		require.NotZero(t, k.ID(), k.String())

		_, dupID := ids[k.ID()]
		assert.False(t, dupID, "duplicate id for %s", k)
		ids[k.ID()] = k

		_, dupName := names[k.TypeName()]
		assert.False(t, dupName, "duplicate name for %s", k)
		names[k.TypeName()] = k

		back, ok := kind.FromID(k.ID())
		assert.True(t, ok)
		assert.Equal(t, k, back)

		back, ok = kind.FromName(k.TypeName())
		assert.True(t, ok)
		assert.Equal(t, k, back)
	}

	assert.Len(t, kind.All(), kind.KindTotal-1)

	_, ok := kind.FromID(0x7)
	assert.False(t, ok)

	_, ok = kind.FromName("s64bit")
	assert.False(t, ok)
}

func TestTraits(t *testing.T) {
	t.Parallel()

	t.Run("numbers", func(t *testing.T) {
		t.Parallel()

		for _, k := range kind.All() {
			assert.Equal(t, k.IsInteger() || k.IsFloat(), k.IsNumber(), k.String())
			if k.IsInteger() {
				assert.NotEqual(t, k.IsSigned(), k.IsUnsigned(), k.String())
			}
		}

		assert.False(t, kind.KindBool.IsNumber())
		assert.False(t, kind.KindTimestamp.IsNumber())
		assert.False(t, kind.KindString.IsNumber())
	})

	t.Run("aggregates", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, kind.KindInt32, kind.KindIVector4.Elem())
		assert.Equal(t, kind.KindFloat64, kind.KindDVector4.Elem())
		assert.Equal(t, kind.KindString, kind.KindSList.Elem())
		assert.Equal(t, kind.KindFloat64, kind.KindDList.Elem())
		assert.Zero(t, kind.KindString.Elem())

		assert.True(t, kind.KindIList.IsList())
		assert.False(t, kind.KindIList.IsVector())
		assert.True(t, kind.KindColor48.IsColor())
	})

	t.Run("limits", func(t *testing.T) {
		t.Parallel()

		lo, hi := kind.KindUint8.Limits()
		assert.Equal(t, 0.0, lo)
		assert.Equal(t, 255.0, hi)

		lo, hi = kind.KindInt16.Limits()
		assert.Equal(t, -32768.0, lo)
		assert.Equal(t, 32767.0, hi)

		assert.Equal(t, 32, kind.KindUint32.Bits())
		assert.Panics(t, func() { kind.KindString.Bits() })
		assert.Panics(t, func() { kind.KindBool.Limits() })
	})
}
