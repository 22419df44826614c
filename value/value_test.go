package value_test

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isis-core/kind"
	"isis-core/value"
)

func Example() {
	v := value.New[int16](-42)
	fmt.Println(v.Kind(), v.TypeID(), v.TypeName())
	fmt.Println(v.ToString(false), v.ToString(true))

	*value.CastTo[int16](v) = 7
	fmt.Println(v.Get(), value.Is[int16](v), value.Is[uint16](v))

	fmt.Println(value.New(value.FVector4{1, 0.5, -2, 0}))
	fmt.Println(value.New([]string{"T1", "T2"}).ToString(true))

	// Output:
	// KindInt16 3 s16bit
	// -42 -42(s16bit)
	// 7 true false
	// <1|0.5|-2|0>
	// [T1,T2](slist)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, kind.KindUint8, value.KindOf[uint8]())
	assert.Equal(t, kind.KindDVector4, value.KindOf[value.DVector4]())
	assert.Equal(t, kind.KindSList, value.KindOf[[]string]())
	assert.Equal(t, kind.KindTimestamp, value.KindOf[time.Time]())
	assert.Equal(t, kind.KindPropertyMap, value.KindOf[*value.PropMap]())

	for _, k := range kind.All() {
		z := value.Zero(k)
		require.NotNil(t, z, k.String())
		assert.Equal(t, k, z.Kind())
		assert.Equal(t, k.ID(), z.TypeID())
	}

	assert.Nil(t, value.Zero(0))
	assert.Equal(t, kind.KindEnum(0), value.KindOfValue(nil))
	assert.Equal(t, kind.KindEnum(0), value.KindOfValue((*value.Typed[int8])(nil)))
	assert.True(t, value.IsNil((*value.Typed[string])(nil)))
	assert.False(t, value.IsNil(value.New("")))
}

func TestCastToMismatchPanics(t *testing.T) {
	v := value.New[int32](1)

	assert.PanicsWithError(t, "cannot cast a value of type s32bit to u32bit", func() {
		value.CastTo[uint32](v)
	})

	assert.PanicsWithError(t, "cannot cast an empty value to float", func() {
		value.CastTo[float32](nil)
	})

	var p value.Property
	assert.Panics(t, func() { value.Get[string](p) })
}

func TestEqual(t *testing.T) {
	ts := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name string
		a, b value.Value
		want bool
	}{
		{"same number", value.New[int8](3), value.New[int8](3), true},
		{"different number", value.New[int8](3), value.New[int8](4), false},
		{"different kinds", value.New[int8](3), value.New[uint8](3), false},
		{"NaN", value.New(math.NaN()), value.New(math.NaN()), false},
		{"lists", value.New([]int32{1, 2}), value.New([]int32{1, 2}), true},
		{"nil and empty list", value.New([]int32(nil)), value.New([]int32{}), true},
		{"timestamp in another zone", value.New(ts), value.New(ts.In(time.FixedZone("x", 3600))), true},
		{"colors", value.New(value.Color24{R: 1}), value.New(value.Color24{R: 1}), true},
		{"nil other", value.New("a"), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	list := value.New([]float64{1, 2})
	c := list.Clone()
	(*value.CastTo[[]float64](c))[0]++
	assert.Equal(t, []float64{1, 2}, list.Get())

	m := value.NewPropMap()
	require.NoError(t, value.SetValue(m, "a", int8(1)))

	mv := value.New(m)
	mc := mv.Clone()
	require.NoError(t, value.SetValue(*value.CastTo[*value.PropMap](mc), "a", int8(2)))
	assert.Equal(t, int8(1), value.Get[int8](mustLookup(t, m, "a")))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		v    value.Value
		want string
	}{
		{value.New[uint32](math.MaxUint32), "4294967295"},
		{value.New[float32](0.1), "0.1"},
		{value.New(1e21), "1e+21"},
		{value.New(value.IVector4{1, -2, 3, 4}), "<1|-2|3|4>"},
		{value.New([]int32{}), "[]"},
		{value.New(value.Color48{R: 65535, G: 1, B: 2}), "{65535,1,2}"},
		{value.New(true), "true"},
		{value.New(time.Date(2020, 1, 2, 4, 4, 5, 0, time.FixedZone("x", 3600))), "2020-01-02T03:04:05Z"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.v.String())
	}
}

func TestCompare(t *testing.T) {
	res, err := value.Compare(value.New[int16](-1), value.New[int16](5))
	require.NoError(t, err)
	assert.Equal(t, -1, res)

	res, err = value.Compare(value.New(true), value.New(false))
	require.NoError(t, err)
	assert.Equal(t, 1, res)

	res, err = value.Compare(value.New(value.DVector4{1, 2, 3, 4}), value.New(value.DVector4{1, 2, 3, 4}))
	require.NoError(t, err)
	assert.Equal(t, 0, res)

	res, err = value.Compare(value.New(value.IVector4{1, 2, 0, 0}), value.New(value.IVector4{1, 3, -5, 0}))
	require.NoError(t, err)
	assert.Equal(t, -1, res)

	_, err = value.Compare(value.New[int16](1), value.New[int32](1))
	require.ErrorIs(t, err, value.ErrUnordered)

	_, err = value.Compare(value.New([]int32{1}), value.New([]int32{2}))
	require.ErrorIs(t, err, value.ErrUnordered)
}

func TestFromAny(t *testing.T) {
	v, err := value.FromAny(12)
	require.NoError(t, err)
	assert.Equal(t, kind.KindInt32, v.Kind())

	v, err = value.FromAny(uint(7))
	require.NoError(t, err)
	assert.Equal(t, kind.KindUint32, v.Kind())

	_, err = value.FromAny(int64(math.MaxInt32) + 1)
	require.ErrorIs(t, err, value.ErrUnsupportedType)

	_, err = value.FromAny(struct{}{})
	require.ErrorIs(t, err, value.ErrUnsupportedType)

	v, err = value.FromAny(map[string]any{
		"series": map[string]any{"number": 3, "description": "t1_mprage"},
		"tr":     2.3,
	})
	require.NoError(t, err)

	m := *value.CastTo[*value.PropMap](v)
	assert.Equal(t, []string{"series/description", "series/number", "tr"}, m.Paths())

	same := value.New[int8](1)
	v, err = value.FromAny(same)
	require.NoError(t, err)
	assert.Same(t, same, v)
}

func TestAccess(t *testing.T) {
	t.Run("numbers", func(t *testing.T) {
		v := value.New[uint16](0)
		value.SetNumber(v, 65535)
		assert.InDelta(t, 65535, value.Number(v), 0)
		assert.Panics(t, func() { value.Number(value.New("1")) })
	})

	t.Run("elements", func(t *testing.T) {
		vec := value.New(value.FVector4{1, 2, 3, 4})
		elems := value.Elements(vec)
		require.Len(t, elems, 4)
		assert.Equal(t, kind.KindFloat32, elems[2].Kind())

		require.NoError(t, value.AssignComponents(vec, []value.Value{value.New[float32](9)}))
		assert.Equal(t, value.FVector4{9, 2, 3, 4}, vec.Get())

		err := value.AssignComponents(vec, value.Elements(value.New(value.FVector4{})))
		require.NoError(t, err)
		assert.Equal(t, value.FVector4{}, vec.Get())

		five := append(value.Elements(vec), value.New[float32](1))
		require.ErrorIs(t, value.AssignComponents(vec, five), value.ErrElementCount)

		list := value.New([]string{"a"})
		value.AppendElements(list, []value.Value{value.New("b")})
		assert.Equal(t, []string{"a", "b"}, list.Get())
		assert.Equal(t, 2, value.Len(list))
	})

	t.Run("copy", func(t *testing.T) {
		dst := value.New([]int32{9})
		src := value.New([]int32{1, 2})
		value.Copy(dst, src)
		assert.Equal(t, []int32{1, 2}, dst.Get())

		src.Get()[0] = 5
		assert.Equal(t, []int32{1, 2}, dst.Get())
	})

	t.Run("unix seconds", func(t *testing.T) {
		ts := value.New(time.Time{})
		value.SetUnixSeconds(ts, 1.5)
		assert.True(t, time.Unix(1, 5e8).Equal(ts.Get()))
		assert.InDelta(t, 1.5, value.UnixSeconds(ts), 1e-9)
	})
}
