package convert

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"isis-core/kind"
	"isis-core/value"
)

func TestNumericNarrowingBoundary(t *testing.T) {
	r := Default()

	tests := []struct {
		name string
		src  value.Value
		dst  kind.KindEnum
	}{
		{"s32bit max to s16bit", value.New[int32](math.MaxInt32), kind.KindInt16},
		{"s16bit min to s8bit", value.New[int16](math.MinInt16), kind.KindInt8},
		{"u32bit max to s32bit", value.New[uint32](math.MaxUint32), kind.KindInt32},
		{"negative to unsigned", value.New[int8](-1), kind.KindUint8},
		{"double max to float", value.New(math.MaxFloat64), kind.KindFloat32},
		{"double to u16bit", value.New(65535.5), kind.KindUint16},
		{"NaN to integer", value.New(math.NaN()), kind.KindInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := value.Zero(tt.dst)
			value.SetNumber(dst, 7)

			err := r.Convert(tt.src, dst)
			require.ErrorIs(t, err, ErrOverflow)
			assert.Equal(t, StatusOverflow, StatusOf(err))
			assert.InDelta(t, 7, value.Number(dst), 0, "destination must keep its value")
		})
	}
}

func TestNumericRoundHalfEven(t *testing.T) {
	r := Default()

	tests := []struct {
		in   float64
		want int32
	}{
		{0.5, 0},
		{1.5, 2},
		{2.5, 2},
		{3.5, 4},
		{-2.5, -2},
		{-3.5, -4},
		{2.4999, 2},
		{2.5001, 3},
	}

	for _, tt := range tests {
		dst := value.New[int32](0)
		require.NoError(t, r.Convert(value.New(tt.in), dst))
		assert.Equal(t, tt.want, dst.Get(), "%g", tt.in)
	}
}

func TestNumericWidening(t *testing.T) {
	r := Default()

	for _, src := range kind.All() {
		if !src.IsNumber() {
			continue
		}

		lo, hi := src.Limits()
		for _, dst := range []kind.KindEnum{kind.KindFloat64, src} {
			for _, f := range []float64{lo, hi, 0} {
				in := value.Zero(src)
				value.SetNumber(in, f)

				out := value.Zero(dst)
				require.NoError(t, r.Convert(in, out), "%s -> %s", src, dst)
				assert.Equal(t, value.Number(in), value.Number(out))
			}
		}
	}
}

func TestNumericFloats(t *testing.T) {
	r := Default()

	res, err := r.Generate(value.New(math.Pi), kind.KindFloat32)
	require.NoError(t, err)
	assert.True(t, scalar.EqualWithinAbs(math.Pi, value.Number(res), 1e-6))

	res, err = r.Generate(value.New(math.Inf(-1)), kind.KindFloat32)
	require.NoError(t, err)
	assert.True(t, math.IsInf(value.Number(res), -1))

	res, err = r.Generate(value.New[uint8](200), kind.KindInt8)
	require.ErrorIs(t, err, ErrOverflow)
	assert.Nil(t, res)
}

func TestNumericTimestamp(t *testing.T) {
	r := Default()
	ts := time.Date(2024, 3, 1, 12, 0, 0, 500_000_000, time.UTC)

	t.Run("to seconds", func(t *testing.T) {
		res, err := r.Generate(value.New(ts), kind.KindFloat64)
		require.NoError(t, err)
		assert.True(t, scalar.EqualWithinAbs(float64(ts.Unix())+0.5, value.Number(res), 1e-6))

		res, err = r.Generate(value.New(ts), kind.KindUint32)
		require.NoError(t, err)
		assert.Equal(t, uint32(ts.Unix()), *value.CastTo[uint32](res), "half a second rounds to even")

		_, err = r.Generate(value.New(ts), kind.KindInt16)
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("from seconds", func(t *testing.T) {
		res, err := r.Generate(value.New[int32](int32(ts.Unix())), kind.KindTimestamp)
		require.NoError(t, err)
		assert.True(t, ts.Truncate(time.Second).Equal(*value.CastTo[time.Time](res)))

		_, err = r.Generate(value.New(math.Inf(1)), kind.KindTimestamp)
		assert.ErrorIs(t, err, ErrOverflow)
	})
}
