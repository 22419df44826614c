package convert

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"isis-core/kind"
	"isis-core/utils"
	"isis-core/value"
)

// maxUnixSeconds bounds timestamps to what time.Unix represents without overflow.
const maxUnixSeconds = 1 << 53

// numericConverter converts between number kinds and timestamps, which read
// as seconds since the Unix epoch. Narrowing to an integer rounds half to even.
type numericConverter struct{ base }

func (c numericConverter) Convert(src, dst value.Value) error {
	c.check(src, dst)

	var f float64
	if c.pair.From == kind.KindTimestamp {
		f = value.UnixSeconds(src)
	} else {
		f = value.Number(src)
	}

	if c.pair.To == kind.KindTimestamp {
		if math.IsNaN(f) || !utils.IsInRange(-maxUnixSeconds, f, maxUnixSeconds) {
			return c.fail(src, fmt.Errorf("%w: %g is no valid number of seconds", ErrOverflow, f))
		}

		value.SetUnixSeconds(dst, f)

		return nil
	}

	out, err := narrow(f, c.pair.To)
	if err != nil {
		return c.fail(src, err)
	}

	value.SetNumber(dst, out)

	return nil
}

func (c numericConverter) Generate(src value.Value, dst *value.Value) error {
	return generate(c, src, dst)
}

// narrow rounds f for integer kinds and checks it against the range of k.
// Infinities and NaN are kept for float kinds.
func narrow(f float64, k kind.KindEnum) (float64, error) {
	if k.IsFloat() && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return f, nil
	}

	if math.IsNaN(f) {
		return 0, fmt.Errorf("%w: NaN has no %s representation", ErrOverflow, k.TypeName())
	}

	if k.IsInteger() {
		f = scalar.RoundEven(f, 0)
	}

	lo, hi := k.Limits()
	if !utils.IsInRange(lo, f, hi) {
		return 0, fmt.Errorf("%w: %g does not fit into %s", ErrOverflow, f, k.TypeName())
	}

	return f, nil
}
