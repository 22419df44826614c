package convert

import (
	"fmt"

	"isis-core/corelog"
	"isis-core/value"
)

// Converter turns a value of one kind into a value of another. Converters
// are immutable and safe for concurrent use.
type Converter interface {
	// Convert overwrites dst in place, the kind of dst never changes.
	// On failure dst keeps its previous content.
	Convert(src, dst value.Value) error
	// Generate stores a fresh value of the destination kind into *dst.
	// An existing *dst is discarded with a warning.
	Generate(src value.Value, dst *value.Value) error

	Pair() ConversionPair
	Strategy() Strategy
}

type base struct {
	pair     ConversionPair
	strategy Strategy
}

func (b base) Pair() ConversionPair { return b.pair }
func (b base) Strategy() Strategy   { return b.strategy }

// check panics with a *value.CastError if src or dst do not match the pair.
func (b base) check(src, dst value.Value) {
	if have := value.KindOfValue(src); have != b.pair.From {
		panic(&value.CastError{Have: have, Want: b.pair.From})
	}

	if have := value.KindOfValue(dst); have != b.pair.To {
		panic(&value.CastError{Have: have, Want: b.pair.To})
	}
}

// wrap attaches the pair and the offending source to err.
func (b base) wrap(src value.Value, err error) *ConversionError {
	return &ConversionError{
		Src:   b.pair.From,
		Dst:   b.pair.To,
		Input: src.ToString(true),
		Err:   err,
	}
}

// fail wraps err and reports it on the runtime domain.
func (b base) fail(src value.Value, err error) error {
	cerr := b.wrap(src, err)

	corelog.Runtime().Error("automatic conversion failed",
		"value", cerr.Input,
		"to", b.pair.To.TypeName(),
		"error", err)

	return cerr
}

func generate(c Converter, src value.Value, dst *value.Value) error {
	if *dst != nil {
		corelog.Debug().Warn("generating into existing value",
			"existing", (*dst).ToString(true),
			"from", src.ToString(true))
	}

	fresh := value.Zero(c.Pair().To)
	if err := c.Convert(src, fresh); err != nil {
		return err
	}

	*dst = fresh

	return nil
}

// identityConverter copies between values of the same kind.
type identityConverter struct{ base }

func (c identityConverter) Convert(src, dst value.Value) error {
	c.check(src, dst)
	value.Copy(dst, src)

	return nil
}

func (c identityConverter) Generate(src value.Value, dst *value.Value) error {
	return generate(c, src, dst)
}

// unsupportedConverter occupies pairs that are registered but cannot be
// converted yet.
type unsupportedConverter struct{ base }

func (c unsupportedConverter) Convert(src, dst value.Value) error {
	c.check(src, dst)

	return c.fail(src, fmt.Errorf("%w: %s", ErrUnsupported, c.pair))
}

func (c unsupportedConverter) Generate(src value.Value, dst *value.Value) error {
	return generate(c, src, dst)
}
