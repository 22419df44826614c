package convert

import (
	"fmt"

	"isis-core/corelog"
	"isis-core/value"
)

// vectorConverter converts the four components through the element
// converter. A failing component leaves the whole destination unchanged.
type vectorConverter struct {
	base
	elem Converter
}

func (c vectorConverter) Convert(src, dst value.Value) error {
	c.check(src, dst)

	out, err := convertElements(c.elem, value.Elements(src))
	if err != nil {
		return c.wrap(src, err)
	}

	if err := value.AssignComponents(dst, out); err != nil {
		return c.fail(src, err)
	}

	return nil
}

func (c vectorConverter) Generate(src value.Value, dst *value.Value) error {
	return generate(c, src, dst)
}

// listConverter appends every converted element to the destination list.
type listConverter struct {
	base
	elem Converter
}

func (c listConverter) Convert(src, dst value.Value) error {
	c.check(src, dst)
	warnNonEmpty(c.pair, dst)

	out, err := convertElements(c.elem, value.Elements(src))
	if err != nil {
		return c.wrap(src, err)
	}

	value.AppendElements(dst, out)

	return nil
}

func (c listConverter) Generate(src value.Value, dst *value.Value) error {
	return generate(c, src, dst)
}

func convertElements(elem Converter, in []value.Value) ([]value.Value, error) {
	out := make([]value.Value, len(in))
	for i, e := range in {
		d := value.Zero(elem.Pair().To)
		if err := elem.Convert(e, d); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}

		out[i] = d
	}

	return out, nil
}

func warnNonEmpty(pair ConversionPair, dst value.Value) {
	if n := value.Len(dst); n > 0 {
		corelog.CoreLog().Warn("storing into non empty list",
			"conversion", pair.String(),
			"len", n)
	}
}
