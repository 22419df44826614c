package convert

import (
	"sync"
	"sync/atomic"

	"isis-core/corelog"
	"isis-core/kind"
	"isis-core/value"
)

// Registry holds one converter per ordered pair of kinds. It never changes
// after NewRegistry returns and is safe for concurrent use.
type Registry struct {
	table [kind.KindTotal][kind.KindTotal]Converter
	size  int
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
	defaultBuilds   atomic.Int32
)

// Default returns the process wide registry, building it on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultBuilds.Add(1)
		defaultRegistry = NewRegistry()
	})

	return defaultRegistry
}

// NewRegistry classifies every ordered pair of kinds and builds its converter.
// Scalars are built first so vector and list converters share them.
func NewRegistry() *Registry {
	r := &Registry{}

	for _, aggregate := range []bool{false, true} {
		for _, src := range kind.All() {
			for _, dst := range kind.All() {
				pair := ConversionPair{From: src, To: dst}
				if isAggregatePair(pair) != aggregate {
					continue
				}

				if c := r.newConverter(pair); c != nil {
					r.table[src][dst] = c
					r.size++
				}
			}
		}
	}

	corelog.Debug().Debug("conversion registry built",
		"kinds", len(kind.All()),
		"converters", r.size)

	return r
}

func isAggregatePair(pair ConversionPair) bool {
	return (pair.From.IsVector() && pair.To.IsVector()) || (pair.From.IsList() && pair.To.IsList())
}

func (r *Registry) newConverter(pair ConversionPair) Converter {
	strategy := Dispatch(pair.From, pair.To)
	b := base{pair: pair, strategy: strategy}

	switch strategy {
	case StrategyIdentity:
		return identityConverter{b}
	case StrategyNumeric:
		return numericConverter{b}
	case StrategyVector:
		return vectorConverter{base: b, elem: r.table[pair.From.Elem()][pair.To.Elem()]}
	case StrategyList:
		return listConverter{base: b, elem: r.table[pair.From.Elem()][pair.To.Elem()]}
	case StrategyTextual:
		switch {
		case pair.To == kind.KindBool:
			return boolTextConverter{b}
		case pair.From == kind.KindString:
			return fromStringConverter{b}
		default:
			return toStringConverter{b}
		}
	case StrategyUnsupported:
		return unsupportedConverter{b}
	}

	return nil
}

// Get returns the converter for src to dst, false if the pair has none.
func (r *Registry) Get(src, dst kind.KindEnum) (Converter, bool) {
	if !src.IsValid() || !dst.IsValid() {
		return nil, false
	}

	c := r.table[src][dst]

	return c, c != nil
}

// Lookup is Get keyed by the stable type ids.
func (r *Registry) Lookup(srcID, dstID uint16) (Converter, bool) {
	src, ok := kind.FromID(srcID)
	if !ok {
		return nil, false
	}

	dst, ok := kind.FromID(dstID)
	if !ok {
		return nil, false
	}

	return r.Get(src, dst)
}

// CanConvert reports whether a working converter exists for src to dst.
// Unsupported placeholders do not count.
func (r *Registry) CanConvert(src, dst kind.KindEnum) bool {
	c, ok := r.Get(src, dst)

	return ok && c.Strategy() != StrategyUnsupported
}

// Size returns the number of registered converters.
func (r *Registry) Size() int {
	return r.size
}

// Pairs lists the registered pairs whose strategy is in mask, ordered by
// source and destination kind.
func (r *Registry) Pairs(mask Strategy) []ConversionPair {
	var res []ConversionPair
	for _, src := range kind.All() {
		for _, dst := range kind.All() {
			if c := r.table[src][dst]; c != nil && c.Strategy()&mask != 0 {
				res = append(res, ConversionPair{From: src, To: dst})
			}
		}
	}

	return res
}

// Convert overwrites dst with src converted to the kind of dst.
func (r *Registry) Convert(src, dst value.Value) error {
	if value.IsNil(src) || value.IsNil(dst) {
		return ErrEmptyProperty
	}

	c, ok := r.Get(src.Kind(), dst.Kind())
	if !ok {
		return r.missing(src, dst.Kind())
	}

	return c.Convert(src, dst)
}

// Generate returns a new value of kind dst converted from src.
func (r *Registry) Generate(src value.Value, dst kind.KindEnum) (value.Value, error) {
	var res value.Value
	if err := r.GenerateInto(src, &res, dst); err != nil {
		return nil, err
	}

	return res, nil
}

// GenerateInto replaces *dst by a new value of kind k converted from src.
// *dst is kept when the conversion fails.
func (r *Registry) GenerateInto(src value.Value, dst *value.Value, k kind.KindEnum) error {
	if value.IsNil(src) {
		return ErrEmptyProperty
	}

	c, ok := r.Get(src.Kind(), k)
	if !ok {
		return r.missing(src, k)
	}

	return c.Generate(src, dst)
}

func (r *Registry) missing(src value.Value, dst kind.KindEnum) error {
	cerr := &ConversionError{
		Src:   src.Kind(),
		Dst:   dst,
		Input: src.ToString(true),
		Err:   ErrUnsupported,
	}

	corelog.Runtime().Error("no conversion available",
		"value", cerr.Input,
		"to", dst.TypeName())

	return cerr
}
