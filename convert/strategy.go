package convert

import (
	"strings"

	"isis-core/kind"
)

// Strategy classifies how a pair of kinds is converted. Values combine into
// masks for filtering.
type Strategy int

// ConversionPair is an ordered (source, destination) pair of kinds.
type ConversionPair struct {
	From, To kind.KindEnum
}

const (
	StrategyIdentity    Strategy = 1 << iota // same kind: deep copy
	StrategyNumeric                          // number and timestamp kinds among each other
	StrategyVector                           // componentwise between vector kinds
	StrategyList                             // elementwise between list kinds
	StrategyTextual                          // anything <-> string
	StrategyUnsupported                      // placeholder that always fails

	StrategyAll  Strategy = (1 << iota) - 1 // all strategies combined
	StrategyNone Strategy = 0               // no converter
)

var strategyNames = []string{"identity", "numeric", "vector", "list", "textual", "unsupported"}

func (s Strategy) String() string {
	if s == StrategyNone {
		return "none"
	}

	var parts []string
	for i, name := range strategyNames {
		if s&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}

	return strings.Join(parts, "|")
}

// Symbol is a one letter mark of a single strategy used in the conversion matrix.
func (s Strategy) Symbol() byte {
	switch s {
	case StrategyIdentity:
		return '='
	case StrategyNumeric:
		return 'N'
	case StrategyVector:
		return 'V'
	case StrategyList:
		return 'L'
	case StrategyTextual:
		return 'T'
	case StrategyUnsupported:
		return 'x'
	default:
		return '.'
	}
}

func (p ConversionPair) String() string {
	return p.From.TypeName() + " -> " + p.To.TypeName()
}

// Reverse returns the pair in the opposite direction.
func (p ConversionPair) Reverse() ConversionPair {
	return ConversionPair{From: p.To, To: p.From}
}
