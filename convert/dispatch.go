package convert

import "isis-core/kind"

// Dispatch decides which strategy converts src into dst, StrategyNone if
// the pair has no converter. The first matching rule wins:
//  1. the same kind is an identity copy
//  2. numbers and timestamps convert arithmetically
//  3. vectors convert componentwise if their elements do
//  4. lists convert elementwise if their elements do
//  5. any kind converts to string, string converts to anything parseable
//     while maps and colors get an unsupported placeholder
func Dispatch(src, dst kind.KindEnum) Strategy {
	if !src.IsValid() || !dst.IsValid() {
		return StrategyNone
	}

	if src == dst {
		return StrategyIdentity
	}

	if isArithmetic(src) && isArithmetic(dst) {
		return StrategyNumeric
	}

	if src.IsVector() && dst.IsVector() {
		if Dispatch(src.Elem(), dst.Elem()) == StrategyNone {
			return StrategyNone
		}

		return StrategyVector
	}

	if src.IsList() && dst.IsList() {
		if Dispatch(src.Elem(), dst.Elem()) == StrategyNone {
			return StrategyNone
		}

		return StrategyList
	}

	if src == kind.KindString || dst == kind.KindString {
		if src == kind.KindString && !isParseable(dst) {
			return StrategyUnsupported
		}

		return StrategyTextual
	}

	return StrategyNone
}

// isArithmetic reports whether k has a numeric reading, timestamps count as
// seconds since the Unix epoch.
func isArithmetic(k kind.KindEnum) bool {
	return k.IsNumber() || k == kind.KindTimestamp
}

// isParseable reports whether a value of kind k can be read from text.
func isParseable(k kind.KindEnum) bool {
	return isArithmetic(k) || k.IsVector() || k.IsList() || k == kind.KindBool || k == kind.KindString
}
