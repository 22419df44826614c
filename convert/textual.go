package convert

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"isis-core/kind"
	"isis-core/value"
)

// SplitPattern separates the elements of textual vectors and lists.
var SplitPattern = regexp.MustCompile(`[\s,;|]+`)

// TimestampLayouts are tried in order when parsing a timestamp.
var TimestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

const aggregateBrackets = "<>[](){}"

// toStringConverter renders any kind as text.
type toStringConverter struct{ base }

func (c toStringConverter) Convert(src, dst value.Value) error {
	c.check(src, dst)
	*value.CastTo[string](dst) = src.ToString(false)

	return nil
}

func (c toStringConverter) Generate(src value.Value, dst *value.Value) error {
	return generate(c, src, dst)
}

// fromStringConverter parses text into numbers, timestamps, vectors and lists.
type fromStringConverter struct{ base }

func (c fromStringConverter) Convert(src, dst value.Value) error {
	c.check(src, dst)

	text := *value.CastTo[string](src)

	switch to := c.pair.To; {
	case to.IsVector():
		elems, err := ParseElements(text, to.Elem())
		if err != nil {
			return c.fail(src, err)
		}

		if len(elems) > value.Len(dst) {
			return c.fail(src, fmt.Errorf("%w: %d components for %s", ErrAmbiguous, len(elems), to.TypeName()))
		}

		if err := value.AssignComponents(dst, elems); err != nil {
			return c.fail(src, err)
		}
	case to.IsList():
		warnNonEmpty(c.pair, dst)

		elems, err := ParseElements(text, to.Elem())
		if err != nil {
			return c.fail(src, err)
		}

		value.AppendElements(dst, elems)
	default:
		v, err := ParseScalar(text, to)
		if err != nil {
			return c.fail(src, err)
		}

		value.Copy(dst, v)
	}

	return nil
}

func (c fromStringConverter) Generate(src value.Value, dst *value.Value) error {
	return generate(c, src, dst)
}

// boolTextConverter accepts true/yes and false/no in any letter case.
type boolTextConverter struct{ base }

func (c boolTextConverter) Convert(src, dst value.Value) error {
	c.check(src, dst)

	text := *value.CastTo[string](src)

	b, err := ParseBool(text)
	if err != nil {
		return c.fail(src, err)
	}

	*value.CastTo[bool](dst) = b

	return nil
}

func (c boolTextConverter) Generate(src value.Value, dst *value.Value) error {
	return generate(c, src, dst)
}

// ParseBool recognizes "true" and "yes" as true, "false" and "no" as false,
// ignoring case and surrounding space.
func ParseBool(text string) (bool, error) {
	text = strings.TrimSpace(text)

	switch {
	case strings.EqualFold(text, "true"), strings.EqualFold(text, "yes"):
		return true, nil
	case strings.EqualFold(text, "false"), strings.EqualFold(text, "no"):
		return false, nil
	}

	return false, fmt.Errorf("%w: %q is not a boolean", ErrAmbiguous, text)
}

// ParseScalar reads a single value of a number, timestamp, boolean or
// string kind from text. Numbers are parsed locale independent.
func ParseScalar(text string, k kind.KindEnum) (value.Value, error) {
	text = strings.TrimSpace(text)
	v := value.Zero(k)

	switch {
	case k.IsSigned():
		n, err := strconv.ParseInt(text, 10, k.Bits())
		if err != nil {
			return nil, numberError(err)
		}

		value.SetNumber(v, float64(n))
	case k.IsUnsigned():
		n, err := strconv.ParseUint(text, 10, k.Bits())
		if err != nil {
			return nil, numberError(err)
		}

		value.SetNumber(v, float64(n))
	case k.IsFloat():
		f, err := strconv.ParseFloat(text, k.Bits())
		if err != nil {
			return nil, numberError(err)
		}

		value.SetNumber(v, f)
	case k == kind.KindTimestamp:
		ts, err := ParseTimestamp(text)
		if err != nil {
			return nil, err
		}

		*value.CastTo[time.Time](v) = ts
	case k == kind.KindBool:
		b, err := ParseBool(text)
		if err != nil {
			return nil, err
		}

		*value.CastTo[bool](v) = b
	case k == kind.KindString:
		*value.CastTo[string](v) = text
	default:
		return nil, fmt.Errorf("%w: %s cannot be parsed as a single value", ErrUnsupported, k.TypeName())
	}

	return v, nil
}

// ParseElements splits text into the elements of a vector or list, each
// parsed as elem. Enclosing brackets are ignored.
func ParseElements(text string, elem kind.KindEnum) ([]value.Value, error) {
	text = strings.Trim(strings.TrimSpace(text), aggregateBrackets)

	var elems []value.Value
	for _, token := range SplitPattern.Split(text, -1) {
		if token == "" {
			continue
		}

		v, err := ParseScalar(token, elem)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", len(elems), err)
		}

		elems = append(elems, v)
	}

	return elems, nil
}

// ParseTimestamp tries every layout of TimestampLayouts.
func ParseTimestamp(text string) (time.Time, error) {
	for _, layout := range TimestampLayouts {
		if ts, err := time.Parse(layout, text); err == nil {
			return ts.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q is not a timestamp", ErrAmbiguous, text)
}

func numberError(err error) error {
	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		return fmt.Errorf("%w: %v", ErrAmbiguous, err)
	}

	if errors.Is(numErr.Err, strconv.ErrRange) {
		return fmt.Errorf("%w: %q", ErrOverflow, numErr.Num)
	}

	return fmt.Errorf("%w: %q is not a number", ErrAmbiguous, numErr.Num)
}
