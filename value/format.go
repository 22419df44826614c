package value

import (
	"strconv"
	"strings"
	"time"
)

// TimestampLayout is the textual form of timestamps, always rendered in UTC.
const TimestampLayout = time.RFC3339Nano

func formatPayload(v any) string {
	switch x := v.(type) {
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case FVector4:
		return formatVector(x)
	case DVector4:
		return formatVector(x)
	case IVector4:
		return formatVector(x)
	case []int32:
		return formatList(x)
	case []float64:
		return formatList(x)
	case []string:
		return formatList(x)
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case Color24:
		return "{" + formatPayload(x.R) + "," + formatPayload(x.G) + "," + formatPayload(x.B) + "}"
	case Color48:
		return "{" + formatPayload(x.R) + "," + formatPayload(x.G) + "," + formatPayload(x.B) + "}"
	case time.Time:
		return x.UTC().Format(TimestampLayout)
	case *PropMap:
		return x.String()
	}

	return ""
}

// formatVector renders "<x|y|z|t>".
func formatVector[E VectorElem](v Vector4[E]) string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = formatPayload(e)
	}

	return "<" + strings.Join(parts, "|") + ">"
}

// formatList renders "[a,b,c]".
func formatList[E int32 | float64 | string](l []E) string {
	parts := make([]string, len(l))
	for i, e := range l {
		parts[i] = formatPayload(e)
	}

	return "[" + strings.Join(parts, ",") + "]"
}
