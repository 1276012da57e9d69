package params

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jask/scenescope/internal/enums"
)

// Format renders a decoded property value for display. Enum values are shown
// by label; an enum whose table is inconsistent returns the integrity error.
func Format(p Prop, v any, r *enums.Resolver) (string, error) {
	if v == nil {
		if p.Default == nil {
			return "-", nil
		}
		v = p.Default
	}
	switch p.Kind {
	case KindVec3:
		parts, ok := v.([]any)
		if !ok {
			return fmt.Sprint(v), nil
		}
		out := make([]string, 0, len(parts))
		for _, c := range parts {
			out = append(out, formatNumber(c, p.Precision))
		}
		return "(" + strings.Join(out, ", ") + ")", nil
	case KindNumber:
		return formatNumber(v, p.Precision), nil
	case KindBoolean:
		if b, ok := v.(bool); ok {
			return strconv.FormatBool(b), nil
		}
	case KindColor:
		if n, ok := AsInt(v); ok {
			return fmt.Sprintf("#%06x", n), nil
		}
	case KindEnum:
		n, ok := AsInt(v)
		if !ok {
			return fmt.Sprint(v), nil
		}
		if r == nil {
			return strconv.Itoa(n), nil
		}
		label, err := r.Label(p.EnumType, n)
		if err != nil {
			return "", err
		}
		if label == "" {
			return strconv.Itoa(n), nil
		}
		return label, nil
	}
	return fmt.Sprint(v), nil
}

// Vec3 decodes a three-component vector. Missing or non-numeric components
// read as zero.
func Vec3(v any) [3]float64 {
	var out [3]float64
	parts, _ := v.([]any)
	for i := 0; i < len(out) && i < len(parts); i++ {
		switch n := parts[i].(type) {
		case float64:
			out[i] = n
		case int:
			out[i] = float64(n)
		}
	}
	return out
}

// AsInt converts a decoded JSON number to an int.
func AsInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), n == float64(int(n))
	case int:
		return n, true
	default:
		return 0, false
	}
}

func formatNumber(v any, precision int) string {
	f, ok := v.(float64)
	if !ok {
		if n, ok := v.(int); ok {
			f = float64(n)
		} else {
			return fmt.Sprint(v)
		}
	}
	if precision <= 0 && f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	if precision <= 0 {
		precision = 3
	}
	return strconv.FormatFloat(f, 'f', precision, 64)
}
