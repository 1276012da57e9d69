// Package enums resolves semantic property types, such as a material's side,
// to the ordered named numeric values a selection control offers.
package enums

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/agnivade/levenshtein"
)

// NullLabel is the option meaning "no value". It always resolves to -1.
const NullLabel = "null"

// NullValue is the numeric value of NullLabel.
const NullValue = -1

// ErrUnresolvableConstant means a registry label has no numeric constant.
// The registry and the constants table are out of sync.
var ErrUnresolvableConstant = errors.New("unresolvable constant")

// Registry maps a type tag to its ordered constant names.
type Registry map[string][]string

// Constants maps a constant name to its value. Only numeric values resolve.
type Constants map[string]any

// Option is one entry of an enumerated control.
type Option struct {
	Label string
	Value int
}

type Resolver struct {
	registry  Registry
	constants Constants
}

func New(registry Registry, constants Constants) *Resolver {
	return &Resolver{registry: registry, constants: constants}
}

// Default resolves against the runtime's built-in tables.
func Default() *Resolver {
	return New(defaultRegistry, defaultConstants)
}

// ResolveOptions returns the options for typeTag in registry order. ok is
// false when the type has no enumeration; callers then offer a plain
// numeric input. A label without a numeric constant is an error.
func (r *Resolver) ResolveOptions(typeTag string) (opts []Option, ok bool, err error) {
	labels, ok := r.registry[typeTag]
	if !ok {
		return nil, false, nil
	}
	opts = make([]Option, 0, len(labels))
	for _, label := range labels {
		if label == NullLabel {
			opts = append(opts, Option{Label: label, Value: NullValue})
			continue
		}
		v, err := numeric(r.constants[label])
		if err != nil {
			return nil, true, fmt.Errorf("%w: %s.%s: %v", ErrUnresolvableConstant, typeTag, label, err)
		}
		opts = append(opts, Option{Label: label, Value: v})
	}
	return opts, true, nil
}

// MustResolveOptions is ResolveOptions for static tables; it panics when the
// tables disagree.
func (r *Resolver) MustResolveOptions(typeTag string) []Option {
	opts, _, err := r.ResolveOptions(typeTag)
	if err != nil {
		panic(err)
	}
	return opts
}

// Label returns the option label for v, if typeTag enumerates it.
func (r *Resolver) Label(typeTag string, v int) (string, error) {
	opts, ok, err := r.ResolveOptions(typeTag)
	if err != nil || !ok {
		return "", err
	}
	for _, o := range opts {
		if o.Value == v {
			return o.Label, nil
		}
	}
	return "", nil
}

// Types lists the registered type tags in sorted order.
func (r *Resolver) Types() []string {
	out := make([]string, 0, len(r.registry))
	for k := range r.registry {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// Suggest returns the registered type closest to typeTag.
func (r *Resolver) Suggest(typeTag string) (string, bool) {
	best, bestDist := "", math.MaxInt
	for _, t := range r.Types() {
		if d := levenshtein.ComputeDistance(typeTag, t); d < bestDist {
			best, bestDist = t, d
		}
	}
	if best == "" || bestDist > max(2, len(typeTag)/2) {
		return "", false
	}
	return best, true
}

func numeric(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		if n < math.MinInt || n > math.MaxInt {
			return 0, fmt.Errorf("value %d out of int range", n)
		}
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("non-integral value %v", n)
		}
		// -math.MinInt is 2^(bits-1), the first float above the int range.
		if n < math.MinInt || n >= -math.MinInt {
			return 0, fmt.Errorf("value %v out of int range", n)
		}
		return int(n), nil
	case nil:
		return 0, errors.New("missing constant")
	default:
		return 0, fmt.Errorf("value %v is %T", v, v)
	}
}
