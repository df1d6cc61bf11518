package duration

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/mash-protocol/isodur/pkg/units"
)

// Parser errors.
var (
	ErrUnsupportedInput = errors.New("unsupported duration input")
	ErrUnknownUnit      = units.ErrUnknownUnit
	ErrDuplicateUnit    = errors.New("unit given more than once")
	ErrNotNumeric       = errors.New("unit value is not numeric")
	ErrNotFinite        = errors.New("unit value is not finite")
)

// Parser normalizes a duration input into a complete Record.
type Parser interface {
	Parse(input any) (Record, error)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(input any) (Record, error)

// Parse calls f(input).
func (f ParserFunc) Parse(input any) (Record, error) {
	return f(input)
}

// DefaultParser is the Parser used by DefaultConfig.
var DefaultParser Parser = ParserFunc(Parse)

// Parse normalizes input into a Record.
//
// Accepted inputs:
//   - nil, the zero duration
//   - any Go integer or float kind, a count of milliseconds
//   - time.Duration
//   - Record and *Record
//   - map[string]float64, map[string]int, map[string]any and
//     map[units.Unit]float64, where string keys are unit names
//
// The returned Record is always a fresh copy.
func Parse(input any) (Record, error) {
	switch v := input.(type) {
	case nil:
		return Record{}, nil
	case Record:
		return v, nil
	case *Record:
		if v == nil {
			return Record{}, nil
		}
		return *v, nil
	case time.Duration:
		return Record{}.With(units.Milliseconds, float64(v)/float64(time.Millisecond)), nil
	case map[string]float64:
		return parseMap(v)
	case map[string]int:
		return parseMap(v)
	case map[string]any:
		return parseMap(v)
	case map[units.Unit]float64:
		var r Record
		for u, n := range v {
			if !u.Valid() {
				return Record{}, fmt.Errorf("%w: %s", ErrUnknownUnit, u)
			}
			if err := checkFinite(u, n); err != nil {
				return Record{}, err
			}
			r[u] = n
		}
		return r, nil
	}

	ms, ok := toFloat(input)
	if !ok {
		return Record{}, fmt.Errorf("%w: %T", ErrUnsupportedInput, input)
	}
	if err := checkFinite(units.Milliseconds, ms); err != nil {
		return Record{}, err
	}
	return Record{}.With(units.Milliseconds, ms), nil
}

// IsZero parses input and reports whether every unit is zero.
func IsZero(input any) (bool, error) {
	r, err := Parse(input)
	if err != nil {
		return false, err
	}
	return r.IsZero(), nil
}

// parseMap fills a Record from a name-keyed map.
func parseMap[V any](m map[string]V) (Record, error) {
	var r Record
	var seen [units.Count]bool

	for name, raw := range m {
		u, err := units.ParseUnit(name)
		if err != nil {
			return Record{}, err
		}
		if seen[u] {
			return Record{}, fmt.Errorf("%w: %s", ErrDuplicateUnit, u)
		}
		seen[u] = true

		n, ok := toFloat(raw)
		if !ok {
			return Record{}, fmt.Errorf("%w: %s is %T", ErrNotNumeric, u, raw)
		}
		if err := checkFinite(u, n); err != nil {
			return Record{}, err
		}
		r[u] = n
	}
	return r, nil
}

func checkFinite(u units.Unit, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s = %v", ErrNotFinite, u, v)
	}
	return nil
}

// toFloat converts any Go numeric value to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
