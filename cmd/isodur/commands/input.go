package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrBadInput is returned for text that is not a duration input.
var ErrBadInput = errors.New("not a duration input")

// ParseInput converts one command-line argument into a value the duration
// parser accepts.
//
// Accepted forms:
//   - a number, read as milliseconds: "6000", "1.5"
//   - a Go duration: "1h30m", "250ms"
//   - a JSON or YAML mapping of unit names: '{"years": 1, "hours": 6}',
//     "{weeks: 2}", "days: 3"
func ParseInput(s string) (any, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrBadInput)
	}

	if ms, err := strconv.ParseFloat(s, 64); err == nil {
		return ms, nil
	}

	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}

	var m map[string]any
	if err := yaml.Unmarshal([]byte(s), &m); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrBadInput, s, err)
	}
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrBadInput, s)
	}
	return m, nil
}
