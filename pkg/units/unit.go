package units

import (
	"fmt"
	"strings"
)

// Unit identifies one component of a duration.
type Unit uint8

const (
	Years Unit = iota
	Months
	Weeks
	Days
	Hours
	Minutes
	Seconds
	Milliseconds
)

// Count is the number of units. Records are indexed by Unit in [0, Count).
const Count = int(Milliseconds) + 1

var unitNames = [Count]string{
	Years:        "years",
	Months:       "months",
	Weeks:        "weeks",
	Days:         "days",
	Hours:        "hours",
	Minutes:      "minutes",
	Seconds:      "seconds",
	Milliseconds: "milliseconds",
}

// All returns every unit in declaration order.
func All() []Unit {
	all := make([]Unit, Count)
	for i := range all {
		all[i] = Unit(i)
	}
	return all
}

// Valid reports whether u is a known unit.
func (u Unit) Valid() bool {
	return int(u) < Count
}

// String returns the plural unit name, e.g. "hours".
func (u Unit) String() string {
	if !u.Valid() {
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}
	return unitNames[u]
}

// ParseUnit resolves a unit name. Matching is case-insensitive and accepts
// both plural and singular forms ("days", "day").
func ParseUnit(name string) (Unit, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range unitNames {
		if n == candidate || n+"s" == candidate {
			return Unit(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
}

// Precision is the ISO bucket a unit's token is written to.
type Precision uint8

const (
	// PrecisionNone marks a unit that never appears in ISO output directly.
	PrecisionNone Precision = iota

	// PrecisionPeriod units are written before the T separator (Y, M, W, D).
	PrecisionPeriod

	// PrecisionTime units are written after the T separator (H, M, S).
	PrecisionTime
)

// String returns the YAML name of the precision.
func (p Precision) String() string {
	switch p {
	case PrecisionNone:
		return ""
	case PrecisionPeriod:
		return "period"
	case PrecisionTime:
		return "time"
	default:
		return fmt.Sprintf("Precision(%d)", uint8(p))
	}
}

// parsePrecision is the inverse of Precision.String.
func parsePrecision(s string) (Precision, error) {
	switch s {
	case "":
		return PrecisionNone, nil
	case "period":
		return PrecisionPeriod, nil
	case "time":
		return PrecisionTime, nil
	default:
		return 0, fmt.Errorf("%w: unknown isoPrecision %q", ErrInvalidDescriptor, s)
	}
}
