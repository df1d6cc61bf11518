package duration

import "github.com/mash-protocol/isodur/pkg/units"

// Record holds one count per unit, indexed by units.Unit.
// The zero value is the zero duration. Records are values; passing one
// around copies it.
type Record [units.Count]float64

// Get returns the count for u.
func (r Record) Get(u units.Unit) float64 {
	return r[u]
}

// With returns a copy of r with u set to v.
func (r Record) With(u units.Unit, v float64) Record {
	r[u] = v
	return r
}

// IsZero reports whether every unit is zero.
func (r Record) IsZero() bool {
	for _, v := range r {
		if v != 0 {
			return false
		}
	}
	return true
}

// UnitCount returns the number of non-zero units.
func (r Record) UnitCount() int {
	n := 0
	for _, v := range r {
		if v != 0 {
			n++
		}
	}
	return n
}

// Map returns the non-zero units keyed by unit name.
func (r Record) Map() map[string]float64 {
	m := make(map[string]float64, r.UnitCount())
	for i, v := range r {
		if v != 0 {
			m[units.Unit(i).String()] = v
		}
	}
	return m
}

// String returns the ISO 8601 encoding of r using the default serializer.
func (r Record) String() string {
	return defaultSerializer.FormatRecord(r)
}
