package units

import "errors"

// Table errors.
var (
	ErrUnknownUnit         = errors.New("unknown unit")
	ErrDuplicateUnit       = errors.New("duplicate unit")
	ErrMissingUnit         = errors.New("missing unit")
	ErrBadConvertTarget    = errors.New("bad stringifyConvertTo target")
	ErrInvalidDescriptor   = errors.New("invalid unit descriptor")
	ErrIncompatibleVersion = errors.New("incompatible unit table version")
)

// Descriptor is the static metadata of one unit.
type Descriptor struct {
	// Unit is the unit described.
	Unit Unit

	// Milliseconds is the fixed weight of one Unit in milliseconds.
	Milliseconds float64

	// ConvertTo is the unit this unit's value is folded into before
	// stringifying. Only meaningful when HasConvertTo is set.
	ConvertTo    Unit
	HasConvertTo bool

	// Precision selects the ISO bucket; PrecisionNone units are never written.
	Precision Precision

	// Character is the ISO designator letter. Zero for PrecisionNone units.
	Character byte
}

// Table is an ordered, immutable set of unit descriptors.
// It is safe for concurrent use.
type Table struct {
	version string
	descs   []Descriptor
	byUnit  [Count]int
}

// newTable builds a table from descriptors that were already checked for
// completeness and uniqueness.
func newTable(version string, descs []Descriptor) *Table {
	t := &Table{
		version: version,
		descs:   descs,
	}
	for i, d := range descs {
		t.byUnit[d.Unit] = i
	}
	return t
}

// Version returns the schema version the table was loaded with.
func (t *Table) Version() string {
	return t.version
}

// Len returns the number of descriptors.
func (t *Table) Len() int {
	return len(t.descs)
}

// Descriptors returns a copy of the descriptors in table order.
func (t *Table) Descriptors() []Descriptor {
	out := make([]Descriptor, len(t.descs))
	copy(out, t.descs)
	return out
}

// At returns the i-th descriptor in table order.
func (t *Table) At(i int) Descriptor {
	return t.descs[i]
}

// Lookup returns the descriptor for u. It panics if u is not a valid unit.
func (t *Table) Lookup(u Unit) Descriptor {
	return t.descs[t.byUnit[u]]
}

// LookupName returns the descriptor for the named unit.
func (t *Table) LookupName(name string) (Descriptor, bool) {
	u, err := ParseUnit(name)
	if err != nil {
		return Descriptor{}, false
	}
	return t.Lookup(u), true
}
