// Package version provides unit table schema version parsing and comparison.
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// TableSchema is the unit table schema version understood by this library.
const TableSchema = "1.0"

// Tool is the release version reported by the isodur command.
const Tool = "0.3.0"

// ErrIncompatible is returned when a schema version has a different major version.
var ErrIncompatible = errors.New("incompatible schema version")

// SchemaVersion represents a parsed "major.minor" schema version.
type SchemaVersion struct {
	Major uint16
	Minor uint16
}

// Parse parses a "major.minor" version string.
func Parse(s string) (SchemaVersion, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return SchemaVersion{}, fmt.Errorf("invalid version %q: expected major.minor", s)
	}

	major, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil || parts[0] == "" {
		return SchemaVersion{}, fmt.Errorf("invalid version %q: bad major component", s)
	}

	minor, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil || parts[1] == "" {
		return SchemaVersion{}, fmt.Errorf("invalid version %q: bad minor component", s)
	}

	return SchemaVersion{Major: uint16(major), Minor: uint16(minor)}, nil
}

// String returns the version as "major.minor".
func (v SchemaVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compatible returns true if the other version has the same major version.
func (v SchemaVersion) Compatible(other SchemaVersion) bool {
	return v.Major == other.Major
}

// CheckTableSchema parses s and verifies it can be read by this library.
// An empty string is treated as the current schema.
func CheckTableSchema(s string) (SchemaVersion, error) {
	current, _ := Parse(TableSchema)
	if s == "" {
		return current, nil
	}

	v, err := Parse(s)
	if err != nil {
		return SchemaVersion{}, err
	}
	if !current.Compatible(v) {
		return SchemaVersion{}, fmt.Errorf("%w: %s (supported: %s)", ErrIncompatible, v, current)
	}
	return v, nil
}
