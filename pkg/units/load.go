package units

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/mash-protocol/isodur/pkg/version"
)

//go:embed units.yaml
var defaultTableYAML []byte

var defaultTable *Table

var validate = validator.New()

func init() {
	var err error
	defaultTable, err = ParseTable(defaultTableYAML)
	if err != nil {
		panic(fmt.Sprintf("failed to parse embedded unit table: %v", err))
	}
}

// Default returns the built-in unit table.
func Default() *Table {
	return defaultTable
}

// rawTable is the YAML form of a unit table.
type rawTable struct {
	Version string          `yaml:"version"`
	Units   []rawDescriptor `yaml:"units" validate:"required,dive"`
}

// rawDescriptor is the YAML form of a Descriptor.
type rawDescriptor struct {
	Unit               string  `yaml:"unit" validate:"required"`
	Milliseconds       float64 `yaml:"milliseconds" validate:"gt=0"`
	StringifyConvertTo string  `yaml:"stringifyConvertTo"`
	ISOPrecision       string  `yaml:"isoPrecision" validate:"omitempty,oneof=period time"`
	ISOCharacter       string  `yaml:"isoCharacter" validate:"omitempty,len=1,alpha"`
}

// ParseTable parses and checks a unit table from YAML bytes.
func ParseTable(data []byte) (*Table, error) {
	var raw rawTable
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing unit table: %w", err)
	}

	if _, err := version.CheckTableSchema(raw.Version); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIncompatibleVersion, err)
	}

	if err := validate.Struct(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDescriptor, err)
	}

	descs, err := buildDescriptors(raw.Units)
	if err != nil {
		return nil, err
	}

	v := raw.Version
	if v == "" {
		v = version.TableSchema
	}
	return newTable(v, descs), nil
}

// LoadTable loads and parses a unit table from a file.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseTable(data)
}

func buildDescriptors(raw []rawDescriptor) ([]Descriptor, error) {
	var seen [Count]bool
	descs := make([]Descriptor, 0, len(raw))

	for _, r := range raw {
		u, err := ParseUnit(r.Unit)
		if err != nil {
			return nil, err
		}
		if seen[u] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateUnit, u)
		}
		seen[u] = true

		p, err := parsePrecision(r.ISOPrecision)
		if err != nil {
			return nil, err
		}
		if p != PrecisionNone && r.ISOCharacter == "" {
			return nil, fmt.Errorf("%w: %s has isoPrecision %s but no isoCharacter", ErrInvalidDescriptor, u, p)
		}

		d := Descriptor{
			Unit:         u,
			Milliseconds: r.Milliseconds,
			Precision:    p,
		}
		if p != PrecisionNone {
			d.Character = r.ISOCharacter[0]
		}

		if r.StringifyConvertTo != "" {
			target, err := ParseUnit(r.StringifyConvertTo)
			if err != nil {
				return nil, fmt.Errorf("%w: %s -> %q", ErrBadConvertTarget, u, r.StringifyConvertTo)
			}
			if target == u {
				return nil, fmt.Errorf("%w: %s converts to itself", ErrBadConvertTarget, u)
			}
			d.ConvertTo = target
			d.HasConvertTo = true
		}

		descs = append(descs, d)
	}

	for i, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingUnit, Unit(i))
		}
	}
	return descs, nil
}
