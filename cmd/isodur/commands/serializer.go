// Package commands implements the isodur CLI commands.
package commands

import (
	"fmt"

	"github.com/mash-protocol/isodur/pkg/duration"
	"github.com/mash-protocol/isodur/pkg/log"
	"github.com/mash-protocol/isodur/pkg/units"
)

// SerializerOptions selects the unit table and precision of a serializer.
type SerializerOptions struct {
	// UnitsPath is a YAML unit table. Empty uses the built-in table.
	UnitsPath string

	// Digits is the number of decimal places kept after conversions.
	Digits int

	// Logger receives serializer traces. Nil disables tracing.
	Logger log.Logger
}

// LoadTable returns the table at path, or the built-in table when path is empty.
func LoadTable(path string) (*units.Table, error) {
	if path == "" {
		return units.Default(), nil
	}
	table, err := units.LoadTable(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load unit table: %w", err)
	}
	return table, nil
}

// NewSerializer builds a serializer from command-line options.
func NewSerializer(opts SerializerOptions) (*duration.Serializer, error) {
	table, err := LoadTable(opts.UnitsPath)
	if err != nil {
		return nil, err
	}

	cfg := duration.DefaultConfig()
	cfg.Table = table
	cfg.FractionDigits = int32(opts.Digits)
	if opts.Logger != nil {
		cfg.Logger = opts.Logger
	}
	return duration.NewSerializer(cfg)
}
