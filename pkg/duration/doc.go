// Package duration encodes durations as ISO 8601 duration strings.
//
// A duration is held as a Record: one count per unit (years down to
// milliseconds), indexed by units.Unit. A Serializer turns a Record into
// normalized ISO text such as "P1YT6H", "PT6S" or "P2W".
//
// # Normalization
//
// ISO 8601 has no millisecond designator and does not allow weeks next to
// other designators. Before writing, every unit whose descriptor names a
// conversion target is folded into that target in table order (milliseconds
// into seconds, weeks into days with the default table). A duration made of
// weeks alone keeps the week form ("P2W").
//
// The all-zero duration is written "P0D", since "P" alone is not valid.
//
// # Numbers
//
// Arithmetic is done on exact decimals. Conversions round half-up to
// Config.FractionDigits decimal places, trailing zeros are dropped and the
// fractional separator is a comma ("PT1,5S").
//
// # Sign
//
// When every written component is negative the duration is written with a
// single leading minus and positive magnitudes ("-P1DT2H"), as ISO 8601-2
// allows. Records that mix signs keep a sign per component ("P1DT-2H"); that
// form is outside the ISO grammar.
//
// # Inputs
//
// Format accepts anything the configured Parser accepts. The default parser
// takes numeric milliseconds, time.Duration, Records, and partial unit maps
// such as map[string]any{"years": 1, "hours": 6} as produced by JSON or YAML
// decoding. Missing units default to zero.
package duration
