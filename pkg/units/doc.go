// Package units describes the duration units understood by isodur.
//
// A Table is the ordered, read-only list of unit descriptors the serializer
// walks. Order matters: conversions are applied and ISO tokens are emitted
// in table order, so the default table lists units from largest to smallest.
//
// # Descriptors
//
// Each descriptor carries the unit's fixed weight in milliseconds, an
// optional conversion target used before stringifying, the ISO bucket the
// unit belongs to (period or time), and its designator letter.
//
// Months and minutes share the designator M. They are told apart by their
// bucket: months sit before the T separator, minutes after it.
//
// # Loading
//
// The default table is embedded as YAML and parsed at init. Custom tables use
// the same schema:
//
//	version: "1.0"
//	units:
//	  - unit: years
//	    milliseconds: 31557600000
//	    isoPrecision: period
//	    isoCharacter: "Y"
//	  - unit: milliseconds
//	    milliseconds: 1
//	    stringifyConvertTo: seconds
//
// Every unit must appear exactly once.
package units
