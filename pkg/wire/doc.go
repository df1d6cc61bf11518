// Package wire defines the CBOR wire format of duration records.
//
// Records are CBOR (RFC 8949) maps with integer keys, one key per unit in
// unit order. Zero units are absent, so the zero duration encodes as an
// empty map.
//
//	1 years   2 months   3 weeks    4 days
//	5 hours   6 minutes  7 seconds  8 milliseconds
//
// Values are floats; decoders also accept CBOR integers. Encoding is
// deterministic: keys are sorted canonically and floats use the shortest
// form that preserves their value.
package wire
