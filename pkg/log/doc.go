// Package log provides structured trace logging for the isodur serializer.
//
// This package defines the Logger interface and Event type for capturing
// each decision the serializer makes while encoding a duration: fast paths,
// unit folds, emitted tokens and the final result. It is separate from
// operational logging (slog); a trace is a machine-readable record of how a
// particular string was produced.
//
// # Basic Usage
//
// Serializers take a Logger in their configuration:
//
//	// For development: log to console via slog
//	cfg.Logger = log.NewSlogAdapter(slog.Default())
//
//	// For later inspection: write to a binary file
//	cfg.Logger, _ = log.NewFileLogger("isodur.trace")
//
//	// Both: use MultiLogger
//	cfg.Logger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// The zero configuration uses NoopLogger, which keeps serialization free of
// side effects.
//
// # File Format
//
// Trace files are a stream of CBOR-encoded events with integer keys. The
// "isodur trace" command prints them.
package log
