package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/mash-protocol/isodur/pkg/duration"
	"github.com/mash-protocol/isodur/pkg/log"
	"github.com/mash-protocol/isodur/pkg/wire"
)

// Input encodings accepted by the format command.
const (
	InputText = "text"
	InputCBOR = "cbor"
)

// FormatOptions configures RunFormat.
type FormatOptions struct {
	SerializerOptions

	// Input is InputText (arguments are duration inputs) or InputCBOR
	// (arguments are files of CBOR records).
	Input string

	// NewTraceID returns the trace ID stamped on each input's events.
	// Nil uses random UUIDs.
	NewTraceID func() string
}

// RunFormat writes the ISO 8601 encoding of every input to w, one per line.
// It stops at the first input that cannot be read.
func RunFormat(opts FormatOptions, args []string, w io.Writer) error {
	if len(args) == 0 {
		return errors.New("at least one input required")
	}

	s, err := NewSerializer(opts.SerializerOptions)
	if err != nil {
		return err
	}

	newID := opts.NewTraceID
	if newID == nil {
		newID = uuid.NewString
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NoopLogger{}
	}

	emit := func(r duration.Record) {
		out := s.WithLogger(log.Tagged(logger, newID())).FormatRecord(r)
		fmt.Fprintln(w, out)
	}

	switch opts.Input {
	case "", InputText:
		for _, arg := range args {
			in, err := ParseInput(arg)
			if err != nil {
				return err
			}
			r, err := duration.Parse(in)
			if err != nil {
				return fmt.Errorf("%q: %w", arg, err)
			}
			emit(r)
		}
	case InputCBOR:
		for _, path := range args {
			if err := formatCBORFile(path, emit); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unknown input encoding: %s (use: text, cbor)", opts.Input)
	}
	return nil
}

func formatCBORFile(path string, emit func(duration.Record)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open record file: %w", err)
	}
	defer f.Close()

	reader := wire.NewRecordReader(f)
	for {
		r, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		emit(r)
	}
}

// RunEncode parses every input and writes it to w as a stream of CBOR records.
func RunEncode(args []string, w io.Writer) error {
	if len(args) == 0 {
		return errors.New("at least one input required")
	}

	writer := wire.NewRecordWriter(w)
	for _, arg := range args {
		in, err := ParseInput(arg)
		if err != nil {
			return err
		}
		r, err := duration.Parse(in)
		if err != nil {
			return fmt.Errorf("%q: %w", arg, err)
		}
		if err := writer.Write(r); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	return nil
}
