package wire

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/mash-protocol/isodur/pkg/duration"
	"github.com/mash-protocol/isodur/pkg/units"
)

// Record keys.
const (
	KeyYears        = 1
	KeyMonths       = 2
	KeyWeeks        = 3
	KeyDays         = 4
	KeyHours        = 5
	KeyMinutes      = 6
	KeySeconds      = 7
	KeyMilliseconds = 8
)

// wireRecord is the CBOR form of duration.Record.
type wireRecord struct {
	Years        float64 `cbor:"1,keyasint,omitempty"`
	Months       float64 `cbor:"2,keyasint,omitempty"`
	Weeks        float64 `cbor:"3,keyasint,omitempty"`
	Days         float64 `cbor:"4,keyasint,omitempty"`
	Hours        float64 `cbor:"5,keyasint,omitempty"`
	Minutes      float64 `cbor:"6,keyasint,omitempty"`
	Seconds      float64 `cbor:"7,keyasint,omitempty"`
	Milliseconds float64 `cbor:"8,keyasint,omitempty"`
}

func toWire(r duration.Record) wireRecord {
	return wireRecord{
		Years:        r[units.Years],
		Months:       r[units.Months],
		Weeks:        r[units.Weeks],
		Days:         r[units.Days],
		Hours:        r[units.Hours],
		Minutes:      r[units.Minutes],
		Seconds:      r[units.Seconds],
		Milliseconds: r[units.Milliseconds],
	}
}

func (w wireRecord) record() (duration.Record, error) {
	var r duration.Record
	r[units.Years] = w.Years
	r[units.Months] = w.Months
	r[units.Weeks] = w.Weeks
	r[units.Days] = w.Days
	r[units.Hours] = w.Hours
	r[units.Minutes] = w.Minutes
	r[units.Seconds] = w.Seconds
	r[units.Milliseconds] = w.Milliseconds

	for i, v := range r {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return duration.Record{}, fmt.Errorf("%w: %s = %v", duration.ErrNotFinite, units.Unit(i), v)
		}
	}
	return r, nil
}

// EncodeRecord encodes a record to CBOR bytes.
func EncodeRecord(r duration.Record) ([]byte, error) {
	return Marshal(toWire(r))
}

// DecodeRecord decodes CBOR bytes into a record.
func DecodeRecord(data []byte) (duration.Record, error) {
	var w wireRecord
	if err := Unmarshal(data, &w); err != nil {
		return duration.Record{}, fmt.Errorf("failed to decode record: %w", err)
	}
	return w.record()
}

// RecordWriter writes a stream of records.
type RecordWriter struct {
	enc interface{ Encode(v any) error }
}

// NewRecordWriter creates a RecordWriter that writes to w.
func NewRecordWriter(w io.Writer) *RecordWriter {
	return &RecordWriter{enc: NewEncoder(w)}
}

// Write encodes one record.
func (rw *RecordWriter) Write(r duration.Record) error {
	return rw.enc.Encode(toWire(r))
}

// RecordReader reads a stream of records.
type RecordReader struct {
	dec interface{ Decode(v any) error }
}

// NewRecordReader creates a RecordReader that reads from r.
func NewRecordReader(r io.Reader) *RecordReader {
	return &RecordReader{dec: NewDecoder(r)}
}

// Next returns the next record. Returns io.EOF when the stream is exhausted.
func (rr *RecordReader) Next() (duration.Record, error) {
	var w wireRecord
	if err := rr.dec.Decode(&w); err != nil {
		if errors.Is(err, io.EOF) {
			return duration.Record{}, io.EOF
		}
		return duration.Record{}, fmt.Errorf("failed to decode record: %w", err)
	}
	return w.record()
}
