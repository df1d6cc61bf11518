package log

import "time"

// Event is one step of a serialization trace.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event was recorded. Loggers that persist events
	// fill it in when the producer leaves it zero.
	Timestamp time.Time `cbor:"1,keyasint"`

	// TraceID groups the events of one serialization call.
	TraceID string `cbor:"2,keyasint,omitempty"`

	// Stage is the serializer step that produced the event.
	Stage Stage `cbor:"3,keyasint"`

	// Unit is the unit the step acted on (Fold source, Emit unit).
	Unit string `cbor:"4,keyasint,omitempty"`

	// Target is the unit a Fold accumulated into.
	Target string `cbor:"5,keyasint,omitempty"`

	// Value is the decimal quantity involved, as written by the serializer.
	Value string `cbor:"6,keyasint,omitempty"`

	// Output is the ISO token (Emit) or full string (fast paths, Result).
	Output string `cbor:"7,keyasint,omitempty"`
}

// Stage identifies a serializer step.
type Stage uint8

const (
	// StageZero is the all-zero fast path.
	StageZero Stage = 0
	// StageWeeks is the week-only fast path.
	StageWeeks Stage = 1
	// StageFold is a unit folded into its conversion target.
	StageFold Stage = 2
	// StageEmit is a token appended to the period or time bucket.
	StageEmit Stage = 3
	// StageResult is the assembled string of the general path.
	StageResult Stage = 4
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageZero:
		return "ZERO"
	case StageWeeks:
		return "WEEKS"
	case StageFold:
		return "FOLD"
	case StageEmit:
		return "EMIT"
	case StageResult:
		return "RESULT"
	default:
		return "UNKNOWN"
	}
}

// ParseStage resolves a stage name as printed by String (case-sensitive).
func ParseStage(s string) (Stage, bool) {
	for st := StageZero; st <= StageResult; st++ {
		if st.String() == s {
			return st, true
		}
	}
	return 0, false
}
