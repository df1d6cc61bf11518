package duration

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mash-protocol/isodur/pkg/log"
	"github.com/mash-protocol/isodur/pkg/units"
)

// ErrInvalidConfig is returned by NewSerializer for unusable configurations.
var ErrInvalidConfig = errors.New("invalid serializer config")

const (
	// ZeroDuration is the encoding of a duration whose units are all zero.
	ZeroDuration = "P0D"

	// DefaultFractionDigits is the number of decimal places kept after a
	// unit conversion. Nine places keep nanosecond resolution on seconds.
	DefaultFractionDigits = 9

	// MaxFractionDigits bounds Config.FractionDigits.
	MaxFractionDigits = 30
)

// Config configures a Serializer.
type Config struct {
	// Table lists the units in output order.
	Table *units.Table

	// Parser normalizes Format inputs into Records.
	Parser Parser

	// Logger receives a trace of every serialization. Nil disables tracing.
	Logger log.Logger

	// FractionDigits is the number of decimal places written at most.
	FractionDigits int32
}

// DefaultConfig returns the configuration of the package-level Format.
func DefaultConfig() Config {
	return Config{
		Table:          units.Default(),
		Parser:         DefaultParser,
		Logger:         log.NoopLogger{},
		FractionDigits: DefaultFractionDigits,
	}
}

// Serializer writes Records as ISO 8601 duration strings.
// A Serializer is immutable and safe for concurrent use.
type Serializer struct {
	table  *units.Table
	parser Parser
	logger log.Logger
	digits int32
}

// NewSerializer creates a Serializer from cfg.
func NewSerializer(cfg Config) (*Serializer, error) {
	if cfg.Table == nil {
		return nil, fmt.Errorf("%w: nil unit table", ErrInvalidConfig)
	}
	if cfg.Parser == nil {
		return nil, fmt.Errorf("%w: nil parser", ErrInvalidConfig)
	}
	if cfg.FractionDigits < 0 || cfg.FractionDigits > MaxFractionDigits {
		return nil, fmt.Errorf("%w: fraction digits %d not in [0, %d]", ErrInvalidConfig, cfg.FractionDigits, MaxFractionDigits)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.NoopLogger{}
	}

	return &Serializer{
		table:  cfg.Table,
		parser: cfg.Parser,
		logger: logger,
		digits: cfg.FractionDigits,
	}, nil
}

// WithLogger returns a copy of s that traces to l.
func (s *Serializer) WithLogger(l log.Logger) *Serializer {
	if l == nil {
		l = log.NoopLogger{}
	}
	c := *s
	c.logger = l
	return &c
}

// Table returns the unit table s writes with.
func (s *Serializer) Table() *units.Table {
	return s.table
}

// Format parses input with the configured Parser and encodes the result.
// Parser errors are returned as is.
func (s *Serializer) Format(input any) (string, error) {
	r, err := s.parser.Parse(input)
	if err != nil {
		return "", err
	}
	return s.FormatRecord(r), nil
}

// FormatRecord encodes r. It never fails.
//
// Non-finite counts are treated as zero. A record whose counts cancel out
// or round away after conversion encodes as "P".
func (s *Serializer) FormatRecord(r Record) string {
	if r.IsZero() {
		s.logger.Log(log.Event{Stage: log.StageZero, Output: ZeroDuration})
		return ZeroDuration
	}

	// Weeks cannot be combined with other designators, so they keep their
	// own form only when nothing else is set.
	if r.UnitCount() == 1 && r[units.Weeks] != 0 {
		w := s.round(toDecimal(r[units.Weeks]))
		desc := s.table.Lookup(units.Weeks)
		sign := ""
		if w.IsNegative() {
			sign, w = "-", w.Neg()
		}
		out := sign + "P" + commaDecimal(w.String()+string(weekDesignator(desc)))
		s.logger.Log(log.Event{Stage: log.StageWeeks, Unit: units.Weeks.String(), Value: w.String(), Output: out})
		return out
	}

	var work [units.Count]decimal.Decimal
	for i, v := range r {
		work[i] = toDecimal(v)
	}

	s.fold(&work)

	type token struct {
		unit      units.Unit
		value     decimal.Decimal
		character byte
	}
	var period, clock []token
	negatives, positives := 0, 0

	for i := 0; i < s.table.Len(); i++ {
		d := s.table.At(i)
		if d.Precision == units.PrecisionNone {
			continue
		}
		v := s.round(work[d.Unit])
		if v.IsZero() {
			continue
		}
		if v.IsNegative() {
			negatives++
		} else {
			positives++
		}

		t := token{unit: d.Unit, value: v, character: d.Character}
		if d.Precision == units.PrecisionPeriod {
			period = append(period, t)
		} else {
			clock = append(clock, t)
		}
	}

	// A uniformly negative duration gets one leading sign.
	negate := negatives > 0 && positives == 0
	join := func(tokens []token) string {
		var b strings.Builder
		for _, t := range tokens {
			v := t.value
			if negate {
				v = v.Neg()
			}
			tok := v.String() + string(t.character)
			s.logger.Log(log.Event{Stage: log.StageEmit, Unit: t.unit.String(), Value: t.value.String(), Output: tok})
			b.WriteString(tok)
		}
		return commaDecimal(b.String())
	}

	var b strings.Builder
	if negate {
		b.WriteByte('-')
	}
	b.WriteByte('P')
	b.WriteString(join(period))
	if len(clock) > 0 {
		b.WriteByte('T')
		b.WriteString(join(clock))
	}

	out := b.String()
	s.logger.Log(log.Event{Stage: log.StageResult, Output: out})
	return out
}

// fold moves every unit with a conversion target into that target, in table
// order, so chained conversions resolve.
func (s *Serializer) fold(work *[units.Count]decimal.Decimal) {
	for i := 0; i < s.table.Len(); i++ {
		d := s.table.At(i)
		if !d.HasConvertTo || work[d.Unit].IsZero() {
			continue
		}
		target := s.table.Lookup(d.ConvertTo)

		ms := work[d.Unit].Mul(decimal.NewFromFloat(d.Milliseconds))
		converted := ms.DivRound(decimal.NewFromFloat(target.Milliseconds), s.digits)

		work[d.ConvertTo] = work[d.ConvertTo].Add(converted)
		work[d.Unit] = decimal.Zero

		s.logger.Log(log.Event{
			Stage:  log.StageFold,
			Unit:   d.Unit.String(),
			Target: d.ConvertTo.String(),
			Value:  converted.String(),
		})
	}
}

// round limits v to the configured number of decimal places.
func (s *Serializer) round(v decimal.Decimal) decimal.Decimal {
	return v.Round(s.digits)
}

// toDecimal converts a count using its shortest float representation.
func toDecimal(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

// weekDesignator returns the week letter, falling back to W for tables that
// do not give weeks a designator.
func weekDesignator(d units.Descriptor) byte {
	if d.Character == 0 {
		return 'W'
	}
	return d.Character
}

// commaDecimal replaces decimal points with the ISO preferred comma.
func commaDecimal(s string) string {
	return strings.ReplaceAll(s, ".", ",")
}
