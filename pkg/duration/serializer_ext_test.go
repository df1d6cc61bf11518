package duration_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mash-protocol/isodur/pkg/duration"
	"github.com/mash-protocol/isodur/pkg/duration/mocks"
	"github.com/mash-protocol/isodur/pkg/units"
)

// customInput is a caller-defined duration shape only a custom parser knows.
type customInput struct {
	hours int
}

func newSerializer(t *testing.T, modify func(*duration.Config)) *duration.Serializer {
	t.Helper()
	cfg := duration.DefaultConfig()
	modify(&cfg)
	s, err := duration.NewSerializer(cfg)
	require.NoError(t, err)
	return s
}

func TestSerializer_UsesInjectedParser(t *testing.T) {
	parser := mocks.NewMockParser(t)
	parser.EXPECT().
		Parse(customInput{hours: 6}).
		Return(duration.Record{}.With(units.Years, 1).With(units.Hours, 6), nil).
		Once()

	s := newSerializer(t, func(c *duration.Config) { c.Parser = parser })

	got, err := s.Format(customInput{hours: 6})
	require.NoError(t, err)
	assert.Equal(t, "P1YT6H", got)
}

func TestSerializer_PropagatesParserErrorUnchanged(t *testing.T) {
	errBoom := errors.New("boom")

	parser := mocks.NewMockParser(t)
	parser.EXPECT().Parse(mock.Anything).Return(duration.Record{}, errBoom)

	s := newSerializer(t, func(c *duration.Config) { c.Parser = parser })

	got, err := s.Format("whatever")
	assert.Empty(t, got)
	assert.Same(t, errBoom, err)
}

func TestSerializer_ParserResultNotShared(t *testing.T) {
	shared := duration.Record{}.With(units.Milliseconds, 2500)

	parser := mocks.NewMockParser(t)
	parser.EXPECT().Parse(mock.Anything).RunAndReturn(func(any) (duration.Record, error) {
		return shared, nil
	}).Twice()

	s := newSerializer(t, func(c *duration.Config) { c.Parser = parser })

	for i := 0; i < 2; i++ {
		got, err := s.Format(nil)
		require.NoError(t, err)
		assert.Equal(t, "PT2,5S", got)
	}
	assert.Equal(t, float64(2500), shared[units.Milliseconds])
}

const chainedTable = `version: "1.0"
units:
  - {unit: milliseconds, milliseconds: 1, stringifyConvertTo: seconds}
  - {unit: seconds, milliseconds: 1000, stringifyConvertTo: minutes}
  - {unit: years, milliseconds: 31557600000, isoPrecision: period, isoCharacter: "Y"}
  - {unit: months, milliseconds: 2629800000, isoPrecision: period, isoCharacter: "M"}
  - {unit: weeks, milliseconds: 604800000, isoPrecision: period, isoCharacter: "W"}
  - {unit: days, milliseconds: 86400000, isoPrecision: period, isoCharacter: "D"}
  - {unit: hours, milliseconds: 3600000, isoPrecision: time, isoCharacter: "H"}
  - {unit: minutes, milliseconds: 60000, isoPrecision: time, isoCharacter: "M"}
`

func TestSerializer_ChainedConversions(t *testing.T) {
	table, err := units.ParseTable([]byte(chainedTable))
	require.NoError(t, err)

	s := newSerializer(t, func(c *duration.Config) { c.Table = table })

	tests := []struct {
		input map[string]any
		want  string
	}{
		{map[string]any{"milliseconds": 30000, "seconds": 30}, "PT1M"},
		{map[string]any{"seconds": 90}, "PT1,5M"},
		{map[string]any{"weeks": 1, "days": 1}, "P1W1D"},
		{map[string]any{"weeks": 3}, "P3W"},
		{map[string]any{"hours": 1, "milliseconds": 6000}, "PT1H0,1M"},
	}

	for _, tt := range tests {
		got, err := s.Format(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %v", tt.input)
	}
}

func TestSerializer_TableOrderSetsOutputOrder(t *testing.T) {
	// Reversed time units are written in table order, not ISO order.
	table, err := units.ParseTable([]byte(`units:
  - {unit: years, milliseconds: 31557600000, isoPrecision: period, isoCharacter: "Y"}
  - {unit: months, milliseconds: 2629800000, isoPrecision: period, isoCharacter: "M"}
  - {unit: weeks, milliseconds: 604800000, stringifyConvertTo: days, isoPrecision: period, isoCharacter: "W"}
  - {unit: days, milliseconds: 86400000, isoPrecision: period, isoCharacter: "D"}
  - {unit: seconds, milliseconds: 1000, isoPrecision: time, isoCharacter: "S"}
  - {unit: hours, milliseconds: 3600000, isoPrecision: time, isoCharacter: "H"}
  - {unit: minutes, milliseconds: 60000, isoPrecision: time, isoCharacter: "M"}
  - {unit: milliseconds, milliseconds: 1, stringifyConvertTo: seconds}
`))
	require.NoError(t, err)

	s := newSerializer(t, func(c *duration.Config) { c.Table = table })
	assert.Equal(t, "PT5S1H", s.FormatRecord(duration.Record{}.With(units.Hours, 1).With(units.Seconds, 5)))
}
