package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want any
	}{
		{"integer milliseconds", "6000", 6000.0},
		{"fractional milliseconds", " 1.5 ", 1.5},
		{"go duration", "1h30m", 90 * time.Minute},
		{"json mapping", `{"years": 1, "hours": 6}`, map[string]any{"years": 1, "hours": 6}},
		{"yaml flow mapping", "{weeks: 2}", map[string]any{"weeks": 2}},
		{"yaml block mapping", "days: 3", map[string]any{"days": 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInput(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInputRejects(t *testing.T) {
	for _, in := range []string{"", "   ", "P1D", "[1, 2]", "null"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseInput(in)
			assert.ErrorIs(t, err, ErrBadInput)
		})
	}
}
