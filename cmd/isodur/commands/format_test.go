package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mash-protocol/isodur/pkg/duration"
	"github.com/mash-protocol/isodur/pkg/log"
)

func TestRunFormatText(t *testing.T) {
	var buf bytes.Buffer
	opts := FormatOptions{SerializerOptions: SerializerOptions{Digits: 9}}

	err := RunFormat(opts, []string{"6000", `{"years": 1, "hours": 6}`, "{weeks: 2}", "{}", "1500", "1h30m"}, &buf)
	require.NoError(t, err)

	assert.Equal(t, "PT6S\nP1YT6H\nP2W\nP0D\nPT1,5S\nPT5400S\n", buf.String())
}

func TestRunFormatStopsAtFirstError(t *testing.T) {
	var buf bytes.Buffer
	opts := FormatOptions{SerializerOptions: SerializerOptions{Digits: 9}}

	err := RunFormat(opts, []string{"{days: 3}", "{fortnights: 1}", "{hours: 1}"}, &buf)
	require.Error(t, err)
	assert.ErrorIs(t, err, duration.ErrUnknownUnit)
	assert.Equal(t, "P3D\n", buf.String())
}

func TestRunFormatRequiresInput(t *testing.T) {
	err := RunFormat(FormatOptions{}, nil, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRunFormatUnknownEncoding(t *testing.T) {
	opts := FormatOptions{SerializerOptions: SerializerOptions{Digits: 9}, Input: "xml"}
	err := RunFormat(opts, []string{"1"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown input encoding")
}

func TestRunFormatTagsTraces(t *testing.T) {
	rec := &log.Recorder{}
	ids := []string{"first", "second"}
	opts := FormatOptions{
		SerializerOptions: SerializerOptions{Digits: 9, Logger: rec},
		NewTraceID: func() string {
			id := ids[0]
			ids = ids[1:]
			return id
		},
	}

	err := RunFormat(opts, []string{"0", "{weeks: 1}"}, &bytes.Buffer{})
	require.NoError(t, err)

	events := rec.Events()
	require.Len(t, events, 2)
	assert.Equal(t, log.StageZero, events[0].Stage)
	assert.Equal(t, "first", events[0].TraceID)
	assert.Equal(t, log.StageWeeks, events[1].Stage)
	assert.Equal(t, "second", events[1].TraceID)
}

func TestEncodeThenFormatCBOR(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.cbor")

	var encoded bytes.Buffer
	require.NoError(t, RunEncode([]string{"1500", "{weeks: 2}", "{years: 1, hours: 6}"}, &encoded))
	require.NoError(t, os.WriteFile(path, encoded.Bytes(), 0644))

	var out bytes.Buffer
	opts := FormatOptions{SerializerOptions: SerializerOptions{Digits: 9}, Input: InputCBOR}
	require.NoError(t, RunFormat(opts, []string{path}, &out))

	assert.Equal(t, "PT1,5S\nP2W\nP1YT6H\n", out.String())
}

func TestRunFormatCBORMissingFile(t *testing.T) {
	opts := FormatOptions{SerializerOptions: SerializerOptions{Digits: 9}, Input: InputCBOR}
	err := RunFormat(opts, []string{filepath.Join(t.TempDir(), "missing.cbor")}, &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "failed to open record file"))
}

func TestRunEncodeRejectsBadInput(t *testing.T) {
	var buf bytes.Buffer
	err := RunEncode([]string{"not a duration"}, &buf)
	assert.ErrorIs(t, err, ErrBadInput)
	assert.Zero(t, buf.Len())
}

func TestNewSerializerCustomTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: \"1.0\"\nunits: []\n"), 0644))

	_, err := NewSerializer(SerializerOptions{UnitsPath: path, Digits: 9})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load unit table")
}

func TestNewSerializerRejectsNegativeDigits(t *testing.T) {
	_, err := NewSerializer(SerializerOptions{Digits: -1})
	assert.ErrorIs(t, err, duration.ErrInvalidConfig)
}
