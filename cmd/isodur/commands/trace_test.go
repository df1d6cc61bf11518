package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mash-protocol/isodur/pkg/log"
)

func TestFormatFoldEvent(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 15, 32, 123456000, time.UTC)
	event := log.Event{
		Timestamp: ts,
		TraceID:   "abc12345-6789-0123-4567-890abcdef012",
		Stage:     log.StageFold,
		Unit:      "weeks",
		Target:    "days",
		Value:     "7",
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	if !strings.Contains(output, "2026-01-28T10:15:32.123456Z") {
		t.Errorf("expected microsecond timestamp, got: %s", output)
	}
	if !strings.Contains(output, "[trace:abc12345]") {
		t.Errorf("expected shortened trace ID, got: %s", output)
	}
	if !strings.Contains(output, "FOLD") {
		t.Errorf("expected FOLD stage, got: %s", output)
	}
	if !strings.Contains(output, "weeks -> days +7") {
		t.Errorf("expected fold details, got: %s", output)
	}
}

func TestFormatResultEventWithoutTraceID(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, log.Event{Stage: log.StageResult, Output: "P8D"})
	output := buf.String()

	if !strings.Contains(output, "[trace:-]") {
		t.Errorf("expected placeholder trace ID, got: %s", output)
	}
	if !strings.HasSuffix(strings.TrimSpace(output), "P8D") {
		t.Errorf("expected result output, got: %s", output)
	}
}

func TestRunTraceFiltersByStage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.trace")

	fl, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	s, err := NewSerializer(SerializerOptions{Digits: 9, Logger: log.Tagged(fl, "run-1")})
	if err != nil {
		t.Fatalf("NewSerializer failed: %v", err)
	}
	if got := s.FormatRecord(mustRecord(t, "{weeks: 1, days: 1}")); got != "P8D" {
		t.Fatalf("expected P8D, got %s", got)
	}
	if err := fl.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	stage := log.StageFold
	var buf bytes.Buffer
	if err := RunTrace(path, log.Filter{Stage: &stage}, &buf); err != nil {
		t.Fatalf("RunTrace failed: %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "weeks -> days +7") {
		t.Errorf("expected fold event, got: %s", output)
	}
	if strings.Contains(output, "RESULT") {
		t.Errorf("expected result events to be filtered out, got: %s", output)
	}
	if !strings.Contains(output, "1 events") {
		t.Errorf("expected event count, got: %s", output)
	}
}

func TestRunTraceMissingFile(t *testing.T) {
	err := RunTrace(filepath.Join(t.TempDir(), "missing.trace"), log.Filter{}, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
