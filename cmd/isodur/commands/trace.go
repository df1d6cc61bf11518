package commands

import (
	"fmt"
	"io"

	"github.com/mash-protocol/isodur/pkg/log"
)

// RunTrace prints the events of a trace file that match filter.
func RunTrace(path string, filter log.Filter, w io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	count := 0
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(w, event)
		count++
	}

	fmt.Fprintf(w, "\n%d events\n", count)
	return nil
}

// formatEvent writes a one-line representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [trace:%s] %-6s", ts, shortenTraceID(event.TraceID), event.Stage)

	switch event.Stage {
	case log.StageFold:
		fmt.Fprintf(w, " %s -> %s +%s", event.Unit, event.Target, event.Value)
	case log.StageEmit:
		fmt.Fprintf(w, " %s %s", event.Unit, event.Output)
	default:
		fmt.Fprintf(w, " %s", event.Output)
	}
	fmt.Fprintln(w)
}

// shortenTraceID returns the first 8 characters of a trace ID.
func shortenTraceID(id string) string {
	if id == "" {
		return "-"
	}
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
