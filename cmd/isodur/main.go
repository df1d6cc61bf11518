// Command isodur encodes durations as ISO 8601 duration strings.
//
// Usage:
//
//	isodur <command> [flags] [args]
//
// Commands:
//
//	format   Format durations as ISO 8601 strings
//	encode   Encode durations as a CBOR record stream
//	table    Show the unit table
//	trace    View a serializer trace file
//	repl     Interactive mode
//	version  Show version information
//
// Examples:
//
//	# Milliseconds, Go durations and mappings
//	isodur format 6000 1h30m '{years: 1, hours: 6}'
//
//	# Round-trip through the record wire form
//	isodur encode -o records.cbor 1500 '{weeks: 2}'
//	isodur format -in cbor records.cbor
//
//	# Record serializer decisions and inspect them
//	isodur format -trace-file run.trace '{weeks: 1, days: 1}'
//	isodur trace -stage FOLD run.trace
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mash-protocol/isodur/cmd/isodur/commands"
	"github.com/mash-protocol/isodur/pkg/duration"
	"github.com/mash-protocol/isodur/pkg/log"
	"github.com/mash-protocol/isodur/pkg/version"
)

const usage = `isodur - ISO 8601 Duration Serializer

Usage:
  isodur <command> [flags] [args]

Commands:
  format   Format durations as ISO 8601 strings
  encode   Encode durations as a CBOR record stream
  table    Show the unit table
  trace    View a serializer trace file
  repl     Interactive mode
  version  Show version information

Use "isodur <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "format":
		runFormat(args)
	case "encode":
		runEncode(args)
	case "table":
		runTable(args)
	case "trace":
		runTrace(args)
	case "repl":
		runREPL(args)
	case "version":
		fmt.Printf("isodur %s (unit table schema %s)\n", version.Tool, version.TableSchema)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func runFormat(args []string) {
	fs := flag.NewFlagSet("format", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `isodur format - Format durations as ISO 8601 strings

Usage:
  isodur format [flags] <input>...

Each input is a number of milliseconds, a Go duration (1h30m) or a
mapping of unit names to counts ({years: 1, hours: 6}). With -in cbor
each argument is a file written by "isodur encode".

Flags:
`)
		fs.PrintDefaults()
	}

	unitsPath := fs.String("units", "", "Unit table YAML file (default: built-in table)")
	digits := fs.Int("digits", duration.DefaultFractionDigits, "Maximum fraction digits")
	input := fs.String("in", commands.InputText, "Input encoding (text, cbor)")
	trace := fs.Bool("trace", false, "Log serializer decisions to stderr")
	traceFile := fs.String("trace-file", "", "Write serializer decisions to a CBOR trace file")
	logLevel := fs.String("log-level", "info", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: at least one input required")
		fs.Usage()
		os.Exit(1)
	}

	logger := newLogger(*logLevel, *trace)

	var traceLoggers []log.Logger
	if *trace {
		traceLoggers = append(traceLoggers, log.NewSlogAdapter(logger))
	}
	var fileLogger *log.FileLogger
	if *traceFile != "" {
		fl, err := log.NewFileLogger(*traceFile)
		if err != nil {
			fatal(fmt.Errorf("failed to open trace file: %w", err))
		}
		fileLogger = fl
		traceLoggers = append(traceLoggers, fl)
		logger.Info("writing trace", "path", *traceFile)
	}

	opts := commands.FormatOptions{
		SerializerOptions: commands.SerializerOptions{
			UnitsPath: *unitsPath,
			Digits:    *digits,
			Logger:    log.NewMultiLogger(traceLoggers...),
		},
		Input: *input,
	}

	err := commands.RunFormat(opts, fs.Args(), os.Stdout)
	if fileLogger != nil {
		fileLogger.Close()
	}
	if err != nil {
		fatal(err)
	}
}

func runEncode(args []string) {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `isodur encode - Encode durations as a CBOR record stream

Usage:
  isodur encode [flags] <input>...

Flags:
`)
		fs.PrintDefaults()
	}

	output := fs.String("o", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: at least one input required")
		fs.Usage()
		os.Exit(1)
	}

	var w io.Writer = os.Stdout
	var out *os.File
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			fatal(fmt.Errorf("failed to create output file: %w", err))
		}
		out, w = f, f
	}

	err := commands.RunEncode(fs.Args(), w)
	if out != nil {
		out.Close()
	}
	if err != nil {
		fatal(err)
	}
}

func runTable(args []string) {
	fs := flag.NewFlagSet("table", flag.ExitOnError)
	unitsPath := fs.String("units", "", "Unit table YAML file (default: built-in table)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	table, err := commands.LoadTable(*unitsPath)
	if err != nil {
		fatal(err)
	}
	if err := commands.RunTable(table, os.Stdout); err != nil {
		fatal(err)
	}
}

func runTrace(args []string) {
	fs := flag.NewFlagSet("trace", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `isodur trace - View a serializer trace file

Usage:
  isodur trace [flags] <file.trace>

Flags:
`)
		fs.PrintDefaults()
	}

	traceID := fs.String("id", "", "Filter by trace ID")
	stage := fs.String("stage", "", "Filter by stage (ZERO, WEEKS, FOLD, EMIT, RESULT)")
	unit := fs.String("unit", "", "Filter by unit")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}

	filter := log.Filter{TraceID: *traceID, Unit: *unit}
	if *stage != "" {
		s, ok := log.ParseStage(strings.ToUpper(*stage))
		if !ok {
			fatal(fmt.Errorf("unknown stage: %s", *stage))
		}
		filter.Stage = &s
	}

	if err := commands.RunTrace(fs.Arg(0), filter, os.Stdout); err != nil {
		fatal(err)
	}
}

func runREPL(args []string) {
	fs := flag.NewFlagSet("repl", flag.ExitOnError)
	unitsPath := fs.String("units", "", "Unit table YAML file (default: built-in table)")
	digits := fs.Int("digits", duration.DefaultFractionDigits, "Maximum fraction digits")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	s, err := commands.NewSerializer(commands.SerializerOptions{UnitsPath: *unitsPath, Digits: *digits})
	if err != nil {
		fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.NewREPL(s).Run(ctx); err != nil {
		fatal(err)
	}
}

// newLogger builds the operational logger on stderr. Tracing forces the
// debug level so trace events are visible.
func newLogger(level string, trace bool) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	if trace {
		l = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
