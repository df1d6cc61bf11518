package commands

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/mash-protocol/isodur/pkg/duration"
	"github.com/mash-protocol/isodur/pkg/log"
)

// REPL formats duration inputs read line by line.
type REPL struct {
	serializer *duration.Serializer
	rl         *readline.Instance
	trace      bool
}

// NewREPL creates a REPL around s. The readline instance is created by Run.
func NewREPL(s *duration.Serializer) *REPL {
	return &REPL{serializer: s}
}

// Run starts the interactive loop. It returns when the user quits, input
// ends, or ctx is cancelled.
func (r *REPL) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "isodur> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	r.rl = rl
	defer rl.Close()

	fmt.Fprint(rl.Stdout(), helpText)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			return nil
		}

		out, quit := r.Eval(line)
		if out != "" {
			fmt.Fprintln(rl.Stdout(), out)
		}
		if quit {
			return nil
		}
	}
}

// Eval handles a single input line and returns the text to print and
// whether the session should end.
func (r *REPL) Eval(line string) (string, bool) {
	input := strings.TrimSpace(line)
	if input == "" {
		return "", false
	}

	switch strings.ToLower(input) {
	case "help", "?":
		return strings.TrimRight(helpText, "\n"), false
	case "quit", "exit", "q":
		return "Exiting...", true
	case "table", "t":
		var buf bytes.Buffer
		if err := RunTable(r.serializer.Table(), &buf); err != nil {
			return "Error: " + err.Error(), false
		}
		return strings.TrimRight(buf.String(), "\n"), false
	case "trace on":
		r.trace = true
		return "Tracing enabled", false
	case "trace off":
		r.trace = false
		return "Tracing disabled", false
	}

	in, err := ParseInput(input)
	if err != nil {
		return "Error: " + err.Error(), false
	}
	rec, err := duration.Parse(in)
	if err != nil {
		return "Error: " + err.Error(), false
	}

	if !r.trace {
		return r.serializer.FormatRecord(rec), false
	}

	recorder := &log.Recorder{}
	out := r.serializer.WithLogger(recorder).FormatRecord(rec)
	var buf bytes.Buffer
	for _, ev := range recorder.Events() {
		writeTraceLine(&buf, ev)
	}
	buf.WriteString(out)
	return buf.String(), false
}

func writeTraceLine(w io.Writer, ev log.Event) {
	switch ev.Stage {
	case log.StageFold:
		fmt.Fprintf(w, "  %-6s %s -> %s +%s\n", ev.Stage, ev.Unit, ev.Target, ev.Value)
	case log.StageEmit:
		fmt.Fprintf(w, "  %-6s %s %s\n", ev.Stage, ev.Unit, ev.Output)
	default:
		fmt.Fprintf(w, "  %-6s %s\n", ev.Stage, ev.Output)
	}
}

const helpText = `
isodur interactive mode
  <input>      - Format an input: milliseconds (1500), a Go duration (1h30m)
                 or a mapping ({years: 1, hours: 6})
  table        - Show the unit table
  trace on|off - Show serializer decisions for each input
  help         - Show this help
  quit         - Exit
`
