package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/gitrdm/hornlog/internal/config"
	"github.com/gitrdm/hornlog/pkg/logic"
)

// renderAnswers drains stream and prints every Answer per cfg's output
// mode, returning how many were printed. A batch query that produces
// zero answers is QueryFailure (spec.md §7), not an error: the caller
// decides the exit code from the returned count. ctx is checked between
// answer pulls, so a Ctrl-C while a query with many (or unboundedly many)
// answers is printing stops the print loop after the current answer. A
// single pull that never returns (e.g. a left-recursive program, spec.md
// §9) is not stopped by this check. The resolver itself never sees ctx, since cancelling
// a demand-driven pull is entirely the caller's concern (spec.md §5).
func renderAnswers(ctx context.Context, w io.Writer, cfg config.Config, stream *logic.AnswerStream) int {
	first, ok := stream.Next()
	if !ok {
		fmt.Fprintln(w, colorize(cfg, color.FgRed, "false."))
		return 0
	}

	useTable := cfg.Output == config.OutputTable ||
		(cfg.Output == config.OutputAuto && len(first.Bindings) >= 2)

	if useTable {
		return renderTable(ctx, w, cfg, first, stream)
	}
	return renderPlain(ctx, w, cfg, first, stream)
}

func renderPlain(ctx context.Context, w io.Writer, cfg config.Config, first logic.Answer, stream *logic.AnswerStream) int {
	count := 0
	answer, ok := first, true
	for ok {
		fmt.Fprintln(w, colorize(cfg, color.FgGreen, answer.String()))
		count++
		if ctx.Err() != nil {
			fmt.Fprintln(w, colorize(cfg, color.FgYellow, "interrupted"))
			break
		}
		answer, ok = stream.Next()
	}
	return count
}

func renderTable(ctx context.Context, w io.Writer, cfg config.Config, first logic.Answer, stream *logic.AnswerStream) int {
	headers := make([]string, len(first.Bindings))
	for i, vb := range first.Bindings {
		headers[i] = vb.Name
	}

	table := tablewriter.NewTable(w)
	table.Header(headers)

	count := 0
	answer, ok := first, true
	interrupted := false
	for ok {
		row := make([]string, len(answer.Bindings))
		for i, vb := range answer.Bindings {
			row[i] = vb.Value.String()
		}
		_ = table.Append(row)
		count++
		if ctx.Err() != nil {
			interrupted = true
			break
		}
		answer, ok = stream.Next()
	}
	_ = table.Render()
	if interrupted {
		fmt.Fprintln(w, colorize(cfg, color.FgYellow, "interrupted"))
	}
	return count
}

// colorize wraps s in c when cfg.Color is set, else returns s unchanged.
func colorize(cfg config.Config, c color.Attribute, s string) string {
	if !cfg.Color {
		return s
	}
	return color.New(c).Sprint(s)
}

// disableColor turns off fatih/color's global escape-sequence emission,
// for --color=false, so even a direct color.New(...).Sprint call (as
// opposed to our own colorize gate) stays plain.
func disableColor() {
	color.NoColor = true
}
