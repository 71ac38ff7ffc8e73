package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gitrdm/hornlog/internal/program"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl [file]",
		Short: "Interactive read-eval-print loop over a program",
		Long: `repl optionally loads [file], then reads one line at a time from the
terminal. A line starting with "?-" is run as a query and every Answer in
its stream is printed; any other line is parsed as a clause and appended
to the running program (fact or rule consult, growing the database for
subsequent queries). The REPL itself, its history and its line editing
are external collaborators to the interpreter core, per spec.md §1.`,
		Args: cobra.MaximumNArgs(1),
		RunE: replFunc,
	}
}

func replFunc(cmd *cobra.Command, args []string) error {
	src := ""
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
		src = string(data)
	}

	p, err := program.Load(src)
	if err != nil {
		return fmt.Errorf("loading program: %w", err)
	}
	program.Log.WithField("clauses", p.ClauseCount()).Info("repl started")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          colorize(cfg, color.FgCyan, "?- "),
		HistoryFile:     historyFilePath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("starting line editor: %w", err)
	}
	defer rl.Close()

	ctx := cmd.Context()
	for ctx.Err() == nil {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(strings.TrimSpace(line)) == 0 {
				break
			}
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		replLine(ctx, cmd, p, line)
	}
	return nil
}

func replLine(ctx context.Context, cmd *cobra.Command, p *program.Program, line string) {
	out := cmd.OutOrStdout()
	if strings.HasPrefix(line, "?-") {
		stream, err := p.Query(line)
		if err != nil {
			fmt.Fprintln(out, colorize(cfg, color.FgRed, err.Error()))
			return
		}
		renderAnswers(ctx, out, cfg, stream)
		return
	}

	if err := p.Assert(line); err != nil {
		fmt.Fprintln(out, colorize(cfg, color.FgRed, err.Error()))
		return
	}
	fmt.Fprintln(out, colorize(cfg, color.FgYellow, "asserted"))
}

func historyFilePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return dir + "/hornlog_history"
}
