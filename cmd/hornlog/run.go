package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitrdm/hornlog/internal/program"
)

var runQuery string

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Load a program file and run one query against it",
		Long: `run loads the clauses in <file> and resolves a single query given with
-q, printing every Answer the resolver produces. Exit status is 0 if at
least one Answer was produced, 1 on QueryFailure (zero Answers), and 2 on
a LexError or ParseError.`,
		Args: cobra.ExactArgs(1),
		RunE: runFunc,
	}
	cmd.Flags().StringVarP(&runQuery, "query", "q", "", "the query to run, e.g. '?- append(X, Y, [1,2]).'")
	if err := cmd.MarkFlagRequired("query"); err != nil {
		program.Log.WithError(err).Fatal("failed to mark --query required")
	}
	return cmd
}

func runFunc(cmd *cobra.Command, args []string) error {
	path := args[0]
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	p, err := program.Load(string(src))
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "loading %s: %v\n", path, err)
		os.Exit(2)
	}
	program.Log.WithFields(map[string]interface{}{
		"file":    path,
		"clauses": p.ClauseCount(),
	}).Info("program loaded for run")

	stream, err := p.Query(runQuery)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "parsing query: %v\n", err)
		os.Exit(2)
	}

	count := renderAnswers(cmd.Context(), cmd.OutOrStdout(), cfg, stream)
	program.Log.WithField("answers", count).Info("query finished")
	if count == 0 {
		os.Exit(1)
	}
	return nil
}
