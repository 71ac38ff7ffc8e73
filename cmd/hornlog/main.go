// Command hornlog is the CLI/REPL driver around pkg/logic: the parts
// spec.md §1 calls "external collaborators" (lexer, parser, top-level
// driver, I/O, logging, configuration), none of which belong in the core
// itself.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gitrdm/hornlog/internal/config"
	"github.com/gitrdm/hornlog/internal/program"
	"github.com/gitrdm/hornlog/internal/signals"
)

var (
	cfg          = config.Default()
	logLevelFlag = "warning"
	outputFlag   = string(config.OutputAuto)
)

func main() {
	root := &cobra.Command{
		Use:   "hornlog",
		Short: "hornlog is a minimal Horn-clause logic interpreter",
		Long: `hornlog loads a Prolog-family program of facts and rules and resolves
queries against it by SLD resolution, enumerating every answer substitution
under which the query is a logical consequence of the program.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := config.ParseLevel(logLevelFlag)
			if err != nil {
				return err
			}
			cfg.LogLevel = level
			cfg.Output = config.OutputMode(outputFlag)
			if !cfg.Color {
				disableColor()
			}
			program.SetLogger(config.NewLogger(cfg))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevelFlag, "log-level", logLevelFlag,
		"log level: trace, debug, info, warning, error, fatal, panic")
	root.PersistentFlags().BoolVar(&cfg.Color, "color", true, "colorize output")
	root.PersistentFlags().StringVar(&outputFlag, "output", outputFlag,
		"answer output mode: auto, table, plain")

	root.AddCommand(newRunCmd())
	root.AddCommand(newReplCmd())
	root.AddCommand(newCheckCmd())

	if err := root.ExecuteContext(signals.Context()); err != nil {
		os.Exit(1)
	}
}
