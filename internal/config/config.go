// Package config holds the small set of knobs the CLI peripheral accepts:
// log level, whether to colorize output, and how to render multi-variable
// answers. None of it reaches pkg/logic — the core stays free of
// configuration and logging side effects; only cmd/hornlog reads a
// Config, and internal/program receives just the logger built from it.
package config

import (
	"github.com/sirupsen/logrus"
)

// OutputMode selects how a batch of Answers is rendered.
type OutputMode string

const (
	// OutputAuto prints plain colorized lines for a single query variable
	// and a table for two or more, per-variable one column.
	OutputAuto OutputMode = "auto"
	// OutputTable always renders answers as a table via tablewriter.
	OutputTable OutputMode = "table"
	// OutputPlain always renders one colorized "Var = value, ..." line
	// per answer, regardless of variable count.
	OutputPlain OutputMode = "plain"
)

// Config is populated from cobra/pflag flags in cmd/hornlog. There is
// deliberately no environment-variable or file-based source: a single
// CLI binary with no persisted state needs none, and the core itself
// never consults a Config (spec's "no flags... required by the core"
// baseline).
type Config struct {
	LogLevel logrus.Level
	Color    bool
	Output   OutputMode
}

// Default returns the Config used when the CLI is invoked with no flags:
// warn-level logging, color enabled, auto output.
func Default() Config {
	return Config{
		LogLevel: logrus.WarnLevel,
		Color:    true,
		Output:   OutputAuto,
	}
}

// NewLogger builds a logrus.Logger at cfg's level. Callers inject the
// result into internal/program and cmd/hornlog; pkg/logic never receives
// one.
func NewLogger(cfg Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(cfg.LogLevel)
	return logger
}

// ParseLevel wraps logrus.ParseLevel so cmd/hornlog doesn't need to import
// logrus just to validate the --log-level flag.
func ParseLevel(s string) (logrus.Level, error) {
	return logrus.ParseLevel(s)
}
