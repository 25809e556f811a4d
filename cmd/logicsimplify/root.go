package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

var cmdOut io.Writer = os.Stdout

var verbose bool

var rootCommand = &cobra.Command{
	Use:           "logicsimplify",
	Short:         "Parse, unify, and simplify propositional formulas",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		} else {
			log.SetLevel(logrus.WarnLevel)
		}
	},
}

func init() {
	rootCommand.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable operator-facing progress logging")
	rootCommand.AddCommand(simplifyCommand, tableCommand, unifyCommand)
}

func run() int {
	if err := rootCommand.Execute(); err != nil {
		log.Error(err)
		return 1
	}
	return 0
}
