package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gitrdm/logicsimplify/pkg/eval"
	"github.com/gitrdm/logicsimplify/pkg/parser"
)

var showMinimal bool

var tableCommand = &cobra.Command{
	Use:   "table <formula>",
	Short: "Print a formula's truth table, density, and operator number",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		t, err := parser.Parse(args[0])
		if err != nil {
			return err
		}
		log.Debugf("parsed formula: %s", t)

		tbl, err := eval.BuildTable(t)
		if err != nil {
			return err
		}
		log.Debugf("enumerated %d rows over %d variables", len(tbl.Rows), len(tbl.Variables))

		tbl.Render(cmdOut)
		fmt.Fprintf(cmdOut, "density: %.3f\n", tbl.TruthDensity())
		fmt.Fprintf(cmdOut, "operator number: %d\n", tbl.OperatorNumber())

		if showMinimal {
			minimal, ok := tbl.MinimalTerm()
			label := color.New(color.FgYellow)
			if !ok {
				label.Fprint(cmdOut, "minimal form (incomplete cover): ")
			} else {
				label.Fprint(cmdOut, "minimal form: ")
			}
			fmt.Fprintln(cmdOut, minimal.String())
		}
		return nil
	},
}

func init() {
	tableCommand.Flags().BoolVar(&showMinimal, "minimal", false,
		"also print a best-effort Quine-McCluskey minimised form")
}
