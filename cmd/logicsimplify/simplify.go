package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gitrdm/logicsimplify/pkg/parser"
	"github.com/gitrdm/logicsimplify/pkg/rewrite"
	"github.com/gitrdm/logicsimplify/pkg/ruleset"
)

var (
	extraRules []string
	baseRules  string
)

var simplifyCommand = &cobra.Command{
	Use:   "simplify <formula>",
	Short: "Simplify a formula under a ruleset",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		t, err := parser.Parse(args[0])
		if err != nil {
			return err
		}
		log.Debugf("parsed formula: %s", t)

		r, err := buildRuleset(baseRules, extraRules)
		if err != nil {
			return err
		}
		log.Debugf("ruleset built with %d entries", r.Len())

		result := rewrite.Simplify(t, r)
		color.New(color.FgGreen, color.Bold).Fprintln(cmdOut, result.String())
		return nil
	},
}

func init() {
	simplifyCommand.Flags().StringArrayVar(&extraRules, "rule", nil,
		`an additional rule string, e.g. "A & B -> C" (repeatable)`)
	simplifyCommand.Flags().StringVar(&baseRules, "base", "std",
		`base ruleset to start from: "std", "dnf", "cnf", or "none"`)
}

func buildRuleset(base string, extra []string) (*ruleset.Ruleset, error) {
	var (
		r   *ruleset.Ruleset
		err error
	)
	switch base {
	case "std":
		r, err = ruleset.StandardRules()
	case "dnf":
		r, err = ruleset.DNFRules()
	case "cnf":
		r, err = ruleset.CNFRules()
	case "none":
		r, err = ruleset.Build()
	default:
		return nil, fmt.Errorf("simplify: unknown base ruleset %q", base)
	}
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return r, nil
	}
	return r.Add(extra...)
}
