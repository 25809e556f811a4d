package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitrdm/logicsimplify/pkg/parser"
	"github.com/gitrdm/logicsimplify/pkg/unify"
)

var bidi bool

var unifyCommand = &cobra.Command{
	Use:   "unify <haystack> <needle>",
	Short: "Unify two formulas and print every resulting substitution",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		haystack, err := parser.Parse(args[0])
		if err != nil {
			return err
		}
		needle, err := parser.Parse(args[1])
		if err != nil {
			return err
		}
		log.Debugf("unifying %s against %s (bidi=%v)", haystack, needle, bidi)

		var opts []unify.Option
		if bidi {
			opts = append(opts, unify.Bidirectional())
		}
		subs := unify.Unify(haystack, needle, opts...)

		if len(subs) == 0 {
			fmt.Fprintln(cmdOut, "no unification")
			return nil
		}
		for i, s := range subs {
			fmt.Fprintf(cmdOut, "substitution %d:\n", i+1)
			for _, e := range s.Entries() {
				fmt.Fprintf(cmdOut, "  %s -> %s\n", e.Key, e.Value)
			}
		}
		return nil
	},
}

func init() {
	unifyCommand.Flags().BoolVar(&bidi, "bidi", false, "enable bidirectional unification")
}
