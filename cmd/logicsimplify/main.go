// Command logicsimplify is a CLI front end over pkg/parser, pkg/unify,
// pkg/ruleset, pkg/rewrite, and pkg/eval: parse a formula, simplify it
// under a ruleset, inspect its truth table, or run unification directly.
package main

import "os"

func main() {
	os.Exit(run())
}
