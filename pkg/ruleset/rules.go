package ruleset

// Rule string groups mirror the original rule catalogue's organisation:
// negation, equivalence, and implication definitions, conjunction and
// disjunction simplification, De Morgan's laws, and the two distribution
// laws that drive normal-form conversion. The first-order quantifier
// rules from that catalogue are left out; this engine's term algebra has
// no quantifier kind to rewrite over (see SPEC_FULL.md's carried-over
// Non-goals).

var doubleNegation = "!!$X -> $X"

var defNegation = []string{
	"!FALSE -> TRUE",
	"!TRUE -> FALSE",
}

var defEquivalence = []string{
	"($X <-> $X) -> TRUE",
	"($X <-> $Y) -> (($X -> $Y) & ($Y -> $X))",
}

var defImplication = []string{
	"(TRUE -> $X) -> $X",
	"(FALSE -> $X) -> TRUE",
	"($X -> $Y) <-> (!$X | $Y)",
}

var defConjunction = []string{
	"$X &* !$X -> FALSE",
	"$X &* TRUE -> $X",
	"$X &* FALSE -> FALSE",
	"$X# & TRUE -> $X#",
}

var defDisjunction = []string{
	"$X |* !$X -> TRUE",
	"$X |* TRUE -> TRUE",
	"$X# | FALSE -> $X#",
}

var deMorgan = []string{
	"!($X & $Y) <-> (!$X | !$Y)",
	"!($X | $Y) <-> (!$X & !$Y)",
}

var distribDNF = "($X & $Y# | $X & $Z#) <-> ($X & ($Y# | $Z#))"
var distribCNF = "(($X | $Y#) & ($X | $Z#)) <-> ($X | ($Y# & $Z#))"

func standardRuleStrings() []string {
	rules := []string{doubleNegation}
	rules = append(rules, defNegation...)
	rules = append(rules, defEquivalence...)
	rules = append(rules, defImplication...)
	rules = append(rules, defConjunction...)
	rules = append(rules, defDisjunction...)
	rules = append(rules, deMorgan...)
	return rules
}

// StandardRules returns the base rewrite system: negation, equivalence
// and implication normalisation, conjunction/disjunction absorption, and
// De Morgan's laws, without either distribution law.
func StandardRules() (*Ruleset, error) {
	return Build(standardRuleStrings()...)
}

// DNFRules returns StandardRules extended with the distribution law that
// pushes the engine toward disjunctive normal form.
func DNFRules() (*Ruleset, error) {
	return Build(append(standardRuleStrings(), distribDNF)...)
}

// CNFRules returns StandardRules extended with the distribution law that
// pushes the engine toward conjunctive normal form.
func CNFRules() (*Ruleset, error) {
	return Build(append(standardRuleStrings(), distribCNF)...)
}
