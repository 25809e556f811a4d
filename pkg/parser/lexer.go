// Package parser turns the concrete syntax spec.md §6 describes into
// pkg/term values: truth literals, negation, the binary connectives (with
// their ASCII and Unicode aliases), parentheses, predicate application,
// and the placeholder/rest-placeholder/subset-marker conventions that
// the unification engine relies on.
package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// tokDef is the participle simple lexer: a sequence of named regular
// expressions tried in order, the same mechanism the pack's dingo parser
// uses for its own symbol-heavy grammar. Only the lexer is reused from
// participle — the grammar itself is a hand-written recursive-descent
// parser below, not participle's declarative struct-tag layer (see
// DESIGN.md for why).
var tokDef = buildLexer()

func buildLexer() lexer.Definition {
	def, err := lexer.NewSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `\s+`},
		{Name: "Equ", Pattern: `<->|==|↔|≡`},
		{Name: "Imp", Pattern: `->|=>|→|⊃`},
		{Name: "Or", Pattern: `\|\||\||∨|\+`},
		{Name: "And", Pattern: `&&|&|∧|·`},
		{Name: "Not", Pattern: `!|¬|~`},
		{Name: "True", Pattern: `TRUE|⊤`},
		{Name: "False", Pattern: `FALSE|⊥`},
		{Name: "Star", Pattern: `\*`},
		{Name: "Comma", Pattern: `,`},
		{Name: "LParen", Pattern: `[(\[]`},
		{Name: "RParen", Pattern: `[)\]]`},
		{Name: "Digit", Pattern: `[01]`},
		{Name: "Ident", Pattern: `\$?[A-Za-z_][A-Za-z0-9_]*#?`},
	})
	if err != nil {
		panic("parser: building lexer: " + err.Error())
	}
	return def
}

var symbols = tokDef.Symbols()

var (
	whitespaceType = symbols["Whitespace"]
	equType        = symbols["Equ"]
	impType        = symbols["Imp"]
	orType         = symbols["Or"]
	andType        = symbols["And"]
	notType        = symbols["Not"]
	trueType       = symbols["True"]
	falseType      = symbols["False"]
	starType       = symbols["Star"]
	commaType      = symbols["Comma"]
	lparenType     = symbols["LParen"]
	rparenType     = symbols["RParen"]
	digitType      = symbols["Digit"]
	identType      = symbols["Ident"]
)
