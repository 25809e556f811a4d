package parser

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/gitrdm/logicsimplify/pkg/term"
)

// SyntaxError reports malformed input: an unknown token, an unbalanced
// bracket, or an unexpected end of input, carrying structured context the
// way the teacher's ValidationError does rather than a bare string. Errors
// found by the parser carry the offending token's position in Pos; a
// failure reported by the lexer itself leaves Pos at its zero value and
// carries the lexer's own error text in Message.
type SyntaxError struct {
	Pos     lexer.Position
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("parser: %s at %s", e.Message, e.Pos)
}

// Parse parses text using the precedence-climbing grammar: equivalence
// (lowest) over implication over disjunction over conjunction over
// negation over atoms (literals, parenthesised subexpressions, and
// predicate application).
func Parse(text string) (*term.Term, error) {
	lx, err := tokDef.Lex("", strings.NewReader(text))
	if err != nil {
		return nil, &SyntaxError{Message: err.Error()}
	}

	var toks []lexer.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, &SyntaxError{Message: err.Error()}
		}
		if tok.Type != whitespaceType {
			toks = append(toks, tok)
		}
		if tok.EOF() {
			break
		}
	}

	p := &parser{toks: toks}
	result, err := p.parseEqu()
	if err != nil {
		return nil, err
	}
	if !p.atEOF() {
		return nil, p.errorf("unexpected trailing token %q", p.peek().Value)
	}
	return result, nil
}

type parser struct {
	toks []lexer.Token
	pos  int
}

func (p *parser) peek() lexer.Token { return p.toks[p.pos] }

func (p *parser) peekIs(t lexer.TokenType) bool { return p.peek().Type == t }

func (p *parser) atEOF() bool { return p.peek().EOF() }

func (p *parser) advance() lexer.Token {
	tok := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return tok
}

func (p *parser) errorf(format string, args ...interface{}) error {
	tok := p.peek()
	msg := fmt.Sprintf(format, args...)
	if tok.EOF() {
		msg = "unexpected end of input: " + msg
	}
	return &SyntaxError{Pos: tok.Pos, Message: msg}
}

// parseEqu: Imp (<-> Imp)*  — right-associative chaining.
func (p *parser) parseEqu() (*term.Term, error) {
	left, err := p.parseImp()
	if err != nil {
		return nil, err
	}
	if p.peekIs(equType) {
		p.advance()
		right, err := p.parseEqu()
		if err != nil {
			return nil, err
		}
		return term.NewEqu(left, right), nil
	}
	return left, nil
}

// parseImp: Or (-> Imp)? — right-associative.
func (p *parser) parseImp() (*term.Term, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.peekIs(impType) {
		p.advance()
		right, err := p.parseImp()
		if err != nil {
			return nil, err
		}
		return term.NewImp(left, right), nil
	}
	return left, nil
}

// parseOr: And ((|[*]) And)*, collapsing a chain of "|" into one Or term
// and flagging a subset-match marker if any operator in the chain carried
// a trailing "*".
func (p *parser) parseOr() (*term.Term, error) {
	first, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	members := []*term.Term{first}
	star := false
	for p.peekIs(orType) {
		p.advance()
		if p.peekIs(starType) {
			star = true
			p.advance()
		}
		next, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		members = append(members, next)
	}
	if len(members) == 1 {
		return members[0], nil
	}
	placeholder := ""
	if star {
		placeholder = "*"
	}
	return term.NewOr(placeholder, members...), nil
}

// parseAnd: Not ((&[*]) Not)*, same chaining/marker rule as parseOr.
func (p *parser) parseAnd() (*term.Term, error) {
	first, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	members := []*term.Term{first}
	star := false
	for p.peekIs(andType) {
		p.advance()
		if p.peekIs(starType) {
			star = true
			p.advance()
		}
		next, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		members = append(members, next)
	}
	if len(members) == 1 {
		return members[0], nil
	}
	placeholder := ""
	if star {
		placeholder = "*"
	}
	return term.NewAnd(placeholder, members...), nil
}

// parseNot: ! Not | Atom.
func (p *parser) parseNot() (*term.Term, error) {
	if p.peekIs(notType) {
		p.advance()
		inner, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return term.NewNot(inner), nil
	}
	return p.parseAtom()
}

// parseAtom: TRUE | FALSE | 0 | 1 | '(' Equ ')' | Ident | Ident '(' args ')'.
func (p *parser) parseAtom() (*term.Term, error) {
	tok := p.peek()
	switch tok.Type {
	case trueType:
		p.advance()
		return term.True(), nil
	case falseType:
		p.advance()
		return term.False(), nil
	case digitType:
		p.advance()
		if tok.Value == "1" {
			return term.True(), nil
		}
		return term.False(), nil
	case lparenType:
		p.advance()
		inner, err := p.parseEqu()
		if err != nil {
			return nil, err
		}
		if !p.peekIs(rparenType) {
			return nil, p.errorf("unclosed parenthesis")
		}
		p.advance()
		return inner, nil
	case identType:
		p.advance()
		name := tok.Value
		if !p.peekIs(lparenType) {
			return identTerm(name), nil
		}
		p.advance()
		var args []*term.Term
		if !p.peekIs(rparenType) {
			for {
				arg, err := p.parseEqu()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				if p.peekIs(commaType) {
					p.advance()
					continue
				}
				break
			}
		}
		if !p.peekIs(rparenType) {
			return nil, p.errorf("unclosed parenthesis in predicate application")
		}
		p.advance()
		return term.NewNamedPredicate(name, args...), nil
	default:
		return nil, p.errorf("unexpected token %q", tok.Value)
	}
}

// identTerm classifies a bare identifier per spec.md §6: a "$" prefix
// always makes it a placeholder Constant regardless of case; otherwise
// an uppercase first letter makes it a Variable and anything else a
// Constant.
func identTerm(name string) *term.Term {
	if strings.HasPrefix(name, "$") {
		return term.NewConstant(name)
	}
	if unicode.IsUpper(rune(name[0])) {
		return term.NewVariable(name)
	}
	return term.NewConstant(name)
}
