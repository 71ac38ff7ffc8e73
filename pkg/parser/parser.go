// Package parser is the recursive-descent parser that turns a lexer.Token
// stream into logic.Clause/logic.Term trees. Like the lexer, it is an
// external collaborator to the interpreter core: the core never parses
// text, it only consumes the terms this package builds.
package parser

import (
	"fmt"

	"github.com/gitrdm/hornlog/pkg/lexer"
	"github.com/gitrdm/hornlog/pkg/logic"
)

// Error is a ParseError: an unexpected token, a missing '.' or ':-', an
// unbalanced bracket, or an empty query.
type Error struct {
	Offset  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Message)
}

// parser holds the token cursor and the variable-name scope for the
// clause or query currently being parsed. Unlike the reference
// implementation, which shares one name->Variable scope across an entire
// program parse, this scope is reset before every clause and every query:
// every clause's variables are freshly renamed before use anyway (see
// logic.Renamer), so nothing about resolution correctness depends on
// whether two clauses' "X" happen to share a parse-time Variable, and
// per-clause scoping matches what a reader familiar with Prolog expects.
type parser struct {
	tokens []lexer.Token
	pos    int
	root   *logic.Bindings
	scope  map[string]*logic.Var
}

func newParser(tokens []lexer.Token, root *logic.Bindings) *parser {
	return &parser{tokens: tokens, root: root}
}

func (p *parser) resetScope() {
	p.scope = make(map[string]*logic.Var)
}

func (p *parser) variable(name string) *logic.Var {
	if v, ok := p.scope[name]; ok {
		return v
	}
	v := p.root.Fresh(name)
	p.scope[name] = v
	return v
}

func (p *parser) peek() (lexer.Token, bool) {
	if p.pos >= len(p.tokens) {
		return lexer.Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) next() (lexer.Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

func (p *parser) offset() int {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos].Offset
	}
	if len(p.tokens) > 0 {
		return p.tokens[len(p.tokens)-1].Offset
	}
	return 0
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return &Error{Offset: p.offset(), Message: fmt.Sprintf(format, args...)}
}

// ParseProgram parses a whole source string as a sequence of clauses
// (`head.` or `head :- g1, ..., gn.`), allocating fresh variables from
// root.
func ParseProgram(src string, root *logic.Bindings) ([]*logic.Clause, error) {
	tokens, err := lexer.Lex(src)
	if err != nil {
		return nil, err
	}
	p := newParser(tokens, root)
	var clauses []*logic.Clause
	for {
		if _, ok := p.peek(); !ok {
			break
		}
		clause, err := p.parseClause()
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, clause)
	}
	return clauses, nil
}

// ParseQuery parses a single `?- g1, ..., gn.` query, allocating fresh
// variables from root.
func ParseQuery(src string, root *logic.Bindings) ([]logic.Term, error) {
	tokens, err := lexer.Lex(src)
	if err != nil {
		return nil, err
	}
	p := newParser(tokens, root)
	tok, ok := p.next()
	if !ok || tok.Kind != lexer.Query {
		return nil, p.errorf("expected a query introduced by '?-'")
	}
	p.resetScope()
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	if _, ok := p.peek(); ok {
		return nil, p.errorf("unexpected trailing tokens after query")
	}
	return body, nil
}

func (p *parser) parseClause() (*logic.Clause, error) {
	p.resetScope()
	head, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	tok, ok := p.next()
	if !ok {
		return nil, p.errorf("expected ':-' or '.' after clause head")
	}
	switch tok.Kind {
	case lexer.FullStop:
		return logic.Fact(head), nil
	case lexer.Implies:
		body, err := p.parseBody()
		if err != nil {
			return nil, err
		}
		return logic.Rule(head, body...), nil
	default:
		return nil, p.errorf("expected ':-' or '.' after clause head, got %q", tok.String())
	}
}

func (p *parser) parseBody() ([]logic.Term, error) {
	var body []logic.Term
	for {
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		body = append(body, term)
		tok, ok := p.next()
		if !ok {
			return nil, p.errorf("expected ',' or '.' after goal")
		}
		switch tok.Kind {
		case lexer.Comma:
			continue
		case lexer.FullStop:
			return body, nil
		default:
			return nil, p.errorf("expected ',' or '.' after goal, got %q", tok.String())
		}
	}
}

func (p *parser) parseTerm() (logic.Term, error) {
	tok, ok := p.next()
	if !ok {
		return nil, p.errorf("unexpected end of input, expected a term")
	}
	switch tok.Kind {
	case lexer.Variable:
		return p.variable(tok.Text), nil
	case lexer.Integer:
		return logic.NewInt(tok.Int), nil
	case lexer.True:
		return logic.NewAtom("true"), nil
	case lexer.Atom:
		return p.parseAtomOrCompound(tok.Text)
	case lexer.LeftSquare:
		return p.parseList()
	default:
		return nil, p.errorf("did not expect %q here", tok.String())
	}
}

func (p *parser) parseAtomOrCompound(name string) (logic.Term, error) {
	tok, ok := p.peek()
	if !ok || tok.Kind != lexer.Left {
		return logic.NewAtom(name), nil
	}
	p.next()
	args, err := p.parseArguments()
	if err != nil {
		return nil, err
	}
	return logic.NewCompound(name, args...), nil
}

func (p *parser) parseArguments() ([]logic.Term, error) {
	if tok, ok := p.peek(); ok && tok.Kind == lexer.Right {
		p.next()
		return nil, nil
	}
	var args []logic.Term
	for {
		arg, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		tok, ok := p.next()
		if !ok {
			return nil, p.errorf("expected ',' or ')' in arguments")
		}
		switch tok.Kind {
		case lexer.Right:
			return args, nil
		case lexer.Comma:
			continue
		default:
			return nil, p.errorf("expected ',' or ')' in arguments, got %q", tok.String())
		}
	}
}

func (p *parser) parseList() (logic.Term, error) {
	if tok, ok := p.peek(); ok && tok.Kind == lexer.RightSquare {
		p.next()
		return logic.EmptyList(), nil
	}
	var elems []logic.Term
	for {
		item, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		elems = append(elems, item)
		tok, ok := p.next()
		if !ok {
			return nil, p.errorf("expected ']', ',' or '|' in list")
		}
		switch tok.Kind {
		case lexer.RightSquare:
			return logic.List(elems...), nil
		case lexer.Comma:
			continue
		case lexer.Bar:
			tail, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			closeTok, ok := p.next()
			if !ok || closeTok.Kind != lexer.RightSquare {
				return nil, p.errorf("expected ']' after list tail")
			}
			result := tail
			for i := len(elems) - 1; i >= 0; i-- {
				result = logic.Cons(elems[i], result)
			}
			return result, nil
		default:
			return nil, p.errorf("expected ']', ',' or '|' in list, got %q", tok.String())
		}
	}
}
