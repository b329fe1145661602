package when

import (
	"errors"
	"fmt"
	"unicode"
)

// Parse errors
var (
	ErrMalformed   = errors.New("malformed when clause")
	ErrUnknownFlag = errors.New("unknown flag")
)

// Parse parses a when-clause expression into an immutable tree.
//
// Grammar (precedence low to high):
//
//	expr   = or
//	or     = and ("||" and)*
//	and    = unary ("&&" unary)*
//	unary  = "!" unary | "(" expr ")" | identifier
//
// Identifiers are flag names like "editor_focus" or "list_focus".
func Parse(source string) (*Expr, error) {
	toks, err := lex(source)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return &Expr{}, nil
	}

	p := &parser{toks: toks}
	root, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, fmt.Errorf("%w: unexpected %q", ErrMalformed, p.toks[p.pos].text)
	}
	return &Expr{root: root}, nil
}

type tokenKind int

const (
	tokIdent tokenKind = iota
	tokAnd
	tokOr
	tokNot
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
}

func lex(source string) ([]token, error) {
	var toks []token
	runes := []rune(source)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '!':
			toks = append(toks, token{tokNot, "!"})
			i++
		case r == '(':
			toks = append(toks, token{tokLParen, "("})
			i++
		case r == ')':
			toks = append(toks, token{tokRParen, ")"})
			i++
		case r == '&':
			if i+1 >= len(runes) || runes[i+1] != '&' {
				return nil, fmt.Errorf("%w: single '&'", ErrMalformed)
			}
			toks = append(toks, token{tokAnd, "&&"})
			i += 2
		case r == '|':
			if i+1 >= len(runes) || runes[i+1] != '|' {
				return nil, fmt.Errorf("%w: single '|'", ErrMalformed)
			}
			toks = append(toks, token{tokOr, "||"})
			i += 2
		case isIdentRune(r):
			start := i
			for i < len(runes) && isIdentRune(runes[i]) {
				i++
			}
			toks = append(toks, token{tokIdent, string(runes[start:i])})
		default:
			return nil, fmt.Errorf("%w: unexpected %q", ErrMalformed, string(r))
		}
	}
	return toks, nil
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.'
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) parseOr() (node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.peek()
		if !ok || tok.kind != tokOr {
			return left, nil
		}
		p.pos++
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = orNode{left: left, right: right}
	}
}

func (p *parser) parseAnd() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.peek()
		if !ok || tok.kind != tokAnd {
			return left, nil
		}
		p.pos++
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = andNode{left: left, right: right}
	}
}

func (p *parser) parseUnary() (node, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("%w: unexpected end of expression", ErrMalformed)
	}

	switch tok.kind {
	case tokNot:
		p.pos++
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return notNode{operand: operand}, nil

	case tokLParen:
		p.pos++
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		closing, ok := p.peek()
		if !ok || closing.kind != tokRParen {
			return nil, fmt.Errorf("%w: missing ')'", ErrMalformed)
		}
		p.pos++
		return inner, nil

	case tokIdent:
		p.pos++
		return identNode{name: tok.text}, nil

	default:
		return nil, fmt.Errorf("%w: unexpected %q", ErrMalformed, tok.text)
	}
}
