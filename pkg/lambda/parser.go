package lambda

import "fmt"

// SyntaxError reports malformed input. Pos is a byte offset into the
// source, or the input length when the input ended early.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d: %s", e.Pos, e.Msg)
}

type Parser struct {
	tokens []Token
	pos    int
	end    int // byte offset reported for "unexpected end of input"
}

func NewParser(tokens []Token) *Parser {
	p := &Parser{tokens: tokens}
	if n := len(tokens); n > 0 {
		last := tokens[n-1]
		p.end = last.Pos + len(last.Literal)
	}
	return p
}

func (p *Parser) peek(offset int) Token {
	i := p.pos + offset
	if i >= len(p.tokens) {
		return Token{Type: TokenEOF, Pos: p.end}
	}
	return p.tokens[i]
}

func (p *Parser) errorf(tok Token, format string, args ...any) error {
	return &SyntaxError{Pos: tok.Pos, Msg: fmt.Sprintf(format, args...)}
}

// Parse parses the whole token sequence. Terms juxtaposed at the top
// level fold left into applications: `x y z` is ((x y) z).
func (p *Parser) Parse() (Term, error) {
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.pos < len(p.tokens) {
		next, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		term = App{Fun: term, Arg: next}
	}
	return term, nil
}

// Term ::= Ident | Lambda Ident '.' Term | '(' Term* ')'
//
// An abstraction body is a single Term, so `λx.x y` at the top level is
// ((λx.x) y). Only a parenthesized body groups further terms.
func (p *Parser) parseTerm() (Term, error) {
	tok := p.peek(0)
	switch tok.Type {
	case TokenEOF:
		return nil, p.errorf(tok, "unexpected end of input")
	case TokenIdent:
		p.pos++
		return Var{Name: tok.Literal}, nil
	case TokenLambda:
		return p.parseAbs()
	case TokenLParen:
		return p.parseGroup()
	default:
		return nil, p.errorf(tok, "unexpected token %q", tok.Literal)
	}
}

func (p *Parser) parseAbs() (Term, error) {
	param, dot := p.peek(1), p.peek(2)
	if dot.Type != TokenDot {
		return nil, p.errorf(dot, "expected '.' after lambda parameter")
	}
	if param.Type != TokenIdent {
		return nil, p.errorf(param, "expected identifier after lambda")
	}
	p.pos += 3

	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return Abs{Arg: param.Literal, Body: body}, nil
}

func (p *Parser) parseGroup() (Term, error) {
	open := p.peek(0)
	p.pos++ // consume '('

	var result Term
	for {
		tok := p.peek(0)
		if tok.Type == TokenEOF {
			return nil, p.errorf(tok, "expected closing ')'")
		}
		if tok.Type == TokenRParen {
			p.pos++
			break
		}
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if result == nil {
			result = term
		} else {
			result = App{Fun: result, Arg: term}
		}
	}

	if result == nil {
		return nil, p.errorf(open, "empty application group")
	}
	return result, nil
}

// ParseTokens parses a token sequence produced by Tokenize.
func ParseTokens(tokens []Token) (Term, error) {
	return NewParser(tokens).Parse()
}

// Parse parses a lambda term from a string.
func Parse(input string) (Term, error) {
	return ParseTokens(Tokenize(input))
}
