package lambda

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIdent
	TokenLambda
	TokenDot
	TokenLParen
	TokenRParen
)

func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenIdent:
		return "identifier"
	case TokenLambda:
		return "lambda"
	case TokenDot:
		return "'.'"
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

type Token struct {
	Type    TokenType
	Literal string
	Pos     int // byte offset in the input
}

func (t Token) String() string {
	return t.Literal
}

type lexer struct {
	input  string
	pos    int
	strict bool
	tokens []Token
}

// Tokenize splits input into tokens. Characters that start no token are
// dropped, so Tokenize never fails.
func Tokenize(input string) []Token {
	l := &lexer{input: input}
	_ = l.run()
	return l.tokens
}

// TokenizeStrict is like Tokenize but reports the first character that
// starts no token as a *SyntaxError.
func TokenizeStrict(input string) ([]Token, error) {
	l := &lexer{input: input, strict: true}
	if err := l.run(); err != nil {
		return nil, err
	}
	return l.tokens, nil
}

func (l *lexer) run() error {
	for l.pos < len(l.input) {
		start := l.pos
		ch, w := utf8.DecodeRuneInString(l.input[l.pos:])
		switch {
		case ch == '\\' || ch == 'λ':
			l.emit(TokenLambda, start, start+w)
		case ch == '.':
			l.emit(TokenDot, start, start+w)
		case ch == '(':
			l.emit(TokenLParen, start, start+w)
		case ch == ')':
			l.emit(TokenRParen, start, start+w)
		case isIdentRune(ch):
			end := start + w
			for end < len(l.input) {
				r, n := utf8.DecodeRuneInString(l.input[end:])
				if !isIdentRune(r) {
					break
				}
				end += n
			}
			l.emit(TokenIdent, start, end)
			continue
		case unicode.IsSpace(ch):
		default:
			if l.strict {
				return &SyntaxError{Pos: start, Msg: fmt.Sprintf("unexpected character %q", ch)}
			}
		}
		l.pos = start + w
	}
	return nil
}

func (l *lexer) emit(typ TokenType, start, end int) {
	l.tokens = append(l.tokens, Token{Type: typ, Literal: l.input[start:end], Pos: start})
	l.pos = end
}

// λ is a letter to unicode, but here it always marks an abstraction.
func isIdentRune(r rune) bool {
	return r != 'λ' && (unicode.IsLetter(r) || unicode.IsDigit(r))
}
