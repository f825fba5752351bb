package logic

import (
	"fmt"
	"strings"
)

// TokenKind classifies a lexical token of the formula grammar.
type TokenKind int

// The token kinds produced by Tokenize.
const (
	TokenLParen TokenKind = iota
	TokenRParen
	TokenAnd
	TokenOr
	TokenNot
	TokenXor
	TokenImplies
	TokenIff
	TokenIdent
	TokenEOF
)

func (k TokenKind) String() string {
	switch k {
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	case TokenAnd:
		return "AND"
	case TokenOr:
		return "OR"
	case TokenNot:
		return "NOT"
	case TokenXor:
		return "XOR"
	case TokenImplies:
		return "IMPLIES"
	case TokenIff:
		return "IFF"
	case TokenIdent:
		return "IDENT"
	default:
		return "EOF"
	}
}

// A Token is one lexical unit of a formula, carrying the original text it
// was scanned from.
type Token struct {
	Kind  TokenKind
	Value string
}

// A SyntaxError reports invalid formula text: an unexpected character, a
// missing or unexpected token, or trailing input after a complete formula.
// Pos is 0-based; it counts bytes during tokenizing and tokens during
// parsing.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at position %d: %s", e.Pos, e.Msg)
}

var keywords = map[string]TokenKind{
	"AND": TokenAnd,
	"OR":  TokenOr,
	"NOT": TokenNot,
	"XOR": TokenXor,
}

func isIdentChar(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}

// Tokenize converts formula text into a flat token sequence terminated by a
// single EOF token. Whitespace is skipped. Multi-character operators are
// matched before single-character ones, so "<->" never scans as "<" plus
// "->".
func Tokenize(text string) ([]Token, error) {
	var tokens []Token
	i := 0
	for i < len(text) {
		c := text[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '(':
			tokens = append(tokens, Token{TokenLParen, "("})
			i++
		case c == ')':
			tokens = append(tokens, Token{TokenRParen, ")"})
			i++
		case strings.HasPrefix(text[i:], "<->"):
			tokens = append(tokens, Token{TokenIff, "<->"})
			i += 3
		case strings.HasPrefix(text[i:], "->"):
			tokens = append(tokens, Token{TokenImplies, "->"})
			i += 2
		case c == '&':
			tokens = append(tokens, Token{TokenAnd, "&"})
			i++
		case c == '|':
			tokens = append(tokens, Token{TokenOr, "|"})
			i++
		case c == '~':
			tokens = append(tokens, Token{TokenNot, "~"})
			i++
		case isIdentChar(c):
			start := i
			for i < len(text) && isIdentChar(text[i]) {
				i++
			}
			ident := text[start:i]
			if kind, ok := keywords[strings.ToUpper(ident)]; ok {
				tokens = append(tokens, Token{kind, ident})
			} else {
				tokens = append(tokens, Token{TokenIdent, ident})
			}
		default:
			return nil, &SyntaxError{Pos: i, Msg: fmt.Sprintf("unexpected character %q", string(c))}
		}
	}
	return append(tokens, Token{TokenEOF, ""}), nil
}
