package logic

import "fmt"

// The parser consumes the token sequence left to right, one method per
// precedence level. Binary operators fold to the left, so
// "a OR b OR c" parses as "(a OR b) OR c".
type parser struct {
	tokens []Token
	pos    int
}

// Parse converts formula text into a Formula. It fails with a *SyntaxError
// if the text cannot be tokenized, violates the grammar, or has trailing
// input after a syntactically complete formula.
func Parse(text string) (Formula, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	f, err := p.parseIff()
	if err != nil {
		return nil, err
	}
	if tok := p.current(); tok.Kind != TokenEOF {
		return nil, &SyntaxError{
			Pos: p.pos,
			Msg: fmt.Sprintf("unexpected token %q after end of formula", tok.Value),
		}
	}
	return f, nil
}

func (p *parser) current() Token {
	return p.tokens[p.pos]
}

func (p *parser) accept(kind TokenKind) bool {
	if p.current().Kind == kind {
		p.pos++
		return true
	}
	return false
}

func (p *parser) expect(kind TokenKind) error {
	if p.accept(kind) {
		return nil
	}
	return &SyntaxError{
		Pos: p.pos,
		Msg: fmt.Sprintf("expected %v but found %v", kind, p.current().Kind),
	}
}

func (p *parser) parseIff() (Formula, error) {
	node, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	for p.accept(TokenIff) {
		right, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		node = Iff(node, right)
	}
	return node, nil
}

func (p *parser) parseImplies() (Formula, error) {
	node, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	for p.accept(TokenImplies) {
		right, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		node = Implies(node, right)
	}
	return node, nil
}

func (p *parser) parseOr() (Formula, error) {
	node, err := p.parseXor()
	if err != nil {
		return nil, err
	}
	for p.accept(TokenOr) {
		right, err := p.parseXor()
		if err != nil {
			return nil, err
		}
		node = Or(node, right)
	}
	return node, nil
}

func (p *parser) parseXor() (Formula, error) {
	node, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.accept(TokenXor) {
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		node = Xor(node, right)
	}
	return node, nil
}

func (p *parser) parseAnd() (Formula, error) {
	node, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.accept(TokenAnd) {
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		node = And(node, right)
	}
	return node, nil
}

func (p *parser) parseUnary() (Formula, error) {
	if p.accept(TokenNot) {
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Not(operand), nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Formula, error) {
	if p.accept(TokenLParen) {
		node, err := p.parseIff()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		return node, nil
	}
	if tok := p.current(); tok.Kind == TokenIdent {
		p.pos++
		return Atom(tok.Value), nil
	}
	return nil, &SyntaxError{
		Pos: p.pos,
		Msg: fmt.Sprintf("unexpected token %q where an atom or '(' was expected", p.current().Value),
	}
}
