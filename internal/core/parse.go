package core

import (
	"fmt"
	"strings"
)

// ParseEquation parses the canonical rendering form back into an AST:
// "(x mul y) = (y mul x)", "inv(x)", "norm(x) = norm(x)". Bare names parse
// as constants when they appear in constants, as variables otherwise.
// This is the inverse of Equation.String for equations built from declared
// operations, which gives the serialization its round-trip property.
func ParseEquation(s string, constants map[string]bool) (Equation, error) {
	p := &parser{src: s, constants: constants}
	lhs, err := p.parseTerm()
	if err != nil {
		return Equation{}, fmt.Errorf("parse %q: %w", s, err)
	}
	if !p.eat("=") {
		return Equation{}, fmt.Errorf("parse %q: expected '=' at offset %d", s, p.pos)
	}
	rhs, err := p.parseTerm()
	if err != nil {
		return Equation{}, fmt.Errorf("parse %q: %w", s, err)
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return Equation{}, fmt.Errorf("parse %q: trailing input at offset %d", s, p.pos)
	}
	return Equation{LHS: lhs, RHS: rhs}, nil
}

type parser struct {
	src       string
	pos       int
	constants map[string]bool
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
}

// eat consumes the literal token if present.
func (p *parser) eat(tok string) bool {
	p.skipSpace()
	if strings.HasPrefix(p.src[p.pos:], tok) {
		p.pos += len(tok)
		return true
	}
	return false
}

func (p *parser) name() (string, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) && isNameByte(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return "", fmt.Errorf("expected name at offset %d", start)
	}
	return p.src[start:p.pos], nil
}

func isNameByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// parseTerm parses one of:
//
//	( term OP term )    infix binary application
//	name( term, ... )   prefix application
//	name                constant or variable
func (p *parser) parseTerm() (Expr, error) {
	p.skipSpace()
	if p.eat("(") {
		left, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		op, err := p.name()
		if err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if !p.eat(")") {
			return nil, fmt.Errorf("expected ')' at offset %d", p.pos)
		}
		return App{Op: op, Args: []Expr{left, right}}, nil
	}

	name, err := p.name()
	if err != nil {
		return nil, err
	}
	if p.eat("(") {
		var args []Expr
		for {
			arg, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.eat(",") {
				continue
			}
			break
		}
		if !p.eat(")") {
			return nil, fmt.Errorf("expected ')' at offset %d", p.pos)
		}
		return App{Op: name, Args: args}, nil
	}
	if p.constants[name] {
		return Const{name}, nil
	}
	return Var{name}, nil
}
