// Copyright 2025 go-klein Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sym

import "fmt"

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	UnexpectedToken ErrorKind = iota + 1
	MissingParen
	UnexpectedUnary
	DuplicateIndex
	IndexOutOfRange
	NumberOverflow
	InvalidNumber
)

var errorKindNames = map[ErrorKind]string{
	UnexpectedToken: "unexpected token",
	MissingParen:    "missing closing parenthesis",
	UnexpectedUnary: "unexpected unary operator",
	DuplicateIndex:  "duplicate blade index",
	IndexOutOfRange: "blade index out of range",
	NumberOverflow:  "number too long",
	InvalidNumber:   "invalid number",
}

func (k ErrorKind) String() string {
	if s, ok := errorKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError reports a malformed expression. Pos is the byte offset of the
// offending input.
type ParseError struct {
	Kind ErrorKind
	Pos  int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v at column %d: %s", e.Kind, e.Pos+1, e.Msg)
}

// Parse evaluates the expression src over alg. Operators, loosest first:
//
//	+ -   sum and difference
//	^     exterior product (meet)
//	&     regressive product (join), PGA(3,0,1) only
//	|     inner product
//	*     geometric product, also written by juxtaposition: 2 e01, 3a
//	- ~   prefix negation and reversion
//
// Blade literals are e followed by generator digits; writing them out of
// order applies the permutation sign, so e032 is -e023. Other identifiers
// are scalar variables.
func Parse(src string, alg Algebra) (MV, error) {
	if err := alg.Validate(); err != nil {
		return MV{}, err
	}
	toks, err := lex(src, alg)
	if err != nil {
		return MV{}, err
	}
	p := &parser{toks: toks, alg: alg}
	v, err := p.sum()
	if err != nil {
		return MV{}, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return MV{}, p.unexpected(t)
	}
	return v, nil
}

type parser struct {
	toks []token
	i    int
	alg  Algebra
}

func (p *parser) peek() token { return p.toks[p.i] }

func (p *parser) next() token {
	t := p.toks[p.i]
	if t.kind != tokEOF {
		p.i++
	}
	return t
}

func (p *parser) isOp(op string) bool {
	t := p.peek()
	return t.kind == tokOp && t.text == op
}

func (p *parser) unexpected(t token) error {
	if t.kind == tokEOF {
		return &ParseError{Kind: UnexpectedToken, Pos: t.pos, Msg: "unexpected end of input"}
	}
	return &ParseError{Kind: UnexpectedToken, Pos: t.pos, Msg: fmt.Sprintf("unexpected %q", t.text)}
}

// binary parses operand (op operand)* for a left-associative operator.
func (p *parser) binary(op string, operand func() (MV, error), combine func(l, r MV, pos int) (MV, error)) (MV, error) {
	lhs, err := operand()
	if err != nil {
		return MV{}, err
	}
	for p.isOp(op) {
		pos := p.next().pos
		rhs, err := operand()
		if err != nil {
			return MV{}, err
		}
		if lhs, err = combine(lhs, rhs, pos); err != nil {
			return MV{}, err
		}
	}
	return lhs, nil
}

func (p *parser) sum() (MV, error) {
	lhs, err := p.meet()
	if err != nil {
		return MV{}, err
	}
	for p.isOp("+") || p.isOp("-") {
		op := p.next().text
		rhs, err := p.meet()
		if err != nil {
			return MV{}, err
		}
		if op == "+" {
			lhs = lhs.Add(rhs)
		} else {
			lhs = lhs.Sub(rhs)
		}
	}
	return lhs, nil
}

func (p *parser) meet() (MV, error) {
	return p.binary("^", p.join, func(l, r MV, _ int) (MV, error) { return l.Ext(r), nil })
}

func (p *parser) join() (MV, error) {
	return p.binary("&", p.inner, func(l, r MV, pos int) (MV, error) {
		v, err := l.Reg(r)
		if err != nil {
			return MV{}, fmt.Errorf("join at column %d: %w", pos+1, err)
		}
		return v, nil
	})
}

func (p *parser) inner() (MV, error) {
	return p.binary("|", p.product, func(l, r MV, _ int) (MV, error) { return l.Dot(r), nil })
}

// startsFactor reports whether t can begin an implicit product.
func startsFactor(t token) bool {
	switch t.kind {
	case tokNumber, tokBlade, tokIdent, tokLParen:
		return true
	case tokOp:
		return t.text == "~"
	}
	return false
}

func (p *parser) product() (MV, error) {
	lhs, err := p.unary()
	if err != nil {
		return MV{}, err
	}
	for {
		switch {
		case p.isOp("*"):
			p.next()
		case startsFactor(p.peek()):
		default:
			return lhs, nil
		}
		rhs, err := p.unary()
		if err != nil {
			return MV{}, err
		}
		lhs = lhs.Mul(rhs)
	}
}

func (p *parser) unary() (MV, error) {
	t := p.peek()
	if t.kind != tokOp {
		return p.primary()
	}
	p.next()
	switch t.text {
	case "-":
		v, err := p.unary()
		return v.Neg(), err
	case "~":
		v, err := p.unary()
		return v.Reverse(), err
	}
	return MV{}, &ParseError{Kind: UnexpectedUnary, Pos: t.pos, Msg: fmt.Sprintf("%q cannot start an operand", t.text)}
}

func (p *parser) primary() (MV, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return p.alg.Scalar(t.num), nil
	case tokIdent:
		return p.alg.Var(t.text), nil
	case tokBlade:
		c := 1.0
		if t.neg {
			c = -1
		}
		return p.alg.Blade(t.blade, Const(c)), nil
	case tokLParen:
		v, err := p.sum()
		if err != nil {
			return MV{}, err
		}
		if c := p.peek(); c.kind != tokRParen {
			return MV{}, &ParseError{Kind: MissingParen, Pos: c.pos,
				Msg: fmt.Sprintf("expected ')' to close '(' at column %d", t.pos+1)}
		}
		p.next()
		return v, nil
	}
	return MV{}, p.unexpected(t)
}
