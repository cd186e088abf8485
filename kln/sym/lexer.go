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

import (
	"fmt"
	"strconv"
)

// maxNumberLen is the longest number literal the lexer accepts.
const maxNumberLen = 32

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokBlade
	tokIdent
	tokOp
	tokLParen
	tokRParen
)

type token struct {
	kind  tokenKind
	pos   int
	text  string
	num   float64
	blade uint32
	neg   bool // blade literal written in odd order, such as e032
}

func isDigit(c byte) bool  { return '0' <= c && c <= '9' }
func isLetter(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_' }

// lex splits src into tokens. Numbers are decimal with an optional
// fraction; "2e3" lexes as 2 followed by the blade e3.
func lex(src string, alg Algebra) ([]token, error) {
	var toks []token
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++
		case isDigit(c) || c == '.':
			start := i
			for i < len(src) && (isDigit(src[i]) || src[i] == '.') {
				i++
			}
			text := src[start:i]
			if len(text) > maxNumberLen {
				return nil, &ParseError{Kind: NumberOverflow, Pos: start,
					Msg: fmt.Sprintf("number longer than %d characters", maxNumberLen)}
			}
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, &ParseError{Kind: InvalidNumber, Pos: start, Msg: fmt.Sprintf("invalid number %q", text)}
			}
			toks = append(toks, token{kind: tokNumber, pos: start, text: text, num: v})
		case isLetter(c):
			start := i
			for i < len(src) && (isLetter(src[i]) || isDigit(src[i])) {
				i++
			}
			tok, err := identOrBlade(src[start:i], start, alg)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
		case c == '(':
			toks = append(toks, token{kind: tokLParen, pos: i, text: "("})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen, pos: i, text: ")"})
			i++
		case c == '+' || c == '-' || c == '*' || c == '^' || c == '&' || c == '|' || c == '~':
			toks = append(toks, token{kind: tokOp, pos: i, text: string(c)})
			i++
		default:
			return nil, &ParseError{Kind: UnexpectedToken, Pos: i, Msg: fmt.Sprintf("unexpected character %q", c)}
		}
	}
	return append(toks, token{kind: tokEOF, pos: len(src)}), nil
}

// identOrBlade classifies word. "e" followed only by digits is a blade
// literal, with one digit per generator; anything else is a variable.
func identOrBlade(word string, pos int, alg Algebra) (token, error) {
	if len(word) < 2 || word[0] != 'e' {
		return token{kind: tokIdent, pos: pos, text: word}, nil
	}
	for i := 1; i < len(word); i++ {
		if !isDigit(word[i]) {
			return token{kind: tokIdent, pos: pos, text: word}, nil
		}
	}
	var blade uint32
	inversions := 0
	for i := 1; i < len(word); i++ {
		g := int(word[i] - '0')
		if g >= alg.Dim() {
			return token{}, &ParseError{Kind: IndexOutOfRange, Pos: pos + i,
				Msg: fmt.Sprintf("generator e%d out of range for signature %v", g, alg)}
		}
		bit := uint32(1) << g
		if blade&bit != 0 {
			return token{}, &ParseError{Kind: DuplicateIndex, Pos: pos + i,
				Msg: fmt.Sprintf("duplicate generator %d in %s", g, word)}
		}
		// Generators already seen with a larger index must be passed over.
		inversions += Grade(blade &^ (bit<<1 - 1))
		blade |= bit
	}
	return token{kind: tokBlade, pos: pos, text: word, blade: blade, neg: inversions&1 == 1}, nil
}
