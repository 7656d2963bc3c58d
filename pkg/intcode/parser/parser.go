// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package parser

import (
	"strconv"
)

// Parse accepts a given source file holding a program as comma-separated
// decimal integers (in address order), and produces the initial memory image
// for that program.
func Parse(srcfile *File) ([]int64, []SyntaxError) {
	parser := NewParser(srcfile)
	//
	return parser.Parse()
}

// ParseString is a convenience function for parsing a program held in a
// string.
func ParseString(text string) ([]int64, []SyntaxError) {
	return Parse(NewSourceFile("", []byte(text)))
}

// Parser is a parser for program files.
type Parser struct {
	srcfile *File
	tokens  []Token
	// Position within the tokens
	index int
}

// NewParser constructs a new parser for a given source file.
func NewParser(srcfile *File) *Parser {
	return &Parser{srcfile, nil, 0}
}

// Parse the given source file into a memory image, or some number of syntax
// errors.
func (p *Parser) Parse() ([]int64, []SyntaxError) {
	var (
		words  []int64
		word   int64
		errors []SyntaxError
	)
	// Convert source file into tokens
	if p.tokens, errors = Lex(p.srcfile); len(errors) > 0 {
		return nil, errors
	}
	//
	if p.lookahead().Kind == END_OF {
		return nil, p.syntaxErrors(p.lookahead(), "empty program")
	}
	// Continue going until all consumed
	for {
		if word, errors = p.parseInteger(); len(errors) > 0 {
			return nil, errors
		}
		//
		words = append(words, word)
		//
		if p.match(END_OF) {
			return words, nil
		} else if _, errors = p.expect(COMMA, "expected \",\""); len(errors) > 0 {
			return nil, errors
		}
	}
}

func (p *Parser) parseInteger() (int64, []SyntaxError) {
	var start = p.lookahead()
	// Optional sign, which must be immediately followed by digits.
	if p.match(SIGN) && p.lookahead().Span.Start() != start.Span.End() {
		return 0, p.syntaxErrors(p.lookahead(), "expected integer")
	}
	//
	end, errs := p.expect(NUMBER, "expected integer")
	if len(errs) > 0 {
		return 0, errs
	}
	//
	span := NewSpan(start.Span.Start(), end.Span.End())
	text := string(p.srcfile.Contents()[span.Start():span.End()])
	// Parse number as 64bit integer
	word, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, []SyntaxError{*p.srcfile.SyntaxError(span, "integer out of range")}
	}
	//
	return word, nil
}

// Lookahead returns the next token.  This must exist because END_OF is always
// appended at the end of the token stream.
func (p *Parser) lookahead() Token {
	return p.tokens[p.index]
}

// Expect returns an error if the next token is not what was expected.
func (p *Parser) expect(kind uint, msg string) (Token, []SyntaxError) {
	lookahead := p.lookahead()
	//
	if lookahead.Kind != kind {
		return lookahead, p.syntaxErrors(lookahead, msg)
	}
	//
	p.index++
	//
	return lookahead, nil
}

// Match attempts to match the given token.
func (p *Parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		// END_OF is never consumed
		if kind != END_OF {
			p.index++
		}
		//
		return true
	}
	//
	return false
}

func (p *Parser) syntaxErrors(token Token, msg string) []SyntaxError {
	return []SyntaxError{*p.srcfile.SyntaxError(token.Span, msg)}
}
