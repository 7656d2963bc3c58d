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

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace (including line breaks)
const WHITESPACE uint = 1

// COMMA signals ","
const COMMA uint = 2

// SIGN signals "+" or "-"
const SIGN uint = 3

// NUMBER signals an unsigned decimal number
const NUMBER uint = 4

// Token associates a kind with a given range of characters in the text being
// scanned.
type Token struct {
	Kind uint
	Span Span
}

// Scanner is a function which accepts some number of characters from the start
// of a sequence, returning how many were accepted (where 0 means failure).
type Scanner func(items []rune) uint

// Unit accepts a single given character.
func Unit(char rune) Scanner {
	return func(items []rune) uint {
		if len(items) != 0 && items[0] == char {
			return 1
		}
		// fail
		return 0
	}
}

// Within accepts any character within a given range.
func Within(lowest rune, highest rune) Scanner {
	return func(items []rune) uint {
		if len(items) != 0 && lowest <= items[0] && items[0] <= highest {
			return 1
		}
		// fail
		return 0
	}
}

// Or combines zero or more scanners such that the resulting scanner succeeds if
// any of the scanners succeeds, trying them from left to right.
func Or(scanners ...Scanner) Scanner {
	return func(items []rune) uint {
		for _, scanner := range scanners {
			if n := scanner(items); n > 0 {
				return n
			}
		}
		// fail
		return 0
	}
}

// Many matches zero or more of a given item.
func Many(acceptor Scanner) Scanner {
	return func(items []rune) uint {
		index := uint(0)
		//
		for index < uint(len(items)) {
			if n := acceptor(items[index:]); n != 0 {
				index += n
				continue
			}
			//
			break
		}
		// done
		return index
	}
}

// Rule for describing whitespace
var whitespace = Many(Or(Unit(' '), Unit('\t'), Unit('\r'), Unit('\n')))

// Rule for describing numbers
var number = Many(Within('0', '9'))

type lexRule struct {
	scanner Scanner
	kind    uint
}

// lexing rules
var rules = []lexRule{
	{whitespace, WHITESPACE},
	{Unit(','), COMMA},
	{Or(Unit('+'), Unit('-')), SIGN},
	{number, NUMBER},
}

// Lex a given source file into a sequence of tokens, terminated by END_OF.
// Whitespace is discarded.  If some character is not matched by any rule, a
// syntax error is reported for it instead.
func Lex(srcfile *File) ([]Token, []SyntaxError) {
	var (
		items  = srcfile.Contents()
		tokens []Token
		index  = 0
	)
	//
	for index < len(items) {
		var matched = false
		//
		for _, rule := range rules {
			if n := int(rule.scanner(items[index:])); n > 0 {
				if rule.kind != WHITESPACE {
					tokens = append(tokens, Token{rule.kind, NewSpan(index, index+n)})
				}
				//
				index += n
				matched = true
				//
				break
			}
		}
		//
		if !matched {
			err := srcfile.SyntaxError(NewSpan(index, index+1), "unexpected character")
			return nil, []SyntaxError{*err}
		}
	}
	//
	return append(tokens, Token{END_OF, NewSpan(index, index)}), nil
}
