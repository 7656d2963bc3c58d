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
package util

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/consensys/go-intcode/pkg/intcode/parser"
)

// FAULT_DECODING identifies an expected failure to decode an instruction.
const FAULT_DECODING = "decoding"

// FAULT_BOUNDS identifies an expected out-of-bounds memory access.
const FAULT_BOUNDS = "bounds"

// ExpectedFault describes the failure expected when executing a program which
// is syntactically valid.
type ExpectedFault struct {
	// Kind of fault (decoding or bounds)
	Kind string
	// Program Counter at which the fault arises
	PC uint
}

// Extract an expected syntax error from a given line of an error file.  The
// span of the error is given relative to the lines of the program file (not
// the error file).
func extractSyntaxError(program *parser.File) Attribute[parser.SyntaxError] {
	var programLines = program.Lines()
	//
	return func(lineno int, lines []parser.Line, _ *parser.File) (bool, parser.SyntaxError, error) {
		var contents = lines[lineno].String()
		//
		if strings.HasPrefix(contents, ";;error") {
			line, start, end, msg, err := parseExpectedErrorLine(contents)
			//
			if err == nil {
				span, err := determineFileSpan(line, start, end, programLines)
				// Done
				return true, *program.SyntaxError(span, msg), err
			}
			//
			return true, parser.SyntaxError{}, err
		}
		// No error
		return false, parser.SyntaxError{}, nil
	}
}

// Extract an expected fault from a given line of an error file, which has the
// form ";;fault:KIND:PC".
func extractFault(lineno int, lines []parser.Line, _ *parser.File) (bool, ExpectedFault, error) {
	var (
		contents = lines[lineno].String()
		splits   = strings.Split(contents, ":")
	)
	//
	if !strings.HasPrefix(contents, ";;fault") {
		return false, ExpectedFault{}, nil
	} else if len(splits) != 3 {
		return true, ExpectedFault{}, fmt.Errorf("malformed expected fault \"%s\", should be e.g. \";;fault:bounds:4\"",
			contents)
	} else if splits[1] != FAULT_DECODING && splits[1] != FAULT_BOUNDS {
		return true, ExpectedFault{}, fmt.Errorf("unknown fault \"%s\"", splits[1])
	}
	//
	pc, err := strconv.ParseUint(splits[2], 10, 64)
	if err != nil {
		return true, ExpectedFault{}, fmt.Errorf("invalid program counter \"%s\" (%s)", splits[2], err.Error())
	}
	//
	return true, ExpectedFault{splits[1], uint(pc)}, nil
}

func parseExpectedErrorLine(contents string) (line, start, end int, msg string, err error) {
	var splits = strings.Split(contents, ":")
	//
	if len(splits) < 4 {
		return 0, 0, 0, "", fmt.Errorf("malformed expected error \"%s\", should be e.g. \";;error:X:Y-Z:msg\"", contents)
	}
	// Parse line number
	if line, err = strconv.Atoi(splits[1]); err != nil {
		return 0, 0, 0, "", fmt.Errorf("invalid span \"%s:%s\" (%s)", splits[1], splits[2], err.Error())
	} else if line == 0 {
		return 0, 0, 0, "", fmt.Errorf("invalid span \"%s:%s\" (lines numbered from 1)", splits[1], splits[2])
	}
	// Parse split
	if start, end, err = parseExpectedErrorSpan(splits[2]); err != nil {
		return 0, 0, 0, "", err
	}
	//
	msg = strings.Join(splits[3:], ":")
	//
	return line, start, end, msg, nil
}

func parseExpectedErrorSpan(spanStr string) (start, end int, err error) {
	var spanSplits = strings.Split(spanStr, "-")
	//
	if len(spanSplits) != 2 {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (malformed, should be X-Y)", spanStr)
	}
	// Parse span start as integer
	if start, err = strconv.Atoi(spanSplits[0]); err != nil {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (%s)", spanStr, err.Error())
	} else if start == 0 {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (columns numbered from 1)", spanStr)
	}
	// Parse span end as integer
	if end, err = strconv.Atoi(spanSplits[1]); err != nil {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (%s)", spanStr, err.Error())
	} else if end < start {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (ends before it starts)", spanStr)
	}
	//
	return start, end, err
}

// Determine the span that the the given line string and span string corresponds
// to.  We need the line offsets so that the computed span includes the starting
// offset of the relevant line.  Spans may sit just beyond the last character
// of a line, since errors at the end of a file are reported there.
func determineFileSpan(lineno, start, end int, lines []parser.Line) (parser.Span, error) {
	// Sanity checks
	if lineno > len(lines) {
		return parser.Span{}, fmt.Errorf("invalid span \"%d:%d-%d\" (non-existent line)", lineno, start, end)
	}
	//
	line := lines[lineno-1]
	// Subtract one from each since column numbering starts from 1.
	start--
	end--
	//
	if start > line.Length() || end > line.Length() {
		return parser.Span{}, fmt.Errorf("invalid span \"%d:%d-%d\" (overflows to following line)", lineno, start, end)
	}
	// Add line offset
	start += line.Start()
	end += line.Start()
	// Create span, recalling that span's start from zero whereas column numbers
	// start from 1.
	return parser.NewSpan(start, end), nil
}
