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
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/consensys/go-intcode/pkg/intcode"
	"github.com/consensys/go-intcode/pkg/intcode/machine"
	"github.com/consensys/go-intcode/pkg/intcode/memory"
	"github.com/consensys/go-intcode/pkg/intcode/parser"
	"github.com/consensys/go-intcode/pkg/intcode/search"
)

// TestDir determines the (relative) location of the test directory.  That is
// where the program files and their expected outcomes are found.
const TestDir = "../../testdata"

// PROGRAM_EXT is the extension used for program files.
const PROGRAM_EXT = "ic"

// EXPECT_EXT is the extension used for the expected outcome of a valid
// program.
const EXPECT_EXT = "expect"

// ERROR_EXT is the extension used for the expected errors of an invalid
// program.
const ERROR_EXT = "error"

// Directive is a line of the form ";;name:arg:...:arg" found at the start of
// an expectation file, where each argument is a comma-separated list of
// integers.
type Directive struct {
	// Line on which this directive occurs (counting from 1)
	Line int
	// Name of this directive
	Name string
	// Arguments of this directive
	Args [][]int64
}

// Scalar returns the nth argument of this directive, which must be a single
// integer.
func (p Directive) Scalar(n int) (int64, error) {
	if n >= len(p.Args) || len(p.Args[n]) != 1 {
		return 0, fmt.Errorf("line %d: directive \"%s\" expects an integer in position %d", p.Line, p.Name, n+1)
	}
	//
	return p.Args[n][0], nil
}

// CheckValid checks that a given program executes as described by its
// expectation file.  The following directives are supported:
//
//	;;params:NOUN:VERB      write the noun and verb before executing
//	;;memory:W0,W1,...      the entire final memory
//	;;address:A:V           the final value at address A
//	;;steps:N               the number of instructions executed (inc. halt)
//	;;search:TARGET:ANSWER  the answer of a search over [0,100)
func CheckValid(t *testing.T, test string) {
	var (
		filename = fmt.Sprintf("%s/%s.%s", TestDir, test, PROGRAM_EXT)
		expFile  = fmt.Sprintf("%s/%s.%s", TestDir, test, EXPECT_EXT)
	)
	// Enable testing each program in parallel
	t.Parallel()
	//
	program := ReadProgramFile(t, filename)
	directives, errs := ExtractAttributes(readSourceFile(t, expFile), extractDirective)
	//
	if len(errs) > 0 {
		t.Fatal(errors.Join(errs...))
	} else if len(directives) == 0 {
		t.Fatalf("missing expectations for %s", test)
	}
	//
	checkDirectives(t, filename, program, directives)
}

// ReadProgramFile reads and parses a given program file, failing the test if
// this is not possible.
func ReadProgramFile(t *testing.T, filename string) []int64 {
	words, errs := parser.Parse(readSourceFile(t, filename))
	//
	if len(errs) > 0 {
		t.Fatalf("Error %s should have parsed: %s", filename, errorToString(errs[0]))
	}
	//
	return words
}

func checkDirectives(t *testing.T, filename string, program []int64, directives []Directive) {
	var (
		words = slices.Clone(program)
		mem   = memory.NewArray(machine.MEMORY, words)
	)
	// Parameters must be applied before execution
	for _, d := range directives {
		if d.Name == "params" {
			noun, verb := scalar(t, d, 0), scalar(t, d, 1)
			//
			if err := intcode.Parameterise(mem, noun, verb); err != nil {
				t.Fatalf("%s: %s", filename, err)
			}
		}
	}
	//
	steps, err := machine.ExecuteAll(machine.New(mem), intcode.CHUNK)
	if err != nil {
		t.Fatalf("%s: unexpected fault: %s", filename, err)
	}
	//
	for _, d := range directives {
		switch d.Name {
		case "params":
			continue
		case "memory":
			if len(d.Args) != 1 || !slices.Equal(d.Args[0], words) {
				t.Errorf("%s: expected memory %v, actual %v", filename, d.Args, words)
			}
		case "address":
			address, expected := scalar(t, d, 0), scalar(t, d, 1)
			//
			if actual, err := mem.Read(address); err != nil {
				t.Errorf("%s: %s", filename, err)
			} else if actual != expected {
				t.Errorf("%s: expected %d at address %d, actual %d", filename, expected, address, actual)
			}
		case "steps":
			if expected := scalar(t, d, 0); int64(steps) != expected {
				t.Errorf("%s: expected %d steps, actual %d", filename, expected, steps)
			}
		case "search":
			checkSearch(t, filename, program, scalar(t, d, 0), scalar(t, d, 1))
		default:
			t.Fatalf("%s: unknown directive \"%s\" on line %d", filename, d.Name, d.Line)
		}
	}
}

func checkSearch(t *testing.T, filename string, program []int64, target int64, expected int64) {
	var config = search.DefaultConfig()
	//
	config.Target = target
	//
	result, err := search.Search(program, config)
	//
	if err != nil {
		t.Errorf("%s: search failed: %s", filename, err)
	} else if result.Answer() != expected {
		t.Errorf("%s: expected search answer %d, actual %d", filename, expected, result.Answer())
	}
}

func scalar(t *testing.T, d Directive, n int) int64 {
	value, err := d.Scalar(n)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	return value
}

// Extract a directive from a given line of an expectation file.
func extractDirective(lineno int, lines []parser.Line, _ *parser.File) (bool, Directive, error) {
	var (
		contents = lines[lineno].String()
		splits   = strings.Split(contents, ":")
		args     = make([][]int64, len(splits)-1)
	)
	//
	if !strings.HasPrefix(contents, ";;") {
		return false, Directive{}, nil
	}
	//
	for i, split := range splits[1:] {
		words, errs := parser.ParseString(split)
		//
		if len(errs) > 0 {
			return true, Directive{}, fmt.Errorf("line %d: invalid argument \"%s\" (%s)", lineno+1, split,
				errs[0].Message())
		}
		//
		args[i] = words
	}
	//
	return true, Directive{lineno + 1, strings.TrimPrefix(splits[0], ";;"), args}, nil
}

func readSourceFile(t *testing.T, filename string) *parser.File {
	// Read program file
	bytes, err := os.ReadFile(filename)
	// Check test file read ok
	if err != nil {
		t.Fatal(err)
	}
	// Package up as source file
	return parser.NewSourceFile(filename, bytes)
}
